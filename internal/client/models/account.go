package models

import (
	"strings"
	"time"
)

// ParentSummary is a row of the parents listing.
type ParentSummary struct {
	ID                 ID        `json:"id"`
	FirstName          string    `json:"firstName"`
	LastName           string    `json:"lastName"`
	Email              string    `json:"email"`
	Phone              string    `json:"phone,omitempty"`
	ChildrenCount      int       `json:"childrenCount"`
	SubscriptionStatus string    `json:"subscriptionStatus,omitempty"`
	TotalSpent         float64   `json:"totalSpent,omitempty"`
	CreatedAt          time.Time `json:"createdAt"`
}

func (p ParentSummary) FullName() string {
	return strings.TrimSpace(p.FirstName + " " + p.LastName)
}

// Child is a student registered by a parent.
type Child struct {
	ID        ID       `json:"id"`
	FirstName string   `json:"firstName"`
	LastName  string   `json:"lastName,omitempty"`
	Grade     string   `json:"grade,omitempty"`
	School    string   `json:"school,omitempty"`
	Subjects  []string `json:"subjects,omitempty"`
}

// Transaction is a payment movement attached to an account.
type Transaction struct {
	ID          ID        `json:"id"`
	Type        string    `json:"type"`
	Amount      float64   `json:"amount"`
	Currency    string    `json:"currency,omitempty"`
	Status      string    `json:"status"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Subscription is a parent's plan.
type Subscription struct {
	ID        ID         `json:"id"`
	Plan      string     `json:"plan"`
	Status    string     `json:"status"`
	Amount    float64    `json:"amount,omitempty"`
	StartDate time.Time  `json:"startDate"`
	EndDate   *time.Time `json:"endDate,omitempty"`
}

// ParentDetail is the on-demand aggregate for a single parent.
type ParentDetail struct {
	Profile       ParentSummary  `json:"profile"`
	Address       string         `json:"address,omitempty"`
	Children      []Child        `json:"children"`
	Transactions  []Transaction  `json:"transactions"`
	Subscriptions []Subscription `json:"subscriptions"`
	Documents     []Document     `json:"documents,omitempty"`
}

// TutorSummary is a row of the tutors listing.
type TutorSummary struct {
	ID               ID        `json:"id"`
	FirstName        string    `json:"firstName"`
	LastName         string    `json:"lastName"`
	Email            string    `json:"email"`
	Phone            string    `json:"phone,omitempty"`
	Subjects         []string  `json:"subjects,omitempty"`
	Rating           float64   `json:"rating,omitempty"`
	HourlyRate       float64   `json:"hourlyRate,omitempty"`
	OnboardingStatus string    `json:"onboardingStatus,omitempty"`
	TotalEarnings    float64   `json:"totalEarnings,omitempty"`
	CreatedAt        time.Time `json:"createdAt"`
}

func (t TutorSummary) FullName() string {
	return strings.TrimSpace(t.FirstName + " " + t.LastName)
}

// Education is a tutor's degree or certificate.
type Education struct {
	Institution string `json:"institution"`
	Degree      string `json:"degree"`
	Field       string `json:"field,omitempty"`
	StartYear   int    `json:"startYear,omitempty"`
	EndYear     int    `json:"endYear,omitempty"`
}

// Experience is a tutor's previous position.
type Experience struct {
	Organization string `json:"organization"`
	Title        string `json:"title"`
	Description  string `json:"description,omitempty"`
	StartYear    int    `json:"startYear,omitempty"`
	EndYear      int    `json:"endYear,omitempty"`
}

// Document is an uploaded file. Only the stored file name is known to the
// backend; the download URL is built from the configured host.
type Document struct {
	ID         ID        `json:"id,omitempty"`
	Type       string    `json:"type"`
	FileName   string    `json:"fileName"`
	Verified   bool      `json:"verified,omitempty"`
	UploadedAt time.Time `json:"uploadedAt"`
}

// TutorDetail is the on-demand aggregate for a single tutor.
type TutorDetail struct {
	Profile         TutorSummary     `json:"profile"`
	Bio             string           `json:"bio,omitempty"`
	Education       []Education      `json:"education"`
	Experience      []Experience     `json:"experience"`
	Documents       []Document       `json:"documents"`
	Transactions    []Transaction    `json:"transactions"`
	PaymentRequests []PaymentRequest `json:"paymentRequests,omitempty"`
}
