package models

import (
	"strings"
	"time"
)

// Role is the platform role of an account.
type Role string

const (
	RoleParent Role = "PARENT"
	RoleTutor  Role = "TUTOR"
	RoleAdmin  Role = "ADMIN"
)

// User is the summary of the signed-in account.
type User struct {
	ID        ID     `json:"id"`
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
	Name      string `json:"name,omitempty"`
	Email     string `json:"email"`
	Role      Role   `json:"role"`
}

// DisplayName prefers the explicit name, then first+last, then the email.
func (u User) DisplayName() string {
	if u.Name != "" {
		return u.Name
	}
	if full := strings.TrimSpace(u.FirstName + " " + u.LastName); full != "" {
		return full
	}
	return u.Email
}

// Merge returns a copy of u with every non-empty field of patch applied.
func (u User) Merge(patch User) User {
	if patch.ID != "" {
		u.ID = patch.ID
	}
	if patch.FirstName != "" {
		u.FirstName = patch.FirstName
	}
	if patch.LastName != "" {
		u.LastName = patch.LastName
	}
	if patch.Name != "" {
		u.Name = patch.Name
	}
	if patch.Email != "" {
		u.Email = patch.Email
	}
	if patch.Role != "" {
		u.Role = patch.Role
	}
	return u
}

// Session is created on login and persisted until logout or a 401.
type Session struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}

// Credentials are the login form values.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Admin is a back-office account.
type Admin struct {
	ID        ID        `json:"id"`
	FirstName string    `json:"firstName,omitempty"`
	LastName  string    `json:"lastName,omitempty"`
	FullName  string    `json:"fullName,omitempty"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

func (a Admin) DisplayName() string {
	if a.FullName != "" {
		return a.FullName
	}
	return strings.TrimSpace(a.FirstName + " " + a.LastName)
}

// NewAdmin is the admin creation form.
type NewAdmin struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

// PendingUser is an account awaiting onboarding approval.
type PendingUser struct {
	ID               ID        `json:"id"`
	FirstName        string    `json:"firstName,omitempty"`
	LastName         string    `json:"lastName,omitempty"`
	Email            string    `json:"email"`
	Phone            string    `json:"phone,omitempty"`
	Role             Role      `json:"role"`
	OnboardingStatus string    `json:"onboardingStatus,omitempty"`
	CreatedAt        time.Time `json:"createdAt"`
}

func (p PendingUser) FullName() string {
	return strings.TrimSpace(p.FirstName + " " + p.LastName)
}

// UserData is the full record of an account, with the role specific
// aggregate filled in for parents and tutors.
type UserData struct {
	User   User          `json:"user"`
	Parent *ParentDetail `json:"parent,omitempty"`
	Tutor  *TutorDetail  `json:"tutor,omitempty"`
}

// Stats are the dashboard totals over the last Days days.
type Stats struct {
	Days              int     `json:"days,omitempty"`
	TotalParents      int     `json:"totalParents"`
	TotalTutors       int     `json:"totalTutors"`
	TotalStudents     int     `json:"totalStudents"`
	PendingOnboarding int     `json:"pendingOnboarding"`
	ActiveSessions    int     `json:"activeSessions"`
	TotalTransactions int     `json:"totalTransactions"`
	TotalRevenue      float64 `json:"totalRevenue"`
	PendingPayouts    float64 `json:"pendingPayouts"`
}
