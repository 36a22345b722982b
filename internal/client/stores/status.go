package stores

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/dmitrijs2005/tutoradmin/internal/client/models"
)

// StatusOption is an entry of the payment status picker.
type StatusOption struct {
	Value models.PaymentStatus
	Label string
}

var statusLabels = map[models.PaymentStatus]string{
	models.PaymentStatusPending:   "Pending",
	models.PaymentStatusRequested: "Requested",
	models.PaymentStatusInReview:  "In Review",
	models.PaymentStatusPaid:      "Paid",
	models.PaymentStatusRejected:  "Rejected",
}

var statusColors = map[models.PaymentStatus]lipgloss.Color{
	models.PaymentStatusPending:   lipgloss.Color("#F59E0B"),
	models.PaymentStatusRequested: lipgloss.Color("#3B82F6"),
	models.PaymentStatusInReview:  lipgloss.Color("#8B5CF6"),
	models.PaymentStatusPaid:      lipgloss.Color("#10B981"),
	models.PaymentStatusRejected:  lipgloss.Color("#EF4444"),
}

const unknownStatusColor = lipgloss.Color("#6B7280")

// PaymentStatusOptions lists every status in workflow order.
func PaymentStatusOptions() []StatusOption {
	out := make([]StatusOption, 0, len(models.PaymentStatuses))
	for _, s := range models.PaymentStatuses {
		out = append(out, StatusOption{Value: s, Label: statusLabels[s]})
	}
	return out
}

// PaymentStatusLabel returns the display label, or the raw value when unknown.
func PaymentStatusLabel(s models.PaymentStatus) string {
	if l, ok := statusLabels[s]; ok {
		return l
	}
	return string(s)
}

// PaymentStatusColor returns the badge color of s; gray when unknown.
func PaymentStatusColor(s models.PaymentStatus) lipgloss.Color {
	if c, ok := statusColors[s]; ok {
		return c
	}
	return unknownStatusColor
}
