package cli

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/dmitrijs2005/tutoradmin/internal/client/models"
	"github.com/dmitrijs2005/tutoradmin/internal/client/stores"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))
)

func renderTable(w io.Writer, headers []string, rows [][]string) {
	if len(rows) == 0 {
		fmt.Fprintln(w, mutedStyle.Render("(none)"))
		return
	}
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
	fmt.Fprintln(w, t.Render())
}

func renderPairs(w io.Writer, title string, pairs [][2]string) {
	fmt.Fprintln(w, titleStyle.Render(title))
	rows := make([][]string, 0, len(pairs))
	for _, p := range pairs {
		rows = append(rows, []string{p[0], p[1]})
	}
	t := table.New().
		Border(lipgloss.HiddenBorder()).
		Rows(rows...).
		StyleFunc(func(_, col int) lipgloss.Style {
			if col == 0 {
				return headerStyle
			}
			return cellStyle
		})
	fmt.Fprintln(w, t.Render())
}

func renderPagination(w io.Writer, p models.Pagination) {
	fmt.Fprintln(w, mutedStyle.Render(fmt.Sprintf("page %d of %d, %d total", p.Page, p.TotalPages, p.Total)))
}

func statusBadge(s models.PaymentStatus) string {
	return lipgloss.NewStyle().Foreground(stores.PaymentStatusColor(s)).Render(stores.PaymentStatusLabel(s))
}

func money(amount float64, currency string) string {
	s := fmt.Sprintf("%.2f", amount)
	if currency != "" {
		s += " " + currency
	}
	return s
}

func date(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format("2006-01-02")
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}

func paymentRows(items []models.PaymentRequest) [][]string {
	rows := make([][]string, 0, len(items))
	for _, p := range items {
		rows = append(rows, []string{
			p.ID.String(),
			orDash(p.TutorName),
			money(p.Amount, p.Currency),
			statusBadge(p.Status),
			date(p.CreatedAt),
			date(p.UpdatedAt),
		})
	}
	return rows
}

var paymentHeaders = []string{"ID", "Tutor", "Amount", "Status", "Created", "Updated"}

func renderPayment(w io.Writer, p models.PaymentRequest) {
	renderPairs(w, "Payment request "+p.ID.String(), [][2]string{
		{"Tutor", orDash(p.TutorName) + " (" + p.TutorID.String() + ")"},
		{"Amount", money(p.Amount, p.Currency)},
		{"Status", statusBadge(p.Status)},
		{"Note", orDash(p.Note)},
		{"Created", date(p.CreatedAt)},
		{"Updated", date(p.UpdatedAt)},
	})
}

func renderTransactions(w io.Writer, txs []models.Transaction) {
	fmt.Fprintln(w, titleStyle.Render("Transactions"))
	rows := make([][]string, 0, len(txs))
	for _, t := range txs {
		rows = append(rows, []string{t.ID.String(), t.Type, money(t.Amount, t.Currency), t.Status, date(t.CreatedAt)})
	}
	renderTable(w, []string{"ID", "Type", "Amount", "Status", "Date"}, rows)
}

func renderDocuments(w io.Writer, docs []models.Document, link func(string) string) {
	fmt.Fprintln(w, titleStyle.Render("Documents"))
	rows := make([][]string, 0, len(docs))
	for _, d := range docs {
		verified := "no"
		if d.Verified {
			verified = "yes"
		}
		rows = append(rows, []string{d.Type, orDash(link(d.FileName)), verified, date(d.UploadedAt)})
	}
	renderTable(w, []string{"Type", "Link", "Verified", "Uploaded"}, rows)
}
