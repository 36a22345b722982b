package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/tutoradmin/internal/client/models"
	"github.com/spf13/cast"
)

func (a *App) listParents(ctx context.Context, args []string) error {
	page, search := pageAndSearch(args)
	res := a.parents.FetchParents(ctx, page, pageLimit, search)
	if !res.Success {
		return errors.New(res.Error)
	}
	a.renderParents(res.Data.Items)
	renderPagination(a.out, res.Data.Pagination)
	return nil
}

func (a *App) renderParents(items []models.ParentSummary) {
	rows := make([][]string, 0, len(items))
	for _, p := range items {
		rows = append(rows, []string{
			p.ID.String(), p.FullName(), p.Email, orDash(p.Phone),
			cast.ToString(p.ChildrenCount), orDash(p.SubscriptionStatus),
		})
	}
	renderTable(a.out, []string{"ID", "Name", "Email", "Phone", "Children", "Subscription"}, rows)
}

func (a *App) parent(ctx context.Context, args []string) error {
	id, err := idArg(args, "parent <id>")
	if err != nil {
		return err
	}
	res := a.parents.FetchParent(ctx, id)
	if !res.Success {
		return errors.New(res.Error)
	}
	a.renderParentDetail(res.Data)
	return nil
}

func (a *App) renderParentDetail(d models.ParentDetail) {
	p := d.Profile
	renderPairs(a.out, "Parent "+p.ID.String(), [][2]string{
		{"Name", p.FullName()},
		{"Email", p.Email},
		{"Phone", orDash(p.Phone)},
		{"Address", orDash(d.Address)},
		{"Joined", date(p.CreatedAt)},
	})

	fmt.Fprintln(a.out, titleStyle.Render("Children"))
	rows := make([][]string, 0, len(d.Children))
	for _, c := range d.Children {
		name := strings.TrimSpace(c.FirstName + " " + c.LastName)
		rows = append(rows, []string{c.ID.String(), name, orDash(c.Grade), orDash(c.School), orDash(strings.Join(c.Subjects, ", "))})
	}
	renderTable(a.out, []string{"ID", "Name", "Grade", "School", "Subjects"}, rows)

	fmt.Fprintln(a.out, titleStyle.Render("Subscriptions"))
	rows = make([][]string, 0, len(d.Subscriptions))
	for _, s := range d.Subscriptions {
		end := "-"
		if s.EndDate != nil {
			end = date(*s.EndDate)
		}
		rows = append(rows, []string{s.Plan, s.Status, money(s.Amount, ""), date(s.StartDate), end})
	}
	renderTable(a.out, []string{"Plan", "Status", "Amount", "Start", "End"}, rows)

	renderTransactions(a.out, d.Transactions)
	if len(d.Documents) > 0 {
		renderDocuments(a.out, d.Documents, a.parents.DocumentURL)
	}
}

func (a *App) listTutors(ctx context.Context, args []string) error {
	page, search := pageAndSearch(args)
	res := a.tutors.FetchTutors(ctx, page, pageLimit, search)
	if !res.Success {
		return errors.New(res.Error)
	}
	a.renderTutors(res.Data.Items)
	renderPagination(a.out, res.Data.Pagination)
	return nil
}

func (a *App) renderTutors(items []models.TutorSummary) {
	rows := make([][]string, 0, len(items))
	for _, t := range items {
		rows = append(rows, []string{
			t.ID.String(), t.FullName(), t.Email, orDash(strings.Join(t.Subjects, ", ")),
			fmt.Sprintf("%.1f", t.Rating), orDash(t.OnboardingStatus),
		})
	}
	renderTable(a.out, []string{"ID", "Name", "Email", "Subjects", "Rating", "Onboarding"}, rows)
}

func (a *App) tutor(ctx context.Context, args []string) error {
	id, err := idArg(args, "tutor <id>")
	if err != nil {
		return err
	}
	res := a.tutors.FetchTutor(ctx, id)
	if !res.Success {
		return errors.New(res.Error)
	}
	a.renderTutorDetail(res.Data)
	return nil
}

func (a *App) renderTutorDetail(d models.TutorDetail) {
	p := d.Profile
	renderPairs(a.out, "Tutor "+p.ID.String(), [][2]string{
		{"Name", p.FullName()},
		{"Email", p.Email},
		{"Phone", orDash(p.Phone)},
		{"Subjects", orDash(strings.Join(p.Subjects, ", "))},
		{"Hourly rate", money(p.HourlyRate, "")},
		{"Earnings", money(p.TotalEarnings, "")},
		{"Onboarding", orDash(p.OnboardingStatus)},
		{"Bio", orDash(d.Bio)},
	})

	fmt.Fprintln(a.out, titleStyle.Render("Education"))
	rows := make([][]string, 0, len(d.Education))
	for _, e := range d.Education {
		rows = append(rows, []string{e.Institution, e.Degree, orDash(e.Field), years(e.StartYear, e.EndYear)})
	}
	renderTable(a.out, []string{"Institution", "Degree", "Field", "Years"}, rows)

	fmt.Fprintln(a.out, titleStyle.Render("Experience"))
	rows = make([][]string, 0, len(d.Experience))
	for _, e := range d.Experience {
		rows = append(rows, []string{e.Organization, e.Title, years(e.StartYear, e.EndYear)})
	}
	renderTable(a.out, []string{"Organization", "Title", "Years"}, rows)

	renderDocuments(a.out, d.Documents, a.tutors.DocumentURL)
	renderTransactions(a.out, d.Transactions)
	if len(d.PaymentRequests) > 0 {
		fmt.Fprintln(a.out, titleStyle.Render("Payment requests"))
		renderTable(a.out, paymentHeaders, paymentRows(d.PaymentRequests))
	}
}

func years(start, end int) string {
	switch {
	case start == 0 && end == 0:
		return "-"
	case end == 0:
		return fmt.Sprintf("%d-present", start)
	default:
		return fmt.Sprintf("%d-%d", start, end)
	}
}

func (a *App) filter(_ context.Context, args []string) error {
	const usage = "filter parents|tutors <text>"
	if len(args) < 1 {
		return usageError(usage)
	}
	query := strings.Join(args[1:], " ")

	switch args[0] {
	case "parents":
		a.renderParents(a.parents.FilterParents(query))
	case "tutors":
		a.renderTutors(a.tutors.FilterTutors(query))
	default:
		return usageError(usage)
	}
	return nil
}

func (a *App) tutorPayments(ctx context.Context, _ []string) error {
	res := a.tutors.FetchPaymentRequests(ctx)
	if !res.Success {
		return errors.New(res.Error)
	}
	renderTable(a.out, paymentHeaders, paymentRows(a.tutors.Snapshot().PaymentRequests))
	return nil
}

func (a *App) tutorPayment(ctx context.Context, args []string) error {
	id, err := idArg(args, "tpayment <id>")
	if err != nil {
		return err
	}
	res := a.tutors.FetchPaymentRequest(ctx, id)
	if !res.Success {
		return errors.New(res.Error)
	}
	renderPayment(a.out, res.Data)
	return nil
}

func (a *App) tutorSetStatus(ctx context.Context, args []string) error {
	id, status, err := statusArgs(args, "tsetstatus <id> <status>")
	if err != nil {
		return err
	}
	res := a.tutors.UpdatePaymentStatus(ctx, id, status)
	if !res.Success {
		return errors.New(res.Error)
	}
	fmt.Fprintf(a.out, "Payment request %s is now %s\n", id, statusBadge(status))
	return nil
}
