package member

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"gopkg.in/yaml.v3"

	"github.com/orris-inc/gymdesk/internal/application/member/dto"
	"github.com/orris-inc/gymdesk/internal/application/member/usecases"
	"github.com/orris-inc/gymdesk/internal/shared/errors"
)

const (
	formatTable = "table"
	formatJSON  = "json"
	formatYAML  = "yaml"
)

func renderList(w io.Writer, format string, result *usecases.ListMembersResult) error {
	members := result.Members
	if members == nil {
		members = []*dto.MemberDTO{}
	}

	switch format {
	case formatTable:
		if len(members) == 0 && result.Total == 0 {
			_, err := fmt.Fprintln(w, "No members found.")
			return err
		}
		if err := writeTable(w, members); err != nil {
			return err
		}
		if result.PageSize > 0 {
			_, err := fmt.Fprintf(w, "Page %d of %d (%d members).\n", result.Page, result.TotalPages, result.Total)
			return err
		}
		return nil
	default:
		return renderStructured(w, format, members)
	}
}

func renderDetail(w io.Writer, format string, m *dto.MemberDTO) error {
	if format == formatTable {
		return writeDetail(w, m)
	}
	return renderStructured(w, format, m)
}

func renderStructured(w io.Writer, format string, v any) error {
	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return errors.NewValidationError("unsupported output format", format)
	}
}

func writeTable(w io.Writer, members []*dto.MemberDTO) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTYPE\tNAME\tPHONE\tACTIVE\tATTENDANCE\tLOYALTY\tPLAN/TRAINER\tFEE")

	for _, m := range members {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%d\t%d\t%s\t%s\n",
			m.ID, m.Type, m.Name, m.Phone, yesNo(m.Active), m.Attendance, m.LoyaltyPoints, variantSummary(m), m.Fee)
	}
	return tw.Flush()
}

func variantSummary(m *dto.MemberDTO) string {
	switch {
	case m.Regular != nil:
		return m.Regular.Plan
	case m.Premium != nil:
		return m.Premium.PersonalTrainer
	default:
		return ""
	}
}

func writeDetail(w io.Writer, m *dto.MemberDTO) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	row := func(label, value string) {
		fmt.Fprintf(tw, "%s:\t%s\n", label, value)
	}

	row("ID", m.ID)
	row("Type", m.Type)
	row("Name", m.Name)
	row("Location", m.Location)
	row("Phone", m.Phone)
	row("Email", m.Email)
	row("Gender", m.Gender)
	row("Date of birth", m.DOB)
	row("Membership start", m.MembershipStartDate)
	row("Referral source", m.ReferralSource)
	row("Paid at registration", m.PaidAmount)
	row("Active", yesNo(m.Active))
	row("Attendance", strconv.Itoa(m.Attendance))
	row("Loyalty points", strconv.FormatInt(m.LoyaltyPoints, 10))

	if r := m.Regular; r != nil {
		row("Plan", r.Plan)
		row("Price", r.Price)
		row("Attendance limit", strconv.Itoa(r.AttendanceLimit))
		row("Eligible for upgrade", yesNo(r.EligibleForUpgrade))
	}
	if p := m.Premium; p != nil {
		row("Personal trainer", p.PersonalTrainer)
		row("Premium charge", p.PremiumCharge)
		row("Paid", p.PaidAmount)
		row("Remaining", p.RemainingAmount)
		row("Payment status", p.PaymentStatus)
		if p.DiscountAmount != nil {
			row("Discount", *p.DiscountAmount)
		}
	}

	row("Fee", m.Fee)
	if m.RemovalReason != "" {
		row("Removal reason", m.RemovalReason)
	}

	return tw.Flush()
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
