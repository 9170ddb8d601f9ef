package club

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"
)

// MembersCSV renders the member roster with one column per registered fee
// year.
func (e *Engine) MembersCSV() ([]byte, error) {
	years := e.feeYears.All()

	header := []string{"Sl No", "Name", "Villa No", "Status", "Membership Fee"}
	for _, fy := range years {
		header = append(header, fmt.Sprintf("Annual Fee %d", fy.Year))
	}
	header = append(header, "Total Paid", "Join Date", "Active")

	rows := [][]string{header}
	for i, m := range e.members.All() {
		row := []string{
			strconv.Itoa(i + 1),
			m.Name,
			m.VillaNo,
			m.Status,
			strconv.FormatInt(m.MembershipFee, 10),
		}
		for _, fy := range years {
			row = append(row, strconv.FormatInt(m.Fees[fy.Year], 10))
		}
		active := "No"
		if m.IsActive {
			active = "Yes"
		}
		row = append(row, strconv.FormatInt(m.TotalPaid, 10), m.JoinDate.Format(dateLayout), active)
		rows = append(rows, row)
	}

	return writeCSV(rows)
}

// FinancialCSV renders the transaction log. The villa column is blank for
// transactions whose member was deleted.
func (e *Engine) FinancialCSV() ([]byte, error) {
	rows := [][]string{{"Transaction ID", "Date", "Member Name", "Villa No", "Fee Type", "Amount"}}

	for _, t := range e.ledger.All() {
		villa := ""
		if m, err := e.members.Get(t.MemberID); err == nil {
			villa = m.VillaNo
		}
		rows = append(rows, []string{
			t.ID.String(),
			t.Date.Format(dateLayout),
			t.MemberName,
			villa,
			strings.ToUpper(strings.ReplaceAll(t.Type, "_", " ")),
			strconv.FormatInt(t.Amount, 10),
		})
	}

	return writeCSV(rows)
}

func (e *Engine) ExpensesCSV() ([]byte, error) {
	rows := [][]string{{"Date", "Description", "Category", "Amount", "Paid By", "Status", "Receipt"}}

	for _, x := range e.expenses.All() {
		rows = append(rows, []string{
			x.Date.Format(dateLayout),
			x.Description,
			x.Category,
			strconv.FormatInt(x.Amount, 10),
			x.PaidBy,
			x.Status,
			x.Receipt,
		})
	}

	return writeCSV(rows)
}

func (e *Engine) ContributionsCSV() ([]byte, error) {
	rows := [][]string{{"Date", "Contributor", "Villa", "Type", "Purpose", "Amount", "Receipt"}}

	for _, c := range e.contributions.All() {
		rows = append(rows, []string{
			c.Date.Format(dateLayout),
			c.ContributorName,
			c.Villa,
			c.Type,
			c.Purpose,
			strconv.FormatInt(c.Amount, 10),
			c.Receipt,
		})
	}

	return writeCSV(rows)
}

func writeCSV(rows [][]string) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.WriteAll(rows); err != nil {
		return nil, fmt.Errorf("writing csv: %w", err)
	}
	return buf.Bytes(), nil
}
