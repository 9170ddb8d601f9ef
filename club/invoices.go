package club

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/passionhills/clubledger/invoice"
)

// GenerateInvoice bills the member for every fee year still unpaid on their
// record, priced at the registry amounts.
func (e *Engine) GenerateInvoice(memberID uuid.UUID) (invoice.Invoice, error) {
	m, err := e.members.Get(memberID)
	if err != nil {
		return invoice.Invoice{}, err
	}

	inv, err := invoice.Generate(m, e.feeYears.All(), e.now())
	if err != nil {
		return invoice.Invoice{}, err
	}
	e.invoices.Add(inv)

	e.record("Invoice Generated", fmt.Sprintf("Generated invoice %s for %s", inv.Number, m.Name))
	return inv, nil
}

func (e *Engine) DeleteInvoice(id uuid.UUID) error {
	if err := e.invoices.Delete(id); err != nil {
		return err
	}
	e.record("Invoice Deleted", "Deleted invoice")
	return nil
}

func (e *Engine) Invoices() []invoice.Invoice {
	return e.invoices.All()
}
