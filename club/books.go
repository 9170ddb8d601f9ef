package club

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/passionhills/clubledger/contribution"
	"github.com/passionhills/clubledger/expense"
)

// Expenses

func (e *Engine) AddExpense(in ExpenseInput) (expense.Expense, error) {
	if err := validateInput(in); err != nil {
		return expense.Expense{}, err
	}

	exp, err := expense.New(parseDate(in.Date), in.Description, in.Category, in.Amount, in.PaidBy, in.Status, in.Receipt)
	if err != nil {
		return expense.Expense{}, fmt.Errorf("adding expense: %w", err)
	}
	e.expenses.Add(exp)

	e.record("Expense Added", fmt.Sprintf("Added new expense: %s - ₹%d", exp.Description, exp.Amount))
	return exp, nil
}

func (e *Engine) UpdateExpense(id uuid.UUID, in ExpenseInput) (expense.Expense, error) {
	if err := validateInput(in); err != nil {
		return expense.Expense{}, err
	}

	exp, err := e.expenses.Update(id, parseDate(in.Date), in.Description, in.Category, in.Amount, in.PaidBy, in.Status, in.Receipt)
	if err != nil {
		return expense.Expense{}, err
	}

	e.record("Expense Updated", fmt.Sprintf("Updated expense: %s", exp.Description))
	return exp, nil
}

func (e *Engine) DeleteExpense(id uuid.UUID) error {
	exp, err := e.expenses.Get(id)
	if err != nil {
		return err
	}
	if err := e.expenses.Delete(id); err != nil {
		return err
	}
	e.record("Expense Deleted", fmt.Sprintf("Deleted expense: %s", exp.Description))
	return nil
}

func (e *Engine) Expenses() []expense.Expense {
	return e.expenses.All()
}

func (e *Engine) ExpensesByCategory(category string) []expense.Expense {
	return e.expenses.ByCategory(category)
}

// Contributions

func (e *Engine) AddContribution(in ContributionInput) (contribution.Contribution, error) {
	if err := validateInput(in); err != nil {
		return contribution.Contribution{}, err
	}

	c, err := contribution.New(parseDate(in.Date), in.ContributorName, in.Villa, in.Type, in.Purpose, in.Amount, in.Receipt)
	if err != nil {
		return contribution.Contribution{}, fmt.Errorf("adding contribution: %w", err)
	}
	e.contributions.Add(c)

	e.record("Contribution Added", fmt.Sprintf("Added new contribution from %s - ₹%d", c.ContributorName, c.Amount))
	return c, nil
}

func (e *Engine) UpdateContribution(id uuid.UUID, in ContributionInput) (contribution.Contribution, error) {
	if err := validateInput(in); err != nil {
		return contribution.Contribution{}, err
	}

	c, err := e.contributions.Update(id, parseDate(in.Date), in.ContributorName, in.Villa, in.Type, in.Purpose, in.Amount, in.Receipt)
	if err != nil {
		return contribution.Contribution{}, err
	}

	e.record("Contribution Updated", fmt.Sprintf("Updated contribution from %s", c.ContributorName))
	return c, nil
}

func (e *Engine) DeleteContribution(id uuid.UUID) error {
	c, err := e.contributions.Get(id)
	if err != nil {
		return err
	}
	if err := e.contributions.Delete(id); err != nil {
		return err
	}
	e.record("Contribution Deleted", fmt.Sprintf("Deleted contribution from %s", c.ContributorName))
	return nil
}

func (e *Engine) Contributions() []contribution.Contribution {
	return e.contributions.All()
}

func (e *Engine) ContributionsByType(typ string) []contribution.Contribution {
	return e.contributions.ByType(typ)
}
