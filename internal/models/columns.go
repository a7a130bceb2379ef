package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

// The collection types below are stored as JSON text columns. This keeps
// the nested record shapes intact through the store.

// AmountMap maps an identifier (member ID, account ID or a free-form key) to an amount.
type AmountMap map[string]decimal.Decimal

// ExpenseItem is a single budgeted expense line.
type ExpenseItem struct {
	Name       string          `json:"name" example:"Hipoteca"`                                                  // Name of the expense
	Budget     decimal.Decimal `json:"budget" example:"1500"`                                                    // Budgeted amount
	Actual     decimal.Decimal `json:"actual" example:"1520"`                                                    // Amount actually spent
	CategoryID *string         `json:"category_id,omitempty" example:"2e1f3a0b-6b0e-4c34-9b9a-3b3b7e0d2a10"` // Optional reference to a configured category
}

// ExpenseList is an ordered list of expense items.
type ExpenseList []ExpenseItem

// CategoryExpenses maps a category ID to the expense items of that category.
type CategoryExpenses map[string]ExpenseList

// Members is the list of family members.
type Members []Member

// Categories is the list of expense categories.
type Categories []Category

// BankAccounts is the list of bank accounts.
type BankAccounts []BankAccount

func (AmountMap) GormDataType() string        { return "text" }
func (ExpenseList) GormDataType() string      { return "text" }
func (CategoryExpenses) GormDataType() string { return "text" }
func (Members) GormDataType() string          { return "text" }
func (Categories) GormDataType() string       { return "text" }
func (BankAccounts) GormDataType() string     { return "text" }

func (m AmountMap) Value() (driver.Value, error) {
	if m == nil {
		m = AmountMap{}
	}
	return jsonValue(m)
}

func (m *AmountMap) Scan(value any) error {
	return scanJSON(value, m)
}

func (l ExpenseList) Value() (driver.Value, error) {
	if l == nil {
		l = ExpenseList{}
	}
	return jsonValue(l)
}

func (l *ExpenseList) Scan(value any) error {
	return scanJSON(value, l)
}

func (c CategoryExpenses) Value() (driver.Value, error) {
	if c == nil {
		c = CategoryExpenses{}
	}
	return jsonValue(c)
}

func (c *CategoryExpenses) Scan(value any) error {
	return scanJSON(value, c)
}

func (m Members) Value() (driver.Value, error) {
	if m == nil {
		m = Members{}
	}
	return jsonValue(m)
}

func (m *Members) Scan(value any) error {
	return scanJSON(value, m)
}

func (c Categories) Value() (driver.Value, error) {
	if c == nil {
		c = Categories{}
	}
	return jsonValue(c)
}

func (c *Categories) Scan(value any) error {
	return scanJSON(value, c)
}

func (a BankAccounts) Value() (driver.Value, error) {
	if a == nil {
		a = BankAccounts{}
	}
	return jsonValue(a)
}

func (a *BankAccounts) Scan(value any) error {
	return scanJSON(value, a)
}

// Sum returns the sum of all amounts.
func (m AmountMap) Sum() decimal.Decimal {
	sum := decimal.Zero
	for _, amount := range m {
		sum = sum.Add(amount)
	}
	return sum
}

// ActualSum returns the sum of the actual amounts of all items.
func (l ExpenseList) ActualSum() decimal.Decimal {
	sum := decimal.Zero
	for _, item := range l {
		sum = sum.Add(item.Actual)
	}
	return sum
}

// ActualSum returns the sum of the actual amounts of all items in all categories.
func (c CategoryExpenses) ActualSum() decimal.Decimal {
	sum := decimal.Zero
	for _, items := range c {
		sum = sum.Add(items.ActualSum())
	}
	return sum
}

func jsonValue(v any) (driver.Value, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func scanJSON(value any, target any) error {
	var b []byte
	switch v := value.(type) {
	case nil:
		return nil
	case []byte:
		b = v
	case string:
		b = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into %T", value, target)
	}

	if len(b) == 0 {
		return nil
	}

	return json.Unmarshal(b, target)
}
