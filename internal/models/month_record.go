package models

import (
	"encoding/json"
	"strings"

	"gorm.io/gorm"
)

// MonthRecord holds the budget data of one month of one year.
type MonthRecord struct {
	DefaultModel
	Year             int              `json:"year" gorm:"uniqueIndex:month_record_year_month,priority:1" example:"2024"` // Year of the record
	Month            int              `json:"month" gorm:"uniqueIndex:month_record_year_month,priority:2" example:"1"`   // Month of the year, 1 to 12
	MonthName        string           `json:"month_name" example:"January"`                                             // Display name of the month
	Income           AmountMap        `json:"income"`                                                                   // Income by member ID
	FixedExpenses    ExpenseList      `json:"fixed_expenses"`                                                           // Expenses that do not change between months
	VariableExpenses ExpenseList      `json:"variable_expenses"`                                                        // Expenses that vary between months
	CategoryExpenses CategoryExpenses `json:"category_expenses"`                                                        // Expenses by category ID
	BankBalances     AmountMap        `json:"bank_balances"`                                                            // Balance by bank account ID
	Savings          AmountMap        `json:"savings"`                                                                  // Free-form savings entries
}

func (MonthRecord) TableName() string {
	return "month_records"
}

func (m *MonthRecord) BeforeSave(_ *gorm.DB) error {
	if m.Month < 1 || m.Month > 12 {
		return ErrMonthOutOfRange
	}

	m.MonthName = strings.TrimSpace(m.MonthName)
	m.normalize()
	return nil
}

// normalize replaces nil collections with empty ones.
func (m *MonthRecord) normalize() {
	if m.Income == nil {
		m.Income = AmountMap{}
	}
	if m.FixedExpenses == nil {
		m.FixedExpenses = ExpenseList{}
	}
	if m.VariableExpenses == nil {
		m.VariableExpenses = ExpenseList{}
	}
	if m.CategoryExpenses == nil {
		m.CategoryExpenses = CategoryExpenses{}
	}
	if m.BankBalances == nil {
		m.BankBalances = AmountMap{}
	}
	if m.Savings == nil {
		m.Savings = AmountMap{}
	}
}

// ListMonths returns all month records ordered by year and month.
// If year is not nil, only records of that year are returned.
func ListMonths(db *gorm.DB, year *int) ([]MonthRecord, error) {
	q := db.Order("year ASC").Order("month ASC")
	if year != nil {
		q = q.Where("year = ?", *year)
	}

	var months []MonthRecord
	err := q.Find(&months).Error
	if err != nil {
		return nil, err
	}

	for i := range months {
		months[i].normalize()
	}

	return months, nil
}

// GetMonth returns the record for a specific year and month.
func GetMonth(db *gorm.DB, year, month int) (MonthRecord, error) {
	var record MonthRecord
	err := db.Where("year = ? AND month = ?", year, month).First(&record).Error
	if err != nil {
		return MonthRecord{}, err
	}

	record.normalize()
	return record, nil
}

// Export returns all month records for export.
func (MonthRecord) Export() (json.RawMessage, error) {
	months, err := ListMonths(DB, nil)
	if err != nil {
		return nil, err
	}

	j, err := json.Marshal(&months)
	if err != nil {
		return json.RawMessage{}, err
	}
	return json.RawMessage(j), nil
}
