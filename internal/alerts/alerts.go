// Package alerts detects expense items that went over their budget.
package alerts

import (
	"fmt"

	"github.com/family-budget/backend/internal/labels"
	"github.com/family-budget/backend/internal/models"
	"github.com/google/uuid"
	"github.com/ryanuber/go-glob"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
)

// Source tags used in alert keys for the built-in expense lists.
// Category expenses use the category ID as tag.
const (
	TagFixed    = "fixed"
	TagVariable = "variable"
)

var hundred = decimal.NewFromInt(100)

// Alert is an expense item whose actual amount exceeds its budget.
type Alert struct {
	ID             uuid.UUID       `json:"id" example:"60d1f4b2-8d4b-4c8a-9b59-2c8a1e1b6f3e"` // Random ID, changes on every computation
	AlertKey       string          `json:"alert_key" example:"2024-1-fixed-Renta"`            // Stable key used to dismiss the alert
	Month          string          `json:"month" example:"January"`                           // Display name of the month
	Year           int             `json:"year" example:"2024"`
	MonthNum       int             `json:"month_num" example:"1"`
	Category       string          `json:"category" example:"Fixed Expenses"` // Label of the expense list the item is in
	ItemName       string          `json:"item_name" example:"Renta"`
	Budget         decimal.Decimal `json:"budget" example:"1000"`
	Actual         decimal.Decimal `json:"actual" example:"1200"`
	Overage        decimal.Decimal `json:"overage" example:"200"`        // Actual minus budget
	PercentageOver decimal.Decimal `json:"percentage_over" example:"20"` // Overage in percent of the budget
}

// Key returns the alert key for an item.
//
// Items with the same name in the same list of the same month share a key.
func Key(year, month int, tag, name string) string {
	return fmt.Sprintf("%d-%d-%s-%s", year, month, tag, name)
}

type kind int

const (
	kindFixed kind = iota
	kindVariable
	kindCategory
)

// overBudget reports if the item triggers an alert. Items without a
// budget never do.
func overBudget(item models.ExpenseItem) bool {
	return item.Budget.IsPositive() && item.Actual.GreaterThan(item.Budget)
}

// visit calls fn for every over budget item.
//
// Months are visited by year and month. Within a month, fixed expenses come
// first, then variable expenses, then the category lists. Category lists are
// visited in the order the categories are configured in, lists of unknown
// categories follow ordered by their ID.
func visit(months []models.MonthRecord, config models.FamilyConfig, fn func(m models.MonthRecord, k kind, tag string, item models.ExpenseItem)) {
	sorted := slices.Clone(months)
	slices.SortStableFunc(sorted, func(a, b models.MonthRecord) int {
		if a.Year != b.Year {
			return a.Year - b.Year
		}
		return a.Month - b.Month
	})

	for _, m := range sorted {
		for _, item := range m.FixedExpenses {
			if overBudget(item) {
				fn(m, kindFixed, TagFixed, item)
			}
		}

		for _, item := range m.VariableExpenses {
			if overBudget(item) {
				fn(m, kindVariable, TagVariable, item)
			}
		}

		for _, categoryID := range categoryOrder(config, m.CategoryExpenses) {
			for _, item := range m.CategoryExpenses[categoryID] {
				if overBudget(item) {
					fn(m, kindCategory, categoryID, item)
				}
			}
		}
	}
}

func categoryOrder(config models.FamilyConfig, expenses models.CategoryExpenses) []string {
	ids := make([]string, 0, len(expenses))
	for _, c := range config.Categories {
		if _, ok := expenses[c.ID]; ok && !slices.Contains(ids, c.ID) {
			ids = append(ids, c.ID)
		}
	}

	var unknown []string
	for id := range expenses {
		if config.CategoryIndex(id) == -1 {
			unknown = append(unknown, id)
		}
	}
	slices.Sort(unknown)

	return append(ids, unknown...)
}

// Compute returns the alerts for all months that are not dismissed.
//
// The alerts are ordered by overage, largest first. Alerts with the same
// overage keep the order they were found in.
func Compute(months []models.MonthRecord, config models.FamilyConfig, dismissed map[string]struct{}, lbl labels.Set) []Alert {
	alerts := []Alert{}

	visit(months, config, func(m models.MonthRecord, k kind, tag string, item models.ExpenseItem) {
		key := Key(m.Year, m.Month, tag, item.Name)
		if _, ok := dismissed[key]; ok {
			return
		}

		var category string
		switch k {
		case kindFixed:
			category = lbl.FixedExpenses
		case kindVariable:
			category = lbl.VariableExpenses
		default:
			name, ok := config.CategoryName(tag)
			if !ok {
				name = lbl.Other
			}
			category = name
		}

		monthName := m.MonthName
		if monthName == "" {
			monthName = fmt.Sprintf("%d-%d", m.Year, m.Month)
		}

		overage := item.Actual.Sub(item.Budget)
		alerts = append(alerts, Alert{
			ID:             uuid.New(),
			AlertKey:       key,
			Month:          monthName,
			Year:           m.Year,
			MonthNum:       m.Month,
			Category:       category,
			ItemName:       item.Name,
			Budget:         item.Budget,
			Actual:         item.Actual,
			Overage:        overage,
			PercentageOver: overage.Div(item.Budget).Mul(hundred),
		})
	})

	slices.SortStableFunc(alerts, func(a, b Alert) int {
		return b.Overage.Cmp(a.Overage)
	})

	return alerts
}

// Undismissed returns the keys of all alerts that are not yet dismissed.
//
// Every key is contained once, even if several items share it.
func Undismissed(months []models.MonthRecord, config models.FamilyConfig, dismissed map[string]struct{}) []string {
	keys := []string{}
	seen := make(map[string]struct{})

	visit(months, config, func(m models.MonthRecord, _ kind, tag string, item models.ExpenseItem) {
		key := Key(m.Year, m.Month, tag, item.Name)
		if _, ok := dismissed[key]; ok {
			return
		}
		if _, ok := seen[key]; ok {
			return
		}

		seen[key] = struct{}{}
		keys = append(keys, key)
	})

	return keys
}

// Filter restricts a list of alerts.
type Filter struct {
	Year *int   // Only alerts of this year
	Item string // Glob pattern the item name must match, e.g. "Rest*"
}

// Apply returns the alerts matching the filter, keeping their order.
func (f Filter) Apply(alerts []Alert) []Alert {
	filtered := make([]Alert, 0, len(alerts))
	for _, a := range alerts {
		if f.Year != nil && a.Year != *f.Year {
			continue
		}

		if f.Item != "" && !glob.Glob(f.Item, a.ItemName) {
			continue
		}

		filtered = append(filtered, a)
	}

	return filtered
}
