// Package aggregation folds month records into annual summaries.
package aggregation

import (
	"context"
	"errors"

	"github.com/family-budget/backend/internal/labels"
	"github.com/family-budget/backend/internal/models"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
	"golang.org/x/sync/errgroup"
)

var ErrNoDataForYear = errors.New("there is no data for this year")

// monthsPerYear is the number of months a projection extrapolates to.
const monthsPerYear = 12

// MonthTotals are the computed sums of a single month record.
type MonthTotals struct {
	Income   decimal.Decimal
	Fixed    decimal.Decimal
	Variable decimal.Decimal
	Category decimal.Decimal
	Expenses decimal.Decimal // Sum of fixed, variable and category expenses
	Savings  decimal.Decimal // Income minus expenses
}

// Totals computes the sums of a month record.
func Totals(m models.MonthRecord) MonthTotals {
	t := MonthTotals{
		Income:   m.Income.Sum(),
		Fixed:    m.FixedExpenses.ActualSum(),
		Variable: m.VariableExpenses.ActualSum(),
		Category: m.CategoryExpenses.ActualSum(),
	}

	t.Expenses = t.Fixed.Add(t.Variable).Add(t.Category)
	t.Savings = t.Income.Sub(t.Expenses)
	return t
}

// MonthSummary is the summary of a single month within an AnnualSummary.
type MonthSummary struct {
	Month            int              `json:"month" example:"1"`                  // Month of the year
	MonthName        string           `json:"month_name" example:"January"`       // Display name of the month
	Income           decimal.Decimal  `json:"income" example:"8000"`              // Sum of all income
	Expenses         decimal.Decimal  `json:"expenses" example:"1500"`            // Sum of all expenses
	Savings          decimal.Decimal  `json:"savings" example:"6500"`             // Income minus expenses
	FixedExpenses    decimal.Decimal  `json:"fixed_expenses" example:"1500"`      // Sum of actual fixed expenses
	VariableExpenses decimal.Decimal  `json:"variable_expenses" example:"0"`      // Sum of actual variable expenses
	CategoryExpenses decimal.Decimal  `json:"category_expenses" example:"0"`      // Sum of actual expenses in all categories
	BankBalances     models.AmountMap `json:"bank_balances"`                      // Bank balances as recorded for the month
}

// SavingsProjection extrapolates the savings of the tracked months to the full year.
type SavingsProjection struct {
	CurrentSavings         decimal.Decimal `json:"current_savings" example:"6500"`           // Savings of all tracked months
	AvgMonthlySavings      decimal.Decimal `json:"avg_monthly_savings" example:"6500"`       // Average savings per tracked month
	ProjectedAnnualSavings decimal.Decimal `json:"projected_annual_savings" example:"78000"` // Current savings plus the average for every remaining month
	MonthsTracked          int             `json:"months_tracked" example:"1"`               // Number of months with records
	RemainingMonths        int             `json:"remaining_months" example:"11"`            // Months of the year without records
}

// AnnualSummary is the summary of all month records of one year.
type AnnualSummary struct {
	Year                int                        `json:"year" example:"2024"`
	TotalIncome         decimal.Decimal            `json:"total_income" example:"8000"`
	TotalExpenses       decimal.Decimal            `json:"total_expenses" example:"1500"`
	TotalSavings        decimal.Decimal            `json:"total_savings" example:"6500"`
	MonthlyData         []MonthSummary             `json:"monthly_data"`
	ExpenseByCategory   map[string]decimal.Decimal `json:"expense_by_category"`
	MemberContributions map[string]decimal.Decimal `json:"member_contributions"`
	SavingsProjection   SavingsProjection          `json:"savings_projection"`
}

// Annual computes the summary for the month records of a year.
//
// The months do not need to be ordered. An empty list of months returns
// ErrNoDataForYear.
//
// expense_by_category is keyed by display label and fed from three sources:
// the resolved name of every category in category_expenses, and the name of
// every fixed and every variable expense item. A fixed expense that has the
// same name as a category therefore adds to the category's total. Categories
// that are not configured and items without a name use the Other label. An
// item whose name is set to the empty string counts as an item without a name.
//
// Income of members that are not configured is not attributed to anyone in
// member_contributions, it is still part of the total income.
func Annual(year int, months []models.MonthRecord, config models.FamilyConfig, lbl labels.Set) (AnnualSummary, error) {
	if len(months) == 0 {
		return AnnualSummary{}, ErrNoDataForYear
	}

	sorted := slices.Clone(months)
	slices.SortStableFunc(sorted, func(a, b models.MonthRecord) int {
		return a.Month - b.Month
	})

	summary := AnnualSummary{
		Year:                year,
		TotalIncome:         decimal.Zero,
		TotalExpenses:       decimal.Zero,
		MonthlyData:         make([]MonthSummary, 0, len(sorted)),
		ExpenseByCategory:   make(map[string]decimal.Decimal),
		MemberContributions: make(map[string]decimal.Decimal, len(config.Members)),
	}

	for _, member := range config.Members {
		summary.MemberContributions[member.Name] = decimal.Zero
	}

	add := func(label string, amount decimal.Decimal) {
		summary.ExpenseByCategory[label] = summary.ExpenseByCategory[label].Add(amount)
	}

	for _, m := range sorted {
		totals := Totals(m)
		summary.TotalIncome = summary.TotalIncome.Add(totals.Income)
		summary.TotalExpenses = summary.TotalExpenses.Add(totals.Expenses)

		for categoryID, items := range m.CategoryExpenses {
			name, ok := config.CategoryName(categoryID)
			if !ok {
				name = lbl.Other
			}
			add(name, items.ActualSum())
		}

		for memberID, amount := range m.Income {
			if member, ok := config.Member(memberID); ok {
				summary.MemberContributions[member.Name] = summary.MemberContributions[member.Name].Add(amount)
			}
		}

		for _, item := range m.FixedExpenses {
			add(itemLabel(item, lbl), item.Actual)
		}

		for _, item := range m.VariableExpenses {
			add(itemLabel(item, lbl), item.Actual)
		}

		bankBalances := m.BankBalances
		if bankBalances == nil {
			bankBalances = models.AmountMap{}
		}

		summary.MonthlyData = append(summary.MonthlyData, MonthSummary{
			Month:            m.Month,
			MonthName:        m.MonthName,
			Income:           totals.Income,
			Expenses:         totals.Expenses,
			Savings:          totals.Savings,
			FixedExpenses:    totals.Fixed,
			VariableExpenses: totals.Variable,
			CategoryExpenses: totals.Category,
			BankBalances:     bankBalances,
		})
	}

	summary.TotalSavings = summary.TotalIncome.Sub(summary.TotalExpenses)
	summary.SavingsProjection = project(summary.TotalSavings, len(sorted))

	return summary, nil
}

// project extrapolates the savings of the tracked months to the full year.
//
// remaining_months is not clamped. With more than twelve tracked months it
// becomes negative.
func project(current decimal.Decimal, tracked int) SavingsProjection {
	avg := current.Div(decimal.NewFromInt(int64(tracked)))
	remaining := monthsPerYear - tracked

	return SavingsProjection{
		CurrentSavings:         current,
		AvgMonthlySavings:      avg,
		ProjectedAnnualSavings: current.Add(avg.Mul(decimal.NewFromInt(int64(remaining)))),
		MonthsTracked:          tracked,
		RemainingMonths:        remaining,
	}
}

func itemLabel(item models.ExpenseItem, lbl labels.Set) string {
	if item.Name == "" {
		return lbl.Other
	}
	return item.Name
}

// AnnualAll computes the summaries of every year that has month records.
//
// The years are summarized concurrently. The result is ordered by year.
func AnnualAll(ctx context.Context, months []models.MonthRecord, config models.FamilyConfig, lbl labels.Set) ([]AnnualSummary, error) {
	byYear := make(map[int][]models.MonthRecord)
	for _, m := range months {
		byYear[m.Year] = append(byYear[m.Year], m)
	}

	years := make([]int, 0, len(byYear))
	for y := range byYear {
		years = append(years, y)
	}
	slices.Sort(years)

	summaries := make([]AnnualSummary, len(years))
	g, ctx := errgroup.WithContext(ctx)

	for i, year := range years {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			s, err := Annual(year, byYear[year], config, lbl)
			if err != nil {
				return err
			}

			summaries[i] = s
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return summaries, nil
}
