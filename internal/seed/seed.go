// Package seed generates sample month records.
package seed

import (
	"math/rand/v2"
	"strings"

	"github.com/family-budget/backend/internal/labels"
	"github.com/family-budget/backend/internal/models"
	"github.com/shopspring/decimal"
)

// kidsCategory is the name of the category that receives sample expenses.
const kidsCategory = "niños"

type sample struct {
	name   string
	budget int64
}

var (
	fixed = []sample{
		{"Hipoteca", 1500},
		{"Servicios", 200},
		{"Internet", 60},
		{"Seguros", 150},
	}

	variable = []sample{
		{"Restaurantes", 300},
		{"Supermercado", 600},
		{"Ropa", 150},
	}
)

// Sample returns twelve month records for the year.
//
// The records are fully determined by the config and the seed. Members
// with more than 50 percent get a base income of 4500, all others 3500.
// If a category named "Niños" is configured, it gets school and activity
// expenses.
func Sample(config models.FamilyConfig, year int, seed uint64, lbl labels.Set) []models.MonthRecord {
	r := rand.New(rand.NewPCG(seed, uint64(year)))

	// between returns a random integer in [lo, hi]
	between := func(lo, hi int64) int64 {
		return lo + r.Int64N(hi-lo+1)
	}

	var kids string
	for _, c := range config.Categories {
		if strings.ToLower(c.Name) == kidsCategory {
			kids = c.ID
			break
		}
	}

	months := make([]models.MonthRecord, 0, 12)
	for month := 1; month <= 12; month++ {
		income := models.AmountMap{}
		for _, m := range config.Members {
			base := int64(3500)
			if m.Percentage.GreaterThan(decimal.NewFromInt(50)) {
				base = 4500
			}
			income[m.ID] = decimal.NewFromInt(base + between(-200, 200))
		}

		categories := models.CategoryExpenses{}
		if kids != "" {
			categories[kids] = models.ExpenseList{
				{Name: "Escuela", Budget: decimal.NewFromInt(500), Actual: decimal.NewFromInt(500 + between(-50, 50))},
				{Name: "Actividades", Budget: decimal.NewFromInt(200), Actual: decimal.NewFromInt(200 + between(-50, 100))},
			}
		}

		fixedExpenses := make(models.ExpenseList, 0, len(fixed))
		for _, s := range fixed {
			fixedExpenses = append(fixedExpenses, models.ExpenseItem{
				Name:   s.name,
				Budget: decimal.NewFromInt(s.budget),
				Actual: decimal.NewFromInt(s.budget + between(-20, 50)),
			})
		}

		variableExpenses := make(models.ExpenseList, 0, len(variable))
		for _, s := range variable {
			variableExpenses = append(variableExpenses, models.ExpenseItem{
				Name:   s.name,
				Budget: decimal.NewFromInt(s.budget),
				Actual: decimal.NewFromInt(s.budget + between(-100, 150)),
			})
		}

		months = append(months, models.MonthRecord{
			Year:             year,
			Month:            month,
			MonthName:        lbl.MonthName(month),
			Income:           income,
			FixedExpenses:    fixedExpenses,
			VariableExpenses: variableExpenses,
			CategoryExpenses: categories,
			BankBalances:     models.AmountMap{},
			Savings:          models.AmountMap{},
		})
	}

	return months
}
