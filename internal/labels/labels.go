// Package labels provides the display strings used in computed results
// and generated workbooks.
package labels

import (
	"fmt"

	"golang.org/x/text/language"
)

// Set is a complete set of display labels for one language.
type Set struct {
	Tag language.Tag

	// Other is used for categories that are not configured and for
	// expense items without a name.
	Other            string
	FixedExpenses    string
	VariableExpenses string

	AnnualSummary  string
	SummaryHeaders [4]string

	Instructions      string
	InstructionsTitle string
	InstructionLines  []string

	TemplateTitle     string // format string taking the upper-cased month name
	IncomeHeader      string
	AmountHeader      string
	MemberPlaceholder string // format string taking the member number

	Months [12]string

	TemplateFilename string
	AnnualFilename   string // format string taking the year
}

var english = Set{
	Tag:              language.English,
	Other:            "Other",
	FixedExpenses:    "Fixed Expenses",
	VariableExpenses: "Variable Expenses",
	AnnualSummary:    "Annual Summary",
	SummaryHeaders:   [4]string{"Month", "Income", "Expenses", "Savings"},

	Instructions:      "INSTRUCTIONS",
	InstructionsTitle: "FAMILY BUDGET TEMPLATE",
	InstructionLines: []string{
		"1. Every sheet represents one month of the year",
		"2. Fill in the INCOME of every family member",
		"3. Put expenses that do not change under FIXED EXPENSES",
		"4. Put expenses that vary under VARIABLE EXPENSES",
	},

	TemplateTitle:     "BUDGET %s",
	IncomeHeader:      "INCOME",
	AmountHeader:      "AMOUNT",
	MemberPlaceholder: "Member %d",

	Months: [12]string{
		"January", "February", "March", "April", "May", "June",
		"July", "August", "September", "October", "November", "December",
	},

	TemplateFilename: "budget_template.xlsx",
	AnnualFilename:   "budget_%d.xlsx",
}

var spanish = Set{
	Tag:              language.Spanish,
	Other:            "Otros",
	FixedExpenses:    "Gastos Fijos",
	VariableExpenses: "Gastos Variables",
	AnnualSummary:    "Resumen Anual",
	SummaryHeaders:   [4]string{"Mes", "Ingresos", "Gastos", "Ahorro"},

	Instructions:      "INSTRUCCIONES",
	InstructionsTitle: "PLANTILLA DE PRESUPUESTO FAMILIAR",
	InstructionLines: []string{
		"1. Cada hoja representa un mes del año",
		"2. Llena los INGRESOS de cada miembro de la familia",
		"3. En GASTOS FIJOS coloca gastos que no cambian",
		"4. En GASTOS VARIABLES coloca gastos que varían",
	},

	TemplateTitle:     "PRESUPUESTO %s",
	IncomeHeader:      "INGRESOS",
	AmountHeader:      "MONTO",
	MemberPlaceholder: "Miembro %d",

	Months: [12]string{
		"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
		"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre",
	},

	TemplateFilename: "plantilla_presupuesto.xlsx",
	AnnualFilename:   "presupuesto_%d.xlsx",
}

var (
	supported = []Set{english, spanish}
	matcher   = language.NewMatcher([]language.Tag{english.Tag, spanish.Tag})
)

// English returns the English label set.
func English() Set {
	return english
}

// Spanish returns the Spanish label set.
func Spanish() Set {
	return spanish
}

// For returns the label set best matching the given language preferences.
//
// Each preference can be a single tag ("es") or a full Accept-Language
// header value ("es-MX,es;q=0.9,en;q=0.8"). Earlier preferences win over
// later ones. If nothing matches, English is returned.
func For(preferences ...string) Set {
	for _, p := range preferences {
		if p == "" {
			continue
		}

		tags, _, err := language.ParseAcceptLanguage(p)
		if err != nil || len(tags) == 0 {
			continue
		}

		_, idx, confidence := matcher.Match(tags...)
		if confidence != language.No {
			return supported[idx]
		}
	}

	return english
}

// MonthName returns the name of the month, 1 being the first month
// of the year.
func (s Set) MonthName(month int) string {
	if month < 1 || month > 12 {
		return fmt.Sprint(month)
	}
	return s.Months[month-1]
}
