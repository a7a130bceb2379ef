package v1

import (
	"fmt"

	"github.com/family-budget/backend/internal/httputil"
	"github.com/family-budget/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// Values used for attributes that are not set when adding to the configuration
var (
	defaultPercentage  = decimal.NewFromInt(50)
	defaultIcon        = "folder"
	defaultColor       = "#3b82f6"
	defaultAccountType = "checking"
)

// FamilyConfigEditable represents all user configurable parameters
type FamilyConfigEditable struct {
	Members      models.Members      `json:"members"`       // Family members contributing income
	Categories   models.Categories   `json:"categories"`    // Expense categories
	BankAccounts models.BankAccounts `json:"bank_accounts"` // Bank accounts
}

type FamilyConfigLinks struct {
	Self         string `json:"self" example:"https://example.com/api/v1/family-config"`                        // The family configuration itself
	Members      string `json:"members" example:"https://example.com/api/v1/family-config/members"`             // Adding members
	Categories   string `json:"categories" example:"https://example.com/api/v1/family-config/categories"`       // Adding categories
	BankAccounts string `json:"bank_accounts" example:"https://example.com/api/v1/family-config/bank-accounts"` // Adding bank accounts
}

type FamilyConfig struct {
	models.FamilyConfig
	Links FamilyConfigLinks `json:"links"`
}

func newFamilyConfig(c *gin.Context, model models.FamilyConfig) FamilyConfig {
	url := fmt.Sprintf("%s/v1/family-config", httputil.URL(c))

	return FamilyConfig{
		FamilyConfig: model,
		Links: FamilyConfigLinks{
			Self:         url,
			Members:      url + "/members",
			Categories:   url + "/categories",
			BankAccounts: url + "/bank-accounts",
		},
	}
}

type FamilyConfigResponse struct {
	Data  *FamilyConfig `json:"data"`                                                                      // Data for the family configuration
	Error *string       `json:"error" example:"the member percentages must add up to 100% (actual: 99%)"` // The error, if any occurred
}

// MemberEditable is the data needed to add a member
type MemberEditable struct {
	Name       string           `json:"name" example:"Nata"`     // Name of the member
	Percentage *decimal.Decimal `json:"percentage" example:"52"` // Share of the household budget in percent. Defaults to 50.
}

func (editable MemberEditable) model() models.Member {
	percentage := defaultPercentage
	if editable.Percentage != nil {
		percentage = *editable.Percentage
	}

	return models.Member{
		Name:       editable.Name,
		Percentage: percentage,
	}
}

type MemberResponse struct {
	Data  *models.Member `json:"data"`                                 // Data for the member
	Error *string        `json:"error" example:"the name must be set"` // The error, if any occurred
}

// CategoryEditable is the data needed to add a category
type CategoryEditable struct {
	Name  string `json:"name" example:"Casa"`     // Name of the category
	Icon  string `json:"icon" example:"home"`     // Icon identifier. Defaults to "folder".
	Color string `json:"color" example:"#3b82f6"` // Display color. Defaults to "#3b82f6".
}

func (editable CategoryEditable) model() models.Category {
	category := models.Category{
		Name:  editable.Name,
		Icon:  editable.Icon,
		Color: editable.Color,
	}

	if category.Icon == "" {
		category.Icon = defaultIcon
	}

	if category.Color == "" {
		category.Color = defaultColor
	}

	return category
}

type CategoryResponse struct {
	Data  *models.Category `json:"data"`                                 // Data for the category
	Error *string          `json:"error" example:"the name must be set"` // The error, if any occurred
}

// BankAccountEditable is the data needed to add a bank account
type BankAccountEditable struct {
	Name  string `json:"name" example:"Ahorros"`  // Name of the account
	Type  string `json:"type" example:"savings"`  // Type of the account. Defaults to "checking".
	Color string `json:"color" example:"#10b981"` // Display color. Defaults to "#3b82f6".
}

func (editable BankAccountEditable) model() models.BankAccount {
	account := models.BankAccount{
		Name:  editable.Name,
		Type:  editable.Type,
		Color: editable.Color,
	}

	if account.Type == "" {
		account.Type = defaultAccountType
	}

	if account.Color == "" {
		account.Color = defaultColor
	}

	return account
}

type BankAccountResponse struct {
	Data  *models.BankAccount `json:"data"`                                 // Data for the bank account
	Error *string             `json:"error" example:"the name must be set"` // The error, if any occurred
}
