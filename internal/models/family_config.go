package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

// familyConfigSlot is the value of the unique slot column of the single
// family configuration row.
const familyConfigSlot = 1

// percentageTolerance is the allowed deviation of the member percentage sum from 100.
var percentageTolerance = decimal.NewFromFloat(0.1)

// FamilyConfig is the configuration of the family the budget belongs to.
//
// There is exactly one FamilyConfig. Use GetFamilyConfig to read it, the
// row is created with default values on first access.
type FamilyConfig struct {
	DefaultModel
	Slot         int          `json:"-" gorm:"uniqueIndex;not null"`
	Members      Members      `json:"members"`       // Family members contributing income
	Categories   Categories   `json:"categories"`    // User defined expense categories
	BankAccounts BankAccounts `json:"bank_accounts"` // Bank accounts
}

// Member is a family member.
type Member struct {
	ID         string          `json:"id" example:"0b2a4c1e-8f3d-4a5e-9c6b-7d8e9f0a1b2c"` // ID of the member
	Name       string          `json:"name" example:"Nata"`                                // Name of the member
	Percentage decimal.Decimal `json:"percentage" example:"52"`                            // Share of the household budget in percent
}

// Category is a user defined expense category.
type Category struct {
	ID    string `json:"id" example:"3b1ea324-d438-4419-882a-2fc91d71772f"` // ID of the category
	Name  string `json:"name" example:"Casa"`                               // Name of the category
	Icon  string `json:"icon" example:"home"`                               // Icon identifier for the frontend
	Color string `json:"color" example:"#3b82f6"`                           // Display color
}

// BankAccount is a bank account of the family.
type BankAccount struct {
	ID    string `json:"id" example:"8c1f6a0e-52a4-4a53-8f0b-e8e5e4a8e3a1"` // ID of the account
	Name  string `json:"name" example:"Cuenta Principal"`                   // Name of the account
	Type  string `json:"type" example:"checking"`                           // Type of account, e.g. checking or savings
	Color string `json:"color" example:"#3b82f6"`                           // Display color
}

func (FamilyConfig) TableName() string {
	return "family_configs"
}

func (f *FamilyConfig) BeforeSave(_ *gorm.DB) error {
	f.Slot = familyConfigSlot

	for i := range f.Members {
		f.Members[i].Name = strings.TrimSpace(f.Members[i].Name)
		if f.Members[i].ID == "" {
			f.Members[i].ID = uuid.NewString()
		}
	}

	for i := range f.Categories {
		f.Categories[i].Name = strings.TrimSpace(f.Categories[i].Name)
		if f.Categories[i].ID == "" {
			f.Categories[i].ID = uuid.NewString()
		}
	}

	for i := range f.BankAccounts {
		f.BankAccounts[i].Name = strings.TrimSpace(f.BankAccounts[i].Name)
		if f.BankAccounts[i].ID == "" {
			f.BankAccounts[i].ID = uuid.NewString()
		}
	}

	return nil
}

// DefaultFamilyConfig returns the configuration a new installation starts with.
func DefaultFamilyConfig() FamilyConfig {
	return FamilyConfig{
		Members: Members{
			{ID: uuid.NewString(), Name: "Nata", Percentage: decimal.NewFromInt(52)},
			{ID: uuid.NewString(), Name: "Jon", Percentage: decimal.NewFromInt(48)},
		},
		Categories: Categories{
			{ID: uuid.NewString(), Name: "Niños", Icon: "baby", Color: "#ec4899"},
			{ID: uuid.NewString(), Name: "Casa", Icon: "home", Color: "#3b82f6"},
			{ID: uuid.NewString(), Name: "Transporte", Icon: "car", Color: "#f59e0b"},
			{ID: uuid.NewString(), Name: "Entretenimiento", Icon: "gamepad", Color: "#8b5cf6"},
		},
		BankAccounts: BankAccounts{
			{ID: uuid.NewString(), Name: "Cuenta Principal", Type: "checking", Color: "#3b82f6"},
			{ID: uuid.NewString(), Name: "Ahorros", Type: "savings", Color: "#10b981"},
		},
	}
}

// GetFamilyConfig returns the family configuration, creating the default
// configuration if none exists yet.
func GetFamilyConfig(db *gorm.DB) (FamilyConfig, error) {
	var config FamilyConfig
	err := db.
		Where(FamilyConfig{Slot: familyConfigSlot}).
		Attrs(DefaultFamilyConfig()).
		FirstOrCreate(&config).Error

	// Another request created the row between our read and insert
	if errors.Is(err, ErrFamilyConfigNotUnique) {
		config = FamilyConfig{}
		err = db.Where(FamilyConfig{Slot: familyConfigSlot}).First(&config).Error
	}

	if err != nil {
		return FamilyConfig{}, err
	}

	return config, nil
}

// CategoryName returns the name of the category with the given ID.
// ok is false when no such category is configured.
func (f FamilyConfig) CategoryName(id string) (name string, ok bool) {
	idx := slices.IndexFunc(f.Categories, func(c Category) bool { return c.ID == id })
	if idx == -1 {
		return "", false
	}

	return f.Categories[idx].Name, true
}

// Member returns the member with the given ID.
func (f FamilyConfig) Member(id string) (Member, bool) {
	idx := slices.IndexFunc(f.Members, func(m Member) bool { return m.ID == id })
	if idx == -1 {
		return Member{}, false
	}

	return f.Members[idx], true
}

// CategoryIndex returns the position of the category in the configuration or -1.
func (f FamilyConfig) CategoryIndex(id string) int {
	return slices.IndexFunc(f.Categories, func(c Category) bool { return c.ID == id })
}

// ValidatePercentages verifies that the member percentages add up to 100
// with a tolerance of 0.1.
func ValidatePercentages(members Members) error {
	total := decimal.Zero
	for _, m := range members {
		total = total.Add(m.Percentage)
	}

	if total.Sub(decimal.NewFromInt(100)).Abs().GreaterThan(percentageTolerance) {
		return fmt.Errorf("%w (actual: %s%%)", ErrMemberPercentages, total)
	}

	return nil
}

// Export returns the family configuration for export.
func (FamilyConfig) Export() (json.RawMessage, error) {
	var configs []FamilyConfig
	err := DB.Find(&configs).Error
	if err != nil {
		return nil, err
	}

	j, err := json.Marshal(&configs)
	if err != nil {
		return json.RawMessage{}, err
	}
	return json.RawMessage(j), nil
}
