package v1

import (
	"net/http"
	"strings"

	"github.com/family-budget/backend/internal/httputil"
	"github.com/family-budget/backend/internal/models"
	"github.com/gin-gonic/gin"
	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

// RegisterFamilyConfigRoutes registers the routes for the family configuration
// with the RouterGroup that is passed.
func RegisterFamilyConfigRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsFamilyConfig)
		r.GET("", GetFamilyConfig)
		r.PATCH("", UpdateFamilyConfig)
	}

	{
		r.OPTIONS("/members", httputil.OptionsPost)
		r.POST("/members", CreateMember)
		r.OPTIONS("/members/:id", httputil.OptionsDelete)
		r.DELETE("/members/:id", DeleteMember)
	}

	{
		r.OPTIONS("/categories", httputil.OptionsPost)
		r.POST("/categories", CreateCategory)
		r.OPTIONS("/categories/:id", httputil.OptionsDelete)
		r.DELETE("/categories/:id", DeleteCategory)
	}

	{
		r.OPTIONS("/bank-accounts", httputil.OptionsPost)
		r.POST("/bank-accounts", CreateBankAccount)
		r.OPTIONS("/bank-accounts/:id", httputil.OptionsDelete)
		r.DELETE("/bank-accounts/:id", DeleteBankAccount)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Family Configuration
// @Success		204
// @Router			/v1/family-config [options]
func OptionsFamilyConfig(c *gin.Context) {
	httputil.OptionsGetPatch(c)
}

// @Summary		Get family configuration
// @Description	Returns the family configuration. If none exists, the default configuration is created.
// @Tags			Family Configuration
// @Produce		json
// @Success		200	{object}	FamilyConfigResponse
// @Failure		500	{object}	FamilyConfigResponse
// @Router			/v1/family-config [get]
func GetFamilyConfig(c *gin.Context) {
	config, err := models.GetFamilyConfig(models.DB)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), FamilyConfigResponse{
			Error: &s,
		})
		return
	}

	data := newFamilyConfig(c, config)
	c.JSON(http.StatusOK, FamilyConfigResponse{Data: &data})
}

// @Summary		Update family configuration
// @Description	Updates the family configuration. Only values to be updated need to be specified.
// @Description	The percentages of the members must add up to 100.
// @Tags			Family Configuration
// @Accept			json
// @Produce		json
// @Success		200				{object}	FamilyConfigResponse
// @Failure		400				{object}	FamilyConfigResponse
// @Failure		500				{object}	FamilyConfigResponse
// @Param			familyConfig	body		FamilyConfigEditable	true	"Family configuration"
// @Router			/v1/family-config [patch]
func UpdateFamilyConfig(c *gin.Context) {
	updateFields, err := httputil.GetBodyFields(c, FamilyConfigEditable{})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), FamilyConfigResponse{
			Error: &s,
		})
		return
	}

	var data FamilyConfigEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), FamilyConfigResponse{
			Error: &s,
		})
		return
	}

	if slices.Contains(updateFields, "Members") {
		err = models.ValidatePercentages(data.Members)
		if err != nil {
			s := err.Error()
			c.JSON(status(err), FamilyConfigResponse{
				Error: &s,
			})
			return
		}
	}

	err = updateFamilyConfig(func(config *models.FamilyConfig) error {
		if slices.Contains(updateFields, "Members") {
			config.Members = data.Members
		}

		if slices.Contains(updateFields, "Categories") {
			config.Categories = data.Categories
		}

		if slices.Contains(updateFields, "BankAccounts") {
			config.BankAccounts = data.BankAccounts
		}

		return nil
	})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), FamilyConfigResponse{
			Error: &s,
		})
		return
	}

	GetFamilyConfig(c)
}

// @Summary		Add member
// @Description	Adds a member to the family configuration
// @Tags			Family Configuration
// @Accept			json
// @Produce		json
// @Success		201		{object}	MemberResponse
// @Failure		400		{object}	MemberResponse
// @Failure		500		{object}	MemberResponse
// @Param			member	body		MemberEditable	true	"Member"
// @Router			/v1/family-config/members [post]
func CreateMember(c *gin.Context) {
	var editable MemberEditable
	err := bindNamed(c, &editable, &editable.Name)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), MemberResponse{
			Error: &s,
		})
		return
	}

	var member models.Member
	err = updateFamilyConfig(func(config *models.FamilyConfig) error {
		config.Members = append(config.Members, editable.model())
		return nil
	}, func(config models.FamilyConfig) {
		member = config.Members[len(config.Members)-1]
	})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), MemberResponse{
			Error: &s,
		})
		return
	}

	c.JSON(http.StatusCreated, MemberResponse{Data: &member})
}

// @Summary		Remove member
// @Description	Removes a member from the family configuration
// @Tags			Family Configuration
// @Success		204
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		string	true	"ID of the member"
// @Router			/v1/family-config/members/{id} [delete]
func DeleteMember(c *gin.Context) {
	deleteFromFamilyConfig(c, func(config *models.FamilyConfig, id string) error {
		idx := slices.IndexFunc(config.Members, func(m models.Member) bool { return m.ID == id })
		if idx == -1 {
			return errMemberNotFound
		}

		config.Members = slices.Delete(config.Members, idx, idx+1)
		return nil
	})
}

// @Summary		Add category
// @Description	Adds an expense category to the family configuration
// @Tags			Family Configuration
// @Accept			json
// @Produce		json
// @Success		201			{object}	CategoryResponse
// @Failure		400			{object}	CategoryResponse
// @Failure		500			{object}	CategoryResponse
// @Param			category	body		CategoryEditable	true	"Category"
// @Router			/v1/family-config/categories [post]
func CreateCategory(c *gin.Context) {
	var editable CategoryEditable
	err := bindNamed(c, &editable, &editable.Name)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CategoryResponse{
			Error: &s,
		})
		return
	}

	var category models.Category
	err = updateFamilyConfig(func(config *models.FamilyConfig) error {
		config.Categories = append(config.Categories, editable.model())
		return nil
	}, func(config models.FamilyConfig) {
		category = config.Categories[len(config.Categories)-1]
	})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CategoryResponse{
			Error: &s,
		})
		return
	}

	c.JSON(http.StatusCreated, CategoryResponse{Data: &category})
}

// @Summary		Remove category
// @Description	Removes an expense category from the family configuration
// @Tags			Family Configuration
// @Success		204
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		string	true	"ID of the category"
// @Router			/v1/family-config/categories/{id} [delete]
func DeleteCategory(c *gin.Context) {
	deleteFromFamilyConfig(c, func(config *models.FamilyConfig, id string) error {
		idx := config.CategoryIndex(id)
		if idx == -1 {
			return errCategoryMissing
		}

		config.Categories = slices.Delete(config.Categories, idx, idx+1)
		return nil
	})
}

// @Summary		Add bank account
// @Description	Adds a bank account to the family configuration
// @Tags			Family Configuration
// @Accept			json
// @Produce		json
// @Success		201			{object}	BankAccountResponse
// @Failure		400			{object}	BankAccountResponse
// @Failure		500			{object}	BankAccountResponse
// @Param			bankAccount	body		BankAccountEditable	true	"Bank account"
// @Router			/v1/family-config/bank-accounts [post]
func CreateBankAccount(c *gin.Context) {
	var editable BankAccountEditable
	err := bindNamed(c, &editable, &editable.Name)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BankAccountResponse{
			Error: &s,
		})
		return
	}

	var account models.BankAccount
	err = updateFamilyConfig(func(config *models.FamilyConfig) error {
		config.BankAccounts = append(config.BankAccounts, editable.model())
		return nil
	}, func(config models.FamilyConfig) {
		account = config.BankAccounts[len(config.BankAccounts)-1]
	})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BankAccountResponse{
			Error: &s,
		})
		return
	}

	c.JSON(http.StatusCreated, BankAccountResponse{Data: &account})
}

// @Summary		Remove bank account
// @Description	Removes a bank account from the family configuration
// @Tags			Family Configuration
// @Success		204
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		string	true	"ID of the bank account"
// @Router			/v1/family-config/bank-accounts/{id} [delete]
func DeleteBankAccount(c *gin.Context) {
	deleteFromFamilyConfig(c, func(config *models.FamilyConfig, id string) error {
		idx := slices.IndexFunc(config.BankAccounts, func(a models.BankAccount) bool { return a.ID == id })
		if idx == -1 {
			return errAccountNotFound
		}

		config.BankAccounts = slices.Delete(config.BankAccounts, idx, idx+1)
		return nil
	})
}

// bindNamed binds the request body to data and verifies that the name
// is set after trimming whitespace.
func bindNamed(c *gin.Context, data any, name *string) error {
	err := httputil.BindData(c, data)
	if err != nil {
		return err
	}

	*name = strings.TrimSpace(*name)
	if *name == "" {
		return errNameMissing
	}

	return nil
}

// updateFamilyConfig loads the family configuration, applies modify to it
// and saves it in a single transaction. Each of the after functions is called
// with the saved configuration.
func updateFamilyConfig(modify func(*models.FamilyConfig) error, after ...func(models.FamilyConfig)) error {
	return models.Transaction(models.DB, func(tx *gorm.DB) error {
		config, err := models.GetFamilyConfig(tx)
		if err != nil {
			return err
		}

		err = modify(&config)
		if err != nil {
			return err
		}

		err = tx.Save(&config).Error
		if err != nil {
			return err
		}

		for _, f := range after {
			f(config)
		}
		return nil
	})
}

// deleteFromFamilyConfig removes the entry with the ID from the request URI
// from the family configuration.
func deleteFromFamilyConfig(c *gin.Context, remove func(*models.FamilyConfig, string) error) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = updateFamilyConfig(func(config *models.FamilyConfig) error {
		return remove(config, uri.ID)
	})
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
