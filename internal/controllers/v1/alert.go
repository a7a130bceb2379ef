package v1

import (
	"net/http"

	"github.com/family-budget/backend/internal/alerts"
	"github.com/family-budget/backend/internal/httputil"
	"github.com/family-budget/backend/internal/models"
	"github.com/gin-gonic/gin"
)

func RegisterAlertRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsAlerts)
		r.GET("", GetAlerts)
		r.DELETE("", ClearAlerts)
	}

	{
		r.OPTIONS("/dismissals", httputil.OptionsPost)
		r.POST("/dismissals", CreateDismissal)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Alerts
// @Success		204
// @Router			/v1/alerts [options]
func OptionsAlerts(c *gin.Context) {
	httputil.OptionsGetDelete(c)
}

// @Summary		Get alerts
// @Description	Returns an alert for every expense that exceeds its budget and has not been dismissed.
// @Description	The alerts are ordered by overage, largest first.
// @Tags			Alerts
// @Produce		json
// @Success		200		{object}	AlertListResponse
// @Failure		400		{object}	AlertListResponse
// @Failure		500		{object}	AlertListResponse
// @Param			year	query		int		false	"Filter by year"
// @Param			item	query		string	false	"Filter by item name, supports * as wildcard"
// @Router			/v1/alerts [get]
func GetAlerts(c *gin.Context) {
	var filter AlertQueryFilter
	err := c.ShouldBindQuery(&filter)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), AlertListResponse{
			Error: &s,
		})
		return
	}

	months, config, dismissed, err := alertInputs()
	if err != nil {
		s := err.Error()
		c.JSON(status(err), AlertListResponse{
			Error: &s,
		})
		return
	}

	data := filter.filter().Apply(alerts.Compute(months, config, dismissed, httputil.Labels(c)))
	if data == nil {
		data = []alerts.Alert{}
	}

	c.JSON(http.StatusOK, AlertListResponse{Data: data})
}

// @Summary		Dismiss alert
// @Description	Dismisses the alert with the given key. Dismissing an alert twice is allowed.
// @Tags			Alerts
// @Accept			json
// @Produce		json
// @Success		201			{object}	DismissalResponse
// @Failure		400			{object}	DismissalResponse
// @Failure		500			{object}	DismissalResponse
// @Param			dismissal	body		DismissalEditable	true	"Dismissal"
// @Router			/v1/alerts/dismissals [post]
func CreateDismissal(c *gin.Context) {
	var editable DismissalEditable
	err := httputil.BindData(c, &editable)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), DismissalResponse{
			Error: &s,
		})
		return
	}

	dismissal, err := models.DismissAlert(models.DB, editable.AlertKey)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), DismissalResponse{
			Error: &s,
		})
		return
	}

	c.JSON(http.StatusCreated, DismissalResponse{Data: &dismissal})
}

// @Summary		Dismiss all alerts
// @Description	Dismisses every currently active alert and returns how many were dismissed
// @Tags			Alerts
// @Produce		json
// @Success		200	{object}	AlertsClearedResponse
// @Failure		500	{object}	AlertsClearedResponse
// @Router			/v1/alerts [delete]
func ClearAlerts(c *gin.Context) {
	months, config, dismissed, err := alertInputs()
	if err != nil {
		s := err.Error()
		c.JSON(status(err), AlertsClearedResponse{
			Error: &s,
		})
		return
	}

	keys := alerts.Undismissed(months, config, dismissed)
	err = models.DismissAlerts(models.DB, keys)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), AlertsClearedResponse{
			Error: &s,
		})
		return
	}

	c.JSON(http.StatusOK, AlertsClearedResponse{Data: &AlertsCleared{Dismissed: len(keys)}})
}

// alertInputs loads everything the alert computation needs.
func alertInputs() ([]models.MonthRecord, models.FamilyConfig, map[string]struct{}, error) {
	config, err := models.GetFamilyConfig(models.DB)
	if err != nil {
		return nil, models.FamilyConfig{}, nil, err
	}

	months, err := models.ListMonths(models.DB, nil)
	if err != nil {
		return nil, models.FamilyConfig{}, nil, err
	}

	dismissed, err := models.DismissedKeys(models.DB)
	if err != nil {
		return nil, models.FamilyConfig{}, nil, err
	}

	return months, config, dismissed, nil
}
