package v1

import (
	"github.com/family-budget/backend/internal/alerts"
	"github.com/family-budget/backend/internal/models"
)

type AlertQueryFilter struct {
	Year *int   `form:"year"` // By year
	Item string `form:"item"` // By item name. Supports "*" as wildcard.
}

func (f AlertQueryFilter) filter() alerts.Filter {
	return alerts.Filter{
		Year: f.Year,
		Item: f.Item,
	}
}

type AlertListResponse struct {
	Data  []alerts.Alert `json:"data"`                                                                // Active alerts, largest overage first
	Error *string        `json:"error" example:"an error occurred on the server during your request"` // The error, if any occurred
}

// DismissalEditable is the data needed to dismiss an alert
type DismissalEditable struct {
	AlertKey string `json:"alert_key" example:"2024-1-fixed-Hipoteca"` // Key of the alert to dismiss
}

type DismissalResponse struct {
	Data  *models.DismissedAlert `json:"data"`                                      // The dismissal
	Error *string                `json:"error" example:"the alert_key must be set"` // The error, if any occurred
}

// AlertsCleared is the result of dismissing all active alerts
type AlertsCleared struct {
	Dismissed int `json:"dismissed" example:"3"` // Number of alerts that were dismissed
}

type AlertsClearedResponse struct {
	Data  *AlertsCleared `json:"data"`                                                                // Data for the dismissal
	Error *string        `json:"error" example:"an error occurred on the server during your request"` // The error, if any occurred
}
