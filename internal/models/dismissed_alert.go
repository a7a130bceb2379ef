package models

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DismissedAlert records that the alert with AlertKey was dismissed.
//
// The log is append only. The same key may appear more than once.
type DismissedAlert struct {
	ID          uuid.UUID `json:"id" example:"2a1c4f6e-2b7d-4d10-a6b3-0f1e2d3c4b5a"`      // UUID of the dismissal
	AlertKey    string    `json:"alert_key" gorm:"index" example:"2024-1-fixed-Hipoteca"` // Key of the dismissed alert
	DismissedAt time.Time `json:"dismissed_at" example:"2024-02-03T10:11:12Z"`            // Time the alert was dismissed
}

func (DismissedAlert) TableName() string {
	return "dismissed_alerts"
}

func (d *DismissedAlert) BeforeCreate(tx *gorm.DB) error {
	d.AlertKey = strings.TrimSpace(d.AlertKey)
	if d.AlertKey == "" {
		return ErrAlertKeyMissing
	}

	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}

	if d.DismissedAt.IsZero() {
		d.DismissedAt = tx.NowFunc()
	}

	return nil
}

func (d *DismissedAlert) AfterFind(_ *gorm.DB) error {
	d.DismissedAt = d.DismissedAt.In(time.UTC)
	return nil
}

// DismissAlert appends a dismissal for the key to the log.
func DismissAlert(db *gorm.DB, key string) (DismissedAlert, error) {
	dismissal := DismissedAlert{AlertKey: key}
	err := db.Create(&dismissal).Error
	if err != nil {
		return DismissedAlert{}, err
	}

	return dismissal, nil
}

// DismissAlerts appends a dismissal for every key in a single transaction.
func DismissAlerts(db *gorm.DB, keys []string) error {
	if len(keys) == 0 {
		return nil
	}

	return Transaction(db, func(tx *gorm.DB) error {
		now := tx.NowFunc()
		for _, key := range keys {
			err := tx.Create(&DismissedAlert{AlertKey: key, DismissedAt: now}).Error
			if err != nil {
				return err
			}
		}
		return nil
	})
}

// DismissedKeys returns the set of all dismissed alert keys.
func DismissedKeys(db *gorm.DB) (map[string]struct{}, error) {
	var keys []string
	err := db.Model(&DismissedAlert{}).Pluck("alert_key", &keys).Error
	if err != nil {
		return nil, err
	}

	set := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		set[k] = struct{}{}
	}
	return set, nil
}

// Export returns the dismissal log for export.
func (DismissedAlert) Export() (json.RawMessage, error) {
	var dismissals []DismissedAlert
	err := DB.Order("dismissed_at ASC").Find(&dismissals).Error
	if err != nil {
		return nil, err
	}

	j, err := json.Marshal(&dismissals)
	if err != nil {
		return json.RawMessage{}, err
	}
	return json.RawMessage(j), nil
}
