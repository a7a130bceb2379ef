package models

import (
	"errors"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")
)

var (
	ErrMonthNotUnique        = errors.New("a month record already exists for this year and month")
	ErrMonthOutOfRange       = errors.New("the month must be between 1 and 12")
	ErrMemberPercentages     = errors.New("the member percentages must add up to 100%")
	ErrFamilyConfigNotUnique = errors.New("the family configuration already exists")
	ErrAlertKeyMissing       = errors.New("the alert_key must be set")
)
