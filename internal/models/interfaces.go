package models

import "encoding/json"

// Model is a persisted resource that can be exported.
type Model interface {
	Export() (json.RawMessage, error) // All instances of this model for export.
}

// The Registry is a slice of all models available
//
// Operations that affect all models iterate over it instead of
// listing every model explicitly.
var Registry = []Model{
	DismissedAlert{},
	FamilyConfig{},
	MonthRecord{},
}
