package httputil

import (
	"github.com/family-budget/backend/internal/labels"
	"github.com/gin-gonic/gin"
)

type ContextKey string

const (
	ContextURL    ContextKey = "requestURL"
	ContextLabels ContextKey = "labels"
)

// URL returns the base URL of the API as set by the router.
func URL(c *gin.Context) string {
	return c.GetString(string(ContextURL))
}

// Labels returns the label set chosen for the request.
//
// If none is set, the English labels are returned.
func Labels(c *gin.Context) labels.Set {
	if v, ok := c.Get(string(ContextLabels)); ok {
		if s, ok := v.(labels.Set); ok {
			return s
		}
	}
	return labels.English()
}
