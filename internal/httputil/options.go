package httputil

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/render"
)

// allow answers an OPTIONS request for a resource that supports the given
// methods in addition to OPTIONS.
func allow(c *gin.Context, methods ...string) {
	c.Header("allow", strings.Join(append([]string{http.MethodOptions}, methods...), ", "))
	c.Render(http.StatusNoContent, render.JSON{})
}

// OptionsGet is used for read-only resources such as summaries and workbooks.
func OptionsGet(c *gin.Context) {
	allow(c, http.MethodGet)
}

// OptionsPost is used for actions such as creating a year or dismissing an alert.
func OptionsPost(c *gin.Context) {
	allow(c, http.MethodPost)
}

func OptionsGetPost(c *gin.Context) {
	allow(c, http.MethodGet, http.MethodPost)
}

// OptionsGetPatch is used for the family configuration singleton.
func OptionsGetPatch(c *gin.Context) {
	allow(c, http.MethodGet, http.MethodPatch)
}

func OptionsGetDelete(c *gin.Context) {
	allow(c, http.MethodGet, http.MethodDelete)
}

// OptionsGetPatchDelete is used for single month records.
func OptionsGetPatchDelete(c *gin.Context) {
	allow(c, http.MethodGet, http.MethodPatch, http.MethodDelete)
}

// OptionsDelete is used for members, categories and bank accounts of the
// family configuration, which can only be removed individually.
func OptionsDelete(c *gin.Context) {
	allow(c, http.MethodDelete)
}
