package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// rawQuery returns the first value of key exactly as the caller encoded it.
// The map client interpolates values verbatim, so decoding here would let
// an escaped '&' or '#' change the backend request.
func rawQuery(c *gin.Context, key string) string {
	query := c.Request.URL.RawQuery
	for query != "" {
		var pair string
		pair, query, _ = strings.Cut(query, "&")
		name, value, _ := strings.Cut(pair, "=")
		if name == key {
			return value
		}
	}
	return ""
}
