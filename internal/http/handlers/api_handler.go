package handlers

import (
	_ "embed"
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
)

//go:embed endpoints.json
var endpointsJSON []byte

// Endpoints returns the embedded endpoint description as raw JSON.
func Endpoints() json.RawMessage { return json.RawMessage(endpointsJSON) }

// GetAPI godoc
// @ID          getApi
// @Summary     Describe the API
// @Description Serves a JSON description of every available endpoint.
// @Tags        Meta
// @Produce     json
// @Success     200  {object}  map[string]any
// @Router      / [get]
func (h *Handlers) GetAPI(c *gin.Context) {
	ok(c, http.StatusOK, gin.H{"endpoints": Endpoints()})
}
