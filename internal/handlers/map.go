package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"is-map-gateway/internal/errors"
	"is-map-gateway/internal/middleware"
	"is-map-gateway/pkg/maps"
	"is-map-gateway/pkg/metrics"

	"github.com/gin-gonic/gin"
)

// MapService is the part of maps.Client the handlers call.
type MapService interface {
	Configuration(ctx context.Context, token string) (json.RawMessage, error)
	Domains(ctx context.Context, token, mapURL, layers string) (json.RawMessage, error)
	MapToken(ctx context.Context, token, service string) (json.RawMessage, error)
}

type MapHandler struct {
	mapService MapService
	state      *maps.ViewState
}

// ReloadRequest is the body of PUT /map/reload.
type ReloadRequest struct {
	ForceReload *bool `json:"forceReload" binding:"required"`
}

// ReloadResponse reports the current reload flag.
type ReloadResponse struct {
	ForceReload bool `json:"forceReload"`
}

func NewMapHandler(mapService MapService, state *maps.ViewState) *MapHandler {
	return &MapHandler{mapService: mapService, state: state}
}

// GetConfiguration godoc
// @Summary Get the map configuration
// @Tags Map
// @Produce json
// @Param token header string false "Token of the logged user"
// @Success 200 {object} object
// @Failure 502 {object} map[string]interface{}
// @Router /map/configuration [get]
func (h *MapHandler) GetConfiguration(c *gin.Context) {
	payload, err := h.mapService.Configuration(c.Request.Context(), middleware.Token(c))
	if err != nil {
		c.Error(err)
		return
	}
	writeRaw(c, payload)
}

// GetDomains godoc
// @Summary Get the coded value domains of a map service
// @Tags Map
// @Produce json
// @Param token header string false "Token of the logged user"
// @Param url query string true "Map service url"
// @Param layers query string false "Layers, every layer when omitted" default(*)
// @Success 200 {object} object
// @Failure 400 {object} map[string]interface{}
// @Failure 502 {object} map[string]interface{}
// @Router /map/domains [get]
func (h *MapHandler) GetDomains(c *gin.Context) {
	mapURL := rawQuery(c, "url")
	if mapURL == "" {
		c.Error(errors.InvalidParameter("query parameter 'url' is required"))
		return
	}

	payload, err := h.mapService.Domains(c.Request.Context(), middleware.Token(c), mapURL, rawQuery(c, "layers"))
	if err != nil {
		c.Error(err)
		return
	}
	writeRaw(c, payload)
}

// GetMapToken godoc
// @Summary Get a token for a secured ArcGIS service
// @Tags Map
// @Produce json
// @Param token header string false "Token of the logged user"
// @Param service query string false "ArcGIS service, the backend default when omitted"
// @Success 200 {object} object
// @Failure 502 {object} map[string]interface{}
// @Router /map/token [get]
func (h *MapHandler) GetMapToken(c *gin.Context) {
	payload, err := h.mapService.MapToken(c.Request.Context(), middleware.Token(c), rawQuery(c, "service"))
	if err != nil {
		c.Error(err)
		return
	}
	writeRaw(c, payload)
}

// GetReload godoc
// @Summary Tell whether the map page must be reloaded
// @Tags Map
// @Produce json
// @Success 200 {object} ReloadResponse
// @Router /map/reload [get]
func (h *MapHandler) GetReload(c *gin.Context) {
	c.JSON(http.StatusOK, ReloadResponse{ForceReload: h.state.ForceReload()})
}

// SetReload godoc
// @Summary Mark whether the map page must be reloaded
// @Tags Map
// @Accept json
// @Produce json
// @Param body body ReloadRequest true "Reload flag"
// @Success 200 {object} ReloadResponse
// @Failure 400 {object} map[string]interface{}
// @Router /map/reload [put]
func (h *MapHandler) SetReload(c *gin.Context) {
	var req ReloadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(errors.InvalidParameter(err.Error()))
		return
	}

	h.state.SetForceReload(*req.ForceReload)
	metrics.ReloadFlagChangesTotal.Inc()
	c.JSON(http.StatusOK, ReloadResponse{ForceReload: h.state.ForceReload()})
}

func writeRaw(c *gin.Context, payload json.RawMessage) {
	c.Data(http.StatusOK, "application/json", payload)
}
