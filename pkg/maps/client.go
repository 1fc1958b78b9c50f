package maps

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// DefaultLayers is sent when the caller does not ask for specific layers.
const DefaultLayers = "*"

// URLConfig holds the root address of the backend map service.
type URLConfig struct {
	URL string
}

// Doer sends an HTTP request. *http.Client satisfies it.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Logger is the debug logging capability used by the client.
type Logger interface {
	Debugf(format string, v ...interface{})
}

// Client issues map configuration, domain and token requests to the backend
type Client struct {
	baseURL string
	doer    Doer
	log     Logger
}

// NewClient creates a new map API client
func NewClient(cfg URLConfig, doer Doer, log Logger) *Client {
	if doer == nil {
		doer = http.DefaultClient
	}
	return &Client{
		baseURL: cfg.URL,
		doer:    doer,
		log:     log,
	}
}

// BaseURL returns the backend root the client was built with
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Configuration gets the map configuration for the logged user.
func (c *Client) Configuration(ctx context.Context, token string) (json.RawMessage, error) {
	c.debugf("MapClient.Configuration(): Get the map configuration")

	url := c.baseURL + "/map/configuration"
	return c.get(ctx, "Configuration", url, token)
}

// Domains gets the coded value domains of a map service. An empty layers
// selects every layer.
func (c *Client) Domains(ctx context.Context, token, mapURL, layers string) (json.RawMessage, error) {
	if layers == "" {
		layers = DefaultLayers
	}
	c.debugf("MapClient.Domains(): Get the map domains %s %s", mapURL, layers)

	url := fmt.Sprintf("%s/map/domains?url=%s&layers=%s", c.baseURL, mapURL, layers)
	return c.get(ctx, "Domains", url, token)
}

// MapToken requests a token for a secured ArcGIS service. service names the
// ArcGIS service when it is not the backend's default one.
func (c *Client) MapToken(ctx context.Context, token, service string) (json.RawMessage, error) {
	c.debugf("MapClient.MapToken(): Get the token")

	url := c.baseURL + "/map/token"
	if service != "" {
		url = url + "?service=" + service
	}
	return c.get(ctx, "MapToken", url, token)
}

func (c *Client) debugf(format string, v ...interface{}) {
	if c.log != nil {
		c.log.Debugf(format, v...)
	}
}
