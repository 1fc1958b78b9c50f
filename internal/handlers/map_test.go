package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"is-map-gateway/internal/middleware"
	"is-map-gateway/pkg/logger"
	"is-map-gateway/pkg/maps"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type domainsCall struct {
	token, mapURL, layers string
}

type mockMapService struct {
	configTokens  []string
	domainsCalls  []domainsCall
	tokenServices []string

	payload json.RawMessage
	err     error
}

func (m *mockMapService) Configuration(_ context.Context, token string) (json.RawMessage, error) {
	m.configTokens = append(m.configTokens, token)
	return m.payload, m.err
}

func (m *mockMapService) Domains(_ context.Context, token, mapURL, layers string) (json.RawMessage, error) {
	m.domainsCalls = append(m.domainsCalls, domainsCall{token, mapURL, layers})
	return m.payload, m.err
}

func (m *mockMapService) MapToken(_ context.Context, token, service string) (json.RawMessage, error) {
	m.tokenServices = append(m.tokenServices, service)
	return m.payload, m.err
}

func newTestRouter(svc MapService, state *maps.ViewState) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.ErrorHandler(logger.New(io.Discard, "ERROR")))
	r.Use(middleware.TokenMiddleware())

	h := NewMapHandler(svc, state)
	group := r.Group("/api/map")
	group.GET("/configuration", h.GetConfiguration)
	group.GET("/domains", h.GetDomains)
	group.GET("/token", h.GetMapToken)
	group.GET("/reload", h.GetReload)
	group.PUT("/reload", h.SetReload)
	return r
}

func do(r http.Handler, method, target string, body io.Reader, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, body)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func TestGetConfiguration_ForwardsTokenAndPayload(t *testing.T) {
	svc := &mockMapService{payload: json.RawMessage(`{"zoom": 4}`)}
	r := newTestRouter(svc, &maps.ViewState{})

	rr := do(r, http.MethodGet, "/api/map/configuration", nil, map[string]string{"token": "abc"})

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, `{"zoom": 4}`, rr.Body.String())
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	assert.Equal(t, []string{"abc"}, svc.configTokens)
}

func TestGetDomains(t *testing.T) {
	svc := &mockMapService{payload: json.RawMessage(`[]`)}
	r := newTestRouter(svc, &maps.ViewState{})

	rr := do(r, http.MethodGet, "/api/map/domains?url=svc&layers=0,1", nil, map[string]string{"Authorization": "Bearer tok"})
	assert.Equal(t, http.StatusOK, rr.Code)

	rr = do(r, http.MethodGet, "/api/map/domains?url=svc", nil, nil)
	assert.Equal(t, http.StatusOK, rr.Code)

	assert.Equal(t, []domainsCall{{"tok", "svc", "0,1"}, {"", "svc", ""}}, svc.domainsCalls)
}

func TestGetDomains_RequiresURL(t *testing.T) {
	svc := &mockMapService{}
	r := newTestRouter(svc, &maps.ViewState{})

	rr := do(r, http.MethodGet, "/api/map/domains?layers=1", nil, nil)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Empty(t, svc.domainsCalls)
}

func TestGetMapToken(t *testing.T) {
	svc := &mockMapService{payload: json.RawMessage(`{"token":"x"}`)}
	r := newTestRouter(svc, &maps.ViewState{})

	do(r, http.MethodGet, "/api/map/token", nil, nil)
	do(r, http.MethodGet, "/api/map/token?service=arcgis", nil, nil)

	assert.Equal(t, []string{"", "arcgis"}, svc.tokenServices)
}

func TestHandlers_UpstreamFailure(t *testing.T) {
	svc := &mockMapService{err: &maps.HTTPError{StatusCode: http.StatusInternalServerError, Status: "500 Internal Server Error"}}
	r := newTestRouter(svc, &maps.ViewState{})

	for _, target := range []string{"/api/map/configuration", "/api/map/domains?url=svc", "/api/map/token"} {
		rr := do(r, http.MethodGet, target, nil, nil)
		assert.Equal(t, http.StatusBadGateway, rr.Code, target)
		assert.Contains(t, rr.Body.String(), `"code":"BAD_GATEWAY"`, target)
	}
}

func TestReload_RoundTrip(t *testing.T) {
	state := &maps.ViewState{}
	r := newTestRouter(&mockMapService{}, state)

	rr := do(r, http.MethodGet, "/api/map/reload", nil, nil)
	assert.JSONEq(t, `{"forceReload":false}`, rr.Body.String())

	rr = do(r, http.MethodPut, "/api/map/reload", strings.NewReader(`{"forceReload":true}`), map[string]string{"Content-Type": "application/json"})
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"forceReload":true}`, rr.Body.String())
	assert.True(t, state.ForceReload())

	rr = do(r, http.MethodGet, "/api/map/reload", nil, nil)
	assert.JSONEq(t, `{"forceReload":true}`, rr.Body.String())

	rr = do(r, http.MethodPut, "/api/map/reload", strings.NewReader(`{"forceReload":false}`), map[string]string{"Content-Type": "application/json"})
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.False(t, state.ForceReload())
}

func TestReload_RejectsMissingFlag(t *testing.T) {
	state := &maps.ViewState{}
	state.SetForceReload(true)
	r := newTestRouter(&mockMapService{}, state)

	rr := do(r, http.MethodPut, "/api/map/reload", bytes.NewBufferString(`{}`), map[string]string{"Content-Type": "application/json"})

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.True(t, state.ForceReload())
}

func TestHandlers_WithRealClient(t *testing.T) {
	var gotQuery, gotToken string
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		gotToken = r.Header.Get("token")
		w.Write([]byte(`{"fields":[]}`))
	}))
	defer backend.Close()

	client := maps.NewClient(maps.URLConfig{URL: backend.URL}, backend.Client(), nil)
	r := newTestRouter(client, &maps.ViewState{})

	rr := do(r, http.MethodGet, "/api/map/domains?url=svc", nil, map[string]string{"token": "tok"})

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, `{"fields":[]}`, rr.Body.String())
	assert.Equal(t, "url=svc&layers=*", gotQuery)
	assert.Equal(t, "tok", gotToken)
}

func TestHandlers_ForwardEncodedQueryValues(t *testing.T) {
	var gotQuery string
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Write([]byte(`{}`))
	}))
	defer backend.Close()

	client := maps.NewClient(maps.URLConfig{URL: backend.URL}, backend.Client(), nil)
	r := newTestRouter(client, &maps.ViewState{})

	tests := []struct {
		target string
		want   string
	}{
		{
			"/api/map/domains?url=https%3A%2F%2Fgis%2FMapServer%3Ff%3Djson%26layers%3D9&layers=1",
			"url=https%3A%2F%2Fgis%2FMapServer%3Ff%3Djson%26layers%3D9&layers=1",
		},
		{"/api/map/domains?url=svc&layers=a%20b", "url=svc&layers=a%20b"},
		{"/api/map/token?service=a%23b", "service=a%23b"},
	}

	for _, tt := range tests {
		rr := do(r, http.MethodGet, tt.target, nil, nil)
		require.Equal(t, http.StatusOK, rr.Code, tt.target)
		assert.Equal(t, tt.want, gotQuery, tt.target)
	}
}

func TestRawQuery(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/?layers=&url=a%26b&url=second&flag", nil)

	assert.Equal(t, "a%26b", rawQuery(c, "url"))
	assert.Equal(t, "", rawQuery(c, "layers"))
	assert.Equal(t, "", rawQuery(c, "flag"))
	assert.Equal(t, "", rawQuery(c, "missing"))
}
