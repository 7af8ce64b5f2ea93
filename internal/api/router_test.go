package api_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/aaravmahajanofficial/farm-marketplace/internal/api"
	"github.com/aaravmahajanofficial/farm-marketplace/internal/api/middleware"
	"github.com/aaravmahajanofficial/farm-marketplace/internal/models"
	repository "github.com/aaravmahajanofficial/farm-marketplace/internal/repositories"
	service "github.com/aaravmahajanofficial/farm-marketplace/internal/services"
	"github.com/aaravmahajanofficial/farm-marketplace/internal/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code   string            `json:"code"`
		Fields map[string]string `json:"fields"`
	} `json:"error"`
}

type client struct {
	t         *testing.T
	server    *httptest.Server
	sessionID string
}

func newClient(t *testing.T) *client {
	t.Helper()

	validate := validation.New()
	marketplace := service.NewMarketplaceService(repository.NewSeedCatalogRepo())

	router := api.NewRouter(api.Services{
		Marketplace: marketplace,
		Sessions: service.NewSessionService(marketplace, service.SessionOptions{
			Validate:     validate,
			DemoProfile:  models.User{Name: "Mirabel D"},
			SeedListings: repository.SeedFarmerListings(),
		}),
		Insights: service.NewInsightsService(repository.NewStaticInsightsRepo(), nil, 0),
		Validate: validate,
	})

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	return &client{t: t, server: server}
}

func (c *client) do(method, path, body string, dest any) (int, envelope) {
	c.t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req, err := http.NewRequest(method, c.server.URL+"/api/v1"+path, reader)
	require.NoError(c.t, err)

	if c.sessionID != "" {
		req.Header.Set(middleware.SessionHeader, c.sessionID)
	}

	resp, err := c.server.Client().Do(req)
	require.NoError(c.t, err)
	defer resp.Body.Close()

	var env envelope
	require.NoError(c.t, json.NewDecoder(resp.Body).Decode(&env))

	if dest != nil && len(env.Data) > 0 {
		require.NoError(c.t, json.Unmarshal(env.Data, dest))
	}

	return resp.StatusCode, env
}

func (c *client) start() {
	c.t.Helper()

	var view models.SessionView
	status, _ := c.do(http.MethodPost, "/sessions", "", &view)
	require.Equal(c.t, http.StatusCreated, status)

	c.sessionID = view.ID.String()
}

func TestBuyerJourney(t *testing.T) {
	c := newClient(t)
	c.start()

	var view models.SessionView

	status, _ := c.do(http.MethodPost, "/session/role", `{"role":"buyer","action":"signup"}`, &view)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, models.StatusAuthenticatingBuyer, view.Status)

	status, env := c.do(http.MethodPost, "/session/signup/buyer", `{
		"name":"Ada","email":"ada@farm.ng","phone":"0800","password":"12345",
		"confirmPassword":"12345","location":"Lagos","agreeToTerms":true,
		"interestedProducts":["Vegetables"]}`, nil)
	require.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, map[string]string{"password": "Password must be at least 6 characters"}, env.Error.Fields)

	status, _ = c.do(http.MethodPost, "/session/signup/buyer", `{
		"name":"Ada","email":"ada@farm.ng","phone":"0800","password":"123456",
		"confirmPassword":"123456","location":"Lagos","agreeToTerms":true,
		"interestedProducts":["Vegetables"]}`, &view)
	require.Equal(t, http.StatusCreated, status)
	assert.Equal(t, models.StatusAuthenticatedBuyer, view.Status)
	assert.Equal(t, "Ada", view.User.Name)

	var page models.ProductPage
	status, _ = c.do(http.MethodGet, "/products?search=carrot", "", &page)
	require.Equal(t, http.StatusOK, status)
	require.Len(t, page.Items, 1)

	carrotID := page.Items[0].ID

	for range 2 {
		status, _ = c.do(http.MethodPost, "/cart/items", `{"productId":"`+carrotID+`"}`, &view)
		require.Equal(t, http.StatusOK, status)
	}

	assert.Equal(t, 2, view.CartItemCount)

	status, env = c.do(http.MethodPost, "/cart/items", `{"productId":"999"}`, nil)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "UNKNOWN_PRODUCT", env.Error.Code)

	var summary models.CartSummary
	status, _ = c.do(http.MethodGet, "/cart", "", &summary)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, 2, summary.ItemCount)
	assert.Equal(t, "90", summary.Subtotal.String())

	c.do(http.MethodPost, "/saved/5", "", nil)
	c.do(http.MethodPost, "/saved/5", "", &view)
	assert.Zero(t, view.SavedCount)

	status, _ = c.do(http.MethodGet, "/listings", "", nil)
	assert.Equal(t, http.StatusForbidden, status)

	status, _ = c.do(http.MethodPost, "/session/logout", "", &view)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, models.StatusAnonymous, view.Status)
	assert.Zero(t, view.CartItemCount)
}

func TestFarmerJourney(t *testing.T) {
	c := newClient(t)
	c.start()

	var view models.SessionView

	c.do(http.MethodPost, "/session/role", `{"role":"farmer","action":"login"}`, nil)

	status, _ := c.do(http.MethodPost, "/session/login", `{"email":"farmer@farm.ng","password":"pw"}`, &view)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, models.StatusAuthenticatedFarmer, view.Status)
	assert.Equal(t, "Mirabel D", view.User.Name)
	assert.Equal(t, 2, view.ListingCount)

	status, _ = c.do(http.MethodPost, "/listings", `{"name":"Okra","price":"30","quantity":10}`, &view)
	require.Equal(t, http.StatusCreated, status)
	assert.Equal(t, 3, view.ListingCount)

	var listings []models.Product
	c.do(http.MethodGet, "/listings", "", &listings)
	require.Len(t, listings, 3)
	assert.Equal(t, "My Farm, Nigeria", listings[2].Location)

	status, _ = c.do(http.MethodDelete, "/listings/"+listings[0].ID, "", &view)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, 2, view.ListingCount)

	var aggregates models.CatalogAggregates
	status, _ = c.do(http.MethodGet, "/listings/aggregates", "", &aggregates)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, 2, aggregates.TotalListings)

	status, _ = c.do(http.MethodPost, "/cart/items", `{"productId":"1"}`, nil)
	assert.Equal(t, http.StatusForbidden, status)
}

func TestSessionHeaderRequired(t *testing.T) {
	c := newClient(t)

	status, env := c.do(http.MethodGet, "/session", "", nil)

	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "UNAUTHORIZED", env.Error.Code)

	c.sessionID = "00000000-0000-0000-0000-000000000001"
	status, env = c.do(http.MethodGet, "/session", "", nil)

	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "NOT_FOUND", env.Error.Code)
}

func TestPublicRoutes(t *testing.T) {
	c := newClient(t)

	var options models.FilterOptions
	status, _ := c.do(http.MethodGet, "/products/filters", "", &options)
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, options.PriceBands, 4)

	var aggregates models.CatalogAggregates
	status, _ = c.do(http.MethodGet, "/products/aggregates", "", &aggregates)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, 6, aggregates.TotalListings)

	var orders []models.Order
	status, _ = c.do(http.MethodGet, "/orders", "", &orders)
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, orders, 3)

	var trends models.MarketTrends
	status, _ = c.do(http.MethodGet, "/trends", "", &trends)
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, trends.Demand, 4)
}

func TestMetricsEndpoint(t *testing.T) {
	c := newClient(t)

	resp, err := c.server.Client().Get(c.server.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "http_requests_in_flight")
}
