package httpserver

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chronoslabs/chronos/internal/adapters/repo/blobrepo"
	"github.com/chronoslabs/chronos/internal/adapters/store/memstore"
	"github.com/chronoslabs/chronos/internal/domain"
	"github.com/chronoslabs/chronos/internal/usecase"
)

func newTestServer(t *testing.T) (*httptest.Server, *http.Client) {
	t.Helper()
	store := memstore.New()
	catalogRepo := blobrepo.NewCatalogRepo(store)
	catalogRepo.Delays = blobrepo.Delays{}
	orderRepo := blobrepo.NewOrderRepo(store)
	orderRepo.Delays = blobrepo.Delays{}

	catalogUC := &usecase.CatalogUC{Catalog: catalogRepo}
	orderUC := &usecase.OrderUC{Orders: orderRepo, Catalog: catalogRepo}
	echo := func(_ context.Context, msg string) string { return "echo: " + msg }

	ts := httptest.NewServer(New(catalogUC, orderUC, echo))
	t.Cleanup(ts.Close)

	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	return ts, &http.Client{Jar: jar}
}

func doJSON(t *testing.T, client *http.Client, method, url string, body any, out any) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, url, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	resp, err := client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp
}

func loginAdmin(t *testing.T, client *http.Client, base string) {
	t.Helper()
	resp := doJSON(t, client, http.MethodPost, base+"/admin/auth",
		map[string]string{"username": "admin", "password": "admin123"}, nil)
	require.Equal(t, 200, resp.StatusCode)
}

func TestProductsEndpointSeedsCatalog(t *testing.T) {
	ts, client := newTestServer(t)

	var list []domain.Product
	resp := doJSON(t, client, http.MethodGet, ts.URL+"/api/products", nil, &list)
	assert.Equal(t, 200, resp.StatusCode)
	assert.Len(t, list, 8)
}

func TestCartAddIncrementsInsteadOfDuplicating(t *testing.T) {
	ts, client := newTestServer(t)

	var view struct {
		Items []domain.CartItem `json:"items"`
		Total float64           `json:"total"`
		Count int               `json:"count"`
	}
	doJSON(t, client, http.MethodPost, ts.URL+"/api/cart", map[string]string{"productId": "1"}, &view)
	doJSON(t, client, http.MethodPost, ts.URL+"/api/cart", map[string]string{"productId": "1"}, &view)

	require.Len(t, view.Items, 1)
	assert.Equal(t, 2, view.Items[0].Quantity)
	assert.Equal(t, 2, view.Count)
	// Seed product 1: $799 at 10% off.
	assert.InDelta(t, 2*719.1, view.Total, 1e-9)

	// The cart survives in the signed cookie across requests.
	doJSON(t, client, http.MethodGet, ts.URL+"/api/cart", nil, &view)
	require.Len(t, view.Items, 1)
	assert.Equal(t, 2, view.Items[0].Quantity)
}

func TestCartAddUnknownProduct(t *testing.T) {
	ts, client := newTestServer(t)
	resp := doJSON(t, client, http.MethodPost, ts.URL+"/api/cart", map[string]string{"productId": "999"}, nil)
	assert.Equal(t, 404, resp.StatusCode)
}

func TestCartUpdateToZeroRemovesLine(t *testing.T) {
	ts, client := newTestServer(t)

	var view struct {
		Items []domain.CartItem `json:"items"`
	}
	doJSON(t, client, http.MethodPost, ts.URL+"/api/cart", map[string]string{"productId": "2"}, &view)
	doJSON(t, client, http.MethodPost, ts.URL+"/api/cart/update", map[string]any{"productId": "2", "delta": -1}, &view)
	assert.Empty(t, view.Items)
}

func TestCheckoutFlow(t *testing.T) {
	ts, client := newTestServer(t)

	// An admin-created $100 product keeps the scenario arithmetic exact.
	loginAdmin(t, client, ts.URL)
	var created domain.Product
	resp := doJSON(t, client, http.MethodPost, ts.URL+"/api/products",
		domain.Product{Name: "Gift Card", Price: 100}, &created)
	require.Equal(t, 201, resp.StatusCode)
	require.NotEmpty(t, created.ID)

	doJSON(t, client, http.MethodPost, ts.URL+"/api/cart", map[string]string{"productId": created.ID}, nil)

	customer := domain.CustomerDetails{
		FullName: "Jane Doe", Email: "jane@example.com", Phone: "+1 555 000 0000",
		Address: "1 Main St", City: "Springfield", Zip: "12345",
	}
	var order domain.Order
	resp = doJSON(t, client, http.MethodPost, ts.URL+"/api/checkout", customer, &order)
	require.Equal(t, 201, resp.StatusCode)
	assert.Equal(t, domain.OrderStatusPending, order.Status)
	assert.InDelta(t, 100.00, order.Total, 1e-9)
	assert.Equal(t, "Jane Doe", order.Customer.FullName)
	require.Len(t, order.Items, 1)
	assert.Equal(t, "Gift Card", order.Items[0].Name)

	// Cart is cleared immediately after a successful checkout.
	var view struct {
		Items []domain.CartItem `json:"items"`
		Count int               `json:"count"`
	}
	doJSON(t, client, http.MethodGet, ts.URL+"/api/cart", nil, &view)
	assert.Empty(t, view.Items)
	assert.Zero(t, view.Count)

	// And the order is first in the admin list.
	var orders []domain.Order
	resp = doJSON(t, client, http.MethodGet, ts.URL+"/api/orders", nil, &orders)
	require.Equal(t, 200, resp.StatusCode)
	require.NotEmpty(t, orders)
	assert.Equal(t, order.ID, orders[0].ID)
}

func TestCheckoutEmptyCartRejected(t *testing.T) {
	ts, client := newTestServer(t)
	customer := domain.CustomerDetails{
		FullName: "Jane Doe", Email: "jane@example.com", Phone: "1", Address: "a", City: "b", Zip: "c",
	}
	resp := doJSON(t, client, http.MethodPost, ts.URL+"/api/checkout", customer, nil)
	assert.Equal(t, 400, resp.StatusCode)
}

func TestAdminAuthExactMatchOnly(t *testing.T) {
	ts, client := newTestServer(t)

	var body map[string]string
	resp := doJSON(t, client, http.MethodPost, ts.URL+"/admin/auth",
		map[string]string{"username": "admin", "password": "wrong"}, &body)
	assert.Equal(t, 401, resp.StatusCode)
	assert.Equal(t, "Invalid username or password", body["error"])

	// Case matters: exact string comparison.
	resp = doJSON(t, client, http.MethodPost, ts.URL+"/admin/auth",
		map[string]string{"username": "Admin", "password": "admin123"}, nil)
	assert.Equal(t, 401, resp.StatusCode)

	loginAdmin(t, client, ts.URL)
}

func TestAdminEndpointsRequireAuth(t *testing.T) {
	ts, client := newTestServer(t)

	for _, probe := range []struct {
		method, path string
	}{
		{http.MethodGet, "/api/orders"},
		{http.MethodGet, "/api/dashboard"},
		{http.MethodGet, "/admin/export/orders"},
		{http.MethodPost, "/api/products"},
	} {
		resp := doJSON(t, client, probe.method, ts.URL+probe.path, nil, nil)
		assert.Equal(t, 401, resp.StatusCode, "%s %s", probe.method, probe.path)
	}
}

func TestOrderStatusUpdate(t *testing.T) {
	ts, client := newTestServer(t)
	loginAdmin(t, client, ts.URL)

	doJSON(t, client, http.MethodPost, ts.URL+"/api/cart", map[string]string{"productId": "2"}, nil)
	customer := domain.CustomerDetails{
		FullName: "Jane Doe", Email: "jane@example.com", Phone: "1", Address: "a", City: "b", Zip: "c",
	}
	var order domain.Order
	resp := doJSON(t, client, http.MethodPost, ts.URL+"/api/checkout", customer, &order)
	require.Equal(t, 201, resp.StatusCode)

	url := fmt.Sprintf("%s/api/orders/%s/status", ts.URL, order.ID)
	resp = doJSON(t, client, http.MethodPost, url, map[string]string{"status": "shipped"}, nil)
	assert.Equal(t, 204, resp.StatusCode)

	resp = doJSON(t, client, http.MethodPost, url, map[string]string{"status": "refunded"}, nil)
	assert.Equal(t, 400, resp.StatusCode)

	var orders []domain.Order
	doJSON(t, client, http.MethodGet, ts.URL+"/api/orders", nil, &orders)
	require.NotEmpty(t, orders)
	assert.Equal(t, domain.OrderStatusShipped, orders[0].Status)
}

func TestDashboardStats(t *testing.T) {
	ts, client := newTestServer(t)
	loginAdmin(t, client, ts.URL)

	var stats domain.DashboardStats
	resp := doJSON(t, client, http.MethodGet, ts.URL+"/api/dashboard", nil, &stats)
	require.Equal(t, 200, resp.StatusCode)
	assert.Zero(t, stats.TotalOrders)
	assert.Zero(t, stats.AvgOrderValue)
	assert.Equal(t, 1, stats.LowStockCount) // floor(8 seed products * 0.2)
}

func TestCategoriesCRUD(t *testing.T) {
	ts, client := newTestServer(t)
	loginAdmin(t, client, ts.URL)

	var cats []string
	doJSON(t, client, http.MethodGet, ts.URL+"/api/categories", nil, &cats)
	assert.Len(t, cats, 4)

	resp := doJSON(t, client, http.MethodPost, ts.URL+"/api/categories", map[string]string{"name": "Limited Edition"}, nil)
	assert.Equal(t, 204, resp.StatusCode)

	resp = doJSON(t, client, http.MethodDelete, ts.URL+"/api/categories/Hybrid%20Analog", nil, nil)
	assert.Equal(t, 204, resp.StatusCode)

	doJSON(t, client, http.MethodGet, ts.URL+"/api/categories", nil, &cats)
	assert.Contains(t, cats, "Limited Edition")
	assert.NotContains(t, cats, "Hybrid Analog")
}

func TestAssistantEndpoint(t *testing.T) {
	ts, client := newTestServer(t)

	var body map[string]string
	resp := doJSON(t, client, http.MethodPost, ts.URL+"/api/assistant", map[string]string{"message": "hi"}, &body)
	require.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, "echo: hi", body["reply"])

	resp = doJSON(t, client, http.MethodPost, ts.URL+"/api/assistant", map[string]string{"message": " "}, nil)
	assert.Equal(t, 400, resp.StatusCode)
}

func TestTamperedCartCookieDegradesToEmptyCart(t *testing.T) {
	ts, client := newTestServer(t)

	doJSON(t, client, http.MethodPost, ts.URL+"/api/cart", map[string]string{"productId": "1"}, nil)

	req, err := http.NewRequest(http.MethodGet, ts.URL+"/api/cart", nil)
	require.NoError(t, err)
	req.AddCookie(&http.Cookie{Name: "cart", Value: "bogus.payload"})
	plain := &http.Client{}
	resp, err := plain.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var view struct {
		Items []domain.CartItem `json:"items"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&view))
	assert.Empty(t, view.Items)
}
