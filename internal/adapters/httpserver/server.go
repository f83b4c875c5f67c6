package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/chronoslabs/chronos/internal/domain"
	"github.com/chronoslabs/chronos/internal/usecase"
)

// ReplyFunc is the pass-through AI collaborator; failures inside it degrade to
// fallback text, never errors.
type ReplyFunc func(ctx context.Context, msg string) string

type Server struct {
	mux       *http.ServeMux
	catalog   *usecase.CatalogUC
	orders    *usecase.OrderUC
	assistant ReplyFunc

	adminUser string
	adminPass string
	secret    []byte
}

func New(catalog *usecase.CatalogUC, orders *usecase.OrderUC, assistant ReplyFunc) http.Handler {
	s := &Server{
		mux:       http.NewServeMux(),
		catalog:   catalog,
		orders:    orders,
		assistant: assistant,
	}

	s.adminUser = os.Getenv("ADMIN_USER")
	if s.adminUser == "" {
		s.adminUser = "admin"
	}
	s.adminPass = os.Getenv("ADMIN_PASS")
	if s.adminPass == "" {
		s.adminPass = "admin123"
	}
	sec := os.Getenv("SESSION_KEY")
	if sec == "" {
		sec = "dev-insecure"
	}
	s.secret = []byte(sec)

	s.routes()
	return Chain(s.mux,
		RequestID,
		Recovery,
		Logging,
	)
}

func (s *Server) routes() {
	s.mux.HandleFunc("/api/products", s.apiProducts)
	s.mux.HandleFunc("/api/products/", s.apiProductByID)
	s.mux.HandleFunc("/api/categories", s.apiCategories)
	s.mux.HandleFunc("/api/categories/", s.apiCategoryByName)

	s.mux.HandleFunc("/api/cart", s.apiCart)
	s.mux.HandleFunc("/api/cart/update", s.apiCartUpdate)
	s.mux.HandleFunc("/api/cart/remove", s.apiCartRemove)
	s.mux.HandleFunc("/api/cart/clear", s.apiCartClear)
	s.mux.HandleFunc("/api/checkout", s.apiCheckout)

	s.mux.HandleFunc("/api/assistant", s.apiAssistant)

	s.mux.HandleFunc("/admin/auth", s.handleAdminAuth)
	s.mux.HandleFunc("/admin/logout", s.handleAdminLogout)
	s.mux.HandleFunc("/api/orders", s.apiOrders)
	s.mux.HandleFunc("/api/orders/", s.apiOrderStatus)
	s.mux.HandleFunc("/api/dashboard", s.apiDashboard)
	s.mux.HandleFunc("/admin/export/orders", s.handleExportOrders)
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// --- catalog ---

func (s *Server) apiProducts(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		list, err := s.catalog.Products(r.Context())
		if err != nil {
			log.Error().Err(err).Msg("list products")
			http.Error(w, "err", 500)
			return
		}
		writeJSON(w, 200, list)
	case http.MethodPost:
		if !s.requireAdmin(w, r) {
			return
		}
		var p domain.Product
		if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
			http.Error(w, "body", 400)
			return
		}
		if err := s.catalog.Create(r.Context(), &p); err != nil {
			http.Error(w, err.Error(), 400)
			return
		}
		writeJSON(w, 201, p)
	default:
		http.Error(w, "method", 405)
	}
}

func (s *Server) apiProductByID(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimPrefix(r.URL.Path, "/api/products/")
	if id == "" || strings.Contains(id, "/") {
		http.NotFound(w, r)
		return
	}
	switch r.Method {
	case http.MethodGet:
		p, err := s.catalog.ProductByID(r.Context(), id)
		if errors.Is(err, domain.ErrNotFound) {
			http.NotFound(w, r)
			return
		}
		if err != nil {
			http.Error(w, "err", 500)
			return
		}
		writeJSON(w, 200, p)
	case http.MethodPut:
		if !s.requireAdmin(w, r) {
			return
		}
		var p domain.Product
		if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
			http.Error(w, "body", 400)
			return
		}
		p.ID = id
		if err := s.catalog.Update(r.Context(), p); err != nil {
			http.Error(w, "err", 500)
			return
		}
		// A missing id was a silent no-op in the store; the API mirrors that.
		writeJSON(w, 200, p)
	case http.MethodDelete:
		if !s.requireAdmin(w, r) {
			return
		}
		if err := s.catalog.Delete(r.Context(), id); err != nil {
			http.Error(w, "err", 500)
			return
		}
		w.WriteHeader(204)
	default:
		http.Error(w, "method", 405)
	}
}

func (s *Server) apiCategories(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		cats, err := s.catalog.Categories(r.Context())
		if err != nil {
			http.Error(w, "err", 500)
			return
		}
		writeJSON(w, 200, cats)
	case http.MethodPost:
		if !s.requireAdmin(w, r) {
			return
		}
		var body struct {
			Name string `json:"name"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			http.Error(w, "body", 400)
			return
		}
		if err := s.catalog.AddCategory(r.Context(), body.Name); err != nil {
			http.Error(w, err.Error(), 400)
			return
		}
		w.WriteHeader(204)
	default:
		http.Error(w, "method", 405)
	}
}

func (s *Server) apiCategoryByName(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		http.Error(w, "method", 405)
		return
	}
	if !s.requireAdmin(w, r) {
		return
	}
	name, err := url.PathUnescape(strings.TrimPrefix(r.URL.Path, "/api/categories/"))
	if err != nil || name == "" {
		http.NotFound(w, r)
		return
	}
	if err := s.catalog.DeleteCategory(r.Context(), name); err != nil {
		http.Error(w, "err", 500)
		return
	}
	w.WriteHeader(204)
}

// --- cart ---

type cartView struct {
	Items []domain.CartItem `json:"items"`
	Total float64           `json:"total"`
	Count int               `json:"count"`
}

func (s *Server) cartJSON(w http.ResponseWriter, cart domain.Cart) {
	if cart.Items == nil {
		cart.Items = []domain.CartItem{}
	}
	writeJSON(w, 200, cartView{Items: cart.Items, Total: cart.Total(), Count: cart.Count()})
}

func (s *Server) apiCart(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		s.cartJSON(w, s.readCart(r))
	case http.MethodPost:
		var body struct {
			ProductID string `json:"productId"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.ProductID == "" {
			http.Error(w, "productId", 400)
			return
		}
		p, err := s.catalog.ProductByID(r.Context(), body.ProductID)
		if errors.Is(err, domain.ErrNotFound) {
			http.Error(w, "product", 404)
			return
		}
		if err != nil {
			http.Error(w, "err", 500)
			return
		}
		cart := s.readCart(r)
		cart.Add(*p)
		s.writeCart(w, cart)
		s.cartJSON(w, cart)
	default:
		http.Error(w, "method", 405)
	}
}

func (s *Server) apiCartUpdate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method", 405)
		return
	}
	var body struct {
		ProductID string `json:"productId"`
		Delta     int    `json:"delta"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.ProductID == "" {
		http.Error(w, "body", 400)
		return
	}
	cart := s.readCart(r)
	cart.UpdateQuantity(body.ProductID, body.Delta)
	s.writeCart(w, cart)
	s.cartJSON(w, cart)
}

func (s *Server) apiCartRemove(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method", 405)
		return
	}
	var body struct {
		ProductID string `json:"productId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.ProductID == "" {
		http.Error(w, "body", 400)
		return
	}
	cart := s.readCart(r)
	cart.Remove(body.ProductID)
	s.writeCart(w, cart)
	s.cartJSON(w, cart)
}

func (s *Server) apiCartClear(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method", 405)
		return
	}
	s.clearCart(w)
	s.cartJSON(w, domain.Cart{})
}

// --- checkout ---

func (s *Server) apiCheckout(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method", 405)
		return
	}
	var customer domain.CustomerDetails
	if err := json.NewDecoder(r.Body).Decode(&customer); err != nil {
		http.Error(w, "body", 400)
		return
	}
	cart := s.readCart(r)
	order, err := s.orders.Checkout(r.Context(), customer, &cart)
	if err != nil {
		if errors.Is(err, usecase.ErrEmptyCart) || errors.Is(err, usecase.ErrMissingDetails) {
			http.Error(w, err.Error(), 400)
			return
		}
		// The cart cookie stays untouched so the customer can retry.
		log.Error().Err(err).Msg("checkout")
		writeJSON(w, 500, map[string]string{"error": "Something went wrong processing your order."})
		return
	}
	s.clearCart(w)
	writeJSON(w, 201, order)
}

// --- assistant ---

func (s *Server) apiAssistant(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method", 405)
		return
	}
	var body struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || strings.TrimSpace(body.Message) == "" {
		http.Error(w, "message", 400)
		return
	}
	writeJSON(w, 200, map[string]string{"reply": s.assistant(r.Context(), body.Message)})
}

// --- admin ---

func (s *Server) handleAdminAuth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method", 405)
		return
	}
	var body struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "body", 400)
		return
	}
	// Exact string match on purpose: demo credentials, not a security boundary.
	if body.Username != s.adminUser || body.Password != s.adminPass {
		writeJSON(w, 401, map[string]string{"error": "Invalid username or password"})
		return
	}
	tok := s.issueAdminToken(body.Username, 6*time.Hour)
	http.SetCookie(w, &http.Cookie{Name: adminCookie, Value: tok, Path: "/", MaxAge: 60 * 60 * 6, HttpOnly: true, SameSite: http.SameSiteStrictMode})
	writeJSON(w, 200, map[string]string{"token": tok})
}

func (s *Server) handleAdminLogout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{Name: adminCookie, Value: "", Path: "/", MaxAge: -1, HttpOnly: true, SameSite: http.SameSiteStrictMode})
	w.WriteHeader(204)
}

func (s *Server) apiOrders(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method", 405)
		return
	}
	if !s.requireAdmin(w, r) {
		return
	}
	list, err := s.orders.List(r.Context())
	if err != nil {
		http.Error(w, "err", 500)
		return
	}
	writeJSON(w, 200, list)
}

// apiOrderStatus handles POST /api/orders/{id}/status.
func (s *Server) apiOrderStatus(w http.ResponseWriter, r *http.Request) {
	rest := strings.TrimPrefix(r.URL.Path, "/api/orders/")
	id, ok := strings.CutSuffix(rest, "/status")
	if !ok || id == "" {
		http.NotFound(w, r)
		return
	}
	if r.Method != http.MethodPost {
		http.Error(w, "method", 405)
		return
	}
	if !s.requireAdmin(w, r) {
		return
	}
	var body struct {
		Status domain.OrderStatus `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "body", 400)
		return
	}
	if err := s.orders.UpdateStatus(r.Context(), id, body.Status); err != nil {
		http.Error(w, err.Error(), 400)
		return
	}
	// Unknown ids are a store-level no-op; 204 either way.
	w.WriteHeader(204)
}

func (s *Server) apiDashboard(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method", 405)
		return
	}
	if !s.requireAdmin(w, r) {
		return
	}
	stats, err := s.orders.DashboardStats(r.Context())
	if err != nil {
		http.Error(w, "err", 500)
		return
	}
	writeJSON(w, 200, stats)
}
