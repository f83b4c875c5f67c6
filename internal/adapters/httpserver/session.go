package httpserver

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/chronoslabs/chronos/internal/domain"
)

// The cart travels in an HMAC-signed cookie: session-local state, never written to
// the blob store. A bad or missing signature degrades to an empty cart.

const cartCookie = "cart"

func (s *Server) readCart(r *http.Request) domain.Cart {
	c, err := r.Cookie(cartCookie)
	if err != nil {
		return domain.Cart{}
	}
	parts := strings.SplitN(c.Value, ".", 2)
	if len(parts) != 2 {
		return domain.Cart{}
	}
	sig, _ := base64.RawURLEncoding.DecodeString(parts[0])
	payload, _ := base64.RawURLEncoding.DecodeString(parts[1])
	h := hmac.New(sha256.New, s.secret)
	h.Write(payload)
	if !hmac.Equal(sig, h.Sum(nil)) {
		return domain.Cart{}
	}
	var cart domain.Cart
	_ = json.Unmarshal(payload, &cart)
	return cart
}

func (s *Server) writeCart(w http.ResponseWriter, cart domain.Cart) {
	b, _ := json.Marshal(cart)
	h := hmac.New(sha256.New, s.secret)
	h.Write(b)
	sig := base64.RawURLEncoding.EncodeToString(h.Sum(nil))
	val := sig + "." + base64.RawURLEncoding.EncodeToString(b)
	http.SetCookie(w, &http.Cookie{Name: cartCookie, Value: val, Path: "/", MaxAge: 60 * 60 * 24 * 7, HttpOnly: true})
}

func (s *Server) clearCart(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{Name: cartCookie, Value: "", Path: "/", MaxAge: -1, HttpOnly: true})
}

// Admin sessions are an expiring HMAC token in a cookie. The login itself is a
// plain string comparison against configured credentials; this is a demo-grade
// boundary, not a security model.

const adminCookie = "admin_token"

func (s *Server) issueAdminToken(user string, dur time.Duration) string {
	exp := time.Now().Add(dur).Unix()
	payload := user + "|" + strconv.FormatInt(exp, 10)
	h := hmac.New(sha256.New, s.secret)
	h.Write([]byte(payload))
	return base64.RawURLEncoding.EncodeToString([]byte(payload)) + "." + base64.RawURLEncoding.EncodeToString(h.Sum(nil))
}

func (s *Server) verifyAdminToken(tok string) (string, error) {
	parts := strings.SplitN(tok, ".", 2)
	if len(parts) != 2 {
		return "", errors.New("malformed token")
	}
	payload, err := base64.RawURLEncoding.DecodeString(parts[0])
	if err != nil {
		return "", err
	}
	sig, err := base64.RawURLEncoding.DecodeString(parts[1])
	if err != nil {
		return "", err
	}
	h := hmac.New(sha256.New, s.secret)
	h.Write(payload)
	if !hmac.Equal(sig, h.Sum(nil)) {
		return "", errors.New("bad signature")
	}
	fields := strings.SplitN(string(payload), "|", 2)
	if len(fields) != 2 {
		return "", errors.New("malformed payload")
	}
	exp, err := strconv.ParseInt(fields[1], 10, 64)
	if err != nil || time.Now().Unix() > exp {
		return "", errors.New("expired token")
	}
	return fields[0], nil
}

// requireAdmin accepts a bearer header or the session cookie and writes 401 itself
// when neither verifies.
func (s *Server) requireAdmin(w http.ResponseWriter, r *http.Request) bool {
	auth := r.Header.Get("Authorization")
	if strings.HasPrefix(strings.ToLower(auth), "bearer ") {
		if _, err := s.verifyAdminToken(strings.TrimSpace(auth[7:])); err == nil {
			return true
		}
	}
	if c, err := r.Cookie(adminCookie); err == nil && c.Value != "" {
		if _, err := s.verifyAdminToken(c.Value); err == nil {
			return true
		}
	}
	http.Error(w, "unauthorized", 401)
	return false
}
