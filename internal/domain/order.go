package domain

import (
	"fmt"
	"time"
)

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// ValidStatus reports whether s is one of the known order statuses. Transitions
// between statuses are intentionally unrestricted: any status may follow any other.
func ValidStatus(s OrderStatus) bool {
	switch s {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusShipped,
		OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

type CustomerDetails struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	City     string `json:"city"`
	Zip      string `json:"zip"`
}

// Order is immutable once created except for its Status. Items are snapshots taken
// at checkout, decoupled from later product edits.
type Order struct {
	ID       string          `json:"id"`
	Items    []CartItem      `json:"items"`
	Total    float64         `json:"total"`
	Customer CustomerDetails `json:"customer"`
	Date     string          `json:"date"` // RFC3339 creation timestamp
	Status   OrderStatus     `json:"status"`
}

// NewOrderID derives an order id from the creation time: "ORD-" plus the last six
// digits of the unix millisecond clock. Not collision-proof under rapid successive
// checkouts; kept deliberately, see DESIGN.md.
func NewOrderID(now time.Time) string {
	return fmt.Sprintf("ORD-%06d", now.UnixMilli()%1_000_000)
}
