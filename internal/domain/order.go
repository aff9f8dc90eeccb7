package domain

import "time"

// Order status constants. An order moves forward through these stages
// and never backwards.
const (
	OrderStatusProcessing = "processing"
	OrderStatusShipped    = "shipped"
	OrderStatusInTransit  = "in_transit"
	OrderStatusDelivered  = "delivered"
)

// Order represents a placed order.
type Order struct {
	Number            string       `json:"number"`
	Status            string       `json:"status"`
	Items             []OrderItem  `json:"items"`
	SubtotalAmount    int64        `json:"subtotal_amount"`
	ShippingAmount    int64        `json:"shipping_amount"`
	TotalAmount       int64        `json:"total_amount"`
	Currency          string       `json:"currency"`
	Shipping          ShippingInfo `json:"shipping"`
	TrackingNumber    string       `json:"tracking_number,omitempty"`
	EstimatedDelivery time.Time    `json:"estimated_delivery"`
	PlacedAt          time.Time    `json:"placed_at"`
}

// OrderItem is a line on a placed order, frozen at checkout time.
type OrderItem struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	Price     int64  `json:"price"`
	Quantity  int    `json:"quantity"`
	ImageURL  string `json:"image_url,omitempty"`
}

// ShippingInfo is the destination and contact captured at checkout.
type ShippingInfo struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Phone    string `json:"phone,omitempty"`
	Address  string `json:"address"`
	City     string `json:"city"`
	State    string `json:"state,omitempty"`
	ZipCode  string `json:"zip_code"`
	Country  string `json:"country,omitempty"`
}

// ValidStatuses returns all valid order statuses in progression order.
func ValidStatuses() []string {
	return []string{
		OrderStatusProcessing,
		OrderStatusShipped,
		OrderStatusInTransit,
		OrderStatusDelivered,
	}
}

// IsValidStatus checks if a status string is valid.
func IsValidStatus(status string) bool {
	for _, s := range ValidStatuses() {
		if s == status {
			return true
		}
	}
	return false
}

// AllowedTransitions defines which status transitions are valid.
func AllowedTransitions() map[string][]string {
	return map[string][]string{
		OrderStatusProcessing: {OrderStatusShipped},
		OrderStatusShipped:    {OrderStatusInTransit},
		OrderStatusInTransit:  {OrderStatusDelivered},
		OrderStatusDelivered:  {},
	}
}

// CanTransitionTo checks if the order can move to the target status.
func (o *Order) CanTransitionTo(target string) bool {
	allowed, ok := AllowedTransitions()[o.Status]
	if !ok {
		return false
	}
	for _, s := range allowed {
		if s == target {
			return true
		}
	}
	return false
}

// StatusStep returns the zero-based position of the order's status in the
// delivery progression, for rendering tracking timelines. Unknown statuses
// return -1.
func (o *Order) StatusStep() int {
	for i, s := range ValidStatuses() {
		if s == o.Status {
			return i
		}
	}
	return -1
}
