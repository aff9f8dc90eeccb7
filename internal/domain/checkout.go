package domain

import "strings"

// Checkout flow status constants. A checkout starts in editing, moves to
// submitting while the order is being placed, and ends confirmed.
const (
	CheckoutStatusEditing    = "editing"
	CheckoutStatusSubmitting = "submitting"
	CheckoutStatusConfirmed  = "confirmed"
)

// CheckoutForm carries the shipping and contact details collected at
// checkout. State, country and phone are optional; everything else is
// required after trimming.
type CheckoutForm struct {
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Phone     string `json:"phone"`
	Address   string `json:"address" validate:"required"`
	City      string `json:"city" validate:"required"`
	State     string `json:"state"`
	ZipCode   string `json:"zip_code" validate:"required"`
	Country   string `json:"country"`
}

// Normalize trims surrounding whitespace from every field. Must run before
// validation so that whitespace-only input fails the required checks.
func (f *CheckoutForm) Normalize() {
	f.FirstName = strings.TrimSpace(f.FirstName)
	f.LastName = strings.TrimSpace(f.LastName)
	f.Email = strings.TrimSpace(f.Email)
	f.Phone = strings.TrimSpace(f.Phone)
	f.Address = strings.TrimSpace(f.Address)
	f.City = strings.TrimSpace(f.City)
	f.State = strings.TrimSpace(f.State)
	f.ZipCode = strings.TrimSpace(f.ZipCode)
	f.Country = strings.TrimSpace(f.Country)
}

// FullName joins first and last names for display on the order.
func (f *CheckoutForm) FullName() string {
	return strings.TrimSpace(f.FirstName + " " + f.LastName)
}
