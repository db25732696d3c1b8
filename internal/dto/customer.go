package dto

import (
	"strings"

	"cdms/internal/models"

	"github.com/shopspring/decimal"
)

// CustomerRequest carries the form fields for create and update. Every
// value is the raw text the user typed; validation happens in the service.
type CustomerRequest struct {
	FirstName      string `json:"first_name" validate:"required,max=100"`
	LastName       string `json:"last_name" validate:"required,max=100"`
	Email          string `json:"email" validate:"required,customer_email"`
	Phone          string `json:"phone" validate:"required,phone_digits"`
	State          string `json:"state" validate:"required,max=100"`
	PurchaseAmount string `json:"purchase_amount" validate:"required,purchase_amount,purchase_amount_max"`
}

// Normalize trims surrounding whitespace from every field
func (r *CustomerRequest) Normalize() {
	r.FirstName = strings.TrimSpace(r.FirstName)
	r.LastName = strings.TrimSpace(r.LastName)
	r.Email = strings.TrimSpace(r.Email)
	r.Phone = strings.TrimSpace(r.Phone)
	r.State = strings.TrimSpace(r.State)
	r.PurchaseAmount = strings.TrimSpace(r.PurchaseAmount)
}

// ApplyTo copies the request onto c. The request must have been validated.
func (r *CustomerRequest) ApplyTo(c *models.Customer) {
	c.FirstName = r.FirstName
	c.LastName = r.LastName
	c.Email = r.Email
	c.Phone = r.Phone
	c.State = r.State
	c.PurchaseAmount = decimal.RequireFromString(r.PurchaseAmount).Round(2)
}

// CustomerResponse is one row of the customer table
type CustomerResponse struct {
	ID             uint   `json:"customer_id"`
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	State          string `json:"state"`
	PurchaseAmount string `json:"purchase_amount"`
}

func NewCustomerResponse(c *models.Customer) *CustomerResponse {
	return &CustomerResponse{
		ID:             c.ID,
		FirstName:      c.FirstName,
		LastName:       c.LastName,
		Email:          c.Email,
		Phone:          c.Phone,
		State:          c.State,
		PurchaseAmount: c.PurchaseAmount.StringFixed(2),
	}
}

// CustomerListResponse is the full customer table plus the id the next
// record will receive
type CustomerListResponse struct {
	Customers []*CustomerResponse `json:"customers"`
	Total     int                 `json:"total"`
	NextID    uint                `json:"next_id"`
}

// SearchResponse lists the ids of matching rows
type SearchResponse struct {
	Term  string `json:"term"`
	IDs   []uint `json:"customer_ids"`
	Total int    `json:"total"`
}

// NextIDResponse reports the sequence position of the store
type NextIDResponse struct {
	LastAssignedID uint `json:"last_assigned_id"`
	NextID         uint `json:"next_id"`
}
