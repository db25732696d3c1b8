package models

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	CustomerTableName = "customer_data"
)

var (
	// EmailPattern accepts the local@domain.tld shape used by the record form
	EmailPattern = regexp.MustCompile(`^[\w.-]+@[\w.-]+\.\w+$`)
	// PhonePattern accepts exactly ten digits
	PhonePattern = regexp.MustCompile(`^\d{10}$`)
	// AmountPattern accepts plain decimal notation, no sign or exponent
	AmountPattern = regexp.MustCompile(`^\d+(\.\d+)?$`)
)

// MaxPurchaseAmount is the largest amount the NUMERIC(15,2) column reads back
// unchanged
var MaxPurchaseAmount = decimal.RequireFromString("9999999999999.99")

var (
	ErrFirstNameRequired      = errors.New("first name is required")
	ErrLastNameRequired       = errors.New("last name is required")
	ErrEmailRequired          = errors.New("email is required")
	ErrPhoneRequired          = errors.New("phone is required")
	ErrStateRequired          = errors.New("state is required")
	ErrNegativePurchaseAmount = errors.New("purchase amount cannot be negative")
	ErrPurchaseAmountTooLarge = errors.New("purchase amount is too large")
	ErrInvalidEmailFormat     = errors.New("invalid email format")
	ErrInvalidPhoneFormat     = errors.New("invalid phone format")
)

// Customer is one row of the customer_data table. State is the region used
// for statistics and segmentation.
type Customer struct {
	ID             uint            `gorm:"column:customer_id;primaryKey;autoIncrement" json:"customer_id"`
	FirstName      string          `gorm:"column:first_name;type:text;not null" json:"first_name"`
	LastName       string          `gorm:"column:last_name;type:text;not null" json:"last_name"`
	Email          string          `gorm:"column:email;type:text;not null" json:"email"`
	Phone          string          `gorm:"column:phone;type:text;not null" json:"phone"`
	State          string          `gorm:"column:state;type:text;not null;index" json:"state"`
	PurchaseAmount decimal.Decimal `gorm:"column:purchase_amount;type:numeric(15,2);not null" json:"purchase_amount"`
}

func (Customer) TableName() string {
	return CustomerTableName
}

// BeforeCreate refuses rows that would break the table invariants even when
// a caller bypasses the service layer.
func (c *Customer) BeforeCreate(tx *gorm.DB) error {
	return c.Validate()
}

func (c *Customer) BeforeUpdate(tx *gorm.DB) error {
	// map-based updates only carry the changed columns
	if tx.Statement.Dest != nil {
		if _, ok := tx.Statement.Dest.(map[string]interface{}); ok {
			return nil
		}
	}
	return c.Validate()
}

func (c *Customer) Validate() error {
	if strings.TrimSpace(c.FirstName) == "" {
		return ErrFirstNameRequired
	}
	if strings.TrimSpace(c.LastName) == "" {
		return ErrLastNameRequired
	}
	if c.Email == "" {
		return ErrEmailRequired
	}
	if !EmailPattern.MatchString(c.Email) {
		return ErrInvalidEmailFormat
	}
	if c.Phone == "" {
		return ErrPhoneRequired
	}
	if !PhonePattern.MatchString(c.Phone) {
		return ErrInvalidPhoneFormat
	}
	if strings.TrimSpace(c.State) == "" {
		return ErrStateRequired
	}
	if c.PurchaseAmount.IsNegative() {
		return ErrNegativePurchaseAmount
	}
	if c.PurchaseAmount.GreaterThan(MaxPurchaseAmount) {
		return ErrPurchaseAmountTooLarge
	}
	return nil
}

func (c *Customer) FullName() string {
	return fmt.Sprintf("%s %s", c.FirstName, c.LastName)
}

// FieldStrings returns every column in display order as the table shows it
func (c *Customer) FieldStrings() []string {
	return []string{
		strconv.FormatUint(uint64(c.ID), 10),
		c.FirstName,
		c.LastName,
		c.Email,
		c.Phone,
		c.State,
		c.PurchaseAmount.StringFixed(2),
	}
}

// Matches reports whether term is a case-insensitive substring of any field
func (c *Customer) Matches(term string) bool {
	needle := strings.ToLower(term)
	for _, field := range c.FieldStrings() {
		if strings.Contains(strings.ToLower(field), needle) {
			return true
		}
	}
	// amounts are also matched in their shortest form, e.g. "200" for 200.00
	return strings.Contains(strings.ToLower(c.PurchaseAmount.String()), needle)
}
