package repositories

import (
	"database/sql"
	"errors"
	"fmt"

	"cdms/internal/models"

	"gorm.io/gorm"
)

var (
	ErrCustomerNotFound = errors.New("customer not found")
)

// purchaseOrder ranks the highest purchases first; the id breaks ties so the
// order is stable between calls
const purchaseOrder = "purchase_amount DESC, customer_id ASC"

// CustomerRepository handles database operations for customers
type CustomerRepository struct {
	db *gorm.DB
}

// NewCustomerRepository creates a new customer repository
func NewCustomerRepository(db *gorm.DB) CustomerRepositoryInterface {
	return &CustomerRepository{
		db: db,
	}
}

// Create inserts a customer and fills in the assigned id
func (r *CustomerRepository) Create(customer *models.Customer) error {
	if customer == nil {
		return errors.New("customer cannot be nil")
	}

	// the store assigns ids; a caller-provided id would break the sequence
	customer.ID = 0

	if err := r.db.Create(customer).Error; err != nil {
		return fmt.Errorf("failed to create customer: %w", err)
	}

	return nil
}

// GetByID retrieves a customer by id
func (r *CustomerRepository) GetByID(id uint) (*models.Customer, error) {
	var customer models.Customer
	if err := r.db.Where("customer_id = ?", id).First(&customer).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, fmt.Errorf("failed to get customer by ID: %w", err)
	}

	return &customer, nil
}

// Update overwrites every field of an existing customer, keeping its id
func (r *CustomerRepository) Update(customer *models.Customer) error {
	if customer == nil {
		return errors.New("customer cannot be nil")
	}
	if customer.ID == 0 {
		return ErrCustomerNotFound
	}

	if err := customer.Validate(); err != nil {
		return err
	}

	result := r.db.Model(&models.Customer{}).
		Where("customer_id = ?", customer.ID).
		Updates(map[string]interface{}{
			"first_name":      customer.FirstName,
			"last_name":       customer.LastName,
			"email":           customer.Email,
			"phone":           customer.Phone,
			"state":           customer.State,
			"purchase_amount": customer.PurchaseAmount,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update customer: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrCustomerNotFound
	}

	return nil
}

// Delete removes a customer row
func (r *CustomerRepository) Delete(id uint) error {
	result := r.db.Where("customer_id = ?", id).Delete(&models.Customer{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete customer: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrCustomerNotFound
	}

	return nil
}

// ListAll returns every customer, highest purchase first
func (r *CustomerRepository) ListAll() ([]models.Customer, error) {
	var customers []models.Customer
	if err := r.db.Order(purchaseOrder).Find(&customers).Error; err != nil {
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}

	return customers, nil
}

// ListByState returns the customers of one region, highest purchase first.
// The match is exact and case-sensitive.
func (r *CustomerRepository) ListByState(state string) ([]models.Customer, error) {
	var customers []models.Customer
	if err := r.db.Where("state = ?", state).Order(purchaseOrder).Find(&customers).Error; err != nil {
		return nil, fmt.Errorf("failed to list customers by state: %w", err)
	}

	return customers, nil
}

// LastAssignedID reads the AUTOINCREMENT counter of the customer table.
// It is 0 when no customer was ever inserted.
func (r *CustomerRepository) LastAssignedID() (uint, error) {
	var seq int64
	err := r.db.Raw("SELECT seq FROM sqlite_sequence WHERE name = ?", models.CustomerTableName).
		Row().Scan(&seq)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to read customer sequence: %w", err)
	}

	return uint(seq), nil
}

// RankByState buckets the customers of one region with NTILE, bucket 1
// holding the highest purchases. Rows come back highest purchase first.
func (r *CustomerRepository) RankByState(state string, buckets int) ([]models.RankedCustomer, error) {
	if buckets < 1 {
		return nil, fmt.Errorf("invalid bucket count: %d", buckets)
	}

	var ranked []models.RankedCustomer
	query := fmt.Sprintf(`SELECT customer_id, first_name, last_name, state, purchase_amount,
		NTILE(%d) OVER (ORDER BY %s) AS bucket
	FROM customer_data
	WHERE state = ?
	ORDER BY %s`, buckets, purchaseOrder, purchaseOrder)

	if err := r.db.Raw(query, state).Scan(&ranked).Error; err != nil {
		return nil, fmt.Errorf("failed to rank customers by state: %w", err)
	}

	return ranked, nil
}
