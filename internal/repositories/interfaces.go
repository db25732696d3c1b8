package repositories

import (
	"cdms/internal/models"
)

// CustomerRepositoryInterface defines the contract for customer repository operations
type CustomerRepositoryInterface interface {
	Create(customer *models.Customer) error
	GetByID(id uint) (*models.Customer, error)
	Update(customer *models.Customer) error
	Delete(id uint) error
	ListAll() ([]models.Customer, error)
	ListByState(state string) ([]models.Customer, error)
	LastAssignedID() (uint, error)
	RankByState(state string, buckets int) ([]models.RankedCustomer, error)
}
