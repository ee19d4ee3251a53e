package mapping

import (
	"github.com/Yeldokv/Finora/internal/core/domain"
	"github.com/Yeldokv/Finora/internal/models"
)

// ToModelCustomer converts a domain.Customer to its database model.
func ToModelCustomer(c domain.Customer) models.Customer {
	return models.Customer{
		CustomerID: c.CustomerID,
		Name:       c.Name,
		Address:    c.Address,
		GSTIN:      c.GSTIN,
		Phone:      c.Phone,
		Email:      c.Email,
		CreatedAt:  c.CreatedAt,
	}
}

// ToDomainCustomer converts a database model to a domain.Customer.
func ToDomainCustomer(m models.Customer) domain.Customer {
	return domain.Customer{
		CustomerID: m.CustomerID,
		Name:       m.Name,
		Address:    m.Address,
		GSTIN:      m.GSTIN,
		Phone:      m.Phone,
		Email:      m.Email,
		CreatedAt:  m.CreatedAt,
	}
}
