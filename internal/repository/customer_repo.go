package repository

import (
	"go-printpos-ws/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CustomerRepository interface {
	Upsert(tx *gorm.DB, customer *model.Customer) error
	FindAll() ([]model.Customer, error)
	FindByPhone(phone string) (*model.Customer, error)
}

type customerRepo struct {
	db *gorm.DB
}

func NewCustomerRepo(db *gorm.DB) CustomerRepository {
	return &customerRepo{db}
}

// Upsert writes the customer keyed by phone. Last writer wins on the
// name, matching the order submission semantics.
func (r *customerRepo) Upsert(tx *gorm.DB, customer *model.Customer) error {
	return tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "phone"}},
		DoUpdates: clause.AssignmentColumns([]string{"name", "updated_at", "updated_by"}),
	}).Create(customer).Error
}

func (r *customerRepo) FindAll() ([]model.Customer, error) {
	var customers []model.Customer
	err := r.db.Order("name ASC").Find(&customers).Error
	return customers, err
}

func (r *customerRepo) FindByPhone(phone string) (*model.Customer, error) {
	var customer model.Customer
	err := r.db.Where("phone = ?", phone).First(&customer).Error
	if err != nil {
		return nil, err
	}
	return &customer, nil
}
