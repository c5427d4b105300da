package repository

import (
	"time"

	"go-printpos-ws/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ExpenseRepository interface {
	Create(expense *model.Expense) error
	Delete(id uuid.UUID, deletedBy string) error
	FindAll() ([]model.Expense, error)
	FindByWindow(start, end time.Time) ([]model.Expense, error)
}

type expenseRepo struct {
	db *gorm.DB
}

func NewExpenseRepo(db *gorm.DB) ExpenseRepository {
	return &expenseRepo{db}
}

func (r *expenseRepo) Create(expense *model.Expense) error {
	return r.db.Create(expense).Error
}

func (r *expenseRepo) Delete(id uuid.UUID, deletedBy string) error {
	return r.db.Model(&model.Expense{}).Where("id = ?", id).Updates(map[string]interface{}{
		"deleted_at": gorm.Expr("NOW()"),
		"deleted_by": deletedBy,
	}).Error
}

func (r *expenseRepo) FindAll() ([]model.Expense, error) {
	var expenses []model.Expense
	err := r.db.Order("created_at DESC").Find(&expenses).Error
	return expenses, err
}

func (r *expenseRepo) FindByWindow(start, end time.Time) ([]model.Expense, error) {
	var expenses []model.Expense
	err := r.db.Where("created_at >= ? AND created_at < ?", start, end).
		Order("created_at DESC").
		Find(&expenses).Error
	return expenses, err
}
