package service

import (
	"errors"

	"go-printpos-ws/internal/model"
	"go-printpos-ws/internal/repository"
	"go-printpos-ws/internal/ws"

	"github.com/google/uuid"
)

var ErrExpenseNotFound = errors.New("expense not found")

type ExpenseService interface {
	Create(req *ExpenseRequest, actor Actor) (*model.Expense, error)
	Delete(id uuid.UUID, actor Actor) error
	GetAll() ([]model.Expense, error)
}

type ExpenseRequest struct {
	Description string `json:"description" validate:"required"`
	Cost        int64  `json:"cost" validate:"gte=0"`
}

type expenseService struct {
	expenseRepo repository.ExpenseRepository
	wsHub       *ws.Hub
	appID       string
}

func NewExpenseService(expenseRepo repository.ExpenseRepository, hub *ws.Hub, appID string) ExpenseService {
	return &expenseService{
		expenseRepo: expenseRepo,
		wsHub:       hub,
		appID:       appID,
	}
}

func (s *expenseService) Create(req *ExpenseRequest, actor Actor) (*model.Expense, error) {
	expense := &model.Expense{
		Description:   req.Description,
		Cost:          req.Cost,
		CreatedByName: actor.Username,
	}
	if actor.UserID != "" {
		userID := actor.UserID
		expense.CreatedByUserID = &userID
	}
	expense.CreatedBy = actor.UserID
	expense.UpdatedBy = actor.UserID

	if err := s.expenseRepo.Create(expense); err != nil {
		return nil, err
	}

	go s.wsHub.NotifyCollection(s.appID, "expenses", "expense_created", expense)

	return expense, nil
}

func (s *expenseService) Delete(id uuid.UUID, actor Actor) error {
	if err := s.expenseRepo.Delete(id, actor.UserID); err != nil {
		return ErrExpenseNotFound
	}

	go s.wsHub.NotifyCollection(s.appID, "expenses", "expense_deleted", map[string]interface{}{
		"id": id.String(),
	})

	return nil
}

func (s *expenseService) GetAll() ([]model.Expense, error) {
	return s.expenseRepo.FindAll()
}
