package service

import (
	"testing"

	"go-printpos-ws/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestAppliedAmountFullPaysRemainder(t *testing.T) {
	order := &model.Order{
		TotalCost:     27000,
		PaidAmount:    10000,
		PaymentStatus: model.PaymentUnpaid,
	}

	// Amount in the request is ignored for full settlements
	applied, err := appliedAmount(order, SettleRequest{Type: PaymentFull, Amount: 999})
	assert.NoError(t, err)
	assert.Equal(t, int64(17000), applied)
}

func TestAppliedAmountPartialVerbatim(t *testing.T) {
	order := &model.Order{
		TotalCost:     27000,
		PaidAmount:    0,
		PaymentStatus: model.PaymentUnpaid,
	}

	applied, err := appliedAmount(order, SettleRequest{Type: PaymentPartial, Amount: 5000})
	assert.NoError(t, err)
	assert.Equal(t, int64(5000), applied)
}

func TestAppliedAmountPartialOverpayAllowed(t *testing.T) {
	order := &model.Order{
		TotalCost:     10000,
		PaidAmount:    0,
		PaymentStatus: model.PaymentUnpaid,
	}

	applied, err := appliedAmount(order, SettleRequest{Type: PaymentPartial, Amount: 50000})
	assert.NoError(t, err)
	assert.Equal(t, int64(50000), applied)
	assert.Equal(t, model.PaymentPaid, model.PaymentStatusFor(order.PaidAmount+applied, order.TotalCost))
}

func TestAppliedAmountAlreadySettled(t *testing.T) {
	order := &model.Order{
		TotalCost:     10000,
		PaidAmount:    10000,
		PaymentStatus: model.PaymentPaid,
	}

	_, err := appliedAmount(order, SettleRequest{Type: PaymentFull})
	assert.ErrorIs(t, err, ErrAlreadySettled)

	_, err = appliedAmount(order, SettleRequest{Type: PaymentPartial, Amount: 100})
	assert.ErrorIs(t, err, ErrAlreadySettled)
}

func TestAppliedAmountUnknownType(t *testing.T) {
	order := &model.Order{PaymentStatus: model.PaymentUnpaid}

	_, err := appliedAmount(order, SettleRequest{Type: "installment"})
	assert.ErrorIs(t, err, ErrInvalidPaymentType)
}
