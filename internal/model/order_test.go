package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanEditOrder(t *testing.T) {
	cases := []struct {
		role   string
		status PaymentStatus
		want   bool
	}{
		{RoleCashier, PaymentUnpaid, true},
		{RoleCashier, PaymentPaid, false},
		{RoleDesigner, PaymentUnpaid, true},
		{RoleDesigner, PaymentPaid, false},
		{RoleSupervisor, PaymentUnpaid, true},
		{RoleSupervisor, PaymentPaid, true},
		{RoleOwner, PaymentUnpaid, true},
		{RoleOwner, PaymentPaid, true},
		{"", PaymentPaid, false},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, CanEditOrder(tc.role, tc.status),
			"role=%s status=%s", tc.role, tc.status)
	}
}

func TestPaymentStatusFor(t *testing.T) {
	assert.Equal(t, PaymentUnpaid, PaymentStatusFor(0, 10000))
	assert.Equal(t, PaymentUnpaid, PaymentStatusFor(9999, 10000))
	assert.Equal(t, PaymentPaid, PaymentStatusFor(10000, 10000))
	assert.Equal(t, PaymentPaid, PaymentStatusFor(15000, 10000))
	// A zero-total order counts as paid immediately
	assert.Equal(t, PaymentPaid, PaymentStatusFor(0, 0))
}

func TestRemainingBalanceAndChange(t *testing.T) {
	o := &Order{TotalCost: 27000, PaidAmount: 10000}
	assert.Equal(t, int64(17000), o.RemainingBalance())
	assert.Equal(t, int64(0), o.Change())

	overpaid := &Order{TotalCost: 27000, PaidAmount: 30000}
	assert.Equal(t, int64(0), overpaid.RemainingBalance())
	assert.Equal(t, int64(3000), overpaid.Change())
}

func TestProductionStatusValid(t *testing.T) {
	for _, s := range ProductionStatuses {
		assert.True(t, s.Valid())
	}
	assert.False(t, ProductionStatus("SHIPPED").Valid())
	assert.False(t, ProductionStatus("").Valid())
}
