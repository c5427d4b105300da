package pricing

import (
	"testing"

	"go-printpos-ws/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestLinePriceUnit(t *testing.T) {
	product := &model.Product{Price: 10000, CalculationMethod: model.CalcUnit}
	item := model.OrderItem{Quantity: 3}

	assert.Equal(t, int64(30000), LinePrice(item, product))
}

func TestLinePricePackage(t *testing.T) {
	product := &model.Product{Price: 25000, CalculationMethod: model.CalcPackage}
	item := model.OrderItem{Quantity: 2}

	assert.Equal(t, int64(50000), LinePrice(item, product))
}

func TestLinePriceDimension(t *testing.T) {
	product := &model.Product{Price: 5000, CalculationMethod: model.CalcDimension}
	item := model.OrderItem{Quantity: 2, Width: 2, Height: 1.5}

	// 2 * 1.5 * 5000 * 2
	assert.Equal(t, int64(30000), LinePrice(item, product))
}

func TestLinePriceDimensionRoundsOnce(t *testing.T) {
	product := &model.Product{Price: 3333, CalculationMethod: model.CalcDimension}
	item := model.OrderItem{Quantity: 1, Width: 0.33, Height: 0.33}

	// 0.33 * 0.33 * 3333 = 362.96..., rounded to nearest
	assert.Equal(t, int64(363), LinePrice(item, product))
}

func TestLinePriceDimensionMissingDims(t *testing.T) {
	product := &model.Product{Price: 5000, CalculationMethod: model.CalcDimension}
	item := model.OrderItem{Quantity: 2}

	assert.Equal(t, int64(0), LinePrice(item, product))
}

func TestLinePriceNilProduct(t *testing.T) {
	item := model.OrderItem{Quantity: 3, Width: 2, Height: 2}

	assert.Equal(t, int64(0), LinePrice(item, nil))
}

func TestLinePriceUnknownMethod(t *testing.T) {
	product := &model.Product{Price: 10000, CalculationMethod: "WEIGHT"}
	item := model.OrderItem{Quantity: 3}

	assert.Equal(t, int64(0), LinePrice(item, product))
}

func TestOrderTotals(t *testing.T) {
	items := []model.OrderItem{
		{LinePrice: 20000},
		{LinePrice: 10000},
	}

	subtotal, total := OrderTotals(items, 5000, 2000)
	assert.Equal(t, int64(30000), subtotal)
	assert.Equal(t, int64(27000), total)
}

func TestOrderTotalsNegativeAllowed(t *testing.T) {
	items := []model.OrderItem{{LinePrice: 1000}}

	subtotal, total := OrderTotals(items, 5000, 0)
	assert.Equal(t, int64(1000), subtotal)
	assert.Equal(t, int64(-4000), total)
}

func TestOrderTotalsEmpty(t *testing.T) {
	subtotal, total := OrderTotals(nil, 0, 1500)
	assert.Equal(t, int64(0), subtotal)
	assert.Equal(t, int64(1500), total)
}

func TestCoerceQuantity(t *testing.T) {
	assert.Equal(t, 1, CoerceQuantity(0))
	assert.Equal(t, 1, CoerceQuantity(-3))
	assert.Equal(t, 1, CoerceQuantity(1))
	assert.Equal(t, 7, CoerceQuantity(7))
}
