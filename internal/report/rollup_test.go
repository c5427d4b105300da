package report

import (
	"testing"

	"go-printpos-ws/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func product(name string, price int64) model.Product {
	p := model.Product{Name: name, Price: price, CalculationMethod: model.CalcUnit}
	p.ID = uuid.New()
	return p
}

func TestSummarize(t *testing.T) {
	orders := []model.Order{
		{TotalCost: 50000, PaidAmount: 50000},
		{TotalCost: 30000, PaidAmount: 10000},
	}
	expenses := []model.Expense{
		{Cost: 15000},
		{Cost: 5000},
	}

	s := Summarize(orders, expenses)
	assert.Equal(t, int64(80000), s.TotalSales)
	assert.Equal(t, int64(60000), s.CashIn)
	assert.Equal(t, int64(20000), s.TotalExpenses)
	assert.Equal(t, int64(60000), s.Profit)
	assert.Equal(t, int64(40000), s.CashFlow)
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil, nil)
	assert.Equal(t, Summary{}, s)
}

func TestItemSalesAggregates(t *testing.T) {
	banner := product("Banner", 25000)
	card := product("Business Card", 50000)

	orders := []model.Order{
		{Items: []model.OrderItem{
			{ProductID: banner.ID.String(), Quantity: 2, LinePrice: 50000},
			{ProductID: card.ID.String(), Quantity: 1, LinePrice: 50000},
		}},
		{Items: []model.OrderItem{
			{ProductID: banner.ID.String(), Quantity: 1, LinePrice: 25000},
		}},
	}

	sales := ItemSales(orders, []model.Product{banner, card})
	assert.Len(t, sales, 2)

	// Sorted by revenue descending
	assert.Equal(t, "Banner", sales[0].Name)
	assert.Equal(t, 3, sales[0].QuantitySold)
	assert.Equal(t, int64(75000), sales[0].TotalRevenue)
	assert.Equal(t, "Business Card", sales[1].Name)
	assert.Equal(t, int64(50000), sales[1].TotalRevenue)
}

func TestItemSalesSkipsDeletedProducts(t *testing.T) {
	banner := product("Banner", 25000)
	deletedID := uuid.New().String()

	orders := []model.Order{
		{Items: []model.OrderItem{
			{ProductID: banner.ID.String(), Quantity: 1, LinePrice: 25000},
			{ProductID: deletedID, Quantity: 10, LinePrice: 100000},
		}},
	}

	sales := ItemSales(orders, []model.Product{banner})
	assert.Len(t, sales, 1)
	assert.Equal(t, "Banner", sales[0].Name)
}

func TestBestSellersOrdersByQuantity(t *testing.T) {
	banner := product("Banner", 1000)
	card := product("Business Card", 90000)

	orders := []model.Order{
		{Items: []model.OrderItem{
			{ProductID: banner.ID.String(), Quantity: 10, LinePrice: 10000},
			{ProductID: card.ID.String(), Quantity: 2, LinePrice: 180000},
		}},
	}

	best := BestSellers(orders, []model.Product{banner, card}, 5)
	assert.Len(t, best, 2)
	// Quantity wins over revenue here
	assert.Equal(t, "Banner", best[0].Name)
	assert.Equal(t, 10, best[0].QuantitySold)
}

func TestBestSellersLimit(t *testing.T) {
	products := []model.Product{
		product("A", 100), product("B", 100), product("C", 100),
	}
	var items []model.OrderItem
	for i, p := range products {
		items = append(items, model.OrderItem{ProductID: p.ID.String(), Quantity: i + 1, LinePrice: 100})
	}
	orders := []model.Order{{Items: items}}

	best := BestSellers(orders, products, 2)
	assert.Len(t, best, 2)
	assert.Equal(t, "C", best[0].Name)
	assert.Equal(t, "B", best[1].Name)
}

func TestPaginate(t *testing.T) {
	items := make([]ItemSale, 25)
	for i := range items {
		items[i].QuantitySold = i
	}

	page1 := Paginate(items, 1, 10)
	assert.Len(t, page1, 10)
	assert.Equal(t, 0, page1[0].QuantitySold)

	page3 := Paginate(items, 3, 10)
	assert.Len(t, page3, 5)
	assert.Equal(t, 20, page3[0].QuantitySold)

	assert.Empty(t, Paginate(items, 4, 10))
	assert.Nil(t, Paginate(items, 0, 10))
}
