package report

import (
	"sort"

	"go-printpos-ws/internal/model"
)

// Summary is the financial rollup over a window. Profit counts billed
// sales, cash flow counts money actually received.
type Summary struct {
	TotalSales    int64 `json:"total_sales"`
	CashIn        int64 `json:"cash_in"`
	TotalExpenses int64 `json:"total_expenses"`
	Profit        int64 `json:"profit"`
	CashFlow      int64 `json:"cash_flow"`
}

// Summarize rolls up orders and expenses that were already filtered to a
// window.
func Summarize(orders []model.Order, expenses []model.Expense) Summary {
	var s Summary
	for _, o := range orders {
		s.TotalSales += o.TotalCost
		s.CashIn += o.PaidAmount
	}
	for _, e := range expenses {
		s.TotalExpenses += e.Cost
	}
	s.Profit = s.TotalSales - s.TotalExpenses
	s.CashFlow = s.CashIn - s.TotalExpenses
	return s
}

// ItemSale accumulates sales of one catalog product within a window.
type ItemSale struct {
	ProductID    string `json:"product_id"`
	Name         string `json:"name"`
	QuantitySold int    `json:"quantity_sold"`
	TotalRevenue int64  `json:"total_revenue"`
}

// ItemSales aggregates line items by product. Items whose product no
// longer exists in the catalog are skipped. Revenue uses the line price
// snapshot stored at order time. Output is sorted by revenue descending
// so pagination is stable.
func ItemSales(orders []model.Order, products []model.Product) []ItemSale {
	catalog := make(map[string]model.Product, len(products))
	for _, p := range products {
		catalog[p.ID.String()] = p
	}

	sales := make(map[string]*ItemSale)
	for _, o := range orders {
		for _, item := range o.Items {
			product, ok := catalog[item.ProductID]
			if !ok {
				continue
			}
			entry, ok := sales[item.ProductID]
			if !ok {
				entry = &ItemSale{ProductID: item.ProductID, Name: product.Name}
				sales[item.ProductID] = entry
			}
			entry.QuantitySold += item.Quantity
			entry.TotalRevenue += item.LinePrice
		}
	}

	result := make([]ItemSale, 0, len(sales))
	for _, entry := range sales {
		result = append(result, *entry)
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].TotalRevenue != result[j].TotalRevenue {
			return result[i].TotalRevenue > result[j].TotalRevenue
		}
		return result[i].Name < result[j].Name
	})
	return result
}

// BestSeller is a dashboard entry: product name and units sold.
type BestSeller struct {
	Name         string `json:"name"`
	QuantitySold int    `json:"quantity_sold"`
}

// BestSellers returns the top products by units sold across the given
// orders. Items referencing deleted products are skipped, matching the
// item sales report.
func BestSellers(orders []model.Order, products []model.Product, limit int) []BestSeller {
	sales := ItemSales(orders, products)
	sort.Slice(sales, func(i, j int) bool {
		if sales[i].QuantitySold != sales[j].QuantitySold {
			return sales[i].QuantitySold > sales[j].QuantitySold
		}
		return sales[i].Name < sales[j].Name
	})

	if limit > len(sales) {
		limit = len(sales)
	}
	best := make([]BestSeller, 0, limit)
	for _, s := range sales[:limit] {
		best = append(best, BestSeller{Name: s.Name, QuantitySold: s.QuantitySold})
	}
	return best
}

// Paginate slices items for display. Pages are 1-based; out-of-range
// pages return an empty slice.
func Paginate(items []ItemSale, page, pageSize int) []ItemSale {
	if page < 1 || pageSize < 1 {
		return nil
	}
	start := (page - 1) * pageSize
	if start >= len(items) {
		return []ItemSale{}
	}
	end := start + pageSize
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}
