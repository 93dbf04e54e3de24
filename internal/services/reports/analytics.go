package reports

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

const topProductsLimit = 5

type DayBucket struct {
	Date     string          `json:"date"`
	Revenue  decimal.Decimal `json:"revenue"`
	Profit   decimal.Decimal `json:"profit"`
	Expenses decimal.Decimal `json:"expenses"`
}

type ProductUnits struct {
	ProductID int64  `json:"product_id"`
	Name      string `json:"name"`
	Units     int64  `json:"units"`
}

type Analytics struct {
	Days          int             `json:"days"`
	Buckets       []DayBucket     `json:"buckets"`
	TopProducts   []ProductUnits  `json:"top_products"`
	TotalRevenue  decimal.Decimal `json:"total_revenue"`
	TotalProfit   decimal.Decimal `json:"total_profit"`
	TotalExpenses decimal.Decimal `json:"total_expenses"`
}

// Analytics returns one bucket per day from today-days to today, oldest
// first. Days without activity are present with zero values.
func (e *Engine) Analytics(ctx context.Context, days int) (*Analytics, error) {
	if err := validateWindow(days); err != nil {
		return nil, err
	}

	today := e.today()
	var out Analytics
	key, hit := e.cached(ctx, &out, "analytics", days, today.Format(DateLayout))
	if hit {
		return &out, nil
	}

	from := today.AddDate(0, 0, -days)
	to := today.AddDate(0, 0, 1)

	out = Analytics{
		Days:          days,
		Buckets:       make([]DayBucket, 0, days+1),
		TopProducts:   []ProductUnits{},
		TotalRevenue:  decimal.Zero,
		TotalProfit:   decimal.Zero,
		TotalExpenses: decimal.Zero,
	}
	index := make(map[string]int, days+1)
	for d := from; d.Before(to); d = d.AddDate(0, 0, 1) {
		date := d.Format(DateLayout)
		index[date] = len(out.Buckets)
		out.Buckets = append(out.Buckets, DayBucket{
			Date:     date,
			Revenue:  decimal.Zero,
			Profit:   decimal.Zero,
			Expenses: decimal.Zero,
		})
	}

	sales, salesErr := e.loadSales(ctx, from, to)
	if salesErr != nil {
		degrade("analytics sales", salesErr)
		sales = nil
	}
	units := map[int64]*ProductUnits{}
	for _, s := range sales {
		i, ok := index[s.SoldAt.In(time.Local).Format(DateLayout)]
		if !ok {
			continue
		}
		total := s.total()
		b := &out.Buckets[i]
		b.Revenue = b.Revenue.Add(total)
		b.Profit = b.Profit.Add(s.Profit)
		out.TotalRevenue = out.TotalRevenue.Add(total)
		out.TotalProfit = out.TotalProfit.Add(s.Profit)

		pu, ok := units[s.ProductID]
		if !ok {
			pu = &ProductUnits{ProductID: s.ProductID, Name: s.ProductName}
			units[s.ProductID] = pu
		}
		pu.Units += s.Quantity
	}

	expenses, expErr := e.loadExpenses(ctx, from, to)
	if expErr != nil {
		degrade("analytics expenses", expErr)
		expenses = nil
	}
	for _, x := range expenses {
		i, ok := index[x.ExpenseDate.In(time.Local).Format(DateLayout)]
		if !ok {
			continue
		}
		out.Buckets[i].Expenses = out.Buckets[i].Expenses.Add(x.Amount)
		out.TotalExpenses = out.TotalExpenses.Add(x.Amount)
	}

	out.TopProducts = rankByUnits(units, topProductsLimit)

	// A degraded result must not stick in the cache for the whole TTL.
	if salesErr == nil && expErr == nil {
		e.cache.SetJSON(ctx, key, out, e.cacheTTL)
	}
	return &out, nil
}

// rankByUnits orders products by units sold, ties broken by name then id,
// and keeps the first limit entries.
func rankByUnits(units map[int64]*ProductUnits, limit int) []ProductUnits {
	ranked := make([]ProductUnits, 0, len(units))
	for _, pu := range units {
		ranked = append(ranked, *pu)
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Units != ranked[j].Units {
			return ranked[i].Units > ranked[j].Units
		}
		if ranked[i].Name != ranked[j].Name {
			return ranked[i].Name < ranked[j].Name
		}
		return ranked[i].ProductID < ranked[j].ProductID
	})
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}
