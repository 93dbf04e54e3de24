package reports

import (
	"context"

	"vican-pos/internal/database/models"
	"vican-pos/internal/domain"
)

type Recommendation struct {
	ProductID       int64  `json:"product_id"`
	Name            string `json:"name"`
	Quantity        int64  `json:"quantity"`
	OrderQuantity   int64  `json:"order_quantity"`
	Reason          string `json:"reason"`
	UnitsSoldRecent int64  `json:"units_sold_recent,omitempty"`
}

// RestockRecommendations applies the low-stock rule, then the fast-mover
// rule over the last 30 days. A product appears at most once and keeps the
// reason of the first rule that matched it.
func (e *Engine) RestockRecommendations(ctx context.Context) []Recommendation {
	today := e.today()
	var out []Recommendation
	key, hit := e.cached(ctx, &out, "restock", today.Format(DateLayout))
	if hit {
		return out
	}

	out = []Recommendation{}
	seen := map[int64]bool{}
	complete := true

	var low []models.Product
	err := e.db.WithContext(ctx).
		Where("is_active = ? AND quantity < ?", true, domain.LowStockThreshold).
		Order("quantity ASC, id ASC").
		Find(&low).Error
	if err != nil {
		degrade("restock low stock", err)
		complete = false
	}
	for _, p := range low {
		seen[p.ID] = true
		out = append(out, Recommendation{
			ProductID:     p.ID,
			Name:          p.Name,
			Quantity:      p.Quantity,
			OrderQuantity: domain.LowStockTarget - p.Quantity,
			Reason:        domain.ReasonLowStock,
		})
	}

	sales, err := e.loadSales(ctx, today.AddDate(0, 0, -domain.FastMoverWindow), today.AddDate(0, 0, 1))
	if err != nil {
		degrade("restock fast movers", err)
		complete = false
	}
	units := map[int64]*ProductUnits{}
	stock := map[int64]int64{}
	for _, s := range sales {
		if !s.ProductActive {
			continue
		}
		pu, ok := units[s.ProductID]
		if !ok {
			pu = &ProductUnits{ProductID: s.ProductID, Name: s.ProductName}
			units[s.ProductID] = pu
		}
		pu.Units += s.Quantity
		stock[s.ProductID] = s.ProductQuantity
	}
	for _, top := range rankByUnits(units, domain.FastMoverTopN) {
		q := stock[top.ProductID]
		if seen[top.ProductID] || q >= domain.FastMoverThreshold {
			continue
		}
		seen[top.ProductID] = true
		out = append(out, Recommendation{
			ProductID:       top.ProductID,
			Name:            top.Name,
			Quantity:        q,
			OrderQuantity:   domain.FastMoverTarget - q,
			Reason:          domain.ReasonHighDemand,
			UnitsSoldRecent: top.Units,
		})
	}

	if complete {
		e.cache.SetJSON(ctx, key, out, e.cacheTTL)
	}
	return out
}
