package reports

import (
	"context"
	"sort"

	"github.com/shopspring/decimal"

	"vican-pos/internal/domain"
)

type CashierScore struct {
	UserID       int64           `json:"user_id"`
	Username     string          `json:"username"`
	Transactions int64           `json:"transactions"`
	Units        int64           `json:"units"`
	Amount       decimal.Decimal `json:"amount"`
	Points       int64           `json:"points"`
	Stars        int64           `json:"stars"`
}

// CashierPerformance scores every cashier who sold something in the last
// days days, best first.
func (e *Engine) CashierPerformance(ctx context.Context, days int) ([]CashierScore, error) {
	if err := validateWindow(days); err != nil {
		return nil, err
	}

	today := e.today()
	sales, err := e.loadSales(ctx, today.AddDate(0, 0, -days), today.AddDate(0, 0, 1))
	if err != nil {
		degrade("cashier performance", err)
		return []CashierScore{}, nil
	}

	byUser := map[int64]*CashierScore{}
	for _, s := range sales {
		if s.UserID == nil || s.Role != string(domain.RoleCashier) {
			continue
		}
		cs, ok := byUser[*s.UserID]
		if !ok {
			cs = &CashierScore{UserID: *s.UserID, Username: s.Username, Amount: decimal.Zero}
			byUser[*s.UserID] = cs
		}
		cs.Transactions++
		cs.Units += s.Quantity
		cs.Amount = cs.Amount.Add(s.total())
	}

	scores := make([]CashierScore, 0, len(byUser))
	for _, cs := range byUser {
		cs.Points = domain.CashierPoints(cs.Amount)
		cs.Stars = domain.CashierStars(cs.Points)
		scores = append(scores, *cs)
	}
	sort.Slice(scores, func(i, j int) bool {
		if c := scores[i].Amount.Cmp(scores[j].Amount); c != 0 {
			return c > 0
		}
		return scores[i].Username < scores[j].Username
	})
	return scores, nil
}
