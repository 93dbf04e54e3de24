package domain

import "github.com/shopspring/decimal"

type MovementKind string

const (
	MovementRestock  MovementKind = "restock"
	MovementDispatch MovementKind = "dispatch"
	MovementSale     MovementKind = "sale"
)

func ParseMovementKind(s string) (MovementKind, error) {
	switch k := MovementKind(s); k {
	case MovementRestock, MovementDispatch, MovementSale:
		return k, nil
	}
	return "", Invalid("kind", "must be one of restock, dispatch, sale")
}

// Loyalty and scoring constants. All formulas below floor, never round.
const (
	BonusPointUnit   = 10000
	CashierPointUnit = 100000
	PointsPerStar    = 10
	MaxStars         = 5
)

// Restock recommendation rules.
const (
	LowStockThreshold  = 10
	LowStockTarget     = 20
	FastMoverWindow    = 30
	FastMoverTopN      = 10
	FastMoverThreshold = 25
	FastMoverTarget    = 30

	ReasonLowStock   = "low stock"
	ReasonHighDemand = "high demand"
)

var (
	bonusPointUnit   = decimal.NewFromInt(BonusPointUnit)
	cashierPointUnit = decimal.NewFromInt(CashierPointUnit)
)

// floorDiv returns floor(amount / unit) for non-negative amounts and 0 otherwise.
func floorDiv(amount, unit decimal.Decimal) int64 {
	if !amount.IsPositive() {
		return 0
	}
	return amount.Div(unit).Floor().IntPart()
}

// BonusPoints is the loyalty accrual for a purchase: floor(spend / 10000).
func BonusPoints(spend decimal.Decimal) int64 {
	return floorDiv(spend, bonusPointUnit)
}

// CashierPoints is the gamification score: floor(sales / 100000).
func CashierPoints(sales decimal.Decimal) int64 {
	return floorDiv(sales, cashierPointUnit)
}

// CashierStars is min(floor(points / 10), 5).
func CashierStars(points int64) int64 {
	if points <= 0 {
		return 0
	}
	return min(points/PointsPerStar, MaxStars)
}
