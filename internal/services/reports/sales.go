package reports

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// saleRow is one sale joined with its product and cashier.
type saleRow struct {
	ID              int64
	ReceiptNo       string
	SoldAt          time.Time
	ProductID       int64
	ProductName     string
	CurrentPrice    decimal.Decimal
	ProductQuantity int64
	ProductActive   bool
	Quantity        int64
	UnitPrice       decimal.Decimal
	Profit          decimal.Decimal
	UserID          *int64
	Username        string
	Role            string
}

func (r saleRow) total() decimal.Decimal {
	return r.UnitPrice.Mul(decimal.NewFromInt(r.Quantity))
}

func (e *Engine) loadSales(ctx context.Context, from, to time.Time) ([]saleRow, error) {
	rows := []saleRow{}
	err := e.db.WithContext(ctx).
		Table("sales AS s").
		Select("s.id, s.receipt_no, s.sold_at, s.product_id, p.name AS product_name, " +
			"p.price AS current_price, p.quantity AS product_quantity, p.is_active AS product_active, " +
			"s.quantity, s.unit_price, s.profit, s.user_id, " +
			"COALESCE(u.username, '') AS username, COALESCE(u.role, '') AS role").
		Joins("JOIN products p ON p.id = s.product_id").
		Joins("LEFT JOIN users u ON u.id = s.user_id").
		Where("s.sold_at >= ? AND s.sold_at < ?", from, to).
		Order("s.sold_at DESC, s.id DESC").
		Scan(&rows).Error
	return rows, err
}

type SaleLine struct {
	SaleID       int64           `json:"sale_id"`
	ReceiptNo    string          `json:"receipt_no"`
	Date         string          `json:"date"`
	SoldAt       time.Time       `json:"sold_at"`
	ProductName  string          `json:"product_name"`
	Quantity     int64           `json:"quantity"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	CurrentPrice decimal.Decimal `json:"current_price"`
	Total        decimal.Decimal `json:"total"`
	Profit       decimal.Decimal `json:"profit"`
	Cashier      string          `json:"cashier"`
}

type SalesReport struct {
	Start        string          `json:"start"`
	End          string          `json:"end"`
	Lines        []SaleLine      `json:"lines"`
	TotalRevenue decimal.Decimal `json:"total_revenue"`
	TotalProfit  decimal.Decimal `json:"total_profit"`
}

// SalesReport lists every sale between start and end, newest first.
func (e *Engine) SalesReport(ctx context.Context, start, end string) (*SalesReport, error) {
	from, to, err := parseRange(start, end)
	if err != nil {
		return nil, err
	}

	report := &SalesReport{
		Start:        start,
		End:          end,
		Lines:        []SaleLine{},
		TotalRevenue: decimal.Zero,
		TotalProfit:  decimal.Zero,
	}

	rows, err := e.loadSales(ctx, from, to)
	if err != nil {
		degrade("sales report", err)
		return report, nil
	}

	for _, r := range rows {
		total := r.total()
		report.Lines = append(report.Lines, SaleLine{
			SaleID:       r.ID,
			ReceiptNo:    r.ReceiptNo,
			Date:         r.SoldAt.In(time.Local).Format(DateLayout),
			SoldAt:       r.SoldAt,
			ProductName:  r.ProductName,
			Quantity:     r.Quantity,
			UnitPrice:    r.UnitPrice,
			CurrentPrice: r.CurrentPrice,
			Total:        total,
			Profit:       r.Profit,
			Cashier:      r.Username,
		})
		report.TotalRevenue = report.TotalRevenue.Add(total)
		report.TotalProfit = report.TotalProfit.Add(r.Profit)
	}
	return report, nil
}

type expenseRow struct {
	ID          int64
	ExpenseDate time.Time
	Description string
	Amount      decimal.Decimal
	Username    string
}

func (e *Engine) loadExpenses(ctx context.Context, from, to time.Time) ([]expenseRow, error) {
	rows := []expenseRow{}
	err := e.db.WithContext(ctx).
		Table("expenses AS e").
		Select("e.id, e.expense_date, e.description, e.amount, COALESCE(u.username, '') AS username").
		Joins("LEFT JOIN users u ON u.id = e.user_id").
		Where("e.expense_date >= ? AND e.expense_date < ?", from, to).
		Order("e.expense_date DESC, e.id DESC").
		Scan(&rows).Error
	return rows, err
}

type ExpenseLine struct {
	ExpenseID   int64           `json:"expense_id"`
	Date        string          `json:"date"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	RecordedBy  string          `json:"recorded_by"`
}

type ExpenseReport struct {
	Start string          `json:"start"`
	End   string          `json:"end"`
	Lines []ExpenseLine   `json:"lines"`
	Total decimal.Decimal `json:"total"`
}

func (e *Engine) ExpenseReport(ctx context.Context, start, end string) (*ExpenseReport, error) {
	from, to, err := parseRange(start, end)
	if err != nil {
		return nil, err
	}

	report := &ExpenseReport{Start: start, End: end, Lines: []ExpenseLine{}, Total: decimal.Zero}

	rows, err := e.loadExpenses(ctx, from, to)
	if err != nil {
		degrade("expense report", err)
		return report, nil
	}

	for _, r := range rows {
		report.Lines = append(report.Lines, ExpenseLine{
			ExpenseID:   r.ID,
			Date:        r.ExpenseDate.In(time.Local).Format(DateLayout),
			Description: r.Description,
			Amount:      r.Amount,
			RecordedBy:  r.Username,
		})
		report.Total = report.Total.Add(r.Amount)
	}
	return report, nil
}
