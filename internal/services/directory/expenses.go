package directory

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"vican-pos/internal/database"
	"vican-pos/internal/database/models"
	"vican-pos/internal/domain"
)

const DateLayout = "2006-01-02"

type ExpenseInput struct {
	Description string
	Amount      decimal.Decimal
	Date        string
}

func (s *Service) AddExpense(ctx context.Context, in ExpenseInput, actorID *int64) (*models.Expense, error) {
	description := strings.TrimSpace(in.Description)
	if description == "" {
		return nil, domain.Invalid("description", "is required")
	}
	if !in.Amount.IsPositive() {
		return nil, domain.Invalid("amount", "must be positive")
	}
	date, err := time.ParseInLocation(DateLayout, in.Date, time.Local)
	if err != nil {
		return nil, domain.Invalid("date", "must be YYYY-MM-DD")
	}

	expense := models.Expense{
		Description: description,
		Amount:      in.Amount,
		ExpenseDate: date,
		UserID:      actorID,
	}
	if err := s.db.WithContext(ctx).Create(&expense).Error; err != nil {
		return nil, database.Classify(err)
	}

	s.catalogChanged(ctx, "expense")
	return &expense, nil
}
