/*
engine.go - The sale transaction engine.

Sell runs as one unit of work: lock the product row, check it is active and
has enough stock, insert the sale with its price and profit snapshot, book
the stock-out through the ledger and credit the customer's points. Any
failure rolls every step back. Cache invalidation and the sale event happen
only after commit and never fail the sale.
*/
package pos

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"vican-pos/internal/cache"
	"vican-pos/internal/database"
	"vican-pos/internal/database/models"
	"vican-pos/internal/domain"
	"vican-pos/internal/services/directory"
	"vican-pos/internal/services/inventory"
)

type Engine struct {
	db    *gorm.DB
	cache *cache.Cache
	now   func() time.Time
}

type Option func(*Engine)

// WithClock overrides the time source used to stamp sales.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

func NewEngine(db *gorm.DB, c *cache.Cache, opts ...Option) *Engine {
	e := &Engine{db: db, cache: c, now: time.Now}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

type SellRequest struct {
	ProductID  int64
	Quantity   int64
	ActorID    *int64
	CustomerID *int64
}

type SaleResult struct {
	SaleID      int64           `json:"sale_id"`
	ReceiptNo   string          `json:"receipt_no"`
	ProductID   int64           `json:"product_id"`
	Quantity    int64           `json:"quantity"`
	TotalPrice  decimal.Decimal `json:"total_price"`
	Profit      decimal.Decimal `json:"profit"`
	BonusPoints int64           `json:"bonus_points"`
	Remaining   int64           `json:"remaining"`
	SoldAt      time.Time       `json:"sold_at"`
}

func (e *Engine) Sell(ctx context.Context, req SellRequest) (*SaleResult, error) {
	if req.Quantity <= 0 {
		return nil, fmt.Errorf("%w: quantity must be positive", domain.ErrInvalidQuantity)
	}

	var result SaleResult
	err := database.WithTx(ctx, e.db, func(tx *gorm.DB) error {
		product, err := directory.GetProductForUpdate(tx, req.ProductID)
		if err != nil {
			return err
		}
		if !product.IsActive {
			return fmt.Errorf("%w: %s", domain.ErrProductInactive, product.Name)
		}
		if product.Quantity < req.Quantity {
			return &domain.InsufficientStockError{
				ProductID: product.ID,
				Available: product.Quantity,
				Requested: req.Quantity,
			}
		}

		if req.CustomerID != nil {
			if _, err := directory.GetCustomer(tx, *req.CustomerID); err != nil {
				return err
			}
		}

		qty := decimal.NewFromInt(req.Quantity)
		total := product.Price.Mul(qty)
		profit := product.Price.Sub(product.CostPrice).Mul(qty)

		sale := models.Sale{
			ReceiptNo:  uuid.NewString(),
			ProductID:  product.ID,
			Quantity:   req.Quantity,
			UnitPrice:  product.Price,
			Profit:     profit,
			UserID:     req.ActorID,
			CustomerID: req.CustomerID,
			SoldAt:     e.now(),
		}
		if err := tx.Create(&sale).Error; err != nil {
			return err
		}

		note := fmt.Sprintf("Sale #%d", sale.ID)
		if _, err := inventory.ApplyMovement(tx, product.ID, -req.Quantity, domain.MovementSale, req.ActorID, note); err != nil {
			return err
		}

		points := int64(0)
		if req.CustomerID != nil {
			points = domain.BonusPoints(total)
			if err := directory.AdjustCustomerPoints(tx, *req.CustomerID, points); err != nil {
				return err
			}
		}

		result = SaleResult{
			SaleID:      sale.ID,
			ReceiptNo:   sale.ReceiptNo,
			ProductID:   product.ID,
			Quantity:    req.Quantity,
			TotalPrice:  total,
			Profit:      profit,
			BonusPoints: points,
			Remaining:   product.Quantity - req.Quantity,
			SoldAt:      sale.SoldAt,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	e.cache.Bump(ctx, cache.ReportsNamespace)
	if err := e.cache.Publish(ctx, cache.EventSaleCompleted, result); err != nil {
		log.Printf("[sale] publish %s for sale %d: %v", cache.EventSaleCompleted, result.SaleID, err)
	}
	return &result, nil
}

type Receipt struct {
	SaleID       int64           `json:"sale_id"`
	ReceiptNo    string          `json:"receipt_no"`
	SoldAt       time.Time       `json:"sold_at"`
	ProductID    int64           `json:"product_id"`
	ProductName  string          `json:"product_name"`
	Quantity     int64           `json:"quantity"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	TotalPrice   decimal.Decimal `json:"total_price"`
	Cashier      string          `json:"cashier"`
	CustomerName string          `json:"customer_name"`
}

// Receipt returns the printable view of one sale.
func (e *Engine) Receipt(ctx context.Context, saleID int64) (*Receipt, error) {
	var sale models.Sale
	err := e.db.WithContext(ctx).
		Preload("Product").Preload("User").Preload("Customer").
		First(&sale, saleID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &domain.NotFoundError{Entity: "sale", ID: saleID}
		}
		return nil, database.Classify(err)
	}

	r := &Receipt{
		SaleID:     sale.ID,
		ReceiptNo:  sale.ReceiptNo,
		SoldAt:     sale.SoldAt,
		ProductID:  sale.ProductID,
		Quantity:   sale.Quantity,
		UnitPrice:  sale.UnitPrice,
		TotalPrice: sale.UnitPrice.Mul(decimal.NewFromInt(sale.Quantity)),
	}
	if sale.Product != nil {
		r.ProductName = sale.Product.Name
	}
	if sale.User != nil {
		r.Cashier = sale.User.Username
	}
	if sale.Customer != nil {
		r.CustomerName = sale.Customer.Name
	}
	return r, nil
}

// PurgeSale deletes a sale record outright. Stock and bonus points are not
// given back; the sale movement stays in the ledger.
func (e *Engine) PurgeSale(ctx context.Context, saleID int64) error {
	var sale models.Sale
	err := database.WithTx(ctx, e.db, func(tx *gorm.DB) error {
		if err := tx.First(&sale, saleID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &domain.NotFoundError{Entity: "sale", ID: saleID}
			}
			return err
		}
		return tx.Delete(&models.Sale{}, saleID).Error
	})
	if err != nil {
		return err
	}

	log.Printf("[sale] purged sale %d (%s)", sale.ID, sale.ReceiptNo)
	e.cache.Bump(ctx, cache.ReportsNamespace)
	if err := e.cache.Publish(ctx, cache.EventSalePurged, map[string]interface{}{"sale_id": sale.ID}); err != nil {
		log.Printf("[sale] publish %s for sale %d: %v", cache.EventSalePurged, sale.ID, err)
	}
	return nil
}
