package inventory

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"vican-pos/internal/cache"
	"vican-pos/internal/database"
	"vican-pos/internal/database/models"
	"vican-pos/internal/domain"
)

const (
	DefaultReceiveNote  = "Warehouse receipt"
	DefaultDispatchNote = "Dispatch to shop floor"
	DefaultHistoryLimit = 200
)

type Service struct {
	db    *gorm.DB
	cache *cache.Cache
}

func NewService(db *gorm.DB, c *cache.Cache) *Service {
	return &Service{db: db, cache: c}
}

// MovementResult is a committed movement plus the product's new quantity.
type MovementResult struct {
	Movement models.InventoryMovement
	Quantity int64
}

// Receive books incoming goods.
func (s *Service) Receive(ctx context.Context, productID, quantity int64, actorID *int64, note string) (*MovementResult, error) {
	if quantity <= 0 {
		return nil, fmt.Errorf("%w: receive quantity must be positive", domain.ErrInvalidQuantity)
	}
	if note == "" {
		note = DefaultReceiveNote
	}
	return s.move(ctx, productID, quantity, domain.MovementRestock, actorID, note)
}

// Dispatch books goods leaving the warehouse.
func (s *Service) Dispatch(ctx context.Context, productID, quantity int64, actorID *int64, note string) (*MovementResult, error) {
	if quantity <= 0 {
		return nil, fmt.Errorf("%w: dispatch quantity must be positive", domain.ErrInvalidQuantity)
	}
	if note == "" {
		note = DefaultDispatchNote
	}
	return s.move(ctx, productID, -quantity, domain.MovementDispatch, actorID, note)
}

func (s *Service) move(ctx context.Context, productID, delta int64, kind domain.MovementKind, actorID *int64, note string) (*MovementResult, error) {
	var result MovementResult
	err := database.WithTx(ctx, s.db, func(tx *gorm.DB) error {
		movement, err := ApplyMovement(tx, productID, delta, kind, actorID, note)
		if err != nil {
			return err
		}

		var product models.Product
		if err := tx.Select("id", "quantity").First(&product, productID).Error; err != nil {
			return err
		}

		result = MovementResult{Movement: *movement, Quantity: product.Quantity}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.afterChange(ctx, result.Movement)
	return &result, nil
}

// PurgeMovement removes an audit row and reverses its effect on the product's
// quantity in the same transaction. Sale movements belong to a sale record
// and cannot be purged on their own.
func (s *Service) PurgeMovement(ctx context.Context, movementID int64) (*models.InventoryMovement, error) {
	var movement models.InventoryMovement
	err := database.WithTx(ctx, s.db, func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&movement, movementID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &domain.NotFoundError{Entity: "movement", ID: movementID}
			}
			return err
		}

		if movement.Kind == string(domain.MovementSale) {
			return domain.Invalid("movement", "sale movements cannot be purged")
		}

		if err := adjustQuantity(tx, movement.ProductID, -movement.QuantityDelta); err != nil {
			return err
		}

		return tx.Delete(&models.InventoryMovement{}, movement.ID).Error
	})
	if err != nil {
		return nil, err
	}

	log.Printf("[ledger] purged movement %d (product %d, delta %d)", movement.ID, movement.ProductID, movement.QuantityDelta)
	s.afterChange(ctx, movement)
	return &movement, nil
}

type MovementView struct {
	ID            int64     `json:"id"`
	ProductID     int64     `json:"product_id"`
	ProductName   string    `json:"product_name"`
	QuantityDelta int64     `json:"quantity_delta"`
	Kind          string    `json:"kind"`
	Username      string    `json:"username"`
	Notes         string    `json:"notes"`
	CreatedAt     time.Time `json:"created_at"`
}

// History lists movements newest first. Store failures yield an empty list.
func (s *Service) History(ctx context.Context, productID *int64, limit int) []MovementView {
	if limit <= 0 || limit > 1000 {
		limit = DefaultHistoryLimit
	}

	query := s.db.WithContext(ctx).
		Table("inventory_movements AS im").
		Select("im.id, im.product_id, p.name AS product_name, im.quantity_delta, im.kind, " +
			"COALESCE(u.username, '') AS username, im.notes, im.created_at").
		Joins("JOIN products p ON p.id = im.product_id").
		Joins("LEFT JOIN users u ON u.id = im.user_id")
	if productID != nil {
		query = query.Where("im.product_id = ?", *productID)
	}

	views := []MovementView{}
	if err := query.Order("im.created_at DESC, im.id DESC").Limit(limit).Scan(&views).Error; err != nil {
		log.Printf("[ledger] history query failed: %v", err)
		return []MovementView{}
	}
	return views
}

// Discrepancy is a product whose quantity disagrees with its movements.
type Discrepancy struct {
	ProductID   int64  `json:"product_id"`
	ProductName string `json:"product_name"`
	Quantity    int64  `json:"quantity"`
	LedgerSum   int64  `json:"ledger_sum"`
}

// Audit checks the sum-of-deltas invariant for every product.
func (s *Service) Audit(ctx context.Context) ([]Discrepancy, error) {
	out := []Discrepancy{}
	err := s.db.WithContext(ctx).
		Table("products AS p").
		Select("p.id AS product_id, p.name AS product_name, p.quantity, " +
			"COALESCE(SUM(m.quantity_delta), 0) AS ledger_sum").
		Joins("LEFT JOIN inventory_movements m ON m.product_id = p.id").
		Group("p.id, p.name, p.quantity").
		Having("p.quantity <> COALESCE(SUM(m.quantity_delta), 0)").
		Order("p.id").
		Scan(&out).Error
	if err != nil {
		return nil, database.Classify(err)
	}
	return out, nil
}

func (s *Service) afterChange(ctx context.Context, movement models.InventoryMovement) {
	s.cache.Bump(ctx, cache.ReportsNamespace)
	if err := s.cache.Publish(ctx, cache.EventStockMoved, movement); err != nil {
		log.Printf("[ledger] publish %s: %v", cache.EventStockMoved, err)
	}
}
