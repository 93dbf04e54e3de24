/*
ledger.go - The stock ledger.

A product's quantity only changes through adjustQuantity, which is a single
conditional UPDATE:

	UPDATE products SET quantity = quantity + delta
	WHERE id = ? AND quantity + delta >= 0

ApplyMovement pairs that update with the movement row inside the caller's
transaction, so the sum of a product's movement deltas always equals its
quantity. PurgeMovement keeps the same equality by compensating the
quantity when an audit row is removed.
*/
package inventory

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"vican-pos/internal/database"
	"vican-pos/internal/database/models"
	"vican-pos/internal/domain"
)

// ApplyMovement changes the product's quantity by delta and appends the
// movement row. It must run inside a transaction opened by the caller; on
// error nothing has been written through tx.
func ApplyMovement(tx *gorm.DB, productID, delta int64, kind domain.MovementKind, actorID *int64, note string) (*models.InventoryMovement, error) {
	if _, err := domain.ParseMovementKind(string(kind)); err != nil {
		return nil, err
	}

	if err := adjustQuantity(tx, productID, delta); err != nil {
		return nil, err
	}

	movement := models.InventoryMovement{
		ProductID:     productID,
		QuantityDelta: delta,
		Kind:          string(kind),
		UserID:        actorID,
		Notes:         note,
	}
	if err := tx.Create(&movement).Error; err != nil {
		return nil, database.Classify(err)
	}

	return &movement, nil
}

func adjustQuantity(tx *gorm.DB, productID, delta int64) error {
	if delta == 0 {
		return fmt.Errorf("%w: quantity change must be non-zero", domain.ErrInvalidQuantity)
	}

	res := tx.Model(&models.Product{}).
		Where("id = ? AND quantity + ? >= 0", productID, delta).
		Update("quantity", gorm.Expr("quantity + ?", delta))
	if res.Error != nil {
		return database.Classify(res.Error)
	}
	if res.RowsAffected > 0 {
		return nil
	}

	var product models.Product
	if err := tx.Select("id", "quantity").First(&product, productID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &domain.NotFoundError{Entity: "product", ID: productID}
		}
		return database.Classify(err)
	}

	return &domain.InsufficientStockError{
		ProductID: productID,
		Available: product.Quantity,
		Requested: -delta,
	}
}
