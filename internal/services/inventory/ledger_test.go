package inventory_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"vican-pos/internal/database"
	"vican-pos/internal/database/dbtest"
	"vican-pos/internal/database/models"
	"vican-pos/internal/domain"
	"vican-pos/internal/services/inventory"
)

func quantityOf(t *testing.T, db *gorm.DB, productID int64) int64 {
	t.Helper()
	var p models.Product
	require.NoError(t, db.First(&p, productID).Error)
	return p.Quantity
}

func movementCount(t *testing.T, db *gorm.DB, productID int64) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(&models.InventoryMovement{}).Where("product_id = ?", productID).Count(&n).Error)
	return n
}

func TestApplyMovement_PositiveAndNegative(t *testing.T) {
	// GIVEN a product with 5 units
	db := dbtest.New(t)
	p := dbtest.SeedProduct(t, db, "Tea", 1000, 2000, 5)
	user := dbtest.SeedUser(t, db, "ware", "warehouse")

	// WHEN 10 units come in and 12 go out
	err := database.WithTx(context.Background(), db, func(tx *gorm.DB) error {
		if _, err := inventory.ApplyMovement(tx, p.ID, 10, domain.MovementRestock, &user.ID, "in"); err != nil {
			return err
		}
		_, err := inventory.ApplyMovement(tx, p.ID, -12, domain.MovementDispatch, &user.ID, "out")
		return err
	})

	// THEN quantity is 3 and two more movements exist
	require.NoError(t, err)
	assert.Equal(t, int64(3), quantityOf(t, db, p.ID))
	assert.Equal(t, int64(3), movementCount(t, db, p.ID))
}

func TestApplyMovement_InsufficientStockLeavesNoTrace(t *testing.T) {
	db := dbtest.New(t)
	p := dbtest.SeedProduct(t, db, "Tea", 1000, 2000, 2)

	err := database.WithTx(context.Background(), db, func(tx *gorm.DB) error {
		_, err := inventory.ApplyMovement(tx, p.ID, -3, domain.MovementDispatch, nil, "")
		return err
	})

	require.ErrorIs(t, err, domain.ErrInsufficientStock)
	var stockErr *domain.InsufficientStockError
	require.True(t, errors.As(err, &stockErr))
	assert.Equal(t, int64(2), stockErr.Available)
	assert.Equal(t, int64(3), stockErr.Requested)

	assert.Equal(t, int64(2), quantityOf(t, db, p.ID))
	assert.Equal(t, int64(1), movementCount(t, db, p.ID))
}

func TestApplyMovement_Rejects(t *testing.T) {
	db := dbtest.New(t)
	p := dbtest.SeedProduct(t, db, "Tea", 1000, 2000, 2)

	cases := []struct {
		name      string
		productID int64
		delta     int64
		kind      domain.MovementKind
		want      error
	}{
		{"zero delta", p.ID, 0, domain.MovementRestock, domain.ErrInvalidQuantity},
		{"unknown product", 9999, 1, domain.MovementRestock, domain.ErrNotFound},
		{"unknown kind", p.ID, 1, domain.MovementKind("gift"), domain.ErrInvalidInput},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := database.WithTx(context.Background(), db, func(tx *gorm.DB) error {
				_, err := inventory.ApplyMovement(tx, tc.productID, tc.delta, tc.kind, nil, "")
				return err
			})
			assert.ErrorIs(t, err, tc.want)
		})
	}
	assert.Equal(t, int64(2), quantityOf(t, db, p.ID))
}

func TestService_ReceiveDispatch(t *testing.T) {
	db := dbtest.New(t)
	svc := inventory.NewService(db, nil)
	p := dbtest.SeedProduct(t, db, "Rice", 5000, 7000, 0)
	ctx := context.Background()

	res, err := svc.Receive(ctx, p.ID, 40, nil, "")
	require.NoError(t, err)
	assert.Equal(t, int64(40), res.Quantity)
	assert.Equal(t, inventory.DefaultReceiveNote, res.Movement.Notes)
	assert.Equal(t, string(domain.MovementRestock), res.Movement.Kind)

	res, err = svc.Dispatch(ctx, p.ID, 15, nil, "to shelf 3")
	require.NoError(t, err)
	assert.Equal(t, int64(25), res.Quantity)
	assert.Equal(t, int64(-15), res.Movement.QuantityDelta)
	assert.Equal(t, "to shelf 3", res.Movement.Notes)

	_, err = svc.Dispatch(ctx, p.ID, 26, nil, "")
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	_, err = svc.Receive(ctx, p.ID, 0, nil, "")
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)
	_, err = svc.Dispatch(ctx, p.ID, -4, nil, "")
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)

	discrepancies, err := svc.Audit(ctx)
	require.NoError(t, err)
	assert.Empty(t, discrepancies)
}

func TestService_History(t *testing.T) {
	db := dbtest.New(t)
	svc := inventory.NewService(db, nil)
	user := dbtest.SeedUser(t, db, "ware", "warehouse")
	tea := dbtest.SeedProduct(t, db, "Tea", 1000, 2000, 5)
	rice := dbtest.SeedProduct(t, db, "Rice", 1000, 2000, 5)
	ctx := context.Background()

	_, err := svc.Dispatch(ctx, tea.ID, 2, &user.ID, "")
	require.NoError(t, err)

	all := svc.History(ctx, nil, 0)
	assert.Len(t, all, 3)

	teaOnly := svc.History(ctx, &tea.ID, 10)
	require.Len(t, teaOnly, 2)
	assert.Equal(t, int64(-2), teaOnly[0].QuantityDelta)
	assert.Equal(t, "Tea", teaOnly[0].ProductName)
	assert.Equal(t, "ware", teaOnly[0].Username)
	assert.Equal(t, "", teaOnly[1].Username)

	riceOnly := svc.History(ctx, &rice.ID, 10)
	assert.Len(t, riceOnly, 1)
}

func TestService_PurgeMovement_Compensates(t *testing.T) {
	// GIVEN a product received twice and dispatched once
	db := dbtest.New(t)
	svc := inventory.NewService(db, nil)
	p := dbtest.SeedProduct(t, db, "Soap", 1000, 2000, 10)
	ctx := context.Background()

	in, err := svc.Receive(ctx, p.ID, 5, nil, "")
	require.NoError(t, err)
	out, err := svc.Dispatch(ctx, p.ID, 4, nil, "")
	require.NoError(t, err)
	require.Equal(t, int64(11), out.Quantity)

	// WHEN the dispatch is purged
	_, err = svc.PurgeMovement(ctx, out.Movement.ID)
	require.NoError(t, err)

	// THEN the quantity is restored and the ledger still balances
	assert.Equal(t, int64(15), quantityOf(t, db, p.ID))

	// WHEN the receipt is purged
	_, err = svc.PurgeMovement(ctx, in.Movement.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(10), quantityOf(t, db, p.ID))

	discrepancies, err := svc.Audit(ctx)
	require.NoError(t, err)
	assert.Empty(t, discrepancies)
}

func TestService_PurgeMovement_Refusals(t *testing.T) {
	db := dbtest.New(t)
	svc := inventory.NewService(db, nil)
	p := dbtest.SeedProduct(t, db, "Soap", 1000, 2000, 0)
	ctx := context.Background()

	in, err := svc.Receive(ctx, p.ID, 5, nil, "")
	require.NoError(t, err)
	_, err = svc.Dispatch(ctx, p.ID, 3, nil, "")
	require.NoError(t, err)

	// Removing the receipt would leave -3 units.
	_, err = svc.PurgeMovement(ctx, in.Movement.ID)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Equal(t, int64(2), quantityOf(t, db, p.ID))

	saleMovement := models.InventoryMovement{ProductID: p.ID, QuantityDelta: -1, Kind: string(domain.MovementSale)}
	require.NoError(t, db.Create(&saleMovement).Error)
	_, err = svc.PurgeMovement(ctx, saleMovement.ID)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = svc.PurgeMovement(ctx, 424242)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestService_Audit_FindsDrift(t *testing.T) {
	db := dbtest.New(t)
	svc := inventory.NewService(db, nil)
	p := dbtest.SeedProduct(t, db, "Salt", 1000, 2000, 4)

	// A write that bypasses the ledger.
	require.NoError(t, db.Model(&models.Product{}).Where("id = ?", p.ID).Update("quantity", 9).Error)

	discrepancies, err := svc.Audit(context.Background())
	require.NoError(t, err)
	require.Len(t, discrepancies, 1)
	assert.Equal(t, p.ID, discrepancies[0].ProductID)
	assert.Equal(t, int64(9), discrepancies[0].Quantity)
	assert.Equal(t, int64(4), discrepancies[0].LedgerSum)
}
