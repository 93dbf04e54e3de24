// Package dbtest opens throwaway SQLite databases for package tests.
package dbtest

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"vican-pos/internal/database"
	"vican-pos/internal/database/models"
)

// New returns a migrated in-memory database. It holds a single connection,
// so concurrent transactions queue behind each other the way row locks
// serialize them on PostgreSQL.
func New(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?_foreign_keys=on"), database.Config("silent"))
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetConnMaxLifetime(0)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, database.MigratePOSDB(db))
	return db
}

// SeedUser inserts an active user with an unusable password hash.
func SeedUser(t *testing.T, db *gorm.DB, username, role string) models.User {
	t.Helper()
	u := models.User{Username: username, Password: "!", Role: role, IsActive: true}
	require.NoError(t, db.Create(&u).Error)
	return u
}

// SeedProduct inserts a product and, when quantity > 0, the restock movement
// that accounts for it.
func SeedProduct(t *testing.T, db *gorm.DB, name string, cost, price int64, quantity int64) models.Product {
	t.Helper()
	p := models.Product{
		Name:      name,
		CostPrice: decimal.NewFromInt(cost),
		Price:     decimal.NewFromInt(price),
		Quantity:  quantity,
		IsActive:  true,
	}
	require.NoError(t, db.Create(&p).Error)
	if quantity > 0 {
		require.NoError(t, db.Create(&models.InventoryMovement{
			ProductID:     p.ID,
			QuantityDelta: quantity,
			Kind:          "restock",
			Notes:         "seed",
		}).Error)
	}
	return p
}

func SeedCustomer(t *testing.T, db *gorm.DB, name, phone string) models.Customer {
	t.Helper()
	c := models.Customer{Name: name, Phone: phone}
	require.NoError(t, db.Create(&c).Error)
	return c
}
