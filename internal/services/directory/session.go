package directory

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"vican-pos/internal/database"
	"vican-pos/internal/database/models"
	"vican-pos/internal/domain"
)

// The functions in this file run on a caller-supplied session so the sale
// engine can use them inside its own transaction.

func GetProduct(tx *gorm.DB, id int64) (*models.Product, error) {
	var p models.Product
	if err := tx.First(&p, id).Error; err != nil {
		return nil, notFound(err, "product", id)
	}
	return &p, nil
}

// GetProductForUpdate reads the product and holds its row lock until the
// session's transaction ends.
func GetProductForUpdate(tx *gorm.DB, id int64) (*models.Product, error) {
	var p models.Product
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&p, id).Error; err != nil {
		return nil, notFound(err, "product", id)
	}
	return &p, nil
}

func GetCustomer(tx *gorm.DB, id int64) (*models.Customer, error) {
	var c models.Customer
	if err := tx.First(&c, id).Error; err != nil {
		return nil, notFound(err, "customer", id)
	}
	return &c, nil
}

func GetUser(tx *gorm.DB, id int64) (*models.User, error) {
	var u models.User
	if err := tx.First(&u, id).Error; err != nil {
		return nil, notFound(err, "user", id)
	}
	return &u, nil
}

// AdjustCustomerPoints adds delta to the customer's bonus balance. The
// balance never drops below zero.
func AdjustCustomerPoints(tx *gorm.DB, customerID, delta int64) error {
	if delta == 0 {
		return nil
	}

	res := tx.Model(&models.Customer{}).
		Where("id = ? AND bonus_points + ? >= 0", customerID, delta).
		Update("bonus_points", gorm.Expr("bonus_points + ?", delta))
	if res.Error != nil {
		return database.Classify(res.Error)
	}
	if res.RowsAffected > 0 {
		return nil
	}

	if _, err := GetCustomer(tx, customerID); err != nil {
		return err
	}
	return domain.Invalid("bonus_points", "balance cannot go below zero")
}

func notFound(err error, entity string, id int64) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &domain.NotFoundError{Entity: entity, ID: id}
	}
	return database.Classify(err)
}
