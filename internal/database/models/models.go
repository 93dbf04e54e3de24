package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type User struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	Username  string `gorm:"type:varchar(64);uniqueIndex;not null"`
	Password  string `gorm:"not null"`
	Role      string `gorm:"type:varchar(16);not null"`
	IsActive  bool   `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Product quantity is owned by the inventory ledger; nothing else writes it.
type Product struct {
	ID        int64           `gorm:"primaryKey;autoIncrement"`
	Name      string          `gorm:"type:varchar(255);not null;index"`
	CostPrice decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Price     decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Quantity  int64           `gorm:"not null;default:0;check:quantity >= 0"`
	IsActive  bool            `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// InventoryMovement rows are append-only.
type InventoryMovement struct {
	ID            int64     `gorm:"primaryKey;autoIncrement"`
	ProductID     int64     `gorm:"not null;index:idx_movements_product_date,priority:1"`
	QuantityDelta int64     `gorm:"not null"`
	Kind          string    `gorm:"type:varchar(16);not null"`
	UserID        *int64    `gorm:"index"`
	Notes         string    `gorm:"type:varchar(255)"`
	CreatedAt     time.Time `gorm:"not null;index:idx_movements_product_date,priority:2"`

	Product *Product `gorm:"foreignKey:ProductID;constraint:OnDelete:RESTRICT"`
	User    *User    `gorm:"foreignKey:UserID;constraint:OnDelete:SET NULL"`
}

// Sale stores price and profit as they were when the sale committed.
type Sale struct {
	ID         int64           `gorm:"primaryKey;autoIncrement"`
	ReceiptNo  string          `gorm:"type:varchar(36);uniqueIndex;not null"`
	ProductID  int64           `gorm:"not null;index"`
	Quantity   int64           `gorm:"not null"`
	UnitPrice  decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Profit     decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	UserID     *int64          `gorm:"index"`
	CustomerID *int64          `gorm:"index"`
	SoldAt     time.Time       `gorm:"not null;index"`

	Product  *Product  `gorm:"foreignKey:ProductID;constraint:OnDelete:RESTRICT"`
	User     *User     `gorm:"foreignKey:UserID;constraint:OnDelete:SET NULL"`
	Customer *Customer `gorm:"foreignKey:CustomerID;constraint:OnDelete:SET NULL"`
}

type Customer struct {
	ID          int64  `gorm:"primaryKey;autoIncrement"`
	Name        string `gorm:"type:varchar(255);not null"`
	Phone       string `gorm:"type:varchar(32);uniqueIndex;not null"`
	BonusPoints int64  `gorm:"not null;default:0;check:bonus_points >= 0"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type Expense struct {
	ID          int64           `gorm:"primaryKey;autoIncrement"`
	Description string          `gorm:"type:varchar(255);not null"`
	Amount      decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	ExpenseDate time.Time       `gorm:"not null;index"`
	UserID      *int64          `gorm:"index"`
	CreatedAt   time.Time

	User *User `gorm:"foreignKey:UserID;constraint:OnDelete:SET NULL"`
}

// All lists every table in migration order.
func All() []interface{} {
	return []interface{}{
		&User{},
		&Product{},
		&Customer{},
		&InventoryMovement{},
		&Sale{},
		&Expense{},
	}
}
