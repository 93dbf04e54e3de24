package rpc

import (
	"time"

	"github.com/shopspring/decimal"

	"vican-pos/internal/database/models"
	"vican-pos/internal/services/inventory"
	"vican-pos/internal/services/reports"
)

type Empty struct{}

type IDRequest struct {
	ID int64 `json:"id"`
}

// ListRequest is shared by the directory listings.
type ListRequest struct {
	Search    string `json:"search,omitempty"`
	Active    *bool  `json:"active,omitempty"`
	PageSize  int    `json:"page_size,omitempty"`
	PageToken string `json:"page_token,omitempty"`
}

type Pagination struct {
	NextPageToken string `json:"next_page_token,omitempty"`
	TotalCount    int64  `json:"total_count"`
}

// Inventory

type ApplyMovementRequest struct {
	ProductID int64  `json:"product_id"`
	Quantity  int64  `json:"quantity"`
	Kind      string `json:"kind"`
	ActorID   *int64 `json:"actor_id,omitempty"`
	Note      string `json:"note,omitempty"`
}

type Movement struct {
	ID            int64     `json:"id"`
	ProductID     int64     `json:"product_id"`
	QuantityDelta int64     `json:"quantity_delta"`
	Kind          string    `json:"kind"`
	UserID        *int64    `json:"user_id,omitempty"`
	Notes         string    `json:"notes"`
	CreatedAt     time.Time `json:"created_at"`
}

func MovementFromModel(m models.InventoryMovement) Movement {
	return Movement{
		ID:            m.ID,
		ProductID:     m.ProductID,
		QuantityDelta: m.QuantityDelta,
		Kind:          m.Kind,
		UserID:        m.UserID,
		Notes:         m.Notes,
		CreatedAt:     m.CreatedAt,
	}
}

type MovementReply struct {
	Movement Movement `json:"movement"`
	Quantity int64    `json:"quantity"`
}

type ListMovementsRequest struct {
	ProductID *int64 `json:"product_id,omitempty"`
	Limit     int    `json:"limit,omitempty"`
}

type ListMovementsReply struct {
	Movements []inventory.MovementView `json:"movements"`
}

type AuditReply struct {
	Discrepancies []inventory.Discrepancy `json:"discrepancies"`
}

// Sales

type SellRequest struct {
	ProductID  int64  `json:"product_id"`
	Quantity   int64  `json:"quantity"`
	ActorID    *int64 `json:"actor_id,omitempty"`
	CustomerID *int64 `json:"customer_id,omitempty"`
}

// Reports

type RangeRequest struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type WindowRequest struct {
	Days int `json:"days"`
}

type RestockReply struct {
	Items []reports.Recommendation `json:"items"`
}

type PerformanceReply struct {
	Cashiers []reports.CashierScore `json:"cashiers"`
}

// Directory

type User struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Role      string    `json:"role"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

func UserFromModel(u models.User) User {
	return User{ID: u.ID, Username: u.Username, Role: u.Role, IsActive: u.IsActive, CreatedAt: u.CreatedAt}
}

type Product struct {
	ID        int64           `json:"id"`
	Name      string          `json:"name"`
	CostPrice decimal.Decimal `json:"cost_price"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int64           `json:"quantity"`
	IsActive  bool            `json:"is_active"`
	UpdatedAt time.Time       `json:"updated_at"`
}

func ProductFromModel(p models.Product) Product {
	return Product{
		ID:        p.ID,
		Name:      p.Name,
		CostPrice: p.CostPrice,
		Price:     p.Price,
		Quantity:  p.Quantity,
		IsActive:  p.IsActive,
		UpdatedAt: p.UpdatedAt,
	}
}

type Customer struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Phone       string `json:"phone"`
	BonusPoints int64  `json:"bonus_points"`
}

func CustomerFromModel(c models.Customer) Customer {
	return Customer{ID: c.ID, Name: c.Name, Phone: c.Phone, BonusPoints: c.BonusPoints}
}

type Expense struct {
	ID          int64           `json:"id"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Date        string          `json:"date"`
	UserID      *int64          `json:"user_id,omitempty"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type QRLoginRequest struct {
	Token string `json:"token"`
}

type SessionReply struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	User      User      `json:"user"`
}

type LoginTokenReply struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

type UsersReply struct {
	Users      []User     `json:"users"`
	Pagination Pagination `json:"pagination"`
}

type CreateUserRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type UpdateUserRequest struct {
	ID       int64   `json:"id"`
	Username *string `json:"username,omitempty"`
	Password *string `json:"password,omitempty"`
	Role     *string `json:"role,omitempty"`
	IsActive *bool   `json:"is_active,omitempty"`
}

type ProductsReply struct {
	Products   []Product  `json:"products"`
	Pagination Pagination `json:"pagination"`
}

type CreateProductRequest struct {
	Name      string          `json:"name"`
	CostPrice decimal.Decimal `json:"cost_price"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int64           `json:"quantity"`
	ActorID   *int64          `json:"actor_id,omitempty"`
}

type UpdateProductRequest struct {
	ID        int64            `json:"id"`
	Name      *string          `json:"name,omitempty"`
	CostPrice *decimal.Decimal `json:"cost_price,omitempty"`
	Price     *decimal.Decimal `json:"price,omitempty"`
	IsActive  *bool            `json:"is_active,omitempty"`
}

type CustomersReply struct {
	Customers  []Customer `json:"customers"`
	Pagination Pagination `json:"pagination"`
}

type CreateCustomerRequest struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

type UpdateCustomerRequest struct {
	ID    int64   `json:"id"`
	Name  *string `json:"name,omitempty"`
	Phone *string `json:"phone,omitempty"`
}

type AddExpenseRequest struct {
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Date        string          `json:"date"`
	ActorID     *int64          `json:"actor_id,omitempty"`
}
