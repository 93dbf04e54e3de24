package directory_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"vican-pos/internal/database"
	"vican-pos/internal/database/dbtest"
	"vican-pos/internal/database/models"
	"vican-pos/internal/domain"
	"vican-pos/internal/services/directory"
	"vican-pos/internal/services/inventory"
	"vican-pos/internal/utils"
)

func newService(t *testing.T) (*directory.Service, *gorm.DB) {
	t.Helper()
	db := dbtest.New(t)
	return directory.NewService(db, nil, utils.NewTokenIssuer("test-secret"), directory.Options{}), db
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestCreateProduct_OpeningStockGoesThroughLedger(t *testing.T) {
	svc, db := newService(t)
	ctx := context.Background()

	p, err := svc.CreateProduct(ctx, directory.ProductInput{
		Name: " Green Tea ", CostPrice: dec("3000"), Price: dec("5000"), Quantity: 12,
	}, nil)
	require.NoError(t, err)
	assert.Equal(t, "Green Tea", p.Name)
	assert.Equal(t, int64(12), p.Quantity)
	assert.True(t, p.IsActive)

	var movements []models.InventoryMovement
	require.NoError(t, db.Where("product_id = ?", p.ID).Find(&movements).Error)
	require.Len(t, movements, 1)
	assert.Equal(t, int64(12), movements[0].QuantityDelta)
	assert.Equal(t, "initial stock", movements[0].Notes)

	empty, err := svc.CreateProduct(ctx, directory.ProductInput{Name: "Empty", CostPrice: dec("1"), Price: dec("2")}, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(0), empty.Quantity)

	discrepancies, err := inventory.NewService(db, nil).Audit(ctx)
	require.NoError(t, err)
	assert.Empty(t, discrepancies)
}

func TestCreateProduct_Validation(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	cases := []directory.ProductInput{
		{Name: "", CostPrice: dec("1"), Price: dec("1")},
		{Name: "x", CostPrice: dec("-1"), Price: dec("1")},
		{Name: "x", CostPrice: dec("1"), Price: dec("-1")},
		{Name: "x", CostPrice: dec("1"), Price: dec("1"), Quantity: -1},
	}
	for _, in := range cases {
		_, err := svc.CreateProduct(ctx, in, nil)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	}
}

func TestUpdateProduct_NeverTouchesQuantity(t *testing.T) {
	svc, db := newService(t)
	ctx := context.Background()
	p := dbtest.SeedProduct(t, db, "Coffee", 1000, 2000, 7)

	name := "Black Coffee"
	price := dec("2500")
	inactive := false
	updated, err := svc.UpdateProduct(ctx, p.ID, directory.ProductUpdate{Name: &name, Price: &price, IsActive: &inactive})
	require.NoError(t, err)
	assert.Equal(t, "Black Coffee", updated.Name)
	assert.True(t, updated.Price.Equal(price))
	assert.False(t, updated.IsActive)
	assert.Equal(t, int64(7), updated.Quantity)

	_, err = svc.UpdateProduct(ctx, 9999, directory.ProductUpdate{Name: &name})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestListProducts_SearchAndPaging(t *testing.T) {
	svc, db := newService(t)
	ctx := context.Background()
	for _, name := range []string{"Apple Juice", "Orange Juice", "Bread", "Pineapple"} {
		dbtest.SeedProduct(t, db, name, 1, 2, 0)
	}

	products, page, err := svc.ListProducts(ctx, directory.ListFilter{Search: "juice"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), page.TotalCount)
	require.Len(t, products, 2)
	assert.Equal(t, "Orange Juice", products[0].Name)

	first, page, err := svc.ListProducts(ctx, directory.ListFilter{PageSize: 3})
	require.NoError(t, err)
	assert.Len(t, first, 3)
	assert.Equal(t, "2", page.NextPageToken)

	second, page, err := svc.ListProducts(ctx, directory.ListFilter{PageSize: 3, PageToken: page.NextPageToken})
	require.NoError(t, err)
	require.Len(t, second, 1)
	assert.Equal(t, "Apple Juice", second[0].Name)
	assert.Empty(t, page.NextPageToken)
}

func TestPurgeProduct(t *testing.T) {
	svc, db := newService(t)
	ctx := context.Background()

	withHistory := dbtest.SeedProduct(t, db, "Stocked", 1, 2, 3)
	err := svc.PurgeProduct(ctx, withHistory.ID)
	assert.ErrorIs(t, err, domain.ErrHasHistory)

	clean := dbtest.SeedProduct(t, db, "Never stocked", 1, 2, 0)
	require.NoError(t, svc.PurgeProduct(ctx, clean.ID))
	_, err = svc.GetProductByID(ctx, clean.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	assert.ErrorIs(t, svc.PurgeProduct(ctx, clean.ID), domain.ErrNotFound)
}

func TestCustomers(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	c, err := svc.CreateCustomer(ctx, "Dilnoza", "+998901112233")
	require.NoError(t, err)
	assert.Equal(t, int64(0), c.BonusPoints)

	_, err = svc.CreateCustomer(ctx, "Someone Else", "+998901112233")
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	_, err = svc.CreateCustomer(ctx, "", "123")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	other, err := svc.CreateCustomer(ctx, "Bekzod", "+998907654321")
	require.NoError(t, err)

	phone := "+998901112233"
	_, err = svc.UpdateCustomer(ctx, other.ID, directory.CustomerUpdate{Phone: &phone})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	found, _, err := svc.ListCustomers(ctx, directory.ListFilter{Search: "7654"})
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "Bekzod", found[0].Name)
}

func TestAdjustCustomerPoints_NeverNegative(t *testing.T) {
	_, db := newService(t)
	c := dbtest.SeedCustomer(t, db, "Aziz", "555")
	ctx := context.Background()

	require.NoError(t, database.WithTx(ctx, db, func(tx *gorm.DB) error {
		return directory.AdjustCustomerPoints(tx, c.ID, 15)
	}))

	err := database.WithTx(ctx, db, func(tx *gorm.DB) error {
		return directory.AdjustCustomerPoints(tx, c.ID, -16)
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	err = database.WithTx(ctx, db, func(tx *gorm.DB) error {
		return directory.AdjustCustomerPoints(tx, 777, 1)
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	var got models.Customer
	require.NoError(t, db.First(&got, c.ID).Error)
	assert.Equal(t, int64(15), got.BonusPoints)
}

func TestUsers_CreateUpdatePurge(t *testing.T) {
	svc, db := newService(t)
	ctx := context.Background()

	u, err := svc.CreateUser(ctx, directory.UserInput{Username: "kasir1", Password: "secret1", Role: "Cashier"})
	require.NoError(t, err)
	assert.Equal(t, "cashier", u.Role)
	assert.NotEqual(t, "secret1", u.Password)

	_, err = svc.CreateUser(ctx, directory.UserInput{Username: "kasir1", Password: "secret1", Role: "cashier"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	_, err = svc.CreateUser(ctx, directory.UserInput{Username: "x", Password: "secret1", Role: "owner"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	role := "warehouse"
	updated, err := svc.UpdateUser(ctx, u.ID, directory.UserUpdate{Role: &role})
	require.NoError(t, err)
	assert.Equal(t, "warehouse", updated.Role)
	assert.Equal(t, u.Password, updated.Password)

	// GIVEN records that reference the user
	p := dbtest.SeedProduct(t, db, "Tea", 1, 2, 0)
	_, err = inventory.NewService(db, nil).Receive(ctx, p.ID, 5, &u.ID, "")
	require.NoError(t, err)
	_, err = svc.AddExpense(ctx, directory.ExpenseInput{Description: "rent", Amount: dec("100"), Date: "2026-01-31"}, &u.ID)
	require.NoError(t, err)

	// WHEN the user is purged
	require.NoError(t, svc.PurgeUser(ctx, u.ID))

	// THEN the records survive without an actor
	var movement models.InventoryMovement
	require.NoError(t, db.Where("product_id = ? AND kind = ?", p.ID, "restock").First(&movement).Error)
	assert.Nil(t, movement.UserID)

	var expense models.Expense
	require.NoError(t, db.First(&expense).Error)
	assert.Nil(t, expense.UserID)

	_, err = svc.GetUserByID(ctx, u.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAddExpense_Validation(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	_, err := svc.AddExpense(ctx, directory.ExpenseInput{Description: "rent", Amount: dec("0"), Date: "2026-01-01"}, nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = svc.AddExpense(ctx, directory.ExpenseInput{Description: "rent", Amount: dec("10"), Date: "01/02/2026"}, nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = svc.AddExpense(ctx, directory.ExpenseInput{Description: " ", Amount: dec("10"), Date: "2026-01-01"}, nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	e, err := svc.AddExpense(ctx, directory.ExpenseInput{Description: "electricity", Amount: dec("125000.50"), Date: "2026-02-10"}, nil)
	require.NoError(t, err)
	assert.Equal(t, "2026-02-10", e.ExpenseDate.Format(directory.DateLayout))
}

func TestLoginAndQRLogin(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	created, err := svc.EnsureAdmin(ctx, "admin", "admin123")
	require.NoError(t, err)
	assert.True(t, created)
	created, err = svc.EnsureAdmin(ctx, "admin2", "admin123")
	require.NoError(t, err)
	assert.False(t, created)

	session, err := svc.Login(ctx, "admin", "admin123")
	require.NoError(t, err)
	assert.NotEmpty(t, session.Token)
	assert.Equal(t, "admin", session.User.Role)

	_, err = svc.Login(ctx, "admin", "wrong")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	_, err = svc.Login(ctx, "ghost", "admin123")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	badge, err := svc.IssueLoginToken(ctx, session.User.ID)
	require.NoError(t, err)
	assert.True(t, badge.ExpiresAt.After(time.Now().AddDate(4, 11, 0)))

	viaQR, err := svc.QRLogin(ctx, badge.Token)
	require.NoError(t, err)
	assert.Equal(t, session.User.ID, viaQR.User.ID)

	// A session token is not a badge.
	_, err = svc.QRLogin(ctx, session.Token)
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)

	inactive := false
	_, err = svc.UpdateUser(ctx, session.User.ID, directory.UserUpdate{IsActive: &inactive})
	require.NoError(t, err)
	_, err = svc.QRLogin(ctx, badge.Token)
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	_, err = svc.Login(ctx, "admin", "admin123")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}
