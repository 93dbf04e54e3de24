package domain_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vican-pos/internal/domain"
)

func TestBonusPoints_Floors(t *testing.T) {
	cases := []struct {
		spend string
		want  int64
	}{
		{"0", 0},
		{"9999.99", 0},
		{"10000", 1},
		{"150000", 15},
		{"159999", 15},
		{"-20000", 0},
	}
	for _, tc := range cases {
		t.Run(tc.spend, func(t *testing.T) {
			assert.Equal(t, tc.want, domain.BonusPoints(decimal.RequireFromString(tc.spend)))
		})
	}
}

func TestCashierPoints_Floors(t *testing.T) {
	assert.Equal(t, int64(0), domain.CashierPoints(decimal.NewFromInt(99999)))
	assert.Equal(t, int64(1), domain.CashierPoints(decimal.NewFromInt(100000)))
	assert.Equal(t, int64(49), domain.CashierPoints(decimal.NewFromInt(4999999)))
}

func TestCashierStars_Boundaries(t *testing.T) {
	cases := map[int64]int64{
		0:   0,
		9:   0,
		10:  1,
		49:  4,
		50:  5,
		200: 5,
	}
	for points, want := range cases {
		t.Run(fmt.Sprint(points), func(t *testing.T) {
			assert.Equal(t, want, domain.CashierStars(points))
		})
	}
}

func TestRole_Capabilities(t *testing.T) {
	assert.True(t, domain.RoleAdmin.Can(domain.CapManageUsers))
	assert.True(t, domain.RoleAdmin.Can(domain.CapSell))

	assert.True(t, domain.RoleCashier.Can(domain.CapSell))
	assert.False(t, domain.RoleCashier.Can(domain.CapMoveStock))
	assert.False(t, domain.RoleCashier.Can(domain.CapViewReports))

	assert.True(t, domain.RoleWarehouse.Can(domain.CapMoveStock))
	assert.True(t, domain.RoleWarehouse.Can(domain.CapViewRestock))
	assert.False(t, domain.RoleWarehouse.Can(domain.CapSell))

	assert.False(t, domain.Role("manager").Can(domain.CapViewCatalog))
}

func TestParseRole(t *testing.T) {
	r, err := domain.ParseRole(" Cashier ")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleCashier, r)

	_, err = domain.ParseRole("owner")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestErrors_Unwrap(t *testing.T) {
	err := fmt.Errorf("sell: %w", &domain.InsufficientStockError{ProductID: 1, Available: 2, Requested: 3})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.True(t, domain.IsClientError(err))
	assert.False(t, domain.IsRetryable(err))

	var stockErr *domain.InsufficientStockError
	require.True(t, errors.As(err, &stockErr))
	assert.Equal(t, int64(2), stockErr.Available)

	assert.True(t, domain.IsNotFound(&domain.NotFoundError{Entity: "product", ID: 9}))
	assert.True(t, domain.IsRetryable(fmt.Errorf("x: %w", domain.ErrStoreUnavailable)))
}
