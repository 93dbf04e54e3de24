package domain

import "strings"

type Role string

const (
	RoleAdmin     Role = "admin"
	RoleCashier   Role = "cashier"
	RoleWarehouse Role = "warehouse"
)

var Roles = []Role{RoleAdmin, RoleCashier, RoleWarehouse}

// ParseRole accepts only the closed set of staff roles.
func ParseRole(s string) (Role, error) {
	r := Role(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Roles {
		if r == known {
			return r, nil
		}
	}
	return "", Invalid("role", "must be one of admin, cashier, warehouse")
}

type Capability string

const (
	CapSell            Capability = "sell"
	CapViewReceipt     Capability = "view_receipt"
	CapMoveStock       Capability = "move_stock"
	CapViewMovements   Capability = "view_movements"
	CapPurgeRecords    Capability = "purge_records"
	CapViewReports     Capability = "view_reports"
	CapViewRestock     Capability = "view_restock"
	CapViewCatalog     Capability = "view_catalog"
	CapManageCatalog   Capability = "manage_catalog"
	CapViewCustomers   Capability = "view_customers"
	CapManageCustomers Capability = "manage_customers"
	CapManageUsers     Capability = "manage_users"
	CapManageExpenses  Capability = "manage_expenses"
)

// capabilities lists what each non-admin role may do. Admin may do everything.
var capabilities = map[Role]map[Capability]bool{
	RoleCashier: {
		CapSell:          true,
		CapViewReceipt:   true,
		CapViewCatalog:   true,
		CapViewCustomers: true,
	},
	RoleWarehouse: {
		CapMoveStock:   true,
		CapViewRestock: true,
		CapViewCatalog: true,
	},
}

// Can reports whether role r holds capability c.
func (r Role) Can(c Capability) bool {
	if r == RoleAdmin {
		return true
	}
	return capabilities[r][c]
}
