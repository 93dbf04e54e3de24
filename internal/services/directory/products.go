package directory

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"vican-pos/internal/database"
	"vican-pos/internal/database/models"
	"vican-pos/internal/domain"
	"vican-pos/internal/services/inventory"
)

const initialStockNote = "initial stock"

type ProductInput struct {
	Name      string
	CostPrice decimal.Decimal
	Price     decimal.Decimal
	Quantity  int64
}

// ProductUpdate leaves nil fields untouched. Quantity is deliberately absent.
type ProductUpdate struct {
	Name      *string
	CostPrice *decimal.Decimal
	Price     *decimal.Decimal
	IsActive  *bool
}

func validatePrices(cost, price decimal.Decimal) error {
	if cost.IsNegative() {
		return domain.Invalid("cost_price", "must not be negative")
	}
	if price.IsNegative() {
		return domain.Invalid("price", "must not be negative")
	}
	return nil
}

func (s *Service) ListProducts(ctx context.Context, f ListFilter) ([]models.Product, Page, error) {
	query := s.db.WithContext(ctx).Model(&models.Product{})
	if f.Active != nil {
		query = query.Where("is_active = ?", *f.Active)
	}
	if strings.TrimSpace(f.Search) != "" {
		query = query.Where("LOWER(name) LIKE ?", f.pattern())
	}

	query, page, err := paginate(query, f)
	if err != nil {
		return nil, Page{}, database.Classify(err)
	}

	products := []models.Product{}
	if err := query.Order("id DESC").Find(&products).Error; err != nil {
		return nil, Page{}, database.Classify(err)
	}
	return products, page, nil
}

func (s *Service) GetProductByID(ctx context.Context, id int64) (*models.Product, error) {
	return GetProduct(s.db.WithContext(ctx), id)
}

// CreateProduct inserts the product at zero stock and books any opening
// quantity as a restock movement in the same transaction.
func (s *Service) CreateProduct(ctx context.Context, in ProductInput, actorID *int64) (*models.Product, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.Invalid("name", "is required")
	}
	if err := validatePrices(in.CostPrice, in.Price); err != nil {
		return nil, err
	}
	if in.Quantity < 0 {
		return nil, domain.Invalid("quantity", "must not be negative")
	}

	product := models.Product{
		Name:      name,
		CostPrice: in.CostPrice,
		Price:     in.Price,
		IsActive:  true,
	}
	err := database.WithTx(ctx, s.db, func(tx *gorm.DB) error {
		if err := tx.Create(&product).Error; err != nil {
			return err
		}
		if in.Quantity == 0 {
			return nil
		}
		if _, err := inventory.ApplyMovement(tx, product.ID, in.Quantity, domain.MovementRestock, actorID, initialStockNote); err != nil {
			return err
		}
		product.Quantity = in.Quantity
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.catalogChanged(ctx, "product")
	return &product, nil
}

func (s *Service) UpdateProduct(ctx context.Context, id int64, upd ProductUpdate) (*models.Product, error) {
	updates := map[string]interface{}{}
	if upd.Name != nil {
		name := strings.TrimSpace(*upd.Name)
		if name == "" {
			return nil, domain.Invalid("name", "is required")
		}
		updates["name"] = name
	}
	if upd.CostPrice != nil {
		if err := validatePrices(*upd.CostPrice, decimal.Zero); err != nil {
			return nil, err
		}
		updates["cost_price"] = *upd.CostPrice
	}
	if upd.Price != nil {
		if err := validatePrices(decimal.Zero, *upd.Price); err != nil {
			return nil, err
		}
		updates["price"] = *upd.Price
	}
	if upd.IsActive != nil {
		updates["is_active"] = *upd.IsActive
	}

	var product *models.Product
	err := database.WithTx(ctx, s.db, func(tx *gorm.DB) error {
		p, err := GetProductForUpdate(tx, id)
		if err != nil {
			return err
		}
		if len(updates) > 0 {
			if err := tx.Model(p).Updates(updates).Error; err != nil {
				return err
			}
		}
		product, err = GetProduct(tx, id)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.catalogChanged(ctx, "product")
	return product, nil
}

// PurgeProduct removes a product that nothing references. Products with
// sales or movements must be deactivated instead.
func (s *Service) PurgeProduct(ctx context.Context, id int64) error {
	err := database.WithTx(ctx, s.db, func(tx *gorm.DB) error {
		if _, err := GetProductForUpdate(tx, id); err != nil {
			return err
		}

		var refs int64
		if err := tx.Model(&models.Sale{}).Where("product_id = ?", id).Count(&refs).Error; err != nil {
			return err
		}
		if refs == 0 {
			if err := tx.Model(&models.InventoryMovement{}).Where("product_id = ?", id).Count(&refs).Error; err != nil {
				return err
			}
		}
		if refs > 0 {
			return domain.ErrHasHistory
		}

		return tx.Delete(&models.Product{}, id).Error
	})
	if err != nil {
		return err
	}

	s.catalogChanged(ctx, "product")
	return nil
}
