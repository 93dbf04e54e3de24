package directory

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"vican-pos/internal/database"
	"vican-pos/internal/database/models"
	"vican-pos/internal/domain"
)

type CustomerUpdate struct {
	Name  *string
	Phone *string
}

func (s *Service) ListCustomers(ctx context.Context, f ListFilter) ([]models.Customer, Page, error) {
	query := s.db.WithContext(ctx).Model(&models.Customer{})
	if strings.TrimSpace(f.Search) != "" {
		p := f.pattern()
		query = query.Where("LOWER(name) LIKE ? OR phone LIKE ?", p, p)
	}

	query, page, err := paginate(query, f)
	if err != nil {
		return nil, Page{}, database.Classify(err)
	}

	customers := []models.Customer{}
	if err := query.Order("id DESC").Find(&customers).Error; err != nil {
		return nil, Page{}, database.Classify(err)
	}
	return customers, page, nil
}

func (s *Service) GetCustomerByID(ctx context.Context, id int64) (*models.Customer, error) {
	return GetCustomer(s.db.WithContext(ctx), id)
}

func (s *Service) CreateCustomer(ctx context.Context, name, phone string) (*models.Customer, error) {
	name, phone = strings.TrimSpace(name), strings.TrimSpace(phone)
	if name == "" {
		return nil, domain.Invalid("name", "is required")
	}
	if phone == "" {
		return nil, domain.Invalid("phone", "is required")
	}

	customer := models.Customer{Name: name, Phone: phone}
	if err := s.db.WithContext(ctx).Create(&customer).Error; err != nil {
		return nil, database.Classify(err)
	}
	return &customer, nil
}

func (s *Service) UpdateCustomer(ctx context.Context, id int64, upd CustomerUpdate) (*models.Customer, error) {
	updates := map[string]interface{}{}
	if upd.Name != nil {
		name := strings.TrimSpace(*upd.Name)
		if name == "" {
			return nil, domain.Invalid("name", "is required")
		}
		updates["name"] = name
	}
	if upd.Phone != nil {
		phone := strings.TrimSpace(*upd.Phone)
		if phone == "" {
			return nil, domain.Invalid("phone", "is required")
		}
		updates["phone"] = phone
	}

	var customer *models.Customer
	err := database.WithTx(ctx, s.db, func(tx *gorm.DB) error {
		c, err := GetCustomer(tx, id)
		if err != nil {
			return err
		}
		if len(updates) > 0 {
			if err := tx.Model(c).Updates(updates).Error; err != nil {
				return err
			}
		}
		customer, err = GetCustomer(tx, id)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.catalogChanged(ctx, "customer")
	return customer, nil
}
