package directory

import (
	"context"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"vican-pos/internal/database"
	"vican-pos/internal/database/models"
	"vican-pos/internal/domain"
)

type UserInput struct {
	Username string
	Password string
	Role     string
}

type UserUpdate struct {
	Username *string
	Password *string
	Role     *string
	IsActive *bool
}

func hashPassword(password string) (string, error) {
	if len(password) < 6 {
		return "", domain.Invalid("password", "must be at least 6 characters")
	}
	pwHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(pwHash), nil
}

func (s *Service) ListUsers(ctx context.Context, f ListFilter) ([]models.User, Page, error) {
	query := s.db.WithContext(ctx).Model(&models.User{})
	if f.Active != nil {
		query = query.Where("is_active = ?", *f.Active)
	}
	if strings.TrimSpace(f.Search) != "" {
		query = query.Where("LOWER(username) LIKE ?", f.pattern())
	}

	query, page, err := paginate(query, f)
	if err != nil {
		return nil, Page{}, database.Classify(err)
	}

	users := []models.User{}
	if err := query.Order("id DESC").Find(&users).Error; err != nil {
		return nil, Page{}, database.Classify(err)
	}
	return users, page, nil
}

func (s *Service) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	return GetUser(s.db.WithContext(ctx), id)
}

func (s *Service) CreateUser(ctx context.Context, in UserInput) (*models.User, error) {
	username := strings.TrimSpace(in.Username)
	if username == "" {
		return nil, domain.Invalid("username", "is required")
	}
	role, err := domain.ParseRole(in.Role)
	if err != nil {
		return nil, err
	}
	pwHash, err := hashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Username: username,
		Password: pwHash,
		Role:     string(role),
		IsActive: true,
	}
	if err := s.db.WithContext(ctx).Create(&user).Error; err != nil {
		return nil, database.Classify(err)
	}
	return &user, nil
}

// UpdateUser changes the given fields. The password is only replaced when
// a new one is supplied.
func (s *Service) UpdateUser(ctx context.Context, id int64, upd UserUpdate) (*models.User, error) {
	updates := map[string]interface{}{}
	if upd.Username != nil {
		username := strings.TrimSpace(*upd.Username)
		if username == "" {
			return nil, domain.Invalid("username", "is required")
		}
		updates["username"] = username
	}
	if upd.Role != nil {
		role, err := domain.ParseRole(*upd.Role)
		if err != nil {
			return nil, err
		}
		updates["role"] = string(role)
	}
	if upd.IsActive != nil {
		updates["is_active"] = *upd.IsActive
	}
	if upd.Password != nil && *upd.Password != "" {
		pwHash, err := hashPassword(*upd.Password)
		if err != nil {
			return nil, err
		}
		updates["password"] = pwHash
	}

	var user *models.User
	err := database.WithTx(ctx, s.db, func(tx *gorm.DB) error {
		u, err := GetUser(tx, id)
		if err != nil {
			return err
		}
		if len(updates) > 0 {
			if err := tx.Model(u).Updates(updates).Error; err != nil {
				return err
			}
		}
		user, err = GetUser(tx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

// PurgeUser deletes the account. Sales, movements and expenses the user
// recorded are kept with their actor cleared.
func (s *Service) PurgeUser(ctx context.Context, id int64) error {
	err := database.WithTx(ctx, s.db, func(tx *gorm.DB) error {
		if _, err := GetUser(tx, id); err != nil {
			return err
		}
		for _, model := range []interface{}{&models.Sale{}, &models.InventoryMovement{}, &models.Expense{}} {
			if err := tx.Model(model).Where("user_id = ?", id).Update("user_id", nil).Error; err != nil {
				return err
			}
		}
		return tx.Delete(&models.User{}, id).Error
	})
	if err != nil {
		return err
	}

	s.catalogChanged(ctx, "user")
	return nil
}

// EnsureAdmin creates the first administrator when the users table is empty.
func (s *Service) EnsureAdmin(ctx context.Context, username, password string) (bool, error) {
	var count int64
	if err := s.db.WithContext(ctx).Model(&models.User{}).Count(&count).Error; err != nil {
		return false, database.Classify(err)
	}
	if count > 0 {
		return false, nil
	}
	if _, err := s.CreateUser(ctx, UserInput{Username: username, Password: password, Role: string(domain.RoleAdmin)}); err != nil {
		return false, err
	}
	return true, nil
}
