package directory

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"vican-pos/internal/database"
	"vican-pos/internal/database/models"
	"vican-pos/internal/domain"
	"vican-pos/internal/utils"
)

// Session is what a successful login hands back to the client.
type Session struct {
	Token     string
	ExpiresAt time.Time
	User      models.User
}

type LoginToken struct {
	Token     string
	ExpiresAt time.Time
}

// Login checks the password of an active user. Unknown users, wrong
// passwords and disabled accounts all fail the same way.
func (s *Service) Login(ctx context.Context, username, password string) (*Session, error) {
	var user models.User
	err := s.db.WithContext(ctx).Where("username = ?", strings.TrimSpace(username)).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, database.Classify(err)
	}

	if !user.IsActive {
		return nil, domain.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	return s.newSession(user)
}

// IssueLoginToken creates the long-lived token printed on a staff QR badge.
func (s *Service) IssueLoginToken(ctx context.Context, userID int64) (*LoginToken, error) {
	user, err := GetUser(s.db.WithContext(ctx), userID)
	if err != nil {
		return nil, err
	}

	token, exp, err := s.tokens.GenerateToken(user.ID, user.Username, user.Role, utils.PurposeLogin, s.opts.LoginTokenTTL)
	if err != nil {
		return nil, err
	}
	return &LoginToken{Token: token, ExpiresAt: exp}, nil
}

// QRLogin exchanges a badge token for a session. The account is re-read so
// a disabled or demoted user cannot ride an old badge.
func (s *Service) QRLogin(ctx context.Context, token string) (*Session, error) {
	claims, err := s.tokens.ParseToken(token, utils.PurposeLogin)
	if err != nil {
		return nil, err
	}

	user, err := GetUser(s.db.WithContext(ctx), claims.UserId)
	if err != nil {
		if domain.IsNotFound(err) {
			return nil, domain.ErrTokenInvalid
		}
		return nil, err
	}
	if !user.IsActive {
		return nil, domain.ErrInvalidCredentials
	}

	return s.newSession(*user)
}

func (s *Service) newSession(user models.User) (*Session, error) {
	token, exp, err := s.tokens.GenerateToken(user.ID, user.Username, user.Role, utils.PurposeSession, s.opts.SessionTTL)
	if err != nil {
		return nil, err
	}
	log.Printf("[directory] %s signed in", user.Username)
	return &Session{Token: token, ExpiresAt: exp, User: user}, nil
}
