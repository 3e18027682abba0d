package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"gyaandeepika/models"
	"gyaandeepika/utils/apierr"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type SignupInput struct {
	Name     string
	Email    string
	Password string
}

type AuthService struct {
	db        *gorm.DB
	saltRound int
}

func NewAuthService(db *gorm.DB, saltRound int) *AuthService {
	if saltRound < bcrypt.MinCost {
		saltRound = bcrypt.DefaultCost
	}
	return &AuthService{db: db, saltRound: saltRound}
}

func (s *AuthService) Signup(ctx context.Context, in SignupInput) (*models.User, error) {
	db := s.db.WithContext(ctx)
	email := strings.ToLower(strings.TrimSpace(in.Email))

	var count int64
	if err := db.Model(&models.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return nil, apierr.Internal(err)
	}
	if count > 0 {
		return nil, apierr.Conflict(apierr.CodeConflict, "Email is already registered!")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.saltRound)
	if err != nil {
		return nil, apierr.Internal(err)
	}

	user := &models.User{
		Name:     strings.TrimSpace(in.Name),
		Email:    email,
		Password: string(hashed),
		Role:     models.RoleUser,
	}
	if err := db.Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apierr.Conflict(apierr.CodeConflict, "Email is already registered!")
		}
		return nil, apierr.Internal(err)
	}
	return user, nil
}

// Login checks credentials and stamps LastLogin.
func (s *AuthService) Login(ctx context.Context, email, password string) (*models.User, error) {
	db := s.db.WithContext(ctx)
	email = strings.ToLower(strings.TrimSpace(email))

	var user models.User
	if err := db.Where("email = ? AND is_deleted = ?", email, false).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierr.Unauthorized("Invalid credentials!")
		}
		return nil, apierr.Internal(err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, apierr.Unauthorized("Invalid credentials!")
	}

	ts := time.Now().UTC()
	user.LastLogin = &ts
	if err := db.Model(&user).Update("last_login", ts).Error; err != nil {
		return nil, apierr.Internal(err)
	}
	return &user, nil
}
