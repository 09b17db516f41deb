package user

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/vertuarena/arena/internal/apperrors"
)

type UserRepository interface {
	CreateUser(u *User) (*User, error)
	ValidateUser(email, password string) (*User, error)
	GetUser(id uint) (*User, error)
	GetUserUsername(id uint) (string, error)
	UpdateProfile(id uint, updates map[string]interface{}) (*User, error)
	ListUsers(excludeID uint) ([]User, error)
	AvailablePlayers(excludeID uint) ([]User, error)
	ToggleAvailability(id uint) (*User, error)
}

type GormUserRepository struct {
	db *gorm.DB
}

func NewGormUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

func (r *GormUserRepository) CreateUser(u *User) (*User, error) {
	var exists User
	result := r.db.Where("username = ? OR email = ?", u.Username, u.Email).First(&exists)
	if result.Error == nil {
		return nil, apperrors.NewAppError(400, "user already exists", nil)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(u.Password), 14)
	if err != nil {
		return nil, err
	}
	u.Password = string(hashed)

	if err := r.db.Create(u).Error; err != nil {
		return nil, apperrors.NewAppError(500, "error creating user", err)
	}
	return u, nil
}

func (r *GormUserRepository) ValidateUser(email, password string) (*User, error) {
	var u User
	if err := r.db.Where("email = ?", email).First(&u).Error; err != nil {
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)); err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *GormUserRepository) GetUser(id uint) (*User, error) {
	var u User
	if err := r.db.First(&u, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, apperrors.NewAppError(500, "error getting user", err)
	}
	return &u, nil
}

func (r *GormUserRepository) GetUserUsername(id uint) (string, error) {
	var u User
	if err := r.db.First(&u, id).Error; err != nil {
		return "", err
	}
	return u.Username, nil
}

func (r *GormUserRepository) UpdateProfile(id uint, updates map[string]interface{}) (*User, error) {
	if username, ok := updates["username"]; ok {
		var exists User
		result := r.db.Where("username = ? AND id <> ?", username, id).First(&exists)
		if result.Error == nil {
			return nil, apperrors.NewAppError(400, "username already taken", nil)
		}
	}

	if err := r.db.Model(&User{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		return nil, apperrors.NewAppError(500, "error updating profile", err)
	}
	return r.GetUser(id)
}

func (r *GormUserRepository) ListUsers(excludeID uint) ([]User, error) {
	var users []User
	err := r.db.
		Select("id", "name", "username", "avatar", "is_available").
		Where("id <> ?", excludeID).
		Find(&users).Error
	if err != nil {
		return nil, apperrors.NewAppError(500, "error listing users", err)
	}
	return users, nil
}

func (r *GormUserRepository) AvailablePlayers(excludeID uint) ([]User, error) {
	var users []User
	err := r.db.
		Select("id", "username", "avatar").
		Where("is_available = ? AND id <> ?", true, excludeID).
		Find(&users).Error
	if err != nil {
		return nil, apperrors.NewAppError(500, "error listing available players", err)
	}
	return users, nil
}

func (r *GormUserRepository) ToggleAvailability(id uint) (*User, error) {
	err := r.db.Model(&User{}).
		Where("id = ?", id).
		Update("is_available", gorm.Expr("NOT is_available")).Error
	if err != nil {
		return nil, apperrors.NewAppError(500, "error updating availability", err)
	}
	return r.GetUser(id)
}
