package user

import (
	"errors"
	"log"
	"strings"

	"github.com/vertuarena/arena/internal/apperrors"
)

// StatsCreator creates the zeroed stats row new accounts start with.
type StatsCreator interface {
	EnsureStats(userID uint) error
}

type UserService struct {
	repo  UserRepository
	stats StatsCreator
}

func NewUserService(repo UserRepository, stats StatsCreator) *UserService {
	return &UserService{repo: repo, stats: stats}
}

func (u *UserService) Signup(req User) (string, *User, error) {
	if req.Username == "" || req.Email == "" || req.Password == "" {
		return "", nil, apperrors.NewAppError(400, "username, email and password are required", nil)
	}

	created, err := u.repo.CreateUser(&req)
	if err != nil {
		return "", nil, err
	}

	if u.stats != nil {
		if err := u.stats.EnsureStats(created.ID); err != nil {
			log.Println("Error creating initial player stats:", err)
		}
	}

	token, errJWT := GenerateJWT(created.ID)
	if errJWT != nil {
		return "", nil, apperrors.NewAppError(500, "error creating jwt token", errJWT)
	}
	created.Password = ""
	return token, created, nil
}

func (u *UserService) Login(req User) (string, *User, error) {
	retrieved, err := u.repo.ValidateUser(req.Email, req.Password)
	if err != nil {
		return "", nil, errors.New("invalid credentials")
	}
	token, errJWT := GenerateJWT(retrieved.ID)
	if errJWT != nil {
		return "", nil, apperrors.NewAppError(500, "error creating jwt token", errJWT)
	}
	retrieved.Password = ""
	return token, retrieved, nil
}

func (u *UserService) GetUser(id uint) (*User, error) {
	retrieved, err := u.repo.GetUser(id)
	if err != nil {
		return nil, err
	}
	if retrieved == nil {
		return nil, apperrors.NewAppError(404, "user not found", errors.New("user not found"))
	}
	retrieved.Password = ""
	return retrieved, nil
}

// UpdateProfile applies the non-nil fields. An empty username is rejected;
// other fields pass through as given.
func (u *UserService) UpdateProfile(id uint, req ProfileUpdate) (*User, error) {
	updates := map[string]interface{}{}
	if req.Username != nil {
		username := strings.TrimSpace(*req.Username)
		if username == "" {
			return nil, apperrors.NewAppError(400, "username cannot be empty", nil)
		}
		updates["username"] = username
	}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Avatar != nil {
		updates["avatar"] = *req.Avatar
	}
	if len(updates) == 0 {
		return u.GetUser(id)
	}

	updated, err := u.repo.UpdateProfile(id, updates)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, apperrors.NewAppError(404, "user not found", errors.New("user not found"))
	}
	updated.Password = ""
	return updated, nil
}

func (u *UserService) ListUsers(requesterID uint) ([]User, error) {
	return u.repo.ListUsers(requesterID)
}
