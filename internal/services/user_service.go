package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/courtbook/server/internal/helpers"
	"github.com/courtbook/server/internal/models"
)

type UserService struct {
	users  models.UsersRepo
	tokens *helpers.TokenManager
}

func NewUserService(users models.UsersRepo, tokens *helpers.TokenManager) *UserService {
	return &UserService{users: users, tokens: tokens}
}

// Register creates a user and returns it with a signed bearer token. The role
// is fixed at registration; there is no role-change path.
func (us *UserService) Register(ctx context.Context, email, password, name, phone string, role models.UserRole) (*models.User, string, error) {
	if email == "" || password == "" || name == "" {
		return nil, "", fmt.Errorf("%w: email, password, and name are required", models.ErrInvalidInput)
	}
	if role == "" {
		role = models.RoleCustomer
	}
	if !models.ValidRole(role) {
		return nil, "", fmt.Errorf("%w: unsupported role %q", models.ErrInvalidInput, role)
	}
	if !helpers.IsPasswordStrong(password) {
		return nil, "", fmt.Errorf("%w: password needs 8+ characters with upper and lower case letters and a digit", models.ErrInvalidInput)
	}

	if _, err := us.users.GetUserByEmail(ctx, email); err == nil {
		return nil, "", models.ErrDuplicateEmail
	} else if !errors.Is(err, models.ErrNotFound) {
		return nil, "", err
	}

	hash, err := helpers.HashPassword(password)
	if err != nil {
		return nil, "", err
	}

	user := &models.User{
		ID:       uuid.New(),
		Email:    email,
		Password: hash,
		Name:     name,
		Phone:    phone,
		Role:     role,
	}
	if err := us.users.CreateUser(ctx, user); err != nil {
		return nil, "", err
	}

	token, err := us.tokens.Sign(user)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// Authenticate verifies credentials and returns the user with a fresh token.
func (us *UserService) Authenticate(ctx context.Context, email, password string) (*models.User, string, error) {
	user, err := us.users.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, "", models.ErrInvalidCredentials
		}
		return nil, "", err
	}
	if !helpers.CheckPassword(user.Password, password) {
		return nil, "", models.ErrInvalidCredentials
	}

	token, err := us.tokens.Sign(user)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

func (us *UserService) GetUser(ctx context.Context, id uuid.UUID) (*models.User, error) {
	return us.users.GetUserByID(ctx, id)
}
