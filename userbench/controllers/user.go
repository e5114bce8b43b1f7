package controllers

import (
	"context"
	"errors"
	"strings"

	"userbench/userbench/sources/psql/dao"
	"userbench/userbench/sources/psql/models"
	"userbench/userbench/types"

	"gorm.io/gorm"
)

var (
	ErrUserNotFound  = errors.New("User not found")
	ErrUserInvalid   = errors.New("Username and email are required")
	ErrUsernameTaken = errors.New("Username already exists")
)

// UserController backs the local reference users API.
type UserController struct {
	dao *dao.UserDAO
}

func NewUserController(dao *dao.UserDAO) *UserController {
	return &UserController{dao: dao}
}

func (c *UserController) GetAllUsers(ctx context.Context) ([]models.User, error) {
	users, err := c.dao.GetAllUsers(ctx)
	if err != nil {
		return nil, err
	}
	if users == nil {
		users = []models.User{}
	}
	return users, nil
}

func (c *UserController) GetUser(ctx context.Context, id int) (*models.User, error) {
	user, err := c.dao.GetUserByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

func (c *UserController) CreateUser(ctx context.Context, req types.CreateUserRequest) (*models.User, error) {
	username := strings.TrimSpace(req.Username)
	email := strings.TrimSpace(req.Email)
	if username == "" || email == "" {
		return nil, ErrUserInvalid
	}
	if err := c.ensureUsernameFree(ctx, username, 0); err != nil {
		return nil, err
	}
	user, err := c.dao.CreateUser(ctx, username, email)
	if err != nil {
		return nil, storeError(err)
	}
	return user, nil
}

func (c *UserController) UpdateUser(ctx context.Context, id int, req types.UpdateUserRequest) (*models.User, error) {
	user, err := c.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Username != nil {
		username := strings.TrimSpace(*req.Username)
		if username == "" {
			return nil, ErrUserInvalid
		}
		if err := c.ensureUsernameFree(ctx, username, id); err != nil {
			return nil, err
		}
		user.Username = username
	}
	if req.Email != nil {
		email := strings.TrimSpace(*req.Email)
		if email == "" {
			return nil, ErrUserInvalid
		}
		user.Email = email
	}
	if err := c.dao.UpdateUser(ctx, user); err != nil {
		return nil, storeError(err)
	}
	return user, nil
}

func (c *UserController) DeleteUser(ctx context.Context, id int) error {
	removed, err := c.dao.DeleteUser(ctx, id)
	if err != nil {
		return err
	}
	if !removed {
		return ErrUserNotFound
	}
	return nil
}

func (c *UserController) ensureUsernameFree(ctx context.Context, username string, selfID int) error {
	existing, err := c.dao.GetUserByUsername(ctx, username)
	if err != nil {
		return err
	}
	if existing != nil && existing.ID != selfID {
		return ErrUsernameTaken
	}
	return nil
}

// storeError maps a unique-index violation that slipped past
// ensureUsernameFree, e.g. two concurrent creates.
func storeError(err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrUsernameTaken
	}
	return err
}
