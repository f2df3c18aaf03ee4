package services

import (
	"context"
	"fmt"

	"github.com/yigit/alumni/internal/app/models"
	"github.com/yigit/alumni/internal/app/models/dto"
	"github.com/yigit/alumni/internal/pkg/helpers"
	"github.com/yigit/alumni/internal/pkg/logger"
)

// UserStore is the persistence the user service needs.
// *repositories.UserRepository implements it.
type UserStore interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	Count(ctx context.Context) (int64, error)
	FindAll(ctx context.Context, offset, limit uint64) ([]*models.User, error)
	FindOne(ctx context.Context, id int64) (*models.User, error)
	Update(ctx context.Context, id int64, update models.UserUpdate) (*models.User, error)
	Remove(ctx context.Context, id int64) (*models.User, error)
}

// PasswordHasher hashes plain passwords before they are stored
type PasswordHasher interface {
	Hash(password string) (string, error)
}

// UserService defines user operations
type UserService interface {
	Create(ctx context.Context, req *dto.CreateUserRequest) (*models.User, error)
	FindAll(ctx context.Context, page, size int) (*dto.UserListResponse, error)
	FindOne(ctx context.Context, id int64) (*models.User, error)
	Update(ctx context.Context, id int64, update models.UserUpdate) (*models.User, error)
	Remove(ctx context.Context, id int64) (*models.User, error)
}

type userServiceImpl struct {
	store  UserStore
	hasher PasswordHasher
}

// NewUserService creates a new user service
func NewUserService(store UserStore, hasher PasswordHasher) UserService {
	return &userServiceImpl{store: store, hasher: hasher}
}

// Create hashes the password and stores the user
func (s *userServiceImpl) Create(ctx context.Context, req *dto.CreateUserRequest) (*models.User, error) {
	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	user, err := s.store.Create(ctx, req.ToModel(hash))
	if err != nil {
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	logger.Info().Int64("userId", user.ID).Str("role", string(user.Role)).Msg("User created")
	return user, nil
}

// FindAll returns one page of users with pagination metadata
func (s *userServiceImpl) FindAll(ctx context.Context, page, size int) (*dto.UserListResponse, error) {
	offset, limit := helpers.CalculateOffsetLimit(page, size)

	total, err := s.store.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("error counting users: %w", err)
	}

	users, err := s.store.FindAll(ctx, offset, limit)
	if err != nil {
		return nil, fmt.Errorf("error listing users: %w", err)
	}

	return &dto.UserListResponse{
		Items:      users,
		Pagination: helpers.NewPaginationInfo(total, page, int(limit)),
	}, nil
}

// FindOne returns a single user
func (s *userServiceImpl) FindOne(ctx context.Context, id int64) (*models.User, error) {
	user, err := s.store.FindOne(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error getting user: %w", err)
	}
	return user, nil
}

// Update applies a partial update; an empty update returns the current record
func (s *userServiceImpl) Update(ctx context.Context, id int64, update models.UserUpdate) (*models.User, error) {
	if update.IsEmpty() {
		return s.FindOne(ctx, id)
	}

	user, err := s.store.Update(ctx, id, update)
	if err != nil {
		return nil, fmt.Errorf("error updating user: %w", err)
	}
	return user, nil
}

// Remove deletes a user and returns the deleted record
func (s *userServiceImpl) Remove(ctx context.Context, id int64) (*models.User, error) {
	user, err := s.store.Remove(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error deleting user: %w", err)
	}
	logger.Info().Int64("userId", id).Msg("User deleted")
	return user, nil
}
