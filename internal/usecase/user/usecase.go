package user

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	domain "user-record-service/internal/domain/user"
	apperrors "user-record-service/pkg/errors"
	"user-record-service/pkg/logger"
)

// Repository defines the read access the usecase needs.
type Repository interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

// Service implements the business logic for user lookups.
type Service struct {
	repo     Repository
	log      *zap.Logger
	validate *validator.Validate
}

// New creates a new user Service.
func New(r Repository, log *zap.Logger) *Service {
	return &Service{repo: r, log: log, validate: validator.New()}
}

// GetUser returns the user with the requested ID.
func (s *Service) GetUser(ctx context.Context, in GetUserRequest) (*GetUserResponse, error) {
	log := logger.WithContext(ctx, s.log)

	if err := s.validate.Struct(in); err != nil {
		log.Warn("get user validation failed", zap.Int64("id", in.ID), zap.Error(err))
		return nil, apperrors.NewValidationError("ID", "must be a positive number")
	}

	u, err := s.repo.GetByID(ctx, in.ID)
	if err != nil {
		log.Debug("failed to get user", zap.Int64("id", in.ID), zap.Error(err))
		return nil, fmt.Errorf("get user %d: %w", in.ID, err)
	}

	return toResponse(u), nil
}

func toResponse(u *domain.User) *GetUserResponse {
	phones := make([]string, len(u.PhoneNumbers))
	copy(phones, u.PhoneNumbers)

	return &GetUserResponse{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Address: Address{
			StreetAddress: u.Address.StreetAddress,
			City:          u.Address.City,
			State:         u.Address.State,
			PostalCode:    u.Address.PostalCode,
		},
		PhoneNumbers: phones,
	}
}
