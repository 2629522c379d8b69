package memory

import (
	"context"

	"go.uber.org/zap"

	domain "user-record-service/internal/domain/user"
	apperrors "user-record-service/pkg/errors"
)

// UserRepo serves the fixed user record from memory. It holds no mutable
// state and is safe for concurrent use.
type UserRepo struct {
	log *zap.Logger
}

// NewUserRepo creates a new in-memory user repository.
func NewUserRepo(log *zap.Logger) *UserRepo {
	return &UserRepo{log: log}
}

// GetByID returns the user with the given ID.
func (r *UserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if id != domain.RecordID {
		r.log.Debug("user not found", zap.Int64("id", id))
		return nil, apperrors.NewNotFoundError("user", "user not found")
	}

	u := domain.Record()
	return &u, nil
}
