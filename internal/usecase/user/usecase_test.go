package user

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	domain "user-record-service/internal/domain/user"
	apperrors "user-record-service/pkg/errors"
)

// MockRepository is a mock implementation of Repository
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func setupTestService(t *testing.T) (*Service, *MockRepository) {
	mockRepo := new(MockRepository)
	return New(mockRepo, zaptest.NewLogger(t)), mockRepo
}

func TestGetUser_Success(t *testing.T) {
	svc, mockRepo := setupTestService(t)

	record := domain.Record()
	mockRepo.On("GetByID", mock.Anything, int64(12)).Return(&record, nil)

	resp, err := svc.GetUser(context.Background(), GetUserRequest{ID: 12})
	require.NoError(t, err)

	assert.Equal(t, &GetUserResponse{
		ID:        12,
		FirstName: "John",
		LastName:  "Smith",
		Address: Address{
			StreetAddress: "21 2nd Street",
			City:          "New York",
			State:         "NY",
			PostalCode:    10021,
		},
		PhoneNumbers: []string{"212 555-1234", "646 555-4567"},
	}, resp)
	mockRepo.AssertExpectations(t)
}

func TestGetUser_InvalidID(t *testing.T) {
	for _, id := range []int64{0, -5} {
		svc, mockRepo := setupTestService(t)

		resp, err := svc.GetUser(context.Background(), GetUserRequest{ID: id})
		assert.Nil(t, resp)

		var validationErr *apperrors.ValidationError
		assert.ErrorAs(t, err, &validationErr)
		mockRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	}
}

func TestGetUser_NotFound(t *testing.T) {
	svc, mockRepo := setupTestService(t)

	mockRepo.On("GetByID", mock.Anything, int64(13)).Return(nil, apperrors.NewNotFoundError("user", "user not found"))

	resp, err := svc.GetUser(context.Background(), GetUserRequest{ID: 13})
	assert.Nil(t, resp)

	var notFound *apperrors.NotFoundError
	assert.ErrorAs(t, err, &notFound)
}

func TestGetUser_RepositoryError(t *testing.T) {
	svc, mockRepo := setupTestService(t)

	repoErr := errors.New("boom")
	mockRepo.On("GetByID", mock.Anything, int64(12)).Return(nil, repoErr)

	_, err := svc.GetUser(context.Background(), GetUserRequest{ID: 12})
	assert.ErrorIs(t, err, repoErr)
}

func TestGetUser_ResponseDoesNotAliasRepository(t *testing.T) {
	svc, mockRepo := setupTestService(t)

	record := domain.Record()
	mockRepo.On("GetByID", mock.Anything, int64(12)).Return(&record, nil)

	resp, err := svc.GetUser(context.Background(), GetUserRequest{ID: 12})
	require.NoError(t, err)

	resp.PhoneNumbers[0] = "changed"
	assert.Equal(t, "212 555-1234", record.PhoneNumbers[0])
}
