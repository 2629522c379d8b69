package handler

import (
	"errors"
	"net/http"

	"user-record-service/internal/usecase/user"
	apperrors "user-record-service/pkg/errors"
	"user-record-service/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UserHandler handles HTTP requests for user operations
type UserHandler struct {
	uc  user.Usecase
	log *zap.Logger
}

// NewUserHandler creates a new UserHandler instance
func NewUserHandler(uc user.Usecase, log *zap.Logger) *UserHandler {
	return &UserHandler{
		uc:  uc,
		log: log,
	}
}

// AddressResponse represents the HTTP response for an address
type AddressResponse struct {
	StreetAddress string `json:"streetAddress"`
	City          string `json:"city"`
	State         string `json:"state"`
	PostalCode    int    `json:"postalCode"`
}

// UserResponse represents the HTTP response for user data.
// Field order here is the key order on the wire.
type UserResponse struct {
	ID           int64           `json:"id"`
	FirstName    string          `json:"firstName"`
	LastName     string          `json:"lastName"`
	Address      AddressResponse `json:"address"`
	PhoneNumbers []string        `json:"phoneNumbers"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// GetUser returns a handler serving the user with the given ID.
// The ID comes from the route, never from the request.
func (h *UserHandler) GetUser(id int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		logger.WithContext(ctx, h.log).Debug("Gin GetUser request", zap.Int64("id", id))

		resp, err := h.uc.GetUser(ctx, user.GetUserRequest{ID: id})
		if err != nil {
			h.handleError(c, err)
			return
		}

		c.JSON(http.StatusOK, UserResponse{
			ID:        resp.ID,
			FirstName: resp.FirstName,
			LastName:  resp.LastName,
			Address: AddressResponse{
				StreetAddress: resp.Address.StreetAddress,
				City:          resp.Address.City,
				State:         resp.Address.State,
				PostalCode:    resp.Address.PostalCode,
			},
			PhoneNumbers: resp.PhoneNumbers,
		})
	}
}

// handleError converts usecase errors to appropriate HTTP responses
func (h *UserHandler) handleError(c *gin.Context, err error) {
	log := logger.WithContext(c.Request.Context(), h.log)

	var statuser apperrors.HTTPStatuser
	if errors.As(err, &statuser) && statuser.HTTPStatus() < http.StatusInternalServerError {
		log.Warn("Gin GetUser rejected", zap.Error(err))
		c.JSON(statuser.HTTPStatus(), ErrorResponse{
			Error:   statuser.Code(),
			Message: statuser.Error(),
		})
		return
	}

	log.Error("Gin GetUser failed", zap.Error(err))
	c.JSON(http.StatusInternalServerError, ErrorResponse{
		Error:   "internal_error",
		Message: "An internal error occurred",
	})
}
