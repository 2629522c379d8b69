package router

import (
	"fmt"

	"user-record-service/internal/adapter/gin/handler"
	"user-record-service/internal/adapter/gin/middleware"
	domain "user-record-service/internal/domain/user"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UserPath is the only route the service answers.
var UserPath = fmt.Sprintf("/users/%d", domain.RecordID)

// SetupRouter configures and returns a Gin router with all routes and middleware.
// Anything other than GET on UserPath falls through to Gin's default 404.
func SetupRouter(userHandler *handler.UserHandler, log *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	router.Use(middleware.Recovery(log))
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(log))

	router.GET(UserPath, userHandler.GetUser(domain.RecordID))

	return router
}
