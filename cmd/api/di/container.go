package di

import (
	"fmt"

	ginhandler "user-record-service/internal/adapter/gin/handler"
	ginrouter "user-record-service/internal/adapter/gin/router"
	"user-record-service/internal/adapter/repository/memory"
	"user-record-service/internal/config"
	"user-record-service/internal/usecase/user"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Container holds all application dependencies
type Container struct {
	Config     *config.Config
	Logger     *zap.Logger
	UserUC     user.Usecase
	GinHandler *ginhandler.UserHandler
	Router     *gin.Engine
}

// NewContainer creates and initializes all application dependencies
func NewContainer(cfg *config.Config, l *zap.Logger) (*Container, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	repo := memory.NewUserRepo(l)
	userUC := user.New(repo, l)
	ginHandler := ginhandler.NewUserHandler(userUC, l)

	return &Container{
		Config:     cfg,
		Logger:     l,
		UserUC:     userUC,
		GinHandler: ginHandler,
		Router:     ginrouter.SetupRouter(ginHandler, l),
	}, nil
}
