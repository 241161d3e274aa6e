// main.go
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/aegisd/aegis/config"
	"github.com/aegisd/aegis/controller"
	"github.com/aegisd/aegis/dao"
	"github.com/aegisd/aegis/db"
	logger "github.com/aegisd/aegis/logging"
	"github.com/aegisd/aegis/router"
	"github.com/aegisd/aegis/service"
	"github.com/aegisd/aegis/util"
)

func main() {
	if err := config.InitConfig(); err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}
	logger.InitLogger(config.GetString("log.dir"))
	defer logger.Sync()

	store := db.NewRedisStore()
	defer store.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	if err := store.Ping(ctx); err != nil {
		cancel()
		logger.Fatal("redis is unreachable", zap.Error(err))
	}
	cancel()

	busCtx, busCancel := context.WithCancel(context.Background())
	defer busCancel()
	eventBus := util.NewEventBus()
	eventBus.Start(busCtx)

	validationUtil := util.NewValidationUtil()
	cacheService := util.NewCacheService(store)
	notificationService := util.NewNotificationService()

	attributeDAO := dao.NewAttributeDAO(store)
	userDAO := dao.NewUserDAO(store)
	policyDAO := dao.NewPolicyDAO(store)
	resourceDAO := dao.NewResourceDAO(store)

	services := service.NewServices(
		attributeDAO, userDAO, policyDAO, resourceDAO,
		validationUtil, cacheService, notificationService, eventBus,
	)
	controllers := controller.NewControllers(services)

	r := router.SetupRouter(
		controllers, store,
		config.GetInt("ratelimit.requests"),
		config.GetDuration("ratelimit.window"),
	)

	srv := &http.Server{
		Addr:    ":" + config.GetString("server.port"),
		Handler: r,
	}

	go func() {
		logger.Info("starting server", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server error", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("forced shutdown", zap.Error(err))
	}
	logger.Info("server stopped")
}
