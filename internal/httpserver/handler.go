package httpserver

import (
	"context"

	"task-reminder-bot/internal/model"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (srv HTTPServer) mapHandlers() error {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()

	if err := srv.registerDomainRoutes(); err != nil {
		return err
	}

	return nil
}

func (srv HTTPServer) registerMiddlewares() {
	srv.gin.Use(gin.Recovery())

	ctx := context.Background()
	if srv.environment == string(model.EnvironmentProduction) {
		srv.l.Infof(ctx, "server mode: production")
	} else {
		srv.l.Infof(ctx, "server mode: %s", srv.environment)
	}
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers all domain routes.
func (srv HTTPServer) registerDomainRoutes() error {
	ctx := context.Background()

	srv.gin.POST("/webhook/telegram",
		srv.mw.TelegramAuth(),
		srv.mw.RateLimit(),
		srv.telegramHandler.HandleWebhook,
	)
	srv.l.Infof(ctx, "Telegram webhook route registered at POST /webhook/telegram")

	if srv.reminderRunner != nil {
		srv.gin.POST("/internal/trigger-reminders", srv.triggerReminders)
		srv.l.Infof(ctx, "Manual reminder trigger registered at POST /internal/trigger-reminders")
	} else {
		srv.l.Infof(ctx, "Reminder runner not configured, skipping manual trigger route")
	}

	return nil
}
