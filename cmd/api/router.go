package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"library-lite/internal/shared/middleware"
	"library-lite/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	// Recovery must come before Validation: validation failures are
	// answered by the inner stage before the outer one sees them.
	router.Use(
		middleware.RequestID(),
		middleware.Logger(),
		middleware.Recovery(),
		middleware.Validation(),
	)

	router.GET("/health", healthCheckHandler(c))

	c.BookHandler.RegisterRoutes(router)
	c.AuthorHandler.RegisterRoutes(router)

	return router
}

func healthCheckHandler(c *container.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		body := gin.H{
			"status":      "ok",
			"name":        c.Config.App.Name,
			"version":     c.Config.App.Version,
			"environment": c.Config.App.Environment,
		}

		if c.Config.Redis.Enabled {
			pingCtx, cancel := context.WithTimeout(ctx.Request.Context(), 2*time.Second)
			defer cancel()

			if c.Cache != nil && c.Cache.Ping(pingCtx) == nil {
				body["cache"] = "ok"
			} else {
				body["cache"] = "unavailable"
			}
		}

		ctx.JSON(http.StatusOK, body)
	}
}
