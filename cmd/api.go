package cmd

import (
	"context"
	"errors"
	"net/http"
	"time"

	_ "expansion/docs"
	"expansion/infra"
	_midlleware "expansion/infra/middleware"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Sobe a API HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			container := infra.NewContainerDI(ctx, infra.NewConfig())
			defer container.Close()

			go container.Hub.Run(ctx)
			return StartAPI(ctx, container)
		},
	}
}

func NewRouter(container *infra.ContainerDI) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	log := container.Logger

	e.Use(middleware.Recover())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:    true,
		LogStatus: true,
		LogMethod: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			log.Info("request",
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
				zap.Int("status", v.Status),
				zap.Duration("latency", v.Latency))
			return nil
		},
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
		AllowMethods: middleware.DefaultCORSConfig.AllowMethods,
	}))

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/swagger/*", echoSwagger.WrapHandler)
	e.GET("/ws", container.WsHandler.HandleWs)
	e.POST("/auth/token", container.HandlerAuth.IssueTokenHandler)

	write := _midlleware.CheckAuthorization(container.PasetoMaker)
	api := e.Group("/api")

	api.GET("/cities", container.HandlerCity.ListCitiesHandler)
	api.GET("/cities/averages", container.HandlerCity.AveragesHandler)
	api.GET("/cities/:id", container.HandlerCity.GetCityHandler)
	api.GET("/cities/:id/projections", container.HandlerCity.ProjectionsHandler)
	api.POST("/cities/bulk", container.HandlerCity.BulkUpsertHandler, write)
	api.PUT("/cities/:id", container.HandlerCity.UpdateCityHandler, write)
	api.PATCH("/cities/:id/status", container.HandlerCity.UpdateStatusHandler, write)

	api.GET("/plans", container.HandlerPlan.ListPlansHandler)
	api.POST("/plans", container.HandlerPlan.CreatePlanHandler, write)
	api.DELETE("/plans/:cityId", container.HandlerPlan.DeletePlanHandler, write)
	api.GET("/plans/:cityId/results", container.HandlerPlan.GetResultsHandler)
	api.PUT("/plans/:cityId/results", container.HandlerPlan.SaveResultsHandler, write)
	api.DELETE("/plans/:cityId/results", container.HandlerPlan.DeleteResultsHandler, write)
	api.GET("/plans/:cityId/real-costs", container.HandlerPlan.GetRealCostsHandler)
	api.PUT("/plans/:cityId/real-costs", container.HandlerPlan.SaveRealCostsHandler, write)
	api.GET("/plans/:cityId/details", container.HandlerPlan.GetDetailsHandler)
	api.PUT("/plans/:cityId/details", container.HandlerPlan.SaveDetailsHandler, write)
	api.GET("/plans/:cityId/summary", container.HandlerPlan.SummaryHandler)

	api.GET("/blocks", container.HandlerBlock.ListBlocksHandler)
	api.PUT("/blocks", container.HandlerBlock.ReplaceBlocksHandler, write)

	api.GET("/dashboard", container.HandlerDashboard.GetDashboardHandler)
	api.GET("/analytics/cities/:id/rides", container.HandlerAnalytics.RidesHandler)
	api.POST("/chat", container.HandlerChat.ChatHandler)
	api.POST("/reports/export", container.HandlerReport.ExportHandler, write)

	return e
}

// StartAPI serves until ctx is done, then shuts the server down gracefully.
func StartAPI(ctx context.Context, container *infra.ContainerDI) error {
	e := NewRouter(container)

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := e.Shutdown(shutdownCtx); err != nil {
			container.Logger.Error("erro ao encerrar o servidor", zap.Error(err))
		}
	}()

	container.Logger.Info("API iniciada", zap.String("port", container.Config.ServerPort))
	if err := e.Start(container.Config.ServerPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
