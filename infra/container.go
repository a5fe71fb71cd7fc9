package infra

import (
	"context"
	"database/sql"

	"expansion/infra/database"
	"expansion/infra/database/db_analytics"
	"expansion/infra/database/db_postgresql"
	"expansion/infra/logger"
	"expansion/infra/token"
	"expansion/internal/analytics"
	"expansion/internal/auth"
	"expansion/internal/blocks"
	"expansion/internal/chat"
	"expansion/internal/city"
	"expansion/internal/dashboard"
	"expansion/internal/importer"
	"expansion/internal/plans"
	"expansion/internal/report"
	"expansion/internal/ws"
	"expansion/pkg"
	"expansion/pkg/geocode"
	"expansion/pkg/gpt"
	"expansion/pkg/ibge"
	bucket "expansion/pkg/s3"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type ContainerDI struct {
	Config              Config
	Logger              *zap.Logger
	ConnDB              *sql.DB
	AnalyticsPool       *pgxpool.Pool
	Cache               *pkg.Cache
	PasetoMaker         token.Maker
	Hub                 *ws.Hub
	Bucket              *bucket.Client
	GptClient           *gpt.Client
	IbgeClient          *ibge.Client
	Geocoder            *geocode.Geocoder
	RepositoryCity      *city.Repository
	ServiceCity         *city.Service
	HandlerCity         *city.Handler
	RepositoryPlan      *plans.Repository
	ServicePlan         *plans.Service
	HandlerPlan         *plans.Handler
	RepositoryBlock     *blocks.Repository
	ServiceBlock        *blocks.Service
	HandlerBlock        *blocks.Handler
	RepositoryDashboard *dashboard.Repository
	ServiceDashboard    *dashboard.Service
	HandlerDashboard    *dashboard.Handler
	RepositoryAnalytics *analytics.Repository
	ServiceAnalytics    *analytics.Service
	HandlerAnalytics    *analytics.Handler
	ServiceChat         *chat.Service
	HandlerChat         *chat.Handler
	ServiceReport       *report.Service
	HandlerReport       *report.Handler
	ServiceAuth         *auth.Service
	HandlerAuth         *auth.Handler
	ServiceImport       *importer.Service
	WsHandler           *ws.Handler
}

func NewContainerDI(ctx context.Context, config Config) *ContainerDI {
	container := &ContainerDI{Config: config}
	container.logger()
	container.db(ctx)
	container.buildPkg(ctx)
	container.buildRepository()
	container.buildService()
	container.buildHandler()
	return container
}

func (c *ContainerDI) logger() {
	log, err := logger.New(c.Config.Environment, c.Config.LogDebug)
	if err != nil {
		panic(err)
	}
	c.Logger = log
}

func (c *ContainerDI) db(ctx context.Context) {
	dbConfig := database.Config{
		Host:           c.Config.DBHost,
		Port:           c.Config.DBPort,
		User:           c.Config.DBUser,
		Password:       c.Config.DBPassword,
		Database:       c.Config.DBDatabase,
		SSLMode:        c.Config.DBSSLMode,
		Driver:         c.Config.DBDriver,
		Environment:    c.Config.Environment,
		MigrationsPath: c.Config.MigrationsPath,
	}
	c.ConnDB = db_postgresql.NewConnection(&dbConfig, c.Logger)

	pool, err := db_analytics.NewPool(ctx, c.Config.AnalyticsDSN, c.Logger)
	if err != nil {
		c.Logger.Warn("banco analítico indisponível", zap.Error(err))
	}
	c.AnalyticsPool = pool
}

func (c *ContainerDI) buildPkg(ctx context.Context) {
	cache, err := pkg.NewCache(ctx, c.Config.RedisUrl, "expansion")
	if err != nil {
		c.Logger.Warn("cache desativado", zap.Error(err))
	}
	c.Cache = cache

	maker, err := token.NewPasetoMaker(c.Config.SignatureToken)
	if err != nil {
		c.Logger.Fatal("chave de assinatura inválida", zap.Error(err))
	}
	c.PasetoMaker = maker

	c.Bucket, err = bucket.NewClient(bucket.Config{
		AccessKeyID:     c.Config.AwsAccessKeyID,
		SecretAccessKey: c.Config.AwsSecretAccessKey,
		Region:          c.Config.AwsRegion,
		Bucket:          c.Config.AwsBucketName,
	})
	if err != nil {
		c.Logger.Warn("exportação para S3 desativada", zap.Error(err))
	}

	c.Geocoder, err = geocode.NewGeocoder(c.Config.GoogleMapsKey, "MG", "")
	if err != nil {
		c.Logger.Warn("geocodificação desativada", zap.Error(err))
	}

	c.GptClient = gpt.NewClient(c.Config.OpenAIURL, c.Config.OpenAIKey, c.Config.OpenAIModel)
	c.IbgeClient = ibge.NewClient(c.Config.IbgeURL, c.Cache)
	c.Hub = ws.NewHub(c.Logger)
}

func (c *ContainerDI) buildRepository() {
	c.RepositoryCity = city.NewCityRepository(c.ConnDB)
	c.RepositoryPlan = plans.NewPlanRepository(c.ConnDB)
	c.RepositoryBlock = blocks.NewBlockRepository(c.ConnDB)
	c.RepositoryDashboard = dashboard.NewDashboardRepository(c.ConnDB)
	c.RepositoryAnalytics = analytics.NewAnalyticsRepository(c.AnalyticsPool)
}

func (c *ContainerDI) buildService() {
	c.ServiceCity = city.NewCityService(c.RepositoryCity, c.Hub, c.Logger)
	c.ServicePlan = plans.NewPlanService(c.RepositoryPlan, c.Logger)
	c.ServiceBlock = blocks.NewBlockService(c.RepositoryBlock, c.Logger)
	c.ServiceDashboard = dashboard.NewDashboardService(c.RepositoryDashboard)
	c.ServiceAnalytics = analytics.NewAnalyticsService(c.RepositoryAnalytics, c.ServiceCity, c.Cache, c.Logger)
	c.ServiceChat = chat.NewChatService(c.ServiceCity, c.GptClient, c.Logger)
	c.ServiceReport = report.NewReportService(c.ServiceCity, c.ServicePlan, c.ServiceBlock, c.Bucket, c.Logger)
	c.ServiceAuth = auth.NewAuthService(c.PasetoMaker, c.Config.EditorAPIKey, c.Config.ViewerAPIKey, c.Logger)

	var locator importer.Locator
	if c.Geocoder != nil {
		locator = c.Geocoder
	}
	c.ServiceImport = importer.NewImportService(c.IbgeClient, locator, c.ServiceCity, c.Logger)
}

func (c *ContainerDI) buildHandler() {
	c.HandlerCity = city.NewCityHandler(c.ServiceCity)
	c.HandlerPlan = plans.NewPlanHandler(c.ServicePlan)
	c.HandlerBlock = blocks.NewBlockHandler(c.ServiceBlock)
	c.HandlerDashboard = dashboard.NewDashboardHandler(c.ServiceDashboard)
	c.HandlerAnalytics = analytics.NewAnalyticsHandler(c.ServiceAnalytics)
	c.HandlerChat = chat.NewChatHandler(c.ServiceChat)
	c.HandlerReport = report.NewReportHandler(c.ServiceReport)
	c.HandlerAuth = auth.NewAuthHandler(c.ServiceAuth)
	c.WsHandler = ws.NewWsHandler(c.Hub, c.Logger)
}

// Close releases the connections opened by NewContainerDI.
func (c *ContainerDI) Close() {
	if c.AnalyticsPool != nil {
		c.AnalyticsPool.Close()
	}
	_ = c.Cache.Close()
	_ = c.ConnDB.Close()
	_ = c.Logger.Sync()
}
