//POST   /user/login                        # Login -> bearer token (public)
//POST   /batch/create                      # Sync batches (auth)
//GET    /batch/getList
//GET    /batch/{id}  PATCH  DELETE
//POST   /old/create                        # Legacy records (auth)
//GET    /old/getList
//GET    /old/{id}    PATCH  DELETE
//GET    /categories                        # Catalog (reads public)
//GET    /categories/repair-types
//GET    /prices  /prices/list  /news  /faq  /config
//POST/PUT/DELETE on catalog, prices, news, FAQ and config (auth)

package api

import (
	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"golang.org/x/exp/slog"

	batchAPI "phonefix/internal/api/http/batch"
	catalogAPI "phonefix/internal/api/http/catalog"
	faqAPI "phonefix/internal/api/http/faq"
	healthAPI "phonefix/internal/api/http/health"
	"phonefix/internal/api/http/middleware"
	"phonefix/internal/api/http/middleware/auth"
	"phonefix/internal/api/http/middleware/logger"
	newsAPI "phonefix/internal/api/http/news"
	oldAPI "phonefix/internal/api/http/old"
	priceAPI "phonefix/internal/api/http/price"
	siteconfigAPI "phonefix/internal/api/http/siteconfig"
	userAPI "phonefix/internal/api/http/user"
	"phonefix/internal/domain/batch"
	"phonefix/internal/domain/catalog"
	"phonefix/internal/domain/faq"
	"phonefix/internal/domain/news"
	"phonefix/internal/domain/old"
	"phonefix/internal/domain/price"
	"phonefix/internal/domain/siteconfig"
	"phonefix/internal/domain/user"
	"phonefix/internal/infrastructure/storage/postgres"
)

type Handlers struct {
	Health     *healthAPI.Handler
	User       *userAPI.Handler
	Batch      *batchAPI.Handler
	Old        *oldAPI.Handler
	Catalog    *catalogAPI.Handler
	Price      *priceAPI.Handler
	News       *newsAPI.Handler
	FAQ        *faqAPI.Handler
	SiteConfig *siteconfigAPI.Handler
}

// New builds a *chi.Mux with every operation registered through huma.
func New(storage *postgres.Storage, log *slog.Logger) *chi.Mux {
	mux := chi.NewMux()
	mux.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	}))

	config := huma.DefaultConfig("Phonefix Admin API", "1.0.0")
	config.Components.SecuritySchemes = map[string]*huma.SecurityScheme{
		"bearer": {Type: "http", Scheme: "bearer"},
	}

	API := humachi.New(mux, config)

	h := handlers(storage, log)
	h.Health.SetupRoutes(API)
	h.User.SetupRoutes(API)
	h.Batch.SetupRoutes(API)
	h.Old.SetupRoutes(API)
	h.Catalog.SetupRoutes(API)
	h.Price.SetupRoutes(API)
	h.News.SetupRoutes(API)
	h.FAQ.SetupRoutes(API)
	h.SiteConfig.SetupRoutes(API)

	return mux
}

func handlers(storage *postgres.Storage, log *slog.Logger) *Handlers {
	pool := storage.Pool()

	userRepo := postgres.NewUserRepository(pool, log)
	userService := user.NewService(userRepo, log)
	authMW := auth.New(userService, log)
	loggerMW := logger.New(log)
	middlewares := middleware.NewContainer()

	middlewares.Add(loggerMW.Middleware())
	healthHandler := healthAPI.NewHandler(log, middlewares.GetAllAndClear())

	middlewares.Add(loggerMW.Middleware())
	userHandler := userAPI.NewHandler(userService, log, middlewares.GetAllAndClear())

	batchRepo := postgres.NewBatchRepository(pool, log)
	batchService := batch.NewService(batchRepo, log)
	middlewares.Add(authMW.Middleware())
	middlewares.Add(loggerMW.Middleware())
	batchHandler := batchAPI.NewHandler(batchService, log, middlewares.GetAllAndClear())

	oldRepo := postgres.NewOldRepository(pool, log)
	oldService := old.NewService(oldRepo, log)
	middlewares.Add(authMW.Middleware())
	middlewares.Add(loggerMW.Middleware())
	oldHandler := oldAPI.NewHandler(oldService, log, middlewares.GetAllAndClear())

	catalogRepo := postgres.NewCatalogRepository(pool, log)
	catalogService := catalog.NewService(catalogRepo, log)
	middlewares.Add(loggerMW.Middleware())
	catalogPublic := middlewares.GetAllAndClear()
	middlewares.Add(authMW.Middleware())
	middlewares.Add(loggerMW.Middleware())
	catalogHandler := catalogAPI.NewHandler(catalogService, log, catalogPublic, middlewares.GetAllAndClear())

	priceRepo := postgres.NewPriceRepository(pool, log)
	priceService := price.NewService(priceRepo, catalogRepo, log)
	middlewares.Add(loggerMW.Middleware())
	pricePublic := middlewares.GetAllAndClear()
	middlewares.Add(authMW.Middleware())
	middlewares.Add(loggerMW.Middleware())
	priceHandler := priceAPI.NewHandler(priceService, log, pricePublic, middlewares.GetAllAndClear())

	newsRepo := postgres.NewNewsRepository(pool, log)
	newsService := news.NewService(newsRepo, log)
	middlewares.Add(loggerMW.Middleware())
	newsPublic := middlewares.GetAllAndClear()
	middlewares.Add(authMW.Middleware())
	middlewares.Add(loggerMW.Middleware())
	newsHandler := newsAPI.NewHandler(newsService, log, newsPublic, middlewares.GetAllAndClear())

	faqRepo := postgres.NewFAQRepository(pool, log)
	faqService := faq.NewService(faqRepo, log)
	middlewares.Add(loggerMW.Middleware())
	faqPublic := middlewares.GetAllAndClear()
	middlewares.Add(authMW.Middleware())
	middlewares.Add(loggerMW.Middleware())
	faqHandler := faqAPI.NewHandler(faqService, log, faqPublic, middlewares.GetAllAndClear())

	siteconfigRepo := postgres.NewSiteConfigRepository(pool, log)
	siteconfigService := siteconfig.NewService(siteconfigRepo, log)
	middlewares.Add(loggerMW.Middleware())
	siteconfigPublic := middlewares.GetAllAndClear()
	middlewares.Add(authMW.Middleware())
	middlewares.Add(loggerMW.Middleware())
	siteconfigHandler := siteconfigAPI.NewHandler(siteconfigService, log, siteconfigPublic, middlewares.GetAllAndClear())

	return &Handlers{
		Health:     healthHandler,
		User:       userHandler,
		Batch:      batchHandler,
		Old:        oldHandler,
		Catalog:    catalogHandler,
		Price:      priceHandler,
		News:       newsHandler,
		FAQ:        faqHandler,
		SiteConfig: siteconfigHandler,
	}
}
