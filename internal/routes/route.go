package routes

import (
	"net/http"

	"datessouq/internal/auth"
	"datessouq/internal/config"
	"datessouq/internal/handlers"
	"datessouq/internal/logger"
	mdlwr "datessouq/internal/middleware"
	"datessouq/internal/services"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/uptrace/bun"
	"go.uber.org/zap"
)

func NewRouter(db *bun.DB, cfg *config.Config, logr *logger.Logger) http.Handler {
	r := chi.NewRouter()

	// Basic middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	// CORS middleware with config
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	jwtMgr, err := auth.NewJWTManager(cfg.JWTPrivateKeyPath, cfg.JWTPublicKeyPath, "datessouq")
	if err != nil {
		logr.Fatal("failed to init jwt manager", zap.Error(err))
	}

	authSvc := services.NewAuthService(db, jwtMgr, cfg, logr)
	listingSvc := services.NewListingService(db)
	aggregateSvc := services.NewAggregateService(db, cfg.BestMinGroupSize)
	bestOfSvc := services.NewBestOfService(db, cfg.BestResultLimit)
	contactSvc := services.NewContactService(db)
	cleanupSvc := services.NewCleanupService(db)

	authMW := mdlwr.NewAuthMiddleware(jwtMgr.PublicKey(), authSvc, logr.Logger)

	authHandler := handlers.NewAuthHandler(authSvc, logr, cfg)
	listingHandler := handlers.NewListingHandler(listingSvc, cfg, logr.Logger)
	aggregateHandler := handlers.NewAggregateHandler(aggregateSvc, logr.Logger)
	bestOfHandler := handlers.NewBestOfHandler(bestOfSvc, cfg, logr.Logger)
	contactHandler := handlers.NewContactHandler(contactSvc, logr.Logger)
	cleanupHandler := handlers.NewCleanupHandler(cleanupSvc, logr.Logger)
	sitemapHandler := handlers.NewSitemapHandler(listingSvc, cfg, logr.Logger)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, err := w.Write([]byte("ok"))
		if err != nil {
			return
		}
	})

	r.Get("/sitemap.xml", sitemapHandler.Serve)

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", authHandler.Login)

			r.Group(func(r chi.Router) {
				r.Use(authMW.JWTAuth)
				r.Post("/refresh", authHandler.Refresh)
				r.Post("/logout", authHandler.Logout)
			})
		})

		r.Route("/businesses", func(r chi.Router) {
			r.Get("/", listingHandler.Query)
			r.Get("/{id}", listingHandler.GetByID)
		})

		r.Post("/listings", listingHandler.Upsert)

		r.Get("/cities", aggregateHandler.Cities)
		r.Get("/categories", aggregateHandler.Categories)

		r.Route("/best", func(r chi.Router) {
			r.Get("/", aggregateHandler.BestOfIndex)
			r.Get("/{slug}", bestOfHandler.Resolve)
		})

		r.Post("/contact", contactHandler.Create)

		r.Route("/admin", func(r chi.Router) {
			r.Use(authMW.JWTAuth)
			r.Get("/cleanup", cleanupHandler.Identify)
			r.Delete("/cleanup", cleanupHandler.Purge)
			r.Delete("/listings/{id}", listingHandler.Delete)
			r.Get("/contact", contactHandler.List)
		})
	})

	return r
}
