package main

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/sirupsen/logrus"

	"github.com/lexcard/lexcard-client/internal/account"
	api "github.com/lexcard/lexcard-client/internal/api/http"
	"github.com/lexcard/lexcard-client/internal/catalog"
	"github.com/lexcard/lexcard-client/internal/config"
	"github.com/lexcard/lexcard-client/internal/graphql"
	"github.com/lexcard/lexcard-client/internal/quiz"
	"github.com/lexcard/lexcard-client/internal/review"
	"github.com/lexcard/lexcard-client/internal/storage"
)

func main() {
	cfg := config.FromEnv()
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	// --- Client-local store ---
	var durable storage.KV
	switch storage.Driver(cfg.StoreDriver) {
	case storage.DriverFS:
		s, err := storage.NewFSStore(cfg.StoreBasePath)
		if err != nil {
			logrus.WithError(err).Fatal("opening local store")
		}
		durable = s
	case storage.DriverSQLite, storage.DriverPostgres:
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		s, err := storage.OpenSQL(ctx, storage.Driver(cfg.StoreDriver), cfg.StoreDSN)
		cancel()
		if err != nil {
			logrus.WithError(err).Fatal("opening local store")
		}
		durable = s
	default:
		logrus.WithField("driver", cfg.StoreDriver).Fatal("unsupported store driver")
	}

	// token-at-rest encryption for remembered logins
	prefsDurable := durable
	if cfg.StoreSecret != "" {
		sealed, err := storage.NewSealed(durable, cfg.StoreSecret)
		if err != nil {
			logrus.WithError(err).Fatal("store secret")
		}
		prefsDurable = sealed
	}

	sessions := storage.NewSessions()

	// --- Backend clients ---
	gql := graphql.New(graphql.Config{
		Endpoint: cfg.BackendURL + "/graphql",
		Token:    account.TokenFromContext,
		Timeout:  15 * time.Second,
	})
	accounts := account.NewService(gql)
	cat := catalog.NewService(gql, cfg.BackendURL)
	agg := quiz.NewAggregator(cat)
	tracker := review.NewTracker(durable)

	// --- Router ---
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Logger, middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	r.Use(api.SessionMiddleware(cfg.SessionCookie, sessions, prefsDurable))

	r.Route("/auth", func(ar chi.Router) {
		ar.Post("/login", api.LoginHandler(accounts))
		ar.Post("/register", api.RegisterHandler(accounts))
		ar.Post("/logout", api.LogoutHandler(accounts, sessions))
		ar.Get("/profile", api.ProfileHandler(accounts))
		ar.Get("/session", api.SessionHandler(accounts))
		ar.Post("/reset-password", api.ResetPasswordHandler(accounts))
		ar.Post("/change-password", api.ChangePasswordHandler(accounts))
		ar.Post("/verify-email", api.VerifyEmailHandler(accounts))
	})

	r.Route("/learn", func(lr chi.Router) {
		lr.Get("/categories", api.ListCategoriesHandler(cat, cfg.AssetBaseURL))
		lr.Get("/subcategories", api.ListSubcategoriesHandler(cat))
		lr.Get("/subcategories/{subcategoryID}/questions", api.OpenSubcategoryHandler(agg, tracker))
		lr.Post("/reviewed", api.MarkReviewedHandler(tracker))
		lr.Get("/progress", api.ProgressHandler())
	})

	r.Route("/admin", func(adm chi.Router) {
		adm.Use(api.RequireRole("admin"))
		api.MountAdmin(adm, cat)
	})

	logrus.WithFields(logrus.Fields{
		"addr":    cfg.HTTPAddr,
		"backend": cfg.BackendURL,
		"store":   cfg.StoreDriver,
	}).Info("lexcard gateway listening")
	if err := http.ListenAndServe(cfg.HTTPAddr, r); err != nil {
		logrus.WithError(err).Fatal("server exited")
	}
}
