// cmd/api/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"runtime/debug"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/garasilabs/maganghub/internal/auth"
	"github.com/garasilabs/maganghub/internal/config"
	"github.com/garasilabs/maganghub/internal/email"
	"github.com/garasilabs/maganghub/internal/handler"
	"github.com/garasilabs/maganghub/internal/identity"
	"github.com/garasilabs/maganghub/internal/middleware"
	"github.com/garasilabs/maganghub/internal/model"
	"github.com/garasilabs/maganghub/internal/repository"
	"github.com/garasilabs/maganghub/internal/seed"
	"github.com/garasilabs/maganghub/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "startup error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.Attr{
					Key:   a.Key,
					Value: slog.StringValue(a.Value.Time().Format(time.RFC3339)),
				}
			}
			return a
		},
	}))
	slog.SetDefault(logger)

	// .env is optional; real environments set variables directly
	if err := godotenv.Load(); err == nil {
		logger.Info("loaded configuration from .env")
	}

	// Load configuration
	cfg := config.Load()

	// Initialize repositories
	userRepo := repository.NewUserRepository()
	internshipRepo := repository.NewInternshipRepository()
	applicationRepo := repository.NewApplicationRepository()
	reviewRepo := repository.NewReviewRepository()
	articleRepo := repository.NewArticleRepository()

	// Initialize auth services
	passwordHasher := auth.NewPasswordHasher()
	tokenManager := auth.NewTokenManager(cfg.JWT.Secret, cfg.JWT.ExpiryPeriod)

	// All state lives in memory: every process start rebuilds the seed set.
	seedCtx, seedCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer seedCancel()
	if err := seed.Load(seedCtx, seed.Stores{
		Users:        userRepo,
		Internships:  internshipRepo,
		Applications: applicationRepo,
		Reviews:      reviewRepo,
		Articles:     articleRepo,
	}, passwordHasher); err != nil {
		return fmt.Errorf("loading seed data: %w", err)
	}

	// Pick the external identity verifier
	var verifier identity.Verifier
	switch cfg.Identity.Provider {
	case "google":
		verifier = identity.NewGoogleVerifier(
			cfg.Identity.GoogleClientID,
			cfg.Identity.GoogleClientSecret,
			cfg.Identity.GoogleRedirectURL,
		)
	default:
		logger.Warn("using insecure identity verifier; set IDENTITY_PROVIDER=google for real OAuth")
		verifier = identity.NewInsecureVerifier()
	}
	googleVerifier, _ := verifier.(*identity.GoogleVerifier)

	// Notification mail is optional: without a Sendgrid key or SMTP host the
	// services run silent.
	var emailService *email.Service
	switch {
	case cfg.Sendgrid.APIKey != "":
		svc, err := email.NewEmailService(cfg, email.ProviderSendgrid)
		if err != nil {
			return fmt.Errorf("initializing email service: %w", err)
		}
		emailService = svc
	case cfg.SMTP.Host != "":
		svc, err := email.NewEmailService(cfg, email.ProviderSMTP)
		if err != nil {
			return fmt.Errorf("initializing email service: %w", err)
		}
		emailService = svc
	default:
		logger.Info("no email provider configured, notifications disabled")
	}

	// Initialize services
	userService := service.NewUserService(userRepo, passwordHasher, tokenManager, verifier, emailService)
	internshipService := service.NewInternshipService(internshipRepo, userRepo, applicationRepo)
	applicationService := service.NewApplicationService(applicationRepo, internshipRepo, userRepo, emailService)
	reviewService := service.NewReviewService(reviewRepo, userRepo)
	articleService := service.NewArticleService(articleRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(userService)
	internshipHandler := handler.NewInternshipHandler(internshipService, userService)
	applicationHandler := handler.NewApplicationHandler(applicationService, userService)
	reviewHandler := handler.NewReviewHandler(reviewService)
	articleHandler := handler.NewArticleHandler(articleService)
	adminHandler := handler.NewAdminHandler(userService, internshipService, applicationService, reviewService)

	// Create router
	r := chi.NewRouter()

	// Basic middleware stack
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(loggingMiddleware(logger))
	r.Use(recoveryMiddleware(logger))
	r.Use(chimw.Timeout(30 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"healthy"}`))
	})

	// API routes
	r.Route("/api", func(r chi.Router) {
		// Public routes
		r.Group(func(r chi.Router) {
			r.Use(chimw.AllowContentType("application/json"))

			r.Post("/auth/login", authHandler.LoginHandler)
			r.Post("/auth/register", authHandler.RegisterHandler)
			r.Post("/auth/external/login", authHandler.ExternalLoginHandler)
			r.Post("/auth/external/register", authHandler.ExternalRegisterHandler)
			r.Post("/auth/logout", authHandler.LogoutHandler)

			r.Post("/applications/validate", applicationHandler.ValidateStepHandler)
		})

		if googleVerifier != nil {
			// Kicks the browser into the Google consent flow; the callback
			// lands on the SPA, which posts the code to /auth/external/login.
			r.Get("/auth/google", func(w http.ResponseWriter, r *http.Request) {
				http.Redirect(w, r, googleVerifier.AuthCodeURL(uuid.NewString()), http.StatusFound)
			})
		}

		r.Get("/internships", internshipHandler.ListHandler)
		r.Get("/internships/locations", internshipHandler.LocationsHandler)
		r.Get("/internships/{id}", internshipHandler.GetHandler)
		r.Get("/companies", authHandler.ListCompaniesHandler)
		r.Get("/companies/{id}/reviews", reviewHandler.ForCompanyHandler)
		r.Get("/articles", articleHandler.ListHandler)
		r.Get("/articles/{id}", articleHandler.GetHandler)

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(middleware.AuthMiddleware(tokenManager))
			r.Get("/auth/me", authHandler.MeHandler)

			// Student routes
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireRole(model.RoleStudent))
				r.Put("/profile/student", authHandler.UpdateStudentProfileHandler)
				r.Post("/applications", applicationHandler.SubmitHandler)
				r.Get("/applications/mine", applicationHandler.MineHandler)
				r.Delete("/applications/{id}", applicationHandler.CancelHandler)
				r.Post("/reviews", reviewHandler.CreateHandler)
			})

			// Company routes
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireRole(model.RoleCompany, model.RoleAdmin))
				r.Put("/profile/company", authHandler.UpdateCompanyProfileHandler)
				r.Post("/internships", internshipHandler.CreateHandler)
				r.Get("/internships/mine", internshipHandler.MineHandler)
				r.Delete("/internships/{id}", internshipHandler.DeleteHandler)
				r.Get("/applications/inbox", applicationHandler.InboxHandler)
				r.Patch("/applications/{id}/status", applicationHandler.UpdateStatusHandler)
			})

			// Admin routes
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireRole(model.RoleAdmin))
				r.Get("/users", authHandler.ListUsersHandler)
				r.Get("/admin/stats", adminHandler.StatsHandler)
			})
		})
	})

	// Create server
	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           r,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       120 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Server error channel
	serverErrors := make(chan error, 1)

	// Start server
	go func() {
		logger.Info("server starting", "port", cfg.Server.Port)
		serverErrors <- srv.ListenAndServe()
	}()

	// Shutdown channel
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt)

	// Wait for shutdown or error
	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		logger.Info("shutdown started", "signal", sig)

		// Give outstanding requests a deadline for completion
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		// Gracefully shutdown the server
		if err := srv.Shutdown(ctx); err != nil {
			// If shutdown times out, forcefully close
			srv.Close()
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
	}

	return nil
}

func loggingMiddleware(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)

			defer func() {
				logger.Info("request completed",
					"method", r.Method,
					"path", r.URL.Path,
					"duration", time.Since(start),
					"status", ww.Status(),
					"size", ww.BytesWritten(),
					"requestID", chimw.GetReqID(r.Context()),
				)
			}()

			next.ServeHTTP(ww, r)
		})
	}
}

func recoveryMiddleware(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rvr := recover(); rvr != nil {
					err := errors.New("panic recovered")
					logger.Error("panic recovered",
						"error", err,
						"panic", rvr,
						"stack", string(debug.Stack()),
						"requestID", chimw.GetReqID(r.Context()),
					)

					w.WriteHeader(http.StatusInternalServerError)
					w.Write([]byte(`{"error":"error encountered"}`))
					return
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
