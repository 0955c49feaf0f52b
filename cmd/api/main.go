package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/sparklenest/cleaning-bookings/internal/database"
	"github.com/sparklenest/cleaning-bookings/internal/http/handlers"
	httpmw "github.com/sparklenest/cleaning-bookings/internal/http/middleware"
	"github.com/sparklenest/cleaning-bookings/internal/notify"
	"github.com/sparklenest/cleaning-bookings/internal/platform/mailer"
	"github.com/sparklenest/cleaning-bookings/internal/repo/mongodb"
	"github.com/sparklenest/cleaning-bookings/pkg/config"
	"github.com/sparklenest/cleaning-bookings/pkg/logger"
	mw "github.com/sparklenest/cleaning-bookings/pkg/middleware"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	// Connect to MongoDB
	ctx := context.Background()
	db, err := database.Connect(ctx, cfg.Mongo)
	if err != nil {
		logger.Error("Failed to connect to MongoDB", "error", err)
		os.Exit(1)
	}
	defer db.Client().Disconnect(context.Background())

	if err := database.EnsureIndexes(ctx, db); err != nil {
		logger.Error("Failed to ensure indexes", "error", err)
		os.Exit(1)
	}

	// Redis backs the rate limiter; the limiter fails open if it is down
	rdb := newRedisClient(cfg.Redis)
	defer rdb.Close()

	// Initialize repositories
	bookingsRepo := mongodb.NewBookingsRepository(db)
	quotesRepo := mongodb.NewQuotesRepository(db)
	emailLogsRepo := mongodb.NewEmailLogsRepository(db)

	// Notification worker
	notifier := notify.New(newMailer(cfg), emailLogsRepo, cfg.Email.AdminEmail, cfg.Notify.QueueSize)
	defer notifier.Close()

	// Initialize handlers
	h := handlers.New(bookingsRepo, quotesRepo, emailLogsRepo, notifier)

	limiter := httpmw.NewRateLimiter(rdb, httpmw.RateLimitConfig{
		Requests: cfg.RateLimit.Requests,
		Window:   cfg.RateLimit.Window,
	})

	// Setup router
	r := chi.NewRouter()

	// Middleware
	r.Use(mw.RequestID)
	r.Use(mw.ServiceName("cleaning-bookings"))
	r.Use(mw.Logging)
	r.Use(mw.Recover)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000", "*"},
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	r.Use(mw.Health)

	// Routes
	r.Route("/bookings", func(r chi.Router) {
		r.Get("/", h.ListBookings)
		r.With(limiter.Middleware()).Post("/", h.CreateBooking)
		r.Delete("/", h.DeleteAllBookings)
		r.Get("/{id}", h.GetBooking)
		r.Patch("/{id}", h.UpdateBookingStatus)
		r.Delete("/{id}", h.DeleteBooking)
	})

	r.Route("/quotes", func(r chi.Router) {
		r.Get("/", h.ListQuotes)
		r.With(limiter.Middleware()).Post("/", h.CreateQuote)
		r.Get("/{id}", h.GetQuote)
		r.Patch("/{id}", h.UpdateQuoteStatus)
		r.Delete("/{id}", h.DeleteQuote)
	})

	r.Route("/email-logs", func(r chi.Router) {
		r.Get("/", h.ListEmailLogs)
		r.Delete("/", h.ClearEmailLogs)
	})

	// Start server
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		logger.Info("Shutting down...")

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			logger.Error("Server shutdown error", "error", err)
		}
	}()

	logger.Info("Starting cleaning-bookings API", "port", cfg.Server.Port)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("Server error", "error", err)
		os.Exit(1)
	}
}

func newRedisClient(cfg config.RedisConfig) *redis.Client {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		logger.Warn("Invalid REDIS_URL, using localhost", "error", err)
		opts = &redis.Options{Addr: "localhost:6379"}
	}
	if cfg.Password != "" {
		opts.Password = cfg.Password
	}
	if cfg.DB != 0 {
		opts.DB = cfg.DB
	}
	return redis.NewClient(opts)
}

func newMailer(cfg *config.Config) mailer.Service {
	switch {
	case cfg.Email.DevMode:
		logger.Info("Using dev mailer (EMAIL_DEV_MODE=true)")
		return mailer.NewDevMailer()
	case cfg.Email.MailerSendKey != "":
		return mailer.NewMailer(cfg.Email.MailerSendKey, cfg.Email.FromName, cfg.Email.FromEmail)
	default:
		return mailer.NewSMTPMailer(
			cfg.Email.SMTPHost, cfg.Email.SMTPPort, cfg.Email.SMTPFrom,
			cfg.Email.SMTPUser, cfg.Email.SMTPPass, cfg.Email.SMTPUseTLS,
		)
	}
}
