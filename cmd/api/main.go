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
	"golang.org/x/sync/errgroup"

	"github.com/ehtasham11/nutritional-AI/internal/handlers"
	"github.com/ehtasham11/nutritional-AI/internal/mailer"
	"github.com/ehtasham11/nutritional-AI/internal/notify"
	"github.com/ehtasham11/nutritional-AI/internal/repository"
	"github.com/ehtasham11/nutritional-AI/internal/service"
	"github.com/ehtasham11/nutritional-AI/pkg/config"
	"github.com/ehtasham11/nutritional-AI/pkg/database"
	"github.com/ehtasham11/nutritional-AI/pkg/events"
	"github.com/ehtasham11/nutritional-AI/pkg/logger"
	mw "github.com/ehtasham11/nutritional-AI/pkg/middleware"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := config.Load()
	ctx := context.Background()

	pool, err := database.Connect(ctx, cfg.Database)
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	if err := database.CreateTables(ctx, pool); err != nil {
		logger.Error("Failed to apply schema", "error", err)
		os.Exit(1)
	}

	rdb, err := newRedisClient(cfg)
	if err != nil {
		logger.Error("Failed to configure Redis", "error", err)
		os.Exit(1)
	}
	defer rdb.Close()

	eventBus, err := events.NewNATSEventBus(cfg.NATS.URL)
	if err != nil {
		logger.Error("Failed to connect to NATS", "error", err)
		os.Exit(1)
	}
	defer eventBus.Close()

	// Repositories and services
	userRepo := repository.NewUserRepository(pool)
	appointmentRepo := repository.NewAppointmentRepository(pool)

	registrationService := service.NewRegistrationService(userRepo, eventBus)
	appointmentService := service.NewAppointmentService(appointmentRepo)

	// The mail worker consumes confirmation jobs off the request path.
	mailWorker := notify.NewWorker(eventBus, newMailer(cfg), cfg.App.BaseURL)
	if err := mailWorker.Start(); err != nil {
		logger.Error("Failed to start mail worker", "error", err)
		os.Exit(1)
	}

	h := handlers.New(registrationService, appointmentService)

	r := chi.NewRouter()
	r.Use(mw.RequestID)
	r.Use(mw.ServiceName("api"))
	r.Use(mw.Logging)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.App.ClientOrigin},
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	r.Use(mw.Health)

	registerLimit := mw.RateLimiter(rdb, 5, time.Minute, "register")

	r.With(registerLimit).Post("/register/", h.Register)
	r.Get("/confirm-email/{token}", h.ConfirmEmail)
	r.With(registerLimit).Post("/resend-confirmation", h.ResendConfirmation)

	r.Post("/diet-plan", h.CalculateDietPlan)

	r.Route("/appointments", func(r chi.Router) {
		r.Post("/", h.BookAppointment)
		r.Get("/", h.ListAppointments)
		r.Delete("/{id}", h.DeleteAppointment)
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("Starting API server", "port", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})

	g.Go(func() error {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

		select {
		case <-sigChan:
		case <-gctx.Done():
			return nil
		}

		logger.Info("Shutting down API server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Error("API server error", "error", err)
		os.Exit(1)
	}
}

func newRedisClient(cfg *config.Config) (*redis.Client, error) {
	opts, err := redis.ParseURL(cfg.Redis.URL)
	if err != nil {
		return nil, err
	}
	if cfg.Redis.Password != "" {
		opts.Password = cfg.Redis.Password
	}
	if cfg.Redis.DB != 0 {
		opts.DB = cfg.Redis.DB
	}
	return redis.NewClient(opts), nil
}

// newMailer picks the mail transport: dev mode logs instead of sending,
// otherwise MailerSend when an API key is configured, SMTP as the fallback.
func newMailer(cfg *config.Config) mailer.Service {
	if cfg.Email.DevMode {
		return mailer.NewDevMailer()
	}
	if cfg.Email.MailerSendKey != "" {
		return mailer.NewMailerSend(cfg.Email.MailerSendKey, cfg.Email.FromName, cfg.Email.SMTPFrom)
	}
	return mailer.NewSMTPMailer(
		cfg.Email.SMTPHost,
		cfg.Email.SMTPPort,
		cfg.Email.SMTPFrom,
		cfg.Email.SMTPUser,
		cfg.Email.SMTPPass,
		cfg.Email.SMTPUseTLS,
	)
}
