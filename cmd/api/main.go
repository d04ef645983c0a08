package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/santoscleaning/website-api/internal/entity"
	"github.com/santoscleaning/website-api/internal/infra/config"
	"github.com/santoscleaning/website-api/internal/infra/content"
	"github.com/santoscleaning/website-api/internal/infra/http/handlers"
	"github.com/santoscleaning/website-api/internal/infra/http/middleware"
	"github.com/santoscleaning/website-api/internal/infra/integration/supabase"
	"github.com/santoscleaning/website-api/internal/infra/mail"
	"github.com/santoscleaning/website-api/internal/infra/mongodb"
	"github.com/santoscleaning/website-api/internal/infra/queue"
	"github.com/santoscleaning/website-api/internal/usecase"
	"github.com/santoscleaning/website-api/pkg/logger"
)

func main() {
	log := logger.NewLogger()
	log.Info("starting Santos Cleaning Solutions API")

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal("failed to load config", "error", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Fallback store. The service cannot run without it.
	mongoClient, db, err := mongodb.Connect(ctx, cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		log.Fatal("failed to connect to MongoDB", "error", err)
	}
	defer mongoClient.Disconnect(ctx)

	// 1. Repositories
	leadRepo := mongodb.NewLeadRepository(db)
	bookingRepo := mongodb.NewBookingRepository(db)
	reviewRepo := mongodb.NewReviewRepository(db)
	serviceRepo := mongodb.NewServiceRepository(db)

	if err := usecase.SeedCatalog(ctx, serviceRepo, log); err != nil {
		log.Fatal("failed to seed service catalog", "error", err)
	}

	// 2. Primary store (optional). Absence is a valid configuration.
	var primaryLeads entity.LeadRepositoryInterface
	var primaryReviews usecase.ExternalReviewStore
	if cfg.SupabaseConfigured() {
		client := supabase.NewClient(cfg.SupabaseKey, cfg.SupabaseURL)
		primaryLeads = client
		primaryReviews = client
		log.Info("primary store configured")
	} else {
		log.Warn("primary store not configured, running on MongoDB only")
	}

	leadStore := usecase.NewFailoverLeadStore(primaryLeads, leadRepo, log)

	// 3. Notifications (optional): queue producer plus mail worker.
	var producer usecase.QueueProducerInterface
	var rabbitConn *amqp.Connection
	if cfg.RabbitMQURL != "" {
		rabbitMQ, err := queue.NewRabbitMQ(cfg.RabbitMQURL)
		if err != nil {
			log.Warn("RabbitMQ unavailable, notifications disabled", "error", err)
		} else {
			defer rabbitMQ.Close()
			rabbitConn = rabbitMQ.Conn
			producer = queue.NewProducer(rabbitMQ.Ch)

			if cfg.MailConfigured() {
				sender := mail.NewEmailSender(cfg.MailHost, cfg.MailPort, cfg.MailUser, cfg.MailPass, cfg.MailFrom, cfg.MailTo)
				worker := queue.NewWorker(rabbitMQ.Ch, sender, log)
				go worker.Start(queue.QueueName)
			} else {
				log.Warn("mail not configured, notifications will queue but not send")
			}
		}
	}

	// 4. Use cases
	captureLead := usecase.NewCaptureLeadUseCase(leadStore, producer, log)
	reviewFeed := usecase.NewReviewFeedUseCase(primaryReviews, content.NewSampleReviewProvider(), log)
	ingestReviews := usecase.NewIngestReviewsUseCase(primaryReviews, log)

	// 5. Handlers
	validate := handlers.NewValidator()
	healthHandler := handlers.NewHealthHandler(mongoClient, rabbitConn, cfg.SupabaseConfigured())
	contactHandler := handlers.NewContactHandler(captureLead, validate)
	reviewHandler := handlers.NewReviewHandler(reviewFeed, reviewRepo, validate)
	serviceHandler := handlers.NewServiceHandler(serviceRepo)
	bookingHandler := handlers.NewBookingHandler(bookingRepo, producer, validate, log)
	leadHandler := handlers.NewLeadHandler(leadStore)
	webhookHandler := handlers.NewWebhookHandler(ingestReviews)

	// 6. Router
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	r.Get("/", healthHandler.HandleRoot)
	r.Get("/metrics", promhttp.Handler().ServeHTTP)

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", healthHandler.Handle)
		r.Post("/contact", contactHandler.Handle)
		r.Get("/reviews", reviewHandler.HandleList)
		r.Post("/reviews", reviewHandler.HandleSubmit)
		r.Get("/services", serviceHandler.HandleList)
		r.Post("/bookings", bookingHandler.Handle)
		r.Post("/webhook/reviews-update", webhookHandler.Handle)

		r.Route("/leads", func(r chi.Router) {
			r.Get("/", leadHandler.HandleList)
			r.Put("/{id}", leadHandler.HandleUpdate)
			r.Delete("/cleanup/demo", leadHandler.HandleCleanupDemo)
			r.Delete("/{id}", leadHandler.HandleDelete)
		})
	})

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	go func() {
		log.Info("server listening", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("server failed", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", "error", err)
	}
}
