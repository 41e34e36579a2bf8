package main

import (
	"context"
	"log"

	"devstudio/internal/config"
	"devstudio/internal/handlers"
	"devstudio/internal/models"
	"devstudio/internal/repository"
	"devstudio/internal/services"
	"devstudio/pkg/billing"
	"devstudio/pkg/email"
	"devstudio/pkg/telegram"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	dsn := "host=" + cfg.DBHost + " user=" + cfg.DBUser + " password=" + cfg.DBPassword +
		" dbname=" + cfg.DBName + " port=" + cfg.DBPort + " sslmode=disable"
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Quote{},
		&models.Project{},
		&models.Review{},
		&models.PaymentCode{},
		&models.Payment{},
		&models.Subscription{},
		&models.MonthlyReport{},
		&models.ChatMessage{},
	); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisURL,
		Password: cfg.RedisPassword,
	})
	_, err = rdb.Ping(context.Background()).Result()
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	sessionService := services.NewSessionService(rdb)
	emailService := email.NewEmailService(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass)
	stripeService := billing.NewStripeService(cfg.StripeAPIKey)

	telegramService, err := telegram.NewTelegramService(cfg.TelegramToken, cfg.TelegramChatID)
	if err != nil {
		log.Fatalf("Failed to initialize Telegram service: %v", err)
	}

	userRepo := repository.NewUserRepository(db)
	quoteRepo := repository.NewQuoteRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	codeRepo := repository.NewPaymentCodeRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	subscriptionRepo := repository.NewSubscriptionRepository(db)
	reportRepo := repository.NewReportRepository(db)
	chatRepo := repository.NewChatRepository(db)

	userHandler := handlers.NewUserHandler(userRepo)
	quoteHandler := handlers.NewQuoteHandler(quoteRepo, emailService, telegramService, cfg.AdminEmail)
	projectHandler := handlers.NewProjectHandler(projectRepo)
	reviewHandler := handlers.NewReviewHandler(reviewRepo)
	codeHandler := handlers.NewPaymentCodeHandler(codeRepo, paymentRepo, stripeService, telegramService)
	paymentHandler := handlers.NewPaymentHandler(paymentRepo)
	subscriptionHandler := handlers.NewSubscriptionHandler(subscriptionRepo)
	reportHandler := handlers.NewReportHandler(reportRepo)
	chatHandler := handlers.NewChatHandler(chatRepo, sessionService)

	r := gin.Default()

	r.POST("/api/users", userHandler.CreateUser)
	r.GET("/api/users", userHandler.GetAllUsers)
	r.GET("/api/users/:id", userHandler.GetUser)

	r.POST("/api/quotes", quoteHandler.SubmitQuote)
	r.POST("/api/quotes/validate/:step", quoteHandler.ValidateStep)
	r.GET("/api/quotes", quoteHandler.GetAllQuotes)
	r.GET("/api/quotes/:id", quoteHandler.GetQuote)
	r.GET("/api/users/:id/quotes", quoteHandler.GetQuotesByUser)
	r.PATCH("/api/quotes/:id/status", quoteHandler.UpdateQuoteStatus)

	r.POST("/api/projects", projectHandler.CreateProject)
	r.GET("/api/projects", projectHandler.GetActiveProjects)
	r.GET("/api/projects/all", projectHandler.GetAllProjects)
	r.GET("/api/projects/:id", projectHandler.GetProject)
	r.PATCH("/api/projects/:id", projectHandler.UpdateProject)
	r.DELETE("/api/projects/:id", projectHandler.DeleteProject)

	r.POST("/api/reviews", reviewHandler.SubmitReview)
	r.GET("/api/reviews", reviewHandler.GetAllReviews)
	r.GET("/api/reviews/approved", reviewHandler.GetApprovedReviews)
	r.GET("/api/reviews/:id", reviewHandler.GetReview)
	r.GET("/api/users/:id/reviews", reviewHandler.GetReviewsByUser)
	r.POST("/api/reviews/:id/approve", reviewHandler.ApproveReview)
	r.DELETE("/api/reviews/:id", reviewHandler.DeleteReview)

	r.POST("/api/payment-codes", codeHandler.CreatePaymentCode)
	r.GET("/api/payment-codes", codeHandler.GetAllPaymentCodes)
	r.GET("/api/payment-codes/used", codeHandler.GetUsedPaymentCodes)
	r.DELETE("/api/payment-codes/:id", codeHandler.DeletePaymentCode)
	r.POST("/api/payment-codes/redeem", codeHandler.RedeemPaymentCode)

	r.POST("/api/payments", paymentHandler.CreatePayment)
	r.GET("/api/payments", paymentHandler.GetAllPayments)
	r.GET("/api/payments/:id", paymentHandler.GetPayment)
	r.GET("/api/users/:id/payments", paymentHandler.GetPaymentsByUser)
	r.PATCH("/api/payments/:id/status", paymentHandler.UpdatePaymentStatus)

	r.POST("/api/subscriptions", subscriptionHandler.CreateSubscription)
	r.GET("/api/subscriptions", subscriptionHandler.GetAllSubscriptions)
	r.GET("/api/subscriptions/:id", subscriptionHandler.GetSubscription)
	r.GET("/api/users/:id/subscriptions", subscriptionHandler.GetSubscriptionsByUser)
	r.PATCH("/api/subscriptions/:id/status", subscriptionHandler.UpdateSubscriptionStatus)

	r.POST("/api/reports", reportHandler.CreateReport)
	r.GET("/api/reports", reportHandler.GetAllReports)
	r.GET("/api/reports/:year/:month", reportHandler.GetReportByPeriod)

	r.POST("/api/chat/sessions", chatHandler.StartSession)
	r.POST("/api/chat/messages", chatHandler.PostMessage)
	r.GET("/api/chat/sessions/:sessionId/messages", chatHandler.GetHistory)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	})

	if err := r.Run(":" + cfg.ServerPort); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
