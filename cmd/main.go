package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"participium/backend/internal/api/handler"
	"participium/backend/internal/config"
	"participium/backend/internal/follows"
	"participium/backend/internal/mail"
	"participium/backend/internal/messaging"
	"participium/backend/internal/models"
	"participium/backend/internal/notify"
	"participium/backend/internal/realtime"
	"participium/backend/internal/stats"
	"participium/backend/internal/storage"
	"participium/backend/internal/telegram"
	"participium/backend/internal/workflow"
)

func setupDependencies(cfg config.Config) (*gorm.DB, *redis.Client) {
	db, err := gorm.Open(postgres.Open(cfg.DatabaseDSN), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect PostgreSQL: %v", err)
	}

	rdb := redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr,
		DB:   cfg.RedisDB,
	})
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Fatalf("Failed to connect Redis: %v", err)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.Officer{},
		&models.Maintainer{},
		&models.Report{},
		&models.Follow{},
		&models.Notification{},
		&models.PublicMessage{},
		&models.InternalMessage{},
		&models.Faq{},
	)
	if err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	log.Println("Database and Redis connections established, migrations complete.")
	return db, rdb
}

func main() {
	log.Println("Starting Participium Backend...")

	if err := godotenv.Load(); err != nil {
		log.Println("Warning: Error loading .env file")
	}
	cfg := config.Load()

	db, rdb := setupDependencies(cfg)
	s := storage.NewService(db, rdb)

	var chatSender notify.ChatSender
	var bot *telegram.BotService
	if cfg.TelegramToken != "" {
		var err error
		bot, err = telegram.NewBotService(cfg.TelegramToken, cfg.JWTSecret, s)
		if err != nil {
			log.Fatalf("Failed to start Telegram bot: %v", err)
		}
		chatSender = bot
	} else {
		log.Println("Warning: TELEGRAM_BOT_TOKEN not set, chat channel disabled")
	}

	var mailer mail.Mailer
	if cfg.SMTPHost != "" {
		mailer = mail.NewSMTPMailer(cfg)
	} else {
		log.Println("Warning: SMTP_HOST not set, email channel disabled")
	}

	dispatcher := notify.NewDispatcher(s, mailer, chatSender, s)
	fanout := notify.NewFanout(s, dispatcher)

	engine := workflow.NewEngine(s, fanout)
	registry := follows.NewRegistry(s)
	msgService := messaging.NewService(s, fanout, s)
	statsService := stats.NewService(s)

	hub := realtime.NewHub(s)

	dispatcher.Start()
	go hub.Run()
	if bot != nil {
		go bot.Run()
	}

	r := gin.Default()
	h := handler.NewHandler(engine, registry, fanout, msgService, statsService, hub, s, s, cfg.JWTSecret)
	h.RegisterRoutes(r)

	server := &http.Server{
		Addr:           cfg.HTTPAddr,
		Handler:        r,
		ReadTimeout:    10 * time.Second,
		WriteTimeout:   10 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	log.Fatal(server.ListenAndServe())
}
