package main

import (
	"context"
	"log"
	"time"

	"mascot-chat/config"
	"mascot-chat/internal/handler"
	"mascot-chat/internal/openai"
	"mascot-chat/internal/ratelimit"
	"mascot-chat/internal/server"
	"mascot-chat/internal/services"
	"mascot-chat/internal/storage"
	"mascot-chat/pkg/logger"

	goredis "github.com/redis/go-redis/v9"
)

func main() {
	cfg := config.LoadConfig()
	l := logger.New(cfg.AppMode)

	client := openai.NewClient(openai.Config{
		BaseURL:     cfg.OpenAIBaseURL,
		APIKey:      cfg.OpenAIAPIKey,
		Model:       cfg.OpenAIModel,
		Temperature: 0.6,
		MaxTokens:   500,
	})

	var store storage.Store
	if cfg.S3Bucket != "" {
		s3Store, err := storage.NewS3Store(context.Background(), storage.S3Config{
			Region:    cfg.S3Region,
			Bucket:    cfg.S3Bucket,
			AccessKey: cfg.S3AccessKey,
			SecretKey: cfg.S3SecretKey,
			Endpoint:  cfg.S3Endpoint,
		})
		if err != nil {
			log.Fatalf("Failed to init S3 storage: %v", err)
		}
		store = s3Store
	} else {
		store = storage.NewDiskStore(cfg.UploadDir)
	}

	window := time.Duration(cfg.RateLimitWindowMs) * time.Millisecond
	var chatLimiter, uploadLimiter ratelimit.Store
	if cfg.RedisAddr != "" {
		redisClient := goredis.NewClient(&goredis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		chatLimiter = ratelimit.NewRedisStore(redisClient, "chat", cfg.RateLimitMax, window)
		uploadLimiter = ratelimit.NewRedisStore(redisClient, "upload", cfg.RateLimitMax, window)
	} else {
		chatLimiter = ratelimit.NewMemoryStore(cfg.RateLimitMax, window)
		uploadLimiter = ratelimit.NewMemoryStore(cfg.RateLimitMax, window)
	}

	chatService := services.NewChatService(client)
	uploadService := services.NewUploadService(store)

	srv := server.New(cfg, l)
	srv.SetupRoutes(&server.Handlers{
		System: handler.NewSystemHandler(),
		Chat:   handler.NewChatHandler(chatService, l),
		Upload: handler.NewUploadHandler(uploadService, l),
	}, chatLimiter, uploadLimiter)

	if err := srv.Start(); err != nil {
		log.Fatalf("Server exited with error: %v", err)
	}
}
