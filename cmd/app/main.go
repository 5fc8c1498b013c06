package main

import (
	"context"
	"os"
	"strconv"

	dbadapter "lahza/internal/adapters/database"
	"lahza/internal/adapters/httpapi"
	redisadapter "lahza/internal/adapters/redis"
	storageadapter "lahza/internal/adapters/storage"
	"lahza/internal/config"
	"lahza/internal/core/cleanup"
	"lahza/internal/core/conversation"
	feedapp "lahza/internal/core/feed/service"
	mediaapp "lahza/internal/core/media/service"
	"lahza/internal/core/relation"
	relationapp "lahza/internal/core/relation/service"
	"lahza/internal/core/status"
	statusapp "lahza/internal/core/status/service"
	"lahza/internal/core/user"
	userapp "lahza/internal/core/user/service"
	"lahza/internal/core/view"
	viewapp "lahza/internal/core/view/service"
	"lahza/internal/workers"

	"go.uber.org/zap"
)

func main() {
	config.InitLogger()
	config.Init()

	config.InitDB()

	if err := config.DB.AutoMigrate(
		&user.User{},
		&status.Status{},
		&status.Sticker{},
		&status.Visibility{},
		&view.StatusView{},
		&relation.Relation{},
		&conversation.Conversation{},
		&conversation.Participant{},
		&cleanup.Task{},
	); err != nil {
		config.Logger.Fatal("Error during migrations:", zap.Error(err))
	}

	config.Logger.Info("✅ Database migrations completed")

	config.InitRedis()

	defer closeResources(config.Logger)

	config.Logger.Info("App is running...")

	userRepo := dbadapter.NewUserRepositoryDatabase()
	statusRepo := dbadapter.NewStatusRepositoryDatabase()
	stickerRepo := dbadapter.NewStickerRepositoryDatabase()
	visibilityRepo := dbadapter.NewVisibilityRepositoryDatabase()
	viewRepo := dbadapter.NewViewRepositoryDatabase()
	relationRepo := dbadapter.NewRelationRepositoryDatabase()
	conversationRepo := dbadapter.NewConversationRepositoryDatabase()
	cleanupRepo := dbadapter.NewCleanupRepositoryDatabase()
	urlCache := redisadapter.NewURLCacheRepositoryRedis(config.RedisClient)
	objectStorage := storageadapter.NewObjectStorageHTTP(
		os.Getenv("STORAGE_URL"),
		os.Getenv("STORAGE_BUCKET"),
		os.Getenv("STORAGE_SERVICE_KEY"),
	)

	userSvc := userapp.NewUserService(userRepo, []byte(os.Getenv("JWT_SECRET")))
	mediaSvc := mediaapp.NewMediaService(objectStorage, urlCache)
	statusSvc := statusapp.NewStatusService(statusRepo, stickerRepo, visibilityRepo, cleanupRepo, mediaSvc, objectStorage)
	feedSvc := feedapp.NewFeedService(statusRepo, stickerRepo, visibilityRepo, viewRepo, relationRepo, conversationRepo, userRepo)
	viewSvc := viewapp.NewViewService(viewRepo, statusRepo, userRepo)
	relationSvc := relationapp.NewRelationService(relationRepo)
	r := httpapi.SetupRoutes(userSvc, statusSvc, feedSvc, viewSvc, relationSvc, mediaSvc)

	batchSizeStr := os.Getenv("BATCH_SIZE")
	batchSize, err := strconv.Atoi(batchSizeStr)
	if err != nil || batchSize <= 0 {
		batchSize = 100
	}

	cleanupWorker := workers.NewCleanupWorker(cleanupRepo, objectStorage, batchSize, config.Logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go cleanupWorker.Run(ctx)

	if err := r.Run(":" + os.Getenv("APP_PORT")); err != nil {
		config.Logger.Fatal("Server failed to start:", zap.Error(err))
	}
}

func closeResources(logger *zap.Logger) {
	if err := config.RedisClient.Close(); err != nil {
		logger.Error("Error closing Redis connection:", zap.Error(err))
	}

	sqlDB, err := config.DB.DB()
	if err != nil {
		logger.Error("Error getting raw DB:", zap.Error(err))
		return
	}

	if err := sqlDB.Close(); err != nil {
		logger.Error("Error closing database connection:", zap.Error(err))
	}
}
