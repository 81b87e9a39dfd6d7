package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"

	"fieldserve/config"
	"fieldserve/cron"
	"fieldserve/database"
	agentRepoPkg "fieldserve/database/repository/agent"
	bookingRepoPkg "fieldserve/database/repository/booking"
	clientRepoPkg "fieldserve/database/repository/client"
	orgRepoPkg "fieldserve/database/repository/organization"
	reviewRepoPkg "fieldserve/database/repository/review"
	serviceRepoPkg "fieldserve/database/repository/service"
	"fieldserve/handlers"
	"fieldserve/routes"
	agentsvc "fieldserve/services/agent"
	"fieldserve/services/audit"
	clientsvc "fieldserve/services/client"
	"fieldserve/services/embedding"
	"fieldserve/services/notification"
	providersvc "fieldserve/services/provider"
	searchsvc "fieldserve/services/search"
	"fieldserve/services/storage"
	"fieldserve/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.InitSearchCache()
	if err := serviceRepoPkg.EnsureIndexes(); err != nil {
		logger.Sugar().Fatalf("main: failed to ensure indexes: %v", err)
	}

	// Async side effects: the request path enqueues, the worker delivers.
	asynqClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	})
	defer asynqClient.Close()
	notifier := notification.NewDispatcher(asynqClient, logger)
	cron.InitWorker(notification.NewEmailSender(), audit.NewStore(), logger)

	// Repositories.
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	agentRepo := agentRepoPkg.NewMongoAgentRepo()
	orgRepo := orgRepoPkg.NewMongoOrgRepo()
	clientRepo := clientRepoPkg.NewMongoClientRepo()
	reviewRepo := reviewRepoPkg.NewMongoReviewRepo()
	serviceRepo := serviceRepoPkg.NewMongoServiceRepo()

	embedder := embedding.NewGeminiProvider()

	// Services.
	clientService := &clientsvc.DefaultClientService{
		ClientRepo:  clientRepo,
		BookingRepo: bookingRepo,
		ServiceRepo: serviceRepo,
		ReviewRepo:  reviewRepo,
		OrgRepo:     orgRepo,
		Notifier:    notifier,
		Logger:      logger,
	}
	agentService := &agentsvc.DefaultAgentService{
		AgentRepo:   agentRepo,
		BookingRepo: bookingRepo,
		ServiceRepo: serviceRepo,
		Notifier:    notifier,
		Logger:      logger,
	}
	providerService := &providersvc.DefaultProviderService{
		OrgRepo:     orgRepo,
		AgentRepo:   agentRepo,
		BookingRepo: bookingRepo,
		ClientRepo:  clientRepo,
		ServiceRepo: serviceRepo,
		Embedder:    embedder,
		Notifier:    notifier,
		Logger:      logger,
	}
	searchService := searchsvc.NewDefaultSearchService(serviceRepo, embedder)

	bundle := &routes.HandlerBundle{
		Client:   &handlers.ClientHandler{Service: clientService},
		Agent:    &handlers.AgentHandler{Service: agentService},
		Provider: &handlers.ProviderHandler{Service: providerService},
		Search:   &handlers.SearchHandler{Service: searchService},
	}

	if store, err := storage.NewCloudinaryStore(); err != nil {
		logger.Warn("object store disabled: " + err.Error())
	} else {
		bundle.Storage = &handlers.StorageHandler{Store: store}
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	routes.Register(router, bundle)

	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    ":" + port,
		Handler: router,
	}

	go func() {
		logger.Sugar().Infof("listening on :%s", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server error: %v", err)
		}
	}()

	// Graceful shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Errorf("main: forced shutdown: %v", err)
	}
}
