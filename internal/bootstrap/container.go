package bootstrap

import (
	"context"
	"log"
	"os"

	"fitcoach-be/internal/config"
	"fitcoach-be/internal/controller"
	"fitcoach-be/internal/pkg/logger"
	"fitcoach-be/internal/repository/memory"
	"fitcoach-be/internal/repository/unitofwork"
	"fitcoach-be/internal/service"
	"fitcoach-be/internal/websocket"
	"fitcoach-be/pkg/cache"
	"fitcoach-be/pkg/coach"
	"fitcoach-be/pkg/coach/classifier"
	"fitcoach-be/pkg/coach/handler"
	"fitcoach-be/pkg/coach/retrieval"
	"fitcoach-be/pkg/embedding"
	"fitcoach-be/pkg/llm/factory"
	"fitcoach-be/pkg/search"

	pktNats "fitcoach-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	CoachController   controller.ICoachController
	WorkoutController controller.IWorkoutController
	UserController    controller.IUserController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService
	PushService     service.IPushService

	// WebSockets
	WebSocketHub *websocket.Hub
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")
	domainLogger := log.New(os.Stdout, "", log.LstdFlags)

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. AI Providers
	var embeddingProvider embedding.EmbeddingProvider
	if cfg.Ai.EmbeddingProvider == "ollama" {
		embeddingProvider = embedding.NewOllamaProvider(
			cfg.Ai.OllamaBaseURL,
			cfg.Ai.OllamaModel,
		)
		log.Printf("[INFO] Using Embedding Provider: OLLAMA (%s)", cfg.Ai.OllamaModel)
	} else {
		embeddingProvider = embedding.NewGeminiProvider(cfg.Keys.GoogleGemini)
		log.Printf("[INFO] Using Embedding Provider: GEMINI")
	}

	llmProvider, err := factory.NewLLMProvider(
		cfg.Ai.LLMProvider,
		cfg.Ai.LLMModel,
		cfg.Ai.OllamaBaseURL,
		cfg.Keys.Anthropic,
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.LLMProvider, cfg.Ai.LLMModel)

	// In-memory logging sessions (per user+workout, TTL-bound)
	sessionRepo := memory.NewSessionRepository()

	// 4. Infrastructure
	// NATS
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}
	natsSub, err := pktNats.NewSubscriber(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Subscriber: %v", err)
	}

	// Redis
	opt, err := redis.ParseURL(cfg.App.RedisURL)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{
			Addr: cfg.App.RedisURL,
		}
	}
	rdb := redis.NewClient(opt)
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Printf("[WARN] Failed to connect to Redis: %v", err)
	}

	// Retrieval cache backend
	var cacheService cache.Service
	if cfg.App.CacheBackend == "redis" {
		cacheService = cache.NewRedisCache(rdb)
		log.Printf("[INFO] Using Cache Backend: REDIS")
	} else {
		cacheService = cache.NewMemoryCache()
		log.Printf("[INFO] Using Cache Backend: MEMORY")
	}

	// WebSocket Hub
	wsLogger := logger.NewIsolatedLogger("logs/push.log")
	wsHub := websocket.NewHub(rdb, wsLogger)
	go wsHub.Run()

	// 5. Coach Pipeline
	pattern := classifier.NewPatternClassifier()
	fallback := classifier.NewFallbackClassifier(llmProvider, domainLogger)
	pipeline := classifier.NewPipeline(pattern, fallback, domainLogger)

	searchService := search.NewVectorSearchService(embeddingProvider, uowFactory, domainLogger)
	retriever := retrieval.NewRetriever(searchService, cacheService, domainLogger)

	programQueue := service.NewProgramQueueService(cfg.Keys.ProgramRequestTopic, pubSub)

	var eventPub handler.EventPublisher
	if natsPub != nil {
		eventPub = natsPub
	}

	knowledgeHandler := handler.NewKnowledgeHandler(retriever, llmProvider, domainLogger)
	workoutLogHandler := handler.NewWorkoutLogHandler(sessionRepo, eventPub, domainLogger)
	wodLogHandler := handler.NewWODLogHandler(eventPub, domainLogger)

	registry, err := handler.NewRegistry(map[classifier.Intent]handler.Handler{
		classifier.IntentGreeting:             handler.NewGreetingHandler(),
		classifier.IntentWorkoutLog:           workoutLogHandler,
		classifier.IntentWODLog:               wodLogHandler,
		classifier.IntentSetExercise:          handler.NewSetExerciseHandler(sessionRepo),
		classifier.IntentExerciseQuestion:     knowledgeHandler,
		classifier.IntentFormCheck:            knowledgeHandler,
		classifier.IntentExerciseSubstitution: knowledgeHandler,
		classifier.IntentNutrition:            knowledgeHandler,
		classifier.IntentRecovery:             knowledgeHandler,
		classifier.IntentProgramRequest:       knowledgeHandler,
		classifier.IntentFullProgram:          handler.NewFullProgramHandler(programQueue, domainLogger),
		classifier.IntentRunningProgram:       handler.NewRunningProgramHandler(programQueue, domainLogger),
		classifier.IntentMotivation:           knowledgeHandler,
		classifier.IntentProgressCheck:        knowledgeHandler,
		classifier.IntentOffTopic:             handler.NewOffTopicHandler(),
		classifier.IntentGeneralFitness:       knowledgeHandler,
	})
	if err != nil {
		log.Fatalf("[FATAL] Handler registry incomplete: %v", err)
	}

	coachOrchestrator := coach.New(pipeline, registry, uowFactory, domainLogger)

	// 6. Services
	coachService := service.NewCoachService(coachOrchestrator, pipeline, uowFactory, sessionRepo, domainLogger)
	workoutService := service.NewWorkoutService(uowFactory, sessionRepo)
	userService := service.NewUserService(uowFactory)

	consumerService := service.NewConsumerService(
		pubSub,
		cfg.Keys.ProgramRequestTopic,
		uowFactory,
		llmProvider,
		eventPub,
	)

	pushService := service.NewPushService(natsSub, wsHub, wsLogger)

	// 7. Controllers
	return &Container{
		CoachController:   controller.NewCoachController(coachService, wsHub, sysLogger),
		WorkoutController: controller.NewWorkoutController(workoutService),
		UserController:    controller.NewUserController(userService),

		ConsumerService: consumerService,
		PushService:     pushService,

		WebSocketHub: wsHub,
	}
}
