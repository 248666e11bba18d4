package main

import (
	"camera-rental-service/config"
	bookingHandler "camera-rental-service/internal/module/booking/handler"
	bookingRepositories "camera-rental-service/internal/module/booking/repositories"
	bookingUsecases "camera-rental-service/internal/module/booking/usecases"
	catalogHandler "camera-rental-service/internal/module/catalog/handler"
	catalogRepositories "camera-rental-service/internal/module/catalog/repositories"
	catalogUsecases "camera-rental-service/internal/module/catalog/usecases"
	notificationHandler "camera-rental-service/internal/module/notification/handler"
	notificationUsecases "camera-rental-service/internal/module/notification/usecases"
	userHandler "camera-rental-service/internal/module/user/handler"
	userRepositories "camera-rental-service/internal/module/user/repositories"
	userUsecases "camera-rental-service/internal/module/user/usecases"
	"camera-rental-service/internal/pkg/cron"
	"camera-rental-service/internal/pkg/database"
	"camera-rental-service/internal/pkg/gateway"
	"camera-rental-service/internal/pkg/http"
	"camera-rental-service/internal/pkg/httpclient"
	log_internal "camera-rental-service/internal/pkg/log"
	"camera-rental-service/internal/pkg/mailer"
	"camera-rental-service/internal/pkg/messagestream"
	"camera-rental-service/internal/pkg/metrics"
	"camera-rental-service/internal/pkg/middleware"
	"camera-rental-service/internal/pkg/redis"
	"camera-rental-service/internal/pkg/scheduler"
	"camera-rental-service/internal/pkg/storage"
	"camera-rental-service/internal/pkg/token"
	validator_internal "camera-rental-service/internal/pkg/validator"
	router "camera-rental-service/internal/route"
	"context"
	"fmt"
	"log"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/gofiber/fiber/v2"
	"github.com/hibiken/asynq"
	"github.com/prometheus/client_golang/prometheus"
)

func main() {
	cfg := config.InitConfig()

	app, messageRouters, shutdown := initService(cfg)

	for _, router := range messageRouters {
		ctx := context.Background()
		go func(router *message.Router) {
			err := router.Run(ctx)
			if err != nil {
				log.Fatal(err)
			}
		}(router)
	}

	// start http server
	http.StartHttpServer(app, cfg.HttpServer.Port, cfg.HttpServer.ShutdownTimeout, shutdown)
}

func initService(cfg *config.Config) (*fiber.App, []*message.Router, func()) {
	ctx := context.Background()

	// init logger
	logZap := log_internal.SetupLogger(cfg.App.LogLevel)
	log_internal.Init(logZap)
	logger := log_internal.GetLogger()
	otelLogger := log_internal.GetOtelLogger()

	// init database
	db := database.GetConnection(&cfg.Database)
	if cfg.Database.AutoMigrate {
		if err := database.Migrate(ctx, db); err != nil {
			log.Fatalf("error migrate database: %v", err)
		}
	}

	// init redis
	redisClient := redis.SetupClient(&cfg.Redis)
	locker := redis.NewLocker(redisClient)
	limiter := redis.NewRateLimiter(redisClient)

	// init scheduler
	sch := scheduler.Scheduler{
		Log:   logger,
		Redis: &cfg.Redis,
		Cfg:   &cfg.Scheduler,
	}
	taskClient := sch.InitClient()
	inspector := sch.InitInspector()
	monitoring := sch.StartMonitoring()

	// init http client
	cb := httpclient.InitCircuitBreaker(&cfg.HttpClient, cfg.HttpClient.Type)
	httpClient := httpclient.InitHttpClient(&cfg.HttpClient, cb)

	gw, err := gateway.New(&cfg.Gateway, httpClient)
	if err != nil {
		log.Fatalf("error init payment gateway: %v", err)
	}

	st, err := storage.New(ctx, &cfg.Storage)
	if err != nil {
		log.Fatalf("error init storage: %v", err)
	}

	mail := mailer.New(&cfg.Mail)
	tokens := token.NewManager(&cfg.Jwt)
	mt := metrics.NewMetrics(prometheus.DefaultRegisterer)

	// init message stream
	amqp := messagestream.NewAmpq(&cfg.MessageStream)

	// Init Subscriber
	subscriber, err := amqp.NewSubscriber()
	if err != nil {
		logger.Error(ctx, "Failed to create subscriber", err)
	}

	// Init Publisher
	publisher, err := amqp.NewPublisher()
	if err != nil {
		logger.Error(ctx, "Failed to create publisher", err)
	}

	validator := validator_internal.New()

	userRepo := userRepositories.New(db, logger, redisClient)
	userUsecase := userUsecases.New(userRepo, logger, publisher, tokens, st, mt, cfg)
	handlerUser := userHandler.UserHandler{
		Log:       otelLogger,
		Validator: validator,
		Usecase:   userUsecase,
	}

	catalogRepo := catalogRepositories.New(db, logger)
	catalogUsecase := catalogUsecases.New(catalogRepo, logger, st, cfg)
	handlerCatalog := catalogHandler.CatalogHandler{
		Log:       otelLogger,
		Validator: validator,
		Usecase:   catalogUsecase,
	}

	bookingRepo := bookingRepositories.New(db, logger, locker, cfg.Booking.LockTTL, taskClient, inspector)
	bookingUsecase := bookingUsecases.New(bookingRepo, logger, publisher, gw, mt, cfg)
	handlerBooking := bookingHandler.BookingHandler{
		Log:       otelLogger,
		Validator: validator,
		Usecase:   bookingUsecase,
	}

	notificationUsecase := notificationUsecases.New(mail, logger, mt, cfg)
	handlerNotification := notificationHandler.NotificationHandler{
		Log:       otelLogger,
		Validator: validator,
		Publish:   publisher,
		Usecase:   notificationUsecase,
	}

	middleware := middleware.Middleware{
		Log:     otelLogger,
		Repo:    userRepo,
		Token:   tokens,
		Limiter: limiter,
		Limits:  cfg.RateLimit,
	}

	// payment expiry checks scheduled by the booking repository
	taskServer, err := sch.StartHandler(map[string]asynq.HandlerFunc{
		scheduler.TypeCheckPaymentStatus: handlerBooking.SetPaymentExpired,
	})
	if err != nil {
		log.Fatalf("error start task handler: %v", err)
	}

	jobs, err := cron.New(logger,
		cron.Job{
			Name:  "clear_expired_otps",
			Every: cfg.Scheduler.OtpCleanupEvery,
			Run: func(ctx context.Context) error {
				n, err := userUsecase.ClearExpiredOtps(ctx)
				if err == nil && n > 0 {
					logger.Info(ctx, fmt.Sprintf("cleared %d expired otps", n))
				}
				return err
			},
		},
		cron.Job{
			Name:  "sweep_stale_payments",
			Every: cfg.Scheduler.PaymentSweepEvery,
			Run: func(ctx context.Context) error {
				n, err := bookingUsecase.SweepStalePayments(ctx)
				if err == nil && n > 0 {
					logger.Info(ctx, fmt.Sprintf("reconciled %d stale payments", n))
				}
				return err
			},
		},
	)
	if err != nil {
		log.Fatalf("error init cron: %v", err)
	}
	jobs.Start()

	var messageRouters []*message.Router

	otpRouter, err := messagestream.NewRouter(publisher, messagestream.TopicPoisoned, "otp_issued_handler", messagestream.TopicOtpIssued, subscriber, handlerNotification.ConsumeOtpIssued)
	if err != nil {
		logger.Error(ctx, "Failed to create otp_issued router", err)
	} else {
		messageRouters = append(messageRouters, otpRouter)
	}

	bookingStatusRouter, err := messagestream.NewRouter(publisher, messagestream.TopicPoisoned, "booking_status_changed_handler", messagestream.TopicBookingStatusChanged, subscriber, handlerNotification.ConsumeBookingStatusChanged)
	if err != nil {
		logger.Error(ctx, "Failed to create booking_status_changed router", err)
	} else {
		messageRouters = append(messageRouters, bookingStatusRouter)
	}

	serverHttp := http.SetupHttpEngine(&cfg.HttpServer)

	r := router.Initialize(serverHttp, cfg, router.Handlers{
		User:    &handlerUser,
		Catalog: &handlerCatalog,
		Booking: &handlerBooking,
	}, &middleware)

	shutdown := func() {
		for _, mr := range messageRouters {
			if err := mr.Close(); err != nil {
				logger.Error(ctx, "error close message router", err)
			}
		}
		taskServer.Shutdown()
		if err := jobs.Shutdown(); err != nil {
			logger.Error(ctx, "error shutdown cron", err)
		}
		if err := monitoring.Shutdown(ctx); err != nil {
			logger.Error(ctx, "error shutdown monitoring", err)
		}
		if err := taskClient.Close(); err != nil {
			logger.Error(ctx, "error close task client", err)
		}
		if err := inspector.Close(); err != nil {
			logger.Error(ctx, "error close task inspector", err)
		}
		if err := db.Close(); err != nil {
			logger.Error(ctx, "error close database", err)
		}
		if err := redisClient.Close(); err != nil {
			logger.Error(ctx, "error close redis", err)
		}
		_ = logZap.Sync()
	}

	return r, messageRouters, shutdown

}
