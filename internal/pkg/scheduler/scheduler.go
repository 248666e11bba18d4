package scheduler

import (
	"camera-rental-service/config"
	"camera-rental-service/internal/pkg/log"
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/hibiken/asynq"
	"github.com/hibiken/asynqmon"
)

const (
	TypeCheckPaymentStatus = "check_payment_status"

	QueueDefault = "default"
)

type Scheduler struct {
	Log   log.Logger
	Redis *config.RedisConfig
	Cfg   *config.SchedulerConfig
}

func (s *Scheduler) redisOpt() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     fmt.Sprintf("%s:%s", s.Redis.Host, s.Redis.Port),
		Password: s.Redis.Password,
		DB:       s.Redis.DB,
	}
}

// StartMonitoring serves the asynqmon dashboard under /monitoring until srv is shut down.
func (s *Scheduler) StartMonitoring() *http.Server {
	h := asynqmon.New(asynqmon.Options{
		RootPath:     "/monitoring",
		RedisConnOpt: s.redisOpt(),
	})

	mux := http.NewServeMux()
	mux.Handle(h.RootPath()+"/", h)

	srv := &http.Server{Addr: ":" + s.Cfg.MonitoringPort, Handler: mux}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.Log.Error(context.Background(), "error start monitoring scheduler", err)
		}
	}()

	return srv
}

func (s *Scheduler) InitClient() *asynq.Client {
	return asynq.NewClient(s.redisOpt())
}

func (s *Scheduler) InitInspector() *asynq.Inspector {
	return asynq.NewInspector(s.redisOpt())
}

// StartHandler runs the task server in the background. Call Shutdown on the result to stop it.
func (s *Scheduler) StartHandler(handlers map[string]asynq.HandlerFunc) (*asynq.Server, error) {
	concurrency := s.Cfg.Concurrency
	if concurrency <= 0 {
		concurrency = 10
	}

	srv := asynq.NewServer(s.redisOpt(), asynq.Config{
		Concurrency: concurrency,
		Queues: map[string]int{
			QueueDefault: concurrency,
		},
		Logger: &asynqLogger{log: s.Log},
	})

	if err := srv.Start(NewServeMux(handlers)); err != nil {
		s.Log.Error(context.Background(), "error start handler scheduler", err)
		return nil, err
	}

	return srv, nil
}

func NewServeMux(handlers map[string]asynq.HandlerFunc) *asynq.ServeMux {
	mux := asynq.NewServeMux()
	for taskType, handlerFunc := range handlers {
		mux.HandleFunc(taskType, handlerFunc)
	}
	return mux
}

type asynqLogger struct {
	log log.Logger
}

func (l *asynqLogger) Debug(args ...interface{}) {
	l.log.Debug(context.Background(), fmt.Sprint(args...))
}

func (l *asynqLogger) Info(args ...interface{}) {
	l.log.Info(context.Background(), fmt.Sprint(args...))
}

func (l *asynqLogger) Warn(args ...interface{}) {
	l.log.Warn(context.Background(), fmt.Sprint(args...))
}

func (l *asynqLogger) Error(args ...interface{}) {
	l.log.Error(context.Background(), fmt.Sprint(args...))
}

func (l *asynqLogger) Fatal(args ...interface{}) {
	l.log.Error(context.Background(), fmt.Sprint(args...))
}
