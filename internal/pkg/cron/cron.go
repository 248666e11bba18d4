package cron

import (
	"camera-rental-service/internal/pkg/log"
	"context"
	"fmt"
	"time"

	"github.com/go-co-op/gocron/v2"
	"go.elastic.co/apm"
)

// Job runs every Every; a run never overlaps the previous one.
type Job struct {
	Name  string
	Every time.Duration
	Run   func(ctx context.Context) error
}

type Cron struct {
	log   log.Logger
	sched gocron.Scheduler
}

func New(log log.Logger, jobs ...Job) (*Cron, error) {
	sched, err := gocron.NewScheduler(gocron.WithLocation(time.UTC))
	if err != nil {
		return nil, fmt.Errorf("error init cron scheduler: %w", err)
	}

	c := &Cron{log: log, sched: sched}
	for _, job := range jobs {
		if job.Every <= 0 {
			log.Warn(context.Background(), "cron job "+job.Name+" disabled")
			continue
		}

		_, err := sched.NewJob(
			gocron.DurationJob(job.Every),
			gocron.NewTask(c.run, job),
			gocron.WithName(job.Name),
			gocron.WithSingletonMode(gocron.LimitModeReschedule),
		)
		if err != nil {
			return nil, fmt.Errorf("error register cron job %s: %w", job.Name, err)
		}
	}

	return c, nil
}

func (c *Cron) Jobs() []string {
	names := []string{}
	for _, j := range c.sched.Jobs() {
		names = append(names, j.Name())
	}
	return names
}

func (c *Cron) Start() {
	c.sched.Start()
}

func (c *Cron) Shutdown() error {
	return c.sched.Shutdown()
}

func (c *Cron) run(job Job) {
	tx := apm.DefaultTracer.StartTransaction(job.Name, "cron")
	defer tx.End()

	ctx, cancel := context.WithTimeout(apm.ContextWithTransaction(context.Background(), tx), job.Every)
	defer cancel()

	start := time.Now()
	if err := job.Run(ctx); err != nil {
		tx.Result = "error"
		c.log.Error(ctx, "error run cron job "+job.Name, err)
		return
	}
	tx.Result = "success"
	c.log.Debug(ctx, fmt.Sprintf("cron job %s done in %s", job.Name, time.Since(start)))
}
