package cron

import (
	"context"
	"log"
	"time"

	"motorover/config"
	"motorover/services/tasks"
	"motorover/services/tour"

	"github.com/hibiken/asynq"
)

// InitTourStatusWorker runs the async worker and its daily scheduler in the
// background. The worker reconciles tour statuses (completed/upcoming/TBA)
// once per day.
func InitTourStatusWorker(tourSvc tour.TourService) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisTaskDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 2,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeTourStatusRefresh, handleTourStatusTask(tourSvc))

	// Start async worker with retry logic.
	go func() {
		log.Println("[TourStatusWorker] Starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[TourStatusWorker] Attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[TourStatusWorker] Max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()

	// Schedule the daily refresh.
	go func() {
		scheduler := asynq.NewScheduler(redisOpts, &asynq.SchedulerOpts{Location: time.UTC})
		if _, err := scheduler.Register("@daily", tasks.NewTourStatusRefreshTask()); err != nil {
			log.Printf("[TourStatusWorker] Failed to register daily refresh: %v", err)
			return
		}
		if err := scheduler.Run(); err != nil {
			log.Printf("[TourStatusWorker] Scheduler stopped: %v", err)
		}
	}()
}

func handleTourStatusTask(tourSvc tour.TourService) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		log.Println("[TourStatusHandler] Running tour status refresh")
		if err := tourSvc.RefreshStatuses(ctx); err != nil {
			log.Printf("[TourStatusHandler] Refresh failed: %v", err)
			return err
		}
		return nil
	}
}
