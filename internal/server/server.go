// Package server boots the storefront: configuration, store, queue,
// storage, event listeners, and the HTTP listener with graceful shutdown.
package server

import (
	"context"
	"fmt"
	"net/http"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/shalabia/storefront/app/jobs"
	"github.com/shalabia/storefront/app/models"
	"github.com/shalabia/storefront/app/repositories"
	"github.com/shalabia/storefront/app/routes"
	"github.com/shalabia/storefront/app/services"
	"github.com/shalabia/storefront/config"
	"github.com/shalabia/storefront/database/seeders"
	"github.com/shalabia/storefront/pkg/alert"
	"github.com/shalabia/storefront/pkg/database"
	"github.com/shalabia/storefront/pkg/event"
	"github.com/shalabia/storefront/pkg/kv"
	"github.com/shalabia/storefront/pkg/logger"
	"github.com/shalabia/storefront/pkg/metrics"
	"github.com/shalabia/storefront/pkg/middleware"
	"github.com/shalabia/storefront/pkg/queue"
	"github.com/shalabia/storefront/pkg/reqid"
	"github.com/shalabia/storefront/pkg/router"
	"github.com/shalabia/storefront/pkg/storage"
	"github.com/shalabia/storefront/pkg/ws"
)

// Start boots every subsystem and serves HTTP until SIGINT/SIGTERM.
func Start() error {
	if err := config.Load(); err != nil {
		return err
	}

	if uri := config.Get("MONGO_LOG_URI", ""); uri != "" {
		if _, err := logger.AttachMongo(uri, config.Get("MONGO_LOG_DB", "shalabia"), "logs"); err != nil {
			logger.Warn("mongo log sink unavailable", "error", err)
		}
	}

	store, err := OpenStore()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := bootQueue(ctx, store); err != nil {
		return err
	}
	storage.Connect()
	alert.SetSlackWebhook(config.Get("SLACK_WEBHOOK_URL", ""))

	jobs.Configure(repositories.NewOrderRepository(store))
	jobs.Register()

	if config.Get("SEED_ON_BOOT", "false") == "true" {
		if err := seeders.RunAll(store); err != nil {
			return err
		}
	}

	hub := ws.NewHub()
	go hub.Run()
	registerListeners(hub)

	r := router.New()
	r.Use(
		metrics.Middleware(),
		reqid.Middleware(),
		middleware.Recovery,
		middleware.Logger,
		middleware.CORS(middleware.DefaultCORSOptions()),
		middleware.RateLimit(120, time.Minute),
		middleware.OptionalAuth,
	)
	routes.RegisterAPI(r, store, hub)

	srv := &http.Server{
		Addr:              ":" + config.AppPort(),
		Handler:           r.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("shalabia storefront listening", "addr", srv.Addr, "env", config.AppEnv())
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	event.Flush()
	return nil
}

// OpenStore builds the key-value store named by STORE_DRIVER. The CLI
// shares this so `shalabia seed` and friends hit the same records the
// server does.
func OpenStore() (kv.Store, error) {
	switch config.StoreDriver() {
	case "redis":
		return kv.NewRedisDriver()
	case "gorm":
		if err := database.Connect(); err != nil {
			return nil, err
		}
		return kv.NewGormDriver(database.DB)
	default:
		return kv.NewMemoryDriver(), nil
	}
}

// ConfigureQueue points the queue at the driver named by QUEUE_DRIVER,
// reusing the store's redis connection when both run on redis. The
// standalone worker command shares this with the server.
func ConfigureQueue(ctx context.Context, store kv.Store) error {
	switch config.QueueDriver() {
	case "redis":
		rdb, ok := redisClient(store)
		if !ok {
			rdb = redis.NewClient(&redis.Options{
				Addr:     config.RedisAddr(),
				Password: config.RedisPassword(),
			})
			if err := rdb.Ping(ctx).Err(); err != nil {
				return fmt.Errorf("queue redis: %w", err)
			}
		}
		queue.SetDriver(queue.NewRedisDriver(rdb))
	default:
		queue.SetDriver(queue.NewMemoryDriver())
	}

	if database.DB != nil {
		queue.UseDB(database.DB)
	}
	return nil
}

func bootQueue(ctx context.Context, store kv.Store) error {
	if err := ConfigureQueue(ctx, store); err != nil {
		return err
	}

	workers, err := strconv.Atoi(config.Get("QUEUE_WORKERS", "2"))
	if err != nil || workers < 1 {
		workers = 2
	}
	queue.StartWorkers(ctx, workers)
	return nil
}

// redisClient reuses the store's connection when the store itself runs
// on redis.
func redisClient(store kv.Store) (*redis.Client, bool) {
	d, ok := store.(*kv.RedisDriver)
	if !ok {
		return nil, false
	}
	return d.Client(), true
}

// registerListeners fans domain events out to the admin live feed, the
// operator alert channel, and the background jobs.
func registerListeners(hub *ws.Hub) {
	event.Listen(event.OrderPlaced, func(payload interface{}) {
		order, ok := payload.(models.Order)
		if !ok {
			return
		}
		hub.BroadcastJSON(map[string]interface{}{
			"type":  event.OrderPlaced,
			"order": order,
		})
		if alert.Enabled() {
			text := fmt.Sprintf("New order from %s: %d items, %s EGP",
				order.Customer.Name, len(order.Items), models.FormatEGP(order.Total))
			if err := alert.Slack(text); err != nil {
				logger.Warn("slack alert failed", "error", err)
			}
		}

		subject, body := services.OrderMailContent(order)
		if err := queue.Dispatch(&jobs.MailRelayJob{Subject: subject, Body: body}); err != nil {
			logger.Error("mail relay dispatch failed", "error", err)
		}
		if err := queue.Dispatch(&jobs.OrderExportJob{Date: time.Now().Format("2006-01-02")}); err != nil {
			logger.Error("order export dispatch failed", "error", err)
		}
	})

	event.Listen(event.UserRegistered, func(payload interface{}) {
		session, ok := payload.(models.Session)
		if !ok {
			return
		}
		hub.BroadcastJSON(map[string]interface{}{"type": event.UserRegistered, "user": session})
	})

	event.Listen(event.UserSignedIn, func(payload interface{}) {
		session, ok := payload.(models.Session)
		if !ok {
			return
		}
		hub.BroadcastJSON(map[string]interface{}{"type": event.UserSignedIn, "user": session})
	})
}
