package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/shalabia/storefront/app/jobs"
	"github.com/shalabia/storefront/app/repositories"
	"github.com/shalabia/storefront/internal/server"
	"github.com/shalabia/storefront/pkg/queue"
	"github.com/shalabia/storefront/pkg/storage"
)

var queueWorkersFlag int

// shalabia queue:work
var queueWorkCmd = &cobra.Command{
	Use:   "queue:work",
	Short: "Start the queue worker",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := bootStore()
		if err != nil {
			return err
		}
		storage.Connect()
		jobs.Configure(repositories.NewOrderRepository(store))
		jobs.Register()

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		if err := server.ConfigureQueue(ctx, store); err != nil {
			return err
		}

		workers := queueWorkersFlag
		if workers < 1 {
			workers = 2
		}

		fmt.Printf("Queue worker started (%d workers). Press Ctrl+C to stop.\n", workers)
		queue.StartWorkers(ctx, workers)

		<-ctx.Done()
		fmt.Println("\nQueue worker stopped.")
		return nil
	},
}

func init() {
	queueWorkCmd.Flags().IntVarP(&queueWorkersFlag, "workers", "w", 2, "number of concurrent workers")
}
