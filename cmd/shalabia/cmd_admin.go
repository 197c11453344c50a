package main

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/shalabia/storefront/app/jobs"
	"github.com/shalabia/storefront/app/repositories"
	"github.com/shalabia/storefront/app/services"
	"github.com/shalabia/storefront/pkg/storage"
)

// shalabia notifications — print the activity log, newest first.
var notificationsCmd = &cobra.Command{
	Use:   "notifications",
	Short: "Print the admin activity log (newest first)",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := bootStore()
		if err != nil {
			return err
		}

		notifications := services.NewNotificationService(repositories.NewNotificationRepository(store))
		items := notifications.Recent()
		if len(items) == 0 {
			fmt.Println("No notifications recorded.")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "TYPE\tTIMESTAMP\tMESSAGE")
		fmt.Fprintln(w, "----\t---------\t-------")
		for _, n := range items {
			fmt.Fprintf(w, "%s\t%s\t%s\n", n.Type, n.Timestamp, n.Message)
		}
		return w.Flush()
	},
}

// shalabia notifications:clear
var notificationsClearCmd = &cobra.Command{
	Use:   "notifications:clear",
	Short: "Empty the admin activity log",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := bootStore()
		if err != nil {
			return err
		}

		notifications := services.NewNotificationService(repositories.NewNotificationRepository(store))
		if err := notifications.Clear(); err != nil {
			return err
		}
		fmt.Println("Activity log cleared.")
		return nil
	},
}

// shalabia orders:export — write today's order history CSV to storage.
var ordersExportCmd = &cobra.Command{
	Use:   "orders:export",
	Short: "Write the order history CSV to storage",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := bootStore()
		if err != nil {
			return err
		}
		storage.Connect()
		jobs.Configure(repositories.NewOrderRepository(store))

		job := &jobs.OrderExportJob{Date: time.Now().Format("2006-01-02")}
		if err := job.Handle(); err != nil {
			return err
		}
		fmt.Printf("Exported to %s\n", jobs.ExportPath(job.Date))
		return nil
	},
}
