// Package main provides the shalabia storefront CLI.
//
//	shalabia serve               # start the HTTP server
//	shalabia seed                # seed the store (accounts, catalog)
//	shalabia route:list          # list API routes
//	shalabia queue:work          # run queue workers standalone
//	shalabia notifications       # print the admin activity log
//	shalabia notifications:clear # empty the activity log
//	shalabia orders:export       # write the order history CSV
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "shalabia",
	Short: "Shalabia — Alexandria's clothing storefront",
	Long:  "Shalabia is the storefront behind shalabia.com: catalog, carts, wishlists, checkout with mail handoff, and the admin activity log.",
}

func init() {
	// Server
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(routeListCmd)

	// Store
	rootCmd.AddCommand(seedCmd)

	// Workers
	rootCmd.AddCommand(queueWorkCmd)

	// Admin
	rootCmd.AddCommand(notificationsCmd)
	rootCmd.AddCommand(notificationsClearCmd)
	rootCmd.AddCommand(ordersExportCmd)
}
