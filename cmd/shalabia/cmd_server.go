package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/shalabia/storefront/app/routes"
	"github.com/shalabia/storefront/internal/server"
	"github.com/shalabia/storefront/pkg/kv"
	"github.com/shalabia/storefront/pkg/router"
	"github.com/shalabia/storefront/pkg/ws"
)

// shalabia serve — start the HTTP server.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return server.Start()
	},
}

// shalabia route:list — print all registered routes.
var routeListCmd = &cobra.Command{
	Use:   "route:list",
	Short: "List all registered named routes",
	RunE: func(cmd *cobra.Command, args []string) error {
		r := router.New()
		routes.RegisterAPI(r, kv.NewMemoryDriver(), ws.NewHub())

		infos := r.Routes()
		if len(infos) == 0 {
			fmt.Println("No named routes registered.")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "NAME\tPATH")
		fmt.Fprintln(w, "----\t----")
		for _, ri := range infos {
			fmt.Fprintf(w, "%s\t%s\n", ri[0], ri[1])
		}
		return w.Flush()
	},
}
