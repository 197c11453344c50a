package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shalabia/storefront/config"
	"github.com/shalabia/storefront/database/seeders"
	"github.com/shalabia/storefront/internal/server"
	"github.com/shalabia/storefront/pkg/kv"
)

// bootStore loads config and opens the configured key-value store.
func bootStore() (kv.Store, error) {
	if err := config.Load(); err != nil {
		return nil, err
	}
	return server.OpenStore()
}

// shalabia seed
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Run all store seeders",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := bootStore()
		if err != nil {
			return err
		}
		fmt.Println("Running seeders…")
		return seeders.RunAll(store)
	},
}
