package seeders

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/shalabia/storefront/app/catalog"
	"github.com/shalabia/storefront/app/models"
	"github.com/shalabia/storefront/app/repositories"
	"github.com/shalabia/storefront/config"
	"github.com/shalabia/storefront/pkg/auth"
	"github.com/shalabia/storefront/pkg/kv"
)

func init() {
	Register("users", SeedUsers)
	Register("catalog", SeedCatalog)
}

// SeedUsers creates the owner account plus a demo shopper, skipping any
// address that already exists.
func SeedUsers(store kv.Store) error {
	users := repositories.NewUserRepository(store)
	joined := time.Now().Format("1/2/2006")

	accounts := []models.User{
		{Name: "Shalabia Admin", Email: config.AdminEmail(), Password: "admin123", Role: models.RoleAdmin, JoinedAt: joined},
		{Name: "Demo Shopper", Email: "demo@shalabia.com", Password: "demo123", Role: models.RoleUser, JoinedAt: joined},
	}

	for _, u := range accounts {
		if _, ok := users.FindByEmail(u.Email); ok {
			continue
		}
		hashed, err := auth.HashPassword(u.Password)
		if err != nil {
			return err
		}
		u.Password = hashed
		if err := users.Create(u); err != nil {
			return err
		}
	}
	return nil
}

// SeedCatalog swaps the built-in collection for the products listed in the
// JSON file named by CATALOG_FILE. Without the variable it keeps the
// built-in three pieces.
func SeedCatalog(_ kv.Store) error {
	path := config.Get("CATALOG_FILE", "")
	if path == "" {
		return nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read catalog file: %w", err)
	}

	var items []models.Product
	if err := json.Unmarshal(raw, &items); err != nil {
		return fmt.Errorf("parse catalog file: %w", err)
	}
	if len(items) == 0 {
		return fmt.Errorf("catalog file %s holds no products", path)
	}

	catalog.Replace(items)
	return nil
}
