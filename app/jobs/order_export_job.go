package jobs

import (
	"fmt"
	"strings"

	"github.com/shalabia/storefront/pkg/logger"
	"github.com/shalabia/storefront/pkg/storage"
)

// OrderExportJob writes the full order history as a CSV file to the
// configured storage disk. Dispatched after every order and runnable on
// demand via the orders:export CLI command.
type OrderExportJob struct {
	Date string `json:"date"` // YYYY-MM-DD, names the export file
}

// ExportPath returns the disk path the export for date lands at.
func ExportPath(date string) string {
	return fmt.Sprintf("exports/orders-%s.csv", date)
}

func (j *OrderExportJob) Handle() error {
	if ordersRepo == nil {
		return fmt.Errorf("jobs: order repository not configured")
	}

	orders := ordersRepo.All()

	var b strings.Builder
	b.WriteString("OrderID,Date,Customer,Phone,Area,Items,Total,Status\n")
	for _, o := range orders {
		fmt.Fprintf(&b, "%d,%q,%q,%s,%q,%d,%d,%s\n",
			o.ID, o.Date, o.Customer.Name, o.Customer.Phone, o.Customer.Area,
			len(o.Items), o.Total, o.Status)
	}

	path := ExportPath(j.Date)
	if err := storage.Put(path, []byte(b.String())); err != nil {
		return fmt.Errorf("jobs: write export: %w", err)
	}

	logger.Info("orders exported", "path", path, "orders", len(orders))
	return nil
}
