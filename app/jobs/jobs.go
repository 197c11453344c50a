// Package jobs defines the storefront's background jobs and registers them
// with the queue.
package jobs

import (
	"github.com/shalabia/storefront/app/repositories"
	"github.com/shalabia/storefront/pkg/queue"
)

// ordersRepo is injected at boot; jobs are deserialized from the queue and
// cannot carry live dependencies in their payload.
var ordersRepo *repositories.OrderRepository

// Configure wires the repositories the jobs need. Call once at boot,
// before queue.StartWorkers.
func Configure(orders *repositories.OrderRepository) {
	ordersRepo = orders
}

// Register makes every job type known to the queue for deserialization.
func Register() {
	queue.Register("jobs.OrderExportJob", func() queue.Job { return &OrderExportJob{} })
	queue.Register("*jobs.OrderExportJob", func() queue.Job { return &OrderExportJob{} })
	queue.Register("jobs.MailRelayJob", func() queue.Job { return &MailRelayJob{} })
	queue.Register("*jobs.MailRelayJob", func() queue.Job { return &MailRelayJob{} })
}
