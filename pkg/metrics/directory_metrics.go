package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/peoplekit/directory/modules/directory/domain/aggregates/employee"
	"github.com/peoplekit/directory/pkg/eventbus"
)

var employeeMutations = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "directory_employee_mutations_total",
		Help: "Employee directory mutations by operation.",
	},
	[]string{"operation"},
)

// RegisterDirectoryObservers counts employee mutations off the event bus.
func RegisterDirectoryObservers(bus eventbus.EventBus) {
	bus.Subscribe(func(*employee.CreatedEvent) {
		employeeMutations.WithLabelValues("create").Inc()
	})
	bus.Subscribe(func(*employee.UpdatedEvent) {
		employeeMutations.WithLabelValues("update").Inc()
	})
	bus.Subscribe(func(*employee.DeletedEvent) {
		employeeMutations.WithLabelValues("delete").Inc()
	})
}
