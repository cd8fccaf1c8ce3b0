package metrics

import (
	"net/http"

	"alu_portal/internal/usecase/interfaces"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registry holds the portal's business metrics on a private registry.
type Registry struct {
	reg                  *prometheus.Registry
	OrdersPlaced         prometheus.Counter
	PlacementFailures    prometheus.Counter
	StatusWriteFailures  prometheus.Counter
	CorruptCartRestores  prometheus.Counter
	PendingOrders        prometheus.Gauge
	BookedRevenue        prometheus.Gauge
}

var _ interfaces.IPortalMetrics = (*Registry)(nil)

func NewRegistry() *Registry {
	r := prometheus.NewRegistry()
	placed := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "alu_orders_placed_total",
		Help: "Orders committed with all their items.",
	})
	placementFailed := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "alu_order_placement_failed_total",
		Help: "Checkouts that failed and were rolled back.",
	})
	statusFailed := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "alu_order_status_write_failed_total",
		Help: "Optimistic status changes reverted after a failed write.",
	})
	cartCorrupted := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "alu_cart_restore_corrupted_total",
		Help: "Saved carts discarded because they could not be decoded.",
	})
	pending := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "alu_orders_pending",
		Help: "Orders currently in pending status.",
	})
	revenue := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "alu_booked_revenue",
		Help: "Sum of total price over non-cancelled orders.",
	})

	r.MustRegister(placed, placementFailed, statusFailed, cartCorrupted, pending, revenue)
	return &Registry{
		reg:                  r,
		OrdersPlaced:         placed,
		PlacementFailures:    placementFailed,
		StatusWriteFailures:  statusFailed,
		CorruptCartRestores:  cartCorrupted,
		PendingOrders:        pending,
		BookedRevenue:        revenue,
	}
}

func (r *Registry) OrderPlaced()          { r.OrdersPlaced.Inc() }
func (r *Registry) OrderPlacementFailed() { r.PlacementFailures.Inc() }
func (r *Registry) StatusWriteFailed()    { r.StatusWriteFailures.Inc() }
func (r *Registry) CartRestoreCorrupted() { r.CorruptCartRestores.Inc() }

func (r *Registry) SetDashboard(pendingCount int, bookedRevenue float64) {
	r.PendingOrders.Set(float64(pendingCount))
	r.BookedRevenue.Set(bookedRevenue)
}

func (r *Registry) Handler() http.Handler { return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{}) }
