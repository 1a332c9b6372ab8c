package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// SaleMetrics records counters for completed sales and stock rejections.
type SaleMetrics struct {
	completed  *prometheus.CounterVec
	amount     *prometheus.HistogramVec
	rejections *prometheus.CounterVec
}

// NewSaleMetrics registers the sale metrics on the provided registerer.
func NewSaleMetrics(reg prometheus.Registerer) *SaleMetrics {
	if reg == nil {
		return &SaleMetrics{}
	}
	completed := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "sales_completed_total",
		Help: "Completed point-of-sale transactions.",
	}, []string{"mode_of_payment"})
	amount := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "sale_amount",
		Help:    "Total amount of completed sales in the shop currency.",
		Buckets: prometheus.ExponentialBuckets(1, 4, 8),
	}, []string{"mode_of_payment"})
	rejections := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "stock_rejections_total",
		Help: "Cart mutations rejected for insufficient available stock.",
	}, []string{"operation"})
	reg.MustRegister(completed, amount, rejections)
	return &SaleMetrics{
		completed:  completed,
		amount:     amount,
		rejections: rejections,
	}
}

// ObserveSale records a completed sale and its total amount.
func (s *SaleMetrics) ObserveSale(modeOfPayment string, totalAmount float64) {
	if s == nil || s.completed == nil {
		return
	}
	label := normalizeLabel(modeOfPayment)
	s.completed.WithLabelValues(label).Inc()
	s.amount.WithLabelValues(label).Observe(totalAmount)
}

// IncStockRejection increments the rejection counter for the named operation.
func (s *SaleMetrics) IncStockRejection(operation string) {
	if s == nil || s.rejections == nil {
		return
	}
	s.rejections.WithLabelValues(normalizeLabel(operation)).Inc()
}

func normalizeLabel(value string) string {
	if value == "" {
		return "unknown"
	}
	return value
}
