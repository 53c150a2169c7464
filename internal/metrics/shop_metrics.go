package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"
)

// ShopMetrics holds the domain counters. A nil *ShopMetrics is valid and
// records nothing.
type ShopMetrics struct {
	cartItemsAdded   prometheus.Counter
	ordersCreated    prometheus.Counter
	orderTotal       prometheus.Histogram
	paymentsRecorded *prometheus.CounterVec
	customersCreated prometheus.Counter
	productsCreated  prometheus.Counter
}

func NewShopMetrics() *ShopMetrics {
	return NewShopMetricsWithRegisterer(prometheus.DefaultRegisterer)
}

func NewShopMetricsWithRegisterer(registerer prometheus.Registerer) *ShopMetrics {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	return &ShopMetrics{
		cartItemsAdded: registerCounter(registerer, prometheus.CounterOpts{
			Name: "shop_cart_items_added_total",
			Help: "Total number of add-to-cart operations",
		}),
		ordersCreated: registerCounter(registerer, prometheus.CounterOpts{
			Name: "shop_orders_created_total",
			Help: "Total number of orders created at checkout",
		}),
		orderTotal: registerHistogram(registerer, prometheus.HistogramOpts{
			Name:    "shop_order_total_amount",
			Help:    "Order totals at checkout",
			Buckets: []float64{10, 25, 50, 100, 250, 500, 1000, 2500, 5000, 10000},
		}),
		paymentsRecorded: registerCounterVec(registerer, prometheus.CounterOpts{
			Name: "shop_payments_recorded_total",
			Help: "Total number of payments recorded by payment type",
		}, []string{"payment_type"}),
		customersCreated: registerCounter(registerer, prometheus.CounterOpts{
			Name: "shop_customers_created_total",
			Help: "Total number of registered customers",
		}),
		productsCreated: registerCounter(registerer, prometheus.CounterOpts{
			Name: "shop_products_created_total",
			Help: "Total number of products created",
		}),
	}
}

func (m *ShopMetrics) RecordCartItemAdded() {
	if m == nil {
		return
	}
	m.cartItemsAdded.Inc()
}

func (m *ShopMetrics) RecordOrderCreated(total decimal.Decimal) {
	if m == nil {
		return
	}
	m.ordersCreated.Inc()
	m.orderTotal.Observe(total.InexactFloat64())
}

func (m *ShopMetrics) RecordPayment(paymentType string) {
	if m == nil {
		return
	}
	m.paymentsRecorded.WithLabelValues(paymentType).Inc()
}

func (m *ShopMetrics) RecordCustomerCreated() {
	if m == nil {
		return
	}
	m.customersCreated.Inc()
}

func (m *ShopMetrics) RecordProductCreated() {
	if m == nil {
		return
	}
	m.productsCreated.Inc()
}

func registerCounter(registerer prometheus.Registerer, opts prometheus.CounterOpts) prometheus.Counter {
	counter := prometheus.NewCounter(opts)
	registerer.MustRegister(counter)
	return counter
}

func registerCounterVec(registerer prometheus.Registerer, opts prometheus.CounterOpts, labels []string) *prometheus.CounterVec {
	vec := prometheus.NewCounterVec(opts, labels)
	registerer.MustRegister(vec)
	return vec
}

func registerHistogram(registerer prometheus.Registerer, opts prometheus.HistogramOpts) prometheus.Histogram {
	histogram := prometheus.NewHistogram(opts)
	registerer.MustRegister(histogram)
	return histogram
}
