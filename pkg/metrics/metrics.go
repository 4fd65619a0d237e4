package metrics

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics коллекторы prometheus для движка бронирований.
// Используется собственный registry, чтобы несколько экземпляров не конфликтовали.
type Metrics struct {
	registry *prometheus.Registry

	BookingRequests    *prometheus.CounterVec
	BookingTransitions *prometheus.CounterVec
	CityOccupancyRate  *prometheus.GaugeVec
	EstimatedRevenue   prometheus.Gauge
	ReportsGenerated   prometheus.Counter
}

// New создает и регистрирует коллекторы
func New(serviceName string) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	m := &Metrics{
		registry: prometheus.NewRegistry(),
		BookingRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "reservations_booking_requests_total",
			Help:        "Booking requests by result code",
			ConstLabels: constLabels,
		}, []string{"result"}),
		BookingTransitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "reservations_booking_transitions_total",
			Help:        "Booking status transitions by kind and outcome",
			ConstLabels: constLabels,
		}, []string{"transition", "success"}),
		CityOccupancyRate: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "reservations_city_occupancy_rate_percent",
			Help:        "Occupancy rate per city from the last daily report",
			ConstLabels: constLabels,
		}, []string{"city"}),
		EstimatedRevenue: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "reservations_estimated_revenue",
			Help:        "Estimated revenue for the date of the last daily report",
			ConstLabels: constLabels,
		}),
		ReportsGenerated: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "reservations_daily_reports_total",
			Help:        "Daily reports generated",
			ConstLabels: constLabels,
		}),
	}

	m.registry.MustRegister(
		m.BookingRequests,
		m.BookingTransitions,
		m.CityOccupancyRate,
		m.EstimatedRevenue,
		m.ReportsGenerated,
		collectors.NewGoCollector(),
	)

	return m
}

// ObserveBookingRequest учитывает запрос на бронирование с кодом результата
func (m *Metrics) ObserveBookingRequest(result string) {
	m.BookingRequests.WithLabelValues(result).Inc()
}

// ObserveTransition учитывает попытку смены статуса (confirm, cancel)
func (m *Metrics) ObserveTransition(transition string, success bool) {
	m.BookingTransitions.WithLabelValues(transition, strconv.FormatBool(success)).Inc()
}

// ObserveOccupancy обновляет показатели последнего отчета
func (m *Metrics) ObserveOccupancy(occupancyByCity map[string]float64, revenue float64) {
	m.CityOccupancyRate.Reset()
	for city, rate := range occupancyByCity {
		m.CityOccupancyRate.WithLabelValues(city).Set(rate)
	}
	m.EstimatedRevenue.Set(revenue)
	m.ReportsGenerated.Inc()
}

// Handler HTTP handler для отдачи метрик
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
