package router

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/raayanhq/raayan/internal/handler"
	"github.com/raayanhq/raayan/internal/observability"
)

func Setup(h *handler.Handler) http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(metricsMiddleware)
	r.Use(middleware.Timeout(60 * time.Second))

	// Routes
	r.Post("/compare/food", h.CompareFood)
	r.Post("/compare/travel", h.CompareTravel)
	r.Delete("/cache/searches", h.ClearSearchCache)

	r.Post("/searches", h.SaveSearch)
	r.Get("/searches", h.ListSearches)
	r.Delete("/searches/{searchID}", h.DeleteSearch)

	r.Post("/bookings", h.CreateBooking)
	r.Get("/bookings", h.ListBookings)
	r.Get("/bookings/{bookingID}", h.GetBooking)
	r.Patch("/bookings/{bookingID}/status", h.UpdateBookingStatus)
	r.Post("/bookings/{bookingID}/confirm", h.ConfirmBooking)
	r.Post("/bookings/{bookingID}/cancel", h.CancelBooking)

	r.Get("/analytics/spend", h.SpendSummary)
	r.Get("/analytics/savings", h.SavingsAnalysis)
	r.Get("/analytics/platforms", h.TopPlatforms)

	r.Get("/restaurants/search", h.SuggestRestaurants)
	r.Get("/locations/search", h.SuggestLocations)

	r.Get("/health", healthCheck)
	r.Handle("/metrics", promhttp.Handler())

	return r
}

func metricsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		path := r.URL.Path
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			path = rctx.RoutePattern()
		}
		status := strconv.Itoa(ww.Status())

		observability.HTTPRequestsTotal.WithLabelValues(r.Method, path, status).Inc()
		observability.HTTPRequestDuration.WithLabelValues(r.Method, path, status).Observe(time.Since(start).Seconds())
	})
}

func healthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}
