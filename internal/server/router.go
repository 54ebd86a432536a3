package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	mediacontroller "github.com/shammazp/restaurant-backend/internal/media/controller"
	menucontroller "github.com/shammazp/restaurant-backend/internal/menu/controller"
	ordercontroller "github.com/shammazp/restaurant-backend/internal/order/controller"
)

func NewRouter(
	orderCtrl *ordercontroller.OrderController,
	uploadCtrl *mediacontroller.UploadController,
	menuCtrl *menucontroller.MenuController,
	logger *zap.Logger,
) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(requestLogger(logger))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.Route("/api", func(r chi.Router) {
		r.Route("/orders", func(r chi.Router) {
			r.Post("/", orderCtrl.CreateOrder)
			r.Get("/{orderId}", orderCtrl.GetOrder)
			r.Put("/{orderId}/status", orderCtrl.UpdateStatus)
			r.Put("/{orderId}/payment", orderCtrl.UpdatePaymentStatus)
			// Orders are never hard-deleted; DELETE runs the cancel transition.
			r.Delete("/{orderId}", orderCtrl.CancelOrder)
		})

		r.Post("/menu-items/search", menuCtrl.SearchMenuItems)

		r.Route("/restaurants/{restaurantId}", func(r chi.Router) {
			r.Put("/logo", uploadCtrl.UploadLogo)
			r.Delete("/logo", uploadCtrl.DeleteLogo)
			r.Put("/cover-images", uploadCtrl.UploadCoverImages)
			r.Delete("/cover-images", uploadCtrl.DeleteCoverImages)
		})
	})

	return r
}

func requestLogger(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)
			logger.Info("request completed",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Int("bytes", ww.BytesWritten()))
		})
	}
}
