package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/coursecast/coursecast/internal/catalog"
	"github.com/coursecast/coursecast/internal/database"
	"github.com/coursecast/coursecast/internal/earnings"
	"github.com/coursecast/coursecast/internal/engagement"
	"github.com/coursecast/coursecast/internal/entitlement"
	"github.com/coursecast/coursecast/internal/gateway"
	"github.com/coursecast/coursecast/internal/handler"
	"github.com/coursecast/coursecast/internal/logger"
	"github.com/coursecast/coursecast/internal/metrics"
	"github.com/coursecast/coursecast/internal/repository"
	"github.com/coursecast/coursecast/internal/royalty"
	"github.com/coursecast/coursecast/internal/settlement"
	"github.com/coursecast/coursecast/internal/subscription"
)

// Services bundles everything the router serves
type Services struct {
	Settlement   settlement.Service
	Entitlement  entitlement.Service
	Earnings     earnings.Service
	Royalty      royalty.Service
	Catalog      catalog.Service
	Engagement   engagement.Service
	Subscription subscription.Service
	Gateway      gateway.Client
	Ledger       repository.Ledger
}

type Server struct {
	httpServer *http.Server
	dbPool     database.Pool
}

// NewServer creates a new Server instance
func NewServer(port int, apiKey string, trustedProxies []string, dbPool database.Pool, services Services) *Server {
	r := chi.NewRouter()

	// Middleware stack
	// Chi middleware executes in order defined (outermost to innermost)
	detector := NewSuspiciousActivityDetector()

	r.Use(SecurityHeadersMiddleware())
	r.Use(AuthMiddleware(apiKey, trustedProxies, detector))
	r.Use(SecurityLoggingMiddleware(trustedProxies, detector))
	r.Use(RequestSizeLimitMiddleware(1 << 20)) // 1MB limit
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	// Health check routes (unversioned)
	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(dbPool))

	// Version endpoint (public, for deployment verification)
	r.Get("/version", handler.HandleVersion())

	// Metrics endpoint (public, for Prometheus scraping)
	r.Handle("/metrics", promhttp.Handler())

	purchaseHandler := handler.NewPurchaseHandler(services.Settlement, services.Ledger)
	webhookHandler := handler.NewWebhookHandler(services.Settlement, services.Entitlement, services.Gateway)
	accessHandler := handler.NewAccessHandler(services.Entitlement)
	earningsHandler := handler.NewEarningsHandler(services.Earnings, services.Royalty)
	catalogHandler := handler.NewCatalogHandler(services.Catalog)
	engagementHandler := handler.NewEngagementHandler(services.Engagement)
	subscriptionHandler := handler.NewSubscriptionHandler(services.Subscription)

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		// Purchases and settlement
		r.Post("/courses/{videoID}/purchase", purchaseHandler.HandleInitiatePurchase)
		r.Get("/my-purchases", purchaseHandler.HandleGetMyPurchases)
		r.Route("/payments", func(r chi.Router) {
			r.Post("/webhook", webhookHandler.HandlePaymentWebhook)
			r.Post("/external", webhookHandler.HandleExternalPurchase)
		})

		// Streaming subscription
		r.Route("/subscribe", func(r chi.Router) {
			r.Post("/streaming", subscriptionHandler.HandleSubscribe)
			r.Delete("/streaming", subscriptionHandler.HandleUnsubscribe)
		})

		// Creator earnings
		r.Route("/creator", func(r chi.Router) {
			r.Get("/earnings", earningsHandler.HandleGetEarnings)
			r.Get("/stats", earningsHandler.HandleGetCreatorStats)
			r.Get("/royalties", earningsHandler.HandleGetRoyalties)
			r.Get("/videos", catalogHandler.HandleGetMyVideos)
			r.Post("/videos", catalogHandler.HandleCreateVideo)
			r.Route("/videos/{id}", func(r chi.Router) {
				r.Put("/", catalogHandler.HandleUpdateVideo)
				r.Delete("/", catalogHandler.HandleDeleteVideo)
				r.Post("/publish", catalogHandler.HandlePublishVideo)
			})
		})

		// Catalog browsing
		r.Get("/categories", catalogHandler.HandleGetCategories)
		r.Get("/categories/{slug}", catalogHandler.HandleGetCategoryBySlug)
		r.Get("/categories/{id}/videos", catalogHandler.HandleGetVideosByCategory)
		r.Get("/subcategories", catalogHandler.HandleGetSubcategories)

		r.Route("/videos", func(r chi.Router) {
			r.Get("/", catalogHandler.HandleListVideos)
			r.Get("/search", catalogHandler.HandleSearchVideos)
			r.Get("/trending", catalogHandler.HandleGetTrending)

			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", catalogHandler.HandleGetVideo)
				r.Post("/view", catalogHandler.HandleRecordView)
				r.Get("/access", accessHandler.HandleHasAccess)
				r.Get("/purchased", accessHandler.HandleAlreadyPurchased)

				// Engagement
				r.Post("/watch", engagementHandler.HandleRecordWatch)
				r.Post("/like", engagementHandler.HandleLike)
				r.Post("/dislike", engagementHandler.HandleDislike)
				r.Delete("/reaction", engagementHandler.HandleRemoveReaction)
				r.Post("/favorite", engagementHandler.HandleAddFavorite)
				r.Delete("/favorite", engagementHandler.HandleRemoveFavorite)
				r.Get("/comments", engagementHandler.HandleGetComments)
				r.Post("/comments", engagementHandler.HandleAddComment)
			})
		})

		r.Get("/favorites", engagementHandler.HandleGetFavorites)
		r.Get("/watch-history", engagementHandler.HandleGetWatchHistory)
		r.Delete("/comments/{commentID}", engagementHandler.HandleDeleteComment)
	})

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", port),
			Handler:           r,
			ReadHeaderTimeout: 5 * time.Second,
		},
		dbPool: dbPool,
	}
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{
		ResponseWriter: w,
		statusCode:     http.StatusOK, // default status
	}
}

func (rw *responseWriter) WriteHeader(statusCode int) {
	if !rw.written {
		rw.statusCode = statusCode
		rw.written = true
		rw.ResponseWriter.WriteHeader(statusCode)
	}
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		// Skip logging for health check endpoints and metrics
		// Use HasPrefix to catch potential variations (e.g. /healthz/)
		if strings.HasPrefix(r.URL.Path, "/healthz") ||
			strings.HasPrefix(r.URL.Path, "/readyz") ||
			strings.HasPrefix(r.URL.Path, "/metrics") {
			next.ServeHTTP(w, r)
			return
		}

		// Generate unique request ID
		requestID := logger.GenerateRequestID()

		// Add request ID to context
		ctx := logger.WithRequestID(r.Context(), requestID)
		r = r.WithContext(ctx)

		// Get scoped logger
		log := logger.FromContext(ctx)

		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength,
			"user_agent", r.UserAgent())

		// Sanitize headers for logging
		sanitizedHeaders := make(http.Header)
		for k, v := range r.Header {
			if strings.EqualFold(k, HeaderAPIKey) || strings.EqualFold(k, HeaderAuthorization) {
				sanitizedHeaders[k] = []string{RedactedValue}
			} else {
				sanitizedHeaders[k] = v
			}
		}
		log.Debug(LogMsgRequestHeaders, "headers", sanitizedHeaders)

		// Wrap response writer to capture status code
		rw := newResponseWriter(w)

		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds(),
			"duration", duration)
	})
}

// Start starts the server
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
