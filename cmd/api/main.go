package main

import (
	"database/sql"
	"net/http"
	"time"

	"github.com/ecobazaar/ecobazaar-backend/internal/config"
	"github.com/ecobazaar/ecobazaar-backend/internal/modules/admin"
	"github.com/ecobazaar/ecobazaar-backend/internal/modules/auth"
	"github.com/ecobazaar/ecobazaar-backend/internal/modules/cart"
	"github.com/ecobazaar/ecobazaar-backend/internal/modules/catalog"
	"github.com/ecobazaar/ecobazaar-backend/internal/modules/offer"
	"github.com/ecobazaar/ecobazaar-backend/internal/modules/order"
	"github.com/ecobazaar/ecobazaar-backend/internal/modules/seller"
	"github.com/ecobazaar/ecobazaar-backend/internal/modules/user"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"
)

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})

	cfg := config.Load(log)
	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		log.SetLevel(level)
	} else {
		log.Warnf("invalid log level %q, staying on info", cfg.LogLevel)
	}
	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET must be set")
	}

	db, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("opening database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatalf("pinging database: %v", err)
	}
	log.Info("connected to postgres")

	// ── Router ──────────────────────────────────────────────
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(requestLogger(log))
	router.Use(middleware.Recoverer)

	authn := auth.Middleware(cfg.JWTSecret, log)

	// ── Identity ────────────────────────────────────────────
	userRepo := user.NewPostgresRepository(db)
	userService := user.NewService(userRepo)

	authService := auth.NewService(userRepo, cfg.JWTSecret)
	auth.NewHandler(authService).RegisterRoutes(router)

	// ── Catalog ─────────────────────────────────────────────
	catalogRepo := catalog.NewPostgresRepository(db)
	catalogService := catalog.NewService(catalogRepo)
	catalog.NewHandler(catalogService, userService).RegisterRoutes(router, authn)

	// ── Cart ────────────────────────────────────────────────
	var cartStore cart.Store
	if cfg.RedisURL != "" {
		redisStore, err := cart.NewRedisStore(cfg.RedisURL)
		if err != nil {
			log.Fatalf("connecting to redis: %v", err)
		}
		defer redisStore.Close()
		cartStore = redisStore
		log.Info("carts persisted in redis")
	} else {
		cartStore = cart.NewMemoryStore()
		log.Info("carts held in memory")
	}
	cartService := cart.NewService(cartStore, catalogService, log)
	cart.NewHandler(cartService).RegisterRoutes(router, authn)

	// ── Offers ──────────────────────────────────────────────
	generator := offer.NewGenerator(offer.GeneratorConfig{
		Count:         cfg.OfferCount,
		Duration:      time.Duration(cfg.OfferDurationHours) * time.Hour,
		FallbackPrice: cfg.OfferFallbackPrice,
	})
	offerService := offer.NewService(generator, catalogService, log)
	offer.NewHandler(offerService).RegisterRoutes(router)

	// ── Sellers & Orders ────────────────────────────────────
	sellerRepo := seller.NewPostgresRepository(db)
	sellerService := seller.NewService(sellerRepo, log)
	seller.NewHandler(sellerService).RegisterRoutes(router, authn)

	orderRepo := order.NewPostgresRepository(db)
	orderService := order.NewService(orderRepo, cartService, catalogService, sellerService, log)
	order.NewHandler(orderService).RegisterRoutes(router, authn)

	// ── Admin ───────────────────────────────────────────────
	adminRepo := admin.NewPostgresRepository(db)
	adminService := admin.NewService(adminRepo, userRepo, sellerService, log)
	admin.NewHandler(adminService).RegisterRoutes(router, authn)

	// ── Start Server ────────────────────────────────────────
	log.Infof("ecobazaar API server starting on :%s", cfg.AppPort)
	log.Fatal(http.ListenAndServe(":"+cfg.AppPort, router))
}

// requestLogger logs each request with its method, path, status and latency.
func requestLogger(log *logrus.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)
			log.WithFields(logrus.Fields{
				"method":     r.Method,
				"path":       r.URL.Path,
				"status":     ww.Status(),
				"duration":   time.Since(start).String(),
				"request_id": middleware.GetReqID(r.Context()),
			}).Info("request completed")
		})
	}
}
