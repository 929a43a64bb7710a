package main

import (
	"encoding/json"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/fintrackhq/fintrack/internal/db"
	"github.com/fintrackhq/fintrack/internal/handlers"
	"github.com/fintrackhq/fintrack/internal/logger"
	"github.com/fintrackhq/fintrack/internal/services"
	"github.com/fintrackhq/fintrack/internal/store"
)

func main() {
	// .env is optional; real env vars win
	_ = godotenv.Load()

	zlog, err := logger.New()
	if err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}
	defer zlog.Sync()

	st, closeStore, err := buildStore(zlog)
	if err != nil {
		zlog.Fatal("Failed to initialize store", zap.Error(err))
	}
	defer closeStore()

	bus := store.NewBus()

	// Initialize services
	generatorService := services.NewGeneratorService(nil)
	summaryService := services.NewSummaryService()
	financeService := services.NewFinanceService(st, generatorService, summaryService, bus, zlog)
	categoryService := services.NewCategoryService(financeService)
	currencyService := services.NewCurrencyService(st, bus, zlog)
	authService := services.NewAuthService(st, zlog)

	// Initialize handlers
	financeHandler := handlers.NewFinanceHandler(financeService, categoryService)
	currencyHandler := handlers.NewCurrencyHandler(currencyService)
	authHandler := handlers.NewAuthHandler(authService)

	router := mux.NewRouter()

	// Health check endpoint
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{
			"status":  "healthy",
			"service": "fintrack-backend",
		})
	}).Methods(http.MethodGet)

	// Auth endpoints
	router.HandleFunc("/api/auth/signup", authHandler.HandleSignUp).Methods(http.MethodPost)
	router.HandleFunc("/api/auth/login", authHandler.HandleLogin).Methods(http.MethodPost)
	router.HandleFunc("/api/auth/google", authHandler.HandleFederatedLogin).Methods(http.MethodPost)
	router.HandleFunc("/api/auth/logout", authHandler.HandleLogout).Methods(http.MethodPost)
	router.HandleFunc("/api/auth/me", authHandler.HandleCurrentUser).Methods(http.MethodGet)

	// Finance endpoints
	router.HandleFunc("/api/users/{userID}/finance", financeHandler.HandleGetFinancialData).Methods(http.MethodGet)
	router.HandleFunc("/api/users/{userID}/transactions/{transactionID}/category", financeHandler.HandleCategorize).Methods(http.MethodPut)
	router.HandleFunc("/api/users/{userID}/transactions/uncategorized", financeHandler.HandleUncategorized).Methods(http.MethodGet)
	router.HandleFunc("/api/users/{userID}/expenses/by-category", financeHandler.HandleCategoryBreakdown).Methods(http.MethodGet)

	// Currency endpoints
	router.HandleFunc("/api/users/{userID}/currency", currencyHandler.HandleGetPreference).Methods(http.MethodGet)
	router.HandleFunc("/api/users/{userID}/currency", currencyHandler.HandleSetPreference).Methods(http.MethodPut)
	router.HandleFunc("/api/currency/convert", currencyHandler.HandleConvert).Methods(http.MethodGet)

	handler := corsMiddleware(loggingMiddleware(zlog)(router))

	// Get port from environment
	port := os.Getenv("SERVER_PORT")
	if port == "" {
		port = "8080"
	}

	zlog.Info("Server starting", zap.String("port", port))
	if err := http.ListenAndServe(":"+port, handler); err != nil {
		zlog.Fatal("Server stopped", zap.Error(err))
	}
}

// buildStore selects the persistence backend. STORE_BACKEND=memory runs fully
// in-process for demos; anything else uses the configured database.
func buildStore(zlog *zap.Logger) (store.Store, func(), error) {
	if os.Getenv("STORE_BACKEND") == "memory" {
		zlog.Info("Using in-memory store")
		return store.NewMemoryStore(), func() {}, nil
	}

	config := db.NewConfig()
	database, err := db.Connect(config)
	if err != nil {
		return nil, nil, err
	}
	if err := database.Health(); err != nil {
		database.Close()
		return nil, nil, err
	}
	zlog.Info("Database connection established", zap.String("driver", config.Driver))

	gormStore, err := store.NewGormStore(database)
	if err != nil {
		database.Close()
		return nil, nil, err
	}
	return gormStore, func() { database.Close() }, nil
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func loggingMiddleware(zlog *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			next.ServeHTTP(w, r)
			zlog.Debug("request handled",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Duration("duration", time.Since(start)))
		})
	}
}
