package main

import (
	arcflash "ArcStudio/internal/calc/arcflash"
	detailed "ArcStudio/internal/calc/detailed"
	batch "ArcStudio/internal/calc/premium/batch"
	importer "ArcStudio/internal/calc/premium/importer"
	report "ArcStudio/internal/calc/report"
	info "ArcStudio/internal/info"
	ratelimit "ArcStudio/internal/ratelimit"
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
)

var wg sync.WaitGroup

func CORS(mux *mux.Router) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		mux.ServeHTTP(w, r)
	})
}

func HandleList(mux *mux.Router) {
	limiter := ratelimit.NewIPRateLimiter(10, 30)

	api := mux.PathPrefix("/api/v1").Subrouter()
	api.Use(limiter.Middleware)

	calcH := &arcflash.Handler{}
	detailedH := &detailed.Handler{}
	batchH := &batch.Handler{}
	importerH := &importer.Handler{}
	reportH := &report.Handler{}

	api.HandleFunc("/calculate", calcH.Calc).Methods("POST")
	api.HandleFunc("/calculate/detailed", detailedH.Calc).Methods("POST")
	api.HandleFunc("/batch/calculate", batchH.Calc).Methods("POST")
	api.HandleFunc("/batch/import", importerH.Equipment).Methods("POST")
	api.HandleFunc("/report/pdf", reportH.Generate).Methods("POST")

	api.HandleFunc("/health", info.Health).Methods("GET")
	api.HandleFunc("/standards-info", info.StandardsInfo).Methods("GET")

	mux.HandleFunc("/", info.Root).Methods("GET")
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment defaults")
	}
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	mux := mux.NewRouter()
	HandleList(mux)
	handler := CORS(mux)

	server := &http.Server{
		Addr:    ":" + port,
		Handler: handler,
	}

	log.Println("Starting server on :" + port)
	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("Server error: %v", err)
		}
	}()

	<-ctx.Done()
	fmt.Println("Shutdown signal received!")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server shutdown error: %v", err)
	}
	log.Println("Server stopped")

	wg.Wait()
}
