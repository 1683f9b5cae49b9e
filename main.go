package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"Archwire/internal/calc/curve"
	"Archwire/internal/calc/dashboard"
	"Archwire/internal/calc/force"
	"Archwire/internal/calc/premium/autodesign"
	"Archwire/internal/calc/premium/batch"
	"Archwire/internal/calc/premium/export"
	"Archwire/internal/calc/premium/importer"
	"Archwire/internal/calc/premium/recommend"
	"Archwire/internal/calc/report"
	"Archwire/internal/config"
	"Archwire/internal/httpx"
	"Archwire/internal/middleware"
	"Archwire/internal/web"
	"Archwire/pkg/logger"
	"Archwire/pkg/metrics"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"
)

const (
	readTimeout       = 10 * time.Second
	writeTimeout      = 30 * time.Second
	idleTimeout       = 60 * time.Second
	readHeaderTimeout = 5 * time.Second
	shutdownTimeout   = 5 * time.Second
)

// HandleList registers every route on router.
func HandleList(router *mux.Router, cfg *config.Config, log logger.Logger) {
	cal := cfg.Calibration

	limiter := middleware.NewIPRateLimiter(rate.Limit(cfg.RateLimit), cfg.RateBurst)

	api := router.PathPrefix("/api").Subrouter()
	api.Use(middleware.Observe(log), limiter.LimitMiddleware, middleware.MaxBytes(cfg.MaxUploadBytes))

	curveH := &curve.Handler{Cal: cal}
	forceH := &force.Handler{Cal: cal}
	dashboardH := &dashboard.Handler{Cal: cal}
	batchH := &batch.Handler{Cal: cal}
	recommendH := &recommend.Handler{Cal: cal}
	windowH := &autodesign.Handler{Cal: cal}
	importH := &importer.Handler{Cal: cal}
	exportH := &export.Handler{Cal: cal}
	reportH := &report.Handler{Cal: cal}

	api.HandleFunc("/catalog", dashboardH.Catalog).Methods("GET")

	api.HandleFunc("/tools/curve/calc", curveH.Calc).Methods("POST")
	api.HandleFunc("/tools/force/calc", forceH.Calc).Methods("POST")
	api.HandleFunc("/tools/dashboard/calc", dashboardH.Calc).Methods("POST")
	api.HandleFunc("/tools/batch/calc", batchH.Calc).Methods("POST")
	api.HandleFunc("/tools/recommend/calc", recommendH.Wire).Methods("POST")
	api.HandleFunc("/tools/window/calc", windowH.Window).Methods("POST")

	api.HandleFunc("/tools/import/xlsx", importH.Setups).Methods("POST")
	api.HandleFunc("/tools/export/xlsx", exportH.Workbook).Methods("POST")
	api.HandleFunc("/tools/report/pdf", reportH.Generate).Methods("POST")

	router.Handle("/metrics", promhttp.HandlerFor(metrics.GetRegistry(), promhttp.HandlerOpts{})).Methods("GET")
	router.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		httpx.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods("GET")

	router.PathPrefix("/").Handler(web.Handler())
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Load(ctx)
	if err != nil {
		os.Stderr.WriteString("failed to load config: " + err.Error() + "\n")
		os.Exit(1)
	}
	if err := logger.Init(cfg.LogFormat); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		os.Exit(1)
	}
	log := logger.Named("server")
	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		log.Warn(ctx, "invalid log_level; falling back to info", logger.String("log_level", cfg.LogLevel), logger.Error(err))
		_ = logger.SetLevelString("info")
	}

	router := mux.NewRouter()
	router.Use(middleware.RequestID)
	HandleList(router, cfg, logger.Named("http"))

	server := &http.Server{
		Addr:              cfg.Addr,
		Handler:           middleware.CORS(cfg.CORSOrigin, router),
		ReadTimeout:       readTimeout,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       idleTimeout,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		log.Info(ctx, "starting server", logger.String("addr", cfg.Addr), logger.Any("tls", cfg.TLS()))
		var err error
		if cfg.TLS() {
			err = server.ListenAndServeTLS(cfg.TLSCert, cfg.TLSKey)
		} else {
			err = server.ListenAndServe()
		}
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error(ctx, "server error", logger.Error(err))
			cancel()
		}
	}()

	<-ctx.Done()
	log.Info(context.Background(), "shutdown signal received, closing active connections")

	shutdownCtx, stop := context.WithTimeout(context.Background(), shutdownTimeout)
	defer stop()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error(shutdownCtx, "server shutdown failed", logger.Error(err))
	}
	<-done
	log.Info(shutdownCtx, "server stopped")
}
