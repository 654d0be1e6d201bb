package main

import (
	"context"
	"net/http"
	"os"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/Joy-it-code/ecommerce-platform2/pkg/gateway"
	"github.com/Joy-it-code/ecommerce-platform2/pkg/health"
	"github.com/Joy-it-code/ecommerce-platform2/pkg/logger"
	"github.com/Joy-it-code/ecommerce-platform2/pkg/metrics"
	"github.com/Joy-it-code/ecommerce-platform2/pkg/otel"
)

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func main() {
	logger.Init("gateway")
	defer logger.Log.Sync()

	tp, shutdown, err := otel.InitTracing(otel.Config{
		ServiceName: "gateway",
		Host:        os.Getenv("OTEL_HOST"),
		Probability: 1.0,
	})
	if err != nil {
		logger.Log.Fatal("init tracing", zap.Error(err))
	}
	defer shutdown(context.Background())
	tracer := tp.Tracer("gateway")

	gw, err := gateway.New(gateway.Backends{
		Catalog: envOr("CATALOG_URL", "http://localhost:8081"),
		Cart:    envOr("CART_URL", "http://localhost:8082"),
		Orders:  envOr("ORDERS_URL", "http://localhost:8083"),
	})
	if err != nil {
		logger.Log.Fatal("configure gateway", zap.Error(err))
	}

	r := mux.NewRouter()
	r.Use(otel.Middleware(tracer), logger.Middleware, metrics.NewHTTP("gateway").Middleware)

	r.Handle("/health", health.NewHandler("gateway")).Methods(http.MethodGet)
	r.Handle("/metrics", metrics.Handler()).Methods(http.MethodGet)
	r.PathPrefix("/").Handler(gw)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	logger.Log.Info("listening", zap.String("addr", ":"+port))
	if err := http.ListenAndServe(":"+port, r); err != nil {
		logger.Log.Fatal("server closed", zap.Error(err))
	}
}
