package main

import (
	"context"
	"net/http"
	"os"

	"github.com/gorilla/mux"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"

	"github.com/Joy-it-code/ecommerce-platform2/pkg/catalog"
	"github.com/Joy-it-code/ecommerce-platform2/pkg/catalog/memory"
	"github.com/Joy-it-code/ecommerce-platform2/pkg/health"
	"github.com/Joy-it-code/ecommerce-platform2/pkg/logger"
	"github.com/Joy-it-code/ecommerce-platform2/pkg/metrics"
	"github.com/Joy-it-code/ecommerce-platform2/pkg/otel"
)

// @title Catalog Service API
// @version 1.0
// @description Product catalog service of the ecommerce platform
// @BasePath /
func main() {
	logger.Init("catalog")
	defer logger.Log.Sync()

	tp, shutdown, err := otel.InitTracing(otel.Config{
		ServiceName: "catalog",
		Host:        os.Getenv("OTEL_HOST"),
		Probability: 1.0,
	})
	if err != nil {
		logger.Log.Fatal("init tracing", zap.Error(err))
	}
	defer shutdown(context.Background())
	tracer := tp.Tracer("catalog")

	r := mux.NewRouter()
	r.Use(otel.Middleware(tracer), logger.Middleware, metrics.NewHTTP("catalog").Middleware)

	r.Handle("/health", health.NewHandler("catalog")).Methods(http.MethodGet)
	r.Handle("/metrics", metrics.Handler()).Methods(http.MethodGet)
	r.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	catalog.NewHandler(memory.New()).Register(r)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8081"
	}
	logger.Log.Info("listening", zap.String("addr", ":"+port))
	if err := http.ListenAndServe(":"+port, r); err != nil {
		logger.Log.Fatal("server closed", zap.Error(err))
	}
}
