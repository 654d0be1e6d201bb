package main

import (
	"context"
	"net/http"
	"os"

	"github.com/gorilla/mux"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"

	"github.com/Joy-it-code/ecommerce-platform2/pkg/health"
	"github.com/Joy-it-code/ecommerce-platform2/pkg/logger"
	"github.com/Joy-it-code/ecommerce-platform2/pkg/metrics"
	"github.com/Joy-it-code/ecommerce-platform2/pkg/order"
	"github.com/Joy-it-code/ecommerce-platform2/pkg/order/memory"
	"github.com/Joy-it-code/ecommerce-platform2/pkg/otel"
)

// @title Order Service API
// @version 1.0
// @description Order intake service of the ecommerce platform
// @BasePath /
func main() {
	logger.Init("orders")
	defer logger.Log.Sync()

	tp, shutdown, err := otel.InitTracing(otel.Config{
		ServiceName: "orders",
		Host:        os.Getenv("OTEL_HOST"),
		Probability: 1.0,
	})
	if err != nil {
		logger.Log.Fatal("init tracing", zap.Error(err))
	}
	defer shutdown(context.Background())
	tracer := tp.Tracer("orders")

	r := mux.NewRouter()
	r.Use(otel.Middleware(tracer), logger.Middleware, metrics.NewHTTP("orders").Middleware)

	r.Handle("/health", health.NewHandler("orders")).Methods(http.MethodGet)
	r.Handle("/metrics", metrics.Handler()).Methods(http.MethodGet)
	r.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	order.NewHandler(memory.New()).Register(r)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8083"
	}
	logger.Log.Info("listening", zap.String("addr", ":"+port))
	if err := http.ListenAndServe(":"+port, r); err != nil {
		logger.Log.Fatal("server closed", zap.Error(err))
	}
}
