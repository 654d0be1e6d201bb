package main

import (
	"context"
	"net/http"
	"os"

	"github.com/gorilla/mux"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"

	"github.com/Joy-it-code/ecommerce-platform2/pkg/cart"
	"github.com/Joy-it-code/ecommerce-platform2/pkg/cart/memory"
	"github.com/Joy-it-code/ecommerce-platform2/pkg/health"
	"github.com/Joy-it-code/ecommerce-platform2/pkg/logger"
	"github.com/Joy-it-code/ecommerce-platform2/pkg/metrics"
	"github.com/Joy-it-code/ecommerce-platform2/pkg/otel"
)

// @title Cart Service API
// @version 1.0
// @description Shopping cart service of the ecommerce platform
// @BasePath /
func main() {
	logger.Init("cart")
	defer logger.Log.Sync()

	tp, shutdown, err := otel.InitTracing(otel.Config{
		ServiceName: "cart",
		Host:        os.Getenv("OTEL_HOST"),
		Probability: 1.0,
	})
	if err != nil {
		logger.Log.Fatal("init tracing", zap.Error(err))
	}
	defer shutdown(context.Background())
	tracer := tp.Tracer("cart")

	r := mux.NewRouter()
	r.Use(otel.Middleware(tracer), logger.Middleware, metrics.NewHTTP("cart").Middleware)

	r.Handle("/health", health.NewHandler("cart")).Methods(http.MethodGet)
	r.Handle("/metrics", metrics.Handler()).Methods(http.MethodGet)
	r.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	cart.NewHandler(memory.New()).Register(r)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8082"
	}
	logger.Log.Info("listening", zap.String("addr", ":"+port))
	if err := http.ListenAndServe(":"+port, r); err != nil {
		logger.Log.Fatal("server closed", zap.Error(err))
	}
}
