package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/avialab/flightorders/api"
	"github.com/avialab/flightorders/config"
	"github.com/avialab/flightorders/internal/service/flights"
	"github.com/avialab/flightorders/internal/service/order"
	"github.com/avialab/flightorders/internal/service/reference"
	"github.com/gin-gonic/gin"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Run starts the HTTP server and blocks until the context is canceled or
// the server fails. Shutdown drains in-flight requests for up to 5s.
func Run(ctx context.Context, cfg *config.Config, flightSvc flights.FlightUseCase, orderSvc order.OrderUseCase, refSvc reference.ReferenceUseCase) error {
	srv := &http.Server{
		Addr:    cfg.HTTP.Address,
		Handler: newRouter(cfg, flightSvc, orderSvc, refSvc),
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	}
}

func newRouter(cfg *config.Config, flightSvc flights.FlightUseCase, orderSvc order.OrderUseCase, refSvc reference.ReferenceUseCase) *gin.Engine {
	router := gin.Default()

	api.NewFlightHandler(flightSvc).Register(router.Group("/flights"))
	api.NewOrderHandler(orderSvc).Register(router.Group("/orders"))
	api.NewReferenceHandler(refSvc).Register(router.Group("/"))

	if cfg.HTTP.SwaggerDir != "" {
		router.StaticFS("/swagger", http.Dir(cfg.HTTP.SwaggerDir))
		router.GET("/docs/*any", gin.WrapH(httpSwagger.Handler(
			httpSwagger.URL("/swagger/openapi.json"),
		)))
	}

	return router
}
