package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"path/filepath"
	"time"

	"github.com/Domenick1991/airport-pps/api"
	"github.com/Domenick1991/airport-pps/config"
	"github.com/Domenick1991/airport-pps/internal/logger"
	"github.com/Domenick1991/airport-pps/internal/service/bags"
	"github.com/Domenick1991/airport-pps/internal/service/flights"
	"github.com/Domenick1991/airport-pps/internal/service/passengers"
	"github.com/gin-gonic/gin"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
)

const swaggerDocument = "passenger_processing.swagger.json"

type Services struct {
	Flights    flights.FlightUseCase
	Passengers passengers.PassengerUseCase
	Bags       bags.BagUseCase
}

type Servers struct {
	grpcServer *grpc.Server
	health     *health.Server
	httpServer *http.Server
}

// Run starts the gRPC health server and the HTTP API and blocks until ctx is
// cancelled or a server fails.
func Run(ctx context.Context, cfg *config.Config, services Services, log *logger.Logger) error {
	s := newServers(cfg, services, log)

	errCh := make(chan error, 2)

	lis, err := net.Listen("tcp", cfg.GRPC.Address)
	if err != nil {
		return fmt.Errorf("listen gRPC %s: %w", cfg.GRPC.Address, err)
	}
	go func() { errCh <- s.grpcServer.Serve(lis) }()

	go func() {
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	log.Info("servers started", "http", cfg.HTTP.Address, "grpc", cfg.GRPC.Address)

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		log.Info("shutting down")
		s.health.Shutdown()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		s.grpcServer.GracefulStop()
		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	}
}

func newServers(cfg *config.Config, services Services, log *logger.Logger) *Servers {
	grpcSrv := grpc.NewServer()
	healthSrv := health.NewServer()
	healthpb.RegisterHealthServer(grpcSrv, healthSrv)
	reflection.Register(grpcSrv)
	healthSrv.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)

	httpSrv := &http.Server{
		Addr:              cfg.HTTP.Address,
		Handler:           NewRouter(cfg, services, log),
		ReadHeaderTimeout: 5 * time.Second,
	}

	return &Servers{
		grpcServer: grpcSrv,
		health:     healthSrv,
		httpServer: httpSrv,
	}
}

// NewRouter builds the gin engine with tracing, request logging and every
// API group mounted under /api.
func NewRouter(cfg *config.Config, services Services, log *logger.Logger) *gin.Engine {
	if cfg.App.LogMode == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(
		gin.Recovery(),
		otelgin.Middleware(cfg.Telemetry.ServiceName),
		api.RequestLogger(log),
	)

	group := router.Group("/api")
	api.NewFlightHandler(services.Flights).Register(group.Group("/flights"))
	api.NewPassengerHandler(services.Passengers, log).Register(group.Group("/passengers"))
	api.NewBagHandler(services.Bags).Register(group.Group("/bagdrop"))

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	if cfg.HTTP.SwaggerDir != "" {
		router.StaticFile("/openapi/"+swaggerDocument, filepath.Join(cfg.HTTP.SwaggerDir, swaggerDocument))
		router.GET("/swagger/*any", gin.WrapH(httpSwagger.Handler(
			httpSwagger.URL("/openapi/"+swaggerDocument),
		)))
	}

	return router
}
