package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"connectrpc.com/connect"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"
	"golang.org/x/sync/errgroup"

	"github.com/mmynk/housesplit/internal/middleware"
	"github.com/mmynk/housesplit/internal/rest"
	"github.com/mmynk/housesplit/internal/service"
	"github.com/mmynk/housesplit/internal/storage"
	"github.com/mmynk/housesplit/pkg/api/apiconnect"
)

const shutdownTimeout = 10 * time.Second

func (a *app) serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		Long: `Serve the Connect RoommateService and BillService, the REST routes
under /api, /health and (unless disabled) Prometheus /metrics on one port.`,
		Args: cobra.NoArgs,
		RunE: a.runServe,
	}
}

func (a *app) runServe(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := a.openStore(ctx)
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}
	defer store.Close()
	slog.Info("Storage initialized", "driver", a.cfg.Database.Driver)

	// h2c serves HTTP/2 without TLS, which Connect and gRPC clients need.
	srv := &http.Server{
		Addr:              a.cfg.Addr(),
		Handler:           h2c.NewHandler(newHandler(store, a.cfg.Metrics.Enabled), &http2.Server{}),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		slog.Info("Server starting", "address", srv.Addr, "metrics", a.cfg.Metrics.Enabled)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		slog.Info("Shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		return err
	}
	slog.Info("Server stopped")
	return nil
}

// newHandler assembles every route the server exposes around one store.
func newHandler(store storage.Store, metrics bool) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLogger)
	r.Use(chimw.Recoverer)
	r.Use(middleware.CORS)
	r.Use(middleware.HTTPMetrics)

	rest.NewHandler(store).Mount(r)

	if metrics {
		r.Handle("/metrics", promhttp.Handler())
	}

	interceptors := connect.WithInterceptors(
		middleware.LoggingInterceptor(),
		middleware.MetricsInterceptor(),
	)
	roommatePath, roommateHandler := apiconnect.NewRoommateServiceHandler(service.NewRoommateService(store), interceptors)
	r.Handle(roommatePath+"*", roommateHandler)
	billPath, billHandler := apiconnect.NewBillServiceHandler(service.NewBillService(store), interceptors)
	r.Handle(billPath+"*", billHandler)

	return r
}
