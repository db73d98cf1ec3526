package shutdownsetup

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/thedrumepic/med/pkg/logger"
)

// ShutdownTimeout bounds how long in-flight requests may run after a
// termination signal before the server is forced down.
const ShutdownTimeout = 15 * time.Second

// SetupGracefulShutdown blocks until SIGINT or SIGTERM, then drains the
// HTTP server.
func SetupGracefulShutdown(server *http.Server, log *logger.Logger) {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	sig := <-stop
	log.Info("Shutdown signal received", "signal", sig.String())

	ctx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Graceful shutdown failed, forcing close", "error", err)
		if err := server.Close(); err != nil {
			log.Error("Forced server close failed", "error", err)
		}
		return
	}

	log.Info("Server stopped gracefully")
}
