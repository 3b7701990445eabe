package rfpaccel

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/intelia/rfpaccel/adapter/http/router"
)

// ServeCmd starts the embedded HTTP server.
// Usage: rfpaccel serve --addr :8080
type ServeCmd struct {
	Addr string `short:"a" long:"addr" description:"listen address" default:":8080"`
}

func (s *ServeCmd) Execute(_ []string) error {
	ctx := context.Background()
	svc, err := buildService(ctx)
	if err != nil {
		return err
	}
	defer svc.Close()

	srv := &http.Server{
		Addr:    s.Addr,
		Handler: router.New(svc),
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("rfpaccel HTTP server listening on %s", s.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	// Wait for termination signal or server error.
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		log.Printf("Received %s, initiating graceful shutdown", sig)
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		return nil
	case err := <-errCh:
		return err
	}
}
