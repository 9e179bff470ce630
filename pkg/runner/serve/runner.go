// Package serve exposes the data directory over HTTP in the layout the
// HTTP source reads: a manifest, raw data files, and parsed datasets.
package serve

import (
	"context"
	"errors"
	"log"
	"net"
	"net/http"
	"os"
	"time"

	"tableflip.dev/flashq/pkg/app"
)

// Runner coordinates HTTP server startup.
type Runner struct {
	Service *app.Service

	ListenAddr     string
	OnListening    func(net.Addr)
	ServerCert     string
	ServerKey      string
	Logger         *log.Logger
	RequestTimeout time.Duration
}

// Do serves until ctx is done.
func (r Runner) Do(ctx context.Context) error {
	if r.Service == nil {
		return errors.New("serve: runner requires a service")
	}
	if (r.ServerCert != "" && r.ServerKey == "") || (r.ServerCert == "" && r.ServerKey != "") {
		return errors.New("serve: both tls cert and key must be provided")
	}

	logger := r.Logger
	if logger == nil {
		logger = log.New(os.Stderr, "flashq serve: ", log.LstdFlags)
	}
	timeout := r.RequestTimeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	listenAddr := r.ListenAddr
	if listenAddr == "" {
		listenAddr = "127.0.0.1:8080"
	}

	httpSrv := &http.Server{
		Handler:           http.TimeoutHandler(NewRouter(r.Service, logger), timeout, "request timed out"),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ln, err := net.Listen("tcp", listenAddr)
	if err != nil {
		return err
	}

	if r.OnListening != nil {
		r.OnListening(ln.Addr())
	}

	if ctx != nil {
		go func() {
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = httpSrv.Shutdown(shutdownCtx)
		}()
	}

	if r.ServerCert != "" && r.ServerKey != "" {
		err = httpSrv.ServeTLS(ln, r.ServerCert, r.ServerKey)
	} else {
		err = httpSrv.Serve(ln)
	}
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}
