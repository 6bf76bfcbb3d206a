package app

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/hashicorp/go-sockaddr"
	"github.com/shandysiswandi/godocstore/internal/docs"
)

func (a *App) Start() <-chan struct{} {
	terminateChan := make(chan struct{})

	a.goroutine.Go(a.ctx, "api description check", func(ctx context.Context) error {
		return docs.Check(ctx, a.settings.SwaggerFile, a.settings.GenerateDocs)
	})

	go func() {
		local, network := serverURLs(a.httpServer.Addr, sockaddr.GetPrivateIP, sockaddr.GetPublicIP)
		slog.Info("http server listening", "address", a.httpServer.Addr, "local", local, "network", network)

		if err := a.httpServer.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			slog.Error("failed to listen and serve http server", "error", err)
			os.Exit(1)
		}
	}()

	go func() {
		sigint := make(chan os.Signal, 1)
		signal.Notify(sigint, os.Interrupt, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)

		<-sigint

		if a.cancel != nil {
			a.cancel()
		}

		terminateChan <- struct{}{}
		close(terminateChan)

		slog.Info("application gracefully shutdown")
	}()

	return terminateChan
}

func (a *App) Stop(ctx context.Context) {
	if a.cancel != nil {
		a.cancel()
	}

	if err := a.httpServer.Shutdown(ctx); err != nil {
		slog.ErrorContext(ctx, "failed to close resources", "name", "HTTP Server", "error", err)
	}

	slog.InfoContext(ctx, "waiting for all goroutine to finish")
	if err := a.goroutine.Wait(); err != nil {
		slog.ErrorContext(ctx, "error from goroutines executions", "error", err)
	}
	slog.InfoContext(ctx, "all goroutines have finished successfully")

	for name, closer := range a.closerFn {
		if name == "HTTP Server" {
			continue
		}
		if err := closer(ctx); err != nil {
			slog.ErrorContext(ctx, "failed to close resources", "name", name, "error", err)
		}
	}
}

type ipLookup func() (string, error)

// serverURLs returns the loopback URL and the URL other hosts can reach for
// a listen address. An unspecified host is resolved with the lookups in
// order; "localhost" is used when none yields an address.
func serverURLs(addr string, lookups ...ipLookup) (local, network string) {
	host, port, err := net.SplitHostPort(addr)
	if err != nil {
		host, port = "", addr
	}

	local = "http://" + net.JoinHostPort("localhost", port)

	if ip := net.ParseIP(host); host != "" && (ip == nil || !ip.IsUnspecified()) {
		return local, "http://" + net.JoinHostPort(host, port)
	}

	for _, lookup := range lookups {
		ip, err := lookup()
		if err != nil {
			slog.Debug("failed to look up interface address", "error", err)
			continue
		}
		if ip != "" {
			return local, "http://" + net.JoinHostPort(ip, port)
		}
	}

	return local, "http://" + net.JoinHostPort("localhost", port)
}
