// Command colorconv-mcp serves the colorfmt conversions as MCP tools over
// stdio or streamable HTTP.
package main

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

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/gogpu/colorfmt"
	"github.com/gogpu/colorfmt/internal/config"
	"github.com/gogpu/colorfmt/internal/middleware"
	"github.com/gogpu/colorfmt/internal/tools"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	if err := run(ctx, os.Args[1:]); err != nil {
		cancel()
		slog.Error("fatal error", "error", err)
		os.Exit(1)
	}
	cancel()
}

// newServer builds the MCP server with every color tool registered.
func newServer(logger *slog.Logger) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "colorconv-mcp",
		Version: colorfmt.Version,
	}, nil)
	server.AddReceivingMiddleware(middleware.LoggingMiddleware(logger))
	tools.Register(server)
	return server
}

func run(ctx context.Context, args []string) error {
	cfg, err := config.Load("colorconv-mcp", args)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// Structured logging to stderr (stdout is reserved for MCP stdio transport)
	logger := cfg.Logger(os.Stderr)
	slog.SetDefault(logger)
	colorfmt.SetLogger(logger)

	server := newServer(logger)

	slog.Info("starting colorconv MCP server", "transport", cfg.Transport, "version", colorfmt.Version)

	switch cfg.Transport {
	case "stdio":
		if err := server.Run(ctx, &mcp.StdioTransport{}); err != nil {
			return fmt.Errorf("stdio server error: %w", err)
		}
	case "http":
		handler := mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server { return server }, nil)
		mux := http.NewServeMux()
		mux.Handle("/mcp", handler)

		httpServer := &http.Server{
			Addr:              cfg.Addr,
			Handler:           mux,
			ReadHeaderTimeout: 10 * time.Second,
		}

		serveErr := make(chan error, 1)
		go func() {
			slog.Info("listening", "addr", cfg.Addr)
			serveErr <- httpServer.ListenAndServe()
		}()

		select {
		case err := <-serveErr:
			if !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("HTTP server error: %w", err)
			}
		case <-ctx.Done():
			slog.Info("shutting down HTTP server")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := httpServer.Shutdown(shutdownCtx); err != nil {
				return fmt.Errorf("HTTP server shutdown: %w", err)
			}
		}
	}
	return nil
}
