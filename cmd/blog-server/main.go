package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	blog "github.com/mosite/go-blog"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "path to YAML config file")
	flag.Parse()

	cfg, err := LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "configuration error: %v\n", err)
		return 1
	}

	module, err := blog.New(cfg.Blog)
	if err != nil {
		fmt.Fprintf(os.Stderr, "startup error: %v\n", err)
		return 1
	}
	defer module.Close()

	logger := module.Logger("blog.server")
	logger.Info("starting blog server", "addr", cfg.Server.Addr)

	if cfg.Server.ImportDir != "" {
		result, err := module.Importer().ImportDirectory(context.Background(),
			os.DirFS(cfg.Server.ImportDir))
		if err != nil {
			logger.Error("content import failed", "dir", cfg.Server.ImportDir, "error", err)
			return 1
		}
		logger.Info("content imported",
			"articles", result.ArticlesCreated,
			"pages", result.PagesCreated,
			"failed", len(result.Failed))
	}

	server := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           newRouter(module, logger),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.ListenAndServe()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", "error", err)
			return 1
		}
	case sig := <-stop:
		logger.Info("shutting down", "signal", sig.String())
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			logger.Error("shutdown error", "error", err)
			return 1
		}
	}
	return 0
}
