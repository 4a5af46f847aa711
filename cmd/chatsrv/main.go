package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/mattn/go-isatty"

	"github.com/wtask/linechat/internal/chat"
	"github.com/wtask/linechat/internal/chat/history"
	"github.com/wtask/linechat/internal/chat/wsline"
	"github.com/wtask/linechat/internal/config"
	"github.com/wtask/linechat/internal/httpapi"
	"github.com/wtask/linechat/internal/logging"
)

func main() {
	opts, err := parseFlags(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		os.Exit(2)
	}
	if err := run(opts); err != nil {
		fmt.Fprintf(os.Stderr, "%s (v%s) error:\n\n\t%s\n", BinaryName, Version, err)
		os.Exit(1)
	}
}

func run(opts options) error {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}
	if opts.address != "" {
		cfg.Address = opts.address
	}

	logger := logging.Init(os.Stderr, cfg.Logging.Level, cfg.Logging.Format).
		With("app", BinaryName, "version", Version)
	logger.Info("Starting chat server", "config", cfg.String())

	serverOptions := []chat.ServerOption{
		chat.WithLogger(logger),
		chat.WithMaxMessageSize(cfg.MaxMessageSize),
		chat.WithWriteTimeout(cfg.WriteTimeout),
		chat.WithAcceptRate(cfg.AcceptRate, cfg.AcceptBurst),
	}
	if cfg.HistoryGreets > 0 {
		stack, err := history.NewStack(cfg.HistoryGreets)
		if err != nil {
			return err
		}
		serverOptions = append(serverOptions, chat.WithMessageHistory(stack, cfg.HistoryGreets))
	}
	server, err := chat.NewServer(chat.DefaultBroker(), serverOptions...)
	if err != nil {
		return fmt.Errorf("can't start chat server: %w", err)
	}

	listener, err := net.Listen("tcp", cfg.Address)
	if err != nil {
		return fmt.Errorf("unable to listen TCP: %w", err)
	}
	fmt.Printf("Server listening on %s\n", listener.Addr())

	go func() {
		if err := server.Serve(listener); err != nil {
			logger.Error("TCP listener failed", "error", err)
			server.Stop()
		}
	}()

	var api *httpapi.Server
	if cfg.HTTPAddress != "" {
		httpListener, err := net.Listen("tcp", cfg.HTTPAddress)
		if err != nil {
			server.Shutdown(cfg.ShutdownTimeout)
			return fmt.Errorf("unable to listen HTTP: %w", err)
		}
		ws := wsline.NewHandler(server, func(*http.Request) bool { return true }, logger)
		api = httpapi.NewServer(server, ws, logger)
		go func() {
			if err := api.Serve(httpListener); err != nil {
				logger.Error("HTTP server failed", "error", err)
			}
		}()
		logger.Info("HTTP endpoints enabled", "address", httpListener.Addr().String())
	}

	if !isatty.IsTerminal(os.Stdin.Fd()) && !isatty.IsCygwinTerminal(os.Stdin.Fd()) {
		logger.Info("Console is not a terminal, operator input is read from stdin stream")
	}
	colorize := isatty.IsTerminal(os.Stdout.Fd())
	operator := chat.NewOperator(server, os.Stdout, colorize)
	go func() {
		if err := operator.Run(os.Stdin); err != nil {
			logger.Error("Operator console failed", "error", err)
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sig)

	select {
	case s := <-sig:
		logger.Info("Got stop signal", "signal", s.String())
	case <-server.Stopping():
	}

	if api != nil {
		ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		if err := api.Shutdown(ctx); err != nil {
			logger.Warn("HTTP server shutdown failed", "error", err)
		}
		cancel()
	}
	elapsed := server.Shutdown(cfg.ShutdownTimeout)
	logger.Info("Chat server stopped", "elapsed", elapsed)
	return nil
}
