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

	"github.com/SergSukh/api-yamdb-33-all/config"
	"github.com/SergSukh/api-yamdb-33-all/internal/database"
	yamdbgrpc "github.com/SergSukh/api-yamdb-33-all/internal/grpc"
	"github.com/SergSukh/api-yamdb-33-all/internal/model"
	"github.com/SergSukh/api-yamdb-33-all/internal/route"
	"github.com/SergSukh/api-yamdb-33-all/packages/email"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd() *cobra.Command {
	var migrate bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API and, when grpc.port is set, the gRPC health server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return serve(cmd.Context(), config.Conf, migrate)
		},
	}
	cmd.Flags().BoolVar(&migrate, "migrate", false, "apply migrations before serving")

	return cmd
}

func serve(ctx context.Context, conf *config.AppConfig, migrate bool) error {
	gin.SetMode(conf.Server.Mode)

	if err := database.InitDatabase(); err != nil {
		return fmt.Errorf("init database: %w", err)
	}
	defer database.Close()

	if migrate {
		if err := model.InitTable(database.DB); err != nil {
			return err
		}
	}
	if database.RedisDB == nil {
		slog.Warn("redis disabled, signup cooldown is off")
	}

	r := route.SetupRouter(conf, route.Deps{
		DB:     database.DB,
		Redis:  database.RedisDB,
		Mailer: email.NewClient(&conf.Smtp),
	})
	httpServer := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", conf.Server.Host, conf.Server.Port),
		Handler:      r,
		ReadTimeout:  conf.Server.ReadTimeout,
		WriteTimeout: conf.Server.WriteTimeout,
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 2)

	var grpcServer *yamdbgrpc.Server
	if conf.GRPC.Port != 0 {
		var err error
		grpcServer, err = yamdbgrpc.NewServer(conf.GRPC.Port, conf.JWT.Secret)
		if err != nil {
			return err
		}
		grpcServer.SetServing(true)

		go func() {
			slog.Info("grpc server listening", "addr", grpcServer.GetAddr())
			if err := grpcServer.Start(); err != nil {
				errCh <- fmt.Errorf("grpc server: %w", err)
			}
		}()
	}

	go func() {
		slog.Info("http server listening", "addr", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	var runErr error
	select {
	case <-ctx.Done():
		slog.Info("shutting down")
	case runErr = <-errCh:
		slog.Error("server stopped", "err", runErr)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if grpcServer != nil {
		grpcServer.Stop()
	}
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		runErr = errors.Join(runErr, fmt.Errorf("http shutdown: %w", err))
	}

	return runErr
}
