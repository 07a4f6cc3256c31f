package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/evgeniy-krivenko/color-notes/internal/api/health"
	"github.com/evgeniy-krivenko/color-notes/pkg/logger/slogx"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("run: %v", err)
	}
}

func run() error {
	addr := flag.String("addr", "127.0.0.1:50051", "grpc server address")
	service := flag.String("service", health.ServiceName, "service to check, empty for the whole server")
	timeout := flag.Duration("timeout", 5*time.Second, "probe timeout")
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	if err := slogx.InitGlobal(
		os.Stdout,
		"info",
		true,
	); err != nil {
		return fmt.Errorf("init logger: %v", err)
	}

	conn, err := grpc.NewClient(
		*addr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return fmt.Errorf("new client conn: %v", err)
	}
	defer conn.Close()

	resp, err := healthpb.NewHealthClient(conn).Check(ctx, &healthpb.HealthCheckRequest{Service: *service})
	if err != nil {
		return fmt.Errorf("health check: %v", err)
	}

	slogx.Info(ctx, "health check",
		slog.String("addr", *addr),
		slog.String("service", *service),
		slog.String("status", resp.GetStatus().String()),
	)

	if resp.GetStatus() != healthpb.HealthCheckResponse_SERVING {
		return fmt.Errorf("service %q is %s", *service, resp.GetStatus())
	}

	return nil
}
