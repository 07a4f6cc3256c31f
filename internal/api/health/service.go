package health

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/evgeniy-krivenko/color-notes/pkg/grpcx"
	"github.com/evgeniy-krivenko/color-notes/pkg/logger/slogx"
)

const ServiceName = "colornotes.Notes"

var _ grpcx.Service = (*Service)(nil)

type pinger interface {
	Ping(ctx context.Context) error
}

//go:generate go run github.com/kazhuravlev/options-gen/cmd/options-gen@v0.55.3 -out-filename=service_options.gen.go -from-struct=Options
type Options struct {
	pinger pinger `option:"mandatory" validate:"required"`

	interval    time.Duration `default:"10s" validate:"min=1s"`
	pingTimeout time.Duration `default:"2s"`
}

// Service reports NOT_SERVING while the database does not answer pings.
type Service struct {
	Options
	srv *health.Server
}

func New(opts Options) (*Service, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("validate health service options: %v", err)
	}

	srv := health.NewServer()
	srv.SetServingStatus("", healthpb.HealthCheckResponse_NOT_SERVING)
	srv.SetServingStatus(ServiceName, healthpb.HealthCheckResponse_NOT_SERVING)

	return &Service{Options: opts, srv: srv}, nil
}

// RegisterService implements grpcx.Service.
func (s *Service) RegisterService(r grpc.ServiceRegistrar) {
	healthpb.RegisterHealthServer(r, s.srv)
}

func (s *Service) Run(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.check(ctx)

	for {
		select {
		case <-ctx.Done():
			s.srv.Shutdown()
			return nil
		case <-ticker.C:
			s.check(ctx)
		}
	}
}

func (s *Service) check(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, s.pingTimeout)
	defer cancel()

	status := healthpb.HealthCheckResponse_SERVING
	if err := s.pinger.Ping(ctx); err != nil {
		status = healthpb.HealthCheckResponse_NOT_SERVING
		slogx.Warn(ctx, "database ping failed", slogx.Err(err))
	}

	s.srv.SetServingStatus("", status)
	s.srv.SetServingStatus(ServiceName, status)
}
