package grpcx

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"time"

	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/keepalive"
	"google.golang.org/grpc/reflection"
	"google.golang.org/grpc/status"

	"github.com/evgeniy-krivenko/color-notes/pkg/logger/slogx"
)

type logger interface {
	Info(ctx context.Context, msg string, attrs ...slog.Attr)
	Error(ctx context.Context, msg string, attrs ...slog.Attr)
}

type Service interface {
	RegisterService(grpc.ServiceRegistrar)
}

//go:generate options-gen -out-filename=server_options.gen.go -from-struct=Options -all-variadic true
type Options struct {
	addr     string    `option:"mandatory" validate:"required,hostname_port"`
	services []Service `validate:"required,min=1"`

	logger logger

	grpcOptions []grpc.ServerOption
	reflection  bool

	maxConnIdle time.Duration `default:"5m"`
	time        time.Duration `default:"2h"`
	timeout     time.Duration `default:"20s"`
}

type Server struct {
	opts Options
	srv  *grpc.Server
}

func New(opts Options) (*Server, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("grpc server validate: %v", err)
	}

	if opts.logger == nil {
		opts.logger = &noopLogger{}
	}

	opts.grpcOptions = append(opts.grpcOptions,
		grpc.KeepaliveParams(keepalive.ServerParameters{
			MaxConnectionIdle: opts.maxConnIdle,
			Time:              opts.time,
			Timeout:           opts.timeout,
		}),
		grpc.ChainUnaryInterceptor(
			recovery.UnaryServerInterceptor(recovery.WithRecoveryHandlerContext(recoverPanic(opts.logger))),
			slogx.LoggingInterceptor,
		),
	)

	srv := grpc.NewServer(
		opts.grpcOptions...,
	)

	for _, svc := range opts.services {
		svc.RegisterService(srv)
	}

	if opts.reflection {
		reflection.Register(srv)
	}

	return &Server{opts: opts, srv: srv}, nil
}

func (s *Server) Run(ctx context.Context) error {
	listener, err := net.Listen("tcp", s.opts.addr)
	if err != nil {
		return fmt.Errorf("run grpc: %v", err)
	}

	return s.Serve(ctx, listener)
}

// Serve blocks on lis until ctx is done.
func (s *Server) Serve(ctx context.Context, lis net.Listener) error {
	go func() {
		<-ctx.Done()
		s.srv.GracefulStop()
	}()

	s.opts.logger.Info(
		ctx,
		"run grpc server",
		slog.String("addr", lis.Addr().String()),
	)

	if err := s.srv.Serve(lis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
		return fmt.Errorf("listen and server: %v", err)
	}

	return nil
}

func recoverPanic(l logger) recovery.RecoveryHandlerFuncContext {
	return func(ctx context.Context, p any) error {
		l.Error(ctx, "recovered from panic", slog.Any("panic", p))
		return status.Error(codes.Internal, "internal error")
	}
}

type noopLogger struct{}

func (n *noopLogger) Info(
	ctx context.Context,
	msg string,
	attrs ...slog.Attr,
) {
}

func (n *noopLogger) Error(
	ctx context.Context,
	msg string,
	attrs ...slog.Attr,
) {
}
