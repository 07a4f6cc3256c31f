package gwserver

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/sync/errgroup"
)

type Logger interface {
	Info(context.Context, string, ...slog.Attr)
}

//go:generate options-gen -out-filename=server_options.gen.go -from-struct=Options -all-variadic true
type Options struct {
	addr string     `option:"mandatory" validate:"hostname_port"`
	app  *fiber.App `option:"mandatory" validate:"required"`

	shutdownTimeout time.Duration `default:"3s" validate:"min=1ms"`
	logger          Logger
}

// Server runs a fiber app on its own fasthttp server, so body limits and
// timeouts from the app config apply to every connection.
type Server struct {
	Options
}

func New(opts Options) (*Server, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("validate gw server opts: %v", err)
	}

	return &Server{Options: opts}, nil
}

func (s *Server) Run(ctx context.Context) error {
	lis, err := net.Listen("tcp", s.addr)
	if err != nil {
		return fmt.Errorf("listen tcp: %v", err)
	}

	return s.Serve(ctx, lis)
}

// Serve accepts connections on lis until ctx is done, then drains
// in-flight requests within the shutdown timeout.
func (s *Server) Serve(ctx context.Context, lis net.Listener) error {
	eg, ctx := errgroup.WithContext(ctx)

	eg.Go(func() error {
		<-ctx.Done()

		ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.shutdownTimeout)
		defer cancel()

		err := s.app.ShutdownWithContext(ctx)
		// Shutdown can win the race against Listener.
		_ = lis.Close()

		return err
	})

	eg.Go(func() error {
		if s.logger != nil {
			s.logger.Info(ctx, "listen and serve", slog.String("addr", lis.Addr().String()))
		}

		if err := s.app.Listener(lis); err != nil && !errors.Is(err, net.ErrClosed) {
			return fmt.Errorf("listen and serve: %v", err)
		}

		return nil
	})

	return eg.Wait()
}
