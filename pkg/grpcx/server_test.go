package grpcx

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
)

type healthService struct {
	srv healthpb.HealthServer
}

func (h healthService) RegisterService(r grpc.ServiceRegistrar) {
	healthpb.RegisterHealthServer(r, h.srv)
}

type panickingHealth struct {
	healthpb.UnimplementedHealthServer
}

func (panickingHealth) Check(context.Context, *healthpb.HealthCheckRequest) (*healthpb.HealthCheckResponse, error) {
	panic("boom")
}

func startServer(t *testing.T, svc Service) healthpb.HealthClient {
	t.Helper()

	srv, err := New(NewOptions("localhost:0", WithServices(svc)))
	require.NoError(t, err)

	lis := bufconn.Listen(1 << 20)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Serve(ctx, lis) }()

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)

	t.Cleanup(func() {
		conn.Close()
		cancel()
		select {
		case err := <-done:
			assert.NoError(t, err)
		case <-time.After(2 * time.Second):
			t.Error("server did not stop")
		}
	})

	return healthpb.NewHealthClient(conn)
}

func TestNew_Validation(t *testing.T) {
	_, err := New(NewOptions("localhost:50051"))
	assert.Error(t, err, "at least one service is required")

	_, err = New(NewOptions("not an address", WithServices(healthService{srv: health.NewServer()})))
	assert.Error(t, err)
}

func TestServer_ServesRegisteredService(t *testing.T) {
	hs := health.NewServer()
	client := startServer(t, healthService{srv: hs})

	resp, err := client.Check(context.Background(), &healthpb.HealthCheckRequest{})
	require.NoError(t, err)
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, resp.GetStatus())
}

func TestServer_RecoversPanics(t *testing.T) {
	client := startServer(t, healthService{srv: panickingHealth{}})

	_, err := client.Check(context.Background(), &healthpb.HealthCheckRequest{})
	require.Error(t, err)
	assert.Equal(t, codes.Internal, status.Code(err))
}
