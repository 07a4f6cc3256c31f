package health

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

type switchPinger struct {
	down atomic.Bool
}

func (p *switchPinger) Ping(context.Context) error {
	if p.down.Load() {
		return errors.New("connection refused")
	}
	return nil
}

func status(t *testing.T, s *Service, service string) healthpb.HealthCheckResponse_ServingStatus {
	t.Helper()

	resp, err := s.srv.Check(context.Background(), &healthpb.HealthCheckRequest{Service: service})
	require.NoError(t, err)

	return resp.GetStatus()
}

func TestNew_Validation(t *testing.T) {
	_, err := New(NewOptions(nil))
	assert.Error(t, err)

	_, err = New(NewOptions(&switchPinger{}, WithInterval(time.Millisecond)))
	assert.Error(t, err)
}

func TestCheckFollowsPing(t *testing.T) {
	p := &switchPinger{}
	s, err := New(NewOptions(p))
	require.NoError(t, err)

	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, status(t, s, ""))

	s.check(context.Background())
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, status(t, s, ""))
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, status(t, s, ServiceName))

	p.down.Store(true)
	s.check(context.Background())
	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, status(t, s, ServiceName))
}

func TestRunStopsOnCancel(t *testing.T) {
	s, err := New(NewOptions(&switchPinger{}))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	require.Eventually(t, func() bool {
		return status(t, s, "") == healthpb.HealthCheckResponse_SERVING
	}, time.Second, 10*time.Millisecond)

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
}
