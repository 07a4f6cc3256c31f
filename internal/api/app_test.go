package api

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evgeniy-krivenko/color-notes/internal/entity"
	"github.com/evgeniy-krivenko/color-notes/pkg/gwserver"
	"github.com/evgeniy-krivenko/color-notes/pkg/response"
)

type stubRouter struct{}

func (stubRouter) Register(r fiber.Router) {
	r.Get("/ok", func(c *fiber.Ctx) error {
		return c.JSON(response.Success("ok"))
	})
	r.Get("/unauthorized", func(*fiber.Ctx) error {
		return entity.ErrUnauthorized
	})
	r.Get("/invalid", func(*fiber.Ctx) error {
		return &entity.ValidationError{Violations: []entity.Violation{{Field: "titulo", Message: "titulo is required", Tag: "required"}}}
	})
	r.Get("/missing", func(*fiber.Ctx) error {
		return entity.ErrNoteNotFound
	})
	r.Get("/rule", func(*fiber.Ctx) error {
		return &entity.DomainRuleError{Message: "constraint violated: check"}
	})
	r.Get("/boom", func(*fiber.Ctx) error {
		return errors.New("pq: password authentication failed for user notes")
	})
	r.Get("/panic", func(*fiber.Ctx) error {
		panic("unreachable state")
	})
	r.Post("/echo", func(c *fiber.Ctx) error {
		return c.JSON(response.Success(len(c.Body())))
	})
}

type pinger struct {
	err error
}

func (p pinger) Ping(context.Context) error { return p.err }

func newTestApp(t *testing.T, opts ...OptOptionsSetter) *fiber.App {
	t.Helper()

	app, err := NewApp(NewOptions([]Router{stubRouter{}}, pinger{}, opts...))
	require.NoError(t, err)

	return app
}

func call(t *testing.T, app *fiber.App, path string) (*http.Response, response.Envelope) {
	t.Helper()

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, path, nil), -1)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })

	var env response.Envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))

	return resp, env
}

func TestNewApp_Validation(t *testing.T) {
	_, err := NewApp(NewOptions(nil, pinger{}))
	assert.Error(t, err)

	_, err = NewApp(NewOptions([]Router{stubRouter{}}, nil))
	assert.Error(t, err)

	_, err = NewApp(NewOptions([]Router{stubRouter{}}, pinger{}, WithRateLimit(0)))
	assert.Error(t, err)
}

func TestErrorHandler(t *testing.T) {
	app := newTestApp(t)

	tests := []struct {
		path       string
		wantStatus int
		wantCode   string
		wantMsg    string
	}{
		{path: "/unauthorized", wantStatus: http.StatusUnauthorized, wantCode: response.CodeUnauthorized, wantMsg: "Unauthorized access"},
		{path: "/invalid", wantStatus: http.StatusBadRequest, wantCode: response.CodeValidation, wantMsg: "Validation failed"},
		{path: "/missing", wantStatus: http.StatusNotFound, wantCode: response.CodeNotFound, wantMsg: "Note not found"},
		{path: "/rule", wantStatus: http.StatusBadRequest, wantCode: response.CodeDomainRule, wantMsg: "constraint violated: check"},
		{path: "/boom", wantStatus: http.StatusInternalServerError, wantCode: response.CodeInternal, wantMsg: "Internal server error"},
		{path: "/panic", wantStatus: http.StatusInternalServerError, wantCode: response.CodeInternal, wantMsg: "Internal server error"},
		{path: "/nowhere", wantStatus: http.StatusNotFound, wantCode: response.CodeNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			resp, env := call(t, app, "/api/v1/internal"+tt.path)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)
			assert.False(t, env.Success)
			require.NotNil(t, env.Error)
			assert.Equal(t, tt.wantCode, env.Error.Code)
			if tt.wantMsg != "" {
				assert.Equal(t, tt.wantMsg, env.Error.Message)
			}
		})
	}
}

func TestRequestID(t *testing.T) {
	app := newTestApp(t)

	resp, env := call(t, app, "/api/v1/internal/ok")
	assert.True(t, env.Success)

	_, err := uuid.Parse(resp.Header.Get("X-Request-ID"))
	assert.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/internal/ok", nil)
	given := uuid.NewString()
	req.Header.Set("X-Request-ID", given)

	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, given, resp.Header.Get("X-Request-ID"))
}

func TestRateLimit(t *testing.T) {
	app := newTestApp(t, WithRateLimit(2))

	for i := 0; i < 2; i++ {
		resp, _ := call(t, app, "/api/v1/internal/ok")
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	}

	resp, env := call(t, app, "/api/v1/internal/ok")
	assert.Equal(t, http.StatusTooManyRequests, resp.StatusCode)
	assert.Equal(t, response.CodeRateLimited, env.Error.Code)

	resp, _ = call(t, app, "/health")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestHealth(t *testing.T) {
	resp, env := call(t, newTestApp(t), "/health")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, env.Success)

	app, err := NewApp(NewOptions([]Router{stubRouter{}}, pinger{err: errors.New("db down")}))
	require.NoError(t, err)

	resp, env = call(t, app, "/health")
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	assert.Equal(t, response.CodeUnavailable, env.Error.Code)
}

func TestServedApp_BodyLimit(t *testing.T) {
	app := newTestApp(t, WithBodyLimit(1024))

	srv, err := gwserver.New(gwserver.NewOptions("127.0.0.1:0", app))
	require.NoError(t, err)

	lis, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Serve(ctx, lis) }()
	t.Cleanup(func() {
		cancel()
		select {
		case <-done:
		case <-time.After(5 * time.Second):
			t.Error("server did not stop")
		}
	})

	post := func(size int) (int, response.Envelope) {
		body := `{"pad":"` + strings.Repeat("a", size) + `"}`
		resp, err := http.Post("http://"+lis.Addr().String()+"/api/v1/internal/echo", "application/json", strings.NewReader(body))
		require.NoError(t, err)
		defer resp.Body.Close()

		var env response.Envelope
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
		return resp.StatusCode, env
	}

	status, env := post(256)
	assert.Equal(t, http.StatusOK, status)
	assert.True(t, env.Success)

	status, env = post(2048)
	assert.Equal(t, http.StatusRequestEntityTooLarge, status)
	assert.False(t, env.Success)
	require.NotNil(t, env.Error)
	assert.Equal(t, response.CodeValidation, env.Error.Code)
}
