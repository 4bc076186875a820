package api_test

import (
	"bandisch/gym-tracker/internal/api"
	"bandisch/gym-tracker/internal/domain"
	"bandisch/gym-tracker/internal/metrics"
	"bandisch/gym-tracker/internal/service"
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/go-redis/redis_rate/v9"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type testRequestRateLimiter struct {
	// key to remaining requests
	Limits map[string]int
	Err    error
}

func (l *testRequestRateLimiter) Allow(_ context.Context, key string, _ redis_rate.Limit) (*redis_rate.Result, error) {
	if l.Err != nil {
		return nil, l.Err
	}
	res := &redis_rate.Result{RetryAfter: 30 * time.Second}
	if l.Limits[key] > 0 {
		res.Allowed = 1
		res.RetryAfter = 0
		l.Limits[key]--
	}
	return res, nil
}

func newRateLimitedServer(t *testing.T, limiter api.RequestRateLimiter) *testServer {
	t.Helper()
	s := newTestServer(t, false)
	s.router = api.NewRouter(api.Services{
		Auth:                 service.NewAuthService(s.gymGoers, testJWTSecret, time.Hour),
		GymGoer:              s.gymGoers,
		StrengthTracker:      s.strengthTracker,
		LoginRateLimiter:     limiter,
		LoginRateLimitPerMin: 1,
	}, metrics.NewTestManager())
	return s
}

func TestLogin_RateLimited(t *testing.T) {
	// httptest requests come from 192.0.2.1
	limiter := &testRequestRateLimiter{Limits: map[string]int{"login:192.0.2.1": 1}}
	s := newRateLimitedServer(t, limiter)

	g := domain.NewGymGoer("a@b.com")
	s.gymGoers.EXPECT().FindByEmail(gomock.Any(), "a@b.com").Return(g, nil).Times(1)

	rec := s.do(t, http.MethodPost, "/gym-tracker/login", api.LoginRequest{Email: "a@b.com"}, "")
	assert.Equal(t, http.StatusOK, rec.Code)

	// next time fails
	rec = s.do(t, http.MethodPost, "/gym-tracker/login", api.LoginRequest{Email: "a@b.com"}, "")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "31", rec.Header().Get("Retry-After"))
	assert.Contains(t, decodeBody(t, rec)["error"], "retry after 30 seconds")
}

func TestLogin_RateLimiterError(t *testing.T) {
	s := newRateLimitedServer(t, &testRequestRateLimiter{Err: errors.New("redis down")})

	rec := s.do(t, http.MethodPost, "/gym-tracker/login", api.LoginRequest{Email: "a@b.com"}, "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
