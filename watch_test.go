package ebrake_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	ebrake "github.com/TrippingKelsea/EmergencyBrake"
	"github.com/stretchr/testify/require"
)

func TestHTTPChecker(t *testing.T) {
	newServer := func(status int) *httptest.Server {
		return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
		}))
	}

	tests := map[string]struct {
		status int
		want   bool
	}{
		"200 is success": {status: http.StatusOK, want: true},
		"204 is success": {status: http.StatusNoContent, want: true},
		"404 is failure": {status: http.StatusNotFound, want: false},
		"500 is failure": {status: http.StatusInternalServerError, want: false},
		"503 is failure": {status: http.StatusServiceUnavailable, want: false},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			srv := newServer(tc.status)
			defer srv.Close()

			check := ebrake.HTTPChecker{URL: srv.URL, Client: srv.Client()}
			require.Equal(t, tc.want, check.Check(context.Background()))
		})
	}

	t.Run("unreachable endpoint is failure", func(t *testing.T) {
		srv := newServer(http.StatusOK)
		url := srv.URL
		srv.Close()

		check := ebrake.HTTPChecker{URL: url}
		require.False(t, check.Check(context.Background()))
	})

	t.Run("malformed URL is failure", func(t *testing.T) {
		check := ebrake.HTTPChecker{URL: "://not-a-url"}
		require.False(t, check.Check(context.Background()))
	})
}

func TestWatch_TriggersOnPersistentFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	tripped := make(chan struct{})
	b := ebrake.New("watch", 2, 0,
		ebrake.OnTrigger(func(name string, failures, tolerance int) {
			select {
			case tripped <- struct{}{}:
			default:
			}
		}),
	)

	done := make(chan struct{})
	go func() {
		defer close(done)
		b.Watch(ctx, time.Millisecond, ebrake.HTTPChecker{URL: srv.URL, Client: srv.Client()}, ebrake.Action(cancel))
	}()

	select {
	case <-tripped:
	case <-time.After(5 * time.Second):
		t.Fatal("expected the watcher to trip on persistent failures")
	}

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("expected Watch to return after cancellation")
	}
}

func TestWatch_StaysQuietWhileHealthy(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	triggered := false
	b := ebrake.New("watch", 2, 0)

	b.Watch(ctx, time.Millisecond, ebrake.HTTPChecker{URL: srv.URL, Client: srv.Client()}, func() {
		triggered = true
	})

	require.False(t, triggered)
	failures, _ := b.Counts()
	require.Zero(t, failures)
}

func TestWatch_ReturnsOnContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	b := ebrake.New("watch", 2, 0)

	done := make(chan struct{})
	go func() {
		defer close(done)
		b.Watch(ctx, time.Hour, ebrake.CheckerFunc(func(ctx context.Context) bool {
			return true
		}), ebrake.Nop)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("expected Watch to return immediately on a cancelled context")
	}
}
