package main

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		args    []string
		want    string
		wantErr bool
	}{
		{"no flags", nil, "", false},
		{"migrate up", []string{"-migrate", "up"}, "up", false},
		{"migrate version", []string{"-migrate=version"}, "version", false},
		{"unknown command", []string{"-migrate", "sideways"}, "", true},
		{"unknown flag", []string{"-verbose"}, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			opts, err := parseFlags(tt.args)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, opts.Migrate)
		})
	}
}

func TestRunHTTPServerStopsOnCancel(t *testing.T) {
	t.Parallel()

	quiet := slog.New(slog.NewTextHandler(io.Discard, nil))
	server := newHTTPServer("127.0.0.1:0", http.NotFoundHandler())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- runHTTPServer(ctx, server, quiet) }()

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(shutdownTimeout):
		t.Fatal("server did not shut down")
	}
}

func TestNewApplicationRejectsShortSecret(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	cfg.Auth.JWTSecret = "short"

	_, err := newApplication(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)), nil)
	assert.Error(t, err)
}
