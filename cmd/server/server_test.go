package main

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/phrazzld/news-api/internal/config"
	"github.com/phrazzld/news-api/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStartHTTPServer_ShutsDownOnCancel(t *testing.T) {
	log, _ := logger.NewTestLogger(t)
	app := &application{
		config: &config.Config{Server: config.ServerConfig{Port: freePort(t), ShutdownTimeoutSeconds: 1}},
		logger: log,
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- app.startHTTPServer(ctx, newRouter(log, app.stores)) }()

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}

func TestStartHTTPServer_ReportsListenFailure(t *testing.T) {
	ln, err := net.Listen("tcp", ":0")
	require.NoError(t, err)
	defer func() { _ = ln.Close() }()

	log, _ := logger.NewTestLogger(t)
	app := &application{
		config: &config.Config{Server: config.ServerConfig{
			Port:                   ln.Addr().(*net.TCPAddr).Port,
			ShutdownTimeoutSeconds: 1,
		}},
		logger: log,
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err = app.startHTTPServer(ctx, newRouter(log, app.stores))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "server failed")
}

func freePort(t *testing.T) int {
	t.Helper()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := ln.Addr().(*net.TCPAddr).Port
	require.NoError(t, ln.Close())
	return port
}
