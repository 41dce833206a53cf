package service

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"testing"
	"time"

	"ite2blog/app/config"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func freePort(t *testing.T) int {
	listener, err := net.Listen("tcp", "localhost:0")
	require.NoError(t, err)
	port := listener.Addr().(*net.TCPAddr).Port
	listener.Close()
	return port
}

func TestNewApp(t *testing.T) {
	for _, driver := range []string{"memory", "badger"} {
		t.Run(driver, func(t *testing.T) {
			cfg := config.Default()
			cfg.Store.Driver = driver
			logger, _ := test.NewNullLogger()

			app, err := NewAppWithLogger(cfg, logger)
			require.NoError(t, err)
			defer app.Store.Close()

			posts, err := app.Store.ListPosts()
			require.NoError(t, err)
			assert.Len(t, posts, 1)
		})
	}
}

func TestNewAppWithoutSeed(t *testing.T) {
	cfg := config.Default()
	cfg.Store.Seed = false
	logger, _ := test.NewNullLogger()

	app, err := NewAppWithLogger(cfg, logger)
	require.NoError(t, err)
	defer app.Store.Close()

	posts, err := app.Store.ListPosts()
	require.NoError(t, err)
	assert.Empty(t, posts)
}

func TestNewAppErrors(t *testing.T) {
	cfg := config.Default()
	cfg.Store.Driver = "postgres"
	logger, _ := test.NewNullLogger()
	_, err := NewAppWithLogger(cfg, logger)
	assert.Error(t, err)

	cfg = config.Default()
	cfg.Log.Level = "chatty"
	_, err = NewApp(cfg)
	assert.Error(t, err)
}

func TestServerGracefulShutdown(t *testing.T) {
	port := freePort(t)
	cfg := config.Default()
	cfg.Server.Port = strconv.Itoa(port)
	logger, _ := test.NewNullLogger()

	app, err := NewAppWithLogger(cfg, logger)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- app.Run(ctx) }()

	url := fmt.Sprintf("http://localhost:%d/healthz", port)
	require.Eventually(t, func() bool {
		resp, err := http.Get(url)
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 2*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}

func TestServerPortInUse(t *testing.T) {
	listener, err := net.Listen("tcp", ":0")
	require.NoError(t, err)
	defer listener.Close()

	cfg := config.Default()
	cfg.Server.Port = strconv.Itoa(listener.Addr().(*net.TCPAddr).Port)
	logger, _ := test.NewNullLogger()
	app, err := NewAppWithLogger(cfg, logger)
	require.NoError(t, err)

	err = app.Run(context.Background())
	assert.Error(t, err)
}
