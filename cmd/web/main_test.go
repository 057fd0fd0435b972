package main

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"landing/internal/logging"
)

func TestServe_ListenFailureFlushesTracing(t *testing.T) {
	app := fiber.New(fiber.Config{DisableStartupMessage: true})

	flushed := 0
	shutdownTracing := func(context.Context) error {
		flushed++
		return nil
	}

	var buf bytes.Buffer
	err := serve(context.Background(), app, ":-1", time.Second, shutdownTracing, logging.New(&buf, time.UTC, nil))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to start server")
	assert.Equal(t, 1, flushed)
	assert.NotContains(t, buf.String(), "server_stopped")
}
