package logger

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromContext_AddsRequestAndAdminIDs(t *testing.T) {
	var buf bytes.Buffer
	InitWithWriter("production", &buf)
	defer Init("test")

	ctx := WithRequestID(context.Background(), "req-42")
	ctx = WithAdminID(ctx, "admin-1")

	CtxInfo(ctx, "content listed", "entity", "project")

	out := buf.String()
	assert.Contains(t, out, `"request_id":"req-42"`)
	assert.Contains(t, out, `"admin_id":"admin-1"`)
	assert.Contains(t, out, `"entity":"project"`)
}

func TestWorkerLog_ErrorLevel(t *testing.T) {
	var buf bytes.Buffer
	InitWithWriter("production", &buf)
	defer Init("test")

	WorkerLog("mail_worker", "send", errors.New("smtp down"), "subject", "hello")

	out := buf.String()
	assert.Contains(t, out, `"level":"ERROR"`)
	assert.Contains(t, out, `"error":"smtp down"`)
	assert.Contains(t, out, `"subject":"hello"`)
}

func TestTestEnv_SuppressesInfo(t *testing.T) {
	var buf bytes.Buffer
	InitWithWriter("test", &buf)

	Info("noise")
	Warn("signal")

	assert.NotContains(t, buf.String(), "noise")
	assert.Contains(t, buf.String(), "signal")
}
