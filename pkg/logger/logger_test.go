package logger

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func TestFromContext(t *testing.T) {
	var buf bytes.Buffer
	SetupWithWriter("test", &buf)

	assert.Same(t, Log, FromContext(context.Background()))

	scoped := Log.With(slog.String("request_id", "abc"))
	ctx := WithContext(context.Background(), scoped)
	FromContext(ctx).Info("hello")
	assert.Contains(t, buf.String(), "request_id=abc")
}

func TestSetupWithWriter_ProductionIsJSON(t *testing.T) {
	var buf bytes.Buffer
	SetupWithWriter("production", &buf)
	Info("ponto registrado", "tipo", "entrada")
	assert.Contains(t, buf.String(), `"msg":"ponto registrado"`)

	buf.Reset()
	Debug("hidden")
	assert.Empty(t, buf.String(), "debug is off outside development")
}

func TestGormLogger_Trace(t *testing.T) {
	var buf bytes.Buffer
	SetupWithWriter("development", &buf)
	l := NewGormLogger(gormlogger.Info, 50*time.Millisecond)
	sql := func() (string, int64) { return "SELECT 1", 1 }

	l.Trace(context.Background(), time.Now(), sql, gorm.ErrRecordNotFound)
	assert.NotContains(t, buf.String(), "SQL Error", "not found is not an error")

	buf.Reset()
	l.Trace(context.Background(), time.Now(), sql, errors.New("deadlock detected"))
	assert.Contains(t, buf.String(), "SQL Error")
	assert.Contains(t, buf.String(), "deadlock detected")

	buf.Reset()
	l.Trace(context.Background(), time.Now().Add(-time.Second), sql, nil)
	assert.Contains(t, buf.String(), "Slow SQL")

	buf.Reset()
	l.LogMode(gormlogger.Silent).Trace(context.Background(), time.Now(), sql, errors.New("ignored"))
	assert.Empty(t, buf.String())
}
