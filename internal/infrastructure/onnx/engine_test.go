package onnx

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DRSN-tech/nose-embedder/internal/cfg"
	"github.com/DRSN-tech/nose-embedder/internal/usecase"
	"github.com/DRSN-tech/nose-embedder/pkg/e"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubProvider struct {
	path  string
	err   error
	delay time.Duration
}

func (s *stubProvider) Fetch(ctx context.Context) (string, error) {
	if s.delay > 0 {
		select {
		case <-time.After(s.delay):
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}

	return s.path, s.err
}

type nopLogger struct{}

func (nopLogger) Debugf(string, ...any)        {}
func (nopLogger) Infof(string, ...any)         {}
func (nopLogger) Warnf(string, ...any)         {}
func (nopLogger) Errorf(error, string, ...any) {}

func TestEngineBeforeLoad(t *testing.T) {
	eng := NewEngine(&stubProvider{path: "/nonexistent.onnx"}, &cfg.ModelCfg{}, nopLogger{})

	assert.False(t, eng.IsReady())
	assert.Empty(t, eng.Describe().Path)

	_, err := eng.Infer(context.Background(), usecase.NewTensor([]float32{0}, []int64{1, 1}))

	require.Error(t, err)
	de := e.From(err)
	assert.Equal(t, e.CodeModelNotLoaded, de.Code)
	assert.True(t, de.Retryable)
}

func TestEngineLoadFailures(t *testing.T) {
	t.Run("provider failure", func(t *testing.T) {
		eng := NewEngine(&stubProvider{err: errors.New("bucket unreachable")}, &cfg.ModelCfg{}, nopLogger{})

		err := eng.Load(context.Background())

		require.Error(t, err)
		assert.Equal(t, e.CodeModelNotLoaded, e.From(err).Code)
		assert.False(t, eng.IsReady())
	})

	t.Run("missing model file", func(t *testing.T) {
		eng := NewEngine(&stubProvider{path: "/nonexistent/model.onnx"}, &cfg.ModelCfg{}, nopLogger{})

		err := eng.Load(context.Background())

		require.Error(t, err)
		assert.Equal(t, e.CodeModelNotLoaded, e.From(err).Code)
		assert.False(t, eng.IsReady())
	})
}

// Infer во время загрузки не ждёт её завершения, а сразу отвечает
// ModelNotLoaded.
func TestInferDuringLoadDoesNotBlock(t *testing.T) {
	eng := NewEngine(&stubProvider{
		delay: 2 * time.Second,
		err:   errors.New("bucket unreachable"),
	}, &cfg.ModelCfg{}, nopLogger{})

	loadDone := make(chan error, 1)
	go func() {
		loadDone <- eng.Load(context.Background())
	}()

	time.Sleep(100 * time.Millisecond)
	require.False(t, eng.IsReady())

	start := time.Now()
	_, err := eng.Infer(context.Background(), usecase.NewTensor([]float32{0}, []int64{1, 1}))
	elapsed := time.Since(start)

	require.Error(t, err)
	assert.Equal(t, e.CodeModelNotLoaded, e.From(err).Code)
	assert.Less(t, elapsed, 500*time.Millisecond, "Infer must fail fast while the model is loading")

	require.Error(t, <-loadDone)
}

// Повторный Load во время уже идущей загрузки не запускает вторую.
func TestConcurrentLoadRejected(t *testing.T) {
	eng := NewEngine(&stubProvider{
		delay: time.Second,
		err:   errors.New("bucket unreachable"),
	}, &cfg.ModelCfg{}, nopLogger{})

	loadDone := make(chan error, 1)
	go func() {
		loadDone <- eng.Load(context.Background())
	}()

	time.Sleep(100 * time.Millisecond)

	err := eng.Load(context.Background())

	require.Error(t, err)
	assert.Equal(t, e.CodeModelNotLoaded, e.From(err).Code)

	require.Error(t, <-loadDone)
}
