package snapshots

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/preston-bernstein/depth-chart-service/internal/logging"
	"github.com/preston-bernstein/depth-chart-service/internal/metrics"
)

const (
	defaultRetryAttempts = 3
	defaultBackoff       = 100 * time.Millisecond
)

type backoffFunc func(attempt int) time.Duration

// retryingBackend wraps a Backend with retry/backoff and per-call metrics.
type retryingBackend struct {
	inner       Backend
	logger      *slog.Logger
	metrics     *metrics.Recorder
	maxAttempts int
	backoffFn   backoffFunc
}

// NewRetryingBackend wraps inner with retries. If maxAttempts/backoff are <= 0,
// defaults are used. ErrNotFound and context errors are returned immediately.
func NewRetryingBackend(inner Backend, logger *slog.Logger, recorder *metrics.Recorder, maxAttempts int, backoff time.Duration) Backend {
	if maxAttempts <= 0 {
		maxAttempts = defaultRetryAttempts
	}
	if backoff <= 0 {
		backoff = defaultBackoff
	}
	return &retryingBackend{
		inner:       inner,
		logger:      logger,
		metrics:     recorder,
		maxAttempts: maxAttempts,
		backoffFn: func(attempt int) time.Duration {
			return time.Duration(attempt) * backoff
		},
	}
}

func (r *retryingBackend) Load(ctx context.Context, name string) ([]byte, error) {
	var data []byte
	err := r.do(ctx, "load", name, func() error {
		var err error
		data, err = r.inner.Load(ctx, name)
		return err
	})
	if err != nil {
		return nil, err
	}
	return data, nil
}

func (r *retryingBackend) Save(ctx context.Context, name string, data []byte) error {
	return r.do(ctx, "save", name, func() error {
		return r.inner.Save(ctx, name, data)
	})
}

func (r *retryingBackend) List(ctx context.Context) ([]string, error) {
	var names []string
	err := r.do(ctx, "list", "*", func() error {
		var err error
		names, err = r.inner.List(ctx)
		return err
	})
	return names, err
}

func (r *retryingBackend) Close() error {
	return r.inner.Close()
}

func (r *retryingBackend) do(ctx context.Context, op, name string, call func() error) error {
	var lastErr error

	for attempt := 1; attempt <= r.maxAttempts; attempt++ {
		start := time.Now()
		err := call()
		r.metrics.RecordStorageOp(op, name, time.Since(start), ignoreNotFound(err))
		if err == nil {
			return nil
		}
		if !retryable(err) {
			return err
		}
		lastErr = err

		if attempt == r.maxAttempts {
			break
		}

		r.logWarn(ctx, "storage retry",
			"op", op,
			logging.FieldResource, name,
			"attempt", attempt,
			"max_attempts", r.maxAttempts,
			"err", err,
		)

		delay := r.backoffFn(attempt)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
	}

	r.logWarn(ctx, "storage operation failed", "op", op, logging.FieldResource, name, "attempts", r.maxAttempts, "err", lastErr)
	return lastErr
}

func (r *retryingBackend) logWarn(ctx context.Context, msg string, args ...any) {
	logging.Warn(logging.FromContext(ctx, r.logger), msg, args...)
}

func retryable(err error) bool {
	return !IsNotFound(err) &&
		!errors.Is(err, ErrInvalidName) &&
		!errors.Is(err, context.Canceled) &&
		!errors.Is(err, context.DeadlineExceeded)
}

func ignoreNotFound(err error) error {
	if IsNotFound(err) {
		return nil
	}
	return err
}
