package cache

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrBackend matches every BackendError.
var ErrBackend = errors.New("cache backend unavailable")

// BackendError reports a remote cache operation that failed for reasons
// unrelated to the data, such as a dropped connection.
type BackendError struct {
	Op  string // "connect", "get", "set", "delete", "clear"
	Err error

	transient bool
}

func (e *BackendError) Error() string {
	return fmt.Sprintf("cache %s: %v", e.Op, e.Err)
}

// Unwrap exposes both ErrBackend and the driver error to errors.Is.
func (e *BackendError) Unwrap() []error { return []error{ErrBackend, e.Err} }

// Transient reports whether the operation may succeed if repeated.
func (e *BackendError) Transient() bool { return e.transient }

// backendError wraps a driver error. Network failures, closed connections
// and pool timeouts are transient. Context errors pass through unchanged.
func backendError(op string, err error) error {
	if err == nil || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	var netErr net.Error
	transient := errors.As(err, &netErr) ||
		errors.Is(err, io.EOF) ||
		errors.Is(err, redis.ErrPoolTimeout)
	return &BackendError{Op: op, Err: err, transient: transient}
}

// isTransient reports whether err is a BackendError worth repeating.
func isTransient(err error) bool {
	var be *BackendError
	return errors.As(err, &be) && be.transient
}

// retryPolicy repeats transient failures with a doubling delay.
type retryPolicy struct {
	attempts int
	delay    time.Duration
}

var defaultRetry = retryPolicy{attempts: 3, delay: 200 * time.Millisecond}

// do calls fn until it succeeds, fails permanently, runs out of attempts
// or ctx is done.
func (p retryPolicy) do(ctx context.Context, fn func() error) error {
	delay := p.delay
	var err error
	for attempt := 1; ; attempt++ {
		if err = fn(); err == nil || !isTransient(err) || attempt >= p.attempts {
			return err
		}
		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
		delay *= 2
	}
}
