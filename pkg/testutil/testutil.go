// Package testutil provides testing utilities for colvec
package testutil

import (
	"context"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"

	"github.com/ajitpratap0/colvec/pkg/config"
	"github.com/ajitpratap0/colvec/pkg/errors"
	"github.com/ajitpratap0/colvec/pkg/vec"
)

// TestLogger creates a test logger that writes to the test output.
func TestLogger(t *testing.T) *zap.Logger {
	return zaptest.NewLogger(t)
}

// TestContext creates a test context with a 30-second timeout.
// The caller must call the returned cancel function to avoid leaks.
func TestContext(_ *testing.T) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 30*time.Second)
}

// NewCluster creates a cluster with the given partition length and worker
// count, logging to the test output.
func NewCluster(t *testing.T, rowsPerPartition, workers int) *vec.Cluster {
	t.Helper()
	c, err := vec.NewCluster(config.StoreConfig{
		RowsPerPartition: rowsPerPartition,
		Workers:          workers,
	}, TestLogger(t))
	if err != nil {
		t.Fatalf("failed to create cluster: %v", err)
	}
	return c
}

// RequireContractPanic fails the test unless fn panics with a contract
// error. It returns the recovered error.
func RequireContractPanic(t *testing.T, fn func()) (err *errors.Error) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("expected contract panic")
		}
		e, ok := r.(*errors.Error)
		if !ok {
			t.Fatalf("panic value %T (%v) is not *errors.Error", r, r)
		}
		if e.Type != errors.ErrorTypeContract {
			t.Fatalf("expected contract error, got %s", e.Type)
		}
		err = e
	}()
	fn()
	return nil
}

// RequireNoError fails the test immediately if err is not nil.
func RequireNoError(t *testing.T, err error, msg string) {
	t.Helper()
	if err != nil {
		t.Fatalf("%s: %v", msg, err)
	}
}
