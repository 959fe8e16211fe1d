package portfolio

import (
	"context"
	"time"

	"encore.dev/rlog"
)

const backgroundTimeout = 10 * time.Second

// runAsync is replaced by an inline runner in tests.
var runAsync = background

// background detaches fn from the request: the caller has already answered,
// so fn gets its own deadline and its failure is only logged.
func background(op string, fn func(ctx context.Context) error) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), backgroundTimeout)
		defer cancel()

		started := time.Now()
		err := fn(ctx)
		elapsed := time.Since(started).String()
		if err != nil {
			rlog.Error("background operation failed", "op", op, "elapsed", elapsed, "error", err)
			return
		}
		rlog.Debug("background operation done", "op", op, "elapsed", elapsed)
	}()
}
