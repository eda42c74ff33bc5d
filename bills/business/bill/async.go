package bill

import (
	"context"
	"time"

	"encore.dev/rlog"
)

const backgroundTimeout = 10 * time.Second

// runAsync starts background work. Tests replace it with a synchronous
// runner.
var runAsync = goAsync

func goAsync(op string, fn func(ctx context.Context) error) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), backgroundTimeout)
		defer cancel()

		if err := fn(ctx); err != nil {
			rlog.Error("background operation failed", "op", op, "error", err)
			return
		}
		rlog.Debug("background operation done", "op", op)
	}()
}
