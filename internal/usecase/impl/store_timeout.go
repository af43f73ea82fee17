// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"time"

	domainerrors "payroll/internal/domain/errors"

	"github.com/pkg/errors"
)

// fallbackStoreTimeout bounds store calls when configuration leaves the
// timeout unset.
const fallbackStoreTimeout = 5 * time.Second

// storeContext derives a deadline-bounded context for a single store call.
func storeContext(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		timeout = fallbackStoreTimeout
	}

	return context.WithTimeout(ctx, timeout)
}

// mapStoreError converts a deadline overrun into the retryable availability
// error so the client sees 503 instead of a generic failure.
func mapStoreError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return domainerrors.ErrStoreUnavailable.WrapMessage(err.Error())
	}

	return err
}
