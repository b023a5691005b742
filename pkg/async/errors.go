package async

import "errors"

// ErrPanic completes a future whose function panicked.
var ErrPanic = errors.New("async: computation panicked")

func joinErrors(errs []error) error {
	if len(errs) == 0 {
		return nil
	}
	return errors.Join(errs...)
}
