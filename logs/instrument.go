package logs

import (
	"time"

	"github.com/go-logr/logr"
	"github.com/overlay-go/overlay"
)

// Instrument overrides each key with an operation of identical
// signature that logs the invocation before delegating to the
// previous implementation.  Every named key must currently hold
// an operation.
func Instrument(
	c      *overlay.Container,
	logger logr.Logger,
	keys   ...string,
) error {
	snap := c.Current()
	props := make(overlay.Props, len(keys))
	for _, key := range keys {
		val, ok := snap.Get(key)
		if !ok {
			return &overlay.UnknownKeyError{Key: key}
		}
		fn := val.Fn()
		if fn == nil {
			return &overlay.NotOperationError{Key: key}
		}
		props[key] = loggingOp(key, fn, logger)
	}
	return c.Update(props)
}

func loggingOp(key string, fn any, logger logr.Logger) overlay.Value {
	return overlay.Decorate(fn, func(
		_    overlay.View,
		args []any,
		prev *overlay.Previous,
	) ([]any, error) {
		start := time.Now()
		out, err := prev.Call(args...)
		if err != nil {
			logger.Error(err, "operation failed",
				"key", key, "layer", prev.ID())
			return out, err
		}
		logger.V(1).Info("operation",
			"key", key, "layer", prev.ID(), "elapsed", time.Since(start))
		return out, err
	})
}
