package metrics

import "errors"

// ErrObserveFailed wraps failures gathering metric families from the registry.
var ErrObserveFailed = errors.New("metrics: gather failed")
