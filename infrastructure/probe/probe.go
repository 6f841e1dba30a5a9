// Package probe reports basic video metadata before extraction. The real
// implementation uses OpenCV via gocv and is only compiled with
// -tags=probe; the default build ships a stub that reports itself
// unavailable.
package probe

import "errors"

// ErrUnavailable is returned by the stub prober.
var ErrUnavailable = errors.New("video probing requires building with -tags=probe")
