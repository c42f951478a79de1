package gauge

import "errors"

// ErrInvalidArgument is returned by every setter that rejects its input.
// The state is left untouched when it is returned.
var ErrInvalidArgument = errors.New("invalid argument")
