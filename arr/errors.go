package arr

import "errors"

// ErrIndexOutOfRange is returned when an index or range falls outside the
// bounds of a slice.
var ErrIndexOutOfRange = errors.New("arr: index out of range")
