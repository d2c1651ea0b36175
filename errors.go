package rasterpipe

import "errors"

// ErrArenaExhausted is the panic value raised when a bounded Arena cannot
// satisfy an allocation.
var ErrArenaExhausted = errors.New("rasterpipe: arena exhausted")
