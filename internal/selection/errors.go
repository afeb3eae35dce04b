package selection

import "errors"

var ErrAlreadyDrawn = errors.New("numbers already drawn, clear before picking again")
var ErrLimitReached = errors.New("pick limit reached")
var ErrDuplicate = errors.New("number already picked")
var ErrOutOfRange = errors.New("number out of range")
