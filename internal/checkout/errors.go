package checkout

import "github.com/go-faster/errors"

var ErrIllegalTransition = errors.New("illegal transition of checkout status")
