package affirmation

import "errors"

var ErrEmpty = errors.New("no affirmations available")
