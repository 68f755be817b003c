package quizService

import "errors"

var (
	ErrNoPairsAvailable  = errors.New("no overlapping originals and generations")
	ErrInsufficientPairs = errors.New("not enough pairs with generations")
	ErrInvalidPairCount  = errors.New("pair count must be positive")
)
