package dataset

import "errors"

var ErrFileNotFound = errors.New("dataset file not found")
