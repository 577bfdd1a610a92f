package apperror

import "errors"

var (
	ErrDictionaryNotFound = errors.New("dictionary file not found")
	ErrEmptyDictionary    = errors.New("dictionary has no words")
	ErrNoAvailableMoves   = errors.New("no available moves")
	ErrInputClosed        = errors.New("input closed")
	ErrUnknownVariant     = errors.New("unknown game variant")
	ErrResultNotFound     = errors.New("result not found")
)
