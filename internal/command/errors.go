package command

import "errors"

var (
	ErrEmptyCommand   = errors.New("command text is empty")
	ErrCommandTooLong = errors.New("command text exceeds the maximum length")
)
