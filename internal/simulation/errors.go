package simulation

import (
	"errors"
	"fmt"
)

// Code classifies why a scenario was rejected.
type Code int

const (
	InvalidBoardSize Code = iota + 1
	InvalidInsectCount
	InvalidFoodCount
	InvalidInsectColor
	InvalidInsectKind
	InvalidEntityPosition
	DuplicateInsect
	OverlappingPosition
	InvalidFoodValue
	MalformedInput
)

var codeMessages = map[Code]string{
	InvalidBoardSize:      "Invalid board size",
	InvalidInsectCount:    "Invalid number of insects",
	InvalidFoodCount:      "Invalid number of food points",
	InvalidInsectColor:    "Invalid insect color",
	InvalidInsectKind:     "Invalid insect type",
	InvalidEntityPosition: "Invalid entity position",
	DuplicateInsect:       "Duplicate insects",
	OverlappingPosition:   "Two entities in the same position",
	InvalidFoodValue:      "Invalid food value",
	MalformedInput:        "Invalid input",
}

// Message returns the line written to the result sink for this code.
func (c Code) Message() string {
	if msg, ok := codeMessages[c]; ok {
		return msg
	}
	return "Unknown error"
}

// ValidationError rejects a scenario. It is always fatal to the run.
type ValidationError struct {
	Code   Code
	Detail string
}

func (e *ValidationError) Error() string {
	if e.Detail == "" {
		return e.Code.Message()
	}
	return e.Code.Message() + ": " + e.Detail
}

// Is matches any ValidationError with the same code, so the sentinels below
// work with errors.Is whatever the detail.
func (e *ValidationError) Is(target error) bool {
	t, ok := target.(*ValidationError)
	return ok && t.Code == e.Code
}

var (
	ErrInvalidBoardSize      = &ValidationError{Code: InvalidBoardSize}
	ErrInvalidInsectCount    = &ValidationError{Code: InvalidInsectCount}
	ErrInvalidFoodCount      = &ValidationError{Code: InvalidFoodCount}
	ErrInvalidInsectColor    = &ValidationError{Code: InvalidInsectColor}
	ErrInvalidInsectKind     = &ValidationError{Code: InvalidInsectKind}
	ErrInvalidEntityPosition = &ValidationError{Code: InvalidEntityPosition}
	ErrDuplicateInsect       = &ValidationError{Code: DuplicateInsect}
	ErrOverlappingPosition   = &ValidationError{Code: OverlappingPosition}
	ErrInvalidFoodValue      = &ValidationError{Code: InvalidFoodValue}
	ErrMalformedInput        = &ValidationError{Code: MalformedInput}
)

// Reject builds a ValidationError with a formatted detail.
func Reject(code Code, format string, args ...any) error {
	return &ValidationError{Code: code, Detail: fmt.Sprintf(format, args...)}
}

// Message returns the single result line for err. Errors that are not
// validation errors are reported verbatim.
func Message(err error) string {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Code.Message()
	}
	return err.Error()
}
