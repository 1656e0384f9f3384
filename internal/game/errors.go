package game

import (
	"errors"
	"fmt"
)

var (
	// ErrUnexpectedInput is returned for an input the current screen does
	// not accept.
	ErrUnexpectedInput = errors.New("input not accepted on this screen")
	// ErrBusy is returned for a main answer while the previous one is
	// still settling.
	ErrBusy = errors.New("previous answer is still being processed")
	// ErrNotificationPending is returned for any input but acknowledge
	// or restart while a notification is open.
	ErrNotificationPending = errors.New("notification must be acknowledged first")
	ErrNoSuchOption        = errors.New("no such option")
	ErrUnknownCharacter    = errors.New("unknown character")
)

// InputError ties a rejected input to the screen it was sent to.
type InputError struct {
	Input  string
	Screen string
	Err    error
}

func (e *InputError) Error() string {
	return fmt.Sprintf("%s on %s: %v", e.Input, e.Screen, e.Err)
}

func (e *InputError) Unwrap() error { return e.Err }
