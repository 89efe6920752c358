// file: internals/client/confirm.go
package client

import "errors"

// ErrNotConfirmed is returned when a destructive action is dismissed at the
// confirmation step. No request is issued in that case.
var ErrNotConfirmed = errors.New("action not confirmed")

// Confirmer gates destructive actions. Every entity delete and every audio
// asset delete asks before issuing the request.
type Confirmer interface {
	Confirm(prompt string) bool
}

// ConfirmFunc adapts a plain function to Confirmer.
type ConfirmFunc func(prompt string) bool

func (f ConfirmFunc) Confirm(prompt string) bool { return f(prompt) }

// AlwaysConfirm is the non-interactive confirmer used by scripts.
var AlwaysConfirm = ConfirmFunc(func(string) bool { return true })
