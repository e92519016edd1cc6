package errcode

import (
	"errors"

	"tinygo.org/x/drivers/netlink"
)

// Code is a stable, bus-facing error identifier.
// It is a string newtype, comparable, allocation-free, and implements error.
type Code string

func (c Code) Error() string { return string(c) }

// Canonical codes (short, stable).
const (
	OK             Code = "ok"
	Unsupported    Code = "unsupported"
	InvalidParams  Code = "invalid_params"
	InvalidPayload Code = "invalid_payload"

	UnknownPin Code = "unknown_pin"
	PinInUse   Code = "pin_in_use"
	Timeout    Code = "timeout"

	WriteFailed      Code = "write_failed"
	LinkDown         Code = "link_down"
	ConnectFailed    Code = "connect_failed"
	AlreadyConnected Code = "already_connected"

	Error Code = "error" // generic fallback
)

// E keeps an operation name and an underlying cause next to a Code.
type E struct {
	C   Code
	Op  string
	Msg string
	Err error
}

func (e *E) Error() string {
	s := string(e.C)
	if e.Op != "" {
		s = e.Op + ": " + s
	}
	if e.Msg != "" {
		s += ": " + e.Msg
	}
	return s
}
func (e *E) Unwrap() error { return e.Err }
func (e *E) Code() Code    { return e.C }

// Wrap returns an *E for op with code c, or nil if err is nil.
func Wrap(c Code, op string, err error) error {
	if err == nil {
		return nil
	}
	msg := ""
	if _, ok := err.(Code); !ok {
		msg = err.Error()
	}
	return &E{C: c, Op: op, Msg: msg, Err: err}
}

// Of extracts a Code from an error, defaulting to Error.
func Of(err error) Code {
	if err == nil {
		return OK
	}
	if c, ok := err.(Code); ok {
		return c
	}
	type coder interface{ Code() Code }
	if x, ok := err.(coder); ok {
		return x.Code()
	}
	return Error
}

// MapDriverErr maps low-level driver errors to a Code.
// Driver errors that already carry a Code pass through unchanged.
func MapDriverErr(err error) Code {
	if err == nil {
		return OK
	}
	if c := Of(err); c != Error {
		return c
	}
	switch {
	case errors.Is(err, netlink.ErrConnected):
		return AlreadyConnected
	case errors.Is(err, netlink.ErrConnectTimeout):
		return Timeout
	case errors.Is(err, netlink.ErrNotSupported), errors.Is(err, netlink.ErrConnectModeNoGood),
		errors.Is(err, netlink.ErrAuthTypeNoGood):
		return Unsupported
	case errors.Is(err, netlink.ErrMissingSSID), errors.Is(err, netlink.ErrShortPassphrase):
		return InvalidParams
	case errors.Is(err, netlink.ErrConnectFailed), errors.Is(err, netlink.ErrAuthFailure):
		return ConnectFailed
	}
	return Error
}
