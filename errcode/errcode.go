package errcode

// Code is a stable, machine-readable error identifier.
// It is a string newtype, comparable, allocation-free, and implements error.
type Code string

func (c Code) Error() string { return string(c) }

// Canonical codes (short, stable).
const (
	OK          Code = "ok"
	Unsupported Code = "unsupported"

	// Clock tree
	FreqTooHigh Code = "freq_too_high"
	FreqTooLow  Code = "freq_too_low"

	// Serial
	BpsTooHigh Code = "bps_too_high"
	BpsTooLow  Code = "bps_too_low"
	TxBusy     Code = "tx_busy"
	RxEmpty    Code = "rx_empty"

	// Timers
	AlreadyStopped Code = "already_stopped"
	NoCapture      Code = "no_capture"
	Overrun        Code = "capture_overrun"

	// Ownership
	Consumed     Code = "handle_consumed"
	AlreadyTaken Code = "already_taken"
	ForeignParts Code = "foreign_parts"
	ProxyUnset   Code = "proxy_unset"

	Error Code = "error" // generic fallback
)

// E keeps an operation name and a cause alongside a Code.
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

// Is lets errors.Is(err, SomeCode) match a wrapped E.
func (e *E) Is(target error) bool {
	c, ok := target.(Code)
	return ok && c == e.C
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

// Recovered classifies a value returned by recover(). Values that are not
// errors map to Error; nil maps to OK.
func Recovered(v any) Code {
	if v == nil {
		return OK
	}
	if err, ok := v.(error); ok {
		return Of(err)
	}
	return Error
}
