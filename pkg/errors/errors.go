package errors

import (
	"fmt"
	"runtime"
)

// ErrorCode identifies the kind of domain failure a TradSysError carries.
type ErrorCode string

const (
	// ErrInvalidIdentifier: an identifier was constructed from an empty or
	// otherwise malformed string.
	ErrInvalidIdentifier ErrorCode = "INVALID_IDENTIFIER"
	// ErrPrecisionOutOfRange: a fixed-point value was constructed with more
	// than FixedPrecision (9) decimal digits.
	ErrPrecisionOutOfRange ErrorCode = "PRECISION_OUT_OF_RANGE"
	// ErrOutOfBounds: a fixed-point value falls outside its type's
	// representable range.
	ErrOutOfBounds ErrorCode = "OUT_OF_BOUNDS"
	// ErrCurrencyMismatch: an arithmetic or comparison operation was
	// attempted between Money values of different currencies.
	ErrCurrencyMismatch ErrorCode = "CURRENCY_MISMATCH"
	// ErrUnknownEnumVariant: a wire discriminant or name did not match any
	// known enum variant.
	ErrUnknownEnumVariant ErrorCode = "UNKNOWN_ENUM_VARIANT"
	// ErrDuplicateOrder: an order book mutation referenced an order_id
	// already present on the book.
	ErrDuplicateOrder ErrorCode = "DUPLICATE_ORDER"
	// ErrUnknownOrder: an order book mutation referenced an order_id not
	// present on the book.
	ErrUnknownOrder ErrorCode = "UNKNOWN_ORDER"
	// ErrSideMismatch: an operation targeted the wrong side of the book for
	// the referenced order.
	ErrSideMismatch ErrorCode = "SIDE_MISMATCH"
	// ErrInvalidBookOperation: an operation is not valid for the book's
	// configured BookType (e.g. a quote tick applied to a non-L1 book).
	ErrInvalidBookOperation ErrorCode = "INVALID_BOOK_OPERATION"
	// ErrEmptyBook: a query requiring at least one level was made against
	// an empty book or side.
	ErrEmptyBook ErrorCode = "EMPTY_BOOK"
	// ErrBookCrossed: check_integrity found the best bid at or above the
	// best ask.
	ErrBookCrossed ErrorCode = "BOOK_CROSSED"
	// ErrOverflow: a fixed-point arithmetic operation overflowed its
	// backing integer type.
	ErrOverflow ErrorCode = "OVERFLOW"
)

// TradSysError is the structured error type used throughout the module. It
// carries a stable Code for programmatic handling plus caller location for
// diagnostics.
type TradSysError struct {
	Code     ErrorCode
	Message  string
	Details  map[string]interface{}
	File     string
	Line     int
	Function string
	Cause    error
}

// Error implements the error interface.
func (e *TradSysError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s (caused by: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause, if any.
func (e *TradSysError) Unwrap() error {
	return e.Cause
}

// WithDetail attaches a diagnostic key/value pair to the error.
func (e *TradSysError) WithDetail(key string, value interface{}) *TradSysError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithCause sets the error's underlying cause.
func (e *TradSysError) WithCause(cause error) *TradSysError {
	e.Cause = cause
	return e
}

func caller() (file string, line int, function string) {
	pc, file, line, _ := runtime.Caller(2)
	if fn := runtime.FuncForPC(pc); fn != nil {
		function = fn.Name()
	}
	return file, line, function
}

// New creates a TradSysError with the given code and message.
func New(code ErrorCode, message string) *TradSysError {
	file, line, fn := caller()
	return &TradSysError{Code: code, Message: message, File: file, Line: line, Function: fn}
}

// Newf creates a TradSysError with a formatted message.
func Newf(code ErrorCode, format string, args ...interface{}) *TradSysError {
	file, line, fn := caller()
	return &TradSysError{Code: code, Message: fmt.Sprintf(format, args...), File: file, Line: line, Function: fn}
}

// Wrap wraps an existing error in a TradSysError with the given code and
// message. Returns nil if err is nil.
func Wrap(err error, code ErrorCode, message string) *TradSysError {
	if err == nil {
		return nil
	}
	file, line, fn := caller()
	return &TradSysError{Code: code, Message: message, File: file, Line: line, Function: fn, Cause: err}
}

// Wrapf wraps an existing error in a TradSysError with a formatted message.
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *TradSysError {
	if err == nil {
		return nil
	}
	file, line, fn := caller()
	return &TradSysError{Code: code, Message: fmt.Sprintf(format, args...), File: file, Line: line, Function: fn, Cause: err}
}

// Is reports whether err is a TradSysError of the given code, unwrapping
// through any Cause chain.
func Is(err error, code ErrorCode) bool {
	var tradSysErr *TradSysError
	if As(err, &tradSysErr) {
		return tradSysErr.Code == code
	}
	return false
}

// As finds the first TradSysError in err's chain and assigns it to target,
// which must be a **TradSysError.
func As(err error, target interface{}) bool {
	if err == nil {
		return false
	}
	if tradSysErr, ok := err.(*TradSysError); ok {
		if targetPtr, ok := target.(**TradSysError); ok {
			*targetPtr = tradSysErr
			return true
		}
	}
	if unwrapper, ok := err.(interface{ Unwrap() error }); ok {
		return As(unwrapper.Unwrap(), target)
	}
	return false
}

// GetErrorCode extracts the ErrorCode from err, or "" if err is not (or
// does not wrap) a TradSysError.
func GetErrorCode(err error) ErrorCode {
	var tradSysErr *TradSysError
	if As(err, &tradSysErr) {
		return tradSysErr.Code
	}
	return ""
}

// GetErrorDetails extracts the Details map from err, or nil.
func GetErrorDetails(err error) map[string]interface{} {
	var tradSysErr *TradSysError
	if As(err, &tradSysErr) {
		return tradSysErr.Details
	}
	return nil
}
