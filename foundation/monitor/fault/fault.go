// File: fault.go
// Title: Recoverable Command Faults
// Description: The error taxonomy of the command dispatcher. Every fault is
//              recoverable: the command failed and the shell keeps running.
//              Each kind maps onto a foundation error code so faults can be
//              logged and matched with mdwerror.HasCode.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial implementation

package fault

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	mdwerror "github.com/msto63/devmon/foundation/core/error"
)

// Kind classifies a fault
type Kind int

const (
	// KindSyntax is a malformed token sequence such as an unterminated array
	KindSyntax Kind = iota
	// KindResolution is an unknown device, member or variable
	KindResolution
	// KindAmbiguousOverload means two equally specific candidates both bind
	KindAmbiguousOverload
	// KindParametersMismatch means no candidate binds the supplied arguments
	KindParametersMismatch
	// KindConversion is a value that cannot be coerced into the target type
	KindConversion
	// KindAccess is a write to a read-only or a read of a write-only member
	KindAccess
)

// String returns the name of the kind
func (k Kind) String() string {
	switch k {
	case KindSyntax:
		return "syntax"
	case KindResolution:
		return "resolution"
	case KindAmbiguousOverload:
		return "ambiguous overload"
	case KindParametersMismatch:
		return "parameters mismatch"
	case KindConversion:
		return "conversion"
	case KindAccess:
		return "access"
	default:
		return "unknown"
	}
}

// Code returns the foundation error code of the kind
func (k Kind) Code() mdwerror.Code {
	switch k {
	case KindSyntax:
		return mdwerror.CodeMonitorSyntax
	case KindResolution:
		return mdwerror.CodeMonitorResolution
	case KindAmbiguousOverload:
		return mdwerror.CodeMonitorAmbiguousOverload
	case KindParametersMismatch:
		return mdwerror.CodeMonitorParametersMismatch
	case KindConversion:
		return mdwerror.CodeMonitorConversion
	case KindAccess:
		return mdwerror.CodeMonitorAccess
	default:
		return mdwerror.CodeUnknown
	}
}

// Error is a recoverable command fault
type Error struct {
	Kind    Kind
	Message string

	// OwnerType and Command identify the member whose binding failed. They are
	// set for parameter mismatches and ambiguous overloads so the caller can
	// print usage help for the offending command.
	OwnerType reflect.Type
	Command   string

	// Name is the object path the command was issued against, if known.
	Name string

	// Valid lists the legal names for a failed enum conversion.
	Valid []string

	// Err is the underlying reason, e.g. the last candidate's bind failure.
	Err error
}

// Error implements the error interface
func (e *Error) Error() string {
	return e.Message
}

// Unwrap returns the underlying reason
func (e *Error) Unwrap() error {
	return e.Err
}

// Code returns the foundation error code, which lets mdwerror.HasCode and
// mdwerror.GetCode classify faults.
func (e *Error) Code() mdwerror.Code {
	return e.Kind.Code()
}

// WithName returns e after recording the object path it was raised for.
// An already recorded name is kept.
func (e *Error) WithName(name string) *Error {
	if e.Name == "" {
		e.Name = name
	}
	return e
}

// Syntaxf creates a syntax fault
func Syntaxf(format string, args ...interface{}) *Error {
	return &Error{Kind: KindSyntax, Message: fmt.Sprintf(format, args...)}
}

// Resolutionf creates a resolution fault
func Resolutionf(format string, args ...interface{}) *Error {
	return &Error{Kind: KindResolution, Message: fmt.Sprintf(format, args...)}
}

// Accessf creates an access fault
func Accessf(format string, args ...interface{}) *Error {
	return &Error{Kind: KindAccess, Message: fmt.Sprintf(format, args...)}
}

// Conversionf creates a conversion fault
func Conversionf(format string, args ...interface{}) *Error {
	return &Error{Kind: KindConversion, Message: fmt.Sprintf(format, args...)}
}

// EnumConversion creates a conversion fault for an undeclared enum value. The
// message lists the valid names, one per line.
func EnumConversion(value interface{}, enumType reflect.Type, valid []string) *Error {
	var b strings.Builder
	fmt.Fprintf(&b, "Enum value %v is not defined for %s!\n\nPossible values are:\n", value, enumType)
	for _, name := range valid {
		fmt.Fprintf(&b, "\t%s\n", name)
	}
	return &Error{Kind: KindConversion, Message: b.String(), Valid: valid}
}

// Mismatch creates a parameters mismatch fault for command on owner
func Mismatch(owner reflect.Type, command string, cause error) *Error {
	return &Error{
		Kind:      KindParametersMismatch,
		Message:   "Parameters did not match the signature",
		OwnerType: owner,
		Command:   command,
		Err:       cause,
	}
}

// Ambiguous creates an ambiguous overload fault naming the competing signatures
func Ambiguous(owner reflect.Type, command string, signatures ...string) *Error {
	return &Error{
		Kind:      KindAmbiguousOverload,
		Message:   fmt.Sprintf("Ambiguous call to %s: %s", command, strings.Join(signatures, ", ")),
		OwnerType: owner,
		Command:   command,
	}
}

// As returns the outermost fault in err's chain
func As(err error) (*Error, bool) {
	var f *Error
	if errors.As(err, &f) {
		return f, true
	}
	return nil, false
}

// IsKind reports whether err is a fault of the given kind
func IsKind(err error, kind Kind) bool {
	f, ok := As(err)
	return ok && f.Kind == kind
}

// IsRecoverable reports whether err is a command fault, as opposed to an error
// raised by the invoked member itself.
func IsRecoverable(err error) bool {
	_, ok := As(err)
	return ok
}
