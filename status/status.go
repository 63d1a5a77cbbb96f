// Package status carries the outcome of storage-engine operations.
//
// A Status is a small value type: either OK, or an error kind plus a
// human-readable message. It travels by value through return paths the
// way an error code would, but keeps enough context to be printed
// directly. Status deliberately does not implement the error interface;
// an OK Status is a normal, frequent value, not an exceptional one.
package status

import (
	"fmt"
	"strings"

	"github.com/halver/keel/view"
)

// Code identifies the kind of outcome a Status carries.
type Code uint8

const (
	CodeOK              Code = 0
	CodeNotFound        Code = 1
	CodeCorruption      Code = 2
	CodeNotSupported    Code = 3
	CodeInvalidArgument Code = 4
	CodeIOError         Code = 5
)

// String returns the display name of the code.
func (c Code) String() string {
	switch c {
	case CodeOK:
		return "OK"
	case CodeNotFound:
		return "NotFound"
	case CodeCorruption:
		return "Corruption"
	case CodeNotSupported:
		return "Not supported"
	case CodeInvalidArgument:
		return "Invalid argument"
	case CodeIOError:
		return "IO error"
	default:
		return fmt.Sprintf("Unknown code(%d)", uint8(c))
	}
}

// Status is the result of an operation: success, or an error kind with a
// message.
//
// The zero value is OK. Status values are immutable and copied freely;
// a copy is fully independent of the original. Construction copies the
// message fragments, so a Status never references the caller's storage.
type Status struct {
	code Code
	msg  string
}

// OK returns the success status.
func OK() Status {
	return Status{}
}

// NotFound returns a status reporting that a requested entity does not
// exist. Additional detail fragments are appended to the message,
// separated by ": ".
func NotFound(msg view.ByteView, detail ...view.ByteView) Status {
	return newStatus(CodeNotFound, msg, detail)
}

// Corruption returns a status reporting data that failed validation or
// could not be decoded.
func Corruption(msg view.ByteView, detail ...view.ByteView) Status {
	return newStatus(CodeCorruption, msg, detail)
}

// NotSupported returns a status reporting an operation the
// implementation does not provide.
func NotSupported(msg view.ByteView, detail ...view.ByteView) Status {
	return newStatus(CodeNotSupported, msg, detail)
}

// InvalidArgument returns a status reporting a request the caller
// formed incorrectly.
func InvalidArgument(msg view.ByteView, detail ...view.ByteView) Status {
	return newStatus(CodeInvalidArgument, msg, detail)
}

// IOError returns a status reporting a failure in the storage medium
// underneath the engine.
func IOError(msg view.ByteView, detail ...view.ByteView) Status {
	return newStatus(CodeIOError, msg, detail)
}

func newStatus(code Code, msg view.ByteView, detail []view.ByteView) Status {
	if len(detail) == 0 {
		return Status{code: code, msg: msg.String()}
	}

	size := msg.Len()
	for _, d := range detail {
		size += 2 + d.Len()
	}

	var sb strings.Builder
	sb.Grow(size)
	sb.Write(msg.Bytes())
	for _, d := range detail {
		sb.WriteString(": ")
		sb.Write(d.Bytes())
	}

	return Status{code: code, msg: sb.String()}
}

// OK reports whether the status is the success status.
func (s Status) OK() bool {
	return s.code == CodeOK
}

// IsNotFound reports whether the status carries CodeNotFound.
func (s Status) IsNotFound() bool {
	return s.code == CodeNotFound
}

// IsCorruption reports whether the status carries CodeCorruption.
func (s Status) IsCorruption() bool {
	return s.code == CodeCorruption
}

// IsNotSupported reports whether the status carries CodeNotSupported.
func (s Status) IsNotSupported() bool {
	return s.code == CodeNotSupported
}

// IsInvalidArgument reports whether the status carries CodeInvalidArgument.
func (s Status) IsInvalidArgument() bool {
	return s.code == CodeInvalidArgument
}

// IsIOError reports whether the status carries CodeIOError.
func (s Status) IsIOError() bool {
	return s.code == CodeIOError
}

// Code returns the status code.
func (s Status) Code() Code {
	return s.code
}

// Message returns the message without the kind prefix. It is empty for
// the OK status.
func (s Status) Message() string {
	return s.msg
}

// String renders the status for display: "OK" on success, otherwise the
// kind name followed by the message, e.g. "NotFound: missing key".
func (s Status) String() string {
	if s.code == CodeOK {
		return "OK"
	}

	return s.code.String() + ": " + s.msg
}
