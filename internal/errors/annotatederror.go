// Package errors extends the standard library errors package with annotated
// errors that carry [slog.Attr] annotations and the source location where the
// annotation was created. The standard helpers Is, As, Join, and Unwrap are
// re-exported so that callers only need one errors import.
package errors

import (
	stderrors "errors"
	"fmt"
	"log/slog"
	"runtime"
)

// annotatedError wraps an error with a message, slog attributes, and the
// program counter of the annotation site.
type annotatedError struct {
	msg   string
	err   error
	attrs []slog.Attr
	pc    uintptr
}

func (e *annotatedError) Error() string {
	if e.err == nil {
		return e.msg
	}
	return e.msg + ": " + e.err.Error()
}

func (e *annotatedError) Unwrap() error {
	return e.err
}

// caller returns the program counter skip frames above the caller of caller.
func caller(skip int) uintptr {
	var pcs [1]uintptr
	// skip+2 accounts for runtime.Callers and caller itself.
	runtime.Callers(skip+2, pcs[:])
	return pcs[0]
}

// New returns an error that formats as the given text. It delegates to the
// standard library.
func New(text string) error {
	return stderrors.New(text)
}

// NewSentinel creates a sentinel error annotated with the source location of
// the call site.
func NewSentinel(msg string) error {
	return &annotatedError{msg: msg, err: nil, attrs: nil, pc: caller(1)}
}

// Wrap annotates err with msg and optional [slog.Attr] that are surfaced by
// [SlogError]. A nil err is allowed and produces an error with only msg.
func Wrap(err error, msg string, attrs ...slog.Attr) error {
	return &annotatedError{msg: msg, err: err, attrs: attrs, pc: caller(1)}
}

// DecoratePanic converts a value recovered from a panic into an annotated
// error pointing at the recovery site.
func DecoratePanic(excp any) error {
	return &annotatedError{msg: fmt.Sprintf("panic: %v", excp), err: nil, attrs: nil, pc: caller(1)}
}

// Is delegates to the standard library.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As delegates to the standard library.
func As(err error, target any) bool {
	return stderrors.As(err, target)
}

// Join delegates to the standard library.
func Join(errs ...error) error {
	return stderrors.Join(errs...)
}

// Unwrap delegates to the standard library.
func Unwrap(err error) error {
	return stderrors.Unwrap(err)
}

// SlogError renders err into a [slog.Attr] under the "error" key containing
// the message, the collected annotations from the error chain, and the source
// location of the outermost annotation.
func SlogError(err error) slog.Attr {
	if err == nil {
		return slog.Attr{Key: "error", Value: slog.StringValue("<nil>")}
	}

	var (
		annotations []slog.Attr
		source      string
	)
	collectAnnotations(err, &annotations, &source)

	groupAttrs := []slog.Attr{slog.String("message", err.Error())}
	if len(annotations) > 0 {
		groupAttrs = append(groupAttrs, slog.Attr{Key: "annotations", Value: slog.GroupValue(annotations...)})
	}
	if source != "" {
		groupAttrs = append(groupAttrs, slog.String("source", source))
	}

	return slog.Attr{Key: "error", Value: slog.GroupValue(groupAttrs...)}
}

// collectAnnotations walks the error chain gathering annotation attributes.
// The source location of the outermost annotated error wins.
func collectAnnotations(err error, annotations *[]slog.Attr, source *string) {
	if err == nil {
		return
	}

	if annotated, ok := err.(*annotatedError); ok {
		if *source == "" && annotated.pc != 0 {
			*source = formatPC(annotated.pc)
		}
		*annotations = append(*annotations, annotated.attrs...)
		collectAnnotations(annotated.err, annotations, source)
		return
	}

	switch x := err.(type) {
	case interface{ Unwrap() []error }:
		for _, joined := range x.Unwrap() {
			collectAnnotations(joined, annotations, source)
		}
	case interface{ Unwrap() error }:
		collectAnnotations(x.Unwrap(), annotations, source)
	}
}

// formatPC resolves a program counter into a "file:line" string.
func formatPC(pc uintptr) string {
	frames := runtime.CallersFrames([]uintptr{pc})
	frame, _ := frames.Next()
	return fmt.Sprintf("%s:%d", frame.File, frame.Line)
}
