package scene

import (
	"errors"
	"fmt"
)

// Sentinels matched by the typed errors below.
var (
	ErrFormat   = errors.New("scene: invalid document")
	ErrLayout   = errors.New("scene: degenerate layout")
	ErrNotFound = errors.New("scene: not found")
)

// Error codes carried by FormatError.
const (
	CodeSyntax         = "SYNTAX"
	CodeMissingField   = "MISSING_FIELD"
	CodeDuplicateID    = "DUPLICATE_ID"
	CodeUnknownVariant = "UNKNOWN_VARIANT"
	CodeInvalidValue   = "INVALID_VALUE"
	CodeUnknownField   = "UNKNOWN_FIELD"
)

// FormatError rejects a structurally invalid document.
type FormatError struct {
	Code    string
	Path    string // node path such as root.children[1].transform.anchor
	Message string
}

func (e *FormatError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("[%s] %s", e.Code, e.Message)
	}
	return fmt.Sprintf("[%s] %s: %s", e.Code, e.Path, e.Message)
}

func (e *FormatError) Is(target error) bool {
	return target == ErrFormat
}

func formatErr(code, path, format string, args ...any) *FormatError {
	return &FormatError{Code: code, Path: path, Message: fmt.Sprintf(format, args...)}
}

// LayoutError reports a node whose rectangle cannot be resolved.
type LayoutError struct {
	NodeID  string // empty when the viewport itself is invalid
	Message string
}

func (e *LayoutError) Error() string {
	if e.NodeID == "" {
		return "layout: " + e.Message
	}
	return fmt.Sprintf("layout: node %q: %s", e.NodeID, e.Message)
}

func (e *LayoutError) Is(target error) bool {
	return target == ErrLayout
}
