package formats

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// ParseYAML decodes a YAML scene document. Unknown keys are rejected.
func ParseYAML(data []byte) (*Document, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var doc Document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrSyntax)
		}
		var typeErr *yaml.TypeError
		if errors.As(err, &typeErr) {
			return nil, classifyYAML(typeErr)
		}
		return nil, fmt.Errorf("%w: %v", ErrSyntax, err)
	}

	return &doc, nil
}

// classifyYAML reports the first problem of a decoding error.
// Unknown fields take precedence over type mismatches.
func classifyYAML(err *yaml.TypeError) error {
	for _, msg := range err.Errors {
		if strings.Contains(msg, "not found in type") {
			return fmt.Errorf("%w: %s", ErrUnknownField, msg)
		}
	}
	return fmt.Errorf("%w: %s", ErrType, strings.Join(err.Errors, "; "))
}
