package domain

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// ReadInput buffers r completely and validates it as exactly one JSON
// document. Surrounding whitespace is allowed; anything after the document is
// not. The returned value is compacted.
func ReadInput(r io.Reader) (json.RawMessage, error) {
	if r == nil {
		return nil, fmt.Errorf("%w: no input", ErrInput)
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}

	return ParseInput(data)
}

// ParseInput validates data as a single JSON document.
func ParseInput(data []byte) (json.RawMessage, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, fmt.Errorf("%w: empty input", ErrInput)
	}

	dec := json.NewDecoder(bytes.NewReader(data))

	var doc json.RawMessage
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInput, err)
	}

	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: unexpected data after the JSON document", ErrInput)
	}

	var compact bytes.Buffer
	if err := json.Compact(&compact, doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInput, err)
	}

	return compact.Bytes(), nil
}
