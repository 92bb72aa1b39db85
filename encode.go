package cashbook

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// ErrInvalidDocument reports a data file that is not a ledger document:
// either not JSON at all, or missing one of the required top-level fields.
var ErrInvalidDocument = errors.New("invalid ledger document")

// requiredFields are the top-level properties a document must carry to be
// accepted. The check is deliberately shallow (presence only, not shape):
// this is a local single-user file, and Load recovers from anything worse.
var requiredFields = []string{"version", "meta", "entries", "categories", "accounts"}

// DecodeDocument reads a ledger document from r.
//
// It first verifies that every required top-level field is present, then
// unmarshals the whole document. Both failure modes are reported as
// ErrInvalidDocument so that callers can branch on them with errors.Is.
func DecodeDocument(r io.Reader) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("could not read document: %w", err)
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	for _, field := range requiredFields {
		if _, ok := raw[field]; !ok {
			return nil, fmt.Errorf("%w: missing %q", ErrInvalidDocument, field)
		}
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	return &doc, nil
}

// EncodeDocument writes the document to w as pretty-printed UTF-8 JSON. Key
// order follows the struct layout and is stable across saves, keeping the
// file diffable under version control.
func EncodeDocument(w io.Writer, doc *Document) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("could not encode document: %w", err)
	}
	data = append(data, '\n')
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("could not write document: %w", err)
	}
	return nil
}
