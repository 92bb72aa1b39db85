package cashbook

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestDecodeDocumentMissingFieldNamesIt(t *testing.T) {
	in := `{"version":"1.0.0","meta":{},"entries":[],"accounts":[],"settings":{}}`
	_, err := DecodeDocument(strings.NewReader(in))
	if !errors.Is(err, ErrInvalidDocument) {
		t.Fatalf("DecodeDocument() error = %v, want ErrInvalidDocument", err)
	}
	if !strings.Contains(err.Error(), "categories") {
		t.Errorf("error %q does not name the missing field", err)
	}
}

func TestDecodeDocumentNotJSON(t *testing.T) {
	_, err := DecodeDocument(strings.NewReader("hello"))
	if !errors.Is(err, ErrInvalidDocument) {
		t.Errorf("DecodeDocument() error = %v, want ErrInvalidDocument", err)
	}
}

func TestEncodeIsStable(t *testing.T) {
	doc := NewDefaultDocument()

	var a, b bytes.Buffer
	if err := EncodeDocument(&a, doc); err != nil {
		t.Fatalf("EncodeDocument() error = %v", err)
	}
	if err := EncodeDocument(&b, doc); err != nil {
		t.Fatalf("EncodeDocument() error = %v", err)
	}
	if !bytes.Equal(a.Bytes(), b.Bytes()) {
		t.Errorf("two encodings of the same document differ")
	}
	if !bytes.HasSuffix(a.Bytes(), []byte("}\n")) {
		t.Errorf("encoding does not end with a newline")
	}

	// Key order follows the struct layout: version first, settings last.
	out := a.String()
	if !strings.HasPrefix(out, "{\n  \"version\"") {
		t.Errorf("encoding does not start with the version field:\n%s", out[:80])
	}
	if strings.Index(out, `"entries"`) > strings.Index(out, `"categories"`) {
		t.Errorf("entries serialized after categories")
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	doc := NewDefaultDocument()
	var buf bytes.Buffer
	if err := EncodeDocument(&buf, doc); err != nil {
		t.Fatalf("EncodeDocument() error = %v", err)
	}
	got, err := DecodeDocument(&buf)
	if err != nil {
		t.Fatalf("DecodeDocument() error = %v", err)
	}
	if len(got.Categories) != len(doc.Categories) || len(got.Accounts) != 1 {
		t.Errorf("round trip lost collection members")
	}
	if got.Settings != doc.Settings {
		t.Errorf("round trip changed settings: %+v != %+v", got.Settings, doc.Settings)
	}
}
