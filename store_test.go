package cashbook

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

// encodeToBytes serializes a document the way the store does, so tests can
// compare documents structurally without tripping over time.Time internals.
func encodeToBytes(t *testing.T, doc *Document) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := EncodeDocument(&buf, doc); err != nil {
		t.Fatalf("EncodeDocument() error = %v", err)
	}
	return buf.Bytes()
}

func TestLoadBootstrapsDefaultDocument(t *testing.T) {
	store, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewStore() error = %v", err)
	}

	doc, err := store.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if got := len(doc.Categories); got != 11 {
		t.Errorf("default document has %d categories, want 11", got)
	}
	if got := len(doc.Accounts); got != 1 {
		t.Fatalf("default document has %d accounts, want 1", got)
	}
	acct := doc.Accounts[0]
	if acct.Name != "现金" || !acct.IsDefault || acct.InitialBalance != 0 {
		t.Errorf("seed account = %q default=%v balance=%d, want 现金 default=true balance=0",
			acct.Name, acct.IsDefault, acct.InitialBalance)
	}
	if doc.Settings.Currency != "CNY" {
		t.Errorf("seed currency = %q, want CNY", doc.Settings.Currency)
	}
	if doc.Version != Version {
		t.Errorf("version = %q, want %q", doc.Version, Version)
	}

	// The default document must have been persisted: a second load returns
	// the very same document.
	again, err := store.Load()
	if err != nil {
		t.Fatalf("second Load() error = %v", err)
	}
	if !bytes.Equal(encodeToBytes(t, doc), encodeToBytes(t, again)) {
		t.Errorf("second Load() returned a different document")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	store, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewStore() error = %v", err)
	}
	doc, err := store.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	entry, err := NewEntry(Expense, 1250, doc.ExpenseCategories()[0].ID, doc.Accounts[0].ID, NewDate(2026, 8, 28))
	if err != nil {
		t.Fatalf("NewEntry() error = %v", err)
	}
	entry.Remark = "lunch"
	entry.Tags = []string{"work"}
	if err := doc.AddEntry(entry); err != nil {
		t.Fatalf("AddEntry() error = %v", err)
	}

	before := doc.Meta.UpdatedAt
	time.Sleep(10 * time.Millisecond)
	if err := store.Save(doc); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if !doc.Meta.UpdatedAt.After(before) {
		t.Errorf("Save() did not advance meta.updatedAt")
	}

	loaded, err := store.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !bytes.Equal(encodeToBytes(t, doc), encodeToBytes(t, loaded)) {
		t.Errorf("round trip mismatch:\nsaved  %s\nloaded %s", encodeToBytes(t, doc), encodeToBytes(t, loaded))
	}
	if loaded.Entries[0].Remark != "lunch" {
		t.Errorf("loaded entry remark = %q, want lunch", loaded.Entries[0].Remark)
	}
}

func TestLoadRecoversFromCorruptFile(t *testing.T) {
	dir := t.TempDir()
	store, err := NewStore(dir)
	if err != nil {
		t.Fatalf("NewStore() error = %v", err)
	}
	if err := os.WriteFile(store.DataPath(), []byte("this is not json {"), 0644); err != nil {
		t.Fatalf("could not plant corrupt file: %v", err)
	}

	doc, err := store.Load()
	if err != nil {
		t.Fatalf("Load() on corrupt file error = %v, want silent recovery", err)
	}
	if len(doc.Categories) != 11 {
		t.Errorf("recovered document has %d categories, want the 11 seed ones", len(doc.Categories))
	}

	// The corrupt file must have been overwritten with a valid document.
	data, err := os.ReadFile(store.DataPath())
	if err != nil {
		t.Fatalf("could not read data file: %v", err)
	}
	if _, err := DecodeDocument(bytes.NewReader(data)); err != nil {
		t.Errorf("data file still invalid after recovery: %v", err)
	}
}

func TestLoadRecoversFromMissingTopLevelField(t *testing.T) {
	store, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewStore() error = %v", err)
	}
	// Valid JSON, but no "categories".
	planted := `{"version":"1.0.0","meta":{},"entries":[],"accounts":[],"settings":{}}`
	if err := os.WriteFile(store.DataPath(), []byte(planted), 0644); err != nil {
		t.Fatalf("could not plant file: %v", err)
	}

	doc, err := store.Load()
	if err != nil {
		t.Fatalf("Load() error = %v, want silent recovery", err)
	}
	if len(doc.Categories) != 11 {
		t.Errorf("recovered document has %d categories, want 11", len(doc.Categories))
	}
}

func TestExportBeforeFirstSave(t *testing.T) {
	store, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewStore() error = %v", err)
	}

	err = store.ExportTo(filepath.Join(t.TempDir(), "out.json"))
	if !errors.Is(err, ErrNoData) {
		t.Errorf("ExportTo() before any save error = %v, want ErrNoData", err)
	}
}

func TestExportCopiesBytes(t *testing.T) {
	store, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewStore() error = %v", err)
	}
	if _, err := store.Load(); err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	dst := filepath.Join(t.TempDir(), "export.json")
	if err := store.ExportTo(dst); err != nil {
		t.Fatalf("ExportTo() error = %v", err)
	}

	want, _ := os.ReadFile(store.DataPath())
	got, err := os.ReadFile(dst)
	if err != nil {
		t.Fatalf("could not read export: %v", err)
	}
	if !bytes.Equal(got, want) {
		t.Errorf("export is not a byte copy of the data file")
	}
}

func TestImportRejectsInvalidDocument(t *testing.T) {
	store, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewStore() error = %v", err)
	}
	if _, err := store.Load(); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	before, _ := os.ReadFile(store.DataPath())

	bad := filepath.Join(t.TempDir(), "bad.json")
	// Valid JSON missing "categories".
	if err := os.WriteFile(bad, []byte(`{"version":"1.0.0","meta":{},"entries":[],"accounts":[]}`), 0644); err != nil {
		t.Fatalf("could not write import file: %v", err)
	}

	if _, err := store.ImportFrom(bad); !errors.Is(err, ErrInvalidDocument) {
		t.Errorf("ImportFrom() error = %v, want ErrInvalidDocument", err)
	}

	after, _ := os.ReadFile(store.DataPath())
	if !bytes.Equal(before, after) {
		t.Errorf("failed import modified the live data file")
	}
}

func TestImportOverwritesLiveFile(t *testing.T) {
	store, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewStore() error = %v", err)
	}
	if _, err := store.Load(); err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	// Build a distinct valid document elsewhere and export it.
	other, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewStore() error = %v", err)
	}
	otherDoc, err := other.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	acct, err := NewAccount("微信钱包", EWallet, 5000)
	if err != nil {
		t.Fatalf("NewAccount() error = %v", err)
	}
	if err := otherDoc.AddAccount(acct); err != nil {
		t.Fatalf("AddAccount() error = %v", err)
	}
	if err := other.Save(otherDoc); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	exported := filepath.Join(t.TempDir(), "exported.json")
	if err := other.ExportTo(exported); err != nil {
		t.Fatalf("ExportTo() error = %v", err)
	}

	imported, err := store.ImportFrom(exported)
	if err != nil {
		t.Fatalf("ImportFrom() error = %v", err)
	}
	if imported.AccountByName("微信钱包") == nil {
		t.Fatalf("imported document misses the expected account")
	}

	// The live file now holds the imported document.
	loaded, err := store.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if loaded.AccountByName("微信钱包") == nil {
		t.Errorf("live data file was not overwritten by the import")
	}
}

func TestDataFileIsPrettyPrinted(t *testing.T) {
	store, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewStore() error = %v", err)
	}
	if _, err := store.Load(); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	data, err := os.ReadFile(store.DataPath())
	if err != nil {
		t.Fatalf("could not read data file: %v", err)
	}
	if !bytes.Contains(data, []byte("\n  \"version\"")) {
		t.Errorf("data file does not look pretty-printed:\n%s", data)
	}
	if !json.Valid(data) {
		t.Errorf("data file is not valid JSON")
	}
}
