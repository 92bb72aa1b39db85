package cashbook

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func newTestStore(t *testing.T) (*Store, *Document) {
	t.Helper()
	store, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewStore() error = %v", err)
	}
	doc, err := store.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	return store, doc
}

func TestCreateBackupRequiresData(t *testing.T) {
	store, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewStore() error = %v", err)
	}
	backups, err := NewBackups(store)
	if err != nil {
		t.Fatalf("NewBackups() error = %v", err)
	}

	if _, err := backups.Create(); !errors.Is(err, ErrNoData) {
		t.Errorf("Create() before any save error = %v, want ErrNoData", err)
	}
}

func TestBackupAndRestore(t *testing.T) {
	store, doc := newTestStore(t)
	backups, err := NewBackups(store)
	if err != nil {
		t.Fatalf("NewBackups() error = %v", err)
	}

	path, err := backups.Create()
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	want, _ := os.ReadFile(store.DataPath())
	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("could not read backup: %v", err)
	}
	if !bytes.Equal(got, want) {
		t.Errorf("backup is not a byte copy of the data file")
	}

	// Mutate and save, then restore: the pre-mutation state comes back.
	acct, err := NewAccount("招行卡", DebitCard, 0)
	if err != nil {
		t.Fatalf("NewAccount() error = %v", err)
	}
	if err := doc.AddAccount(acct); err != nil {
		t.Fatalf("AddAccount() error = %v", err)
	}
	if err := store.Save(doc); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	if err := backups.Restore(path); err != nil {
		t.Fatalf("Restore() error = %v", err)
	}
	restored, err := store.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if restored.AccountByName("招行卡") != nil {
		t.Errorf("restore did not roll back the data file")
	}
}

func TestRestoreMissingBackup(t *testing.T) {
	store, _ := newTestStore(t)
	backups, err := NewBackups(store)
	if err != nil {
		t.Fatalf("NewBackups() error = %v", err)
	}
	if err := backups.Restore(filepath.Join(backups.Dir(), "nope.json")); err == nil {
		t.Errorf("Restore() of a missing file did not fail")
	}
}

func TestListBackupsNewestFirst(t *testing.T) {
	store, _ := newTestStore(t)
	backups, err := NewBackups(store)
	if err != nil {
		t.Fatalf("NewBackups() error = %v", err)
	}

	base := time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC)
	names := []string{
		"ledger-backup-2026-08-28T10-00-00-000Z.json",
		"ledger-backup-2026-08-28T10-05-00-000Z.json",
		"ledger-backup-2026-08-28T10-10-00-000Z.json",
	}
	for i, name := range names {
		path := filepath.Join(backups.Dir(), name)
		if err := os.WriteFile(path, []byte("{}"), 0644); err != nil {
			t.Fatalf("could not write backup fixture: %v", err)
		}
		stamp := base.Add(time.Duration(i) * 5 * time.Minute)
		if err := os.Chtimes(path, stamp, stamp); err != nil {
			t.Fatalf("could not set times: %v", err)
		}
	}
	// Files not matching the naming pattern are ignored.
	if err := os.WriteFile(filepath.Join(backups.Dir(), "notes.txt"), []byte("x"), 0644); err != nil {
		t.Fatalf("could not write stray file: %v", err)
	}

	records, err := backups.List()
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(records) != len(names) {
		t.Fatalf("List() returned %d records, want %d", len(records), len(names))
	}
	for i := 1; i < len(records); i++ {
		if !records[i-1].CreatedAt.After(records[i].CreatedAt) {
			t.Errorf("List() not strictly descending at %d: %v then %v",
				i, records[i-1].CreatedAt, records[i].CreatedAt)
		}
	}
	if records[0].FileName != names[2] {
		t.Errorf("newest backup = %q, want %q", records[0].FileName, names[2])
	}
	if records[0].Size != 2 {
		t.Errorf("record size = %d, want 2", records[0].Size)
	}
}

func TestDeleteBackup(t *testing.T) {
	store, _ := newTestStore(t)
	backups, err := NewBackups(store)
	if err != nil {
		t.Fatalf("NewBackups() error = %v", err)
	}
	path, err := backups.Create()
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if err := backups.Delete(path); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, err := os.Stat(path); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("backup still present after Delete()")
	}
	// Deleting again is a no-op, not an error.
	if err := backups.Delete(path); err != nil {
		t.Errorf("Delete() of a missing file error = %v, want nil", err)
	}
}

func TestAutoBackup(t *testing.T) {
	store, doc := newTestStore(t)
	backups, err := NewBackups(store)
	if err != nil {
		t.Fatalf("NewBackups() error = %v", err)
	}

	// Never backed up: one is due.
	path, created, err := backups.AutoBackup(doc)
	if err != nil {
		t.Fatalf("AutoBackup() error = %v", err)
	}
	if !created || path == "" {
		t.Fatalf("AutoBackup() = (%q, %v), want a backup on first use", path, created)
	}
	if doc.Meta.LastBackupAt.IsZero() {
		t.Errorf("AutoBackup() did not stamp meta.lastBackupAt")
	}

	// Freshly backed up: nothing due.
	if _, created, _ := backups.AutoBackup(doc); created {
		t.Errorf("AutoBackup() created a backup before the interval elapsed")
	}

	// Last backup older than the interval: due again.
	doc.Meta.LastBackupAt = time.Now().UTC().Add(-time.Duration(doc.Settings.BackupInterval+1) * 24 * time.Hour)
	if _, created, _ := backups.AutoBackup(doc); !created {
		t.Errorf("AutoBackup() skipped a backup past the interval")
	}

	// Disabled: never due.
	doc.Settings.AutoBackup = false
	doc.Meta.LastBackupAt = time.Time{}
	if _, created, _ := backups.AutoBackup(doc); created {
		t.Errorf("AutoBackup() ran with autoBackup disabled")
	}
}
