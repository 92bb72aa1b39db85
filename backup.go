package cashbook

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// BackupDirName is the subdirectory of the data directory holding backups.
const BackupDirName = "backups"

const (
	backupPrefix = "ledger-backup-"
	backupExt    = ".json"
)

// backupStampFormat is an ISO-8601 instant with millisecond precision; the
// ':' and '.' are replaced by '-' in file names.
const backupStampFormat = "2006-01-02T15:04:05.000Z"

var backupStampReplacer = strings.NewReplacer(":", "-", ".", "-")

// BackupRecord describes one backup file. It is not persisted anywhere: the
// list of records is a filesystem reflection, rebuilt on every scan.
type BackupRecord struct {
	FileName  string    `json:"fileName"`
	FilePath  string    `json:"filePath"`
	CreatedAt time.Time `json:"createdAt"`
	Size      int64     `json:"size"`
}

// Backups manages timestamped copies of a store's data file. All operations
// are best-effort single-file copies with no coupling to in-memory state: a
// backup captures the file as of the last completed save.
type Backups struct {
	store *Store
	dir   string
}

// NewBackups returns the backup manager for the given store, creating the
// backup directory if needed.
func NewBackups(store *Store) (*Backups, error) {
	dir := filepath.Join(store.Dir(), BackupDirName)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("could not create backup directory %q: %w", dir, err)
	}
	return &Backups{store: store, dir: dir}, nil
}

// Dir returns the backup directory.
func (b *Backups) Dir() string { return b.dir }

// Create copies the live data file into the backup directory under a
// timestamped name and returns the backup path. It fails with ErrNoData when
// no document has ever been saved. Backups are never deduplicated or capped.
func (b *Backups) Create() (string, error) {
	if _, err := os.Stat(b.store.DataPath()); errors.Is(err, os.ErrNotExist) {
		return "", fmt.Errorf("no data to back up: %w", ErrNoData)
	}
	if err := os.MkdirAll(b.dir, 0755); err != nil {
		return "", fmt.Errorf("could not create backup directory %q: %w", b.dir, err)
	}

	stamp := backupStampReplacer.Replace(time.Now().UTC().Format(backupStampFormat))
	path := filepath.Join(b.dir, backupPrefix+stamp+backupExt)

	if err := copyFile(b.store.DataPath(), path); err != nil {
		return "", fmt.Errorf("could not create backup %q: %w", path, err)
	}
	return path, nil
}

// Restore overwrites the live data file with the given backup file's bytes.
// The backup's content is not validated: restoring a corrupt backup is
// recovered at the next Load, which falls back to a default document.
func (b *Backups) Restore(path string) error {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("backup file %q not found", path)
	}
	if err := copyFile(path, b.store.DataPath()); err != nil {
		return fmt.Errorf("could not restore backup %q: %w", path, err)
	}
	return nil
}

// List scans the backup directory and returns a record per backup file,
// sorted most recent first. Files not matching the backup naming pattern are
// ignored. CreatedAt is the file modification time, which for write-once
// backup copies is the instant the backup was taken.
func (b *Backups) List() ([]BackupRecord, error) {
	files, err := os.ReadDir(b.dir)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not read backup directory %q: %w", b.dir, err)
	}

	var records []BackupRecord
	for _, f := range files {
		name := f.Name()
		if f.IsDir() || !strings.HasPrefix(name, backupPrefix) || !strings.HasSuffix(name, backupExt) {
			continue
		}
		info, err := f.Info()
		if err != nil {
			return nil, fmt.Errorf("could not stat backup %q: %w", name, err)
		}
		records = append(records, BackupRecord{
			FileName:  name,
			FilePath:  filepath.Join(b.dir, name),
			CreatedAt: info.ModTime(),
			Size:      info.Size(),
		})
	}

	sort.Slice(records, func(i, j int) bool {
		if !records[i].CreatedAt.Equal(records[j].CreatedAt) {
			return records[i].CreatedAt.After(records[j].CreatedAt)
		}
		// File names embed the timestamp, so this keeps ties deterministic.
		return records[i].FileName > records[j].FileName
	})
	return records, nil
}

// Delete removes the given backup file. Deleting a missing file is a no-op,
// not an error.
func (b *Backups) Delete(path string) error {
	err := os.Remove(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("could not delete backup %q: %w", path, err)
	}
	return nil
}

// AutoBackup creates a backup when the document settings ask for one: auto
// backup enabled and the last backup older than the configured interval in
// days (or never taken). On success it stamps meta.lastBackupAt on the
// document; persisting that stamp is the caller's business, like any other
// mutation.
func (b *Backups) AutoBackup(doc *Document) (path string, created bool, err error) {
	if !doc.Settings.AutoBackup {
		return "", false, nil
	}
	interval := time.Duration(doc.Settings.BackupInterval) * 24 * time.Hour
	last := doc.Meta.LastBackupAt
	if !last.IsZero() && time.Since(last) < interval {
		return "", false, nil
	}
	path, err = b.Create()
	if err != nil {
		return "", false, err
	}
	doc.Meta.LastBackupAt = time.Now().UTC()
	return path, true, nil
}
