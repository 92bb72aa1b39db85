// Package cmd implements the CLI application to manage a cash book.
package cmd

import (
	"flag"
	"log"
	"os"
	"path/filepath"

	"github.com/google/subcommands"
	"github.com/luoxin/cashbook"
)

// Register the subcommands.
// A main package calls Register() to install the subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&addCmd{}, "entries")
	c.Register(&editCmd{}, "entries")
	c.Register(&rmCmd{}, "entries")
	c.Register(&listCmd{}, "entries")

	c.Register(&balanceCmd{}, "accounts")
	c.Register(&accountAddCmd{}, "accounts")
	c.Register(&accountDefaultCmd{}, "accounts")
	c.Register(&accountRmCmd{}, "accounts")

	c.Register(&categoriesCmd{}, "categories")
	c.Register(&categoryAddCmd{}, "categories")
	c.Register(&categoryRmCmd{}, "categories")

	c.Register(&summaryCmd{}, "reports")
	c.Register(&queryCmd{}, "reports")

	c.Register(&configCmd{}, "settings")

	c.Register(&exportCmd{}, "data")
	c.Register(&importCmd{}, "data")
	c.Register(&backupCmd{}, "data")
	c.Register(&backupsCmd{}, "data")
	c.Register(&restoreCmd{}, "data")
	c.Register(&backupRmCmd{}, "data")
	c.Register(&pathCmd{}, "data")

	c.Register(&topicCmd{}, "documentation")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var dataDir = flag.String("data-dir", "", "Path to the data directory (defaults to <user config dir>/cashbook)")

// DataDir resolves the data directory from the flag or the user config dir.
func DataDir() string {
	if *dataDir != "" {
		return *dataDir
	}
	cfg, err := os.UserConfigDir()
	if err != nil {
		log.Printf("warning: no user config directory (%v), using the working directory", err)
		return "cashbook"
	}
	return filepath.Join(cfg, "cashbook")
}

// SaveDocument persists the document through a single-writer save queue, so
// that every mutation in the process funnels into one serialized writer.
func SaveDocument(store *cashbook.Store, doc *cashbook.Document) error {
	q := cashbook.NewSaveQueue(store)
	q.Enqueue(doc)
	return q.Close()
}

// OpenStore opens the store on the app data directory.
func OpenStore() (*cashbook.Store, error) {
	return cashbook.NewStore(DataDir())
}

// LoadDocument opens the store and loads the document, running the
// auto-backup trigger as a best effort on the way.
func LoadDocument(store *cashbook.Store) (*cashbook.Document, error) {
	doc, err := store.Load()
	if err != nil {
		return nil, err
	}

	backups, err := cashbook.NewBackups(store)
	if err != nil {
		log.Printf("warning: backups unavailable: %v", err)
		return doc, nil
	}
	path, created, err := backups.AutoBackup(doc)
	if err != nil {
		log.Printf("warning: auto backup failed: %v", err)
		return doc, nil
	}
	if created {
		log.Printf("auto backup created: %s", path)
		if err := store.Save(doc); err != nil {
			log.Printf("warning: could not record backup time: %v", err)
		}
	}
	return doc, nil
}
