package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/luoxin/cashbook"
)

type configCmd struct {
	theme          string
	language       string
	currency       string
	firstDay       int
	autoBackup     bool
	backupInterval int
}

func (*configCmd) Name() string     { return "config" }
func (*configCmd) Synopsis() string { return "show or change the settings" }
func (*configCmd) Usage() string {
	return `cbk config [-theme <light|dark|system>] [-language <zh-CN|en-US>] [-currency <code>] [-first-day <0|1>] [-auto-backup <bool>] [-backup-interval <days>]

  Without flags, prints the current settings. Each flag changes exactly the
  one setting it names; the others are left alone.
`
}

func (c *configCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.theme, "theme", "", "UI theme (light, dark, system).")
	f.StringVar(&c.language, "language", "", "UI language (zh-CN, en-US).")
	f.StringVar(&c.currency, "currency", "", "ISO 4217 ledger currency code.")
	f.IntVar(&c.firstDay, "first-day", 0, "First day of the week: 0 Sunday, 1 Monday.")
	f.BoolVar(&c.autoBackup, "auto-backup", false, "Back up automatically on use.")
	f.IntVar(&c.backupInterval, "backup-interval", 0, "Days between automatic backups.")
}

func (c *configCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := OpenStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	doc, err := LoadDocument(store)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	var patch cashbook.SettingsPatch
	changed := false
	f.Visit(func(fl *flag.Flag) {
		changed = true
		switch fl.Name {
		case "theme":
			patch.Theme = &c.theme
		case "language":
			patch.Language = &c.language
		case "currency":
			patch.Currency = &c.currency
		case "first-day":
			patch.FirstDayOfWeek = &c.firstDay
		case "auto-backup":
			patch.AutoBackup = &c.autoBackup
		case "backup-interval":
			patch.BackupInterval = &c.backupInterval
		}
	})

	if !changed {
		out, err := json.MarshalIndent(doc.Settings, "", "  ")
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			return subcommands.ExitFailure
		}
		fmt.Println(string(out))
		return subcommands.ExitSuccess
	}

	if err := doc.UpdateSettings(patch); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	if err := SaveDocument(store, doc); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	fmt.Println("Settings updated.")
	return subcommands.ExitSuccess
}
