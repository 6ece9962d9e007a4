// =============================================================================
// Subcontract Valuations Dashboard - Edit Command
// =============================================================================
//
// This file defines the 'edit' command, covering the user-entered fields:
// the per-record closed flag and internal note. These are the only fields
// that survive a re-import (matched by natural key); everything else is
// replaced wholesale by the next import.
//
// COMMAND USAGE:
//   subdash edit close <id>            # toggle the closed flag
//   subdash edit note <id> <text>      # set the internal note
//   subdash edit clear-notes           # wipe every internal note
//
// =============================================================================

package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

// editCmd groups the record-editing subcommands.
var editCmd = &cobra.Command{
	Use:   "edit",
	Short: "Edit the user-entered fields of a record",
}

// editCloseCmd toggles the closed flag of one record.
var editCloseCmd = &cobra.Command{
	Use:   "close <id>",
	Short: "Toggle a record's closed flag",
	Args:  cobra.ExactArgs(1),

	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid record id %q", args[0])
		}
		return editRecord(id, func(closed bool, note string) (bool, string) {
			return !closed, note
		})
	},
}

// editNoteCmd sets the internal note of one record.
var editNoteCmd = &cobra.Command{
	Use:   "note <id> <text>",
	Short: "Set a record's internal note",
	Args:  cobra.MinimumNArgs(2),

	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid record id %q", args[0])
		}
		text := strings.Join(args[1:], " ")
		return editRecord(id, func(closed bool, _ string) (bool, string) {
			return closed, text
		})
	},
}

// editClearNotesCmd wipes every internal note. Imported data is untouched.
var editClearNotesCmd = &cobra.Command{
	Use:   "clear-notes",
	Short: "Delete all internal notes, keeping imported data",

	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		st := openStore(cfg)
		records := st.Load()
		for i := range records {
			records[i].InternalNote = ""
		}
		if err := st.Save(records); err != nil {
			return fmt.Errorf("failed to persist snapshot: %w", err)
		}
		fmt.Printf("Notas internas eliminadas en %d registros.\n", len(records))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(editCmd)
	editCmd.AddCommand(editCloseCmd)
	editCmd.AddCommand(editNoteCmd)
	editCmd.AddCommand(editClearNotesCmd)
}

// editRecord loads the record set, applies mutate to the record with the
// given id, and persists the set.
func editRecord(id int, mutate func(closed bool, note string) (bool, string)) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	st := openStore(cfg)
	records := st.Load()

	for i := range records {
		if records[i].ID != id {
			continue
		}
		records[i].Closed, records[i].InternalNote = mutate(records[i].Closed, records[i].InternalNote)
		if err := st.Save(records); err != nil {
			return fmt.Errorf("failed to persist snapshot: %w", err)
		}
		fmt.Printf("Registro %d (%s · %s): cerrado=%t nota=%q\n",
			id, records[i].Provider, records[i].ServiceOrderCode,
			records[i].Closed, records[i].InternalNote)
		return nil
	}
	return fmt.Errorf("record id %d not found", id)
}
