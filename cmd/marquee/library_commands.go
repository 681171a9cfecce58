package main

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"marquee/internal/state"
)

// libraryDocument is the import file format: library items plus optional
// notification records.
type libraryDocument struct {
	Items         []state.LibraryItem      `json:"items"`
	Notifications []state.NotificationItem `json:"notifications"`
}

func newLibraryCommand(ctx *commandContext) *cobra.Command {
	libraryCmd := &cobra.Command{
		Use:   "library",
		Short: "Manage the local library database",
	}

	libraryCmd.AddCommand(newLibraryImportCommand(ctx))
	libraryCmd.AddCommand(newLibraryListCommand(ctx))
	libraryCmd.AddCommand(newLibraryRemoveCommand(ctx))

	return libraryCmd
}

func newLibraryImportCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Import library items and notifications from a JSON document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read import file: %w", err)
			}
			doc, err := decodeLibraryDocument(data)
			if err != nil {
				return fmt.Errorf("decode import file: %w", err)
			}

			store, err := ctx.openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			for _, item := range doc.Items {
				if err := store.UpsertItem(cmd.Context(), item); err != nil {
					return fmt.Errorf("import item %s: %w", item.ID, err)
				}
			}
			for _, item := range doc.Notifications {
				if err := store.UpsertNotification(cmd.Context(), item); err != nil {
					return fmt.Errorf("import notification %s/%s: %w", item.MetaID, item.VideoID, err)
				}
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d items and %d notifications into %s\n",
				len(doc.Items), len(doc.Notifications), store.Path())
			return nil
		},
	}
}

// decodeLibraryDocument accepts either the document form or a bare item
// array.
func decodeLibraryDocument(data []byte) (libraryDocument, error) {
	var doc libraryDocument
	if err := json.Unmarshal(data, &doc); err == nil && (doc.Items != nil || doc.Notifications != nil) {
		return doc, nil
	}
	var items []state.LibraryItem
	if err := json.Unmarshal(data, &items); err != nil {
		return libraryDocument{}, err
	}
	return libraryDocument{Items: items}, nil
}

func newLibraryListCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored library items",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := ctx.openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			index, err := store.Items(cmd.Context())
			if err != nil {
				return err
			}
			items := make([]state.LibraryItem, 0, len(index))
			for _, item := range index {
				items = append(items, item)
			}
			sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })

			format, err := ctx.outputFormat(cmd)
			if err != nil {
				return err
			}
			if format == outputJSON {
				return writeJSON(cmd, items)
			}
			rows := make([][]string, 0, len(items))
			for _, item := range items {
				rows = append(rows, []string{
					item.ID,
					item.Name,
					displayType(item.Type),
					yesNo(item.Removed),
					formatCount(int(item.State.TimesWatched)),
					formatTimeRef(item.State.LastWatched),
				})
			}
			fmt.Fprintln(cmd.OutOrStdout(),
				renderTable([]string{"ID", "Name", "Type", "Removed", "Watched", "Last Watched"}, rows, 4))
			return nil
		},
	}
}

func newLibraryRemoveCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <id>",
		Short: "Tombstone a stored library item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := ctx.openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			if err := store.TombstoneItem(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Item %s removed\n", args[0])
			return nil
		},
	}
}
