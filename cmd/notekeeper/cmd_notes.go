package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ainotebuddy/notekeeper/internal/models"
)

var (
	addTitle    string
	addBody     string
	addCategory string
	addTags     []string
	addPinned   bool
	addVault    bool
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a note",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		a, err := newApp(ctx)
		if err != nil {
			return err
		}
		defer a.Close()

		if addVault {
			if err := unlockVault(a); err != nil {
				return err
			}
		}

		res, err := a.svc.CreateNote(ctx, &models.Note{
			Title:    addTitle,
			Body:     addBody,
			Category: addCategory,
			Tags:     addTags,
			Pinned:   addPinned,
			InVault:  addVault,
		})
		if err != nil {
			return err
		}
		printResult(res)
		return nil
	},
}

var (
	updateTitle    string
	updateBody     string
	updateCategory string
	updateTags     []string
	updatePinned   bool
	updateFavorite bool
	updateArchived bool
)

var updateCmd = &cobra.Command{
	Use:   "update <note-id>",
	Short: "Update note fields",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		a, err := newApp(ctx)
		if err != nil {
			return err
		}
		defer a.Close()

		// Only flags the caller actually set become field changes.
		var changes []models.FieldChange
		if cmd.Flags().Changed("title") {
			changes = append(changes, models.TitleChange(updateTitle))
		}
		if cmd.Flags().Changed("body") {
			changes = append(changes, models.BodyChange(updateBody))
		}
		if cmd.Flags().Changed("category") {
			changes = append(changes, models.CategoryChange(updateCategory))
		}
		if cmd.Flags().Changed("tags") {
			changes = append(changes, models.TagsChange(updateTags))
		}
		if cmd.Flags().Changed("pinned") {
			changes = append(changes, models.PinnedChange(updatePinned))
		}
		if cmd.Flags().Changed("favorite") {
			changes = append(changes, models.FavoriteChange(updateFavorite))
		}
		if cmd.Flags().Changed("archived") {
			changes = append(changes, models.ArchivedChange(updateArchived))
		}
		if len(changes) == 0 {
			return fmt.Errorf("nothing to update, pass at least one field flag")
		}

		if err := maybeUnlockVault(ctx, a, args[0]); err != nil {
			return err
		}

		res, err := a.svc.UpdateNote(ctx, args[0], changes)
		if err != nil {
			return err
		}
		printResult(res)
		return nil
	},
}

var getJSON bool

var getCmd = &cobra.Command{
	Use:   "get <note-id>",
	Short: "Show a note",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		a, err := newApp(ctx)
		if err != nil {
			return err
		}
		defer a.Close()

		if err := maybeUnlockVault(ctx, a, args[0]); err != nil {
			return err
		}

		note, err := a.svc.GetNote(ctx, args[0])
		if err != nil {
			return err
		}

		if getJSON {
			data, err := json.MarshalIndent(note, "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(data))
			return nil
		}

		fmt.Printf("ID:       %s\n", note.ID)
		fmt.Printf("Title:    %s\n", note.Title)
		fmt.Printf("Version:  %d\n", note.Version)
		if note.Category != "" {
			fmt.Printf("Category: %s\n", note.Category)
		}
		if len(note.Tags) > 0 {
			fmt.Printf("Tags:     %s\n", strings.Join(note.Tags, ", "))
		}
		if len(note.SuggestedTags) > 0 {
			fmt.Printf("Suggested: %s\n", strings.Join(note.SuggestedTags, ", "))
		}
		fmt.Printf("Updated:  %s\n", note.UpdatedAt.Format("2006-01-02 15:04:05"))
		fmt.Println()
		fmt.Println(note.Body)
		return nil
	},
}

var listAll bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List notes",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		a, err := newApp(ctx)
		if err != nil {
			return err
		}
		defer a.Close()

		list, err := a.svc.ListNotes(ctx, listAll)
		if err != nil {
			return err
		}
		if len(list) == 0 {
			fmt.Println("No notes.")
			return nil
		}

		for _, n := range list {
			marker := " "
			switch {
			case n.Deleted:
				marker = "D"
			case n.Pinned:
				marker = "*"
			}
			fmt.Printf("%s %-36s v%-3d %s\n", marker, n.ID, n.Version, n.Title)
		}
		return nil
	},
}

var deleteCmd = &cobra.Command{
	Use:   "delete <note-id>",
	Short: "Delete a note",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		a, err := newApp(ctx)
		if err != nil {
			return err
		}
		defer a.Close()

		res, err := a.svc.DeleteNote(ctx, args[0])
		if err != nil {
			return err
		}
		printResult(res)
		return nil
	},
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze <note-id>",
	Short: "Suggest tags from the note content",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		a, err := newApp(ctx)
		if err != nil {
			return err
		}
		defer a.Close()

		if err := maybeUnlockVault(ctx, a, args[0]); err != nil {
			return err
		}

		res, err := a.svc.RequestAnalysis(ctx, args[0])
		if err != nil {
			return err
		}
		printResult(res)
		return nil
	},
}

func printResult(res *models.MutationResult) {
	switch res.Outcome {
	case models.OutcomeSuccess:
		fmt.Printf("OK: %s (note %s)\n", res.Message, res.NoteID)
	case models.OutcomeQueued:
		fmt.Printf("Queued: %s (note %s, operation %s)\n", res.Message, res.NoteID, res.OperationID)
	case models.OutcomeFailure:
		fmt.Printf("Failed: %s\n", res.Message)
	}
}

func init() {
	addCmd.Flags().StringVar(&addTitle, "title", "", "note title")
	addCmd.Flags().StringVar(&addBody, "body", "", "note body")
	addCmd.Flags().StringVar(&addCategory, "category", "", "note category")
	addCmd.Flags().StringSliceVar(&addTags, "tags", nil, "note tags")
	addCmd.Flags().BoolVar(&addPinned, "pin", false, "pin the note")
	addCmd.Flags().BoolVar(&addVault, "vault", false, "encrypt the note body")

	updateCmd.Flags().StringVar(&updateTitle, "title", "", "new title")
	updateCmd.Flags().StringVar(&updateBody, "body", "", "new body")
	updateCmd.Flags().StringVar(&updateCategory, "category", "", "new category")
	updateCmd.Flags().StringSliceVar(&updateTags, "tags", nil, "new tags")
	updateCmd.Flags().BoolVar(&updatePinned, "pinned", false, "pinned flag")
	updateCmd.Flags().BoolVar(&updateFavorite, "favorite", false, "favorite flag")
	updateCmd.Flags().BoolVar(&updateArchived, "archived", false, "archived flag")

	getCmd.Flags().BoolVar(&getJSON, "json", false, "print the note as JSON")
	listCmd.Flags().BoolVar(&listAll, "all", false, "include deleted notes")

	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(getCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(analyzeCmd)
}
