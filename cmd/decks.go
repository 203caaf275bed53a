package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var decksCmd = &cobra.Command{
	Use:   "decks",
	Short: "List discovered decks and their deep links",
	RunE:  runDecks,
}

func init() {
	decksCmd.Flags().Bool("json", false, "output the list as JSON")
	rootCmd.AddCommand(decksCmd)
}

// deckEntry is one line of `slidejet decks` output.
type deckEntry struct {
	Name       string `json:"name"`
	Link       string `json:"link"`
	PublicLink string `json:"public_link,omitempty"`
}

func runDecks(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	h, _, err := createHub(cfg, newLogger(cfg), false)
	if err != nil {
		return err
	}

	refs, err := h.Decks()
	if err != nil {
		return fmt.Errorf("discovering decks: %w", err)
	}

	entries := make([]deckEntry, 0, len(refs))
	for _, ref := range refs {
		link, public, err := h.DeepLink(ref)
		if err != nil {
			return fmt.Errorf("deep link for %s: %w", ref.Name, err)
		}
		entries = append(entries, deckEntry{Name: ref.Name, Link: link, PublicLink: public})
	}

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	}

	if len(entries) == 0 {
		fmt.Printf("No *_SJconfig.yaml found in %s\n", h.AppDir())
		return nil
	}
	for _, e := range entries {
		fmt.Printf("%s\n  %s\n", e.Name, e.Link)
		if e.PublicLink != "" {
			fmt.Printf("  %s\n", e.PublicLink)
		}
	}
	return nil
}
