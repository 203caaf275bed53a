package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate every deck's configuration, manifest and images",
	Long:  `Loads each discovered deck the way the viewer does and reports configuration errors, empty or malformed manifests and missing slide images.`,
	RunE:  runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	h, loader, err := createHub(cfg, newLogger(cfg), false)
	if err != nil {
		return err
	}

	refs, err := h.Decks()
	if err != nil {
		return fmt.Errorf("discovering decks: %w", err)
	}
	if len(refs) == 0 {
		fmt.Printf("No *_SJconfig.yaml found in %s\n", h.AppDir())
		return nil
	}

	failed := 0
	for _, ref := range refs {
		rep := loader.Check(ref)
		switch {
		case rep.Err != nil:
			failed++
			fmt.Printf("FAIL %s: %v\n", ref.Name, rep.Err)
		case len(rep.MissingImages) > 0:
			failed++
			idx := make([]string, len(rep.MissingImages))
			for i, n := range rep.MissingImages {
				idx[i] = strconv.Itoa(n)
			}
			fmt.Printf("FAIL %s: %d/%d slides missing images (slides %s)\n",
				ref.Name, len(rep.MissingImages), rep.Slides, strings.Join(idx, ", "))
		default:
			fmt.Printf("ok   %s: %q, %d slides\n", ref.Name, rep.Header, rep.Slides)
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d decks have problems", failed, len(refs))
	}
	return nil
}
