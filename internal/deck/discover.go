package deck

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
)

// Discover lists the deck configurations directly inside appDir, sorted by
// name. A missing appDir is not an error; it simply has no decks.
func Discover(appDir string) ([]DeckRef, error) {
	abs, err := filepath.Abs(appDir)
	if err != nil {
		return nil, fmt.Errorf("discover: resolve app dir: %w", err)
	}

	matches, err := doublestar.Glob(os.DirFS(abs), "*"+ConfigSuffix)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("discover: %w", err)
	}

	refs := make([]DeckRef, 0, len(matches))
	for _, name := range matches {
		p := filepath.Join(abs, name)
		info, err := os.Stat(p)
		if err != nil || !info.Mode().IsRegular() {
			continue
		}
		refs = append(refs, DeckRef{Name: name, Path: p})
	}

	sort.Slice(refs, func(i, j int) bool { return refs[i].Name < refs[j].Name })
	return refs, nil
}

// Find returns the ref named name, if present.
func Find(refs []DeckRef, name string) (DeckRef, bool) {
	for _, ref := range refs {
		if ref.Name == name {
			return ref, true
		}
	}
	return DeckRef{}, false
}
