package deck

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
)

// QueryKey is the query parameter that selects a deck by config path.
const QueryKey = "yaml"

// Resolver turns user-supplied paths into absolute paths that are guaranteed
// to stay inside the repository root.
type Resolver struct {
	root string
}

// NewResolver creates a Resolver bounded by root. The root must be an
// existing directory; its symlinks are evaluated once here.
func NewResolver(root string) (*Resolver, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolving repository root: %w", err)
	}
	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return nil, fmt.Errorf("resolving repository root: %w", err)
	}
	info, err := os.Stat(resolved)
	if err != nil {
		return nil, fmt.Errorf("accessing repository root: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("repository root %s is not a directory", resolved)
	}
	return &Resolver{root: resolved}, nil
}

// Root returns the absolute repository root.
func (r *Resolver) Root() string { return r.root }

// Contains reports whether the absolute path p lies inside the root
// (the root itself included).
func (r *Resolver) Contains(p string) bool {
	rel, err := filepath.Rel(r.root, p)
	if err != nil {
		return false
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return false
	}
	return !filepath.IsAbs(rel)
}

// Resolve resolves p against the repository root.
func (r *Resolver) Resolve(p string) (string, error) {
	return r.ResolveFrom(r.root, p)
}

// ResolveFrom resolves p against base and verifies the result is inside the
// repository root. Absolute values of p are taken as-is. When the target
// exists, symlinks are evaluated and containment is checked again, so a link
// inside the root cannot point outside of it.
func (r *Resolver) ResolveFrom(base, p string) (string, error) {
	var candidate string
	if filepath.IsAbs(p) {
		candidate = filepath.Clean(p)
	} else {
		candidate = filepath.Join(base, filepath.FromSlash(p))
	}
	if !r.Contains(candidate) {
		return "", ErrOutsideRoot
	}

	if _, err := os.Lstat(candidate); err == nil {
		resolved, err := filepath.EvalSymlinks(candidate)
		if err != nil {
			return "", fmt.Errorf("evaluating %s: %w", p, err)
		}
		if !r.Contains(resolved) {
			return "", ErrOutsideRoot
		}
		candidate = resolved
	}
	return candidate, nil
}

// Rel returns p relative to the repository root using forward slashes.
func (r *Resolver) Rel(p string) (string, error) {
	if !r.Contains(p) {
		return "", ErrOutsideRoot
	}
	rel, err := filepath.Rel(r.root, p)
	if err != nil {
		return "", err
	}
	return filepath.ToSlash(rel), nil
}

// ResolveQuery returns the deck config selected by the yaml query parameter.
// The last value wins when the key is repeated. Values that escape the root,
// do not exist, or are not regular files yield ok == false. The ref is named
// after the requested file; its Path has symlinks evaluated.
func (r *Resolver) ResolveQuery(values url.Values) (ref DeckRef, ok bool) {
	vals := values[QueryKey]
	if len(vals) == 0 {
		return DeckRef{}, false
	}
	q := strings.TrimSpace(vals[len(vals)-1])
	if q == "" {
		return DeckRef{}, false
	}

	p, err := r.Resolve(q)
	if err != nil {
		return DeckRef{}, false
	}
	info, err := os.Stat(p)
	if err != nil || !info.Mode().IsRegular() {
		return DeckRef{}, false
	}
	return DeckRef{Name: filepath.Base(filepath.FromSlash(q)), Path: p}, true
}

// Discover lists the deck configurations in appDir that stay inside the
// repository root once symlinks are evaluated.
func (r *Resolver) Discover(appDir string) ([]DeckRef, error) {
	refs, err := Discover(appDir)
	if err != nil {
		return nil, err
	}
	kept := refs[:0]
	for _, ref := range refs {
		if _, err := r.Resolve(ref.Path); err != nil {
			continue
		}
		kept = append(kept, ref)
	}
	return kept, nil
}

// LinkQuery returns the "?yaml=<rel>" query string for a repository-relative
// config path. Slashes are kept literal so links stay readable.
func LinkQuery(rel string) string {
	return "?" + QueryKey + "=" + strings.ReplaceAll(url.QueryEscape(rel), "%2F", "/")
}
