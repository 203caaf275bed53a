package deck

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

// memo caches successful results by absolute path. Failed loads are not
// cached so a fixed file is picked up on the next request.
type memo[T any] struct {
	mu      sync.RWMutex
	entries map[string]T
}

func (m *memo[T]) get(key string, load func() (T, error)) (T, error) {
	m.mu.RLock()
	v, ok := m.entries[key]
	m.mu.RUnlock()
	if ok {
		return v, nil
	}

	v, err := load()
	if err != nil {
		return v, err
	}

	m.mu.Lock()
	if m.entries == nil {
		m.entries = make(map[string]T)
	}
	// Keep the first stored value so concurrent loaders agree on one result.
	if existing, ok := m.entries[key]; ok {
		v = existing
	} else {
		m.entries[key] = v
	}
	m.mu.Unlock()
	return v, nil
}

func (m *memo[T]) forget(key string) {
	m.mu.Lock()
	delete(m.entries, key)
	m.mu.Unlock()
}

func (m *memo[T]) reset() {
	m.mu.Lock()
	m.entries = nil
	m.mu.Unlock()
}

func (m *memo[T]) len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}

// Loader reads deck configurations and slide manifests through a
// process-wide cache keyed by absolute file path. Cached values are shared
// between callers and must not be modified.
type Loader struct {
	resolver  *Resolver
	configs   memo[*Config]
	manifests memo[[]Slide]
}

// NewLoader creates a Loader that resolves presentation folders with r.
func NewLoader(r *Resolver) *Loader {
	return &Loader{resolver: r}
}

// Resolver returns the resolver bounding this loader.
func (l *Loader) Resolver() *Resolver { return l.resolver }

// Config returns the parsed configuration at path.
func (l *Loader) Config(path string) (*Config, error) {
	key, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	return l.configs.get(key, func() (*Config, error) {
		data, err := os.ReadFile(key)
		if err != nil {
			return nil, readError(key, err)
		}
		return ParseConfig(data)
	})
}

// Manifest returns the parsed slide list at path.
func (l *Loader) Manifest(path string) ([]Slide, error) {
	key, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	return l.manifests.get(key, func() ([]Slide, error) {
		data, err := os.ReadFile(key)
		if err != nil {
			return nil, readError(key, err)
		}
		return ParseManifest(data)
	})
}

// readError reports a failed read by file name only; the wrapped
// *fs.PathError would otherwise put the absolute path in user-facing text.
func readError(path string, err error) error {
	var pe *fs.PathError
	if errors.As(err, &pe) {
		err = pe.Err
	}
	return fmt.Errorf("reading %s: %w", filepath.Base(path), err)
}

// Invalidate drops any cached config or manifest read from path.
func (l *Loader) Invalidate(path string) {
	key, err := filepath.Abs(path)
	if err != nil {
		return
	}
	l.configs.forget(key)
	l.manifests.forget(key)
	if resolved, err := filepath.EvalSymlinks(key); err == nil && resolved != key {
		l.configs.forget(resolved)
		l.manifests.forget(resolved)
	}
}

// Reset drops every cached entry.
func (l *Loader) Reset() {
	l.configs.reset()
	l.manifests.reset()
}

// Cached returns the number of cached configs and manifests.
func (l *Loader) Cached() (configs, manifests int) {
	return l.configs.len(), l.manifests.len()
}

// Load reads the deck described by ref: its configuration, presentation
// folder and slide manifest. Failures are returned as *Error.
func (l *Loader) Load(ref DeckRef) (*Deck, error) {
	path, err := l.resolver.Resolve(ref.Path)
	if err != nil {
		return nil, &Error{Kind: KindConfig, Path: ref.Name, Err: err}
	}
	cfg, err := l.Config(path)
	if err != nil {
		return nil, &Error{Kind: KindConfig, Path: ref.Name, Err: err}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	folder := cfg.PresentationFolder
	dir, err := l.resolver.Resolve(folder)
	if err != nil {
		return nil, &Error{Kind: KindConfig, Path: folder, Err: errors.Join(ErrFolderNotFound, err)}
	}
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		return nil, &Error{Kind: KindConfig, Path: folder, Err: ErrFolderNotFound}
	}

	manifest := filepath.Join(dir, ManifestFile)
	if info, err := os.Stat(manifest); err != nil || !info.Mode().IsRegular() {
		return nil, &Error{Kind: KindConfig, Path: folder, Err: ErrManifestNotFound}
	}

	slides, err := l.Manifest(manifest)
	if err != nil {
		return nil, &Error{Kind: KindContent, Path: folder, Err: err}
	}

	return &Deck{Ref: ref, Config: cfg, Dir: dir, Slides: slides}, nil
}

// ImagePath resolves the image of s relative to the deck folder. It returns
// ok == false when the image is unset, escapes the repository root, or is
// not a regular file.
func (l *Loader) ImagePath(d *Deck, s Slide) (string, bool) {
	if strings.TrimSpace(s.Image) == "" {
		return "", false
	}
	p, err := l.resolver.ResolveFrom(d.Dir, s.Image)
	if err != nil {
		return "", false
	}
	info, err := os.Stat(p)
	if err != nil || !info.Mode().IsRegular() {
		return "", false
	}
	return p, true
}

// ParseConfig decodes a deck configuration. It does not validate it.
func ParseConfig(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing deck config: %w", err)
	}
	cfg.PresentationFolder = strings.TrimSpace(cfg.PresentationFolder)
	return &cfg, nil
}

// Validate checks required fields.
func (c *Config) Validate() error {
	if c.PresentationFolder == "" {
		return &Error{Kind: KindConfig, Err: ErrMissingFolder}
	}
	return nil
}

// ParseManifest decodes slide_data.json. A document that is valid JSON but
// not a non-empty array yields ErrNoSlides.
func ParseManifest(data []byte) ([]Slide, error) {
	if !json.Valid(data) {
		var v any
		err := json.Unmarshal(data, &v)
		return nil, fmt.Errorf("parsing %s: %w", ManifestFile, err)
	}
	if !bytes.HasPrefix(bytes.TrimSpace(data), []byte("[")) {
		return nil, ErrNoSlides
	}

	var slides []Slide
	if err := json.Unmarshal(data, &slides); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", ManifestFile, err)
	}
	if len(slides) == 0 {
		return nil, ErrNoSlides
	}
	return slides, nil
}
