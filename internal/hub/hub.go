// Package hub implements the presentation viewer: deck discovery, deck
// selection from the query string or dropdown, and single-slide rendering.
package hub

import (
	"errors"
	"fmt"
	"net/url"
	"path"
	"strconv"
	"strings"

	clog "github.com/charmbracelet/log"

	"github.com/ziadkadry99/slidejet/internal/deck"
	"github.com/ziadkadry99/slidejet/internal/logging"
)

// Query parameters understood by the viewer, besides deck.QueryKey.
const (
	deckParam  = "deck"
	slideParam = "slide"
)

// Options configures a Hub.
type Options struct {
	Loader     *deck.Loader
	AppDir     string // directory scanned for *_SJconfig.yaml files, relative to the repository root
	BaseURL    string // optional public URL prefix for share links
	Logger     *clog.Logger
	LiveReload bool // enable the /ws/reload channel
}

// Hub answers viewer requests. It holds no per-user state; the selection
// travels in the query string.
type Hub struct {
	loader   *deck.Loader
	resolver *deck.Resolver
	appDir   string
	appRel   string
	baseURL  string
	logger   *clog.Logger
	notes    *notesRenderer
	reloader *Reloader
}

// New creates a Hub. The app directory must be inside the repository root
// so deep links can be expressed relative to it.
func New(opts Options) (*Hub, error) {
	if opts.Loader == nil {
		return nil, errors.New("hub: loader is required")
	}
	if opts.Logger == nil {
		opts.Logger = logging.Discard()
	}
	resolver := opts.Loader.Resolver()

	appDir, err := resolver.Resolve(opts.AppDir)
	if err != nil {
		return nil, fmt.Errorf("hub: app dir %s: %w", opts.AppDir, err)
	}
	appRel, err := resolver.Rel(appDir)
	if err != nil {
		return nil, fmt.Errorf("hub: app dir %s: %w", opts.AppDir, err)
	}

	h := &Hub{
		loader:   opts.Loader,
		resolver: resolver,
		appDir:   appDir,
		appRel:   appRel,
		baseURL:  opts.BaseURL,
		logger:   opts.Logger,
		notes:    newNotesRenderer(),
	}
	if opts.LiveReload {
		h.reloader = NewReloader(opts.Logger)
	}
	return h, nil
}

// AppDir returns the absolute directory scanned for decks.
func (h *Hub) AppDir() string { return h.appDir }

// Reload tells connected viewers to refresh. It is a no-op without live reload.
func (h *Hub) Reload() {
	if h.reloader != nil {
		h.reloader.Notify()
	}
}

// Decks discovers the deck configurations in the app directory.
func (h *Hub) Decks() ([]deck.DeckRef, error) {
	return h.resolver.Discover(h.appDir)
}

// DeepLink returns the repository-relative "?yaml=" query for a deck config,
// and the absolute public link when a base URL is configured.
func (h *Hub) DeepLink(ref deck.DeckRef) (link, public string, err error) {
	rel, err := h.resolver.Rel(ref.Path)
	if err != nil {
		return "", "", err
	}
	link = deck.LinkQuery(rel)
	if h.baseURL != "" {
		public = h.baseURL + link
	}
	return link, public, nil
}

// View builds the page for one request from its query parameters.
func (h *Hub) View(q url.Values) *Page {
	page := &Page{
		Title:      PageTitle,
		Sidebar:    Sidebar{Heading: SidebarHeading},
		LiveReload: h.reloader != nil,
	}

	refs, err := h.Decks()
	if err != nil {
		h.logger.Warn("deck discovery failed", "dir", h.appDir, "err", err)
	}

	var (
		active  deck.DeckRef
		fromURL bool
	)
	if ref, ok := h.resolver.ResolveQuery(q); ok {
		active = ref
		fromURL = true
		page.Sidebar.OpenedFromURL = active.Name
	} else {
		if q.Has(deck.QueryKey) {
			// Rejected silently; the reason is not shown to the viewer.
			h.logger.Debug("ignoring yaml query parameter", "value", q[deck.QueryKey])
		}
		if len(refs) == 0 {
			page.Empty = h.emptyState()
			return page
		}
		active, ok = deck.Find(refs, q.Get(deckParam))
		if !ok {
			active = refs[0]
		}
		for _, ref := range refs {
			page.Sidebar.Decks = append(page.Sidebar.Decks, DeckOption{
				Name:     ref.Name,
				Selected: ref.Name == active.Name,
			})
		}
	}

	link, public, err := h.DeepLink(active)
	if err != nil {
		h.logger.Warn("cannot build deep link", "deck", active.Name, "err", err)
	}
	page.Sidebar.DeepLink = link
	page.Sidebar.PublicLink = public

	h.render(page, active, q.Get(slideParam), fromURL)
	return page
}

// render loads the active deck and fills page.Deck, or page.Error/Warning.
func (h *Hub) render(page *Page, active deck.DeckRef, slide string, fromURL bool) {
	d, err := h.loader.Load(active)
	if err != nil {
		msg, warn := errorMessage(err)
		if warn {
			page.Warning = msg
		} else {
			page.Error = msg
		}
		h.logger.Info("deck not rendered", "deck", active.Name, "err", err)
		return
	}

	idx := ClampSlide(slide, d.Len())
	s := d.Slide(idx)

	view := &DeckView{
		Header:    d.Config.Header(),
		Subheader: d.Config.SubheaderText,
		Index:     idx,
		Count:     d.Len(),
		Notes:     h.notes.Render(s.Notes),
	}

	base := url.Values{}
	if fromURL {
		if rel, err := h.resolver.Rel(active.Path); err == nil {
			view.YAML = rel
		}
		base.Set(deck.QueryKey, view.YAML)
	} else {
		view.DeckName = active.Name
		base.Set(deckParam, active.Name)
	}
	if idx > 1 {
		view.PrevURL = slideURL(base, idx-1)
	}
	if idx < d.Len() {
		view.NextURL = slideURL(base, idx+1)
	}

	if p, ok := h.loader.ImagePath(d, s); ok {
		if rel, err := h.resolver.Rel(p); err == nil {
			view.ImageURL = MediaURL(rel)
		}
	}
	if view.ImageURL == "" {
		view.ImageMissing = true
		view.MissingImage = s.Image
	}

	page.Deck = view
}

func (h *Hub) emptyState() *EmptyState {
	data := path.Join(h.appRel, "SJ_DATA")
	return &EmptyState{
		Info: []string{
			"No *" + deck.ConfigSuffix + " found.",
			"Push a deck and refresh.",
		},
		Layout: []string{
			path.Join(data, "<Deck>", "images", "*.png"),
			path.Join(data, "<Deck>", deck.ManifestFile),
			path.Join(h.appRel, "<Deck>"+deck.ConfigSuffix),
		},
	}
}

// errorMessage maps a deck loading failure to the text shown inline, and
// whether it is a warning rather than an error.
func errorMessage(err error) (msg string, warn bool) {
	var de *deck.Error
	errors.As(err, &de)
	where := ""
	if de != nil {
		where = de.Path
	}

	switch {
	case errors.Is(err, deck.ErrMissingFolder):
		return "`presentation_folder` missing in YAML.", false
	case errors.Is(err, deck.ErrFolderNotFound):
		return "Presentation folder not found: " + where, false
	case errors.Is(err, deck.ErrManifestNotFound):
		return "`" + deck.ManifestFile + "` not found in: " + where, false
	case errors.Is(err, deck.ErrNoSlides):
		return "No slides found.", true
	case deck.KindOf(err) == deck.KindContent:
		return "Could not read " + deck.ManifestFile + ": " + cause(err), false
	default:
		return "Could not read deck configuration: " + cause(err), false
	}
}

// cause returns the innermost message of a *deck.Error.
func cause(err error) string {
	var de *deck.Error
	if errors.As(err, &de) {
		return de.Err.Error()
	}
	return err.Error()
}

// ClampSlide parses a requested 1-based slide index and clamps it to
// [1, count]. Missing or malformed values select the first slide; values
// too large to parse select the last.
func ClampSlide(raw string, count int) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if errors.Is(err, strconv.ErrRange) && n > 0 {
		return count
	}
	if err != nil || n < 1 {
		return 1
	}
	if n > count {
		return count
	}
	return n
}

// MediaURL returns the URL serving a repository-relative file.
func MediaURL(rel string) string {
	return (&url.URL{Path: mediaPrefix + rel}).EscapedPath()
}

func slideURL(base url.Values, idx int) string {
	v := url.Values{}
	for k, vals := range base {
		v[k] = vals
	}
	v.Set(slideParam, strconv.Itoa(idx))
	return "/?" + v.Encode()
}
