package hub

import "html/template"

const (
	// PageTitle is the browser title and the empty-state heading.
	PageTitle = "SlideJet Present Hub"
	// SidebarHeading heads the deck picker.
	SidebarHeading = "SlideJet Presentations"
)

// Page is everything the viewer template needs for one request.
type Page struct {
	Title      string
	Sidebar    Sidebar
	Empty      *EmptyState // set when no decks exist; nothing else renders
	Deck       *DeckView   // set when a deck rendered successfully
	Error      string      // terminal configuration/content error for the active deck
	Warning    string      // non-fatal notice, e.g. an empty manifest
	LiveReload bool
}

// Sidebar holds deck selection state and share links.
type Sidebar struct {
	Heading       string
	Decks         []DeckOption // empty when the deck was opened from a URL
	OpenedFromURL string       // config file name when selected via ?yaml=
	DeepLink      string       // "?yaml=<repo-relative path>"
	PublicLink    string       // BaseURL + DeepLink, when a base URL is configured
}

// DeckOption is one entry of the deck dropdown.
type DeckOption struct {
	Name     string
	Selected bool
}

// EmptyState explains where decks are expected when none were found.
type EmptyState struct {
	Info   []string
	Layout []string
}

// DeckView is the rendered state of the active deck at one slide.
type DeckView struct {
	Header    string
	Subheader string

	Index int // 1-based
	Count int

	// Exactly one of these identifies the deck in the slide form.
	YAML     string
	DeckName string

	ImageURL     string // set when the image exists
	MissingImage string // image reference as written, when it does not
	ImageMissing bool

	Notes template.HTML

	PrevURL string
	NextURL string
}
