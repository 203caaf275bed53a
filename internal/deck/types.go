package deck

// ConfigSuffix is the file name suffix that marks a deck configuration.
const ConfigSuffix = "_SJconfig.yaml"

// ManifestFile is the slide manifest expected inside every presentation folder.
const ManifestFile = "slide_data.json"

// DefaultHeader is shown when a deck configuration has no header_text.
const DefaultHeader = "SlideJet Presentation"

// Config is the parsed contents of a <Deck>_SJconfig.yaml file.
type Config struct {
	PresentationFolder string `yaml:"presentation_folder" json:"presentation_folder"`
	HeaderText         string `yaml:"header_text" json:"header_text,omitempty"`
	SubheaderText      string `yaml:"subheader_text" json:"subheader_text,omitempty"`
}

// Header returns the display title, falling back to DefaultHeader.
func (c *Config) Header() string {
	if c.HeaderText == "" {
		return DefaultHeader
	}
	return c.HeaderText
}

// Slide is one entry of slide_data.json.
type Slide struct {
	Image string `json:"image"`
	Notes string `json:"notes"`
}

// DeckRef identifies a discovered deck configuration file.
type DeckRef struct {
	Name string // Config file name, e.g. "Intro_SJconfig.yaml".
	Path string // Absolute path on disk.
}

// Deck is a fully loaded presentation: configuration, asset folder and slides.
type Deck struct {
	Ref    DeckRef
	Config *Config
	Dir    string  // Absolute presentation folder.
	Slides []Slide // Shared with the loader cache; treat as read-only.
}

// Len returns the number of slides in the deck.
func (d *Deck) Len() int { return len(d.Slides) }

// Slide returns the slide at the 1-based index i. The index must be in [1, Len()].
func (d *Deck) Slide(i int) Slide { return d.Slides[i-1] }
