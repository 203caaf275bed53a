package deck

import (
	"errors"
	"fmt"
)

// Kind classifies deck loading failures.
type Kind int

const (
	// KindConfig covers problems with the deck configuration or its folder layout.
	// They stop rendering of the deck.
	KindConfig Kind = iota + 1
	// KindContent covers problems with slide content (manifest entries, images).
	KindContent
)

func (k Kind) String() string {
	switch k {
	case KindConfig:
		return "config"
	case KindContent:
		return "content"
	default:
		return "unknown"
	}
}

var (
	ErrMissingFolder    = errors.New("presentation_folder missing")
	ErrFolderNotFound   = errors.New("presentation folder not found")
	ErrManifestNotFound = errors.New("slide manifest not found")
	ErrNoSlides         = errors.New("no slides found")
	ErrOutsideRoot      = errors.New("path escapes repository root")
)

// Error is a deck loading failure with enough context to show to a viewer.
type Error struct {
	Kind Kind
	Path string // Path as the user wrote it (folder or file), if any.
	Err  error
}

func (e *Error) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%s: %v", e.Kind, e.Err)
	}
	return fmt.Sprintf("%s: %s: %v", e.Kind, e.Path, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// KindOf returns the Kind of err if it is (or wraps) an *Error, or 0.
func KindOf(err error) Kind {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	return 0
}
