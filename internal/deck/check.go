package deck

// Report is the outcome of checking one deck.
type Report struct {
	Ref           DeckRef
	Header        string
	Slides        int
	MissingImages []int // 1-based indexes of slides whose image does not resolve
	Err           error // load failure, if any
}

// OK reports whether the deck loaded and every slide image resolved.
func (r Report) OK() bool {
	return r.Err == nil && len(r.MissingImages) == 0
}

// Check loads the deck behind ref and verifies every slide image.
func (l *Loader) Check(ref DeckRef) Report {
	rep := Report{Ref: ref}
	d, err := l.Load(ref)
	if err != nil {
		rep.Err = err
		return rep
	}
	rep.Header = d.Config.Header()
	rep.Slides = d.Len()
	for i, s := range d.Slides {
		if _, ok := l.ImagePath(d, s); !ok {
			rep.MissingImages = append(rep.MissingImages, i+1)
		}
	}
	return rep
}
