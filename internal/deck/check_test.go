package deck

import (
	"errors"
	"path/filepath"
	"reflect"
	"testing"
)

func TestCheck(t *testing.T) {
	r, appDir := setupRepo(t)
	l := NewLoader(r)

	rep := l.Check(DeckRef{Name: "Intro_SJconfig.yaml", Path: filepath.Join(appDir, "Intro_SJconfig.yaml")})
	if rep.Err != nil {
		t.Fatalf("Check: %v", rep.Err)
	}
	if rep.Slides != 3 || rep.Header != "Intro Deck" {
		t.Errorf("report = %+v", rep)
	}
	if !reflect.DeepEqual(rep.MissingImages, []int{1, 3}) {
		t.Errorf("missing images = %v, want [1 3]", rep.MissingImages)
	}
	if rep.OK() {
		t.Error("report with missing images should not be OK")
	}

	writeFile(t, appDir, "SJ_DATA/Intro/a.png", "png")
	writeFile(t, appDir, "SJ_DATA/Intro/c.png", "png")
	if rep := l.Check(rep.Ref); !rep.OK() {
		t.Errorf("expected OK after adding images, got %+v", rep)
	}
}

func TestCheckLoadError(t *testing.T) {
	r, appDir := setupRepo(t)
	p := writeFile(t, appDir, "Broken_SJconfig.yaml", "header_text: x\n")

	rep := NewLoader(r).Check(DeckRef{Name: "Broken_SJconfig.yaml", Path: p})
	if !errors.Is(rep.Err, ErrMissingFolder) {
		t.Errorf("err = %v, want ErrMissingFolder", rep.Err)
	}
	if rep.OK() {
		t.Error("failed load should not be OK")
	}
}
