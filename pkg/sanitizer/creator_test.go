package sanitizer

import (
	"testing"

	"creatorverse/pkg/model"
)

func TestNormalizeCreator(t *testing.T) {
	c := &model.Creator{
		Name:        "  Marques   Brownlee ",
		URL:         " https://youtube.com/@mkbhd ",
		Description: "  Quality tech videos  ",
		ImageURL:    " https://example.com/mkbhd.jpg",
		YouTube:     "@Foo",
		Twitter:     "https://x.com/MKBHD",
		Instagram:   " ",
	}

	NormalizeCreator(c)

	want := model.Creator{
		Name:        "Marques Brownlee",
		URL:         "https://youtube.com/@mkbhd",
		Description: "Quality tech videos",
		ImageURL:    "https://example.com/mkbhd.jpg",
		YouTube:     "Foo",
		Twitter:     "MKBHD",
		Instagram:   "",
	}
	if *c != want {
		t.Errorf("NormalizeCreator:\n got  %+v\n want %+v", *c, want)
	}

	again := *c
	NormalizeCreator(&again)
	if again != *c {
		t.Errorf("NormalizeCreator not idempotent:\n first  %+v\n second %+v", *c, again)
	}
}

func TestPipeline_Apply(t *testing.T) {
	p := Pipeline{NormalizeText, handleStrategy(model.PlatformTwitter)}
	if got := p.Apply("  @jack "); got != "jack" {
		t.Errorf("Apply = %q, want jack", got)
	}
}
