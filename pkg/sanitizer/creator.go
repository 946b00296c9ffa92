package sanitizer

import "creatorverse/pkg/model"

type Strategy func(string) string

type Pipeline []Strategy

func (p Pipeline) Apply(s string) string {
	for _, fn := range p {
		s = fn(s)
	}
	return s
}

func handleStrategy(p model.Platform) Strategy {
	return func(s string) string { return ExtractHandle(p, s) }
}

// NormalizeCreator rewrites c in place into its persisted form.
func NormalizeCreator(c *model.Creator) {
	c.Name = NormalizeName(c.Name)
	c.URL = NormalizeURL(c.URL)
	c.Description = NormalizeText(c.Description)
	c.ImageURL = NormalizeURL(c.ImageURL)

	for _, p := range model.Platforms {
		c.SetHandle(p, Pipeline{NormalizeText, handleStrategy(p)}.Apply(c.Handle(p)))
	}
}
