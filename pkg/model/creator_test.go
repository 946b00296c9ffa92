package model

import "testing"

func TestCreator_HasSocialMedia(t *testing.T) {
	tests := []struct {
		name    string
		creator Creator
		want    bool
	}{
		{name: "no handles", creator: Creator{Name: "A"}, want: false},
		{name: "youtube only", creator: Creator{YouTube: "mkbhd"}, want: true},
		{name: "twitter only", creator: Creator{Twitter: "jack"}, want: true},
		{name: "instagram only", creator: Creator{Instagram: "natgeo"}, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.creator.HasSocialMedia(); got != tt.want {
				t.Errorf("HasSocialMedia() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCreator_SocialLinks(t *testing.T) {
	c := Creator{YouTube: "mkbhd", Instagram: "nat.geo_"}

	links := c.SocialLinks()
	if len(links) != 2 {
		t.Fatalf("expected 2 links, got %d: %+v", len(links), links)
	}

	if links[0].Platform != PlatformYouTube || links[0].URL != "https://youtube.com/@mkbhd" {
		t.Errorf("unexpected first link: %+v", links[0])
	}
	if links[1].Platform != PlatformInstagram || links[1].URL != "https://instagram.com/nat.geo_" {
		t.Errorf("unexpected second link: %+v", links[1])
	}
	if links[1].Label != "Instagram" {
		t.Errorf("expected label Instagram, got %q", links[1].Label)
	}
}

func TestCreator_SocialLinksEmpty(t *testing.T) {
	c := Creator{}
	if links := c.SocialLinks(); len(links) != 0 {
		t.Errorf("expected no links, got %+v", links)
	}
}

func TestParseSortOrder(t *testing.T) {
	tests := []struct {
		input   string
		want    SortOrder
		wantErr bool
	}{
		{input: "", want: SortCreatedAtAsc},
		{input: "created_at_asc", want: SortCreatedAtAsc},
		{input: "created_at_desc", want: SortCreatedAtDesc},
		{input: "name_asc", want: SortNameAsc},
		{input: "name_desc", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseSortOrder(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseSortOrder(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseSortOrder(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestParsePlatform(t *testing.T) {
	if p, ok := ParsePlatform("twitter"); !ok || p != PlatformTwitter {
		t.Errorf("expected twitter, got %q (ok=%v)", p, ok)
	}
	if _, ok := ParsePlatform("tiktok"); ok {
		t.Error("expected tiktok to be unsupported")
	}
}
