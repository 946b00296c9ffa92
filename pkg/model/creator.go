package model

import (
	"fmt"
	"time"
)

type Creator struct {
	ID          string    `json:"id,omitempty" bson:"_id,omitempty"`
	Name        string    `json:"name" bson:"name" validate:"notblank"`
	URL         string    `json:"url" bson:"url" validate:"notblank,absurl"`
	Description string    `json:"description" bson:"description" validate:"notblank,trimmed_min=10"`
	ImageURL    string    `json:"imageURL" bson:"imageURL" validate:"omitempty,absurl"`
	YouTube     string    `json:"youtube" bson:"youtube" validate:"omitempty,social_handle=youtube"`
	Twitter     string    `json:"twitter" bson:"twitter" validate:"omitempty,social_handle=twitter"`
	Instagram   string    `json:"instagram" bson:"instagram" validate:"omitempty,social_handle=instagram"`
	CreatedAt   time.Time `json:"created_at,omitzero" bson:"created_at"`
}

type Platform string

const (
	PlatformYouTube   Platform = "youtube"
	PlatformTwitter   Platform = "twitter"
	PlatformInstagram Platform = "instagram"
)

// Platforms lists the supported social platforms in display order.
var Platforms = []Platform{PlatformYouTube, PlatformTwitter, PlatformInstagram}

func ParsePlatform(s string) (Platform, bool) {
	for _, p := range Platforms {
		if string(p) == s {
			return p, true
		}
	}
	return "", false
}

func (p Platform) DisplayName() string {
	switch p {
	case PlatformYouTube:
		return "YouTube"
	case PlatformTwitter:
		return "Twitter"
	case PlatformInstagram:
		return "Instagram"
	default:
		return string(p)
	}
}

// ProfileURL returns the public profile link for a canonical handle.
func (p Platform) ProfileURL(handle string) string {
	if handle == "" {
		return ""
	}
	switch p {
	case PlatformYouTube:
		return fmt.Sprintf("https://youtube.com/@%s", handle)
	case PlatformTwitter:
		return fmt.Sprintf("https://twitter.com/%s", handle)
	case PlatformInstagram:
		return fmt.Sprintf("https://instagram.com/%s", handle)
	default:
		return ""
	}
}

type SocialLink struct {
	Platform Platform `json:"platform"`
	Label    string   `json:"label"`
	Handle   string   `json:"handle"`
	URL      string   `json:"url"`
}

func (c *Creator) Handle(p Platform) string {
	switch p {
	case PlatformYouTube:
		return c.YouTube
	case PlatformTwitter:
		return c.Twitter
	case PlatformInstagram:
		return c.Instagram
	default:
		return ""
	}
}

func (c *Creator) SetHandle(p Platform, handle string) {
	switch p {
	case PlatformYouTube:
		c.YouTube = handle
	case PlatformTwitter:
		c.Twitter = handle
	case PlatformInstagram:
		c.Instagram = handle
	}
}

func (c *Creator) HasSocialMedia() bool {
	return c.YouTube != "" || c.Twitter != "" || c.Instagram != ""
}

func (c *Creator) SocialLinks() []SocialLink {
	links := []SocialLink{}
	for _, p := range Platforms {
		h := c.Handle(p)
		if h == "" {
			continue
		}
		links = append(links, SocialLink{
			Platform: p,
			Label:    p.DisplayName(),
			Handle:   h,
			URL:      p.ProfileURL(h),
		})
	}
	return links
}
