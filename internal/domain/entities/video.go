package entities

import (
	"sort"
	"strings"
)

// Video is an immutable catalog record
type Video struct {
	ID    string   `json:"id" toml:"id"`
	Title string   `json:"title" toml:"title"`
	Tags  []string `json:"tags" toml:"tags"`
}

// NewVideo creates a video, copying tags so the caller's slice can be reused
func NewVideo(id, title string, tags []string) Video {
	copied := make([]string, len(tags))
	copy(copied, tags)
	return Video{
		ID:    id,
		Title: title,
		Tags:  copied,
	}
}

// TagList returns the tags space-joined in insertion order
func (v Video) TagList() string {
	return strings.Join(v.Tags, " ")
}

// String renders the video the way every listing shows it: "Title (id) [tag tag]"
func (v Video) String() string {
	return v.Title + " (" + v.ID + ") [" + v.TagList() + "]"
}

// HasTag reports whether one of the video tags matches, compared by fold
func (v Video) HasTag(tag string, equal func(a, b string) bool) bool {
	for _, t := range v.Tags {
		if equal(t, tag) {
			return true
		}
	}
	return false
}

// SortByTitle orders videos by title in byte order, keeping equal titles in place
func SortByTitle(videos []Video) {
	sort.SliceStable(videos, func(i, j int) bool {
		return videos[i].Title < videos[j].Title
	})
}
