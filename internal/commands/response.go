package commands

import (
	"fmt"
	"strings"

	"github.com/vuongmanhnghia/video-player/internal/domain/entities"
)

// Indent prefixes every listed item
const Indent = "  "

// respond writes one line per message. The first write error is kept and
// later writes are skipped.
func (h *Handler) respond(lines ...string) {
	for _, line := range lines {
		if h.writeErr != nil {
			return
		}
		_, h.writeErr = fmt.Fprintln(h.out, line)
	}
}

// respondf writes a single formatted line
func (h *Handler) respondf(format string, args ...interface{}) {
	h.respond(fmt.Sprintf(format, args...))
}

// respondListing writes a built listing
func (h *Handler) respondListing(l *Listing) {
	h.respond(l.Build()...)
}

// Listing helps build a header followed by indented items
type Listing struct {
	header   string
	items    []string
	empty    string
	numbered bool
}

// NewListing creates a listing with the given header line
func NewListing(header string) *Listing {
	return &Listing{header: header}
}

// Item appends an entry
func (l *Listing) Item(item string) *Listing {
	l.items = append(l.items, item)
	return l
}

// Videos appends one entry per video
func (l *Listing) Videos(videos []entities.Video) *Listing {
	for _, v := range videos {
		l.Item(v.String())
	}
	return l
}

// Numbered prefixes entries with their 1-based position
func (l *Listing) Numbered() *Listing {
	l.numbered = true
	return l
}

// Empty sets the line shown when there are no entries
func (l *Listing) Empty(line string) *Listing {
	l.empty = line
	return l
}

// Build returns the lines of the listing
func (l *Listing) Build() []string {
	lines := []string{l.header}
	if len(l.items) == 0 && l.empty != "" {
		return append(lines, Indent+l.empty)
	}

	for i, item := range l.items {
		if l.numbered {
			item = fmt.Sprintf("%d) %s", i+1, item)
		}
		lines = append(lines, Indent+item)
	}
	return lines
}

// displayTitle returns the title, or a placeholder naming the id when the
// catalog could not resolve it
func displayTitle(v entities.Video) string {
	if v.Title == "" {
		return unavailable(v.ID)
	}
	return v.Title
}

func unavailable(videoID string) string {
	return fmt.Sprintf("(unavailable video: %s)", videoID)
}

// joinArgs restores a free-text argument split on whitespace
func joinArgs(args []string) string {
	return strings.Join(args, " ")
}
