package valueobjects

// SearchMode selects how a search term is matched against videos
type SearchMode string

const (
	SearchModeTitle SearchMode = "title"
	SearchModeTag   SearchMode = "tag"
)

// String returns the string representation
func (m SearchMode) String() string {
	return string(m)
}

// IsValid checks if the mode is valid
func (m SearchMode) IsValid() bool {
	switch m {
	case SearchModeTitle, SearchModeTag:
		return true
	}
	return false
}
