package catalog

import (
	"bufio"
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/vuongmanhnghia/video-player/internal/domain/entities"
)

//go:embed videos.txt
var defaultCatalog []byte

// tomlCatalog is the document layout of a .toml catalog file
type tomlCatalog struct {
	Videos []entities.Video `toml:"videos"`
}

// Load reads a catalog file. An empty path loads the built-in sample catalog,
// a .toml path is decoded as TOML and anything else is read as pipe-separated lines.
func Load(path string) (*MemoryCatalog, error) {
	if path == "" {
		return Parse(bytes.NewReader(defaultCatalog))
	}

	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return LoadTOML(path)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog: %w", err)
	}

	defer func() {
		_ = file.Close()
	}()

	return Parse(file)
}

// LoadTOML decodes a catalog of [[videos]] tables
func LoadTOML(path string) (*MemoryCatalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}

	var doc tomlCatalog
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}

	catalog, err := New(doc.Videos)
	if err != nil {
		return nil, fmt.Errorf("invalid catalog: %w", err)
	}
	return catalog, nil
}

// Parse reads one video per line in the form "Title | id | #tag1 , #tag2".
// Blank lines are skipped and the tag field may be missing or empty.
func Parse(r io.Reader) (*MemoryCatalog, error) {
	var videos []entities.Video

	scanner := bufio.NewScanner(r)
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		video, err := parseLine(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		videos = append(videos, video)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading catalog: %w", err)
	}

	catalog, err := New(videos)
	if err != nil {
		return nil, fmt.Errorf("invalid catalog: %w", err)
	}
	return catalog, nil
}

func parseLine(line string) (entities.Video, error) {
	fields := strings.Split(line, "|")
	if len(fields) < 2 {
		return entities.Video{}, fmt.Errorf("expected \"title | id | tags\", got %q", line)
	}

	title := strings.TrimSpace(fields[0])
	id := strings.TrimSpace(fields[1])

	var tags []string
	if len(fields) > 2 {
		for _, tag := range strings.Split(fields[2], ",") {
			if tag = strings.TrimSpace(tag); tag != "" {
				tags = append(tags, tag)
			}
		}
	}

	return entities.NewVideo(id, title, tags), nil
}
