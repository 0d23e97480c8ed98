package render

import (
	_ "embed"
	"errors"
	"fmt"
	"html"
	"io/fs"
	"os"
	"strings"
	"unicode"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/pfrederiksen/tampere-gigs/internal/logger"
)

//go:embed icons.yaml
var defaultIconsYAML []byte

// Icons maps a venue name to its icon URL. Lookups are exact matches.
type Icons map[string]string

type iconsFile struct {
	Venues map[string]string `yaml:"venues"`
}

// ParseIcons decodes an icon table from YAML
func ParseIcons(data []byte) (Icons, error) {
	var f iconsFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing icon table: %w", err)
	}

	icons := make(Icons, len(f.Venues))
	for venue, src := range f.Venues {
		if src = strings.TrimSpace(src); src != "" {
			icons[venue] = src
		}
	}
	return icons, nil
}

// DefaultIcons returns the icon table bundled with the binary
func DefaultIcons() (Icons, error) {
	return ParseIcons(defaultIconsYAML)
}

// LoadIcons reads an icon table from path. An empty path selects the bundled
// table; a missing file yields an empty table so every venue gets a placeholder.
func LoadIcons(path string) (Icons, error) {
	if path == "" {
		return DefaultIcons()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			logger.Warn("Icon table not found, using placeholders", logger.Fields{"path": path})
			return Icons{}, nil
		}
		return nil, fmt.Errorf("reading icon table: %w", err)
	}

	return ParseIcons(data)
}

// HTML returns the icon markup for venue
func (i Icons) HTML(venue string) string {
	if src, ok := i[venue]; ok {
		return fmt.Sprintf(`<img class="venue-icon" src="%s" alt="%s">`,
			html.EscapeString(src), html.EscapeString(venue))
	}
	return fmt.Sprintf(`<span class="venue-icon placeholder">%s</span>`, html.EscapeString(placeholder(venue)))
}

// placeholder is the upper-cased first letter of the venue name, or "?"
func placeholder(venue string) string {
	venue = strings.TrimSpace(venue)
	r, _ := utf8.DecodeRuneInString(venue)
	if r == utf8.RuneError {
		return "?"
	}
	return string(unicode.ToUpper(r))
}
