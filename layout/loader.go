package layout

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
)

//go:embed defaults/layout.yaml
var defaultLayoutYAML []byte

const (
	layoutFile  = "layout.yaml"
	embeddedSrc = "embedded"
)

// Load reads a layout document.
// Search order: customPath -> ~/.hitkit/layout.yaml -> ./configs/layout.yaml -> embedded default
//
// Errors from customPath are returned. The other files are skipped when
// missing or invalid.
func Load(customPath string) (*Document, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read layout %s: %w", customPath, err)
		}
		doc, err := Parse(data)
		if err != nil {
			return nil, fmt.Errorf("failed to parse layout %s: %w", customPath, err)
		}
		doc.Source = customPath
		return doc, nil
	}

	for _, path := range []string{userConfigPath(layoutFile), filepath.Join("configs", layoutFile)} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if doc, err := Parse(data); err == nil {
			doc.Source = path
			return doc, nil
		}
	}

	return Default()
}

// Default returns the embedded layout.
func Default() (*Document, error) {
	doc, err := Parse(defaultLayoutYAML)
	if err != nil {
		return nil, fmt.Errorf("embedded layout: %w", err)
	}
	doc.Source = embeddedSrc
	return doc, nil
}

// userConfigPath returns the path to a user layout file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".hitkit", filename)
}
