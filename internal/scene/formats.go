package scene

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// ParseYAML parses a YAML scheme.
func ParseYAML(data []byte) (Scheme, error) {
	var s Scheme
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Scheme{}, fmt.Errorf("yaml unmarshal: %w", err)
	}
	return s, nil
}

// ParseTOML parses a TOML scheme.
func ParseTOML(data []byte) (Scheme, error) {
	var s Scheme
	if _, err := toml.Decode(string(data), &s); err != nil {
		return Scheme{}, fmt.Errorf("toml decode: %w", err)
	}
	return s, nil
}

// Parse routes to the parser for the file name's extension. A scheme
// without an ID takes the file's base name.
func Parse(name string, data []byte) (Scheme, error) {
	ext := strings.ToLower(filepath.Ext(name))

	var (
		s   Scheme
		err error
	)
	switch ext {
	case ".yaml", ".yml":
		s, err = ParseYAML(data)
	case ".toml":
		s, err = ParseTOML(data)
	default:
		return Scheme{}, fmt.Errorf("unsupported extension: %s", ext)
	}
	if err != nil {
		return Scheme{}, err
	}

	if s.ID == "" {
		s.ID = strings.TrimSuffix(filepath.Base(name), filepath.Ext(name))
	}
	if s.Name == "" {
		s.Name = s.ID
	}
	s.Source = name
	return s, nil
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml", ".toml"}
}

// isSupportedExtension checks if extension is supported.
func isSupportedExtension(ext string) bool {
	for _, supported := range FormatExtensions() {
		if ext == supported {
			return true
		}
	}
	return false
}
