package scene

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
)

// DefaultID is the level played when none is named.
const DefaultID = "workshop"

//go:embed levels/*.yaml levels/*.toml
var embeddedLevels embed.FS

// Loader finds schemes in a list of directories and the embedded levels.
// Directories are searched in order; the first scheme with a given ID wins.
type Loader struct {
	Dirs []string
}

// NewLoader creates a loader.
// Search order: customDir -> ~/.robotrun/levels -> ./levels -> embedded
func NewLoader(customDir string) *Loader {
	var dirs []string
	if customDir != "" {
		dirs = append(dirs, customDir)
	}
	if home, err := os.UserHomeDir(); err == nil {
		dirs = append(dirs, filepath.Join(home, ".robotrun", "levels"))
	}
	dirs = append(dirs, "levels")
	return &Loader{Dirs: dirs}
}

// LoadAll loads every scheme it can find.
// Returns schemes sorted by ID for deterministic ordering.
func (l *Loader) LoadAll() ([]Scheme, error) {
	seen := make(map[string]bool)
	var schemes []Scheme
	add := func(s Scheme) {
		if seen[s.ID] {
			return
		}
		seen[s.ID] = true
		schemes = append(schemes, s)
	}

	for _, dir := range l.Dirs {
		found, err := loadDir(dir)
		if err != nil {
			return nil, err
		}
		for _, s := range found {
			add(s)
		}
	}

	builtin, err := Embedded()
	if err != nil {
		return nil, err
	}
	for _, s := range builtin {
		add(s)
	}

	// Sort by ID for determinism
	sort.Slice(schemes, func(i, j int) bool {
		return schemes[i].ID < schemes[j].ID
	})

	return schemes, nil
}

// Load resolves ref as a file path when it names an existing file with a
// supported extension, otherwise as a scheme ID. An empty ref loads
// DefaultID.
func (l *Loader) Load(ref string) (Scheme, error) {
	if ref == "" {
		ref = DefaultID
	}

	if isSupportedExtension(strings.ToLower(filepath.Ext(ref))) {
		if _, err := os.Stat(ref); err == nil {
			return LoadFile(ref)
		}
	}

	schemes, err := l.LoadAll()
	if err != nil {
		return Scheme{}, err
	}
	for _, s := range schemes {
		if s.ID == ref {
			return s, nil
		}
	}

	return Scheme{}, fmt.Errorf("scene: level not found: %s", ref)
}

// LoadFile loads a single scheme file.
func LoadFile(path string) (Scheme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Scheme{}, fmt.Errorf("scene: reading file %s: %w", path, err)
	}

	s, err := Parse(path, data)
	if err != nil {
		return Scheme{}, fmt.Errorf("scene: parsing file %s: %w", path, err)
	}
	return s, nil
}

// Embedded returns the levels shipped with the binary, sorted by file name.
func Embedded() ([]Scheme, error) {
	entries, err := fs.ReadDir(embeddedLevels, "levels")
	if err != nil {
		return nil, fmt.Errorf("scene: reading embedded levels: %w", err)
	}

	var schemes []Scheme
	for _, e := range entries {
		name := path.Join("levels", e.Name())
		data, err := embeddedLevels.ReadFile(name)
		if err != nil {
			return nil, fmt.Errorf("scene: reading embedded %s: %w", name, err)
		}
		s, err := Parse(name, data)
		if err != nil {
			return nil, fmt.Errorf("scene: parsing embedded %s: %w", name, err)
		}
		s.Source = "embedded:" + e.Name()
		schemes = append(schemes, s)
	}
	return schemes, nil
}

// loadDir scans dir recursively. A missing directory yields nothing;
// files that fail to parse are skipped.
func loadDir(dir string) ([]Scheme, error) {
	if _, err := os.Stat(dir); errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}

	var schemes []Scheme
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			return nil
		}

		if !isSupportedExtension(strings.ToLower(filepath.Ext(path))) {
			return nil
		}

		s, err := LoadFile(path)
		if err != nil {
			// Skip invalid files
			return nil
		}

		schemes = append(schemes, s)
		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("scene: walking directory %s: %w", dir, err)
	}
	return schemes, nil
}
