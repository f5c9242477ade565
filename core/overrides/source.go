package overrides

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"ornithe-meta/core/compat"
)

// LibraryUpgradesFile is the name of the library override file.
const LibraryUpgradesFile = "library-upgrades-v3.json"

// Source reads override files from a directory.
type Source struct {
	dir string
}

// NewSource creates a source rooted at dir.
func NewSource(dir string) *Source {
	if dir == "" {
		dir = "."
	}
	return &Source{dir: dir}
}

// Dir returns the directory overrides are read from.
func (s *Source) Dir() string {
	return s.dir
}

// ExclusionFileName returns the exclusion file name of an artifact.
func ExclusionFileName(group, artifact string) string {
	return strings.ReplaceAll(group, ".", "_") + "_" + artifact + ".txt"
}

// Exclusions returns the excluded versions of an artifact. ok is false when
// the artifact has no exclusion file.
func (s *Source) Exclusions(group, artifact string) (versions []string, ok bool, err error) {
	path := filepath.Join(s.dir, ExclusionFileName(group, artifact))
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("opening exclusion file %s: %w", path, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		versions = append(versions, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, false, fmt.Errorf("reading exclusion file %s: %w", path, err)
	}
	return versions, true, nil
}

// LibraryUpgrades reads the library override file. A missing file yields no
// overrides.
func (s *Source) LibraryUpgrades() ([]compat.LibraryOverride, error) {
	path := filepath.Join(s.dir, LibraryUpgradesFile)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var overrides []compat.LibraryOverride
	if err := json.Unmarshal(data, &overrides); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	for i := range overrides {
		if overrides[i].URL == "" {
			overrides[i].URL = compat.DefaultLibraryURL
		}
	}
	return overrides, nil
}
