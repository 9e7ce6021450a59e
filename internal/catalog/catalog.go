// Package catalog owns the enumeration of sports an event may carry.
// The built-in catalog is fixed; deployments can extend it with per-file
// YAML entries loaded once at startup.
package catalog

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// builtin is the sports enumeration shipped with the service.
var builtin = []string{"Volleyball", "Basketball", "Badminton"}

// entry is the on-disk YAML shape. Each file contains exactly one sport.
type entry struct {
	Name    string   `yaml:"name"`
	Aliases []string `yaml:"aliases"`
}

// Catalog resolves sport names. Built-in names match exactly; sports added
// through the catalog directory also match via their declared aliases.
// Loaded once at startup; no hot reload.
type Catalog struct {
	names   []string          // canonical names, built-ins first
	aliases map[string]string // lowercased alias -> canonical name (custom sports only)
}

// New returns the built-in catalog.
func New() *Catalog {
	c := &Catalog{aliases: make(map[string]string)}
	c.names = append(c.names, builtin...)
	return c
}

// NewFromDir returns the built-in catalog extended with every *.yaml entry
// in dir. A missing dir is valid and yields the built-in catalog unchanged.
func NewFromDir(dir string) (*Catalog, error) {
	c := New()
	if dir == "" {
		return c, nil
	}

	info, err := os.Stat(dir)
	if os.IsNotExist(err) {
		return c, nil
	}
	if err != nil {
		return nil, fmt.Errorf("catalog dir: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("catalog path %q is not a directory", dir)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading catalog dir: %w", err)
	}

	for _, e := range entries {
		if e.IsDir() || (!strings.HasSuffix(e.Name(), ".yaml") && !strings.HasSuffix(e.Name(), ".yml")) {
			continue
		}

		path := filepath.Join(dir, e.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading catalog file %s: %w", path, err)
		}

		var raw entry
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("parsing catalog file %s: %w", path, err)
		}
		if raw.Name == "" {
			continue // skip empty / comment-only files
		}

		if c.contains(raw.Name) {
			return nil, fmt.Errorf("catalog sport %q: duplicate name", raw.Name)
		}
		if _, exists := c.aliases[strings.ToLower(raw.Name)]; exists {
			return nil, fmt.Errorf("catalog sport %q: name already taken by an alias", raw.Name)
		}
		c.names = append(c.names, raw.Name)

		for _, alias := range raw.Aliases {
			if alias == "" {
				continue
			}
			key := strings.ToLower(alias)
			if _, exists := c.aliases[key]; exists || c.contains(alias) {
				return nil, fmt.Errorf("catalog sport %q: alias %q already taken", raw.Name, alias)
			}
			c.aliases[key] = raw.Name
		}
	}

	return c, nil
}

func (c *Catalog) contains(name string) bool {
	for _, n := range c.names {
		if n == name {
			return true
		}
	}
	return false
}

// Normalize resolves s to its canonical sport name.
func (c *Catalog) Normalize(s string) (string, bool) {
	if c.contains(s) {
		return s, true
	}
	if canonical, ok := c.aliases[strings.ToLower(s)]; ok {
		return canonical, true
	}
	return "", false
}

// Names returns every canonical sport name, built-ins first.
func (c *Catalog) Names() []string {
	out := make([]string, len(c.names))
	copy(out, c.names)
	return out
}
