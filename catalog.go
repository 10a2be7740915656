package main

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Catalog is the fixed project list in document order plus the
// enumerated category set (wildcard excluded).
type Catalog struct {
	Categories []string  `yaml:"categories"`
	Projects   []Project `yaml:"projects"`
}

// DefaultCatalog returns the catalog compiled into the binary.
func DefaultCatalog() *Catalog {
	c := &Catalog{
		Categories: append([]string(nil), defaultCategories...),
		Projects:   append([]Project(nil), defaultProjects...),
	}
	c.normalize()
	return c
}

// LoadCatalog reads a YAML catalog file. An empty path selects the
// built-in catalog.
func LoadCatalog(path string) (*Catalog, error) {
	if strings.TrimSpace(path) == "" {
		return DefaultCatalog(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}
	return ParseCatalog(data)
}

// ParseCatalog decodes and validates catalog YAML.
func ParseCatalog(data []byte) (*Catalog, error) {
	c := &Catalog{}
	if err := yaml.Unmarshal(data, c); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("invalid catalog: %w", err)
	}
	c.normalize()
	return c, nil
}

// Validate checks project identity and categories.
func (c *Catalog) Validate() error {
	for _, cat := range c.Categories {
		if strings.TrimSpace(cat) == "" {
			return fmt.Errorf("category names must not be empty")
		}
		if cat == AllCategories {
			return fmt.Errorf("category %q is reserved", AllCategories)
		}
	}

	seen := make(map[string]bool, len(c.Projects))
	for i, p := range c.Projects {
		if strings.TrimSpace(p.ID) == "" {
			return fmt.Errorf("project %d: id is required", i)
		}
		if seen[p.ID] {
			return fmt.Errorf("project %q: duplicate id", p.ID)
		}
		seen[p.ID] = true
		if strings.TrimSpace(p.Title) == "" {
			return fmt.Errorf("project %q: title is required", p.ID)
		}
		if strings.TrimSpace(p.Category) == "" {
			return fmt.Errorf("project %q: category is required", p.ID)
		}
		if p.Category == AllCategories {
			return fmt.Errorf("project %q: category %q is reserved", p.ID, AllCategories)
		}
	}
	return nil
}

// normalize drops duplicate declared categories and appends categories
// used by projects but never declared, in first-seen order.
func (c *Catalog) normalize() {
	seen := make(map[string]bool)
	var cats []string
	for _, cat := range c.Categories {
		if !seen[cat] {
			seen[cat] = true
			cats = append(cats, cat)
		}
	}
	for _, p := range c.Projects {
		if !seen[p.Category] {
			seen[p.Category] = true
			cats = append(cats, p.Category)
		}
	}
	c.Categories = cats
}

// NewFilter returns a controller over this catalog at ("all", 1).
func (c *Catalog) NewFilter() *ProjectFilter {
	return NewProjectFilter(c.Projects, c.Categories)
}

// HasCategory reports whether category is the wildcard or an enumerated tag.
func (c *Catalog) HasCategory(category string) bool {
	if category == AllCategories {
		return true
	}
	for _, cat := range c.Categories {
		if cat == category {
			return true
		}
	}
	return false
}
