// Package catalog holds the gallery's fixed artwork listing and artist biography.
package catalog

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"vincent-gallery/pkg/models"
)

var ErrEmptyCatalog = errors.New("catalog has no paintings")

// Catalog is an immutable, ordered set of paintings plus the artist biography.
// It is safe for concurrent use because nothing mutates it after construction.
type Catalog struct {
	paintings []models.Painting
	byID      map[int]int
	biography models.Biography
}

// New validates paintings and builds a catalog from them
func New(paintings []models.Painting, biography models.Biography) (*Catalog, error) {
	if len(paintings) == 0 {
		return nil, ErrEmptyCatalog
	}

	c := &Catalog{
		paintings: make([]models.Painting, len(paintings)),
		byID:      make(map[int]int, len(paintings)),
		biography: biography,
	}
	copy(c.paintings, paintings)

	for i, p := range c.paintings {
		if p.ID <= 0 {
			return nil, fmt.Errorf("painting %q has invalid id %d", p.Title, p.ID)
		}
		if _, dup := c.byID[p.ID]; dup {
			return nil, fmt.Errorf("duplicate painting id %d", p.ID)
		}
		c.byID[p.ID] = i
	}
	return c, nil
}

// Default returns the built-in catalog
func Default() *Catalog {
	c, err := New(defaultPaintings, defaultBiography)
	if err != nil {
		panic("built-in catalog is invalid: " + err.Error())
	}
	return c
}

type catalogFile struct {
	Paintings []models.Painting `yaml:"paintings"`
	Biography *models.Biography `yaml:"biography"`
}

// Load reads a catalog from a YAML file. A file without a biography keeps the built-in one.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading catalog file: %w", err)
	}

	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("error parsing catalog file %s: %w", path, err)
	}

	biography := defaultBiography
	if file.Biography != nil {
		biography = *file.Biography
	}
	return New(file.Paintings, biography)
}

// Paintings returns a copy of every painting, in catalog order
func (c *Catalog) Paintings() []models.Painting {
	out := make([]models.Painting, len(c.paintings))
	copy(out, c.paintings)
	return out
}

// Find looks a painting up by id
func (c *Catalog) Find(id int) (models.Painting, bool) {
	i, ok := c.byID[id]
	if !ok {
		return models.Painting{}, false
	}
	return c.paintings[i], true
}

func (c *Catalog) Len() int {
	return len(c.paintings)
}

func (c *Catalog) Biography() models.Biography {
	return c.biography
}
