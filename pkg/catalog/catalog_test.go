package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"vincent-gallery/pkg/models"
)

func TestDefault(t *testing.T) {
	c := Default()
	if c.Len() != 5 {
		t.Fatalf("expected 5 paintings, got %d", c.Len())
	}

	p, ok := c.Find(3)
	if !ok {
		t.Fatal("expected painting 3 to exist")
	}
	if p.Title != "Irises (1889)" {
		t.Errorf("expected Irises (1889), got %s", p.Title)
	}

	if _, ok := c.Find(999); ok {
		t.Error("expected painting 999 to be missing")
	}

	if c.Biography().Name != "Vincent van Gogh" {
		t.Errorf("unexpected biography name %s", c.Biography().Name)
	}
}

func TestPaintings_OrderAndImmutability(t *testing.T) {
	c := Default()
	list := c.Paintings()
	for i, p := range list {
		if p.ID != i+1 {
			t.Errorf("expected id %d at position %d, got %d", i+1, i, p.ID)
		}
	}

	list[0].Title = "changed"
	if p, _ := c.Find(1); p.Title != "Sunflowers (1888)" {
		t.Errorf("expected catalog to be unaffected by caller mutation, got %s", p.Title)
	}
}

func TestNew_Invalid(t *testing.T) {
	cases := map[string][]models.Painting{
		"empty":     nil,
		"zero id":   {{ID: 0, Title: "A"}},
		"duplicate": {{ID: 1, Title: "A"}, {ID: 1, Title: "B"}},
	}
	for name, paintings := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := New(paintings, models.Biography{}); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	content := `paintings:
  - id: 7
    title: Almond Blossoms (1890)
    year: 1890
    medium: Oil on canvas
    dimensions: 73.3 × 92.4 cm
    image_url: https://example.com/almond.jpg
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	c, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	p, ok := c.Find(7)
	if !ok {
		t.Fatal("expected painting 7")
	}
	if p.ImageURL != "https://example.com/almond.jpg" {
		t.Errorf("unexpected image url %s", p.ImageURL)
	}
	if c.Biography().Name != "Vincent van Gogh" {
		t.Error("expected built-in biography when the file has none")
	}
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()
	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("paintings: [\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bad); err == nil {
		t.Error("expected error for invalid YAML")
	}
}
