package catalog

import (
	"os"
	"path/filepath"
	"testing"
)

const sampleCatalogYAML = `providers:
  - id: 1
    name: Dog CEO
    description: Random dog images by breed
    endpoint: https://dog.ceo/api/breeds/image/random
    parameters: []
    why_use: See a random dog picture whenever you need one.
    how_use: Send a GET request and render the returned image URL.
    category: Images
    has_handler: true
  - id: 2
    name: Cat Facts
    description: Random facts about cats
    endpoint: https://catfact.ninja/fact
    parameters:
      - name: max_length
        label: Maximum length
        type: text
    why_use: Learn something new about cats every day.
    how_use: Send a GET request and read the fact field.
    category: Fun
`

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.yaml")
	if err := os.WriteFile(path, []byte(sampleCatalogYAML), 0o644); err != nil {
		t.Fatal(err)
	}

	providers, err := NewLoader().LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if len(providers) != 2 {
		t.Fatalf("LoadFile() len = %d, want 2", len(providers))
	}

	p := providers[0]
	if p.ID != 1 || p.Name != "Dog CEO" || !p.HasHandler {
		t.Errorf("LoadFile() first provider = %+v", p)
	}
	if p.Parameters == nil || len(p.Parameters) != 0 {
		t.Errorf("LoadFile() empty parameters list not preserved: %v", p.Parameters)
	}

	q := providers[1]
	if len(q.Parameters) != 1 || q.Parameters[0].Name != "max_length" {
		t.Errorf("LoadFile() second provider parameters = %v", q.Parameters)
	}
	if q.HasHandler {
		t.Error("LoadFile() has_handler defaulted to true, want false")
	}
}

func TestLoadAllScansRecursively(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "extra")
	if err := os.MkdirAll(sub, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "a.yaml"), []byte(sampleCatalogYAML), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(sub, "b.yml"), []byte(sampleCatalogYAML), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("not yaml"), 0o644); err != nil {
		t.Fatal(err)
	}

	providers, err := NewLoader().LoadAll([]string{dir})
	if err != nil {
		t.Fatalf("LoadAll() error = %v", err)
	}
	if len(providers) != 4 {
		t.Errorf("LoadAll() len = %d, want 4", len(providers))
	}
}

func TestLoadAllBadYAML(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "bad.yaml"), []byte("providers: [unclosed"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := NewLoader().LoadAll([]string{dir}); err == nil {
		t.Fatal("LoadAll() error = nil, want parse error")
	}
}
