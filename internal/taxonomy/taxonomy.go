// Package taxonomy provides the static categorized keyword dictionaries used by
// the deterministic scoring signals. The taxonomy is loaded once at startup from
// an embedded, schema-validated JSON resource and is never mutated afterwards.
package taxonomy

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed taxonomy.json
var taxonomyData []byte

//go:embed schema.json
var schemaData []byte

// categoryOrder fixes the iteration order of categories so matcher output is
// deterministic across runs.
var categoryOrder = []string{"technical", "soft", "action", "education", "experience"}

// Category is an immutable named set of lowercase terms.
type Category struct {
	Name  string
	Terms []string
}

// Taxonomy holds the full categorized keyword dictionary.
type Taxonomy struct {
	version    string
	categories []Category
}

type taxonomyFile struct {
	Version    string              `json:"version"`
	Categories map[string][]string `json:"categories"`
}

// Load parses the embedded taxonomy resource after validating it against the
// embedded JSON Schema.
func Load() (*Taxonomy, error) {
	schemaLoader := gojsonschema.NewBytesLoader(schemaData)
	documentLoader := gojsonschema.NewBytesLoader(taxonomyData)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return nil, fmt.Errorf("failed to validate taxonomy resource: %w", err)
	}
	if !result.Valid() {
		var msgs []string
		for _, desc := range result.Errors() {
			msgs = append(msgs, desc.String())
		}
		return nil, fmt.Errorf("taxonomy resource is invalid: %s", strings.Join(msgs, "; "))
	}

	var file taxonomyFile
	if err := json.Unmarshal(taxonomyData, &file); err != nil {
		return nil, fmt.Errorf("failed to parse taxonomy resource: %w", err)
	}

	categories := make([]Category, 0, len(categoryOrder))
	for _, name := range categoryOrder {
		terms := file.Categories[name]
		lowered := make([]string, len(terms))
		for i, term := range terms {
			lowered[i] = strings.ToLower(term)
		}
		categories = append(categories, Category{Name: name, Terms: lowered})
	}

	return &Taxonomy{version: file.Version, categories: categories}, nil
}

// MustLoad loads the taxonomy and panics on failure. A missing or malformed
// taxonomy is a startup defect, not a per-request error.
func MustLoad() *Taxonomy {
	tax, err := Load()
	if err != nil {
		panic(fmt.Sprintf("failed to load keyword taxonomy: %v", err))
	}
	return tax
}

// Version returns the taxonomy resource version.
func (t *Taxonomy) Version() string {
	return t.version
}

// Categories returns the categories in canonical iteration order.
func (t *Taxonomy) Categories() []Category {
	return t.categories
}

// ActionVerbs returns the action-verb term list.
func (t *Taxonomy) ActionVerbs() []string {
	for _, c := range t.categories {
		if c.Name == "action" {
			return c.Terms
		}
	}
	return nil
}

// Size returns the total number of terms across all categories.
func (t *Taxonomy) Size() int {
	total := 0
	for _, c := range t.categories {
		total += len(c.Terms)
	}
	return total
}

// Snapshot returns a deep copy of the term lists keyed by category name, safe
// to hand to clients for display.
func (t *Taxonomy) Snapshot() map[string][]string {
	snapshot := make(map[string][]string, len(t.categories))
	for _, c := range t.categories {
		terms := make([]string, len(c.Terms))
		copy(terms, c.Terms)
		snapshot[c.Name] = terms
	}
	return snapshot
}
