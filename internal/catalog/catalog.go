// Package catalog loads the predator type reference data.
//
// The default catalog is embedded in the binary. A file path may be supplied
// to replace it, in which case the file must pass the same validation.
// A loaded catalog is never modified and is safe for concurrent readers.
package catalog

import (
	_ "embed"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/vtm-builder/internal/entities/vtm"
	"github.com/KirkDiggler/vtm-builder/internal/errors"
)

//go:embed predator_types.yaml
var defaultPredatorTypesYAML []byte

// Catalog is read-only access to predator types. Returned values are shared
// and must not be modified.
type Catalog interface {
	Get(name string) (*vtm.PredatorType, error)
	List() []*vtm.PredatorType
	ListByCategory(category string) ([]*vtm.PredatorType, error)
	Disciplines() []string
}

// Config selects where the catalog is loaded from
type Config struct {
	// Path overrides the embedded predator types when set
	Path string
}

type catalogFile struct {
	PredatorTypes []vtm.PredatorType `yaml:"predator_types" validate:"required,min=1,dive"`
}

type static struct {
	predatorTypes []*vtm.PredatorType
	byName        map[string]*vtm.PredatorType
	disciplines   []string
}

// New loads the catalog described by cfg
func New(cfg *Config) (Catalog, error) {
	if cfg == nil || cfg.Path == "" {
		return Parse(defaultPredatorTypesYAML)
	}

	data, err := os.ReadFile(cfg.Path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read catalog file %s", cfg.Path)
	}

	c, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "catalog file %s", cfg.Path)
	}
	return c, nil
}

// Default returns the embedded catalog
func Default() (Catalog, error) {
	return Parse(defaultPredatorTypesYAML)
}

// Parse decodes and validates catalog YAML
func Parse(data []byte) (Catalog, error) {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, errors.Wrap(err, "failed to parse catalog")
	}
	if err := validate(&file); err != nil {
		return nil, err
	}

	c := &static{
		predatorTypes: make([]*vtm.PredatorType, 0, len(file.PredatorTypes)),
		byName:        make(map[string]*vtm.PredatorType, len(file.PredatorTypes)),
	}
	seen := make(map[string]bool)
	for i := range file.PredatorTypes {
		pt := &file.PredatorTypes[i]
		c.predatorTypes = append(c.predatorTypes, pt)
		c.byName[pt.Name] = pt
		for _, d := range pt.SubChoiceOptions {
			if !seen[d.Name] {
				seen[d.Name] = true
				c.disciplines = append(c.disciplines, d.Name)
			}
		}
	}

	return c, nil
}

func (c *static) Get(name string) (*vtm.PredatorType, error) {
	pt, ok := c.byName[name]
	if !ok {
		return nil, errors.NotFoundf("predator type %s not found", name)
	}
	return pt, nil
}

func (c *static) List() []*vtm.PredatorType {
	return append([]*vtm.PredatorType(nil), c.predatorTypes...)
}

func (c *static) ListByCategory(category string) ([]*vtm.PredatorType, error) {
	if category == "" {
		return c.List(), nil
	}
	vb := errors.NewValidationBuilder()
	errors.ValidateEnum("category", category, vtm.Categories, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	var out []*vtm.PredatorType
	for _, pt := range c.predatorTypes {
		if pt.Category == category {
			out = append(out, pt)
		}
	}
	return out, nil
}

// Disciplines lists every discipline offered as a sub-choice, in first-seen
// order
func (c *static) Disciplines() []string {
	return append([]string(nil), c.disciplines...)
}
