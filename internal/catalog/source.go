package catalog

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/Masterminds/semver/v3"
	"gopkg.in/yaml.v3"
)

// SupportedSchema is the semver constraint a catalog file's schema_version
// must satisfy.
const SupportedSchema = "^1"

// Source loads a complete catalog. Loading always replaces the whole list;
// sources never merge with earlier results.
type Source interface {
	Name() string
	Load(ctx context.Context) (Catalog, error)
}

// catalogFile is the on-disk YAML layout read by FileSource.
type catalogFile struct {
	SchemaVersion string        `yaml:"schema_version"`
	Models        []ModelRecord `yaml:"models"`
}

// FileSource reads a YAML catalog file, e.g.
//
//	schema_version: "1.0.0"
//	models:
//	  - name: GPT-4 Turbo
//	    provider: OpenAI
//	    provider_group: openai
//	    input_price: 0.01
//	    output_price: 0.03
type FileSource struct {
	Path string
}

// NewFileSource creates a FileSource reading path.
func NewFileSource(path string) *FileSource {
	return &FileSource{Path: path}
}

// Name implements Source.
func (s *FileSource) Name() string { return "file:" + s.Path }

// Load implements Source.
func (s *FileSource) Load(ctx context.Context) (Catalog, error) {
	if err := ctx.Err(); err != nil {
		return Catalog{}, err
	}
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return Catalog{}, fmt.Errorf("reading catalog file: %w", err)
	}
	return ParseFile(data)
}

// ParseFile decodes and validates YAML catalog data.
func ParseFile(data []byte) (Catalog, error) {
	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return Catalog{}, fmt.Errorf("parsing catalog file: %w", err)
	}
	if err := checkSchema(f.SchemaVersion); err != nil {
		return Catalog{}, err
	}
	for i, m := range f.Models {
		if err := validateRecord(m); err != nil {
			return Catalog{}, fmt.Errorf("model %d (%s): %w", i, m.DisplayName(), err)
		}
		if m.Currency == "" {
			f.Models[i].Currency = "USD"
		}
	}
	return New(f.Models), nil
}

func checkSchema(version string) error {
	if version == "" {
		return errors.New("catalog file missing schema_version")
	}
	v, err := semver.NewVersion(version)
	if err != nil {
		return fmt.Errorf("invalid schema_version %q: %w", version, err)
	}
	c, err := semver.NewConstraint(SupportedSchema)
	if err != nil {
		return fmt.Errorf("invalid schema constraint: %w", err)
	}
	if !c.Check(v) {
		return fmt.Errorf("schema_version %s does not satisfy %s", v, SupportedSchema)
	}
	return nil
}

func validateRecord(m ModelRecord) error {
	if m.InputPrice < 0 || m.OutputPrice < 0 {
		return errors.New("prices must be non-negative")
	}
	if m.ProviderGroup == GroupAll || !m.ProviderGroup.Valid() {
		return fmt.Errorf("unknown provider_group %q", m.ProviderGroup)
	}
	return nil
}
