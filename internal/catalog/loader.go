package catalog

import (
	"embed"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"gopkg.in/yaml.v3"
)

//go:embed data/assessment.yaml data/assessment.schema.json
var dataFS embed.FS

const (
	defaultCatalogFile = "data/assessment.yaml"
	schemaFile         = "data/assessment.schema.json"
	schemaURL          = "schema://bizcheck/assessment.json"
)

// catalogFile mirrors the on-disk catalog layout.
type catalogFile struct {
	Categories []categoryEntry `yaml:"categories"`
}

type categoryEntry struct {
	ID          string        `yaml:"id"`
	Name        string        `yaml:"name"`
	Description string        `yaml:"description"`
	Questions   []string      `yaml:"questions"`
	Feedback    feedbackEntry `yaml:"feedback"`
}

type feedbackEntry struct {
	Low    string `yaml:"low"`
	Medium string `yaml:"medium"`
	High   string `yaml:"high"`
}

var (
	schemaOnce     sync.Once
	compiledSchema *jsonschema.Schema
	schemaErr      error

	defaultOnce     sync.Once
	defaultCatalog  *Catalog
	defaultFeedback *FeedbackTable
)

// Default returns the built-in catalog and feedback table. The embedded data
// is parsed once; invalid embedded data is a build defect and panics.
func Default() (*Catalog, *FeedbackTable) {
	defaultOnce.Do(func() {
		data, err := dataFS.ReadFile(defaultCatalogFile)
		if err != nil {
			panic(fmt.Sprintf("catalog: read embedded data: %v", err))
		}
		defaultCatalog, defaultFeedback, err = Parse(data)
		if err != nil {
			panic(fmt.Sprintf("catalog: embedded data invalid: %v", err))
		}
	})
	return defaultCatalog, defaultFeedback
}

// LoadFile reads and parses a catalog YAML file.
func LoadFile(path string) (*Catalog, *FeedbackTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("read catalog %s: %w", path, err)
	}
	c, fb, err := Parse(data)
	if err != nil {
		return nil, nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	return c, fb, nil
}

// Parse decodes catalog YAML, validates it against the catalog schema and
// builds the Catalog and its FeedbackTable.
func Parse(data []byte) (*Catalog, *FeedbackTable, error) {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, nil, fmt.Errorf("parse yaml: %w", err)
	}

	if err := validate(raw); err != nil {
		return nil, nil, err
	}

	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, nil, fmt.Errorf("decode catalog: %w", err)
	}

	categories := make([]Category, 0, len(file.Categories))
	entries := make(map[string]Feedback, len(file.Categories))
	for _, e := range file.Categories {
		categories = append(categories, Category{
			ID:          e.ID,
			Name:        e.Name,
			Description: e.Description,
			Questions:   e.Questions,
		})
		entries[e.ID] = Feedback{Low: e.Feedback.Low, Medium: e.Feedback.Medium, High: e.Feedback.High}
	}

	c, err := New(categories)
	if err != nil {
		return nil, nil, err
	}
	fb, err := NewFeedbackTable(entries)
	if err != nil {
		return nil, nil, err
	}
	if err := fb.Covers(c); err != nil {
		return nil, nil, err
	}
	return c, fb, nil
}

// validate checks a decoded YAML document against the catalog schema.
func validate(doc any) error {
	schema, err := catalogSchema()
	if err != nil {
		return err
	}

	// The validator expects JSON-shaped values; round-trip through JSON so
	// YAML scalars map onto the same types.
	b, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("convert catalog: %w", err)
	}
	var parsed any
	if err := json.Unmarshal(b, &parsed); err != nil {
		return fmt.Errorf("convert catalog: %w", err)
	}

	if err := schema.Validate(parsed); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}

func catalogSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		raw, err := dataFS.ReadFile(schemaFile)
		if err != nil {
			schemaErr = fmt.Errorf("read schema: %w", err)
			return
		}
		var def any
		if err := json.Unmarshal(raw, &def); err != nil {
			schemaErr = fmt.Errorf("parse schema: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		if err := c.AddResource(schemaURL, def); err != nil {
			schemaErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, schemaErr = c.Compile(schemaURL)
	})
	return compiledSchema, schemaErr
}
