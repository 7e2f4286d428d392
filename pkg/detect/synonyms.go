// pkg/detect/synonyms.go
package detect

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/clapenergy/mailtrace-render-starter/pkg/model"
)

// Synonyms holds the known header spellings per logical field, ordered by
// how strongly each spelling indicates the field. Earlier entries score
// higher during detection.
type Synonyms map[model.Field][]string

// DefaultSynonyms returns the built-in header synonym lists.
func DefaultSynonyms() Synonyms {
	return Synonyms{
		model.FieldStreet: {"address1", "addr1", "address", "street", "line1"},
		model.FieldUnit:   {"address2", "addr2", "unit", "apt", "suite", "ste", "line2", "bldg"},
		model.FieldCity:   {"city", "town"},
		model.FieldState:  {"state", "st"},
		model.FieldZip:    {"zip", "zipcode", "zip_code", "postal", "postalcode", "zip5"},
	}
}

// LoadSynonyms reads synonym overrides from a YAML file keyed by logical
// field name. Fields absent from the file keep their built-in lists, so a
// deployment only has to declare the headers its users actually produce.
func LoadSynonyms(path string) (Synonyms, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read synonyms file: %w", err)
	}

	var raw map[string][]string
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse synonyms file: %w", err)
	}

	overrides := Synonyms{}
	for key, values := range raw {
		field := model.Field(key)
		switch field {
		case model.FieldStreet, model.FieldUnit, model.FieldCity, model.FieldState, model.FieldZip:
			overrides[field] = values
		default:
			return nil, fmt.Errorf("unknown field %q in synonyms file", key)
		}
	}

	return overrides.withDefaults(), nil
}

func (s Synonyms) withDefaults() Synonyms {
	merged := DefaultSynonyms()
	for field, values := range s {
		if len(values) > 0 {
			merged[field] = values
		}
	}
	return merged
}
