package pattern

import (
	"fmt"
	"os"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"gopkg.in/yaml.v3"
)

// Validate checks that every part carries a value and a known type.
// Expansion itself never fails, so validation matters for patterns read from
// files, where a typo in a type tag would otherwise silently turn an
// environment part into a literal one.
func (p Pattern) Validate() error {
	for i, part := range p {
		if err := part.Validate(); err != nil {
			return fmt.Errorf("part %d: %w", i, err)
		}
	}
	return nil
}

// Validate checks a single part: the value must be present and the type must
// be one of "filename" or "node_env".
func (p Part) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Value, validation.Required),
		validation.Field(&p.Type, validation.Required, validation.In(TypeFilename, TypeNodeEnv)),
	)
}

// Parse decodes a YAML list of part records into a validated Pattern:
//
//	- value: .env
//	  type: filename
//	- value: .$1
//	  type: node_env
//	  optional: true
func Parse(data []byte) (Pattern, error) {
	var parts []Part
	if err := yaml.Unmarshal(data, &parts); err != nil {
		return nil, fmt.Errorf("parse pattern: %w", err)
	}

	p := Pattern(parts)
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("invalid pattern: %w", err)
	}

	return p, nil
}

// LoadFile reads and parses a pattern description from a YAML file.
func LoadFile(path string) (Pattern, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read pattern file: %w", err)
	}

	return Parse(data)
}
