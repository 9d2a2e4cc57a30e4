package lumen

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Config holds configuration options for analysis.
type Config struct {
	// InferTypes enables literal type inference for properties whose
	// declared type is implicit (default: true).
	InferTypes bool `yaml:"infer_types"`

	// ExpandDelegates desugars property and supertype delegation into
	// hidden backing properties (default: true).
	ExpandDelegates bool `yaml:"expand_delegates"`

	// SimplifyBlocks flattens nested blocks and prunes statements with
	// no effect (default: true).
	SimplifyBlocks bool `yaml:"simplify_blocks"`

	// AcceptedAnnotations lists the annotation qualified names the
	// analyzer accepts. Entries containing regex metacharacters are
	// treated as anchored patterns. When empty, every annotation is
	// accepted.
	AcceptedAnnotations []string `yaml:"accepted_annotations"`
}

// DefaultConfig returns the configuration with all passes enabled and
// no annotation restrictions.
func DefaultConfig() *Config {
	return &Config{
		InferTypes:      true,
		ExpandDelegates: true,
		SimplifyBlocks:  true,
	}
}

// LoadConfig reads a YAML configuration. Fields absent from the input
// keep their defaults.
//
// Example:
//
//	infer_types: true
//	simplify_blocks: false
//	accepted_annotations:
//	  - lumen.Service
//	  - lumen\..*
func LoadConfig(r io.Reader) (*Config, error) {
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		if err == io.EOF {
			return cfg, nil
		}
		return nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}
