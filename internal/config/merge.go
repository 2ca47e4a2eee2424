package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/rshade/tablepager/internal/pager"
)

// Top-level YAML config key names used for shallow merge.
const (
	keyPager   = "pager"
	keyLogging = "logging"
	keyOutput  = "output"
)

// ErrUnknownSection is returned for top-level overlay keys that match no
// Config section.
var ErrUnknownSection = errors.New("unknown config section")

// ShallowMergeYAML loads a YAML file and merges its top-level keys onto
// the target Config. A section present in the overlay replaces the whole
// section in the target, starting again from that section's defaults.
// Sections absent from the overlay are left unchanged.
func ShallowMergeYAML(target *Config, overlayPath string) error {
	if target == nil {
		return errors.New("nil target *Config in ShallowMergeYAML")
	}

	data, err := os.ReadFile(overlayPath)
	if err != nil {
		return fmt.Errorf("reading overlay file %s: %w", overlayPath, err)
	}

	// Discover which top-level keys are present in the overlay.
	var overlay map[string]yaml.Node
	if err = yaml.Unmarshal(data, &overlay); err != nil {
		return fmt.Errorf("parsing overlay YAML from %s: %w", overlayPath, err)
	}

	// Empty or comment-only file: nothing to merge.
	if len(overlay) == 0 {
		return nil
	}

	for key, node := range overlay {
		if err = unmarshalSection(target, key, &node); err != nil {
			return fmt.Errorf("applying overlay section %q from %s: %w", key, overlayPath, err)
		}
	}

	return nil
}

// unmarshalSection decodes node into a fresh copy of the section's defaults
// and assigns it to target, so a partial section never inherits values from
// the layer below.
func unmarshalSection(target *Config, key string, node *yaml.Node) error {
	switch key {
	case keyPager:
		v := pager.DefaultConfig()
		if err := decodeStrict(node, &v); err != nil {
			return err
		}
		target.Pager = v
		return nil
	case keyLogging:
		v := DefaultLoggingConfig()
		if err := decodeStrict(node, &v); err != nil {
			return err
		}
		target.Logging = v
		return nil
	case keyOutput:
		v := DefaultOutputConfig()
		if err := decodeStrict(node, &v); err != nil {
			return err
		}
		target.Output = v
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrUnknownSection, key)
	}
}

// decodeStrict re-encodes node and decodes it with unknown fields rejected;
// yaml.Node.Decode has no KnownFields switch.
func decodeStrict(node *yaml.Node, out any) error {
	data, err := yaml.Marshal(node)
	if err != nil {
		return err
	}
	return decodeBytesStrict(data, out)
}
