package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/OliveiraNt/pubsub-topic-creator/internal/domain"
	"gopkg.in/yaml.v3"
)

// Input names accepted by the step.
const (
	InputProjectID                = "project-id"
	InputTopicName                = "topic-name"
	InputSkipIfExists             = "skip-if-exists"
	InputLabels                   = "labels"
	InputKMSKeyName               = "kms-key-name"
	InputMessageRetentionDuration = "message-retention-duration"
)

// InputSource looks up raw string inputs by name.
type InputSource interface {
	Lookup(name string) (string, bool)
}

// MapSource serves inputs from an in-memory map.
type MapSource map[string]string

// Lookup returns the value stored under name.
func (m MapSource) Lookup(name string) (string, bool) {
	v, ok := m[name]
	return v, ok
}

// ChainSource returns the first non-blank value found across its sources. The runner declares
// every input, even unset ones, so a blank value must not shadow a later source.
type ChainSource []InputSource

// Lookup skips sources whose value is blank. found is true when any source has name, even if
// every value was blank.
func (c ChainSource) Lookup(name string) (string, bool) {
	found := false
	for _, s := range c {
		if s == nil {
			continue
		}
		v, ok := s.Lookup(name)
		if !ok {
			continue
		}
		found = true
		if strings.TrimSpace(v) != "" {
			return v, true
		}
	}
	return "", found
}

// ReadInputsFile reads a YAML mapping of input names to values. Scalars of any YAML type are
// kept as their literal text, so `skip-if-exists: true` and `skip-if-exists: "true"` are equivalent.
func ReadInputsFile(path string) (MapSource, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var raw map[string]yaml.Node
	if err := yaml.Unmarshal(b, &raw); err != nil {
		return nil, fmt.Errorf("parse inputs file %s: %w", path, err)
	}
	out := make(MapSource, len(raw))
	for k, n := range raw {
		if n.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("parse inputs file %s: input %q must be a scalar value", path, k)
		}
		out[k] = n.Value
	}
	return out, nil
}

// LoadTopicConfig reads and types all step inputs. Required inputs missing or blank and
// unrecognised boolean spellings are InvalidArgument errors.
func LoadTopicConfig(src InputSource) (domain.TopicConfig, error) {
	var cfg domain.TopicConfig

	projectID, err := required(src, InputProjectID)
	if err != nil {
		return cfg, err
	}
	topicName, err := required(src, InputTopicName)
	if err != nil {
		return cfg, err
	}
	skip, err := boolInput(src, InputSkipIfExists, false)
	if err != nil {
		return cfg, err
	}

	cfg.ProjectID = projectID
	cfg.TopicName = topicName
	cfg.SkipIfExists = skip
	cfg.Labels = optional(src, InputLabels)
	cfg.KMSKeyName = optional(src, InputKMSKeyName)
	cfg.MessageRetentionDuration = optional(src, InputMessageRetentionDuration)
	return cfg, nil
}

func optional(src InputSource, name string) string {
	v, _ := src.Lookup(name)
	return strings.TrimSpace(v)
}

func required(src InputSource, name string) (string, error) {
	v := optional(src, name)
	if v == "" {
		return "", domain.InvalidArgument("Input required and not supplied: %s", name)
	}
	return v, nil
}

func boolInput(src InputSource, name string, def bool) (bool, error) {
	v := optional(src, name)
	switch strings.ToLower(v) {
	case "":
		return def, nil
	case "true":
		return true, nil
	case "false":
		return false, nil
	default:
		return false, domain.InvalidArgument("Input %s must be \"true\" or \"false\", got %q", name, v)
	}
}
