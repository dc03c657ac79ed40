package domain

import (
	"encoding/json"
	"math"
	"regexp"
	"strconv"
)

var (
	topicNamePattern = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9._~+%-]{2,254}$`)
	durationPattern  = regexp.MustCompile(`^(\d+)([dhms])$`)
)

var durationUnits = map[string]int64{
	"d": 86400,
	"h": 3600,
	"m": 60,
	"s": 1,
}

// ValidateTopicName checks name against the Pub/Sub resource naming rules.
func ValidateTopicName(name string) error {
	if !topicNamePattern.MatchString(name) {
		return InvalidArgument("Invalid topic name %q: it must start with a letter, be 3-255 characters long "+
			"and contain only letters, digits and the characters . _ ~ + %% -", name)
	}
	return nil
}

// ParseLabels decodes a flat JSON object whose values are all strings.
func ParseLabels(text string) (map[string]string, error) {
	var doc any
	if err := json.Unmarshal([]byte(text), &doc); err != nil {
		return nil, InvalidArgument("Failed to parse labels JSON: %v", err)
	}
	obj, ok := doc.(map[string]any)
	if !ok {
		return nil, InvalidArgument("Labels must be a JSON object, got %s", jsonType(doc))
	}

	labels := make(map[string]string, len(obj))
	for k, v := range obj {
		s, ok := v.(string)
		if !ok {
			return nil, InvalidArgument("Label value for key %q must be a string, got %s", k, jsonType(v))
		}
		labels[k] = s
	}
	return labels, nil
}

// ParseDuration converts "<n><unit>" with unit one of d, h, m, s into whole seconds.
func ParseDuration(text string) (Duration, error) {
	m := durationPattern.FindStringSubmatch(text)
	if m == nil {
		return Duration{}, InvalidArgument("Invalid duration %q: expected a whole number followed by d, h, m or s (e.g. 7d)", text)
	}
	unit := durationUnits[m[2]]
	n, err := strconv.ParseInt(m[1], 10, 64)
	if err != nil || n > math.MaxInt64/unit {
		return Duration{}, InvalidArgument("Invalid duration %q: value out of range", text)
	}
	return Duration{Seconds: n * unit}, nil
}

func jsonType(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case float64:
		return "number"
	case bool:
		return "boolean"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	default:
		return "unknown"
	}
}
