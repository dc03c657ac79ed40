// Package domain defines the entities of a topic creation run: the typed configuration parsed from
// runner inputs, the metadata applied to a freshly created topic, the result reported back to the
// runner, and the abstraction over the Pub/Sub admin API.
package domain

import "fmt"

// TopicConfig is the typed form of the step inputs.
// Optional string fields are empty when the input was not provided.
type TopicConfig struct {
	ProjectID                string
	TopicName                string
	SkipIfExists             bool
	Labels                   string
	KMSKeyName               string
	MessageRetentionDuration string
}

// HasMetadata reports whether any of the post-creation metadata inputs were given.
func (c TopicConfig) HasMetadata() bool {
	return c.Labels != "" || c.KMSKeyName != "" || c.MessageRetentionDuration != ""
}

// Duration is a whole-second retention period.
// Nanos is part of the wire shape but is never populated from input.
type Duration struct {
	Seconds int64
	Nanos   int32
}

// Topic is a handle to a topic known to exist on the service.
type Topic struct {
	// Name is the fully-qualified resource name.
	Name string
}

// TopicMetadata holds the optional settings applied to a topic after creation.
// Zero values mean "leave unset".
type TopicMetadata struct {
	Labels                   map[string]string
	KMSKeyName               string
	MessageRetentionDuration *Duration
}

// TopicResult is the outcome of one creation run.
type TopicResult struct {
	Success   bool
	TopicName string
	Created   bool
	Err       error
}

// Message returns the failure text, or an empty string on success.
func (r TopicResult) Message() string {
	if r.Err == nil {
		return ""
	}
	return r.Err.Error()
}

// TopicPath returns the fully-qualified name projects/{project}/topics/{topic}.
func TopicPath(projectID, topicName string) string {
	return fmt.Sprintf("projects/%s/topics/%s", projectID, topicName)
}
