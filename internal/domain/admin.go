package domain

import "context"

// TopicAdmin is the subset of the Pub/Sub admin API a creation run needs.
// Names passed in are bare topic IDs; the implementation qualifies them with its project.
type TopicAdmin interface {
	TopicExists(ctx context.Context, topicName string) (bool, *Topic, error)
	CreateTopic(ctx context.Context, topicName string) (*Topic, error)
	SetTopicMetadata(ctx context.Context, topic *Topic, md TopicMetadata) error
}
