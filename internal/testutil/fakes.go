package testutil

import (
	"context"

	"github.com/OliveiraNt/pubsub-topic-creator/internal/domain"
)

// FakeTopicAdmin is a test double implementing domain.TopicAdmin with configurable responses.
// Every call is recorded so tests can assert which RPCs a run issued.
type FakeTopicAdmin struct {
	ProjectID   string
	Existing    map[string]bool
	ExistsErr   error
	CreateErr   error
	MetadataErr error

	ExistsCalls   []string
	CreateCalls   []string
	MetadataCalls []domain.TopicMetadata
}

func NewFakeTopicAdmin(projectID string) *FakeTopicAdmin {
	return &FakeTopicAdmin{ProjectID: projectID, Existing: map[string]bool{}}
}

func (f *FakeTopicAdmin) TopicExists(_ context.Context, topicName string) (bool, *domain.Topic, error) {
	f.ExistsCalls = append(f.ExistsCalls, topicName)
	if f.ExistsErr != nil {
		return false, nil, f.ExistsErr
	}
	if !f.Existing[topicName] {
		return false, nil, nil
	}
	return true, &domain.Topic{Name: domain.TopicPath(f.ProjectID, topicName)}, nil
}

func (f *FakeTopicAdmin) CreateTopic(_ context.Context, topicName string) (*domain.Topic, error) {
	f.CreateCalls = append(f.CreateCalls, topicName)
	if f.CreateErr != nil {
		return nil, f.CreateErr
	}
	f.Existing[topicName] = true
	return &domain.Topic{Name: domain.TopicPath(f.ProjectID, topicName)}, nil
}

func (f *FakeTopicAdmin) SetTopicMetadata(_ context.Context, _ *domain.Topic, md domain.TopicMetadata) error {
	f.MetadataCalls = append(f.MetadataCalls, md)
	return f.MetadataErr
}

// Close satisfies io.Closer so the fake can stand in for a real client.
func (f *FakeTopicAdmin) Close() error { return nil }
