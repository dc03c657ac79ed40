package pubsub

import (
	"context"

	"cloud.google.com/go/pubsub/apiv1/pubsubpb"
	"github.com/OliveiraNt/pubsub-topic-creator/internal/domain"
	gax "github.com/googleapis/gax-go/v2"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/durationpb"
	"google.golang.org/protobuf/types/known/fieldmaskpb"
)

// publisherAPI is the part of the generated publisher client used for topic administration.
type publisherAPI interface {
	GetTopic(ctx context.Context, req *pubsubpb.GetTopicRequest, opts ...gax.CallOption) (*pubsubpb.Topic, error)
	CreateTopic(ctx context.Context, req *pubsubpb.Topic, opts ...gax.CallOption) (*pubsubpb.Topic, error)
	UpdateTopic(ctx context.Context, req *pubsubpb.UpdateTopicRequest, opts ...gax.CallOption) (*pubsubpb.Topic, error)
}

// Admin issues topic RPCs against fully-qualified topic names.
type Admin struct {
	client publisherAPI
}

// NewAdmin creates a new Admin
func NewAdmin(client publisherAPI) *Admin {
	return &Admin{client: client}
}

// GetTopic returns the topic, or nil without error when it does not exist.
func (a *Admin) GetTopic(ctx context.Context, topicPath string) (*pubsubpb.Topic, error) {
	t, err := a.client.GetTopic(ctx, &pubsubpb.GetTopicRequest{Topic: topicPath})
	if status.Code(err) == codes.NotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return t, nil
}

// CreateTopic creates a topic with no settings besides its name.
func (a *Admin) CreateTopic(ctx context.Context, topicPath string) (*pubsubpb.Topic, error) {
	t, err := a.client.CreateTopic(ctx, &pubsubpb.Topic{Name: topicPath})
	if err != nil {
		return nil, serviceError(err)
	}
	return t, nil
}

// UpdateTopic sets the given metadata fields on topicPath in a single call.
// Only fields present in md are put in the update mask.
func (a *Admin) UpdateTopic(ctx context.Context, topicPath string, md domain.TopicMetadata) (*pubsubpb.Topic, error) {
	topic, mask := metadataToProto(topicPath, md)
	if len(mask.Paths) == 0 {
		return nil, nil
	}
	t, err := a.client.UpdateTopic(ctx, &pubsubpb.UpdateTopicRequest{Topic: topic, UpdateMask: mask})
	if err != nil {
		return nil, serviceError(err)
	}
	return t, nil
}

func metadataToProto(topicPath string, md domain.TopicMetadata) (*pubsubpb.Topic, *fieldmaskpb.FieldMask) {
	topic := &pubsubpb.Topic{Name: topicPath}
	mask := &fieldmaskpb.FieldMask{}

	if md.Labels != nil {
		topic.Labels = md.Labels
		mask.Paths = append(mask.Paths, "labels")
	}
	if md.KMSKeyName != "" {
		topic.KmsKeyName = md.KMSKeyName
		mask.Paths = append(mask.Paths, "kms_key_name")
	}
	if d := md.MessageRetentionDuration; d != nil {
		topic.MessageRetentionDuration = &durationpb.Duration{Seconds: d.Seconds, Nanos: d.Nanos}
		mask.Paths = append(mask.Paths, "message_retention_duration")
	}
	return topic, mask
}

// serviceError keeps the service's own message as the error text.
func serviceError(err error) error {
	return domain.ServiceError(status.Convert(err).Message(), err)
}
