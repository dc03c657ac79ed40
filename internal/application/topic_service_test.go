package application

import (
	"context"
	"errors"
	"testing"

	"github.com/OliveiraNt/pubsub-topic-creator/internal/domain"
	"github.com/OliveiraNt/pubsub-topic-creator/internal/testutil"
	"github.com/stretchr/testify/require"
)

func TestTopicService_CreatesMissingTopic(t *testing.T) {
	t.Parallel()
	admin := testutil.NewFakeTopicAdmin("p")
	svc := NewTopicService(admin)

	res := svc.CreateTopic(context.Background(), domain.TopicConfig{ProjectID: "p", TopicName: "topic"})
	require.Equal(t, domain.TopicResult{Success: true, Created: true, TopicName: "projects/p/topics/topic"}, res)
	require.Equal(t, []string{"topic"}, admin.CreateCalls)
	require.Empty(t, admin.MetadataCalls)
}

func TestTopicService_SkipsExistingTopic(t *testing.T) {
	t.Parallel()
	admin := testutil.NewFakeTopicAdmin("p")
	admin.Existing["topic"] = true
	svc := NewTopicService(admin)

	cfg := domain.TopicConfig{
		ProjectID:                "p",
		TopicName:                "topic",
		SkipIfExists:             true,
		Labels:                   `{"env":"prod"}`,
		MessageRetentionDuration: "1d",
	}
	first := svc.CreateTopic(context.Background(), cfg)
	require.Equal(t, domain.TopicResult{Success: true, Created: false, TopicName: "projects/p/topics/topic"}, first)

	second := svc.CreateTopic(context.Background(), cfg)
	require.Equal(t, first, second)

	require.Empty(t, admin.CreateCalls)
	require.Empty(t, admin.MetadataCalls)
}

func TestTopicService_ExistingTopicWithoutSkipFails(t *testing.T) {
	t.Parallel()
	admin := testutil.NewFakeTopicAdmin("p")
	admin.Existing["topic"] = true
	svc := NewTopicService(admin)

	res := svc.CreateTopic(context.Background(), domain.TopicConfig{ProjectID: "p", TopicName: "topic"})
	require.False(t, res.Success)
	require.ErrorIs(t, res.Err, domain.ErrAlreadyExists)
	require.Contains(t, res.Message(), "already exists")
	require.Contains(t, res.Message(), "projects/p/topics/topic")
	require.Empty(t, admin.CreateCalls)
}

func TestTopicService_InvalidNameShortCircuits(t *testing.T) {
	t.Parallel()
	admin := testutil.NewFakeTopicAdmin("p")
	svc := NewTopicService(admin)

	res := svc.CreateTopic(context.Background(), domain.TopicConfig{ProjectID: "p", TopicName: "9bad"})
	require.False(t, res.Success)
	require.ErrorIs(t, res.Err, domain.ErrInvalidArgument)
	require.Empty(t, admin.ExistsCalls)
	require.Empty(t, admin.CreateCalls)
}

func TestTopicService_AppliesMetadataOnce(t *testing.T) {
	t.Parallel()
	admin := testutil.NewFakeTopicAdmin("p")
	svc := NewTopicService(admin)

	res := svc.CreateTopic(context.Background(), domain.TopicConfig{
		ProjectID:                "p",
		TopicName:                "topic",
		Labels:                   `{"team":"data","env":"dev"}`,
		KMSKeyName:               "projects/p/locations/global/keyRings/r/cryptoKeys/k",
		MessageRetentionDuration: "7d",
	})
	require.True(t, res.Success)
	require.True(t, res.Created)
	require.Equal(t, []string{"topic"}, admin.CreateCalls)
	require.Len(t, admin.MetadataCalls, 1)

	md := admin.MetadataCalls[0]
	require.Equal(t, map[string]string{"team": "data", "env": "dev"}, md.Labels)
	require.Equal(t, "projects/p/locations/global/keyRings/r/cryptoKeys/k", md.KMSKeyName)
	require.Equal(t, &domain.Duration{Seconds: 604800}, md.MessageRetentionDuration)
}

func TestTopicService_KMSKeyPassedThroughVerbatim(t *testing.T) {
	t.Parallel()
	admin := testutil.NewFakeTopicAdmin("p")
	svc := NewTopicService(admin)

	res := svc.CreateTopic(context.Background(), domain.TopicConfig{ProjectID: "p", TopicName: "topic", KMSKeyName: "not a key path"})
	require.True(t, res.Success)
	require.Len(t, admin.MetadataCalls, 1)
	require.Equal(t, "not a key path", admin.MetadataCalls[0].KMSKeyName)
	require.Nil(t, admin.MetadataCalls[0].Labels)
	require.Nil(t, admin.MetadataCalls[0].MessageRetentionDuration)
}

func TestTopicService_ExistenceCheckFailureAssumesMissing(t *testing.T) {
	t.Parallel()
	admin := testutil.NewFakeTopicAdmin("p")
	admin.ExistsErr = errors.New("permission denied")
	svc := NewTopicService(admin)

	res := svc.CreateTopic(context.Background(), domain.TopicConfig{ProjectID: "p", TopicName: "topic", SkipIfExists: true})
	require.True(t, res.Success)
	require.True(t, res.Created)
	require.Equal(t, []string{"topic"}, admin.CreateCalls)
}

func TestTopicService_CreateFailurePropagatesMessage(t *testing.T) {
	t.Parallel()
	admin := testutil.NewFakeTopicAdmin("p")
	admin.CreateErr = errors.New("quota exceeded")
	svc := NewTopicService(admin)

	res := svc.CreateTopic(context.Background(), domain.TopicConfig{ProjectID: "p", TopicName: "topic", Labels: `{"a":"b"}`})
	require.False(t, res.Success)
	require.ErrorIs(t, res.Err, domain.ErrService)
	require.Equal(t, "quota exceeded", res.Message())
	require.Empty(t, admin.MetadataCalls)
}

func TestTopicService_MetadataFailures(t *testing.T) {
	t.Parallel()

	t.Run("service rejects update", func(t *testing.T) {
		admin := testutil.NewFakeTopicAdmin("p")
		admin.MetadataErr = domain.ServiceError("kms key not found", errors.New("rpc"))
		svc := NewTopicService(admin)

		res := svc.CreateTopic(context.Background(), domain.TopicConfig{ProjectID: "p", TopicName: "topic", KMSKeyName: "k"})
		require.False(t, res.Success)
		require.Equal(t, "kms key not found", res.Message())
		require.True(t, admin.Existing["topic"], "topic stays created")
	})

	t.Run("malformed labels after creation", func(t *testing.T) {
		admin := testutil.NewFakeTopicAdmin("p")
		svc := NewTopicService(admin)

		res := svc.CreateTopic(context.Background(), domain.TopicConfig{ProjectID: "p", TopicName: "topic", Labels: `{"a":1}`})
		require.False(t, res.Success)
		require.ErrorIs(t, res.Err, domain.ErrInvalidArgument)
		require.Equal(t, []string{"topic"}, admin.CreateCalls)
		require.Empty(t, admin.MetadataCalls)
	})

	t.Run("malformed retention after creation", func(t *testing.T) {
		admin := testutil.NewFakeTopicAdmin("p")
		svc := NewTopicService(admin)

		res := svc.CreateTopic(context.Background(), domain.TopicConfig{ProjectID: "p", TopicName: "topic", MessageRetentionDuration: "5x"})
		require.False(t, res.Success)
		require.ErrorIs(t, res.Err, domain.ErrInvalidArgument)
		require.Empty(t, admin.MetadataCalls)
	})
}
