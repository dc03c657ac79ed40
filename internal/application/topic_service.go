package application

import (
	"context"

	"github.com/OliveiraNt/pubsub-topic-creator/internal/domain"
	"github.com/OliveiraNt/pubsub-topic-creator/internal/utils"
)

// TopicService runs the create-or-skip procedure for a single topic.
type TopicService struct {
	admin domain.TopicAdmin
}

// NewTopicService creates a new topic service.
func NewTopicService(admin domain.TopicAdmin) *TopicService {
	return &TopicService{admin: admin}
}

// CreateTopic validates cfg, checks whether the topic exists and either skips, fails or creates it,
// applying labels, KMS key and retention to a newly created topic in one update call.
//
// A failure while applying metadata is reported as Success=false even though the topic has already
// been created; such a topic is left in place, possibly without the requested metadata.
func (s *TopicService) CreateTopic(ctx context.Context, cfg domain.TopicConfig) domain.TopicResult {
	utils.Logger.Info("creating Pub/Sub topic", "project", cfg.ProjectID, "topic", cfg.TopicName)

	if err := domain.ValidateTopicName(cfg.TopicName); err != nil {
		return failed(err)
	}

	exists, existing := s.checkTopicExists(ctx, cfg.TopicName)
	if exists {
		if cfg.SkipIfExists {
			utils.Logger.Info("topic already exists, skipping creation", "topic", existing.Name)
			return domain.TopicResult{Success: true, TopicName: existing.Name, Created: false}
		}
		return failed(domain.AlreadyExists(existing.Name))
	}

	topic, err := s.admin.CreateTopic(ctx, cfg.TopicName)
	if err != nil {
		utils.Logger.Error("create topic failed", "topic", cfg.TopicName, "err", err)
		return failed(asServiceError(err))
	}
	utils.Logger.Info("topic created", "topic", topic.Name)

	if cfg.HasMetadata() {
		if err := s.applyMetadata(ctx, topic, cfg); err != nil {
			utils.Logger.Error("topic was created but applying metadata failed", "topic", topic.Name, "err", err)
			return failed(err)
		}
	}

	return domain.TopicResult{Success: true, TopicName: topic.Name, Created: true}
}

// checkTopicExists treats a failed lookup as "does not exist"; creation will then fail cleanly
// with a duplicate error if the topic is in fact there.
func (s *TopicService) checkTopicExists(ctx context.Context, topicName string) (bool, *domain.Topic) {
	exists, topic, err := s.admin.TopicExists(ctx, topicName)
	if err != nil {
		utils.Logger.Warn("could not check whether topic exists, assuming it does not", "topic", topicName, "err", err)
		return false, nil
	}
	if exists && topic == nil {
		utils.Logger.Warn("existence check returned no topic handle, assuming it does not exist", "topic", topicName)
		return false, nil
	}
	utils.Logger.Info("topic existence checked", "topic", topicName, "exists", exists)
	return exists, topic
}

func (s *TopicService) applyMetadata(ctx context.Context, topic *domain.Topic, cfg domain.TopicConfig) error {
	md, err := buildMetadata(cfg)
	if err != nil {
		return err
	}
	utils.Logger.Info("applying topic metadata",
		"topic", topic.Name,
		"labels", len(md.Labels),
		"kms_key", md.KMSKeyName != "",
		"retention", md.MessageRetentionDuration != nil,
	)
	if err := s.admin.SetTopicMetadata(ctx, topic, md); err != nil {
		return asServiceError(err)
	}
	utils.Logger.Info("topic metadata applied", "topic", topic.Name)
	return nil
}

// buildMetadata parses the optional metadata inputs. The KMS key name is passed through unchecked.
func buildMetadata(cfg domain.TopicConfig) (domain.TopicMetadata, error) {
	var md domain.TopicMetadata
	if cfg.Labels != "" {
		labels, err := domain.ParseLabels(cfg.Labels)
		if err != nil {
			return md, err
		}
		md.Labels = labels
	}
	md.KMSKeyName = cfg.KMSKeyName
	if cfg.MessageRetentionDuration != "" {
		d, err := domain.ParseDuration(cfg.MessageRetentionDuration)
		if err != nil {
			return md, err
		}
		md.MessageRetentionDuration = &d
	}
	return md, nil
}
