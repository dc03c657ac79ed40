package pubsub

import (
	"context"

	vkit "cloud.google.com/go/pubsub/apiv1"
	"github.com/OliveiraNt/pubsub-topic-creator/internal/config"
	"github.com/OliveiraNt/pubsub-topic-creator/internal/domain"
	"github.com/OliveiraNt/pubsub-topic-creator/internal/utils"
	"google.golang.org/api/option"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// Client implements domain.TopicAdmin for one project using the Pub/Sub publisher API.
type Client struct {
	publisher *vkit.PublisherClient
	admin     *Admin
	config    config.ClientConfig
}

var _ domain.TopicAdmin = (*Client)(nil)

// NewClient creates a new Pub/Sub client from configuration.
func NewClient(ctx context.Context, cfg config.ClientConfig) (*Client, error) {
	publisher, err := vkit.NewPublisherClient(ctx, clientOptions(cfg)...)
	if err != nil {
		return nil, err
	}
	return &Client{
		publisher: publisher,
		admin:     NewAdmin(publisher),
		config:    cfg,
	}, nil
}

func clientOptions(cfg config.ClientConfig) []option.ClientOption {
	var opts []option.ClientOption
	if cfg.UsesEmulator() {
		utils.Logger.Debug("using Pub/Sub emulator", "host", cfg.EmulatorHost)
		return append(opts,
			option.WithEndpoint(cfg.EmulatorHost),
			option.WithoutAuthentication(),
			option.WithGRPCDialOption(grpc.WithTransportCredentials(insecure.NewCredentials())),
		)
	}
	if cfg.Endpoint != "" {
		opts = append(opts, option.WithEndpoint(cfg.Endpoint))
	}
	if len(cfg.CredentialsJSON) > 0 {
		utils.Logger.Debug("using service account credentials from GOOGLE_CREDENTIALS_BASE64")
		opts = append(opts, option.WithCredentialsJSON(cfg.CredentialsJSON))
	}
	return opts
}

// TopicExists reports whether topicName exists in the client's project.
func (c *Client) TopicExists(ctx context.Context, topicName string) (bool, *domain.Topic, error) {
	t, err := c.admin.GetTopic(ctx, c.topicPath(topicName))
	if err != nil {
		return false, nil, err
	}
	if t == nil {
		return false, nil, nil
	}
	return true, &domain.Topic{Name: t.GetName()}, nil
}

// CreateTopic creates topicName in the client's project.
func (c *Client) CreateTopic(ctx context.Context, topicName string) (*domain.Topic, error) {
	t, err := c.admin.CreateTopic(ctx, c.topicPath(topicName))
	if err != nil {
		return nil, err
	}
	return &domain.Topic{Name: t.GetName()}, nil
}

// SetTopicMetadata applies md to an existing topic.
func (c *Client) SetTopicMetadata(ctx context.Context, topic *domain.Topic, md domain.TopicMetadata) error {
	_, err := c.admin.UpdateTopic(ctx, topic.Name, md)
	return err
}

// Close releases the underlying connection.
func (c *Client) Close() error {
	if c == nil || c.publisher == nil {
		return nil
	}
	return c.publisher.Close()
}

func (c *Client) topicPath(topicName string) string {
	return domain.TopicPath(c.config.ProjectID, topicName)
}
