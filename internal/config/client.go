package config

import (
	"encoding/base64"
	"fmt"
	"os"
	"strings"
)

// ClientConfig holds Pub/Sub client connectivity settings.
type ClientConfig struct {
	ProjectID string
	// EmulatorHost is host:port of a Pub/Sub emulator; when set the client dials it in plaintext
	// without credentials.
	EmulatorHost string
	// Endpoint overrides the API endpoint, e.g. a regional one.
	Endpoint string
	// CredentialsJSON is a service account key. Empty means Application Default Credentials.
	CredentialsJSON []byte
}

// LoadClientConfig builds client settings for projectID from the environment:
// PUBSUB_EMULATOR_HOST, PUBSUB_ENDPOINT and GOOGLE_CREDENTIALS_BASE64.
func LoadClientConfig(projectID string) (ClientConfig, error) {
	cfg := ClientConfig{
		ProjectID:    projectID,
		EmulatorHost: strings.TrimSpace(os.Getenv("PUBSUB_EMULATOR_HOST")),
		Endpoint:     strings.TrimSpace(os.Getenv("PUBSUB_ENDPOINT")),
	}

	if credsBase64 := strings.TrimSpace(os.Getenv("GOOGLE_CREDENTIALS_BASE64")); credsBase64 != "" {
		creds, err := base64.StdEncoding.DecodeString(credsBase64)
		if err != nil {
			return cfg, fmt.Errorf("failed to decode GOOGLE_CREDENTIALS_BASE64: %w", err)
		}
		cfg.CredentialsJSON = creds
	}
	return cfg, nil
}

// UsesEmulator reports whether the client should target an emulator.
func (c ClientConfig) UsesEmulator() bool {
	return c.EmulatorHost != ""
}
