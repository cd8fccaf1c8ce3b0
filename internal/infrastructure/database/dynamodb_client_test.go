package database

import (
	"context"
	"testing"

	appconfig "alu_portal/internal/infrastructure/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDynamoDBConfig_StaticCredentials(t *testing.T) {
	cfg, err := NewDynamoDBConfig(context.Background(), appconfig.AWSConfig{
		Region:           "ap-southeast-1",
		AccessKeyID:      "local",
		SecretAccessKey:  "secret",
		DynamoDBEndpoint: "http://localhost:8000",
	})
	require.NoError(t, err)
	assert.Equal(t, "ap-southeast-1", cfg.Region)

	creds, err := cfg.Credentials.Retrieve(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "local", creds.AccessKeyID)
	assert.Equal(t, "secret", creds.SecretAccessKey)
}
