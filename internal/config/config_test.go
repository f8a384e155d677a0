package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadAPIConfig(t *testing.T) {
	tests := []struct {
		name        string
		configFile  string
		expectError bool
		validate    func(*testing.T, *APIConfig)
	}{
		{
			name: "valid config file",
			configFile: `
debug: true
sentry_dsn: "https://sentry.example.com"
server:
  host: "127.0.0.1"
  port: 9090
  read_timeout: 20
  write_timeout: 20
  idle_timeout: 180
database:
  host: localhost
  port: 5432
  user: testuser
  password: testpass
  dbname: testdb
  sslmode: require
nats:
  url: "nats://localhost:4222"
  stream_name: "TEST_STREAM"
  max_reconnects: 5
  reconnect_wait: "5s"
  connection_name: "test-connection"
auth:
  jwt_public_key: "test-public-key"
  api_keys:
    - "key1"
    - "key2"
consensus:
  genesis_time: "2026-03-01T00:00:00Z"
  slot_duration: "60s"
  slots_per_epoch: 1440
  retention_slots: 5000
  fallback_depth: 3
  weight_table_path: "/path/to/weights.json"
key_registry:
  base_url: "https://registry.example.com"
worker:
  pool_size: 16
  queue_size: 256
`,
			expectError: false,
			validate: func(t *testing.T, cfg *APIConfig) {
				assert.True(t, cfg.Debug)
				assert.Equal(t, "https://sentry.example.com", cfg.SentryDSN)
				assert.Equal(t, "127.0.0.1", cfg.Server.Host)
				assert.Equal(t, 9090, cfg.Server.Port)
				assert.Equal(t, 20, cfg.Server.ReadTimeout)
				assert.Equal(t, 180, cfg.Server.IdleTimeout)
				assert.Equal(t, "localhost", cfg.Database.Host)
				assert.Equal(t, "require", cfg.Database.SSLMode)
				assert.Equal(t, "nats://localhost:4222", cfg.NATS.URL)
				assert.Equal(t, "TEST_STREAM", cfg.NATS.StreamName)
				assert.Equal(t, "test-public-key", cfg.Auth.JWTPublicKey)
				assert.Len(t, cfg.Auth.APIKeys, 2)
				assert.Equal(t, 60*time.Second, cfg.Consensus.SlotDuration)
				assert.Equal(t, uint64(1440), cfg.Consensus.SlotsPerEpoch)
				assert.Equal(t, uint64(5000), cfg.Consensus.RetentionSlots)
				assert.Equal(t, 3, cfg.Consensus.FallbackDepth)
				assert.Equal(t, "/path/to/weights.json", cfg.Consensus.WeightTablePath)
				assert.Equal(t, "https://registry.example.com", cfg.KeyRegistry.BaseURL)
				assert.Equal(t, 16, cfg.Worker.WorkerPoolSize)
				assert.Equal(t, 256, cfg.Worker.WorkerQueueSize)

				genesis, err := cfg.Consensus.Genesis()
				require.NoError(t, err)
				assert.Equal(t, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), genesis)
			},
		},
		{
			name: "config with defaults",
			configFile: `
database:
  host: localhost
  user: testuser
  password: testpass
  dbname: testdb
nats:
  url: "nats://localhost:4222"
`,
			expectError: false,
			validate: func(t *testing.T, cfg *APIConfig) {
				// Check defaults
				assert.False(t, cfg.Debug)
				assert.Equal(t, "0.0.0.0", cfg.Server.Host)
				assert.Equal(t, 8080, cfg.Server.Port)
				assert.Equal(t, 10, cfg.Server.ReadTimeout)
				assert.Equal(t, 10, cfg.Server.WriteTimeout)
				assert.Equal(t, 120, cfg.Server.IdleTimeout)
				assert.Equal(t, 5432, cfg.Database.Port)
				assert.Equal(t, "disable", cfg.Database.SSLMode)
				assert.Equal(t, "POOT_EVENTS", cfg.NATS.StreamName)
				assert.Equal(t, 10, cfg.NATS.MaxReconnects)
				assert.Equal(t, "2s", cfg.NATS.ReconnectWait.String())
				assert.Equal(t, 120*time.Second, cfg.Consensus.SlotDuration)
				assert.Equal(t, uint64(720), cfg.Consensus.SlotsPerEpoch)
				assert.Equal(t, uint64(10080), cfg.Consensus.RetentionSlots)
				assert.Equal(t, 2, cfg.Consensus.FallbackDepth)
				assert.Equal(t, 32, cfg.Worker.WorkerPoolSize)
				assert.Equal(t, 1024, cfg.Worker.WorkerQueueSize)
			},
		},
		{
			name:        "missing config file",
			configFile:  "",
			expectError: false,
			validate: func(t *testing.T, cfg *APIConfig) {
				assert.NotNil(t, cfg)
				assert.Equal(t, "0.0.0.0", cfg.Server.Host)
				assert.Equal(t, uint64(720), cfg.Consensus.SlotsPerEpoch)
			},
		},
		{
			name: "invalid yaml",
			configFile: `
				database:
				  host: localhost
				  port: invalid
			`,
			expectError: true, // Invalid port should cause unmarshal error
			validate:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpDir := t.TempDir()
			var configFile string

			if tt.configFile != "" {
				configFile = filepath.Join(tmpDir, "config.yaml")
				err := os.WriteFile(configFile, []byte(tt.configFile), 0600)
				require.NoError(t, err)
			} else {
				configFile = filepath.Join(tmpDir, "nonexistent.yaml")
			}

			cfg, err := LoadAPIConfig(configFile, "")

			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, cfg)
			} else {
				if tt.validate != nil {
					require.NoError(t, err)
					require.NotNil(t, cfg)
					tt.validate(t, cfg)
				}
			}
		})
	}
}

func TestLoadConsensusWorkerConfig(t *testing.T) {
	tests := []struct {
		name        string
		configFile  string
		expectError bool
		validate    func(*testing.T, *ConsensusWorkerConfig)
	}{
		{
			name: "valid config file",
			configFile: `
debug: false
sentry_dsn: "https://sentry.example.com"
database:
  host: localhost
  port: 5432
  user: testuser
  password: testpass
  dbname: testdb
  sslmode: require
nats:
  url: "nats://localhost:4222"
  stream_name: "CUSTOM_STREAM"
  consumer_name: "custom-consumer"
  max_reconnects: 5
  reconnect_wait: "5s"
  ack_wait: "60s"
  max_deliver: 5
consensus:
  genesis_time: "2026-03-01T00:00:00Z"
  slots_per_epoch: 1440
  fallback_depth: 3
retry:
  max_elapsed_time: "10m"
`,
			expectError: false,
			validate: func(t *testing.T, cfg *ConsensusWorkerConfig) {
				assert.False(t, cfg.Debug)
				assert.Equal(t, "https://sentry.example.com", cfg.SentryDSN)
				assert.Equal(t, "localhost", cfg.Database.Host)
				assert.Equal(t, "CUSTOM_STREAM", cfg.NATS.StreamName)
				assert.Equal(t, "custom-consumer", cfg.NATS.ConsumerName)
				assert.Equal(t, 60*time.Second, cfg.NATS.AckWait)
				assert.Equal(t, 5, cfg.NATS.MaxDeliver)
				assert.Equal(t, uint64(1440), cfg.Consensus.SlotsPerEpoch)
				assert.Equal(t, 3, cfg.Consensus.FallbackDepth)
				assert.Equal(t, 10*time.Minute, cfg.Retry.MaxElapsedTime)
			},
		},
		{
			name: "config with defaults",
			configFile: `
database:
  host: localhost
  user: testuser
  password: testpass
  dbname: testdb
nats:
  url: "nats://localhost:4222"
`,
			expectError: false,
			validate: func(t *testing.T, cfg *ConsensusWorkerConfig) {
				// Check defaults
				assert.Equal(t, 5432, cfg.Database.Port)
				assert.Equal(t, "disable", cfg.Database.SSLMode)
				assert.Equal(t, "POOT_EVENTS", cfg.NATS.StreamName)
				assert.Equal(t, "consensus-worker", cfg.NATS.ConsumerName)
				assert.Equal(t, 30*time.Second, cfg.NATS.AckWait)
				assert.Equal(t, 3, cfg.NATS.MaxDeliver)
				assert.Equal(t, uint64(720), cfg.Consensus.SlotsPerEpoch)
				assert.Equal(t, 2, cfg.Consensus.FallbackDepth)
				assert.Equal(t, 5*time.Minute, cfg.Retry.MaxElapsedTime)
			},
		},
		{
			name:        "missing config file",
			configFile:  "",
			expectError: false,
			validate:    nil,
		},
		{
			name: "invalid yaml",
			configFile: `
				database:
				  host: localhost
				  port: invalid
			`,
			expectError: true, // Invalid port should cause unmarshal error
			validate:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpDir := t.TempDir()
			var configFile string

			if tt.configFile != "" {
				configFile = filepath.Join(tmpDir, "config.yaml")
				err := os.WriteFile(configFile, []byte(tt.configFile), 0600)
				require.NoError(t, err)
			} else {
				configFile = filepath.Join(tmpDir, "nonexistent.yaml")
			}

			cfg, err := LoadConsensusWorkerConfig(configFile, "")

			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, cfg)
			} else {
				if tt.validate != nil {
					require.NoError(t, err)
					require.NotNil(t, cfg)
					tt.validate(t, cfg)
				}
			}
		})
	}
}

func TestConsensusConfig_Genesis(t *testing.T) {
	t.Run("parses RFC 3339", func(t *testing.T) {
		cfg := ConsensusConfig{GenesisTime: "2026-01-01T00:00:00Z"}
		genesis, err := cfg.Genesis()
		require.NoError(t, err)
		assert.Equal(t, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), genesis)
	})

	t.Run("rejects malformed timestamps", func(t *testing.T) {
		cfg := ConsensusConfig{GenesisTime: "yesterday"}
		_, err := cfg.Genesis()
		assert.Error(t, err)
	})
}

func TestDatabaseConfig_DSN(t *testing.T) {
	tests := []struct {
		name     string
		config   DatabaseConfig
		expected string
	}{
		{
			name: "complete config",
			config: DatabaseConfig{
				Host:     "localhost",
				Port:     5432,
				User:     "testuser",
				Password: "testpass",
				DBName:   "testdb",
				SSLMode:  "require",
			},
			expected: "host=localhost port=5432 user=testuser password=testpass dbname=testdb sslmode=require",
		},
		{
			name: "with special characters in password",
			config: DatabaseConfig{
				Host:     "localhost",
				Port:     5432,
				User:     "testuser",
				Password: "p@ssw0rd!",
				DBName:   "testdb",
				SSLMode:  "disable",
			},
			expected: "host=localhost port=5432 user=testuser password=p@ssw0rd! dbname=testdb sslmode=disable",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dsn := tt.config.DSN()
			assert.Equal(t, tt.expected, dsn)
		})
	}
}

func TestConfigWithEnvironmentVariables(t *testing.T) {
	tmpDir := t.TempDir()

	// Create temporary directory for env files
	envDir := filepath.Join(tmpDir, "env")
	err := os.MkdirAll(envDir, 0750)
	require.NoError(t, err)

	// Create .env file with environment variables
	// Note: Viper uses POOT_ENGINE_ prefix, so env vars need the prefix
	envFile := filepath.Join(envDir, ".env")
	envContent := `POOT_ENGINE_DEBUG=true
POOT_ENGINE_DATABASE_HOST=env-host
POOT_ENGINE_DATABASE_PORT=3306
POOT_ENGINE_DATABASE_USER=env-user
POOT_ENGINE_DATABASE_PASSWORD=env-pass
POOT_ENGINE_DATABASE_DBNAME=env-db
POOT_ENGINE_DATABASE_SSLMODE=require
`
	err = os.WriteFile(envFile, []byte(envContent), 0600)
	require.NoError(t, err)

	// Create config file with different values to verify env vars override
	configPath := filepath.Join(tmpDir, "config.yaml")
	configFile := `
debug: false
database:
  host: file-host
  port: 5432
  user: file-user
  password: file-pass
  dbname: file-db
  sslmode: disable
`

	err = os.WriteFile(configPath, []byte(configFile), 0600)
	require.NoError(t, err)

	// Load config with envPath pointing to the temporary env directory
	cfg, err := LoadAPIConfig(configPath, envDir)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	// Verify that environment variables from .env file override config file values
	// The .env file is loaded via godotenv.Overload, which sets actual environment variables
	// Viper's AutomaticEnv then picks them up with POOT_ENGINE_ prefix
	assert.True(t, cfg.Debug)
	assert.Equal(t, "env-host", cfg.Database.Host)
	assert.Equal(t, 3306, cfg.Database.Port)
	assert.Equal(t, "env-user", cfg.Database.User)
	assert.Equal(t, "env-pass", cfg.Database.Password)
	assert.Equal(t, "env-db", cfg.Database.DBName)
	assert.Equal(t, "require", cfg.Database.SSLMode)
}
