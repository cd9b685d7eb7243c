package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	conf, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "8081", conf.Server.Port)
	assert.Equal(t, []string{"http://localhost:3000"}, conf.Server.CORSOrigins)
	assert.Equal(t, "ollama", conf.LLM.Provider)
	assert.Equal(t, 60*time.Second, conf.LLM.Timeout)
	assert.Equal(t, "https://api.resend.com/emails", conf.Email.Endpoint)
	assert.Equal(t, "scholarship-leads", conf.Leads.KafkaTopic)
	assert.Empty(t, conf.Leads.KafkaBrokers)
	assert.Equal(t, 720*time.Hour, conf.Unlock.TTL)
	assert.Equal(t, 2, conf.Unlock.PreviewCount)
	assert.Equal(t, "info", conf.Logging.Level)
	assert.Equal(t, "json", conf.Logging.Format)
}

func TestLoad_FileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	content := `
server:
  port: "9090"
  base_url: https://example.org
llm:
  provider: static
unlock:
  preview_count: 3
leads:
  kafka_brokers: ["k1:9092"]
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	t.Setenv("UNLOCK_SECRET", "from-env")
	t.Setenv("LEADS_KAFKA_BROKERS", "k1:9092, k2:9092")
	t.Setenv("DATABASE_URL", "postgres://env/db")

	conf, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "9090", conf.Server.Port)
	assert.Equal(t, "https://example.org", conf.Server.BaseURL)
	assert.Equal(t, "static", conf.LLM.Provider)
	assert.Equal(t, 3, conf.Unlock.PreviewCount)
	assert.Equal(t, "from-env", conf.Unlock.Secret)
	assert.Equal(t, "postgres://env/db", conf.DatabaseURL)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, conf.Leads.KafkaBrokers)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yml"))
	assert.ErrorContains(t, err, "error reading config file")

	t.Setenv("LLM_PROVIDER", "gpt-magic")
	_, err = Load("")
	assert.ErrorContains(t, err, "unknown llm.provider")
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c"}, splitList([]string{"a, b", " ", "c,"}))
	assert.Equal(t, []string{}, splitList(nil))
}
