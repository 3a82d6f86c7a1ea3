package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Empty(t, cfg.Server.AdminToken)
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, Venue{Name: "Venue A", Male: 9, Female: 9}, cfg.Venues.A)
	assert.Equal(t, Venue{Name: "Venue B", Male: 9, Female: 9}, cfg.Venues.B)
	assert.Equal(t, "report", cfg.Assignment.QuotaPolicy)
}

func TestLoadFileThenEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "staffplan.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
server:
  addr: ":9090"
venues:
  a:
    name: North Hall
    male: 4
    female: 5
assignment:
  quota_policy: strict
`), 0o600))

	t.Setenv("STAFFPLAN_SERVER_ADMIN_TOKEN", "s3cret")
	t.Setenv("STAFFPLAN_VENUES_A_MALE", "6")
	t.Setenv("STAFFPLAN_LOG_FORMAT", "text")
	t.Setenv("STAFFPLAN_ROSTER_SEED_PATH", "/etc/staffplan/roster.yaml")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Server.Addr)
	assert.Equal(t, "s3cret", cfg.Server.AdminToken)
	assert.Equal(t, Venue{Name: "North Hall", Male: 6, Female: 5}, cfg.Venues.A)
	assert.Equal(t, Venue{Name: "Venue B", Male: 9, Female: 9}, cfg.Venues.B)
	assert.Equal(t, "strict", cfg.Assignment.QuotaPolicy)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, "/etc/staffplan/roster.yaml", cfg.Roster.SeedPath)
}

func TestLoadRejects(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
		require.Error(t, err)
	})

	t.Run("unknown policy", func(t *testing.T) {
		t.Setenv("STAFFPLAN_ASSIGNMENT_QUOTA_POLICY", "lenient")
		_, err := Load("")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "quota_policy")
	})

	t.Run("negative quota", func(t *testing.T) {
		t.Setenv("STAFFPLAN_VENUES_B_FEMALE", "-1")
		_, err := Load("")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "venues.b")
	})
}

func TestEnvKey(t *testing.T) {
	tests := map[string]string{
		"STAFFPLAN_SERVER_ADDR":             "server.addr",
		"STAFFPLAN_SERVER_SHUTDOWN_TIMEOUT": "server.shutdown_timeout",
		"STAFFPLAN_VENUES_B_NAME":           "venues.b.name",
		"STAFFPLAN_ASSIGNMENT_QUOTA_POLICY": "assignment.quota_policy",
		"STAFFPLAN_DEBUG":                   "debug",
	}
	for in, want := range tests {
		assert.Equal(t, want, envKey(in), in)
	}
}
