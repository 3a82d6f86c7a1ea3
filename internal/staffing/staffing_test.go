package staffing

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"staffplan/internal/staffing/models"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNewModuleSeedsRoster(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roster.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
- {name: Lin, gender: 女, preference: B, bonded_with: Kai}
- {name: Kai, gender: 男, preference: B}
`), 0o600))

	m, err := NewModule(context.Background(), Config{
		Venues:   models.DefaultVenues(),
		Policy:   models.QuotaPolicyReport,
		SeedPath: path,
	}, discardLogger(), prometheus.NewRegistry())
	require.NoError(t, err)
	require.NotNil(t, m.Handler)

	roster, err := m.Service.ListRoster(context.Background())
	require.NoError(t, err)
	assert.Len(t, roster.People, 2)
	assert.Len(t, roster.Bonds, 1)
}

func TestNewModuleRejectsBadInput(t *testing.T) {
	t.Run("invalid venues", func(t *testing.T) {
		venues := models.DefaultVenues()
		venues.A.Name = ""
		_, err := NewModule(context.Background(), Config{Venues: venues}, discardLogger(), prometheus.NewRegistry())
		require.Error(t, err)
	})

	t.Run("bad seed entry", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "roster.yaml")
		require.NoError(t, os.WriteFile(path, []byte("- {name: Q, gender: unknown}\n"), 0o600))
		_, err := NewModule(context.Background(), Config{Venues: models.DefaultVenues(), SeedPath: path}, discardLogger(), prometheus.NewRegistry())
		require.Error(t, err)
	})
}
