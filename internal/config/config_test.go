package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, ":8181", cfg.Listen)
	assert.Equal(t, "sunday", cfg.Calendar.WeekStart)
	assert.Equal(t, 18, cfg.Calendar.EventStartHour)
	assert.Equal(t, 3, cfg.Calendar.EventDurationHours)
	assert.Equal(t, "KASA-Events.ics", cfg.Calendar.ExportFileName)
	assert.Equal(t, 5*time.Second, cfg.Carousel.Interval)
	assert.Len(t, cfg.Carousel.Testimonials, 3)
	assert.Equal(t, "bolt", cfg.Storage.Driver)
	assert.Equal(t, "kasaSubscription", cfg.Storage.Key)
}

func TestLoad_FileAndEnvOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "application.yaml")
	content := `
listen: ":9000"
calendar:
  weekstart: monday
  upcominglimit: 5
carousel:
  interval: 10s
storage:
  key: siteSubscription
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	t.Setenv("KASA_LISTEN", ":9090")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Listen)
	assert.Equal(t, "monday", cfg.Calendar.WeekStart)
	assert.Equal(t, time.Monday, cfg.Calendar.WeekStartDay())
	assert.Equal(t, 5, cfg.Calendar.UpcomingLimit)
	assert.Equal(t, 10*time.Second, cfg.Carousel.Interval)
	assert.Equal(t, "siteSubscription", cfg.Storage.Key)
}

func TestNormalize_FixesOutOfRangeValues(t *testing.T) {
	cfg := Application{
		Calendar: Calendar{WeekStart: "friday", EventStartHour: 30},
	}
	cfg.normalize()

	assert.Equal(t, "sunday", cfg.Calendar.WeekStart)
	assert.Equal(t, time.Sunday, cfg.Calendar.WeekStartDay())
	assert.Equal(t, 18, cfg.Calendar.EventStartHour)
	assert.Equal(t, 3, cfg.Calendar.EventDurationHours)
	assert.Equal(t, 3, cfg.Calendar.UpcomingLimit)
	assert.Equal(t, 4*time.Second, cfg.Notification.TTL)
}
