package signedlink_test

import (
	"net/url"
	"os"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/signedlink"
)

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := signedlink.DefaultConfig()
	assert.Empty(t, cfg.Secret)
	assert.Equal(t, signedlink.DefaultBaseURL, cfg.BaseURL)
	assert.Equal(t, signedlink.DefaultTTL, cfg.TTL)
}

func TestNewFromConfig(t *testing.T) {
	t.Parallel()

	t.Run("missing secret", func(t *testing.T) {
		t.Parallel()
		signer, err := signedlink.NewFromConfig(signedlink.DefaultConfig())
		assert.Nil(t, signer)
		assert.ErrorIs(t, err, signedlink.ErrMissingSecret)
	})

	t.Run("config values applied", func(t *testing.T) {
		t.Parallel()

		now := time.Unix(1700000000, 0)
		signer, err := signedlink.NewFromConfig(signedlink.Config{
			Secret:  "config-secret",
			BaseURL: "/media",
			TTL:     15 * time.Minute,
		}, signedlink.WithClock(fixedClock(now)))
		require.NoError(t, err)

		link, err := signer.Issue("track_001")
		require.NoError(t, err)

		u, err := url.Parse(link)
		require.NoError(t, err)
		assert.Equal(t, "/media", u.Path)

		expiresAt, err := strconv.ParseInt(u.Query().Get("timestamp"), 10, 64)
		require.NoError(t, err)
		assert.Equal(t, now.Add(15*time.Minute).Unix(), expiresAt)
	})

	t.Run("zero values fall back to defaults", func(t *testing.T) {
		t.Parallel()

		signer, err := signedlink.NewFromConfig(signedlink.Config{Secret: "config-secret"})
		require.NoError(t, err)

		link, err := signer.Issue("track_001")
		require.NoError(t, err)

		u, err := url.Parse(link)
		require.NoError(t, err)
		assert.Equal(t, signedlink.DefaultBaseURL, u.Path)
	})

	t.Run("explicit options win over config", func(t *testing.T) {
		t.Parallel()

		signer, err := signedlink.NewFromConfig(signedlink.Config{
			Secret:  "config-secret",
			BaseURL: "/media",
		}, signedlink.WithBaseURL("/archive"))
		require.NoError(t, err)

		link, err := signer.Issue("track_001")
		require.NoError(t, err)

		u, err := url.Parse(link)
		require.NoError(t, err)
		assert.Equal(t, "/archive", u.Path)
	})
}

func TestLoadConfig(t *testing.T) {
	t.Setenv("SIGNED_LINK_SECRET", "env-secret")
	t.Setenv("SIGNED_LINK_BASE_URL", "https://cdn.example.com/files")
	t.Setenv("SIGNED_LINK_TTL", "30m")

	cfg, err := signedlink.LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "env-secret", cfg.Secret)
	assert.Equal(t, "https://cdn.example.com/files", cfg.BaseURL)
	assert.Equal(t, 30*time.Minute, cfg.TTL)

	signer, err := signedlink.NewFromConfig(cfg)
	require.NoError(t, err)

	link, err := signer.Issue("track_001")
	require.NoError(t, err)

	_, err = signer.Verify(link)
	assert.NoError(t, err)
}

func TestLoadConfig_Defaults(t *testing.T) {
	// Unset environment variables to ensure test clarity
	os.Unsetenv("SIGNED_LINK_SECRET")
	os.Unsetenv("SIGNED_LINK_BASE_URL")
	os.Unsetenv("SIGNED_LINK_TTL")

	cfg, err := signedlink.LoadConfig()
	require.NoError(t, err)

	assert.Empty(t, cfg.Secret)
	assert.Equal(t, signedlink.DefaultBaseURL, cfg.BaseURL)
	assert.Equal(t, signedlink.DefaultTTL, cfg.TTL)
}
