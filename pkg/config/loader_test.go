package config_test

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/notifykit/pkg/config"
)

type notifyConfig struct {
	Language   string `env:"TEST_NOTIFY_LANG" envDefault:"en"`
	LocalesDir string `env:"TEST_NOTIFY_LOCALES_DIR"`
	Strict     bool   `env:"TEST_NOTIFY_STRICT" envDefault:"true"`
}

type singletonConfig struct {
	Value string `env:"TEST_SINGLETON_VALUE" envDefault:"first"`
}

type requiredConfig struct {
	Required string `env:"TEST_REQUIRED_VALUE,required"`
}

type fileConfig struct {
	Lang   string   `env:"TEST_FILE_LANG"`
	Count  int      `env:"TEST_FILE_COUNT"`
	Tags   []string `env:"TEST_FILE_TAGS" envSeparator:","`
	Quoted string   `env:"TEST_FILE_QUOTED"`
}

func writeEnv(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	config.ResetCache()
	t.Setenv("TEST_NOTIFY_LANG", "pt-BR")
	t.Setenv("TEST_NOTIFY_STRICT", "false")

	var cfg notifyConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "pt-BR", cfg.Language)
	assert.Empty(t, cfg.LocalesDir)
	assert.False(t, cfg.Strict)
}

func TestLoad_Defaults(t *testing.T) {
	config.ResetCache()
	os.Unsetenv("TEST_NOTIFY_LANG")
	os.Unsetenv("TEST_NOTIFY_STRICT")

	var cfg notifyConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "en", cfg.Language)
	assert.True(t, cfg.Strict)
}

func TestLoad_CachedPerType(t *testing.T) {
	config.ResetCache()
	t.Setenv("TEST_SINGLETON_VALUE", "first")

	var first singletonConfig
	require.NoError(t, config.Load(&first))

	t.Setenv("TEST_SINGLETON_VALUE", "second")
	var cached singletonConfig
	require.NoError(t, config.Load(&cached))
	assert.Equal(t, "first", cached.Value, "cached copy is returned")

	var reloaded singletonConfig
	require.NoError(t, config.ForceReload(&reloaded))
	assert.Equal(t, "second", reloaded.Value)

	var afterReload singletonConfig
	require.NoError(t, config.Load(&afterReload))
	assert.Equal(t, "second", afterReload.Value)
}

func TestLoad_Concurrent(t *testing.T) {
	config.ResetCache()
	t.Setenv("TEST_SINGLETON_VALUE", "shared")

	var wg sync.WaitGroup
	for range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			var cfg singletonConfig
			assert.NoError(t, config.Load(&cfg))
			assert.Equal(t, "shared", cfg.Value)
		}()
	}
	wg.Wait()
}

func TestLoad_MissingRequired(t *testing.T) {
	config.ResetCache()
	os.Unsetenv("TEST_REQUIRED_VALUE")

	var cfg requiredConfig
	err := config.Load(&cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrParsingConfig)
	assert.Panics(t, func() { config.MustLoad(&requiredConfig{}) })
}

func TestLoad_NilPointer(t *testing.T) {
	var cfg *notifyConfig
	assert.ErrorIs(t, config.Load(cfg), config.ErrNilPointer)
	assert.ErrorIs(t, config.ForceReload(cfg), config.ErrNilPointer)
}

func TestLoadEnv(t *testing.T) {
	config.ResetCache()
	for _, k := range []string{"TEST_FILE_LANG", "TEST_FILE_COUNT", "TEST_FILE_TAGS", "TEST_FILE_QUOTED"} {
		os.Unsetenv(k)
		t.Cleanup(func() { os.Unsetenv(k) })
	}

	first := writeEnv(t, "TEST_FILE_LANG=pt-BR\nTEST_FILE_COUNT=3\nTEST_FILE_TAGS=a,b,c\nTEST_FILE_QUOTED=\"quoted value\"\n")
	second := writeEnv(t, "TEST_FILE_LANG=en\n")

	require.NoError(t, config.LoadEnv(first, second))

	var cfg fileConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "pt-BR", cfg.Lang, "first file wins")
	assert.Equal(t, 3, cfg.Count)
	assert.Equal(t, []string{"a", "b", "c"}, cfg.Tags)
	assert.Equal(t, "quoted value", cfg.Quoted)
}

func TestLoadEnv_ProcessEnvWins(t *testing.T) {
	t.Setenv("TEST_FILE_LANG", "es")
	path := writeEnv(t, "TEST_FILE_LANG=pt-BR\n")

	require.NoError(t, config.LoadEnv(path))
	assert.Equal(t, "es", os.Getenv("TEST_FILE_LANG"))
}

func TestLoadEnv_MissingFile(t *testing.T) {
	err := config.LoadEnv(filepath.Join(t.TempDir(), "missing.env"))
	assert.ErrorIs(t, err, config.ErrLoadingEnvFile)
	assert.Panics(t, func() { config.MustLoadEnv(filepath.Join(t.TempDir(), "missing.env")) })
}
