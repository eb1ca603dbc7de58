package config

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	s, err := Load()
	require.NoError(t, err)

	assert.Equal(t, StoreTypeSQLite, s.Store.Type)
	assert.Equal(t, "", s.Store.Path)
	assert.Equal(t, LogLevelWarning, s.Logger.LogLevel)
	assert.Equal(t, LogTypeConsole, s.Logger.LogType)
	assert.Equal(t, ThemeClassic, s.Theme)
	require.NoError(t, s.Validate())
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("SHOPLIST_STORE_TYPE", "json")
	t.Setenv("SHOPLIST_STORE_PATH", "/tmp/list.json")
	t.Setenv("SHOPLIST_LOG_LEVEL", "debug")
	t.Setenv("SHOPLIST_THEME", "neon")

	s, err := Load()
	require.NoError(t, err)

	assert.Equal(t, StoreTypeJSON, s.Store.Type)
	assert.Equal(t, "/tmp/list.json", s.Store.Path)
	assert.Equal(t, LogLevelDebug, s.Logger.LogLevel)
	assert.Equal(t, ThemeNeon, s.Theme)
}

func TestSettingsValidation(t *testing.T) {
	valid := func() *Settings {
		return &Settings{
			Store:  StoreSettings{Type: StoreTypeSQLite},
			Logger: LoggerSettings{LogLevel: LogLevelInfo, LogType: LogTypeConsole},
			Theme:  ThemeClassic,
		}
	}

	tests := []struct {
		name          string
		mutate        func(s *Settings)
		expectedError bool
	}{
		{name: "valid settings", mutate: func(*Settings) {}},
		{name: "unknown store type", mutate: func(s *Settings) { s.Store.Type = "indexeddb" }, expectedError: true},
		{name: "missing store type", mutate: func(s *Settings) { s.Store.Type = "" }, expectedError: true},
		{name: "unknown theme", mutate: func(s *Settings) { s.Theme = "solarized" }, expectedError: true},
		{name: "unknown log level", mutate: func(s *Settings) { s.Logger.LogLevel = "trace" }, expectedError: true},
		{name: "unknown log type", mutate: func(s *Settings) { s.Logger.LogType = "syslog" }, expectedError: true},
		{
			name: "file logger without path",
			mutate: func(s *Settings) {
				s.Logger.LogType = LogTypeFile
				s.Logger.MaxSize, s.Logger.MaxBackups, s.Logger.MaxAge = 10, 3, 28
			},
			expectedError: true,
		},
		{
			name: "file logger with rotation",
			mutate: func(s *Settings) {
				s.Logger.LogType = LogTypeFile
				s.Logger.FilePath = "/tmp/shoplist.log"
				s.Logger.MaxSize, s.Logger.MaxBackups, s.Logger.MaxAge = 10, 3, 28
			},
		},
		{
			name: "file logger rotation out of range",
			mutate: func(s *Settings) {
				s.Logger.LogType = LogTypeFile
				s.Logger.FilePath = "/tmp/shoplist.log"
				s.Logger.MaxSize, s.Logger.MaxBackups, s.Logger.MaxAge = 500, 3, 28
			},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := valid()
			tt.mutate(s)
			err := s.Validate()
			if tt.expectedError {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestStoreSettings_ResolvePath(t *testing.T) {
	s := StoreSettings{Type: StoreTypeSQLite, Path: "/data/list.sqlite"}
	p, err := s.ResolvePath()
	require.NoError(t, err)
	assert.Equal(t, "/data/list.sqlite", p)

	s = StoreSettings{Type: StoreTypeSQLite}
	p, err = s.ResolvePath()
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(p))
	assert.Equal(t, DatabaseName+".sqlite", filepath.Base(p))

	s = StoreSettings{Type: StoreTypeJSON}
	p, err = s.ResolvePath()
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(p, DatabaseName+".json"))
}
