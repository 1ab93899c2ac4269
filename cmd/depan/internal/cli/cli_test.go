//go:build unit

package cli

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/lerenn/dependency-analyzer/pkg/fs/mocks"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestGetConfigPath(t *testing.T) {
	tests := []struct {
		name       string
		configPath string
		setup      func(m *mocks.MockFS)
		expected   string
	}{
		{
			name:       "Flag",
			configPath: "/etc/depan.yaml",
			setup:      func(_ *mocks.MockFS) {},
			expected:   "/etc/depan.yaml",
		},
		{
			name: "Home directory",
			setup: func(m *mocks.MockFS) {
				m.EXPECT().GetHomeDir().Return("/home/dev", nil).Times(2)
			},
			expected: filepath.Join("/home/dev", ".depan", "config.yaml"),
		},
		{
			name: "No home directory",
			setup: func(m *mocks.MockFS) {
				m.EXPECT().GetHomeDir().Return("", errors.New("$HOME is not defined")).Times(2)
			},
			expected: filepath.Join(".", ".depan", "config.yaml"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			original := ConfigPath
			defer func() { ConfigPath = original }()
			ConfigPath = tt.configPath

			mockFS := mocks.NewMockFS(ctrl)
			tt.setup(mockFS)

			assert.Equal(t, tt.expected, GetConfigPath(mockFS))
			assert.Equal(t, tt.expected, NewConfigManager(mockFS).GetConfigPath())
		})
	}
}

func TestNewLogger_Quiet(t *testing.T) {
	original := Quiet
	defer func() { Quiet = original }()

	Quiet = true
	assert.NotNil(t, NewLogger())
	Quiet = false
	assert.NotNil(t, NewLogger())
}
