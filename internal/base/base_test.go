//go:build unit

package base

import (
	"testing"

	fsmocks "github.com/lerenn/dependency-analyzer/pkg/fs/mocks"
	loggermocks "github.com/lerenn/dependency-analyzer/pkg/logger/mocks"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestBase_VerbosePrint(t *testing.T) {
	tests := []struct {
		name    string
		verbose bool
		calls   int
	}{
		{name: "Enabled", verbose: true, calls: 1},
		{name: "Disabled", verbose: false, calls: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockLogger := loggermocks.NewMockLogger(ctrl)
			base := NewBase(NewBaseParams{
				FS:      fsmocks.NewMockFS(ctrl),
				Logger:  mockLogger,
				Verbose: tt.verbose,
			})

			mockLogger.EXPECT().Logf("Indexing %s", "libs/a.jar").Times(tt.calls)

			base.VerbosePrint("Indexing %s", "libs/a.jar")
		})
	}
}

func TestNewBase_DefaultLogger(t *testing.T) {
	base := NewBase(NewBaseParams{Verbose: true})

	assert.NotNil(t, base.Logger)
	base.VerbosePrint("no panic with %d args", 1)
}
