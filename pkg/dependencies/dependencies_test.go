//go:build unit

package dependencies

import (
	"errors"
	"testing"

	"github.com/lerenn/dependency-analyzer/pkg/archive"
	archivemocks "github.com/lerenn/dependency-analyzer/pkg/archive/mocks"
	"github.com/lerenn/dependency-analyzer/pkg/classfile"
	classfilemocks "github.com/lerenn/dependency-analyzer/pkg/classfile/mocks"
	"github.com/lerenn/dependency-analyzer/pkg/classname"
	configmocks "github.com/lerenn/dependency-analyzer/pkg/config/mocks"
	fsmocks "github.com/lerenn/dependency-analyzer/pkg/fs/mocks"
	outputmocks "github.com/lerenn/dependency-analyzer/pkg/output/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func complete(ctrl *gomock.Controller) *Dependencies {
	return New().
		WithConfig(configmocks.NewMockManager(ctrl)).
		WithIndexer(archivemocks.NewMockIndexer(ctrl)).
		WithExtractor(outputmocks.NewMockExtractor(ctrl))
}

func TestDependencies_New_Defaults(t *testing.T) {
	deps := New()

	assert.NotNil(t, deps.FS)
	assert.NotNil(t, deps.Logger)
	assert.NotNil(t, deps.ClassReader)

	// Configurable dependencies are nil by default
	assert.Nil(t, deps.Config)
	assert.Nil(t, deps.Indexer)
	assert.Nil(t, deps.Extractor)

	assert.ErrorIs(t, deps.Validate(), ErrConfigMissing)
}

func TestDependencies_Validate(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(d *Dependencies)
		expected error
	}{
		{name: "Complete", mutate: func(_ *Dependencies) {}},
		{name: "FS missing", mutate: func(d *Dependencies) { d.FS = nil }, expected: ErrFSMissing},
		{name: "Config missing", mutate: func(d *Dependencies) { d.Config = nil }, expected: ErrConfigMissing},
		{name: "Logger missing", mutate: func(d *Dependencies) { d.Logger = nil }, expected: ErrLoggerMissing},
		{name: "Class reader missing", mutate: func(d *Dependencies) { d.ClassReader = nil }, expected: ErrClassReaderMissing},
		{name: "Indexer missing", mutate: func(d *Dependencies) { d.Indexer = nil }, expected: ErrIndexerMissing},
		{name: "Extractor missing", mutate: func(d *Dependencies) { d.Extractor = nil }, expected: ErrExtractorMissing},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			deps := complete(ctrl)
			tt.mutate(deps)

			err := deps.Validate()
			if tt.expected == nil {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.expected)
		})
	}
}

// Validation stops at the first missing dependency
func TestDependencies_ValidationOrder(t *testing.T) {
	deps := &Dependencies{}

	err := deps.Validate()
	assert.ErrorIs(t, err, ErrFSMissing)
	assert.NotErrorIs(t, err, ErrConfigMissing)
	assert.Equal(t, "fs dependency is required but not set", err.Error())
}

func TestDependencies_WithComponents_UsesContainerReader(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	data := []byte{0xCA, 0xFE, 0xBA, 0xBE}
	mockFS := fsmocks.NewMockFS(ctrl)
	mockFS.EXPECT().Exists("/out/App.class").Return(true, nil)
	mockFS.EXPECT().IsDir("/out/App.class").Return(false, nil)
	mockFS.EXPECT().ReadFile("/out/App.class").Return(data, nil)
	mockFS.EXPECT().Stat("/repo/lib.jar").Return(nil, errors.New("no such file"))

	reader := classfilemocks.NewMockReader(ctrl)
	reader.EXPECT().Parse(data).Return(&classfile.ClassFile{
		Name:       "com.app.App",
		References: classname.NewSet("com.replaced.Ref"),
	}, nil)

	deps := New().
		WithFS(mockFS).
		WithConfig(configmocks.NewMockManager(ctrl)).
		WithClassReader(reader).
		WithComponents(ComponentParams{})
	require.NoError(t, deps.Validate())

	used, err := deps.Extractor.ExtractUsedClasses([]string{"/out/App.class"})
	require.NoError(t, err)
	assert.Equal(t, []string{"com.replaced.Ref"}, used.Sorted())

	// The indexer reads through the container FS too
	_, err = deps.Indexer.IndexArtifact("/repo/lib.jar")
	assert.ErrorIs(t, err, archive.ErrArchiveRead)
}
