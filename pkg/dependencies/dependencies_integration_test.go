//go:build integration

package dependencies

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/lerenn/dependency-analyzer/pkg/classfile"
	"github.com/lerenn/dependency-analyzer/pkg/classfile/classfiletest"
	"github.com/lerenn/dependency-analyzer/pkg/classfile/mocks"
	"github.com/lerenn/dependency-analyzer/pkg/filter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestDependencies_WithComponents_IndexerUsesContainerReader(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	path := filepath.Join(t.TempDir(), "lib-1.0.jar")
	data, err := classfiletest.Jar(
		classfiletest.ClassEntry("com/x/A", classfiletest.New("com/x/A", "java/lang/Object")),
		classfiletest.ClassEntry("com/x/gen/Skipped", classfiletest.New("com/x/gen/Skipped", "java/lang/Object")),
	)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data, 0644))

	reader := mocks.NewMockReader(ctrl)
	reader.EXPECT().ReadDeclaration(gomock.Any()).Return(&classfile.ClassFile{Name: "com.replaced.A"}, nil)

	deps := New().
		WithClassReader(reader).
		WithComponents(ComponentParams{Filter: filter.New([]string{"com/x/gen/"})})

	classes, err := deps.Indexer.IndexArtifact(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"com.replaced.A"}, classes.Sorted())
}
