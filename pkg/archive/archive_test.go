//go:build integration

package archive

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/lerenn/dependency-analyzer/pkg/classfile"
	"github.com/lerenn/dependency-analyzer/pkg/classfile/classfiletest"
	classfilemocks "github.com/lerenn/dependency-analyzer/pkg/classfile/mocks"
	"github.com/lerenn/dependency-analyzer/pkg/filter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func writeJar(t *testing.T, path string, entries ...classfiletest.Entry) {
	t.Helper()

	data, err := classfiletest.Jar(entries...)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data, 0644))
}

func class(name string) classfiletest.Entry {
	return classfiletest.ClassEntry(name, classfiletest.New(name, "java/lang/Object"))
}

func TestIndexer_IndexArtifact(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lib-1.0.jar")
	writeJar(t, path,
		classfiletest.Entry{Name: "META-INF/MANIFEST.MF", Data: []byte("Manifest-Version: 1.0\n")},
		classfiletest.Entry{Name: "com/"},
		classfiletest.Entry{Name: "com/x/"},
		class("com/x/A"),
		class("com/x/B$Inner"),
		classfiletest.ClassEntry("module-info",
			classfiletest.New("module-info", "").Access(classfile.AccModule).Version(53)),
		classfiletest.Entry{Name: "com/x/Broken.class", Data: []byte("not a class")},
		// Entry names are trusted over paths: the class declares its own name.
		classfiletest.Entry{Name: "misplaced/C.class", Data: classfiletest.New("com/x/C", "java/lang/Object").Bytes()},
		classfiletest.Entry{Name: "com/x/readme.txt", Data: []byte("hello")},
	)

	classes, err := NewIndexer(NewIndexerParams{}).IndexArtifact(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"com.x.A", "com.x.B$Inner", "com.x.C"}, classes.Sorted())
}

func TestIndexer_IndexArtifact_Filter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "multi-release.jar")
	writeJar(t, path,
		class("com/x/A"),
		classfiletest.ClassEntry("META-INF/versions/11/com/x/A11",
			classfiletest.New("com/x/A11", "java/lang/Object")),
		class("com/x/ATest"),
	)

	indexer := NewIndexer(NewIndexerParams{
		Filter: filter.New([]string{"META-INF/versions/", "*Test.class"}),
	})

	classes, err := indexer.IndexArtifact(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"com.x.A"}, classes.Sorted())
}

func TestIndexer_IndexArtifact_Errors(t *testing.T) {
	dir := t.TempDir()
	notZip := filepath.Join(dir, "corrupt.jar")
	require.NoError(t, os.WriteFile(notZip, []byte("definitely not a zip"), 0644))

	tests := []struct {
		name string
		path string
	}{
		{name: "Missing archive", path: filepath.Join(dir, "missing.jar")},
		{name: "Not a zip", path: notZip},
		{name: "Directory", path: dir},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewIndexer(NewIndexerParams{}).IndexArtifact(tt.path)
			assert.ErrorIs(t, err, ErrArchiveRead)
		})
	}
}

func TestIndexer_IndexArtifact_Cache(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	path := filepath.Join(t.TempDir(), "lib.jar")
	writeJar(t, path, class("com/x/A"))

	parser := classfile.NewReader()
	reader := classfilemocks.NewMockReader(ctrl)
	reader.EXPECT().ReadDeclaration(gomock.Any()).DoAndReturn(parser.ReadDeclaration).Times(1)

	indexer := NewIndexer(NewIndexerParams{Reader: reader, CacheSize: 4})

	first, err := indexer.IndexArtifact(path)
	require.NoError(t, err)
	second, err := indexer.IndexArtifact(path)
	require.NoError(t, err)
	assert.True(t, first.Equal(second))

	// Callers own the returned set
	first.Add("com.x.Mutated")
	third, err := indexer.IndexArtifact(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"com.x.A"}, third.Sorted())

	// A rewritten archive is indexed again
	writeJar(t, path, class("com/x/A"), class("com/x/B"))
	reader.EXPECT().ReadDeclaration(gomock.Any()).DoAndReturn(parser.ReadDeclaration).Times(2)

	fourth, err := indexer.IndexArtifact(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"com.x.A", "com.x.B"}, fourth.Sorted())
}

func TestIndexer_IndexArtifact_NoCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	path := filepath.Join(t.TempDir(), "lib.jar")
	writeJar(t, path, class("com/x/A"))

	parser := classfile.NewReader()
	reader := classfilemocks.NewMockReader(ctrl)
	reader.EXPECT().ReadDeclaration(gomock.Any()).DoAndReturn(parser.ReadDeclaration).Times(2)

	indexer := NewIndexer(NewIndexerParams{Reader: reader})
	for range 2 {
		_, err := indexer.IndexArtifact(path)
		require.NoError(t, err)
	}
}
