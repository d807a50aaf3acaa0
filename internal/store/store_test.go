package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evict-bt/evict/internal/codec"
	"github.com/evict-bt/evict/internal/types"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	s := New(filepath.Join(t.TempDir(), DirName))
	require.NoError(t, s.Init())
	return s
}

func TestUninitializedStore(t *testing.T) {
	s := New(filepath.Join(t.TempDir(), DirName))

	assert.False(t, s.Exists())
	_, err := s.ReadAll()
	assert.ErrorIs(t, err, ErrNotInitialized)
	err = s.WriteAll(nil)
	assert.ErrorIs(t, err, ErrNotInitialized)
}

func TestInitCreatesEmptyCollection(t *testing.T) {
	s := testStore(t)

	assert.True(t, s.Exists())
	trees, err := s.ReadAll()
	require.NoError(t, err)
	assert.Empty(t, trees)

	// Init again must not clobber anything.
	require.NoError(t, s.SaveIssues([]*types.Issue{types.NewIssue("keep", "", "a", "main")}))
	require.NoError(t, s.Init())
	issues, err := s.LoadIssues()
	require.NoError(t, err)
	require.Len(t, issues, 1)
	assert.Equal(t, "keep", issues[0].Title)
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	s := testStore(t)

	first := types.NewIssue("first", "body", "author", "main")
	first.AddComment(types.NewComment("author", "hello", "main"))
	second := types.NewIssue("second", "", "author", "dev")
	second.AddTag(types.NewTag("urgent", "author", true))

	require.NoError(t, s.SaveIssues([]*types.Issue{first, second}))

	loaded, err := s.LoadIssues()
	require.NoError(t, err)
	require.Len(t, loaded, 2)
	assert.True(t, loaded[0].Equals(first))
	assert.True(t, loaded[1].Equals(second))
	require.Len(t, loaded[0].Events, 1)
	assert.Equal(t, []string{"urgent"}, loaded[1].AllTags())
}

func TestLoadSkipsUndecodableTrees(t *testing.T) {
	s := testStore(t)

	good := codec.EncodeIssue(types.NewIssue("good", "", "author", "main"))
	noVersion := codec.EncodeIssue(types.NewIssue("bad", "", "author", "main"))
	delete(noVersion, codec.VersionKey)
	futureVersion := codec.EncodeIssue(types.NewIssue("future", "", "author", "main"))
	futureVersion[codec.VersionKey] = "99"

	require.NoError(t, s.WriteAll([]map[string]any{noVersion, good, futureVersion}))

	issues, err := s.LoadIssues()
	require.NoError(t, err)
	require.Len(t, issues, 1)
	assert.Equal(t, "good", issues[0].Title)
}

func TestWriteAllLeavesNoTempFiles(t *testing.T) {
	s := testStore(t)
	require.NoError(t, s.SaveIssues([]*types.Issue{types.NewIssue("a", "", "b", "main")}))

	entries, err := os.ReadDir(s.Dir())
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, FileName, entries[0].Name())
}

func TestEmptyCollectionFileLoadsAsEmpty(t *testing.T) {
	s := testStore(t)
	require.NoError(t, os.WriteFile(filepath.Join(s.Dir(), FileName), nil, 0600))

	issues, err := s.LoadIssues()
	require.NoError(t, err)
	assert.Empty(t, issues)
}
