// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package archive

import (
	"archive/zip"
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/draftport/pkg/types"
)

func testProject() *types.Project {
	return &types.Project{
		Title: "Test Project",
		Folders: []types.Folder{
			{ID: "f2", Title: "Later Part", DocumentIDs: []string{"d3"}, Sort: 2},
			{ID: "f1", Title: "First Part", DocumentIDs: []string{"d2", "d1"}, Sort: 1},
		},
		DocumentsByID: map[string]types.Document{
			"d1": {ID: "d1", Title: "Scene One", Content: "<p>Hello <strong>world</strong></p>"},
			"d2": {ID: "d2", Title: "Scene Two.md", Content: "<p>Second</p>"},
			"d3": {ID: "d3", Title: "Epilogue", Content: "<h1>End</h1>"},
		},
	}
}

func TestEntries(t *testing.T) {
	entries, stats := Entries(testProject())
	require.Len(t, entries, 3)

	// Folders in sort-key order, documents in source reference order.
	assert.Equal(t, "first-part/Scene_Two.md", entries[0].Path)
	assert.Equal(t, "first-part/Scene_One.md", entries[1].Path)
	assert.Equal(t, "later-part/Epilogue.md", entries[2].Path)

	assert.Equal(t, "Second", entries[0].Content)
	assert.Equal(t, "Hello **world**", entries[1].Content)
	assert.Equal(t, "# End", entries[2].Content)

	assert.Equal(t, 2, stats.Folders)
	assert.Equal(t, 3, stats.Documents)
}

func TestEntriesSkipCounts(t *testing.T) {
	p := testProject()
	p.Trash.DocumentIDs = []string{"d1"}
	p.Folders[1].DocumentIDs = append(p.Folders[1].DocumentIDs, "ghost")

	entries, stats := Entries(p)
	require.Len(t, entries, 2)
	assert.Equal(t, 1, stats.SkippedTrashed)
	assert.Equal(t, 1, stats.SkippedMissing)
}

func TestWriteZip(t *testing.T) {
	entries, _ := Entries(testProject())

	var buf bytes.Buffer
	require.NoError(t, WriteZip(&buf, entries))

	zr, err := zip.NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	require.NoError(t, err)

	names := make([]string, 0, len(zr.File))
	contents := map[string]string{}
	for _, f := range zr.File {
		names = append(names, f.Name)
		if f.FileInfo().IsDir() {
			continue
		}
		rc, err := f.Open()
		require.NoError(t, err)
		data, err := io.ReadAll(rc)
		require.NoError(t, err)
		require.NoError(t, rc.Close())
		contents[f.Name] = string(data)
	}

	// One directory entry per folder, ahead of its files.
	assert.Equal(t, []string{
		"first-part/",
		"first-part/Scene_Two.md",
		"first-part/Scene_One.md",
		"later-part/",
		"later-part/Epilogue.md",
	}, names)
	assert.Equal(t, "Hello **world**", contents["first-part/Scene_One.md"])
}

func TestWriteZipEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteZip(&buf, nil))

	zr, err := zip.NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	require.NoError(t, err)
	assert.Empty(t, zr.File)
}

func TestConvert(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.zip")

	var progress bytes.Buffer
	stats, err := Convert(testProject(), path, &progress)
	require.NoError(t, err)

	assert.Equal(t, 2, stats.Folders)
	assert.Equal(t, 3, stats.Documents)
	assert.Contains(t, progress.String(), "added: first-part/Scene_One.md")

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size())

	zr, err := zip.OpenReader(path)
	require.NoError(t, err)
	defer zr.Close()
	assert.Len(t, zr.File, 5)
}

func TestConvertBadPath(t *testing.T) {
	_, err := Convert(testProject(), filepath.Join(t.TempDir(), "missing", "out.zip"), io.Discard)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "creating archive")
}
