// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package schema2

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/draftport/pkg/types"
)

func testProject() *types.Project {
	return &types.Project{
		Title: "My Great Novel",
		Folders: []types.Folder{
			{ID: "f3", Title: "Trashed Part", DocumentIDs: []string{"d5"}, Sort: 2},
			{ID: "f1", Title: "Part One", DocumentIDs: []string{"d10", "d2", "d1"}, Sort: 1},
			{ID: "f2", Title: "Part Two", DocumentIDs: []string{"d4"}, Sort: 3},
		},
		DocumentsByID: map[string]types.Document{
			"d1":  {ID: "d1", Title: "Chapter 1.md", Content: "<p>Hello world</p>", Summary: "the opening"},
			"d2":  {ID: "d2", Title: "Chapter 2", Content: "<p><b>Bold</b> move</p>"},
			"d10": {ID: "d10", Title: "Chapter 10", Content: "<h1>Finale</h1>", Status: types.StatusActive},
			"d4":  {ID: "d4", Title: "Notes", Content: ""},
			"d5":  {ID: "d5", Title: "Gone", Content: "<p>gone</p>"},
		},
		Trash: types.Trash{FolderIDs: []string{"f3"}},
	}
}

func TestBuild(t *testing.T) {
	out, stats, err := Build(testProject())
	require.NoError(t, err)

	assert.Equal(t, "My_Great_Novel", out.Title)
	assert.Equal(t, types.StatusDraft, out.Status)
	require.NotNil(t, out.NumberOfChapters)
	assert.Equal(t, 4, *out.NumberOfChapters)
	assert.Nil(t, out.Author)
	assert.Nil(t, out.Genre)

	require.Len(t, out.Folders, 2)
	assert.Equal(t, 2, stats.Folders)
	assert.Equal(t, 4, stats.Documents)
}

func TestBuildFolderOrderContiguous(t *testing.T) {
	out, _, err := Build(testProject())
	require.NoError(t, err)

	// f3 (sort 2) is trashed; indices stay contiguous across the gap.
	require.Len(t, out.Folders, 2)
	assert.Equal(t, "part-one", out.Folders[0].Name)
	assert.Equal(t, 0, out.Folders[0].Order)
	assert.Equal(t, "part-two", out.Folders[1].Name)
	assert.Equal(t, 1, out.Folders[1].Order)

	for _, f := range out.Folders {
		assert.Equal(t, types.ManuscriptType, f.Type)
		assert.False(t, f.IsDefault)
		assert.Nil(t, f.Description)
		assert.Nil(t, f.ParentID)
	}
}

func TestBuildDocumentsNaturalOrder(t *testing.T) {
	out, _, err := Build(testProject())
	require.NoError(t, err)

	docs := out.Folders[0].Documents
	require.Len(t, docs, 3)

	titles := []string{docs[0].Title, docs[1].Title, docs[2].Title}
	assert.Equal(t, []string{"Chapter 1", "Chapter 2", "Chapter 10"}, titles)
	for i, d := range docs {
		assert.Equal(t, i, d.Order)
	}
}

func TestBuildDocumentFields(t *testing.T) {
	out, _, err := Build(testProject())
	require.NoError(t, err)

	docs := out.Folders[0].Documents
	require.Len(t, docs, 3)

	// d1: ".md" suffix stripped once, active status remapped to draft,
	// synopsis carried from summary.
	ch1 := docs[0]
	assert.Equal(t, "Chapter 1", ch1.Title)
	assert.Equal(t, types.StatusDraft, ch1.Status)
	require.NotNil(t, ch1.Synopsis)
	assert.Equal(t, "the opening", *ch1.Synopsis)
	assert.Equal(t, 2, ch1.WordCount)
	assert.Equal(t, types.ManuscriptType, ch1.Type)
	assert.Nil(t, ch1.Notes)
	assert.Nil(t, ch1.Keywords)
	assert.Nil(t, ch1.TargetWordCount)

	// d2: no summary means null synopsis.
	assert.Nil(t, docs[1].Synopsis)

	// d10: an explicit active status is remapped the same as an absent one.
	assert.Equal(t, types.StatusDraft, docs[2].Status)
}

func TestBuildContentIsSerializedBlocks(t *testing.T) {
	out, _, err := Build(testProject())
	require.NoError(t, err)

	ch1 := out.Folders[0].Documents[0]
	var blocks []types.Block
	require.NoError(t, json.Unmarshal([]byte(ch1.Content), &blocks))
	require.Len(t, blocks, 1)
	assert.Equal(t, types.BlockParagraph, blocks[0].Type)
	require.Len(t, blocks[0].Content, 1)
	assert.Equal(t, "Hello world", blocks[0].Content[0].Text)
}

func TestBuildEmptyDocumentContent(t *testing.T) {
	out, _, err := Build(testProject())
	require.NoError(t, err)

	notes := out.Folders[1].Documents[0]
	assert.Equal(t, "Notes", notes.Title)
	assert.Equal(t, "[]", notes.Content)
	assert.Zero(t, notes.WordCount)
}

func TestBuildEmptyProject(t *testing.T) {
	out, stats, err := Build(&types.Project{Title: "Empty One"})
	require.NoError(t, err)

	assert.Equal(t, "Empty_One", out.Title)
	assert.Nil(t, out.NumberOfChapters)
	assert.NotNil(t, out.Folders)
	assert.Empty(t, out.Folders)
	assert.Zero(t, stats.Documents)
}

func TestBuildJSONNulls(t *testing.T) {
	out, _, err := Build(testProject())
	require.NoError(t, err)

	data, err := json.Marshal(out)
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))

	// Null-able keys are present and null, not omitted.
	for _, key := range []string{"author", "author_pen_name", "description", "genre", "story_hook", "story_pitch"} {
		v, ok := raw[key]
		require.True(t, ok, "key %s missing", key)
		assert.Nil(t, v, "key %s", key)
	}
	assert.Equal(t, float64(4), raw["number_of_chapters"])
}

func TestBuildWordStats(t *testing.T) {
	_, stats, err := Build(testProject())
	require.NoError(t, err)

	// "Hello world" (2) + "Bold move" (2) + "Finale" (1) + empty (0).
	assert.Equal(t, 5, stats.Words)
}
