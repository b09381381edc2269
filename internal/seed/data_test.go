package seed

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTestData(t *testing.T) {
	data, err := TestData()
	require.NoError(t, err)

	assert.Len(t, data.Topics, 3)
	assert.Len(t, data.Users, 4)
	assert.Len(t, data.Articles, 12)
	assert.Len(t, data.Comments, 18)

	first := data.Articles[0]
	assert.Equal(t, "Living in the shadow of a great man", first.Title)
	assert.Equal(t, 100, first.Votes)
	assert.Equal(t, time.Date(2020, 7, 9, 20, 11, 0, 0, time.UTC), first.CreatedAt.UTC())

	counts := map[int]int{}
	for _, c := range data.Comments {
		require.GreaterOrEqual(t, c.ArticleID, 1)
		require.LessOrEqual(t, c.ArticleID, len(data.Articles))
		counts[c.ArticleID]++
	}
	assert.Equal(t, 11, counts[1])
	assert.Equal(t, 2, counts[3])
	assert.Zero(t, counts[2])
}

func TestLoadDir(t *testing.T) {
	dir := t.TempDir()
	files := map[string]string{
		"topics.json":   `[{"slug":"coding","description":"Code is love"}]`,
		"users.json":    `[{"username":"jessjelly","avatar_url":"https://example.com/j.png","name":"Jess"}]`,
		"articles.json": `[{"title":"Running a Node App","topic":"coding","author":"jessjelly","body":"b","created_at":"2020-11-07T06:03:00Z","votes":0}]`,
		"comments.json": `[]`,
	}
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600))
	}

	data, err := LoadDir(dir)
	require.NoError(t, err)
	assert.Equal(t, "coding", data.Topics[0].Slug)
	assert.Equal(t, "Jess", data.Users[0].Name)
	assert.Equal(t, "Running a Node App", data.Articles[0].Title)
	assert.Empty(t, data.Comments)
}

func TestLoadDir_MissingFile(t *testing.T) {
	_, err := LoadDir(t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "topics.json")
}
