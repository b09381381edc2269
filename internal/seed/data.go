package seed

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/phrazzld/news-api/internal/domain"
)

//go:embed data/test/*.json
var testDataFS embed.FS

// ArticleRecord is an article as written in a fixture file.
type ArticleRecord struct {
	Title     string    `json:"title"`
	Topic     string    `json:"topic"`
	Author    string    `json:"author"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
	Votes     int       `json:"votes"`
}

// CommentRecord is a comment as written in a fixture file. ArticleID refers
// to the article's position in the dataset, starting at 1.
type CommentRecord struct {
	Body      string    `json:"body"`
	Votes     int       `json:"votes"`
	Author    string    `json:"author"`
	ArticleID int       `json:"article_id"`
	CreatedAt time.Time `json:"created_at"`
}

// Data is a complete fixture dataset.
type Data struct {
	Topics   []domain.Topic
	Users    []domain.User
	Articles []ArticleRecord
	Comments []CommentRecord
}

// TestData returns the small dataset the test suites run against.
func TestData() (Data, error) {
	sub, err := fs.Sub(testDataFS, "data/test")
	if err != nil {
		return Data{}, err
	}
	return load(sub)
}

// LoadDir reads topics.json, users.json, articles.json and comments.json
// from dir.
func LoadDir(dir string) (Data, error) {
	return load(os.DirFS(dir))
}

func load(fsys fs.FS) (Data, error) {
	var d Data
	files := []struct {
		name string
		dest interface{}
	}{
		{"topics.json", &d.Topics},
		{"users.json", &d.Users},
		{"articles.json", &d.Articles},
		{"comments.json", &d.Comments},
	}

	for _, f := range files {
		raw, err := fs.ReadFile(fsys, f.name)
		if err != nil {
			return Data{}, fmt.Errorf("failed to read %s: %w", f.name, err)
		}
		if err := json.Unmarshal(raw, f.dest); err != nil {
			return Data{}, fmt.Errorf("failed to parse %s: %w", f.name, err)
		}
	}

	return d, nil
}
