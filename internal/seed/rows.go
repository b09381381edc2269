package seed

import (
	"fmt"
	"strings"

	"github.com/phrazzld/news-api/internal/domain"
)

// topicRows formats topics as (slug, description) rows. The input is not modified.
func topicRows(topics []domain.Topic) [][]any {
	rows := make([][]any, 0, len(topics))
	for _, t := range topics {
		rows = append(rows, []any{t.Slug, t.Description})
	}
	return rows
}

// userRows formats users as (username, avatar_url, name) rows.
func userRows(users []domain.User) [][]any {
	rows := make([][]any, 0, len(users))
	for _, u := range users {
		rows = append(rows, []any{u.Username, u.AvatarURL, u.Name})
	}
	return rows
}

// articleRows formats articles as (title, body, votes, topic, author, created_at) rows.
func articleRows(articles []ArticleRecord) [][]any {
	rows := make([][]any, 0, len(articles))
	for _, a := range articles {
		rows = append(rows, []any{a.Title, a.Body, a.Votes, a.Topic, a.Author, a.CreatedAt.UTC()})
	}
	return rows
}

// commentRows formats comments as (author, article_id, votes, created_at, body) rows.
func commentRows(comments []CommentRecord) [][]any {
	rows := make([][]any, 0, len(comments))
	for _, c := range comments {
		rows = append(rows, []any{c.Author, c.ArticleID, c.Votes, c.CreatedAt.UTC(), c.Body})
	}
	return rows
}

// insertStatement renders one multi-row parameterized INSERT for rows. Every
// row must have len(columns) values. Returns an empty query when there are no rows.
func insertStatement(table string, columns []string, rows [][]any) (string, []any, error) {
	if len(rows) == 0 {
		return "", nil, nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "INSERT INTO %s (%s) VALUES ", table, strings.Join(columns, ", "))

	args := make([]any, 0, len(rows)*len(columns))
	for i, row := range rows {
		if len(row) != len(columns) {
			return "", nil, fmt.Errorf("row %d of %s has %d values, want %d", i, table, len(row), len(columns))
		}
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteByte('(')
		for j, v := range row {
			if j > 0 {
				b.WriteString(", ")
			}
			args = append(args, v)
			fmt.Fprintf(&b, "$%d", len(args))
		}
		b.WriteByte(')')
	}

	return b.String(), args, nil
}
