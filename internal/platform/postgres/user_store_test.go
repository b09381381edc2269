package postgres

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/phrazzld/news-api/internal/domain"
	"github.com/phrazzld/news-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostgresUserStore_ListUsernames(t *testing.T) {
	db, mock := newMockDB(t)
	s := NewPostgresUserStore(db, nil)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT username FROM users")).
		WillReturnRows(sqlmock.NewRows([]string{"username"}).
			AddRow("butter_bridge").
			AddRow("lurker"))

	users, err := s.ListUsernames(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []domain.UserSummary{{Username: "butter_bridge"}, {Username: "lurker"}}, users)
}

func TestPostgresUserStore_GetByUsername(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		db, mock := newMockDB(t)
		s := NewPostgresUserStore(db, nil)

		mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE username = $1")).
			WithArgs("rogersop").
			WillReturnRows(sqlmock.NewRows([]string{"username", "avatar_url", "name"}).
				AddRow("rogersop", "https://avatars2.githubusercontent.com/u/24394918?s=400&v=4", "paul"))

		user, err := s.GetByUsername(context.Background(), "rogersop")
		require.NoError(t, err)
		assert.Equal(t, "paul", user.Name)
	})

	t.Run("not found", func(t *testing.T) {
		db, mock := newMockDB(t)
		s := NewPostgresUserStore(db, nil)

		mock.ExpectQuery("FROM users").WithArgs("ghost").WillReturnRows(sqlmock.NewRows(nil))

		_, err := s.GetByUsername(context.Background(), "ghost")
		assert.ErrorIs(t, err, store.ErrUserNotFound)
	})
}
