package repo

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Moldovia-Peach/my-nc-news/internal/domain"
)

// isFKError accepts both the translated sentinel and raw driver errors.
func isFKError(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23503"
	}
	return errors.Is(err, gorm.ErrForeignKeyViolated) ||
		strings.Contains(strings.ToUpper(err.Error()), "FOREIGN KEY")
}

func getComment(ctx context.Context, db *gorm.DB, id int64) (*domain.Comment, error) {
	var c domain.Comment
	if err := db.WithContext(ctx).Where("comment_id = ?", id).First(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func getTopic(ctx context.Context, db *gorm.DB, slug string) (*domain.Topic, error) {
	var t domain.Topic
	if err := db.WithContext(ctx).Where("slug = ?", slug).First(&t).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

func TestListCommentsByArticle_NewestFirst(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	got, err := ListCommentsByArticle(ctx, db, 1)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "second", got[0].Body)
	assert.Equal(t, 14, got[0].Votes)
	assert.Equal(t, "first", got[1].Body)

	none, err := ListCommentsByArticle(ctx, db, 2)
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestCreateComment(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	c, err := CreateComment(ctx, db, 2, "lurker", "meow")
	require.NoError(t, err)
	assert.NotZero(t, c.CommentID)
	assert.Equal(t, int64(2), c.ArticleID)
	assert.Equal(t, 0, c.Votes)
	assert.False(t, c.CreatedAt.IsZero())

	stored, err := getComment(ctx, db, c.CommentID)
	require.NoError(t, err)
	assert.Equal(t, "meow", stored.Body)
	assert.Equal(t, "lurker", stored.Author)
}

func TestCreateComment_ForeignKeys(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	_, err := CreateComment(ctx, db, 999, "lurker", "orphan")
	require.Error(t, err)
	assert.True(t, isFKError(err), "got %v", err)

	_, err = CreateComment(ctx, db, 1, "nobody", "ghost")
	require.Error(t, err)
	assert.True(t, isFKError(err), "got %v", err)
}

func TestCreateComment_PostgresForeignKeyError(t *testing.T) {
	db, mock := setupMockDB(t)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "comments"`)).
		WillReturnError(&pgconn.PgError{Code: "23503", Message: "insert or update on table \"comments\" violates foreign key constraint"})
	mock.ExpectRollback()

	_, err := CreateComment(context.Background(), db, 1, "nobody", "x")
	require.Error(t, err)
	assert.True(t, isFKError(err), "got %v", err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteComment(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	comments, err := ListCommentsByArticle(ctx, db, 3)
	require.NoError(t, err)
	require.Len(t, comments, 1)
	id := comments[0].CommentID

	require.NoError(t, DeleteComment(ctx, db, id))
	assert.ErrorIs(t, DeleteComment(ctx, db, id), ErrNotFound)

	_, err = getComment(ctx, db, id)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestTopicsAndUsers(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	topics, err := ListTopics(ctx, db)
	require.NoError(t, err)
	assert.Equal(t, []domain.Topic{
		{Slug: "cats", Description: "Not dogs"},
		{Slug: "mitch", Description: "The man, the Mitch, the legend"},
	}, topics)

	tp, err := getTopic(ctx, db, "mitch")
	require.NoError(t, err)
	assert.Equal(t, "mitch", tp.Slug)
	_, err = getTopic(ctx, db, "paper")
	assert.ErrorIs(t, err, ErrNotFound)

	users, err := ListUsers(ctx, db)
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "butter_bridge", users[0].Username)

	u, err := GetUser(ctx, db, "lurker")
	require.NoError(t, err)
	assert.Equal(t, "do_nothing", u.Name)
	_, err = GetUser(ctx, db, "nobody")
	assert.ErrorIs(t, err, ErrNotFound)

	ok, err := UserExists(ctx, db, "butter_bridge")
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = UserExists(ctx, db, "nobody")
	require.NoError(t, err)
	assert.False(t, ok)
}
