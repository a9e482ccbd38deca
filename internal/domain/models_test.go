package domain

import (
	"encoding/json"
	"fmt"
	"strings"
	"testing"
	"time"

	sqlite "github.com/glebarez/sqlite" // pure-Go SQLite (no CGO)
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newDomainDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:domain_%s?mode=memory&cache=shared&_pragma=foreign_keys(1)", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(All()...); err != nil {
		t.Fatalf("automigrate: %v", err)
	}
	return db
}

func TestTableNames(t *testing.T) {
	cases := map[string]string{
		(Topic{}).TableName():   "topics",
		(User{}).TableName():    "users",
		(Article{}).TableName(): "articles",
		(Comment{}).TableName(): "comments",
	}
	for got, want := range cases {
		if got != want {
			t.Fatalf("TableName() = %q; want %q", got, want)
		}
	}
}

func TestMigrations_TablesAndIndexes(t *testing.T) {
	db := newDomainDB(t)
	m := db.Migrator()

	for _, tbl := range All() {
		if !m.HasTable(tbl) {
			t.Fatalf("expected table for %T to exist", tbl)
		}
	}
	if !m.HasIndex(&Article{}, "idx_articles_topic") {
		t.Fatalf("expected index idx_articles_topic on articles")
	}
	if !m.HasIndex(&Comment{}, "idx_comments_article") {
		t.Fatalf("expected index idx_comments_article on comments")
	}
}

func seedRefs(t *testing.T, db *gorm.DB) {
	t.Helper()
	if err := db.Create(&Topic{Slug: "cats", Description: "Not dogs"}).Error; err != nil {
		t.Fatalf("seed topic: %v", err)
	}
	if err := db.Create(&User{Username: "rogersop", Name: "paul"}).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
}

func TestForeignKeys_RejectUnknownReferences(t *testing.T) {
	db := newDomainDB(t)
	seedRefs(t, db)

	bad := &Article{Title: "t", Topic: "dogs", Author: "rogersop", Body: "b", CreatedAt: time.Now().UTC()}
	if err := db.Omit("TopicRef", "AuthorRef").Create(bad).Error; err == nil {
		t.Fatalf("expected FK violation for unknown topic")
	}

	c := &Comment{ArticleID: 999, Author: "rogersop", Body: "hi", CreatedAt: time.Now().UTC()}
	if err := db.Omit("Article", "AuthorRef").Create(c).Error; err == nil {
		t.Fatalf("expected FK violation for unknown article")
	}
}

func TestCascade_DeletingArticleRemovesComments(t *testing.T) {
	db := newDomainDB(t)
	seedRefs(t, db)

	a := &Article{Title: "t", Topic: "cats", Author: "rogersop", Body: "b", CreatedAt: time.Now().UTC()}
	if err := db.Omit("TopicRef", "AuthorRef").Create(a).Error; err != nil {
		t.Fatalf("create article: %v", err)
	}
	if a.ArticleID == 0 {
		t.Fatalf("expected auto-assigned article id")
	}
	c := &Comment{ArticleID: a.ArticleID, Author: "rogersop", Body: "hi", CreatedAt: time.Now().UTC()}
	if err := db.Omit("Article", "AuthorRef").Create(c).Error; err != nil {
		t.Fatalf("create comment: %v", err)
	}
	if c.Votes != 0 {
		t.Fatalf("default votes = %d; want 0", c.Votes)
	}

	if err := db.Delete(&Article{}, a.ArticleID).Error; err != nil {
		t.Fatalf("delete article: %v", err)
	}
	var n int64
	db.Model(&Comment{}).Where("article_id = ?", a.ArticleID).Count(&n)
	if n != 0 {
		t.Fatalf("expected comments to cascade, %d left", n)
	}
}

func TestJSON_SnakeCaseAndHiddenAssociations(t *testing.T) {
	a := Article{
		ArticleID:     1,
		Title:         "Living in the shadow of a great man",
		Topic:         "mitch",
		Author:        "butter_bridge",
		ArticleImgURL: DefaultArticleImgURL,
		TopicRef:      &Topic{Slug: "mitch"},
	}
	b, err := json.Marshal(a)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	s := string(b)
	for _, key := range []string{`"article_id":1`, `"article_img_url"`, `"created_at"`, `"votes"`} {
		if !strings.Contains(s, key) {
			t.Fatalf("expected %s in %s", key, s)
		}
	}
	if strings.Contains(s, "TopicRef") || strings.Contains(s, "slug") {
		t.Fatalf("association leaked into JSON: %s", s)
	}
}
