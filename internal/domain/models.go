// Package domain defines the persistence models for topics, users, articles
// and comments. These types are mapped with GORM and serialized directly as
// the API's JSON resources.
package domain

import "time"

// DefaultArticleImgURL is used for articles created without an image.
const DefaultArticleImgURL = "https://images.pexels.com/photos/97050/pexels-photo-97050.jpeg?w=700&h=700"

// Topic is a subject articles are filed under. Read-only through the API.
type Topic struct {
	Slug        string `json:"slug"        gorm:"type:varchar(255);primaryKey"`
	Description string `json:"description" gorm:"type:varchar(1000);not null"`
}

// TableName returns the database table name for Topic.
func (Topic) TableName() string { return "topics" }

// User is an author of articles and comments. Read-only through the API.
type User struct {
	Username  string `json:"username"   gorm:"type:varchar(255);primaryKey"`
	Name      string `json:"name"       gorm:"type:varchar(255);not null"`
	AvatarURL string `json:"avatar_url" gorm:"type:varchar(1000)"`
}

// TableName returns the database table name for User.
func (User) TableName() string { return "users" }

// Article is a single news article.
//
// Fields:
//   - ArticleID: auto-assigned primary key.
//   - Topic: slug of an existing topic (FK topics.slug).
//   - Author: username of an existing user (FK users.username).
//   - Votes: mutated only through atomic increments.
//
// The comment count is derived at read time (see ArticleSummary), never stored.
type Article struct {
	ArticleID     int64     `json:"article_id"      gorm:"primaryKey;autoIncrement"`
	Title         string    `json:"title"           gorm:"type:varchar(255);not null"`
	Topic         string    `json:"topic"           gorm:"type:varchar(255);not null;index:idx_articles_topic"`
	Author        string    `json:"author"          gorm:"type:varchar(255);not null;index:idx_articles_author"`
	Body          string    `json:"body"            gorm:"type:text;not null"`
	CreatedAt     time.Time `json:"created_at"      gorm:"not null"`
	Votes         int       `json:"votes"           gorm:"not null;default:0"`
	ArticleImgURL string    `json:"article_img_url" gorm:"type:varchar(1000)"`

	TopicRef  *Topic `json:"-" gorm:"foreignKey:Topic;references:Slug"`
	AuthorRef *User  `json:"-" gorm:"foreignKey:Author;references:Username"`
}

// TableName returns the database table name for Article.
func (Article) TableName() string { return "articles" }

// ArticleSummary is the listing projection of an article: no body, plus the
// number of comments it has.
type ArticleSummary struct {
	ArticleID     int64     `json:"article_id"`
	Title         string    `json:"title"`
	Topic         string    `json:"topic"`
	Author        string    `json:"author"`
	CreatedAt     time.Time `json:"created_at"`
	Votes         int       `json:"votes"`
	ArticleImgURL string    `json:"article_img_url"`
	CommentCount  int64     `json:"comment_count"`
}

// Comment is a reader's reply to an article. Comments are created and
// deleted, never updated, and disappear with their article.
type Comment struct {
	CommentID int64     `json:"comment_id" gorm:"primaryKey;autoIncrement"`
	ArticleID int64     `json:"article_id" gorm:"not null;index:idx_comments_article"`
	Author    string    `json:"author"     gorm:"type:varchar(255);not null"`
	Body      string    `json:"body"       gorm:"type:text;not null"`
	Votes     int       `json:"votes"      gorm:"not null;default:0"`
	CreatedAt time.Time `json:"created_at" gorm:"not null"`

	Article   *Article `json:"-" gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	AuthorRef *User    `json:"-" gorm:"foreignKey:Author;references:Username"`
}

// TableName returns the database table name for Comment.
func (Comment) TableName() string { return "comments" }

// All returns the models in dependency order, for migrations and resets.
func All() []any {
	return []any{&Topic{}, &User{}, &Article{}, &Comment{}}
}
