// Package seed loads the fixture dataset into a database. It backs the
// cmd/seed tool and gives every test package the same known starting state.
//
// The fixtures are embedded JSON: 3 topics, 4 users, 13 articles and 18
// comments. Articles are inserted in file order into freshly created tables,
// so the n-th article gets id n and comments reference articles that way.
package seed

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/Moldovia-Peach/my-nc-news/internal/domain"
	"github.com/Moldovia-Peach/my-nc-news/internal/repo"
)

//go:embed data/*.json
var fixtures embed.FS

// Data is a complete dataset in insertion order.
type Data struct {
	Topics   []domain.Topic
	Users    []domain.User
	Articles []domain.Article
	Comments []domain.Comment
}

// TestData returns a fresh copy of the embedded fixtures. Callers may
// modify it freely.
func TestData() (Data, error) {
	var d Data
	for _, f := range []struct {
		name string
		dst  any
	}{
		{"data/topics.json", &d.Topics},
		{"data/users.json", &d.Users},
		{"data/articles.json", &d.Articles},
		{"data/comments.json", &d.Comments},
	} {
		b, err := fixtures.ReadFile(f.name)
		if err != nil {
			return Data{}, err
		}
		if err := json.Unmarshal(b, f.dst); err != nil {
			return Data{}, fmt.Errorf("decode %s: %w", f.name, err)
		}
	}
	return d, nil
}

// Run drops and recreates the four tables, then inserts d in one
// transaction in foreign-key order. Existing rows are lost.
func Run(ctx context.Context, db *gorm.DB, d Data) error {
	m := db.WithContext(ctx).Migrator()
	all := domain.All()
	for i := len(all) - 1; i >= 0; i-- {
		if err := m.DropTable(all[i]); err != nil {
			return fmt.Errorf("drop %T: %w", all[i], err)
		}
	}
	if err := repo.AutoMigrate(db.WithContext(ctx)); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if len(d.Topics) > 0 {
			if err := tx.Create(&d.Topics).Error; err != nil {
				return fmt.Errorf("insert topics: %w", err)
			}
		}
		if len(d.Users) > 0 {
			if err := tx.Create(&d.Users).Error; err != nil {
				return fmt.Errorf("insert users: %w", err)
			}
		}
		for i := range d.Articles {
			a := d.Articles[i]
			a.ArticleID = 0
			if err := repo.CreateArticle(ctx, tx, &a); err != nil {
				return fmt.Errorf("insert article %d: %w", i+1, err)
			}
		}
		for i := range d.Comments {
			c := d.Comments[i]
			c.CommentID = 0
			if err := repo.InsertComment(ctx, tx, &c); err != nil {
				return fmt.Errorf("insert comment %d: %w", i+1, err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	log.Info().
		Int("topics", len(d.Topics)).
		Int("users", len(d.Users)).
		Int("articles", len(d.Articles)).
		Int("comments", len(d.Comments)).
		Msg("database seeded")
	return nil
}
