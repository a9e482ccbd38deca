package seed

import (
	"fmt"
	"time"

	"github.com/brianvoe/gofakeit/v6"

	"github.com/Moldovia-Peach/my-nc-news/internal/domain"
)

// Fake returns a copy of base with n generated articles appended, each with
// up to five generated comments. Authors and topics are drawn from base, so
// base must carry at least one user and one topic.
//
// The same seed always yields the same content.
func Fake(base Data, n int, seed int64) (Data, error) {
	if n <= 0 {
		return base, nil
	}
	if len(base.Users) == 0 || len(base.Topics) == 0 {
		return Data{}, fmt.Errorf("fake data needs at least one user and one topic")
	}

	f := gofakeit.New(seed)
	out := Data{
		Topics:   append([]domain.Topic(nil), base.Topics...),
		Users:    append([]domain.User(nil), base.Users...),
		Articles: append([]domain.Article(nil), base.Articles...),
		Comments: append([]domain.Comment(nil), base.Comments...),
	}

	users := make([]string, len(base.Users))
	for i, u := range base.Users {
		users[i] = u.Username
	}
	topics := make([]string, len(base.Topics))
	for i, t := range base.Topics {
		topics[i] = t.Slug
	}

	end := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	start := end.AddDate(-3, 0, 0)

	for i := 0; i < n; i++ {
		created := f.DateRange(start, end).UTC().Truncate(time.Second)
		out.Articles = append(out.Articles, domain.Article{
			Title:         f.Sentence(5),
			Topic:         f.RandomString(topics),
			Author:        f.RandomString(users),
			Body:          f.Paragraph(1, 3, 12, "\n"),
			CreatedAt:     created,
			Votes:         f.Number(-10, 50),
			ArticleImgURL: fmt.Sprintf("https://picsum.photos/seed/%s/700/700", f.UUID()),
		})
		// Positional id of the article just appended.
		articleID := int64(len(out.Articles))

		for j, k := 0, f.Number(0, 5); j < k; j++ {
			out.Comments = append(out.Comments, domain.Comment{
				ArticleID: articleID,
				Author:    f.RandomString(users),
				Body:      f.Sentence(10),
				Votes:     f.Number(-5, 20),
				CreatedAt: created.Add(time.Duration(f.Number(1, 72*60)) * time.Minute),
			})
		}
	}
	return out, nil
}
