package book

import (
	"errors"
)

// ErrStore is returned when the catalog store fails to answer a query.
var ErrStore = errors.New("catalog store failure")

// TopN caps every book listing.
const TopN = 30

// Book is a row of the books table. Every column is free-form text.
type Book struct {
	BookID           string `json:"book_id"`
	Title            string `json:"title"`
	Series           string `json:"series,omitempty"`
	Author           string `json:"author"`
	Rating           string `json:"rating,omitempty"`
	Description      string `json:"description,omitempty"`
	Language         string `json:"language,omitempty"`
	ISBN             string `json:"isbn,omitempty"`
	Genres           string `json:"genres,omitempty"`
	Characters       string `json:"characters,omitempty"`
	BookFormat       string `json:"book_format,omitempty"`
	Edition          string `json:"edition,omitempty"`
	Pages            string `json:"pages,omitempty"`
	Publisher        string `json:"publisher,omitempty"`
	PublishDate      string `json:"publish_date,omitempty"`
	FirstPublishDate string `json:"first_publish_date,omitempty"`
	Awards           string `json:"awards,omitempty"`
	NumRatings       string `json:"num_ratings,omitempty"`
	RatingsByStars   string `json:"ratings_by_stars,omitempty"`
	LikedPercent     string `json:"liked_percent,omitempty"`
	Setting          string `json:"setting,omitempty"`
	CoverImg         string `json:"cover_img,omitempty"`
	BBEScore         string `json:"bbe_score,omitempty"`
	BBEVotes         string `json:"bbe_votes,omitempty"`
	Price            string `json:"price,omitempty"`
}

// Eligible reports whether the book can be displayed.
func (b Book) Eligible() bool {
	return b.CoverImg != ""
}

// columnList is the column order shared by every query and by fields.
const columnList = `book_id, title, series, author, rating, description, language, isbn,
	genres, characters, book_format, edition, pages, publisher, publish_date,
	first_publish_date, awards, num_ratings, ratings_by_stars, liked_percent,
	setting, cover_img, bbe_score, bbe_votes, price`

// columns mirrors columnList for COPY and prepared inserts.
var columns = []string{
	"book_id", "title", "series", "author", "rating", "description", "language", "isbn",
	"genres", "characters", "book_format", "edition", "pages", "publisher", "publish_date",
	"first_publish_date", "awards", "num_ratings", "ratings_by_stars", "liked_percent",
	"setting", "cover_img", "bbe_score", "bbe_votes", "price",
}

// fields returns pointers to b's fields in column order, for Scan.
func (b *Book) fields() []any {
	return []any{
		&b.BookID, &b.Title, &b.Series, &b.Author, &b.Rating, &b.Description, &b.Language, &b.ISBN,
		&b.Genres, &b.Characters, &b.BookFormat, &b.Edition, &b.Pages, &b.Publisher, &b.PublishDate,
		&b.FirstPublishDate, &b.Awards, &b.NumRatings, &b.RatingsByStars, &b.LikedPercent,
		&b.Setting, &b.CoverImg, &b.BBEScore, &b.BBEVotes, &b.Price,
	}
}

// values returns b's fields in column order, for inserts.
func (b Book) values() []any {
	return []any{
		b.BookID, b.Title, b.Series, b.Author, b.Rating, b.Description, b.Language, b.ISBN,
		b.Genres, b.Characters, b.BookFormat, b.Edition, b.Pages, b.Publisher, b.PublishDate,
		b.FirstPublishDate, b.Awards, b.NumRatings, b.RatingsByStars, b.LikedPercent,
		b.Setting, b.CoverImg, b.BBEScore, b.BBEVotes, b.Price,
	}
}

// scanner is satisfied by pgx.Row, pgx.Rows, *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanBook(s scanner) (Book, error) {
	var b Book
	err := s.Scan(b.fields()...)
	return b, err
}
