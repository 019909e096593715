package models

import "time"

// Post is one blog/content-hub article. Content is seeded at startup and
// never edited through the API.
type Post struct {
	ID          string    `bson:"_id" json:"id"`
	Title       string    `bson:"title" json:"title"`
	Author      string    `bson:"author" json:"author"`
	Excerpt     string    `bson:"excerpt" json:"excerpt"`
	Body        string    `bson:"body" json:"body"`
	ImageURL    string    `bson:"image_url" json:"imageUrl"`
	PublishedAt time.Time `bson:"published_at" json:"publishedAt"`
}
