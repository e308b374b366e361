package posts

import "time"

// Post is a user-authored entry. UserID is the owner every scoped lookup filters on.
type Post struct {
	ID        int64     `json:"id" db:"id"`
	Content   string    `json:"content" db:"content"`
	Img       string    `json:"img,omitempty" db:"img"`
	UserID    int64     `json:"user_id" db:"user_id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

type Hashtag struct {
	ID    int64  `json:"id" db:"id"`
	Title string `json:"title" db:"title"`
}
