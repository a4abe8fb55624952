package models

import (
	"time"
)

type User struct {
	ID          int64     `json:"id" db:"id"`
	Username    string    `json:"username" db:"username"`
	Email       string    `json:"email" db:"email"`
	Password    string    `json:"-" db:"password"`
	DateCreated time.Time `json:"date_created" db:"date_created"`
}

type Post struct {
	ID          int64     `json:"id" db:"id"`
	Content     string    `json:"content" db:"content"`
	DateCreated time.Time `json:"date_created" db:"date_created"`
	UserID      int64     `json:"user_id" db:"user_id"`
	LikeCount   int64     `json:"like_count" db:"like_count"`
}

// Like is a single user's reaction to a post. At most one row exists per (user, post).
type Like struct {
	ID     int64  `json:"id" db:"id"`
	Likes  string `json:"likes" db:"likes"`
	UserID int64  `json:"user_id" db:"user_id"`
	PostID int64  `json:"post_id" db:"post_id"`
}

type Image struct {
	ID          int64     `json:"id" db:"id"`
	PostID      int64     `json:"post_id" db:"post_id"`
	ObjectName  string    `json:"-" db:"object_name"`
	URL         string    `json:"url" db:"url"`
	ContentType string    `json:"content_type" db:"content_type"`
	Size        int64     `json:"size" db:"size"`
	DateCreated time.Time `json:"date_created" db:"date_created"`
}
