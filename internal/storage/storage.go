package storage

import "time"

// Post is one published image with its caption.
// Posts are appended in chronological order.
type Post struct {
	Timestamp time.Time `json:"timestamp"`
	RunID     string    `json:"run_id,omitempty"`
	ImageID   string    `json:"image_id"`
	ImageURL  string    `json:"image_url"`
	Caption   string    `json:"caption"`
	Profile   string    `json:"profile,omitempty"`
	MessageID int       `json:"message_id"`
	PostURL   string    `json:"post_url,omitempty"`
}

// Recorder abstracts persistence of published posts.
// LoadPosts should return posts in chronological order.
// Implementations must be safe for concurrent use.
type Recorder interface {
	AppendPost(post Post) error
	LoadPosts() ([]Post, error)
}
