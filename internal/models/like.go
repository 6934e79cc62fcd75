package models

// Like represents a user's like on a post.
// The combination of UserID and PostID must be unique.
type Like struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	UserID string `gorm:"not null;uniqueIndex:idx_like_user_post" json:"user_id"`
	PostID string `gorm:"not null;uniqueIndex:idx_like_user_post;index" json:"post_id"`
}
