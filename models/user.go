package models

import (
	"time"
)

// UserActivity is a single row of the users listing, annotated with the
// derived message count and last message timestamp.
type UserActivity struct {
	UserID        int64      `json:"user_id"       db:"user_id"`
	Username      string     `json:"username"      db:"username"`
	DisplayName   *string    `json:"display_name"  db:"display_name"`
	Discriminator *string    `json:"discriminator" db:"discriminator"`
	Bot           bool       `json:"bot"           db:"bot"`
	CreatedAt     *time.Time `json:"created_at"    db:"created_at"`
	FirstSeen     *time.Time `json:"first_seen"    db:"first_seen"`
	MessageCount  int64      `json:"message_count" db:"message_count"`
	LastMessage   *time.Time `json:"last_message"  db:"last_message"`
}

type UserPage struct {
	Users  []UserActivity `json:"users"`
	Total  int64          `json:"total"`
	Limit  int            `json:"limit"`
	Offset int            `json:"offset"`
}

// TopUser is an entry of the stats top-5 activity ranking. Bot accounts
// are excluded from the ranking.
type TopUser struct {
	Username     string  `json:"username"      db:"username"`
	DisplayName  *string `json:"display_name"  db:"display_name"`
	MessageCount int64   `json:"message_count" db:"message_count"`
}

// UserOption is an entry of the filter_options user list: non-bot users
// with at least one recorded message.
type UserOption struct {
	UserID       int64   `json:"user_id"       db:"user_id"`
	Username     string  `json:"username"      db:"username"`
	DisplayName  *string `json:"display_name"  db:"display_name"`
	MessageCount int64   `json:"message_count" db:"message_count"`
}
