package models

import (
	"time"
)

// Reaction is a single row of the reactions listing with its author,
// message content and parent channel/guild resolved.
type Reaction struct {
	ID             int64     `json:"id"              db:"id"`
	EmojiName      string    `json:"emoji_name"      db:"emoji_name"`
	EmojiID        *int64    `json:"emoji_id"        db:"emoji_id"`
	EmojiAnimated  bool      `json:"emoji_animated"  db:"emoji_animated"`
	CreatedAt      time.Time `json:"created_at"      db:"created_at"`
	Username       string    `json:"username"        db:"username"`
	DisplayName    *string   `json:"display_name"    db:"display_name"`
	MessageContent string    `json:"message_content" db:"message_content"`
	ChannelName    *string   `json:"channel_name"    db:"channel_name"`
	GuildName      *string   `json:"guild_name"      db:"guild_name"`
}

// EmojiStat is an entry of the emoji frequency table.
type EmojiStat struct {
	EmojiName string `json:"emoji_name" db:"emoji_name"`
	Count     int64  `json:"count"      db:"count"`
}

// ReactionPage is the paginated reactions response. EmojiStats is the
// top-10 frequency table over all reactions, independent of pagination.
type ReactionPage struct {
	Reactions  []Reaction  `json:"reactions"`
	EmojiStats []EmojiStat `json:"emoji_stats"`
	Total      int64       `json:"total"`
	Limit      int         `json:"limit"`
	Offset     int         `json:"offset"`
}
