package models

import (
	"time"
)

// ChannelActivity is a single row of the channels listing. Guild and
// category names resolve through outer joins and stay nil for orphaned
// channels.
type ChannelActivity struct {
	ChannelID    int64      `json:"channel_id"    db:"channel_id"`
	ChannelName  string     `json:"channel_name"  db:"channel_name"`
	ChannelType  string     `json:"channel_type"  db:"channel_type"`
	Position     *int64     `json:"position"      db:"position"`
	CreatedAt    *time.Time `json:"created_at"    db:"created_at"`
	GuildName    *string    `json:"guild_name"    db:"guild_name"`
	CategoryName *string    `json:"category_name" db:"category_name"`
	MessageCount int64      `json:"message_count" db:"message_count"`
}

type ChannelOption struct {
	ChannelID   int64  `json:"channel_id"   db:"channel_id"`
	ChannelName string `json:"channel_name" db:"channel_name"`
	GuildName   string `json:"guild_name"   db:"guild_name"`
}
