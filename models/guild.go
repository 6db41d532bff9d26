package models

import (
	"time"
)

// GuildActivity is a single row of the servers listing. Channel and
// message counts come from outer join aggregation, so guilds without
// channels or messages are still listed with zero counts.
type GuildActivity struct {
	GuildID      int64      `json:"guild_id"      db:"guild_id"`
	GuildName    string     `json:"guild_name"    db:"guild_name"`
	OwnerID      *int64     `json:"owner_id"      db:"owner_id"`
	MemberCount  *int64     `json:"member_count"  db:"member_count"`
	CreatedAt    *time.Time `json:"created_at"    db:"created_at"`
	JoinedAt     *time.Time `json:"joined_at"     db:"joined_at"`
	ChannelCount int64      `json:"channel_count" db:"channel_count"`
	MessageCount int64      `json:"message_count" db:"message_count"`
}

type GuildOption struct {
	GuildID   int64  `json:"guild_id"   db:"guild_id"`
	GuildName string `json:"guild_name" db:"guild_name"`
}
