package reports

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"guildboard/models"
)

func messageEvent(id int64, createdAt time.Time) models.ActivityEvent {
	return models.ActivityEvent{
		ID:           id,
		CreatedAt:    createdAt,
		ActivityType: models.ActivityTypeMessage,
	}
}

func reactionEvent(id int64, createdAt time.Time) models.ActivityEvent {
	return models.ActivityEvent{
		ID:           id,
		CreatedAt:    createdAt,
		ActivityType: models.ActivityTypeReaction,
	}
}

func TestMergeActivity(t *testing.T) {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("interleaves two sources by timestamp descending", func(t *testing.T) {
		messages := []models.ActivityEvent{
			messageEvent(1, base.Add(-1*time.Minute)),
			messageEvent(2, base.Add(-3*time.Minute)),
		}
		reactions := []models.ActivityEvent{
			reactionEvent(3, base.Add(-2*time.Minute)),
			reactionEvent(4, base.Add(-4*time.Minute)),
		}

		merged := mergeActivity(messages, reactions, 20)

		assert.Len(t, merged, 4)
		assert.Equal(t, []int64{1, 3, 2, 4}, eventIDs(merged))
		for i := 1; i < len(merged); i++ {
			assert.False(t, merged[i].CreatedAt.After(merged[i-1].CreatedAt),
				"events must be ordered newest first")
		}
	})

	t.Run("truncates to limit after the merge, not per source", func(t *testing.T) {
		var messages, reactions []models.ActivityEvent
		for i := 0; i < 10; i++ {
			messages = append(messages, messageEvent(int64(i), base.Add(-time.Duration(2*i)*time.Minute)))
			reactions = append(reactions, reactionEvent(int64(100+i), base.Add(-time.Duration(2*i+1)*time.Minute)))
		}

		merged := mergeActivity(messages, reactions, 5)

		assert.Len(t, merged, 5)
		// The newest five events alternate between the two sources.
		assert.Equal(t, []int64{0, 100, 1, 101, 2}, eventIDs(merged))
	})

	t.Run("one empty source", func(t *testing.T) {
		messages := []models.ActivityEvent{
			messageEvent(1, base),
			messageEvent(2, base.Add(-time.Minute)),
		}

		merged := mergeActivity(messages, nil, 20)
		assert.Equal(t, []int64{1, 2}, eventIDs(merged))

		merged = mergeActivity(nil, messages, 20)
		assert.Equal(t, []int64{1, 2}, eventIDs(merged))
	})

	t.Run("both sources empty", func(t *testing.T) {
		merged := mergeActivity(nil, nil, 20)
		assert.Empty(t, merged)
	})

	t.Run("zero and negative limits yield an empty feed", func(t *testing.T) {
		messages := []models.ActivityEvent{messageEvent(1, base)}
		assert.Empty(t, mergeActivity(messages, nil, 0))
		assert.Empty(t, mergeActivity(messages, nil, -1))
	})
}

func TestFormatReactionContent(t *testing.T) {
	assert.Equal(t, "Reaction 👍 added", formatReactionContent("👍"))
	assert.Equal(t, "Reaction partyparrot added", formatReactionContent("partyparrot"))
}

func eventIDs(events []models.ActivityEvent) []int64 {
	ids := make([]int64, 0, len(events))
	for _, e := range events {
		ids = append(ids, e.ID)
	}
	return ids
}
