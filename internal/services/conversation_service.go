package services

import (
	"sort"

	"socialnino/internal/models"
)

// BuildConversations groups a flat message list into per-counterpart
// summaries for currentUser. For each counterpart only the most recent
// message is retained (comparison by timestamp, later wins); messages not
// involving currentUser are skipped. The result is sorted descending by the
// retained message's timestamp.
//
// A summary is unread iff the single most recent message is addressed to
// currentUser and unread; earlier unread messages in the thread do not
// count. That precision loss matches the stored client behavior.
func BuildConversations(msgs []models.DirectMessage, currentUser string) []models.ConversationSummary {
	latest := make(map[string]models.DirectMessage)
	order := make([]string, 0)

	for _, m := range msgs {
		var counterpart string
		switch currentUser {
		case m.Sender:
			counterpart = m.Receiver
		case m.Receiver:
			counterpart = m.Sender
		default:
			continue
		}

		prev, ok := latest[counterpart]
		if !ok {
			order = append(order, counterpart)
			latest[counterpart] = m
			continue
		}
		if models.ParseTimestamp(m.Timestamp).After(models.ParseTimestamp(prev.Timestamp)) {
			latest[counterpart] = m
		}
	}

	summaries := make([]models.ConversationSummary, 0, len(order))
	for _, counterpart := range order {
		last := latest[counterpart]
		summaries = append(summaries, models.ConversationSummary{
			Counterpart: counterpart,
			LastMessage: last,
			Unread:      last.Receiver == currentUser && !last.Read,
		})
	}

	sort.SliceStable(summaries, func(i, j int) bool {
		ti := models.ParseTimestamp(summaries[i].LastMessage.Timestamp)
		tj := models.ParseTimestamp(summaries[j].LastMessage.Timestamp)
		return ti.After(tj)
	})
	return summaries
}

// ThreadBetween filters to exactly the (a, b) pair and sorts ascending by
// timestamp, chronological display order, the opposite direction from the
// summary list.
func ThreadBetween(msgs []models.DirectMessage, a, b string) []models.DirectMessage {
	thread := make([]models.DirectMessage, 0)
	for _, m := range msgs {
		if (m.Sender == a && m.Receiver == b) || (m.Sender == b && m.Receiver == a) {
			thread = append(thread, m)
		}
	}
	sort.SliceStable(thread, func(i, j int) bool {
		return models.ParseTimestamp(thread[i].Timestamp).Before(models.ParseTimestamp(thread[j].Timestamp))
	})
	return thread
}
