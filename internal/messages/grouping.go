package messages

import "slices"

// Group partitions records by match id. Conversations appear in the order
// their match id is first seen; messages within one are sorted by timestamp
// ascending, ties keeping storage order.
func Group(records []Message) []Conversation {
	index := make(map[int]int)
	convs := make([]Conversation, 0)
	for _, m := range records {
		i, ok := index[m.MatchID]
		if !ok {
			i = len(convs)
			index[m.MatchID] = i
			convs = append(convs, Conversation{MatchID: m.MatchID})
		}
		convs[i].Messages = append(convs[i].Messages, m)
	}
	for i := range convs {
		sortChronologically(convs[i].Messages)
		convs[i].LastMessage = convs[i].Messages[len(convs[i].Messages)-1]
	}
	return convs
}

// Thread returns one match's messages, oldest first. ok is false when the
// match has no messages.
func Thread(records []Message, matchID int) (Conversation, bool) {
	conv := Conversation{MatchID: matchID}
	for _, m := range records {
		if m.MatchID == matchID {
			conv.Messages = append(conv.Messages, m)
		}
	}
	if len(conv.Messages) == 0 {
		return Conversation{}, false
	}
	sortChronologically(conv.Messages)
	conv.LastMessage = conv.Messages[len(conv.Messages)-1]
	return conv, true
}

func sortChronologically(msgs []Message) {
	slices.SortStableFunc(msgs, func(a, b Message) int { return a.Timestamp.Compare(b.Timestamp) })
}
