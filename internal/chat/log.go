package chat

// Role identifies the author of a message.
type Role string

const (
	RoleUser  Role = "user"
	RoleModel Role = "model"
)

// Message is one entry of the conversation log.
type Message struct {
	ID   string
	Role Role
	Text string

	// Pending marks the placeholder of a reply still in flight.
	Pending bool

	// Failed marks a reply replaced by the connection-failure notice.
	Failed bool
}

// Log is an ordered message list. Its methods never modify the receiver.
type Log []Message

// Append returns a new log with m added at the end.
func (l Log) Append(m Message) Log {
	out := make(Log, len(l), len(l)+1)
	copy(out, l)
	return append(out, m)
}

// Replace returns a new log where the message with the given id is
// replaced by fn applied to it. It reports false, returning l unchanged,
// when no message has that id.
func (l Log) Replace(id string, fn func(Message) Message) (Log, bool) {
	for i := range l {
		if l[i].ID != id {
			continue
		}
		out := make(Log, len(l))
		copy(out, l)
		out[i] = fn(out[i])
		return out, true
	}
	return l, false
}

// Find returns the message with the given id.
func (l Log) Find(id string) (Message, bool) {
	for _, m := range l {
		if m.ID == id {
			return m, true
		}
	}
	return Message{}, false
}

// PendingCount returns the number of pending placeholders.
func (l Log) PendingCount() int {
	n := 0
	for _, m := range l {
		if m.Pending {
			n++
		}
	}
	return n
}
