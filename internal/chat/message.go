// Package chat holds the conversation session: the transcript, the
// idle/awaiting-reply state machine, and the progress side effects each
// transition carries.
package chat

// Role is a transcript entry's sender.
type Role string

const (
	RoleUser  Role = "user"
	RoleModel Role = "model"
)

// Message is one transcript entry. The transcript is append-only for the
// life of a session; entry 0 is always the synthesized greeting.
type Message struct {
	Role    Role
	Content string
}
