package chat

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/anubhav/gitaguide/internal/chapters"
	"github.com/anubhav/gitaguide/internal/progress"
)

// Session is one user's open conversation. All mutation goes through the
// transition methods below; the UI layer only reads fields and invokes
// transitions in response to events. A session is single-threaded by
// construction (Bubble Tea's update loop), so no locking.
type Session struct {
	ID       string
	UserName string
	Messages []Message
	Progress progress.Progress

	// Awaiting is true while a guidance request is in flight. Exactly one
	// request may be in flight; Submit refuses until the reply lands.
	Awaiting bool

	store *progress.Store
	log   *slog.Logger
}

// NewSession loads (or initializes) the user's progress record and opens a
// transcript with the personalized greeting.
func NewSession(ctx context.Context, userName, greeting string, store *progress.Store, log *slog.Logger) *Session {
	if log == nil {
		log = slog.Default()
	}
	return &Session{
		ID:       uuid.New().String(),
		UserName: userName,
		Messages: []Message{{Role: RoleModel, Content: greeting}},
		Progress: store.Load(ctx, userName),
		store:    store,
		log:      log,
	}
}

// Submit moves idle → awaiting-reply: appends the user's question and
// counts it in questionsAsked. The incremented count is part of the
// snapshot sent with the request — attempts are counted, not successful
// answers, and the count is not rolled back on failure.
//
// Returns false (and changes nothing) for blank input or while a request
// is already in flight.
func (s *Session) Submit(ctx context.Context, text string) bool {
	text = strings.TrimSpace(text)
	if text == "" || s.Awaiting {
		return false
	}

	s.Messages = append(s.Messages, Message{Role: RoleUser, Content: text})
	s.Progress = s.store.Apply(ctx, s.UserName, s.Progress, progress.Update{
		QuestionsAsked: progress.Int(s.Progress.QuestionsAsked + 1),
	})
	s.Awaiting = true
	return true
}

// Reply moves awaiting-reply → idle with the guide's answer: appends the
// model message and folds any newly mentioned chapters into progress.
func (s *Session) Reply(ctx context.Context, text string) {
	s.Messages = append(s.Messages, Message{Role: RoleModel, Content: text})
	s.Awaiting = false
	s.noteChapters(ctx, text)
}

// Fail moves awaiting-reply → idle after a provider failure: appends the
// fixed apology and logs the cause. The session continues normally.
func (s *Session) Fail(ctx context.Context, apology string, err error) {
	s.log.Error("guidance request failed", "session", s.ID, "err", err)
	s.Messages = append(s.Messages, Message{Role: RoleModel, Content: apology})
	s.Awaiting = false
}

// SaveVerse counts a model message as a saved verse. The greeting (index 0)
// and user messages don't qualify. Every invocation increments; saving the
// same message twice is two saves.
func (s *Session) SaveVerse(ctx context.Context, index int) bool {
	if index <= 0 || index >= len(s.Messages) || s.Messages[index].Role != RoleModel {
		return false
	}
	s.Progress = s.store.Apply(ctx, s.UserName, s.Progress, progress.Update{
		VersesSaved: progress.Int(s.Progress.VersesSaved + 1),
	})
	return true
}

// noteChapters scans a reply for chapter mentions and merges new ones.
func (s *Session) noteChapters(ctx context.Context, text string) {
	found := chapters.Extract(text)
	if len(found) == 0 {
		return
	}

	merged := progress.MergeChapters(s.Progress.ExploredChapters, found)
	if len(merged) == len(s.Progress.ExploredChapters) {
		return
	}

	s.Progress = s.store.Apply(ctx, s.UserName, s.Progress, progress.Update{
		ExploredChapters: merged,
	})
}
