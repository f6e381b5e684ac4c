package guidance

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/anubhav/gitaguide/internal/chat"
	"github.com/anubhav/gitaguide/internal/llm"
	"github.com/anubhav/gitaguide/internal/progress"
)

func sampleProgress() progress.Progress {
	return progress.Progress{
		DaysActive:       3,
		QuestionsAsked:   7,
		VersesSaved:      2,
		LastActiveDate:   "2024-01-03",
		ExploredChapters: []int{2, 12},
	}
}

func sampleTranscript() []chat.Message {
	return []chat.Message{
		{Role: chat.RoleModel, Content: "Namaste, Arjun!"},
		{Role: chat.RoleUser, Content: "What is dharma?"},
		{Role: chat.RoleModel, Content: "Chapter 2 speaks of it."},
		{Role: chat.RoleUser, Content: "Tell me more."},
	}
}

func TestGuide_PersonalizesSystemInstruction(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Text: "reply"})
	svc := NewService(mock)

	_, err := svc.Guide(context.Background(), sampleTranscript(), "Arjun", sampleProgress())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(mock.Calls) != 1 {
		t.Fatalf("expected 1 provider call, got %d", len(mock.Calls))
	}
	sys := mock.Calls[0].System

	if strings.Contains(sys, "[User Name]") || strings.Contains(sys, "[Name]") {
		t.Error("name placeholders not substituted")
	}
	if !strings.Contains(sys, "Arjun") {
		t.Error("system instruction should carry the user's name")
	}
	if strings.Contains(sys, "{currentUserProgress}") {
		t.Error("progress placeholder not substituted")
	}
	for _, want := range []string{"Days Active: 3", "Questions Asked: 7", "Verses Saved: 2", "Chapters Explored: 2"} {
		if !strings.Contains(sys, want) {
			t.Errorf("system instruction missing %q:\n%s", want, sys)
		}
	}
}

func TestGuide_DropsGreetingFromTranscript(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Text: "reply"})
	svc := NewService(mock)

	_, err := svc.Guide(context.Background(), sampleTranscript(), "Arjun", sampleProgress())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	msgs := mock.Calls[0].Messages
	if len(msgs) != 3 {
		t.Fatalf("expected 3 forwarded messages, got %d", len(msgs))
	}
	if msgs[0].Role != llm.RoleUser || msgs[0].Content != "What is dharma?" {
		t.Errorf("first forwarded message = %+v, want the first user question", msgs[0])
	}
	if msgs[1].Role != llm.RoleAssistant {
		t.Errorf("model role should map to assistant, got %q", msgs[1].Role)
	}
}

func TestGuide_PropagatesFailure(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Err: &llm.ErrProviderUnavailable{Err: errors.New("down")},
	})
	svc := NewService(mock)

	_, err := svc.Guide(context.Background(), sampleTranscript(), "Arjun", sampleProgress())
	if err == nil {
		t.Fatal("expected error")
	}
	var unavail *llm.ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Errorf("error should wrap the provider failure, got %v", err)
	}
}

func TestGreeting(t *testing.T) {
	g := Greeting("Mira")
	if !strings.Contains(g, "Mira") {
		t.Errorf("greeting should carry the name: %q", g)
	}
	if strings.Contains(g, "[User Name]") {
		t.Error("placeholder not substituted")
	}
}
