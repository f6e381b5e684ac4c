package llm

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/anubhav/gitaguide/internal/store"
)

// fakeEventRepo captures appended events in memory.
type fakeEventRepo struct {
	events []store.GuidanceEventData
	err    error
}

func (f *fakeEventRepo) AppendGuidanceRequest(_ context.Context, data store.GuidanceEventData) error {
	if f.err != nil {
		return f.err
	}
	f.events = append(f.events, data)
	return nil
}

func (f *fakeEventRepo) QueryGuidanceEvents(context.Context, store.QueryOpts) ([]store.GuidanceEventRecord, error) {
	return nil, nil
}

func (f *fakeEventRepo) GetGuidanceEvent(context.Context, int64) (*store.GuidanceEventRecord, error) {
	return nil, nil
}

func (f *fakeEventRepo) UsageByModel(context.Context) ([]store.ModelUsage, error) {
	return nil, nil
}

func TestLogging_RecordsSuccess(t *testing.T) {
	repo := &fakeEventRepo{}
	mock := NewMockProvider(MockResponse{
		Text:  "Chapter 2 speaks of the eternal self.",
		Usage: Usage{InputTokens: 50, OutputTokens: 20, TotalTokens: 70},
	})
	p := WithLogging(mock, repo)

	ctx := WithPurpose(WithSession(context.Background(), "sess-42"), "guidance")
	_, err := p.Generate(ctx, Request{
		System:   "You are a gentle guide.",
		Messages: []Message{{Role: RoleUser, Content: "What is the self?"}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(repo.events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(repo.events))
	}
	ev := repo.events[0]
	if !ev.Success {
		t.Error("event should be marked successful")
	}
	if ev.SessionID != "sess-42" {
		t.Errorf("SessionID = %q, want sess-42", ev.SessionID)
	}
	if ev.Purpose != "guidance" {
		t.Errorf("Purpose = %q, want guidance", ev.Purpose)
	}
	if ev.InputTokens != 50 || ev.OutputTokens != 20 {
		t.Errorf("tokens = %d/%d, want 50/20", ev.InputTokens, ev.OutputTokens)
	}
	if !strings.Contains(ev.RequestBody, "[system]") || !strings.Contains(ev.RequestBody, "What is the self?") {
		t.Errorf("request body missing parts:\n%s", ev.RequestBody)
	}
	if ev.ResponseBody != "Chapter 2 speaks of the eternal self." {
		t.Errorf("ResponseBody = %q", ev.ResponseBody)
	}
}

func TestLogging_RecordsFailure(t *testing.T) {
	repo := &fakeEventRepo{}
	mock := NewMockProvider(MockResponse{Err: &ErrProviderUnavailable{Err: errors.New("down")}})
	p := WithLogging(mock, repo)

	_, err := p.Generate(context.Background(), Request{})
	if err == nil {
		t.Fatal("expected error")
	}

	if len(repo.events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(repo.events))
	}
	ev := repo.events[0]
	if ev.Success {
		t.Error("event should be marked failed")
	}
	if ev.ErrorMessage == "" {
		t.Error("expected error message on failed event")
	}
}

func TestLogging_RepoFailureDoesNotFailRequest(t *testing.T) {
	repo := &fakeEventRepo{err: errors.New("table locked")}
	mock := NewMockProvider(MockResponse{Text: "ok"})
	p := WithLogging(mock, repo)

	resp, err := p.Generate(context.Background(), Request{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Text != "ok" {
		t.Fatalf("unexpected text: %s", resp.Text)
	}
}
