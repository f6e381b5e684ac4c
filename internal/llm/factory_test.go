package llm

import (
	"context"
	"errors"
	"testing"
	"time"
)

// deadlineProvider reports whether its context carried a deadline and
// blocks until the context is done when asked to.
type deadlineProvider struct {
	hadDeadline bool
	block       bool
}

func (d *deadlineProvider) Generate(ctx context.Context, _ Request) (*Response, error) {
	_, d.hadDeadline = ctx.Deadline()
	if d.block {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	return &Response{Text: "ok"}, nil
}

func (d *deadlineProvider) ModelID() string { return "deadline" }

func TestTimeoutProvider_SetsDeadline(t *testing.T) {
	inner := &deadlineProvider{}
	p := &timeoutProvider{inner: inner, timeout: time.Minute}

	resp, err := p.Generate(context.Background(), Request{})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if resp.Text != "ok" {
		t.Errorf("Text = %q, want %q", resp.Text, "ok")
	}
	if !inner.hadDeadline {
		t.Error("expected the inner provider to see a deadline")
	}
}

func TestTimeoutProvider_CancelsSlowRequest(t *testing.T) {
	inner := &deadlineProvider{block: true}
	p := &timeoutProvider{inner: inner, timeout: 10 * time.Millisecond}

	_, err := p.Generate(context.Background(), Request{})
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("Generate() error = %v, want deadline exceeded", err)
	}
}

func TestNewProvider_AppliesConfiguredTimeout(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Provider = "anthropic"
	cfg.Anthropic.APIKey = "test-key"

	p, err := NewProvider(context.Background(), cfg, &fakeEventRepo{})
	if err != nil {
		t.Fatalf("NewProvider() error = %v", err)
	}
	if _, ok := p.(*timeoutProvider); !ok {
		t.Fatalf("provider = %T, want the timeout wrapper outermost", p)
	}

	cfg.Timeout = 0
	p, err = NewProvider(context.Background(), cfg, &fakeEventRepo{})
	if err != nil {
		t.Fatalf("NewProvider() error = %v", err)
	}
	if _, ok := p.(*timeoutProvider); ok {
		t.Error("zero timeout should leave the chain unwrapped")
	}
}

func TestNewProvider_UnknownProvider(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Provider = "oracle"

	if _, err := NewProvider(context.Background(), cfg, &fakeEventRepo{}); err == nil {
		t.Fatal("expected an error for an unknown provider")
	}
}
