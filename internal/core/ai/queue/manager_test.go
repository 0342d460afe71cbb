package queue

import (
	"context"
	"errors"
	"testing"
	"time"

	"fridge-planner/internal/core/ai/provider"
	"fridge-planner/internal/infrastructure/config"
)

// stubProvider テスト用の固定応答プロバイダ
type stubProvider struct {
	response string
	err      error
	delay    time.Duration
}

func (p *stubProvider) Generate(ctx context.Context, req *provider.Request) (*provider.Response, error) {
	if p.delay > 0 {
		select {
		case <-time.After(p.delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if p.err != nil {
		return nil, p.err
	}
	return &provider.Response{Content: p.response}, nil
}

func (p *stubProvider) GetModel() string          { return "stub" }
func (p *stubProvider) GetTimeout() time.Duration { return time.Second }
func (p *stubProvider) Close() error              { return nil }

func newTestManager(t *testing.T, p provider.Provider) *Manager {
	t.Helper()

	cfg := &config.Config{
		Queue: config.QueueConfig{Workers: 2, MaxSize: 4},
	}
	m := NewManager(cfg)
	m.Start(p)
	t.Cleanup(m.Close)
	return m
}

func TestDispatch(t *testing.T) {
	m := newTestManager(t, &stubProvider{response: "こんにちは"})

	resp, err := m.Dispatch(context.Background(), &provider.Request{Prompt: "挨拶して"})
	if err != nil {
		t.Fatalf("Dispatch() error = %v", err)
	}
	if resp.Content != "こんにちは" {
		t.Errorf("Content = %q, want こんにちは", resp.Content)
	}
}

func TestDispatchPropagatesError(t *testing.T) {
	wantErr := errors.New("provider down")
	m := newTestManager(t, &stubProvider{err: wantErr})

	_, err := m.Dispatch(context.Background(), &provider.Request{Prompt: "x"})
	if !errors.Is(err, wantErr) {
		t.Errorf("Dispatch() error = %v, want %v", err, wantErr)
	}
}

func TestDispatchContextCancel(t *testing.T) {
	m := newTestManager(t, &stubProvider{response: "遅い", delay: time.Second})

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := m.Dispatch(ctx, &provider.Request{Prompt: "x"})
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Dispatch() error = %v, want deadline exceeded", err)
	}
}

func TestGetQueueStatus(t *testing.T) {
	m := newTestManager(t, &stubProvider{response: "ok"})

	if _, err := m.Dispatch(context.Background(), &provider.Request{Prompt: "x"}); err != nil {
		t.Fatalf("Dispatch() error = %v", err)
	}

	status := m.GetQueueStatus()
	if status.Workers != 2 {
		t.Errorf("Workers = %d, want 2", status.Workers)
	}
	if status.MaxQueueSize != 4 {
		t.Errorf("MaxQueueSize = %d, want 4", status.MaxQueueSize)
	}
	if status.ProcessedCount < 1 {
		t.Errorf("ProcessedCount = %d, want >= 1", status.ProcessedCount)
	}
}

func TestEnqueueAfterClose(t *testing.T) {
	cfg := &config.Config{
		Queue: config.QueueConfig{Workers: 1, MaxSize: 2},
	}
	m := NewManager(cfg)
	m.Start(&stubProvider{response: "ok"})
	m.Close()

	if _, err := m.Enqueue(context.Background(), &provider.Request{Prompt: "x"}); err == nil {
		t.Error("Enqueue() after Close should return error")
	}
}
