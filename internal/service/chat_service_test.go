package service

import (
	"context"
	"errors"
	"testing"

	"github.com/atelier-lumen/backend/pkg/llm"
)

type mockLLMClient struct {
	completeFunc func(ctx context.Context, messages []llm.Message) (string, error)
}

func (m *mockLLMClient) Complete(ctx context.Context, messages []llm.Message) (string, error) {
	if m.completeFunc != nil {
		return m.completeFunc(ctx, messages)
	}
	return "", nil
}

func TestChatService_Send_PrependsSystemPrompt(t *testing.T) {
	var gotMessages []llm.Message
	mock := &mockLLMClient{
		completeFunc: func(ctx context.Context, messages []llm.Message) (string, error) {
			gotMessages = messages
			return "Bonjour !", nil
		},
	}
	svc := NewChatService(mock)

	reply, err := svc.Send(context.Background(), "Proposez-vous des refontes de site ?")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if reply != "Bonjour !" {
		t.Errorf("reply = %q, want %q", reply, "Bonjour !")
	}

	if len(gotMessages) != 2 {
		t.Fatalf("len(messages) = %d, want 2", len(gotMessages))
	}
	if gotMessages[0].Role != "system" || gotMessages[0].Content == "" {
		t.Errorf("first message = %+v, want non-empty system prompt", gotMessages[0])
	}
	if gotMessages[1].Role != "user" || gotMessages[1].Content != "Proposez-vous des refontes de site ?" {
		t.Errorf("second message = %+v, want the visitor message", gotMessages[1])
	}
}

func TestChatService_Send_PropagatesClientError(t *testing.T) {
	wantErr := errors.New("upstream down")
	mock := &mockLLMClient{
		completeFunc: func(ctx context.Context, messages []llm.Message) (string, error) {
			return "", wantErr
		},
	}
	svc := NewChatService(mock)

	_, err := svc.Send(context.Background(), "hello")
	if !errors.Is(err, wantErr) {
		t.Errorf("err = %v, want %v", err, wantErr)
	}
}
