package service

import "context"

// ChatService forwards visitor messages to the assistant and returns its
// reply.
type ChatService interface {
	Send(ctx context.Context, message string) (string, error)
}
