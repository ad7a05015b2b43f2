package service

import (
	"context"

	"github.com/atelier-lumen/backend/pkg/llm"
)

// systemPrompt frames the assistant as the agency's receptionist. Replies stay
// in the visitor's language; pricing questions are redirected to the contact
// form.
const systemPrompt = `Tu es l'assistant virtuel d'Atelier Lumen, une agence de création de sites web basée en France. ` +
	`Tu réponds de façon concise et chaleureuse aux questions des visiteurs sur nos services : développement web, webdesign et consultation. ` +
	`Pour toute demande de devis ou de tarif précis, invite le visiteur à utiliser le formulaire de contact. ` +
	`Réponds dans la langue du visiteur.`

// chatServiceImpl is the production implementation of ChatService.
type chatServiceImpl struct {
	client llm.Client
}

// NewChatService creates a ChatService backed by the given LLM client.
func NewChatService(client llm.Client) ChatService {
	return &chatServiceImpl{client: client}
}

// Send wraps the visitor message with the agency system prompt and forwards
// it to the model.
func (s *chatServiceImpl) Send(ctx context.Context, message string) (string, error) {
	return s.client.Complete(ctx, []llm.Message{
		{Role: "system", Content: systemPrompt},
		{Role: "user", Content: message},
	})
}
