package chat

import (
	"context"
	"encoding/base64"
	"log/slog"
	"sync"
)

type MessageRole string

const (
	RoleSystem MessageRole = "system"
	RoleUser   MessageRole = "user"
	RoleBot    MessageRole = "bot"
)

type Message struct {
	Role     MessageRole `json:"role"`
	Text     string      `json:"text,omitempty"`
	ImageURL string      `json:"image_url,omitempty"` // data URL for inline display
}

const welcomeText = "Hi! Send me a prompt (and optionally an image) and I'll generate a picture for you."
const errorText = "Sorry, I encountered an error. Please try again."

// Service holds one conversation per client token. A failed provider
// call becomes a single error bubble; there is no automatic retry and
// the conversation stays usable.
type Service struct {
	provider Provider
	log      *slog.Logger

	mu            sync.Mutex
	conversations map[string][]Message
}

func NewService(provider Provider, log *slog.Logger) *Service {
	return &Service{
		provider:      provider,
		log:           log,
		conversations: make(map[string][]Message),
	}
}

// Messages returns the conversation for the token, opening it with
// the system welcome bubble on first use.
func (s *Service) Messages(token string) []Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Message(nil), s.open(token)...)
}

// Send appends the user's bubble, asks the provider for an image and
// appends either the bot image bubble or an error bubble.
func (s *Service) Send(ctx context.Context, token, prompt string, image *Image) []Message {
	userMsg := Message{Role: RoleUser, Text: prompt}
	if image != nil {
		userMsg.ImageURL = dataURL(*image)
	}

	s.mu.Lock()
	conv := append(s.open(token), userMsg)
	s.conversations[token] = conv
	s.mu.Unlock()

	result, err := s.provider.Generate(ctx, Request{Prompt: prompt, Image: image})

	var botMsg Message
	if err != nil {
		s.log.Warn("chat_generate_failed", slog.Any("err", err))
		botMsg = Message{Role: RoleBot, Text: errorText}
	} else {
		botMsg = Message{Role: RoleBot, ImageURL: dataURL(result)}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.conversations[token] = append(s.conversations[token], botMsg)
	return append([]Message(nil), s.conversations[token]...)
}

// Reset drops the conversation for the token.
func (s *Service) Reset(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.conversations, token)
}

// open returns the live conversation slice; caller must hold s.mu.
func (s *Service) open(token string) []Message {
	conv, ok := s.conversations[token]
	if !ok {
		conv = []Message{{Role: RoleSystem, Text: welcomeText}}
		s.conversations[token] = conv
	}
	return conv
}

func dataURL(img Image) string {
	mime := img.MimeType
	if mime == "" {
		mime = "image/png"
	}
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(img.Data)
}
