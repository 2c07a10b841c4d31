package chatsvc

import (
	"context"
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/mongo"

	"rentabook/mapper"
	"rentabook/model"
	"rentabook/util/apperr"
)

type ChatRepo interface {
	ByID(ctx context.Context, id string) (*model.Chat, error)
	ByUser(ctx context.Context, userID string) ([]model.Chat, error)
	InsertMessage(ctx context.Context, m *model.ChatMessage) error
	Messages(ctx context.Context, chatID string) ([]model.ChatMessage, error)
}

type UserRepo interface {
	ByID(ctx context.Context, id string) (*model.User, error)
}

// Publisher pushes new messages to connected websocket clients. The hub
// implements it; tests use a no-op.
type Publisher interface {
	Publish(chatID string, v any)
}

type Service interface {
	Mine(ctx context.Context, userID string) ([]mapper.ChatView, error)
	Messages(ctx context.Context, userID, chatID string) ([]mapper.ChatMessageView, error)
	Send(ctx context.Context, userID, chatID, content string) (*mapper.ChatMessageView, error)

	// Participant reports whether the user belongs to the chat; the
	// websocket handler gates subscriptions on it.
	Participant(ctx context.Context, userID, chatID string) (bool, error)
}

type service struct {
	cr  ChatRepo
	ur  UserRepo
	pub Publisher
}

func New(cr ChatRepo, ur UserRepo, pub Publisher) Service {
	return &service{cr: cr, ur: ur, pub: pub}
}

func (s *service) Mine(ctx context.Context, userID string) ([]mapper.ChatView, error) {
	chats, err := s.cr.ByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := make([]mapper.ChatView, 0, len(chats))
	for i := range chats {
		c := &chats[i]
		owner, err := s.ur.ByID(ctx, c.OwnerUserID)
		if err != nil {
			return nil, notFound(err, "owner user not found")
		}
		lead, err := s.ur.ByID(ctx, c.LeadUserID)
		if err != nil {
			return nil, notFound(err, "lead user not found")
		}
		out = append(out, mapper.ToChatView(c, owner, lead))
	}
	return out, nil
}

func (s *service) Messages(ctx context.Context, userID, chatID string) ([]mapper.ChatMessageView, error) {
	if err := s.requireParticipant(ctx, userID, chatID); err != nil {
		return nil, err
	}
	msgs, err := s.cr.Messages(ctx, chatID)
	if err != nil {
		return nil, err
	}
	out := make([]mapper.ChatMessageView, 0, len(msgs))
	for i := range msgs {
		out = append(out, mapper.ToChatMessageView(&msgs[i]))
	}
	return out, nil
}

func (s *service) Send(ctx context.Context, userID, chatID, content string) (*mapper.ChatMessageView, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, apperr.New(apperr.ErrBadInput, "empty message")
	}
	if err := s.requireParticipant(ctx, userID, chatID); err != nil {
		return nil, err
	}

	m := &model.ChatMessage{
		ChatID:   chatID,
		SenderID: userID,
		Content:  content,
	}
	if err := s.cr.InsertMessage(ctx, m); err != nil {
		return nil, err
	}

	v := mapper.ToChatMessageView(m)
	if s.pub != nil {
		s.pub.Publish(chatID, v)
	}
	return &v, nil
}

func (s *service) Participant(ctx context.Context, userID, chatID string) (bool, error) {
	c, err := s.cr.ByID(ctx, chatID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return false, apperr.New(apperr.ErrNotFound, "chat not found")
		}
		return false, err
	}
	return c.OwnerUserID == userID || c.LeadUserID == userID, nil
}

func (s *service) requireParticipant(ctx context.Context, userID, chatID string) error {
	ok, err := s.Participant(ctx, userID, chatID)
	if err != nil {
		return err
	}
	if !ok {
		return apperr.New(apperr.ErrNotParticipant, "not a participant of this chat")
	}
	return nil
}

func notFound(err error, msg string) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return apperr.New(apperr.ErrNotFound, msg)
	}
	return err
}
