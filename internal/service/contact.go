package service

import (
	"context"
	"strings"

	"github.com/folio/internal/db"
	"github.com/folio/internal/store"
)

// ContactInput 描述联系表单。
type ContactInput struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Message string `json:"message" validate:"required"`
}

// ContactService 接收联系留言，不经过审核直接写入。
type ContactService struct {
	messages store.Repository[db.ContactMessage]
}

// NewContactService 构造 ContactService。
func NewContactService(messages store.Repository[db.ContactMessage]) *ContactService {
	return &ContactService{messages: messages}
}

// Submit 校验必填项后写入一条留言。
func (s *ContactService) Submit(ctx context.Context, input ContactInput) error {
	input = ContactInput{
		Name:    cleanText(input.Name),
		Email:   strings.TrimSpace(input.Email),
		Message: cleanText(input.Message),
	}
	if err := validateInput(input); err != nil {
		return err
	}

	message := db.ContactMessage{
		Name:    input.Name,
		Email:   input.Email,
		Message: input.Message,
	}
	if err := s.messages.Insert(ctx, &message); err != nil {
		return storeError("submit contact message", err)
	}
	return nil
}

// List 返回全部留言，最新的在前。
func (s *ContactService) List(ctx context.Context) ([]db.ContactMessage, error) {
	messages, err := s.messages.ListAll(ctx)
	if err != nil {
		return nil, storeError("list contact messages", err)
	}
	return messages, nil
}

// Delete 物理删除一条留言。
func (s *ContactService) Delete(ctx context.Context, id string) error {
	if err := s.messages.Delete(ctx, id); err != nil {
		return storeError("delete contact message", err)
	}
	return nil
}
