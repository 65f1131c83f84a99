package services

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/jrsteele09/go-contest-portal/internal/errors"
)

type chatRequest struct {
	Prompt string `json:"prompt"`
}

type ChatReply struct {
	Response string `json:"response"`
}

// ChatError is an application-level failure reported in the body of a 2xx chat response
type ChatError struct {
	Message string
}

func (e *ChatError) Error() string {
	return "chat: " + e.Message
}

func (e *ChatError) Unwrap() error {
	return errors.ErrChatRejected
}

// Chat calls POST /ai/chat with {"prompt": prompt}
func (c *Client) Chat(ctx context.Context, token, prompt string) (*ChatReply, error) {
	const path = "/ai/chat"
	data, err := c.do(ctx, token, http.MethodPost, path, "chat", chatRequest{Prompt: prompt})
	if err != nil {
		return nil, err
	}

	var failure struct {
		Error json.RawMessage `json:"error"`
	}
	if json.Unmarshal(data, &failure) == nil {
		if msg := errorMessage(failure.Error); msg != "" {
			return nil, &ChatError{Message: msg}
		}
	}

	var reply ChatReply
	if err := decode(http.MethodPost, path, data, &reply); err != nil {
		return nil, err
	}
	return &reply, nil
}

// errorMessage accepts both "error": "text" and "error": {"message": "text"}.
// Absent, null, false and empty values are not errors.
func errorMessage(raw json.RawMessage) string {
	switch string(raw) {
	case "", "null", "false", `""`:
		return ""
	}
	var s string
	if json.Unmarshal(raw, &s) == nil {
		return s
	}
	var obj struct {
		Message string `json:"message"`
	}
	if json.Unmarshal(raw, &obj) == nil && obj.Message != "" {
		return obj.Message
	}
	return string(raw)
}
