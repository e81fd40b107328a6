package chat

import (
	"fmt"
	"strings"
)

// ReplyRequest is one visitor turn sent to the chat widget responder.
type ReplyRequest struct {
	Message string `json:"message" validate:"required"`
}

func (r ReplyRequest) Validate() error {
	if strings.TrimSpace(r.Message) == "" {
		return fmt.Errorf("message is required")
	}
	return nil
}

// ReplyResponse is the assistant's answer for the widget transcript.
type ReplyResponse struct {
	Reply   string `json:"reply"`
	Matched bool   `json:"matched"`
}
