package httpdto

import (
	"fmt"
	"strings"
)

// ChatRequest accepts whatever JSON type the caller put under "message";
// it is coerced to a string before validation.
type ChatRequest struct {
	Message interface{} `json:"message"`
}

// MessageText coerces the message to a trimmed string. A missing or null
// message coerces to the empty string.
func (r ChatRequest) MessageText() string {
	if r.Message == nil {
		return ""
	}
	s, ok := r.Message.(string)
	if !ok {
		s = fmt.Sprint(r.Message)
	}
	return strings.TrimSpace(s)
}

type ChatReply struct {
	Reply string `json:"reply"`
}

// ChatUsage documents POST /chat for callers who GET it by mistake.
type ChatUsage struct {
	Error   string      `json:"error"`
	Example interface{} `json:"example"`
}
