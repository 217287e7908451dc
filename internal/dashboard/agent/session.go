// Package agent keeps the diagnostic chat: the current subject and the transcript, with a
// canned responder.
package agent

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/qiniu/pulseboard/internal/dashboard/clock"
	"github.com/qiniu/pulseboard/internal/dashboard/model"
)

// ReplyDelay is how long the responder takes to answer.
const ReplyDelay = time.Second

type ContextType string

const (
	ContextProject ContextType = "project"
	ContextMonitor ContextType = "monitor"
)

// Context is the subject the user is chatting about.
type Context struct {
	Type ContextType `json:"type" binding:"required,oneof=project monitor"`
	ID   string      `json:"id" binding:"required"`
	Name string      `json:"name"`
}

type Role string

const (
	RoleUser  Role = "user"
	RoleAgent Role = "agent"
)

type Message struct {
	ID        string `json:"id"`
	Role      Role   `json:"role"`
	Content   string `json:"content"`
	Timestamp int64  `json:"timestamp"`
}

type Session struct {
	mu       sync.RWMutex
	clk      clock.Clock
	context  *Context
	messages []Message
	pending  map[clock.Timer]struct{}
}

func NewSession(clk clock.Clock) *Session {
	return &Session{clk: clk, pending: make(map[clock.Timer]struct{})}
}

// SetContext replaces the chat subject; nil clears it. The transcript is kept.
func (s *Session) SetContext(c *Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if c == nil {
		s.context = nil
		return
	}
	cp := *c
	s.context = &cp
}

func (s *Session) Context() *Context {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.context == nil {
		return nil
	}
	cp := *s.context
	return &cp
}

func (s *Session) Messages() []Message {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]Message(nil), s.messages...)
}

// SendMessage appends the user's message and schedules the agent reply.
func (s *Session) SendMessage(content string) (Message, error) {
	if strings.TrimSpace(content) == "" {
		return Message{}, fmt.Errorf("message is empty: %w", model.ErrInvalidArgument)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	msg := s.appendLocked(RoleUser, content)

	var t clock.Timer
	t = s.clk.AfterFunc(ReplyDelay, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.pending, t)
		subject := "this project"
		if s.context != nil {
			subject = s.context.Name
		}
		s.appendLocked(RoleAgent, fmt.Sprintf("I received your message about %s: \"%s\". How would you like me to proceed?", subject, content))
	})
	s.pending[t] = struct{}{}
	return msg, nil
}

// Close cancels replies that have not been delivered yet.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for t := range s.pending {
		t.Stop()
	}
	s.pending = make(map[clock.Timer]struct{})
}

func (s *Session) appendLocked(role Role, content string) Message {
	m := Message{
		ID:        uuid.NewString(),
		Role:      role,
		Content:   content,
		Timestamp: s.clk.Now().UnixMilli(),
	}
	s.messages = append(s.messages, m)
	return m
}
