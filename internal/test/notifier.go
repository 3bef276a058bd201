package test

import (
	"context"
	"sync"
)

// SentMessage is a notification captured by NotifierStub.
type SentMessage struct {
	Phone   string
	Message string
}

// NotifierStub records notifications and answers with Result.
type NotifierStub struct {
	mu     sync.Mutex
	Sent   []SentMessage
	Result bool
}

func (n *NotifierStub) Notify(_ context.Context, phone, message string) bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.Sent = append(n.Sent, SentMessage{Phone: phone, Message: message})
	return n.Result
}

// Messages returns a snapshot of recorded notifications.
func (n *NotifierStub) Messages() []SentMessage {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]SentMessage(nil), n.Sent...)
}
