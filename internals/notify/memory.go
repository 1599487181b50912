package notify

import "sync"

// Message is one recorded dispatch, kept by the in-memory senders.
type Message struct {
	To      string
	Subject string
	Body    string
}

// MemoryMailer records email instead of sending it. Used in tests.
type MemoryMailer struct {
	mu       sync.Mutex
	Messages []Message
}

func NewMemoryMailer() *MemoryMailer {
	return &MemoryMailer{}
}

func (m *MemoryMailer) SendMail(to string, subject string, body string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Messages = append(m.Messages, Message{To: to, Subject: subject, Body: body})
	return nil
}

// Sent returns a copy of everything recorded so far.
func (m *MemoryMailer) Sent() []Message {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Message, len(m.Messages))
	copy(out, m.Messages)
	return out
}

// MemorySMS records text messages instead of sending them. Used in tests.
type MemorySMS struct {
	mu       sync.Mutex
	Messages []Message
}

func NewMemorySMS() *MemorySMS {
	return &MemorySMS{}
}

func (m *MemorySMS) SendSMS(to string, body string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Messages = append(m.Messages, Message{To: to, Body: body})
	return nil
}

func (m *MemorySMS) Sent() []Message {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Message, len(m.Messages))
	copy(out, m.Messages)
	return out
}
