package notify

import (
	"sync"

	log "github.com/sirupsen/logrus"
)

// Notifier is the sink for transient user-facing notifications. Engines emit
// into it on mutations; they never block on it and never read back.
type Notifier interface {
	Success(msg string)
	Info(msg string)
	Error(msg string)
}

// LogNotifier writes notifications to the structured log.
type LogNotifier struct{}

// NewLog returns a log-backed notifier.
func NewLog() *LogNotifier { return &LogNotifier{} }

func (LogNotifier) Success(msg string) { log.WithField("kind", "success").Info(msg) }
func (LogNotifier) Info(msg string)    { log.WithField("kind", "info").Info(msg) }
func (LogNotifier) Error(msg string)   { log.WithField("kind", "error").Warn(msg) }

// Message is a captured notification.
type Message struct {
	Kind string
	Text string
}

// Capture records notifications in memory. Used in tests to assert on what
// the engines emitted.
type Capture struct {
	mu       sync.Mutex
	messages []Message
}

func (c *Capture) Success(msg string) { c.append("success", msg) }
func (c *Capture) Info(msg string)    { c.append("info", msg) }
func (c *Capture) Error(msg string)   { c.append("error", msg) }

func (c *Capture) append(kind, text string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.messages = append(c.messages, Message{Kind: kind, Text: text})
}

// Messages returns a copy of everything captured so far.
func (c *Capture) Messages() []Message {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Message, len(c.messages))
	copy(out, c.messages)
	return out
}

// Last returns the most recent message, if any.
func (c *Capture) Last() (Message, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.messages) == 0 {
		return Message{}, false
	}
	return c.messages[len(c.messages)-1], true
}
