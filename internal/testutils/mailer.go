package testutils

import (
	"errors"
	"sync"
)

// SentCode one confirmation mail captured by FakeMailer
type SentCode struct {
	From     string
	To       string
	Username string
	Code     string
}

// FakeMailer records confirmation mails instead of sending them
type FakeMailer struct {
	mu   sync.Mutex
	Sent []SentCode
	Fail bool
}

func (m *FakeMailer) SendConfirmationCode(from, to, username, code string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Fail {
		return errors.New("smtp unavailable")
	}
	m.Sent = append(m.Sent, SentCode{From: from, To: to, Username: username, Code: code})
	return nil
}

// Last returns the most recent mail, zero when none was sent.
func (m *FakeMailer) Last() SentCode {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.Sent) == 0 {
		return SentCode{}
	}
	return m.Sent[len(m.Sent)-1]
}
