package email

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildMessage(t *testing.T) {
	tests := []struct {
		name    string
		msg     Message
		wantErr bool
	}{
		{"missing sender", Message{To: []string{"a@b.c"}, Subject: "s"}, true},
		{"missing recipient", Message{From: "x@y.z", Subject: "s"}, true},
		{"missing subject", Message{From: "x@y.z", To: []string{"a@b.c"}}, true},
		{"valid", Message{From: "x@y.z", To: []string{"a@b.c", "d@e.f"}, Subject: "s", Body: "hello"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw, err := buildMessage(&tt.msg)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			s := string(raw)
			assert.True(t, strings.HasPrefix(s, "From: x@y.z\r\n"))
			assert.Contains(t, s, "To: a@b.c, d@e.f\r\n")
			assert.Contains(t, s, "Content-Type: text/plain; charset=UTF-8\r\n")
			assert.True(t, strings.HasSuffix(s, "\r\n\r\nhello"))
			assert.NotContains(t, s, "Cc:")
		})
	}
}

func TestConfirmationCodeTemplate(t *testing.T) {
	body, err := confirmationCodeTemplate.Render(ConfirmationCodeData{Username: "<alice>", Code: "c0de"})
	require.NoError(t, err)

	assert.Contains(t, body, "c0de")
	assert.Contains(t, body, "&lt;alice&gt;")
}
