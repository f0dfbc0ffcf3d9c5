package notify

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeMailer struct {
	mu    sync.Mutex
	sends []string
}

func (f *fakeMailer) Send(to, subject, htmlBody string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sends = append(f.sends, htmlBody)
	return nil
}

func (f *fakeMailer) last() (string, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.sends) == 0 {
		return "", false
	}
	return f.sends[len(f.sends)-1], true
}

func TestDispatch_MailConNombre(t *testing.T) {
	mailer := &fakeMailer{}
	d := NewDispatcher(mailer)

	d.Dispatch(Event{
		To:           "cliente@gmail.com",
		ClienteName:  "Marta",
		TallerNombre: "Taller Palermo",
		Fecha:        "2025-06-15",
		Hora:         10,
	})

	require.Eventually(t, func() bool {
		_, ok := mailer.last()
		return ok
	}, time.Second, 10*time.Millisecond)

	body, _ := mailer.last()
	assert.Contains(t, body, "Hola Marta,")
	assert.Contains(t, body, "Taller Palermo")
	assert.Contains(t, body, "2025-06-15")
	assert.Contains(t, body, "10:00:00")
}

func TestConfirmationBody_SinNombre(t *testing.T) {
	body := confirmationBody(Event{
		TallerNombre: "Taller Palermo",
		Fecha:        "2025-06-15",
		Hora:         9,
	})

	assert.Contains(t, body, "Hola,")
	assert.NotContains(t, body, "Hola ,")
	assert.Contains(t, body, "09:00:00")
}
