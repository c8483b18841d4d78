package notify

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWriter_Notify(t *testing.T) {
	var buf bytes.Buffer
	w := Writer{W: &buf}

	w.Notify(MsgCreated)
	w.Notify(MsgDeleted)

	assert.Equal(t, MsgCreated+"\n"+MsgDeleted+"\n", buf.String())
}

func TestRecorder(t *testing.T) {
	r := &Recorder{}
	assert.Equal(t, "", r.Last())

	r.Notify("a")
	r.Notify("b")

	assert.Equal(t, []string{"a", "b"}, r.Messages())
	assert.Equal(t, "b", r.Last())
}

func TestFunc(t *testing.T) {
	var got string
	Func(func(m string) { got = m }).Notify("hello")
	assert.Equal(t, "hello", got)

	assert.NotPanics(t, func() { Discard.Notify("ignored") })
}

func TestToast_AutoDismiss(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	toast := NewToast(3 * time.Second)

	toast.Show(MsgCreated, start)
	assert.Equal(t, MsgCreated, toast.Message(start))
	assert.Equal(t, MsgCreated, toast.Message(start.Add(2999*time.Millisecond)))
	assert.Equal(t, "", toast.Message(start.Add(3*time.Second)))
}

func TestToast_NewerMessageWins(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	toast := NewToast(0)
	assert.Equal(t, DefaultToastDuration, toast.Duration())

	first := toast.Show("first", start)
	second := toast.Show("second", start.Add(time.Second))

	// Таймер первого сообщения не должен скрыть второе
	toast.Expire(first)
	assert.Equal(t, "second", toast.Message(start.Add(2*time.Second)))

	toast.Expire(second)
	assert.Equal(t, "", toast.Message(start.Add(2*time.Second)))
}

func TestQueue_Drain(t *testing.T) {
	q := &Queue{}
	assert.Empty(t, q.Drain())

	q.Notify(MsgCreated)
	q.Notify(MsgDeleted)
	assert.Equal(t, []string{MsgCreated, MsgDeleted}, q.Drain())
	assert.Empty(t, q.Drain())
}
