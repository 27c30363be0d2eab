package console

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingFocuser struct{ calls int }

func (f *countingFocuser) Focus() { f.calls++ }

func TestPrintFramesMessage(t *testing.T) {
	var out bytes.Buffer
	focus := &countingFocuser{}
	c := New(strings.NewReader(""), &out, focus)

	c.Print("hello")
	c.Printf("[%s] #%d", "us", 1)

	r := strings.Repeat("-", 96)
	assert.Equal(t, r+"\nhello\n"+r+"\n"+r+"\n[us] #1\n"+r+"\n", out.String())
	assert.Equal(t, 2, focus.calls)
}

func TestPrintlnIsUnframed(t *testing.T) {
	var out bytes.Buffer
	focus := &countingFocuser{}
	c := New(strings.NewReader(""), &out, focus)

	c.Println("Press any key to exit.")
	assert.Equal(t, "Press any key to exit.\n", out.String())
	assert.Zero(t, focus.calls)
}

func TestReadLine(t *testing.T) {
	c := New(strings.NewReader("us\r\nMusic\nlast"), &bytes.Buffer{}, nil)

	for _, want := range []string{"us", "Music", "last", ""} {
		got, err := c.ReadLine()
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestReadKey(t *testing.T) {
	c := New(strings.NewReader("x"), &bytes.Buffer{}, nil)
	require.NoError(t, c.ReadKey())
	// closed input still returns
	require.NoError(t, c.ReadKey())
}
