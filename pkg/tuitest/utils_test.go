package tuitest

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripANSI(t *testing.T) {
	in := "\x1b[1mtodos\x1b[0m   \n\x1b[31m[ ]\x1b[0m milk  \n\n"
	assert.Equal(t, "todos\n[ ] milk", StripANSI(in))
}

func TestKeyStrings(t *testing.T) {
	assert.Equal(t, "j", KeyPress('j').String())
	assert.Equal(t, "enter", KeyEnter().String())
	assert.Equal(t, "tab", KeyTab().String())
	assert.Equal(t, "esc", KeyEsc().String())
	assert.Equal(t, "ctrl+c", CtrlC().String())
	assert.Len(t, Type("abc"), 3)
}
