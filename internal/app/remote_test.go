package app

import (
	"testing"

	"github.com/pstuifzand/tui-codesurfer/internal/socket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRemoteNavigation(t *testing.T) {
	a, _, _ := newTestApp(t)

	a.handleRemote(socket.Message{Command: socket.CommandNext})
	assert.Equal(t, 1, a.Step())

	a.handleRemote(socket.Message{Command: socket.CommandLast})
	assert.Equal(t, 2, a.Step())

	a.handleRemote(socket.Message{Command: socket.CommandPrev})
	assert.Equal(t, 1, a.Step())

	a.handleRemote(socket.Message{Command: socket.CommandFirst})
	assert.Equal(t, 0, a.Step())
}

func TestRemoteGoto(t *testing.T) {
	a, _, _ := newTestApp(t)

	msg := socket.Message{Command: socket.CommandGoto, Step: "say hi", ResponseChan: make(chan *socket.Response, 1)}
	a.handleRemote(msg)

	r := <-msg.ResponseChan
	require.True(t, r.Success, r.Message)
	assert.Equal(t, 2, r.Step)
	assert.Equal(t, 3, r.Steps)
	assert.Equal(t, "Say hi", r.Title)
	assert.Equal(t, 1, a.Step())
}

func TestRemoteGotoUnknownStep(t *testing.T) {
	a, _, _ := newTestApp(t)

	msg := socket.Message{Command: socket.CommandGoto, Step: "zzzz", ResponseChan: make(chan *socket.Response, 1)}
	a.handleRemote(msg)

	r := <-msg.ResponseChan
	assert.False(t, r.Success)
	assert.Contains(t, r.Message, "zzzz")
	assert.Equal(t, 0, a.Step())
}

func TestRemoteStatus(t *testing.T) {
	a, _, _ := newTestApp(t)

	msg := socket.Message{Command: socket.CommandStatus, ResponseChan: make(chan *socket.Response, 1)}
	a.handleRemote(msg)

	r := <-msg.ResponseChan
	assert.True(t, r.Success)
	assert.Equal(t, "1/3", r.Message)
	assert.Equal(t, "Empty main", r.Title)
}
