package app

import (
	"fmt"

	"github.com/pstuifzand/tui-codesurfer/internal/socket"
	"github.com/pstuifzand/tui-codesurfer/internal/storage"
	"go.uber.org/zap"
)

// Listen makes the player obey commands received from a remote control
func (a *App) Listen(msgs <-chan socket.Message) {
	a.remote = msgs
}

// handleRemote processes a command received from the Unix socket
func (a *App) handleRemote(msg socket.Message) {
	a.logger.Debug("Received remote command", zap.String("command", msg.Command), zap.String("step", msg.Step))

	switch msg.Command {
	case socket.CommandNext:
		a.GoTo(a.step + 1)
	case socket.CommandPrev:
		a.GoTo(a.step - 1)
	case socket.CommandFirst:
		a.GoTo(0)
	case socket.CommandLast:
		a.GoTo(a.surfer.StepCount() - 1)
	case socket.CommandGoto:
		step, err := storage.ResolveStep(a.deck, msg.Step)
		if err != nil {
			a.respond(msg, &socket.Response{Message: err.Error()})
			return
		}
		a.GoTo(step)
	case socket.CommandStatus:
	default:
		a.logger.Warn("Unknown remote command", zap.String("command", msg.Command))
		a.respond(msg, &socket.Response{Message: fmt.Sprintf("Unknown command: %s", msg.Command)})
		return
	}

	a.respond(msg, a.remoteStatus())
}

func (a *App) remoteStatus() *socket.Response {
	r := &socket.Response{
		Success: true,
		Step:    a.step + 1,
		Steps:   a.surfer.StepCount(),
	}
	if a.step < len(a.deck.Steps) {
		r.Title = a.deck.Steps[a.step].Title
	}
	r.Message = fmt.Sprintf("%d/%d", r.Step, r.Steps)
	return r
}

// respond answers synchronous commands; asynchronous ones were already
// acknowledged by the server
func (a *App) respond(msg socket.Message, r *socket.Response) {
	if msg.ResponseChan == nil {
		return
	}
	select {
	case msg.ResponseChan <- r:
	default:
	}
}
