package socket

// Message represents a command sent to a running player
type Message struct {
	Command string `json:"command"`
	Step    string `json:"step,omitempty"` // step number or title, for goto

	// ResponseChan is set for commands whose reply depends on the player
	ResponseChan chan *Response `json:"-"`
}

// Response represents the response from the server
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Step    int    `json:"step,omitempty"` // 1-based
	Steps   int    `json:"steps,omitempty"`
	Title   string `json:"title,omitempty"`
}

// Command types
const (
	CommandNext   = "next"
	CommandPrev   = "prev"
	CommandFirst  = "first"
	CommandLast   = "last"
	CommandGoto   = "goto"
	CommandStatus = "status"
)

// synchronous reports whether the client waits for the player's answer
func synchronous(command string) bool {
	return command == CommandGoto || command == CommandStatus
}

// Known reports whether command is understood by the player
func Known(command string) bool {
	switch command {
	case CommandNext, CommandPrev, CommandFirst, CommandLast, CommandGoto, CommandStatus:
		return true
	}
	return false
}
