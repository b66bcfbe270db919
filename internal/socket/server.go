package socket

import (
	"encoding/json"
	"fmt"
	"io"
	"net"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
)

// Server represents a Unix socket server for accepting remote control commands
type Server struct {
	socketPath string
	listener   net.Listener
	msgChan    chan Message
	stopChan   chan struct{}
	logger     *zap.Logger
}

// DefaultDir returns the directory player sockets are created in
func DefaultDir() string {
	// Use XDG_RUNTIME_DIR if available, otherwise fall back to ~/.local/share
	if xdgRuntime := os.Getenv("XDG_RUNTIME_DIR"); xdgRuntime != "" {
		return filepath.Join(xdgRuntime, "surf")
	}
	return filepath.Join(os.Getenv("HOME"), ".local", "share", "surf")
}

// socketName is the file name of the socket for a player process
func socketName(pid int) string {
	return fmt.Sprintf("surf-%d.sock", pid)
}

// NewServer creates a new Unix socket server in dir
func NewServer(dir string, pid int, logger *zap.Logger) (*Server, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	// Create socket directory if it doesn't exist
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("failed to create socket directory: %w", err)
	}

	socketPath := filepath.Join(dir, socketName(pid))

	// Remove existing socket if it exists
	if err := os.RemoveAll(socketPath); err != nil {
		return nil, fmt.Errorf("failed to remove existing socket: %w", err)
	}

	listener, err := net.Listen("unix", socketPath)
	if err != nil {
		return nil, fmt.Errorf("failed to listen on socket: %w", err)
	}

	logger.Info("Socket server listening", zap.String("path", socketPath))

	return &Server{
		socketPath: socketPath,
		listener:   listener,
		msgChan:    make(chan Message, 10), // Buffer up to 10 messages
		stopChan:   make(chan struct{}),
		logger:     logger,
	}, nil
}

// Start begins accepting connections on the socket
func (s *Server) Start() {
	go s.acceptLoop()
}

// acceptLoop continuously accepts new connections
func (s *Server) acceptLoop() {
	for {
		conn, err := s.listener.Accept()
		if err != nil {
			// Check if we're shutting down
			select {
			case <-s.stopChan:
				return
			default:
				s.logger.Warn("Error accepting connection", zap.Error(err))
				continue
			}
		}
		go s.handleConnection(conn)
	}
}

// handleConnection processes a single client connection
func (s *Server) handleConnection(conn net.Conn) {
	defer conn.Close()

	decoder := json.NewDecoder(conn)
	encoder := json.NewEncoder(conn)
	reply := func(r *Response) {
		if err := encoder.Encode(r); err != nil {
			s.logger.Debug("Error writing response", zap.Error(err))
		}
	}

	var msg Message
	if err := decoder.Decode(&msg); err != nil {
		if err != io.EOF {
			s.logger.Warn("Error decoding message", zap.Error(err))
		}
		reply(&Response{Message: fmt.Sprintf("Invalid message format: %v", err)})
		return
	}

	// Validate command
	if msg.Command == "" {
		reply(&Response{Message: "Missing command field"})
		return
	}
	if !Known(msg.Command) {
		reply(&Response{Message: fmt.Sprintf("Unknown command: %s", msg.Command)})
		return
	}

	if synchronous(msg.Command) {
		msg.ResponseChan = make(chan *Response, 1)
	}

	// Send message to channel for processing
	select {
	case s.msgChan <- msg:
		// For synchronous commands, wait for response
		if msg.ResponseChan != nil {
			select {
			case response := <-msg.ResponseChan:
				reply(response)
			case <-time.After(10 * time.Second):
				reply(&Response{Message: "Command timed out"})
			}
		} else {
			// For async commands, acknowledge immediately
			reply(&Response{Success: true, Message: "Command queued"})
		}
	case <-s.stopChan:
		reply(&Response{Message: "Server is shutting down"})
	}
}

// Messages returns the channel for receiving messages
func (s *Server) Messages() <-chan Message {
	return s.msgChan
}

// SocketPath returns the path to the Unix socket
func (s *Server) SocketPath() string {
	return s.socketPath
}

// Stop stops the server and cleans up resources
func (s *Server) Stop() {
	close(s.stopChan)
	if s.listener != nil {
		s.listener.Close()
	}
	// Clean up socket file
	if s.socketPath != "" {
		os.Remove(s.socketPath)
	}
	s.logger.Info("Socket server stopped")
}
