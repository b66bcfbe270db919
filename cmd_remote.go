package main

import (
	"errors"
	"fmt"

	"github.com/pstuifzand/tui-codesurfer/internal/socket"
	"github.com/spf13/cobra"
)

var remoteSocket string

// remoteCmd controls a running player
var remoteCmd = &cobra.Command{
	Use:   "remote COMMAND [STEP]",
	Short: "Control a running player",
	Long: `Sends a command to the most recently started player.

Commands: next, prev, first, last, goto STEP, status.`,
	Args:      cobra.RangeArgs(1, 2),
	ValidArgs: []string{socket.CommandNext, socket.CommandPrev, socket.CommandFirst, socket.CommandLast, socket.CommandGoto, socket.CommandStatus},
	RunE: func(cmd *cobra.Command, args []string) error {
		msg, err := remoteMessage(args)
		if err != nil {
			return err
		}

		path := remoteSocket
		if path == "" {
			if path, _, err = socket.FindRunningInstance(socket.DefaultDir()); err != nil {
				return err
			}
		}
		client, err := socket.NewClient(path)
		if err != nil {
			return err
		}

		response, err := client.Send(msg)
		if err != nil {
			return err
		}
		if !response.Success {
			return errors.New(response.Message)
		}

		w := cmd.OutOrStdout()
		if response.Title != "" {
			fmt.Fprintf(w, "%s %s\n", response.Message, response.Title)
		} else {
			fmt.Fprintln(w, response.Message)
		}
		return nil
	},
}

func init() {
	remoteCmd.Flags().StringVar(&remoteSocket, "socket", "", "Socket of the player to control")
}

// remoteMessage builds the message for the command line arguments
func remoteMessage(args []string) (socket.Message, error) {
	msg := socket.Message{Command: args[0]}
	if !socket.Known(msg.Command) {
		return msg, fmt.Errorf("unknown command %q", msg.Command)
	}
	if msg.Command == socket.CommandGoto {
		if len(args) != 2 {
			return msg, fmt.Errorf("goto needs a step")
		}
		msg.Step = args[1]
	} else if len(args) > 1 {
		return msg, fmt.Errorf("%s takes no step", msg.Command)
	}
	return msg, nil
}
