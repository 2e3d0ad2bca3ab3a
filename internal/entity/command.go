package entity

const (
	CommandMove  CommandAction = "move"
	CommandReset CommandAction = "reset"
)

// CommandAction names what a Command does to the board.
type CommandAction string

// Command is a change requested by a player. Commands are relayed between
// server processes and applied by each of them in delivery order, so every
// engine sees the same sequence. Cell is used by CommandMove only.
type Command struct {
	ID     string        `json:"id"`
	Action CommandAction `json:"action"`
	Cell   int           `json:"cell,omitempty"`
}
