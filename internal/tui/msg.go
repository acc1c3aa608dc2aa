package tui

import "time"

// Msg is the interface for all TUI messages.
// This is a sealed interface - only types in this package can implement it.
//
// go-sumtype:decl Msg
type Msg interface {
	sealed()
}

// MsgTick is sent every second to advance the header clock.
type MsgTick struct {
	Time time.Time
}

func (MsgTick) sealed() {}

// MsgClockSynced is sent when the time source has answered.
type MsgClockSynced struct {
	Time   time.Time // Time reported by the source
	Local  time.Time // Local time when the answer arrived
	Remote bool      // True if Time came from the remote endpoint
}

func (MsgClockSynced) sealed() {}

// MsgClearStatus clears the status line if it still shows message Seq.
type MsgClearStatus struct {
	Seq int
}

func (MsgClearStatus) sealed() {}
