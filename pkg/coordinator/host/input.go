package host

// InputKind is what the user asked for on the current screen.
type InputKind int

const (
	InputNext   InputKind = iota // Any key without a meaning of its own
	InputSelect                  // A numbered menu entry, see Input.Index
	InputBack                    // Return to the previous screen
	InputQuit                    // Close the application
)

// Input is a single user action read from a host.
type Input struct {
	Kind  InputKind
	Index int // Zero-based menu index for InputSelect
}

// InputSource is implemented by hosts that can wait for user input.
// ok is false when no further input will arrive.
type InputSource interface {
	NextInput() (input Input, ok bool)
}

// Script queues inputs for NextInput, turning the headless host into an
// InputSource that replays a fixed session.
func (h *Headless) Script(inputs ...Input) {
	h.script = append(h.script, inputs...)
}

func (h *Headless) NextInput() (Input, bool) {
	if len(h.script) == 0 {
		return Input{}, false
	}
	input := h.script[0]
	h.script = h.script[1:]
	return input, true
}
