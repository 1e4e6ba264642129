package input

// Kind identifies a discrete command produced by the controller.
type Kind uint8

// The commands a frame of input can produce. Pans move by half the visible
// extent, zooms double or halve the magnification.
const (
	PanLeft Kind = iota + 1
	PanRight
	PanUp
	PanDown
	ZoomIn
	ZoomOut
	TogglePause
	KillCell
)

var kindNames = map[Kind]string{
	PanLeft:     "pan-left",
	PanRight:    "pan-right",
	PanUp:       "pan-up",
	PanDown:     "pan-down",
	ZoomIn:      "zoom-in",
	ZoomOut:     "zoom-out",
	TogglePause: "toggle-pause",
	KillCell:    "kill-cell",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Command is one action for the session. Row and Col are set for KillCell.
type Command struct {
	Kind Kind
	Row  int
	Col  int
}
