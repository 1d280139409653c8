package panels

// PanelID identifies one full-screen panel; declaration order is the cycle order
type PanelID int

const (
	Start PanelID = iota
	Mid
	Donut
	Canvas
	End

	panelCount
)

// AllPanels lists every panel in cycle order
var AllPanels = [panelCount]PanelID{Start, Mid, Donut, Canvas, End}

func (p PanelID) String() string {
	switch p {
	case Start:
		return "start"
	case Mid:
		return "mid"
	case Donut:
		return "donut"
	case Canvas:
		return "canvas"
	case End:
		return "end"
	default:
		return "unknown"
	}
}

// Next returns the following panel, wrapping from the last to the first
func (p PanelID) Next() PanelID {
	return (p + 1) % panelCount
}

// Prev returns the preceding panel, wrapping from the first to the last
func (p PanelID) Prev() PanelID {
	return (p + panelCount - 1) % panelCount
}

// EndSide is the highlighted half of the end panel
type EndSide int

const (
	Left EndSide = iota
	Right
)

func (s EndSide) String() string {
	if s == Right {
		return "right"
	}
	return "left"
}

// Other returns the opposite side
func (s EndSide) Other() EndSide {
	if s == Left {
		return Right
	}
	return Left
}

// Active is the selected panel with its payload.
// Side is meaningful only while ID is End and resets to Left on entry.
type Active struct {
	ID   PanelID
	Side EndSide
}

// Next moves to the following panel
func (a Active) Next() Active {
	return Active{ID: a.ID.Next()}
}

// Prev moves to the preceding panel
func (a Active) Prev() Active {
	return Active{ID: a.ID.Prev()}
}
