package constants

// Panel Text
const (
	StartTitle    = "This is the start!"
	StartHint     = "Press left/right to advance screen"
	StartGreeting = "Hello my friend"
	StartQuitHint = "Press Esc to quit/escape"
	StartListNote = "Also here is a random list for no reason at all!"

	MidText = "This is mid render! Isn't it peak? I'm going to wrap this text haha lol!"
	MidHint = "Press up/down to increase/decrease!"

	DonutTitle = "A simple donut, spinning at last"
	DonutHint  = "up/down: distance  tab: spin"

	CanvasTitle = "A simple canvas demonstration"
	CanvasHint  = "tab: animate  up/down: step while frozen"

	EndLeftTitle  = "Press tab to"
	EndRightTitle = "switch colour!"
	EndLeftText   = "PEAK LEFT"
	EndLeftSub    = "yes"
	EndRightText  = "PEAK RIGHT"
	EndRightSub   = "no"
)

// EndBorderBlend is how far a half's border color leans toward its fill (Lab space)
const EndBorderBlend = 0.3

// StartListItems names the entries cycled by the start panel highlight
var StartListItems = []string{"Start", "Mid", "End"}

// StartListSymbol prefixes the highlighted list entry
const StartListSymbol = "-"

// MidBoxHeightFactor scales the mid panel frame height from its text height
const MidBoxHeightFactor = 7
