package app

// PanelID identifies which pane has focus.
type PanelID int

const (
	PanelList PanelID = iota
	PanelTool
)

// String returns the panel name for debugging.
func (p PanelID) String() string {
	switch p {
	case PanelList:
		return "List"
	case PanelTool:
		return "Tool"
	default:
		return "Unknown"
	}
}

// other returns the pane that is not p.
func (p PanelID) other() PanelID {
	if p == PanelList {
		return PanelTool
	}
	return PanelList
}
