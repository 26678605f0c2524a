package core

// Action represents a semantic game action, abstracted from physical key
// presses. The platform maps keys to actions; game code never sees raw keys.
type Action int

const (
	ActionNone      Action = iota
	ActionUp               // W, Up arrow, K - move one cell up
	ActionDown             // S, Down arrow, J - move one cell down
	ActionLeft             // A, Left arrow, H - move one cell left
	ActionRight            // D, Right arrow, L - move one cell right
	ActionDashUp           // Shift+Up - move up until the boundary
	ActionDashDown         // Shift+Down - move down until the boundary
	ActionDashLeft         // Shift+Left - move left until the boundary
	ActionDashRight        // Shift+Right - move right until the boundary
	ActionConfirm          // Enter - start round / confirm selection
	ActionBack             // B, Escape - back to menu
	ActionRestart          // R - reset the board
	ActionToggleFill       // F - toggle fill mode (fill-up rules)
	ActionToggleTrail      // T - toggle trail display (pick-up rules)
	ActionScores           // Tab - open scoreboard from the menu
	ActionQuit             // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionDashUp:
		return "DashUp"
	case ActionDashDown:
		return "DashDown"
	case ActionDashLeft:
		return "DashLeft"
	case ActionDashRight:
		return "DashRight"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionToggleFill:
		return "ToggleFill"
	case ActionToggleTrail:
		return "ToggleTrail"
	case ActionScores:
		return "Scores"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}
