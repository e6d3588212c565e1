package component

// GameStateKind is the turn stepper's top-level state. Only Playing,
// Selection, SkillMenu and ClassMenu translate input into an Action;
// the rest are terminal or menu states the external shell renders.
type GameStateKind uint8

const (
	GameStatePlaying GameStateKind = iota
	GameStateWin
	GameStateLose
	GameStateInventory
	GameStateSelection
	GameStateSkillMenu
	GameStateClassMenu
	GameStateConfirmQuit
)

// TakesTurn reports whether input is translated into a gameplay
// Action (and thus can advance turn_count) in this state.
func (g GameStateKind) TakesTurn() bool {
	switch g {
	case GameStatePlaying, GameStateSelection, GameStateSkillMenu, GameStateClassMenu:
		return true
	default:
		return false
	}
}
