package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"ring-snake/game"
	"ring-snake/game/types"
)

type Input struct{}

func NewInput() *Input {
	return &Input{}
}

// Poll drains the keys pressed since the last frame and returns the one
// intent to feed the next tick. Quit wins over everything; while crashed
// any other key restarts; otherwise the first turn that is not a reversal
// is kept and later keys are dropped.
func (in *Input) Poll(g *game.Game) types.Intent {
	if rl.WindowShouldClose() {
		return types.IntentQuit
	}
	intent := types.IntentNone
	for key := rl.GetKeyPressed(); key != 0; key = rl.GetKeyPressed() {
		if isQuitKey(key) {
			return types.IntentQuit
		}
		if intent != types.IntentNone {
			continue
		}
		if next, ok := KeyIntent(key, g.Crashed(), g.Direction()); ok {
			intent = next
		}
	}
	return intent
}

func isQuitKey(key int32) bool {
	return key == rl.KeyEscape || key == rl.KeyQ
}

// KeyIntent maps one key press to an intent given the game's crashed flag
// and heading. It reports false for keys that should not use up the
// frame's intent.
func KeyIntent(key int32, crashed bool, heading types.Direction) (types.Intent, bool) {
	if isQuitKey(key) {
		return types.IntentQuit, true
	}
	if crashed {
		return types.IntentRestart, true
	}

	var intent types.Intent
	switch key {
	case rl.KeyUp, rl.KeyW:
		intent = types.IntentUp
	case rl.KeyDown, rl.KeyS:
		intent = types.IntentDown
	case rl.KeyLeft, rl.KeyA:
		intent = types.IntentLeft
	case rl.KeyRight, rl.KeyD:
		intent = types.IntentRight
	default:
		return types.IntentNone, false
	}
	if intent.Direction() == heading.Opposite() {
		return types.IntentNone, false
	}
	return intent, true
}
