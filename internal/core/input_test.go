package core

import (
	"testing"
	"time"
)

func TestInputFrame(t *testing.T) {
	var f InputFrame // zero value must be usable

	if f.Has(ActionJump) {
		t.Error("zero frame should have no actions")
	}

	f.Set(ActionJump)
	f.Set(ActionShoot)
	f.Elapsed = 16 * time.Millisecond

	if !f.Has(ActionJump) || !f.Has(ActionShoot) {
		t.Error("frame should report set actions")
	}
	if f.Has(ActionStart) {
		t.Error("frame should not report unset actions")
	}

	f.Clear()
	if f.Has(ActionJump) || f.Elapsed != 0 {
		t.Errorf("Clear() left state behind: %+v", f)
	}
}

func TestActionString(t *testing.T) {
	tests := map[Action]string{
		ActionNone:  "None",
		ActionJump:  "Jump",
		ActionShoot: "Shoot",
		ActionStart: "Start",
		ActionQuit:  "Quit",
		Action(99):  "Unknown",
	}
	for a, want := range tests {
		if got := a.String(); got != want {
			t.Errorf("Action(%d).String() = %q, expected %q", a, got, want)
		}
	}
}

func TestPhaseString(t *testing.T) {
	if PhaseMenu.String() != "menu" || PhasePlaying.String() != "playing" || PhaseGameOver.String() != "gameOver" {
		t.Error("unexpected phase names")
	}
	if !(GameState{Phase: PhaseGameOver}).GameOver() {
		t.Error("GameOver() should be true in gameOver phase")
	}
}
