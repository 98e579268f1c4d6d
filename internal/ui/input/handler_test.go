package input

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/jordannakamoto/ils/internal/config"
	statepkg "github.com/jordannakamoto/ils/internal/state"
)

func newTestHandler(state *statepkg.AppState) (*InputHandler, chan statepkg.Action) {
	actionChan := make(chan statepkg.Action, 4)
	handler := NewInputHandler(actionChan, config.DefaultKeybindings())
	handler.SetState(state)
	return handler, actionChan
}

func drain(ch chan statepkg.Action) []statepkg.Action {
	var out []statepkg.Action
	for {
		select {
		case a := <-ch:
			out = append(out, a)
		default:
			return out
		}
	}
}

func TestNormalModeMovementKeys(t *testing.T) {
	state := &statepkg.AppState{Mode: statepkg.Normal{}}
	handler, actionChan := newTestHandler(state)

	tests := []struct {
		name     string
		rune     rune
		wantDir  statepkg.Direction
		wantJump bool
	}{
		{"w moves up", 'w', statepkg.DirUp, false},
		{"s moves down", 's', statepkg.DirDown, false},
		{"a moves left", 'a', statepkg.DirLeft, false},
		{"d moves right", 'd', statepkg.DirRight, false},
		{"W jumps up", 'W', statepkg.DirUp, true},
		{"S jumps down", 'S', statepkg.DirDown, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler.ProcessEvent(tcell.NewEventKey(tcell.KeyRune, tt.rune, 0))
			actions := drain(actionChan)
			if len(actions) != 1 {
				t.Fatalf("expected one action, got %d", len(actions))
			}
			move, ok := actions[0].(statepkg.MoveAction)
			if !ok {
				t.Fatalf("expected MoveAction, got %T", actions[0])
			}
			if move.Dir != tt.wantDir || move.Jump != tt.wantJump {
				t.Errorf("MoveAction = %+v, want dir %v jump %v", move, tt.wantDir, tt.wantJump)
			}
		})
	}
}

func TestEscapeQuitsWithChangeDir(t *testing.T) {
	state := &statepkg.AppState{Mode: statepkg.Normal{}}
	handler, actionChan := newTestHandler(state)

	if cont := handler.ProcessEvent(tcell.NewEventKey(tcell.KeyEscape, 0, 0)); cont {
		t.Error("escape should stop the input loop")
	}
	actions := drain(actionChan)
	if len(actions) != 1 {
		t.Fatalf("expected one action, got %d", len(actions))
	}
	if _, ok := actions[0].(statepkg.QuitChangeDirAction); !ok {
		t.Errorf("expected QuitChangeDirAction, got %T", actions[0])
	}
}

func TestUppercaseQReveals(t *testing.T) {
	state := &statepkg.AppState{Mode: statepkg.Normal{}}
	handler, actionChan := newTestHandler(state)

	if cont := handler.ProcessEvent(tcell.NewEventKey(tcell.KeyRune, 'Q', 0)); cont {
		t.Error("reveal should stop the input loop")
	}
	actions := drain(actionChan)
	if len(actions) != 1 {
		t.Fatalf("expected one action, got %d", len(actions))
	}
	if _, ok := actions[0].(statepkg.RevealAction); !ok {
		t.Errorf("expected RevealAction, got %T", actions[0])
	}
}

func TestFuzzyModeRoutesRunesToQuery(t *testing.T) {
	state := &statepkg.AppState{Mode: statepkg.FuzzyFind{}}
	handler, actionChan := newTestHandler(state)

	handler.ProcessEvent(tcell.NewEventKey(tcell.KeyRune, 'x', 0))
	actions := drain(actionChan)
	if len(actions) != 1 {
		t.Fatalf("expected one action, got %d", len(actions))
	}
	ch, ok := actions[0].(statepkg.FuzzyCharAction)
	if !ok || ch.Char != 'x' {
		t.Errorf("expected FuzzyCharAction{x}, got %#v", actions[0])
	}

	handler.ProcessEvent(tcell.NewEventKey(tcell.KeyEnter, 0, 0))
	actions = drain(actionChan)
	if len(actions) != 2 {
		t.Fatalf("enter should cancel then open, got %d actions", len(actions))
	}
	if _, ok := actions[0].(statepkg.FuzzyCancelAction); !ok {
		t.Errorf("expected FuzzyCancelAction first, got %T", actions[0])
	}
	if _, ok := actions[1].(statepkg.OpenAction); !ok {
		t.Errorf("expected OpenAction second, got %T", actions[1])
	}
}

func TestFuzzyModeQuitKeysKeepExitIntents(t *testing.T) {
	state := &statepkg.AppState{Mode: statepkg.FuzzyFind{}}
	handler, actionChan := newTestHandler(state)

	if cont := handler.ProcessEvent(tcell.NewEventKey(tcell.KeyRune, 'q', 0)); cont {
		t.Error("quit key should stop the input loop")
	}
	actions := drain(actionChan)
	if len(actions) != 1 {
		t.Fatalf("expected one action, got %d", len(actions))
	}
	if _, ok := actions[0].(statepkg.QuitAction); !ok {
		t.Errorf("expected QuitAction, got %T", actions[0])
	}

	if cont := handler.ProcessEvent(tcell.NewEventKey(tcell.KeyRune, 'Q', 0)); cont {
		t.Error("reveal should stop the input loop")
	}
	actions = drain(actionChan)
	if len(actions) != 1 {
		t.Fatalf("expected one action, got %d", len(actions))
	}
	if _, ok := actions[0].(statepkg.RevealAction); !ok {
		t.Errorf("expected RevealAction, got %T", actions[0])
	}
}

func TestPromptModeCollectsText(t *testing.T) {
	state := &statepkg.AppState{Mode: statepkg.Prompt{Kind: statepkg.PromptNewFile}}
	handler, actionChan := newTestHandler(state)

	handler.ProcessEvent(tcell.NewEventKey(tcell.KeyRune, 'x', 0))
	handler.ProcessEvent(tcell.NewEventKey(tcell.KeyBackspace2, 0, 0))
	handler.ProcessEvent(tcell.NewEventKey(tcell.KeyEnter, 0, 0))

	actions := drain(actionChan)
	if len(actions) != 3 {
		t.Fatalf("expected three actions, got %d", len(actions))
	}
	if _, ok := actions[0].(statepkg.PromptCharAction); !ok {
		t.Errorf("expected PromptCharAction, got %T", actions[0])
	}
	if _, ok := actions[1].(statepkg.PromptBackspaceAction); !ok {
		t.Errorf("expected PromptBackspaceAction, got %T", actions[1])
	}
	if _, ok := actions[2].(statepkg.PromptConfirmAction); !ok {
		t.Errorf("expected PromptConfirmAction, got %T", actions[2])
	}
}

func TestHelpModeDismissesOnAnyKey(t *testing.T) {
	state := &statepkg.AppState{Mode: statepkg.Help{}}
	handler, actionChan := newTestHandler(state)

	handler.ProcessEvent(tcell.NewEventKey(tcell.KeyRune, 'z', 0))
	actions := drain(actionChan)
	if len(actions) != 1 {
		t.Fatalf("expected one action, got %d", len(actions))
	}
	if _, ok := actions[0].(statepkg.HelpToggleAction); !ok {
		t.Errorf("expected HelpToggleAction, got %T", actions[0])
	}
}

func TestSuppressWindowDropsKeys(t *testing.T) {
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	state := &statepkg.AppState{
		Mode:              statepkg.Normal{},
		SuppressKeysUntil: now.Add(300 * time.Millisecond),
	}
	handler, actionChan := newTestHandler(state)
	handler.now = func() time.Time { return now }

	handler.ProcessEvent(tcell.NewEventKey(tcell.KeyRune, 's', 0))
	if actions := drain(actionChan); len(actions) != 0 {
		t.Fatalf("keys inside the suppress window must be dropped, got %v", actions)
	}

	handler.now = func() time.Time { return now.Add(time.Second) }
	handler.ProcessEvent(tcell.NewEventKey(tcell.KeyRune, 's', 0))
	if actions := drain(actionChan); len(actions) != 1 {
		t.Fatalf("keys after the window must pass, got %d", len(actions))
	}
}

func TestResizeEventEmitsResizeAction(t *testing.T) {
	state := &statepkg.AppState{Mode: statepkg.Normal{}}
	handler, actionChan := newTestHandler(state)

	handler.ProcessEvent(tcell.NewEventResize(90, 28))
	actions := drain(actionChan)
	if len(actions) != 1 {
		t.Fatalf("expected one action, got %d", len(actions))
	}
	resize, ok := actions[0].(statepkg.ResizeAction)
	if !ok || resize.Width != 90 || resize.Height != 28 {
		t.Errorf("expected ResizeAction{90, 28}, got %#v", actions[0])
	}
}
