package tui

import "testing"

func TestMode_String(t *testing.T) {
	tests := []struct {
		want string
		mode Mode
	}{
		{mode: ModeLogin, want: "login"},
		{mode: ModeNormal, want: "normal"},
		{mode: ModeAdd, want: "add"},
		{mode: ModeEdit, want: "edit"},
		{mode: ModeDrag, want: "drag"},
		{mode: ModeConfirm, want: "confirm"},
		{mode: ModeHelp, want: "help"},
		{mode: Mode(99), want: "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.mode.String(); got != tt.want {
				t.Errorf("Mode.String() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMode_IsInputMode(t *testing.T) {
	tests := []struct {
		mode Mode
		want bool
	}{
		{ModeLogin, true},
		{ModeNormal, false},
		{ModeAdd, true},
		{ModeEdit, true},
		{ModeDrag, false},
		{ModeConfirm, false},
		{ModeHelp, false},
	}

	for _, tt := range tests {
		t.Run(tt.mode.String(), func(t *testing.T) {
			if got := tt.mode.IsInputMode(); got != tt.want {
				t.Errorf("Mode.IsInputMode() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestConfirmAction_String(t *testing.T) {
	if got := ConfirmDelete.String(); got != "delete" {
		t.Errorf("ConfirmDelete.String() = %q, want %q", got, "delete")
	}
	if got := ConfirmNone.String(); got != "" {
		t.Errorf("ConfirmNone.String() = %q, want empty", got)
	}
}

func TestFormField_Cycle(t *testing.T) {
	order := []FormField{FormClient, FormDescription, FormTeam, FormClient}
	for i := 0; i < len(order)-1; i++ {
		if got := order[i].Next(); got != order[i+1] {
			t.Errorf("%v.Next() = %v, want %v", order[i], got, order[i+1])
		}
		if got := order[i+1].Prev(); got != order[i] {
			t.Errorf("%v.Prev() = %v, want %v", order[i+1], got, order[i])
		}
	}
}
