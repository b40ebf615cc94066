package input

import (
	"testing"

	"github.com/veandco/go-sdl2/sdl"
)

func TestTranslate(t *testing.T) {
	tests := []struct {
		name  string
		event sdl.Event
		want  Event
		ok    bool
	}{
		{
			name:  "quit",
			event: &sdl.QuitEvent{Type: sdl.QUIT},
			want:  Event{Type: EventQuit},
			ok:    true,
		},
		{
			name:  "resize",
			event: &sdl.WindowEvent{Type: sdl.WINDOWEVENT, Event: sdl.WINDOWEVENT_RESIZED, Data1: 1024, Data2: 768},
			want:  Event{Type: EventResize, Width: 1024, Height: 768},
			ok:    true,
		},
		{
			name:  "window focus is ignored",
			event: &sdl.WindowEvent{Type: sdl.WINDOWEVENT, Event: sdl.WINDOWEVENT_FOCUS_GAINED},
			ok:    false,
		},
		{
			name:  "key down",
			event: &sdl.KeyboardEvent{Type: sdl.KEYDOWN, Keysym: sdl.Keysym{Scancode: sdl.SCANCODE_R}},
			want:  Event{Type: EventKeyDown, Key: sdl.SCANCODE_R},
			ok:    true,
		},
		{
			name:  "key repeat is ignored",
			event: &sdl.KeyboardEvent{Type: sdl.KEYDOWN, Repeat: 1, Keysym: sdl.Keysym{Scancode: sdl.SCANCODE_R}},
			ok:    false,
		},
		{
			name:  "key up is ignored",
			event: &sdl.KeyboardEvent{Type: sdl.KEYUP, Keysym: sdl.Keysym{Scancode: sdl.SCANCODE_R}},
			ok:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := translate(tt.event)
			if ok != tt.ok {
				t.Fatalf("ok = %v, want %v", ok, tt.ok)
			}
			if ok && got != tt.want {
				t.Errorf("event = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestResizedAndKeys(t *testing.T) {
	in := New()
	in.events = append(in.events,
		Event{Type: EventResize, Width: 640, Height: 480},
		Event{Type: EventKeyDown, Key: sdl.SCANCODE_SPACE},
		Event{Type: EventResize, Width: 800, Height: 600},
	)

	w, h, ok := in.Resized()
	if !ok || w != 800 || h != 600 {
		t.Errorf("Resized() = %d, %d, %v; want last resize 800x600", w, h, ok)
	}
	if !in.IsKeyPressed(sdl.SCANCODE_SPACE) {
		t.Error("expected space to be pressed")
	}
	if in.IsKeyPressed(sdl.SCANCODE_ESCAPE) {
		t.Error("escape was not pressed")
	}

	in.events = in.events[:0]
	if _, _, ok := in.Resized(); ok {
		t.Error("expected no resize on an empty frame")
	}
}
