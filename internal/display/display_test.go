package display

import (
	"errors"
	"testing"

	"gocv.io/x/gocv"
)

func TestIsStopKey(t *testing.T) {
	tests := []struct {
		key  int
		want bool
	}{
		{'q', true},
		{'Q', true},
		{KeyEscape, true},
		{NoKey, false},
		{'a', false},
		{' ', false},
	}

	for _, tt := range tests {
		if got := IsStopKey(tt.key); got != tt.want {
			t.Errorf("IsStopKey(%d) = %v, want %v", tt.key, got, tt.want)
		}
	}
}

func TestMockDisplay_Keys(t *testing.T) {
	d := NewMockDisplay('a', 'q')
	defer d.Close()

	for i, want := range []int{'a', 'q', NoKey, NoKey} {
		if got := d.PollKey(); got != want {
			t.Errorf("PollKey() #%d = %d, want %d", i, got, want)
		}
	}
}

func TestMockDisplay_Show(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping test that requires GoCV Mat creation")
	}

	d := NewMockDisplay()

	frame := gocv.NewMatWithSize(48, 64, gocv.MatTypeCV8UC3)
	defer frame.Close()

	if err := d.Show(&frame); err != nil {
		t.Fatalf("Show() error = %v", err)
	}
	if d.Shown() != 1 {
		t.Errorf("Shown() = %d, want 1", d.Shown())
	}

	last := d.Last()
	if last.Cols() != 64 || last.Rows() != 48 {
		t.Errorf("last frame %dx%d, want 64x48", last.Cols(), last.Rows())
	}
	last.Close()

	d.Close()
	if err := d.Show(&frame); !errors.Is(err, ErrClosed) {
		t.Errorf("Show() after Close error = %v, want ErrClosed", err)
	}
}

func TestDisplayImplementations(t *testing.T) {
	var _ Display = (*MockDisplay)(nil)
	var _ Display = (*Window)(nil)
}

func TestWindow_CloseTwice(t *testing.T) {
	w := &Window{}
	if err := w.Close(); err != nil {
		t.Errorf("Close() on unopened window = %v", err)
	}
	if got := w.PollKey(); got != NoKey {
		t.Errorf("PollKey() on closed window = %d, want NoKey", got)
	}
}
