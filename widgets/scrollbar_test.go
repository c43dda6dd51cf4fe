package widgets

import (
	"strings"
	"testing"
)

func TestScrollbarThumb(t *testing.T) {
	tests := []struct {
		name     string
		bar      Scrollbar
		height   int
		wantTop  int
		wantSize int
	}{
		{name: "fits", bar: Scrollbar{Total: 5, Visible: 10}, height: 10, wantTop: 0, wantSize: 0},
		{name: "top", bar: Scrollbar{Total: 40, Visible: 10, Offset: 0}, height: 10, wantTop: 0, wantSize: 2},
		{name: "bottom", bar: Scrollbar{Total: 40, Visible: 10, Offset: 30}, height: 10, wantTop: 8, wantSize: 2},
		{name: "past end", bar: Scrollbar{Total: 40, Visible: 10, Offset: 99}, height: 10, wantTop: 8, wantSize: 2},
		{name: "tiny thumb", bar: Scrollbar{Total: 1000, Visible: 10, Offset: 495}, height: 10, wantTop: 4, wantSize: 1},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			top, size := tc.bar.Thumb(tc.height)
			if top != tc.wantTop || size != tc.wantSize {
				t.Fatalf("thumb = (%d,%d), want (%d,%d)", top, size, tc.wantTop, tc.wantSize)
			}
		})
	}
}

func TestScrollbarRender(t *testing.T) {
	out := Scrollbar{Total: 40, Visible: 10, Offset: 30}.Render(1, 10)
	lines := strings.Split(out, "\n")
	if len(lines) != 10 {
		t.Fatalf("line count = %d, want 10", len(lines))
	}
	if lines[9] != scrollThumb || lines[0] != scrollTrack {
		t.Fatalf("unexpected rows %q", lines)
	}
}
