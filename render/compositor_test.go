package render

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/weathr/terminal"
)

// recorder captures emitter calls as a readable op log
type recorder struct {
	ops      []string
	writes   int
	clears   int
	flushErr error
}

func (r *recorder) MoveTo(x, y int) { r.ops = append(r.ops, fmt.Sprintf("move %d,%d", x, y)) }
func (r *recorder) SetColor(c tcell.Color) { r.ops = append(r.ops, fmt.Sprintf("color %d", c)) }
func (r *recorder) ResetColor() { r.ops = append(r.ops, "reset") }
func (r *recorder) ClearScreen() { r.clears++ }
func (r *recorder) Flush() error { return r.flushErr }
func (r *recorder) WriteRune(ch rune) {
	r.writes++
	r.ops = append(r.ops, "rune "+string(ch))
}

func (r *recorder) reset() {
	r.ops = nil
	r.writes = 0
	r.clears = 0
}

func newTestCompositor(w, h int) (*Compositor, *recorder) {
	rec := &recorder{}
	c := NewCompositor(rec, terminal.ColorTrueColor, w, h)
	// Settle the initial clear
	if err := c.Flush(); err != nil {
		panic(err)
	}
	rec.reset()
	return c, rec
}

func TestFlushEmitsOnlyChanges(t *testing.T) {
	c, rec := newTestCompositor(100, 30)

	c.Clear()
	c.Put(10, 5, '*', tcell.ColorWhite)
	if err := c.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}
	if rec.writes != 1 {
		t.Fatalf("first flush wrote %d cells, want 1", rec.writes)
	}
	if rec.ops[0] != "move 10,5" {
		t.Errorf("first op = %q, want move 10,5", rec.ops[0])
	}

	rec.reset()
	c.Clear()
	c.Put(10, 5, '*', tcell.ColorWhite)
	if err := c.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}
	if rec.writes != 0 {
		t.Errorf("identical frame wrote %d cells, want 0", rec.writes)
	}
}

func TestFlushErasesRemovedCells(t *testing.T) {
	c, rec := newTestCompositor(20, 5)

	c.Put(3, 3, 'o', tcell.ColorYellow)
	c.Flush()
	rec.reset()

	c.Clear()
	c.Flush()
	if rec.writes != 1 {
		t.Fatalf("wrote %d cells, want 1", rec.writes)
	}
	joined := strings.Join(rec.ops, ";")
	if !strings.Contains(joined, "move 3,3") || !strings.Contains(joined, "rune  ") {
		t.Errorf("expected blank written at 3,3, got %s", joined)
	}
}

func TestFlushCoalescesAdjacentCells(t *testing.T) {
	c, rec := newTestCompositor(20, 5)

	PutString(c, 2, 1, "abc", tcell.ColorAqua)
	c.Flush()

	want := []string{
		"move 2,1",
		fmt.Sprintf("color %d", tcell.ColorAqua),
		"rune a", "rune b", "rune c",
		"reset",
	}
	if strings.Join(rec.ops, ";") != strings.Join(want, ";") {
		t.Errorf("ops = %v, want %v", rec.ops, want)
	}
}

func TestFlushRepositionsAfterGap(t *testing.T) {
	c, rec := newTestCompositor(20, 5)

	c.Put(1, 0, 'a', tcell.ColorWhite)
	c.Put(5, 0, 'b', tcell.ColorWhite)
	c.Put(0, 1, 'c', tcell.ColorWhite)
	c.Flush()

	moves := 0
	colors := 0
	for _, op := range rec.ops {
		if strings.HasPrefix(op, "move") {
			moves++
		}
		if strings.HasPrefix(op, "color") {
			colors++
		}
	}
	if moves != 3 {
		t.Errorf("moves = %d, want 3", moves)
	}
	if colors != 1 {
		t.Errorf("color changes = %d, want 1", colors)
	}
}

func TestFlushErrorKeepsPrevious(t *testing.T) {
	c, rec := newTestCompositor(10, 3)
	rec.flushErr = errors.New("broken pipe")

	c.Put(0, 0, 'x', tcell.ColorWhite)
	if err := c.Flush(); err == nil {
		t.Fatal("expected flush error")
	}

	rec.flushErr = nil
	rec.reset()
	c.Flush()
	if rec.writes != 1 {
		t.Errorf("unflushed cell should be retried, wrote %d", rec.writes)
	}
}

func TestPutOutOfBounds(t *testing.T) {
	c, _ := newTestCompositor(10, 4)

	coords := [][2]int{{-1, 0}, {0, -1}, {10, 0}, {0, 4}, {100, 100}, {-50, 2}}
	for _, xy := range coords {
		c.Put(xy[0], xy[1], '#', tcell.ColorRed)
	}
	for y := 0; y < 4; y++ {
		for x := 0; x < 10; x++ {
			if c.Cell(x, y) != blankCell {
				t.Fatalf("cell %d,%d modified by out-of-bounds write", x, y)
			}
		}
	}
}

func TestPutAdaptsColor(t *testing.T) {
	rec := &recorder{}
	c := NewCompositor(rec, terminal.ColorBasic, 10, 4)

	c.Put(1, 1, '#', tcell.NewRGBColor(210, 180, 140))
	if got := c.Cell(1, 1).Color; got != tcell.ColorWhite {
		t.Errorf("basic support stored %v, want white", got)
	}

	c = NewCompositor(rec, terminal.ColorNone, 10, 4)
	c.Put(1, 1, '#', tcell.ColorYellow)
	if got := c.Cell(1, 1).Color; got != tcell.ColorReset {
		t.Errorf("no color support stored %v, want reset", got)
	}
}

func TestFlash(t *testing.T) {
	c, _ := newTestCompositor(6, 2)

	c.Put(0, 0, '|', tcell.ColorYellow)
	c.Flash()

	for y := 0; y < 2; y++ {
		for x := 0; x < 6; x++ {
			if got := c.Cell(x, y).Color; got != tcell.ColorWhite {
				t.Fatalf("cell %d,%d color %v after flash", x, y, got)
			}
		}
	}
	if c.Cell(0, 0).Rune != '|' {
		t.Error("flash must keep glyphs")
	}
}

func TestResize(t *testing.T) {
	c, rec := newTestCompositor(10, 4)

	c.Put(2, 2, 'x', tcell.ColorWhite)
	c.Resize(10, 4)
	if c.Cell(2, 2).Rune != 'x' {
		t.Error("same-size resize must not reallocate")
	}

	c.Resize(30, 8)
	if w, h := c.Size(); w != 30 || h != 8 {
		t.Fatalf("Size() = %d,%d, want 30,8", w, h)
	}
	if c.Cell(2, 2) != blankCell {
		t.Error("resize must reset to blanks")
	}
	c.Put(29, 7, 'z', tcell.ColorWhite)
	c.Flush()
	if rec.clears != 1 {
		t.Errorf("clears = %d, want 1 after resize", rec.clears)
	}
	if rec.writes != 1 {
		t.Errorf("writes = %d, want 1", rec.writes)
	}
}

func TestPutLinesCentered(t *testing.T) {
	c, _ := newTestCompositor(20, 4)

	PutLinesCentered(c, 1, []string{"ab", "abcd"}, tcell.ColorYellow)
	// Widest line is 4 so block starts at column 8
	if c.Cell(8, 1).Rune != 'a' || c.Cell(9, 1).Rune != 'b' {
		t.Error("first line not left-aligned in centered block")
	}
	if c.Cell(11, 2).Rune != 'd' {
		t.Error("second line misplaced")
	}
}

func TestPutArtSkipsSpaces(t *testing.T) {
	c, _ := newTestCompositor(10, 3)

	c.Put(1, 0, '#', tcell.ColorRed)
	PutArt(c, 0, 0, []string{"a b"}, tcell.ColorWhite)
	if c.Cell(1, 0).Rune != '#' {
		t.Error("space in art overwrote existing cell")
	}
	if c.Cell(2, 0).Rune != 'b' {
		t.Error("art glyph missing")
	}
}

func TestBlend(t *testing.T) {
	black := tcell.NewRGBColor(0, 0, 0)
	white := tcell.NewRGBColor(255, 255, 255)

	if got := Blend(black, white, 0); got != black {
		t.Errorf("t=0 gave %v", got)
	}
	if got := Blend(black, white, 1); got != white {
		t.Errorf("t=1 gave %v", got)
	}
	mid := Blend(black, white, 0.5)
	r, g, b := mid.RGB()
	if r < 60 || r > 200 || absDiff(r, g) > 2 || absDiff(g, b) > 2 {
		t.Errorf("midpoint %d,%d,%d not a mid gray", r, g, b)
	}
	if got := Blend(tcell.ColorReset, white, 0.2); got != tcell.ColorReset {
		t.Errorf("reset blend gave %v", got)
	}
}

func absDiff(a, b int32) int32 {
	if a > b {
		return a - b
	}
	return b - a
}
