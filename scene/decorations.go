package scene

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/weathr/parameter"
	"github.com/lixenwraith/weathr/parameter/visual"
	"github.com/lixenwraith/weathr/render"
)

var (
	treeArt = []string{
		"      ####      ",
		"    ########    ",
		"   ##########   ",
		"    ########    ",
		"      _||_      ",
	}
	fenceArt = []string{
		"|--|--|--|--|",
		"|  |  |  |  |",
	}
	mailboxArt = []string{
		" ___ ",
		"|___|",
		"  |  ",
	}
	pineArt = []string{
		"    *    ",
		"   ***   ",
		"  *****  ",
		" ******* ",
		"   |||   ",
	}
)

type decoration struct {
	art   []string
	x, y  int
	color tcell.Color
}

// decorationsFor places the tree, mailbox, fence and, on wide terminals, a
// pine. Pieces that would start off screen are left out.
func decorationsFor(l Layout, day bool) []decoration {
	treeColor, fenceColor, mailColor := visual.DarkGreen, visual.White, visual.Blue
	if !day {
		treeColor, fenceColor, mailColor = visual.NightGrass, visual.Grey, visual.DarkBlue
	}

	var out []decoration
	treeX := l.HouseX - parameter.TreeOffsetX
	if treeX > 0 {
		out = append(out, decoration{treeArt, treeX, l.Horizon - parameter.TreeRise, treeColor})
	}

	fenceX := l.HouseX + parameter.HouseWidth + parameter.FenceGap
	if fenceX < l.Width {
		out = append(out, decoration{fenceArt, fenceX, l.Horizon - parameter.FenceRise, fenceColor})
	}

	mailX := max(treeX-parameter.MailboxOffsetX, 0)
	out = append(out, decoration{mailboxArt, mailX, l.Horizon - parameter.MailboxRise, mailColor})

	if l.Width > parameter.PineMinWidth {
		pineX := l.HouseX + parameter.HouseWidth + parameter.PineOffsetX
		if pineX+parameter.PineClearance < l.Width {
			out = append(out, decoration{pineArt, pineX, l.Horizon - parameter.PineRise, treeColor})
		}
	}
	return out
}

func drawDecorations(cv render.Canvas, l Layout, day bool) {
	for _, d := range decorationsFor(l, day) {
		render.PutArt(cv, d.x, d.y, d.art, d.color)
	}
}
