package game

import (
	"fmt"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"

	"starfield/field"
)

var hudFace = text.NewGoXFace(basicfont.Face7x13)

const keyHelp = "P pause  M reduced motion  T/G/U twinkle/glow/pulse\n" +
	"SPACE shooting star  S shower  A auto  +/- speed  R reset  F1 stats"

// drawHUD draws the stats overlay in the top-left corner
func drawHUD(screen *ebiten.Image, e *field.Engine, fx effects, profiling bool) {
	stats := e.Stats()
	perf := e.Performance()

	var b strings.Builder
	fmt.Fprintf(&b, "%s | %.0f fps | dpr %.1f\n", perf.State, perf.FPS, e.DPR())
	fmt.Fprintf(&b, "stars %d | shooting %d | interval %v\n", stats.Stars, stats.ShootingStars, e.ShootingStarInterval())
	for _, c := range field.Categories {
		fmt.Fprintf(&b, "%s %d  ", c, stats.Types[c])
	}
	b.WriteString("\n")
	fmt.Fprintf(&b, "twinkle %d%s | glow %d%s | pulse %d%s",
		stats.Twinkle, onOff(fx.twinkle), stats.Glow, onOff(fx.glow), stats.Pulse, onOff(fx.pulse))
	if profiling {
		b.WriteString("\ncapturing profile")
	}

	op := &text.DrawOptions{}
	op.GeoM.Translate(8, 8)
	op.LineSpacing = 16
	op.ColorScale.ScaleWithColor(colorHUD)
	text.Draw(screen, b.String(), hudFace, op)

	ebitenutil.DebugPrintAt(screen, keyHelp, 8, screen.Bounds().Dy()-40)
}

func onOff(on bool) string {
	if on {
		return " (on)"
	}
	return " (off)"
}
