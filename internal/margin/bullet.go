package margin

import (
	"image/color"

	"github.com/riverfjs/richtext-go/internal/paint"
)

// BulletConfig configures a bullet decoration.
type BulletConfig struct {
	GapWidth int
	Radius   float64
	// Offset is the distance from the margin start to the bullet centre,
	// applied in the paragraph direction.
	Offset     int
	Color      color.NRGBA
	Suppressed bool
}

// Bullet draws a filled circle in the margin of its paragraph.
type Bullet struct {
	cfg BulletConfig
}

func NewBullet(cfg BulletConfig) *Bullet {
	return &Bullet{cfg: cfg}
}

func (b *Bullet) Config() BulletConfig { return b.cfg }

func (b *Bullet) MarginWidth(first bool) int {
	return b.cfg.GapWidth
}

func (b *Bullet) Paint(s paint.Surface, st *paint.State, text Spanned, line Line) {
	if b.cfg.Suppressed || s == nil || !anchoredAt(b, text, line) {
		return
	}
	paint.Borrow(st, func(st *paint.State) {
		st.Style = paint.Fill
		st.Color = b.cfg.Color
		cx := float64(line.X + line.Dir*b.cfg.Offset)
		cy := float64(line.Top+line.Bottom) / 2.0
		s.DrawCircle(cx, cy, b.cfg.Radius, st)
	})
}
