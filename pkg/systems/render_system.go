package systems

import (
	"image"
	"image/color"
	"math"

	"github.com/decker502/discobird/pkg/components"
	"github.com/decker502/discobird/pkg/ecs"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// EntityRenderSystem 绘制鸟和粒子
// 绘制顺序：先所有鸟，再所有粒子（粒子总在鸟之上）
type EntityRenderSystem struct {
	entityManager *ecs.EntityManager

	// DrawTriangles 需要一张纯白源图
	whiteImage *ebiten.Image
	vertices   []ebiten.Vertex
	indices    []uint16
}

// NewEntityRenderSystem 创建实体渲染系统
func NewEntityRenderSystem(em *ecs.EntityManager) *EntityRenderSystem {
	white := ebiten.NewImage(3, 3)
	white.Fill(color.White)
	return &EntityRenderSystem{
		entityManager: em,
		whiteImage:    white.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image),
		vertices:      make([]ebiten.Vertex, 0, 5),
		indices:       []uint16{0, 1, 2, 0, 2, 3, 0, 3, 4},
	}
}

// Draw 绘制所有实体
func (s *EntityRenderSystem) Draw(screen *ebiten.Image) {
	birds := ecs.GetEntitiesWith2[*components.BirdComponent, *components.PositionComponent](s.entityManager)
	for _, id := range birds {
		bird, _ := ecs.GetComponent[*components.BirdComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		s.drawBird(screen, pos, bird)
	}

	particles := ecs.GetEntitiesWith2[*components.ParticleComponent, *components.PositionComponent](s.entityManager)
	for _, id := range particles {
		p, _ := ecs.GetComponent[*components.ParticleComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		drawParticle(screen, pos, p)
	}
}

// drawBird 旋转后的五边形：填充 + 闪烁描边
func (s *EntityRenderSystem) drawBird(screen *ebiten.Image, pos *components.PositionComponent, bird *components.BirdComponent) {
	pts := birdOutline(pos.X, pos.Y, bird)

	r := float32(bird.FillColor.R) / 0xff
	g := float32(bird.FillColor.G) / 0xff
	b := float32(bird.FillColor.B) / 0xff
	a := float32(bird.FillColor.A) / 0xff

	s.vertices = s.vertices[:0]
	for _, p := range pts {
		s.vertices = append(s.vertices, ebiten.Vertex{
			DstX:   float32(p[0]),
			DstY:   float32(p[1]),
			SrcX:   1,
			SrcY:   1,
			ColorR: r,
			ColorG: g,
			ColorB: b,
			ColorA: a,
		})
	}
	screen.DrawTriangles(s.vertices, s.indices, s.whiteImage, nil)

	width := float32(bird.OutlineWidth())
	for i := range pts {
		p0 := pts[i]
		p1 := pts[(i+1)%len(pts)]
		vector.StrokeLine(screen,
			float32(p0[0]), float32(p0[1]), float32(p1[0]), float32(p1[1]),
			width, bird.OutlineColor, true)
	}
}

// birdOutline 鸟五边形的屏幕坐标（绕中心旋转 bird.Rotation）
func birdOutline(x, y float64, bird *components.BirdComponent) [5][2]float64 {
	var out [5][2]float64
	sin, cos := math.Sincos(bird.Rotation)
	for i, v := range birdVertices(bird.Width, bird.Height) {
		out[i] = [2]float64{
			x + v.X*cos - v.Y*sin,
			y + v.X*sin + v.Y*cos,
		}
	}
	return out
}

// drawParticle 以中心为锚点的方块，透明度随寿命衰减
func drawParticle(screen *ebiten.Image, pos *components.PositionComponent, p *components.ParticleComponent) {
	if p.Size <= 0 || p.Alpha <= 0 {
		return
	}
	clr := color.NRGBA{R: p.Color.R, G: p.Color.G, B: p.Color.B, A: uint8(math.Round(p.Alpha * 255))}
	half := p.Size / 2
	vector.DrawFilledRect(screen,
		float32(pos.X-half), float32(pos.Y-half), float32(p.Size), float32(p.Size),
		clr, false)
}
