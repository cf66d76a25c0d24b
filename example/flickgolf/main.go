package main

import (
	"fmt"
	"image/color"
	"log"
	"math/rand"
	"time"

	"github.com/akmonengine/putt"
	"github.com/akmonengine/putt/actor"
	"github.com/akmonengine/putt/constraint"
	"github.com/akmonengine/putt/level"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"
)

// Config holds the game settings
type Config struct {
	// Window size in pixels, a multiple of TileSize
	ScreenWidth, ScreenHeight int
	TileSize                  int
	// Ticks per second; the ball moves Velocity pixels per tick
	TPS        int
	BallRadius float64
	// Pixels per tick given for each pixel of drag
	FlickScale float64
	MaxSpeed   float64
	// Contacts kept on screen
	ContactLog int
}

// DefaultConfig returns a 960x640 board of 20px tiles
func DefaultConfig() Config {
	return Config{
		ScreenWidth:  960,
		ScreenHeight: 640,
		TileSize:     20,
		TPS:          30,
		BallRadius:   8,
		FlickScale:   0.15,
		MaxSpeed:     18,
		ContactLog:   8,
	}
}

type Game struct {
	config Config
	rng    *rand.Rand

	grid  *level.Grid
	field *putt.Field
	ball  *actor.Ball
	world *putt.World

	dragging  bool
	dragStart mgl64.Vec2
	dragEnd   mgl64.Vec2

	contacts []constraint.ContactConstraint
	stalls   int
	ticks    int
}

func NewGame(config Config) (*Game, error) {
	g := &Game{
		config: config,
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	if err := g.newLevel(); err != nil {
		return nil, err
	}

	return g, nil
}

// newLevel generates a random level and places the ball on its start tile
func (g *Game) newLevel() error {
	tile := float64(g.config.TileSize)
	grid, err := level.Generate(g.rng, g.config.ScreenWidth/g.config.TileSize, g.config.ScreenHeight/g.config.TileSize, tile, tile)
	if err != nil {
		return err
	}
	field, err := level.Build(grid)
	if err != nil {
		return err
	}
	ball, err := actor.NewBall(field.StartPosition(), g.config.BallRadius)
	if err != nil {
		return err
	}

	g.grid, g.field, g.ball = grid, field, ball
	g.world = &putt.World{Field: field, Events: putt.NewEvents()}
	g.world.AddBall(ball)
	g.world.Events.Subscribe(putt.SEGMENT_HIT, g.onContact)
	g.world.Events.Subscribe(putt.CORNER_HIT, g.onContact)
	g.world.Events.Subscribe(putt.SUBSTEP_LIMIT, func(event putt.Event) {
		e := event.(putt.SubstepLimitEvent)
		g.stalls++
		log.Printf("tick %d: ball stopped at %v after %d contacts", g.ticks, e.Ball.Position, e.Substeps)
	})
	g.contacts = g.contacts[:0]
	g.stalls = 0

	return nil
}

func (g *Game) onContact(event putt.Event) {
	var contact constraint.ContactConstraint
	switch e := event.(type) {
	case putt.SegmentHitEvent:
		contact = e.Contact
	case putt.CornerHitEvent:
		contact = e.Contact
	default:
		return
	}

	g.contacts = append(g.contacts, contact)
	if len(g.contacts) > g.config.ContactLog {
		g.contacts = g.contacts[len(g.contacts)-g.config.ContactLog:]
	}
}

func cursor() mgl64.Vec2 {
	x, y := ebiten.CursorPosition()
	return mgl64.Vec2{float64(x), float64(y)}
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		if err := g.newLevel(); err != nil {
			return err
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.ball.Position = g.field.StartPosition()
		g.ball.SetVelocity(mgl64.Vec2{})
	}

	// Drag away from the ball and release to flick it the other way
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.dragging = true
		g.dragStart = cursor()
	}
	if g.dragging {
		g.dragEnd = cursor()
	}
	if g.dragging && inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		g.dragging = false
		velocity := g.dragStart.Sub(g.dragEnd).Mul(g.config.FlickScale)
		if speed := velocity.Len(); speed > g.config.MaxSpeed {
			velocity = velocity.Mul(g.config.MaxSpeed / speed)
		}
		g.ball.SetVelocity(velocity)
	}

	g.world.Step(1.0)
	g.ticks++

	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colornames.Darkgreen)
	g.drawTiles(screen)
	g.drawContacts(screen)

	vector.StrokeCircle(screen, float32(g.ball.Position.X()), float32(g.ball.Position.Y()), float32(g.ball.Radius()), 2, colornames.White, true)
	if g.dragging {
		vector.StrokeLine(screen, float32(g.dragStart.X()), float32(g.dragStart.Y()), float32(g.dragEnd.X()), float32(g.dragEnd.Y()), 1, colornames.Yellow, true)
	}

	hud := fmt.Sprintf("TPS: %0.1f  velocity: (%0.2f, %0.2f)  stalls: %d", ebiten.ActualTPS(), g.ball.Velocity.X(), g.ball.Velocity.Y(), g.stalls)
	ebitenutil.DebugPrint(screen, hud)
	text.Draw(screen, "drag and release: flick   space: reset   r: new level", basicfont.Face7x13, 8, g.config.ScreenHeight-6, colornames.Lightgray)
}

func (g *Game) drawTiles(screen *ebiten.Image) {
	w, h := g.field.TileSize()
	for y := 0; y < g.grid.Rows; y++ {
		for x := 0; x < g.grid.Cols; x++ {
			kind := g.grid.At(x, y)
			left, top := float32(float64(x)*w), float32(float64(y)*h)
			switch kind {
			case level.Square:
				vector.DrawFilledRect(screen, left, top, float32(w), float32(h), colornames.Black, false)
			case level.Start:
				vector.DrawFilledRect(screen, left, top, float32(w), float32(h), colornames.Forestgreen, false)
			}
		}
	}

	// Triangles are drawn from the field outline: the segments the ball bounces on
	for _, segment := range g.field.Segments() {
		drawLine(screen, segment.P1(), segment.P2(), 1, colornames.Black)
	}
}

// drawContacts shows the last contacts: the line the velocity was reflected
// across and the contact normal
func (g *Game) drawContacts(screen *ebiten.Image) {
	for _, contact := range g.contacts {
		clr := color.Color(colornames.Orange)
		if contact.Kind == constraint.ContactCorner {
			clr = colornames.Red
		}
		drawLine(screen, contact.Tangent[0], contact.Tangent[1], 1, clr)
		drawLine(screen, contact.Point, contact.Point.Add(contact.Normal.Mul(g.ball.Radius()*1.5)), 1, colornames.Cyan)
		vector.StrokeCircle(screen, float32(contact.Center.X()), float32(contact.Center.Y()), float32(g.ball.Radius()), 1, color.RGBA{255, 255, 255, 64}, true)
	}
}

func drawLine(screen *ebiten.Image, p1, p2 mgl64.Vec2, width float32, clr color.Color) {
	vector.StrokeLine(screen, float32(p1.X()), float32(p1.Y()), float32(p2.X()), float32(p2.Y()), width, clr, true)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.config.ScreenWidth, g.config.ScreenHeight
}

func main() {
	config := DefaultConfig()
	g, err := NewGame(config)
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Flick Mini-Golf")
	ebiten.SetTPS(config.TPS)

	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
