// Package gifrec implements a display backend that records every update of the game
// as a frame of an animated GIF, drawn with flat-top hexagons.
//
// It registers itself as the "gif" display. Parameters:
//
//   - out: path of the GIF file to write (default "hexmaze.gif").
//   - cell: radius of the hexagons, in pixels (default 12).
//   - delay: time each frame is displayed, in milliseconds (default 200).
//
// The file is only written on Cleanup.
package gifrec

import (
	"github.com/chewxy/math32"
	"github.com/janpfeifer/hexmaze/internal/display"
	"github.com/janpfeifer/hexmaze/internal/parameters"
	. "github.com/janpfeifer/hexmaze/internal/state"
	"github.com/pkg/errors"
	"golang.org/x/image/vector"
	"image"
	"image/color"
	"image/draw"
	"image/gif"
	"io"
	"k8s.io/klog/v2"
	"os"
	"time"
)

// Name of the backend, used to select it with display.Open.
const Name = "gif"

func init() {
	display.Register(Name, NewFromParams)
}

// Colors used in the frames.
var (
	BackgroundColor = color.RGBA{R: 0x20, G: 0x20, B: 0x28, A: 0xFF}
	CellColor       = color.RGBA{R: 0xF0, G: 0xF0, B: 0xE8, A: 0xFF}
	WallColor       = color.RGBA{R: 0x30, G: 0x40, B: 0xA0, A: 0xFF}
	ObstacleColor   = color.RGBA{R: 0x60, G: 0x60, B: 0x60, A: 0xFF}
	PlayerColor     = color.RGBA{R: 0xF0, G: 0xC0, B: 0x20, A: 0xFF}
	PointerColor    = color.RGBA{R: 0xC0, G: 0x20, B: 0x20, A: 0xFF}
	FinishColor     = color.RGBA{R: 0x20, G: 0xC0, B: 0x40, A: 0xFF}

	Palette = color.Palette{BackgroundColor, CellColor, WallColor, ObstacleColor, PlayerColor, PointerColor, FinishColor}
)

// Options of the GIF recorder.
type Options struct {
	// CellSize is the radius (center to corner) of the hexagons, in pixels.
	CellSize int

	// FrameDelay is how long each frame is displayed.
	FrameDelay time.Duration
}

// Recorder accumulates frames, and writes them as an animated GIF on Cleanup.
type Recorder struct {
	opts   Options
	path   string
	output io.Writer
	closer io.Closer

	width, height int
	side, margin  float32
	rasterizer    *vector.Rasterizer
	canvas        *image.RGBA
	frames        []*image.Paletted
}

// New creates a recorder that writes the animation to w.
func New(w io.Writer, opts Options) *Recorder {
	if opts.CellSize <= 0 {
		opts.CellSize = 12
	}
	return &Recorder{opts: opts, output: w}
}

// NewFromParams is the display.Factory of the GIF recorder. The output file is only
// created on Setup.
func NewFromParams(params parameters.Params) (display.Display, error) {
	path, err := parameters.PopParamOr(params, "out", "hexmaze.gif")
	if err != nil {
		return nil, err
	}
	cellSize, err := parameters.PopParamOr(params, "cell", 12)
	if err != nil {
		return nil, err
	}
	if cellSize < 2 {
		return nil, errors.Errorf("cell size must be at least 2 pixels, got %d", cellSize)
	}
	delayMs, err := parameters.PopParamOr(params, "delay", 200)
	if err != nil {
		return nil, err
	}
	r := New(nil, Options{CellSize: cellSize, FrameDelay: time.Duration(delayMs) * time.Millisecond})
	r.path = path
	return r, nil
}

// NumFrames recorded so far.
func (r *Recorder) NumFrames() int { return len(r.frames) }

// Setup implements display.Display: it creates the output file (if configured with a path)
// and records the first frame.
func (r *Recorder) Setup(game *Game) error {
	f := game.Field()
	if f.NumCells() == 0 {
		return errors.New("gif recorder can't draw an empty field")
	}
	if r.output == nil {
		file, err := os.Create(r.path)
		if err != nil {
			return errors.Wrapf(err, "failed to create GIF file %q", r.path)
		}
		r.output, r.closer = file, file
	}
	r.side = float32(r.opts.CellSize)
	r.margin = r.side / 2
	r.width = int(math32.Ceil(2*r.margin + 2*r.side + 3*r.side*float32(f.Width()-1) + r.oddShift(f)))
	r.height = int(math32.Ceil(2*r.margin + rowStep(r.side)*float32(f.Height()+1)))
	r.rasterizer = vector.NewRasterizer(r.width, r.height)
	r.canvas = image.NewRGBA(image.Rect(0, 0, r.width, r.height))
	r.frames = nil
	klog.V(1).Infof("GIF recorder: %dx%d pixels per frame", r.width, r.height)
	r.Update(game)
	return nil
}

// Update implements display.Display: it records a new frame.
func (r *Recorder) Update(game *Game) {
	if r.canvas == nil {
		return
	}
	draw.Draw(r.canvas, r.canvas.Bounds(), image.NewUniform(BackgroundColor), image.Point{}, draw.Src)
	f := game.Field()
	for y := range f.Height() {
		for x := range f.Width() {
			r.drawCell(game, Pos{X: x, Y: y})
		}
	}
	for y := range f.Height() {
		for x := range f.Width() {
			r.drawWalls(f, Pos{X: x, Y: y})
		}
	}
	frame := image.NewPaletted(r.canvas.Bounds(), Palette)
	draw.Draw(frame, frame.Bounds(), r.canvas, image.Point{}, draw.Src)
	r.frames = append(r.frames, frame)
}

// Cleanup implements display.Display: it encodes all frames recorded.
func (r *Recorder) Cleanup(game *Game) {
	if len(r.frames) == 0 || r.output == nil {
		return
	}
	anim := &gif.GIF{
		Image: r.frames,
		Delay: make([]int, len(r.frames)),
	}
	delay := int(r.opts.FrameDelay / (10 * time.Millisecond))
	for ii := range anim.Delay {
		anim.Delay[ii] = delay
	}
	// Hold the last frame a bit longer.
	anim.Delay[len(anim.Delay)-1] = max(delay, 100)
	if err := gif.EncodeAll(r.output, anim); err != nil {
		klog.Errorf("Failed to write GIF animation %q: %+v", r.path, err)
	} else {
		klog.V(1).Infof("GIF animation with %d frames written to %q", len(r.frames), r.path)
	}
	if r.closer != nil {
		if err := r.closer.Close(); err != nil {
			klog.Errorf("Failed to close GIF file %q: %v", r.path, err)
		}
		r.closer, r.output = nil, nil
	}
	r.frames = nil
}

// rowStep is the vertical distance between consecutive rows, in pixels.
func rowStep(side float32) float32 {
	return math32.Sqrt(3) / 2 * side
}

func (r *Recorder) oddShift(f *Field) float32 {
	if f.Height() > 1 {
		return 1.5 * r.side
	}
	return 0
}

// CellCenter returns the pixel coordinates of the center of the cell in pos. Rows go upwards.
func (r *Recorder) CellCenter(f *Field, pos Pos) (x, y float32) {
	x = r.margin + r.side + 3*r.side*float32(pos.X)
	if pos.Y%2 == 1 {
		x += 1.5 * r.side
	}
	y = r.margin + rowStep(r.side)*float32(f.Height()-pos.Y)
	return
}

// vertex returns the point at the given angle (in degrees, clockwise on screen) and
// distance from (x, y).
func vertex(x, y, angle, dist float32) (float32, float32) {
	rad := angle * math32.Pi / 180
	return x + dist*math32.Cos(rad), y + dist*math32.Sin(rad)
}

// edgeAngles returns the angles of the two vertices of the edge of a flat-top hexagon facing d.
func edgeAngles(d Direction) (from, to float32) {
	from = 180 + 60*float32(d)
	return from, from + 60
}

func (r *Recorder) fill(c color.Color, points ...float32) {
	z := r.rasterizer
	z.Reset(r.width, r.height)
	z.MoveTo(points[0], points[1])
	for ii := 2; ii+1 < len(points); ii += 2 {
		z.LineTo(points[ii], points[ii+1])
	}
	z.ClosePath()
	z.Draw(r.canvas, r.canvas.Bounds(), image.NewUniform(c), image.Point{})
}

func (r *Recorder) fillHexagon(c color.Color, cx, cy, radius float32) {
	points := make([]float32, 0, 2*NumDirections)
	for ii := range NumDirections {
		x, y := vertex(cx, cy, 60*float32(ii), radius)
		points = append(points, x, y)
	}
	r.fill(c, points...)
}

func (r *Recorder) drawCell(game *Game, pos Pos) {
	f := game.Field()
	cx, cy := r.CellCenter(f, pos)
	switch f.CellAt(pos, CellEmpty) {
	case CellWall:
		r.fillHexagon(ObstacleColor, cx, cy, r.side)
	case CellFinish:
		r.fillHexagon(CellColor, cx, cy, r.side)
		r.fillHexagon(FinishColor, cx, cy, 0.6*r.side)
	default:
		r.fillHexagon(CellColor, cx, cy, r.side)
	}
	if pos != game.PlayerPos() {
		return
	}
	r.fillHexagon(PlayerColor, cx, cy, 0.6*r.side)
	angle := 210 + 60*float32(game.PlayerDir())
	tipX, tipY := vertex(cx, cy, angle, 0.8*r.side)
	leftX, leftY := vertex(cx, cy, angle-90, 0.25*r.side)
	rightX, rightY := vertex(cx, cy, angle+90, 0.25*r.side)
	r.fill(PointerColor, tipX, tipY, leftX, leftY, rightX, rightY)
}

func (r *Recorder) drawWalls(f *Field, pos Pos) {
	cx, cy := r.CellCenter(f, pos)
	thickness := max(1, r.side/8)
	for d := range f.ClosedWallsAt(pos).Directions() {
		from, to := edgeAngles(d)
		x0, y0 := vertex(cx, cy, from, r.side)
		x1, y1 := vertex(cx, cy, to, r.side)
		// Thick line: a quad around the edge, along its normal.
		nx, ny := y1-y0, x0-x1
		norm := math32.Hypot(nx, ny)
		nx, ny = nx/norm*thickness/2, ny/norm*thickness/2
		r.fill(WallColor, x0+nx, y0+ny, x1+nx, y1+ny, x1-nx, y1-ny, x0-nx, y0-ny)
	}
}
