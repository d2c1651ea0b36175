// Command rpdemo renders a small shader program with the rasterpipe
// compiler and writes it as a PNG.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"log"
	"log/slog"
	"os"

	"golang.org/x/image/draw"
	"golang.org/x/image/math/f32"

	"github.com/gogpu/rasterpipe"
	"github.com/gogpu/rasterpipe/compiler"
	"github.com/gogpu/rasterpipe/internal/parallel"
)

func main() {
	var (
		width   = flag.Int("width", 800, "image width")
		height  = flag.Int("height", 600, "image height")
		scale   = flag.Int("scale", 4, "upscale factor applied to the rendered tile")
		cells   = flag.Int("cells", 8, "checkerboard cells per side")
		workers = flag.Int("workers", 0, "render workers (0 = GOMAXPROCS)")
		output  = flag.String("output", "rpdemo.png", "output file")
		dump    = flag.Bool("dump", false, "print the lowered program")
		verbose = flag.Bool("v", false, "log compiler statistics")
	)
	flag.Parse()

	if *verbose {
		rasterpipe.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	prog, err := buildProgram()
	if err != nil {
		log.Fatalf("Failed to compile: %v", err)
	}
	if *dump {
		if err := prog.Dump(os.Stdout); err != nil {
			log.Fatalf("Failed to dump: %v", err)
		}
	}

	pool := parallel.NewWorkerPool(*workers)
	defer pool.Close()

	img, err := render(pool, prog, *width, *height, *scale, defaultParams(*cells))
	if err != nil {
		log.Fatalf("Failed to render: %v", err)
	}
	if err := savePNG(*output, img); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}

	log.Printf("Demo saved to %s (%dx%d)\n", *output, *width, *height)
}

// Value slots.
var (
	slotCoord = compiler.SlotRange{Index: 0, Count: 2}
	slotU     = compiler.SlotRange{Index: 0, Count: 1}
	slotV     = compiler.SlotRange{Index: 1, Count: 1}
	slotColor = compiler.SlotRange{Index: 2, Count: 4}
	slotRGB   = compiler.SlotRange{Index: 2, Count: 3}
	numValues = 6
)

// Uniform slots.
var (
	uniCells   = compiler.SlotRange{Index: 0, Count: 1}
	uniLight   = compiler.SlotRange{Index: 1, Count: 4}
	uniDark    = compiler.SlotRange{Index: 5, Count: 4}
	uniRadius2 = compiler.SlotRange{Index: 9, Count: 1}
	numUniform = 10
)

// params are the uniforms of the demo program.
type params struct {
	cells  float32
	light  [4]float32
	dark   [4]float32
	radius float32
}

func defaultParams(cells int) params {
	return params{
		cells:  float32(max(cells, 1)),
		light:  [4]float32{1, 0.8, 0.2, 1},
		dark:   [4]float32{0.2, 0.3, 0.8, 1},
		radius: 0.3,
	}
}

func (p params) uniforms() []float32 {
	u := make([]float32, numUniform)
	u[uniCells.Index] = p.cells
	copy(u[uniLight.Index:], p.light[:])
	copy(u[uniDark.Index:], p.dark[:])
	u[uniRadius2.Index] = p.radius * p.radius
	return u
}

// buildProgram records the shader. It expects normalized coordinates in r
// and g and leaves the color in r, g, b, a:
//
//	cell := int(floor(u*cells)) + int(floor(v*cells))
//	if cell&1 == 0 { color = mix(light, dark, u) } else { color = dark * (v, v, v, 1) }
//	if length((u, v) - 0.5) < radius { color.rgb = 1 - color.rgb }
func buildProgram() (*compiler.Program, error) {
	var b compiler.Builder
	b.StoreSrcRG(slotCoord)
	b.InitLaneMasks()

	b.PushConditionMask()
	b.PushSlots(slotCoord)
	b.PushUniform(uniCells)
	b.PushDuplicates(1)
	b.BinaryOp(rasterpipe.OpMulNFloats, 2)
	b.UnaryOp(rasterpipe.OpFloorFloat, 2)
	b.UnaryOp(rasterpipe.OpCastToIntFromFloat, 2)
	b.BinaryOp(rasterpipe.OpAddNInts, 1)
	b.PushLiteralI(1)
	b.BinaryOp(rasterpipe.OpBitwiseAndNInts, 1)
	b.PushLiteralI(0)
	b.BinaryOp(rasterpipe.OpCmpEQNInts, 1)
	b.MergeConditionMask()
	{
		b.PushUniform(uniLight)
		b.PushUniform(uniDark)
		b.PushSlots(slotU)
		b.PushDuplicates(3)
		b.TernaryOp(rasterpipe.OpMixNFloats, 4)
		b.PopSlots(slotColor)
	}
	b.MergeInvConditionMask()
	{
		b.PushUniform(uniDark)
		b.PushSlots(slotV)
		b.Swizzle(1, 0, 0, 0, compiler.SwizzleOne)
		b.BinaryOp(rasterpipe.OpMulNFloats, 4)
		b.PopSlots(slotColor)
	}
	b.DiscardStack(1)
	b.PopConditionMask()

	b.PushConditionMask()
	b.PushSlots(slotCoord)
	b.PushLiteralF(0.5)
	b.PushDuplicates(1)
	b.BinaryOp(rasterpipe.OpSubNFloats, 2)
	b.PushClone(2, 0)
	b.BinaryOp(rasterpipe.OpMulNFloats, 2)
	b.BinaryOp(rasterpipe.OpAddNFloats, 1)
	b.PushUniform(uniRadius2)
	b.BinaryOp(rasterpipe.OpCmpLTNFloats, 1)
	b.MergeConditionMask()
	outside := b.NextLabelID()
	b.BranchIfNoActiveLanes(outside)
	{
		b.PushLiteralF(1)
		b.PushDuplicates(2)
		b.PushSlots(slotRGB)
		b.BinaryOp(rasterpipe.OpSubNFloats, 3)
		b.PopSlots(slotRGB)
	}
	b.Label(outside)
	b.DiscardStack(1)
	b.PopConditionMask()

	b.LoadSrc(slotColor)
	return b.Finish(numValues, numUniform)
}

// bandRows is the height of the strips rendered in parallel.
const bandRows = 16

// render runs prog over a (width/scale)×(height/scale) tile and upscales it
// to width×height. Every band binds its own copy of the program, so bands
// run concurrently on disjoint rows of the tile.
func render(pool *parallel.WorkerPool, prog *compiler.Program, width, height, scale int, p params) (*image.RGBA, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid size %dx%d", width, height)
	}
	scale = max(scale, 1)
	tw, th := max(width/scale, 1), max(height/scale, 1)
	tile := image.NewRGBA(image.Rect(0, 0, tw, th))
	uniforms := p.uniforms()
	toUnit := &rasterpipe.Matrix2x3Ctx{M: f32.Aff3{1 / float32(tw), 0, 0, 0, 1 / float32(th), 0}}
	mem := &rasterpipe.MemoryCtx{Pixels: tile.Pix, Stride: tw}

	pool.RunBands(th, bandRows, func(b parallel.Band) {
		pipe := rasterpipe.New()
		pipe.Append(rasterpipe.OpSeedShader, nil)
		pipe.Append(rasterpipe.OpMatrix2x3, toUnit)
		prog.AppendStages(pipe, rasterpipe.NewArena(0), uniforms)
		pipe.Append(rasterpipe.OpClamp01, nil)
		pipe.Append(rasterpipe.OpStore8888, mem)
		pipe.Run(0, b.Y, tw, b.Height)
	})

	if tw == width && th == height {
		return tile, nil
	}
	out := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(out, out.Bounds(), tile, tile.Bounds(), draw.Src, nil)
	return out, nil
}

func savePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
