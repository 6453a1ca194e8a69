// mazecheck generates many mazes of various sizes in parallel, and validates each one:
// walls consistent on both sides, every cell reachable and no loops.
package main

import (
	"context"
	"flag"
	"fmt"
	"github.com/janpfeifer/hexmaze/internal/maze"
	"github.com/janpfeifer/hexmaze/internal/profilers"
	"github.com/janpfeifer/hexmaze/internal/state"
	"github.com/janpfeifer/hexmaze/internal/ui/spinning"
	"github.com/janpfeifer/must"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
	"k8s.io/klog/v2"
	"os"
	"runtime"
	"strconv"
	"strings"
	"time"
)

var (
	flagNum         = flag.Int("num", 1000, "Number of mazes to generate for each size.")
	flagSizes       = flag.String("sizes", "1x1,2x2,3x7,10x21,7x3,32x65", "Comma-separated list of field sizes, as WIDTHxHEIGHT.")
	flagSeed        = flag.Uint64("seed", 1, "Seed of the first maze: each maze uses the next seed.")
	flagParallelism = flag.Int("parallelism", 0, "If > 0 ignore GOMAXPROCS and validate "+
		"these many mazes simultaneously.")
	flagSpinner = flag.Bool("spinner", true, "Display progress.")
)

// globalCtx is cancelled on interrupt (Ctrl+C).
var globalCtx = context.Background()

func main() {
	klog.InitFlags(nil)
	flag.Parse()
	sizes, err := parseSizes(*flagSizes)
	if err != nil {
		klog.Exitf("Invalid --sizes=%q: %+v", *flagSizes, err)
	}
	if *flagNum <= 0 {
		klog.Exitf("Invalid --num=%d", *flagNum)
	}

	var cancel func()
	globalCtx, cancel = context.WithCancel(context.Background())
	spinning.SafeInterrupt(cancel, 3*time.Second)
	defer cancel()

	onQuit := must.M1(profilers.Setup())
	defer onQuit()

	start := time.Now()
	total := len(sizes) * *flagNum
	var spinner *spinning.Spinner
	if *flagSpinner {
		spinner = spinning.New(globalCtx, os.Stdout, spinning.ThemeAscii, "mazes validated", total)
	}
	err = checkAll(globalCtx, sizes, spinner)
	if spinner != nil {
		spinner.Done()
		fmt.Println()
	}
	if err != nil {
		klog.Exitf("Maze validation failed: %+v", err)
	}
	if globalCtx.Err() != nil {
		fmt.Printf("Interrupted: %s\n", globalCtx.Err())
		return
	}
	fmt.Printf("%d mazes validated in %s\n", total, time.Since(start))
}

// parseSizes parses a list of sizes like "3x7,10x21".
func parseSizes(list string) (sizes [][2]int, err error) {
	for _, part := range strings.Split(list, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		dims := strings.Split(strings.ToLower(part), "x")
		if len(dims) != 2 {
			return nil, errors.Errorf("size %q is not in the format WIDTHxHEIGHT", part)
		}
		var size [2]int
		for ii, dim := range dims {
			size[ii], err = strconv.Atoi(dim)
			if err != nil {
				return nil, errors.Wrapf(err, "size %q", part)
			}
			if size[ii] <= 0 {
				return nil, errors.Errorf("size %q must be positive", part)
			}
		}
		sizes = append(sizes, size)
	}
	if len(sizes) == 0 {
		return nil, errors.New("no sizes given")
	}
	return
}

func getParallelism() int {
	if *flagParallelism > 0 {
		return *flagParallelism
	}
	return runtime.GOMAXPROCS(0)
}

// checkAll generates and validates --num mazes of each size. Each goroutine works on its own game.
func checkAll(ctx context.Context, sizes [][2]int, spinner *spinning.Spinner) error {
	var wg errgroup.Group
	wg.SetLimit(getParallelism())
	seed := *flagSeed
	for _, size := range sizes {
		for range *flagNum {
			mazeSeed := seed
			seed++
			wg.Go(func() error {
				if ctx.Err() != nil {
					return nil
				}
				if err := checkOne(size[0], size[1], mazeSeed); err != nil {
					return err
				}
				if spinner != nil {
					spinner.Add(1)
				}
				return nil
			})
		}
	}
	return wg.Wait()
}

// checkOne generates one maze from the origin, and validates it.
func checkOne(width, height int, seed uint64) error {
	game := state.NewGame(width, height)
	result := maze.Generate(game, maze.NewRandom(seed))
	klog.V(2).Infof("%dx%d, seed=%d: %s", width, height, seed, result)
	if err := maze.Check(game.Field(), result.Start); err != nil {
		return errors.WithMessagef(err, "maze %dx%d with seed %d", width, height, seed)
	}
	if result.Carved > 0 && result.Start == result.Finish {
		return errors.Errorf("maze %dx%d with seed %d: finish is at the start %s", width, height, seed, result.Start)
	}
	return nil
}
