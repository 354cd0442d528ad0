package main

import (
	"os"
	"strings"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"ring-snake/game"
	"ring-snake/game/entity"
	"ring-snake/game/types"
	"ring-snake/ui"
)

type options struct {
	width    int
	height   int
	cellSize int
	period   time.Duration
	seed     uint64
	logLevel string
}

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	if err := newRootCmd().Execute(); err != nil {
		log.Fatal().Err(err).Msg("snake")
	}
}

func newRootCmd() *cobra.Command {
	v := viper.New()
	cmd := &cobra.Command{
		Use:           "snake",
		Short:         "Grid snake with a ring-buffer body",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := loadOptions(v)
			if err != nil {
				return err
			}
			return run(opts)
		},
	}

	flags := cmd.Flags()
	flags.Int("width", types.DefaultWidth, "grid width in cells")
	flags.Int("height", types.DefaultHeight, "grid height in cells")
	flags.Int("cell-size", 16, "cell size in pixels")
	flags.Duration("period", 200*time.Millisecond, "time between game ticks")
	flags.Uint64("seed", 0, "random seed, 0 uses the clock")
	flags.String("log-level", "info", "log level")

	v.SetEnvPrefix("snake")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(flags); err != nil {
		panic(err)
	}
	return cmd
}

func loadOptions(v *viper.Viper) (options, error) {
	opts := options{
		width:    v.GetInt("width"),
		height:   v.GetInt("height"),
		cellSize: v.GetInt("cell-size"),
		period:   v.GetDuration("period"),
		seed:     v.GetUint64("seed"),
		logLevel: v.GetString("log-level"),
	}
	if opts.cellSize < 3 {
		return opts, errors.Errorf("cell size must be at least 3 pixels, got %d", opts.cellSize)
	}
	if opts.period <= 0 {
		return opts, errors.Errorf("tick period must be positive, got %s", opts.period)
	}
	return opts, nil
}

func run(opts options) error {
	level, err := zerolog.ParseLevel(opts.logLevel)
	if err != nil {
		return errors.Wrap(err, "log level")
	}
	logger := log.Logger.Level(level)

	seed := opts.seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	g, err := game.New(game.Config{
		Width:  opts.width,
		Height: opts.height,
		Seed:   seed,
		Color:  entity.Color{R: 0, G: 255, B: 0},
		Logger: &logger,
	})
	if err != nil {
		return err
	}

	winW, winH := ui.WindowSize(g.Grid(), int32(opts.cellSize))
	rl.InitWindow(winW, winH, "Snake")
	defer rl.CloseWindow()
	rl.SetExitKey(rl.KeyNull)
	rl.SetTargetFPS(60)

	renderer := ui.NewRenderer()
	input := ui.NewInput()
	clock := newTickClock(opts.period, time.Now())
	pending := types.IntentNone

	logger.Info().Uint64("seed", seed).Int("width", opts.width).Int("height", opts.height).Msg("starting")
	for {
		intent := input.Poll(g)
		if intent == types.IntentQuit {
			break
		}
		if pending == types.IntentNone {
			pending = intent
		}

		if clock.Due(time.Now()) {
			g.Tick(pending)
			pending = types.IntentNone
		}
		renderer.Draw(g)
	}
	logger.Info().Int("high_score", g.HighScore()).Msg("exit")
	return nil
}

// tickClock schedules ticks at a fixed period. When more than two periods
// behind it drops the lateness instead of ticking to catch up.
type tickClock struct {
	period time.Duration
	last   time.Time
}

func newTickClock(period time.Duration, now time.Time) *tickClock {
	return &tickClock{period: period, last: now}
}

func (c *tickClock) Due(now time.Time) bool {
	elapsed := now.Sub(c.last)
	if elapsed < c.period {
		return false
	}
	if elapsed > 2*c.period {
		c.last = now
	} else {
		c.last = c.last.Add(c.period)
	}
	return true
}
