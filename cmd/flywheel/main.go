package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/akmonengine/flywheel"
	"github.com/akmonengine/flywheel/input"
	"github.com/akmonengine/flywheel/internal/config"
	"github.com/akmonengine/flywheel/internal/logger"
	"github.com/akmonengine/flywheel/render"
	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"
)

func main() {
	config.ParseFlags()
	os.Exit(start(tcell.NewScreen))
}

// start runs the host and returns the process exit code.
// Deferred calls run before main exits.
func start(newScreen func() (tcell.Screen, error)) int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "flywheel: %v\n", err)
		return 1
	}

	// The screen owns stdout, console logging would corrupt it
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile, false); err != nil {
		fmt.Fprintf(os.Stderr, "flywheel: init logger: %v\n", err)
		return 1
	}
	defer logger.Sync()

	params := cfg.ToParams()
	logger.Sugar.Debugf("engine params: %+v", params)

	engine := flywheel.NewEngine(params, nil)
	subscribe(engine)

	if err := run(cfg, engine, newScreen); err != nil {
		logger.Error("terminal host stopped", zap.Error(err))
		// no terminal: print the static default pose instead
		fmt.Println(engine.Orientation())
		fmt.Fprintf(os.Stderr, "flywheel: %v\n", err)
		return 1
	}

	return 0
}

func subscribe(engine *flywheel.Engine) {
	engine.Events.Subscribe(flywheel.PRESS, func(event flywheel.Event) {
		e := event.(flywheel.PressEvent)
		logger.Debug("press", zap.Float64("friction", e.Friction))
	})
	engine.Events.Subscribe(flywheel.GRAB, func(event flywheel.Event) {
		e := event.(flywheel.GrabEvent)
		logger.Debug("grab", zap.Float64("angle", e.Momentum.Angle))
	})
	engine.Events.Subscribe(flywheel.RELEASE, func(event flywheel.Event) {
		e := event.(flywheel.ReleaseEvent)
		logger.Debug("release",
			zap.Float64("angle", e.Momentum.Angle),
			zap.Float64("axis_x", e.Momentum.Axis.X()),
			zap.Float64("axis_y", e.Momentum.Axis.Y()),
			zap.Float64("axis_z", e.Momentum.Axis.Z()),
		)
	})
	engine.Events.Subscribe(flywheel.SPIN, func(event flywheel.Event) {
		e := event.(flywheel.SpinEvent)
		logger.Debug("spin", zap.Float64("angle", e.Momentum.Angle))
	})
	engine.Events.Subscribe(flywheel.REST, func(event flywheel.Event) {
		e := event.(flywheel.RestEvent)
		logger.Debug("rest", zap.Stringer("orientation", e.Orientation))
	})
}

func run(cfg *config.Config, engine *flywheel.Engine, newScreen func() (tcell.Screen, error)) error {
	s, err := newScreen()
	if err != nil {
		return fmt.Errorf("screen init failed: %w", err)
	}
	if err := s.Init(); err != nil {
		return fmt.Errorf("screen start failed: %w", err)
	}
	defer s.Fini()

	s.EnableMouse(tcell.MouseMotionEvents)
	s.EnableFocus()
	s.HideCursor()

	renderer := render.New(render.Book{
		Width:  cfg.Render.Width,
		Height: cfg.Render.Height,
		Depth:  cfg.Render.Depth,
	}, cfg.Render.Perspective, cfg.Input.CellWidth, cfg.Input.CellHeight)

	// the status line is not part of the interactive region
	pointer := input.NewPointer(cfg.Input.CellWidth, cfg.Input.CellHeight, func() (int, int) {
		w, h := s.Size()
		return w, h - 1
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	inputs := make(chan flywheel.Input, 64)
	go poll(ctx, cancel, s, pointer, inputs)

	logger.Info("flywheel started",
		zap.Duration("tick", cfg.Physics.TickInterval),
		zap.Float64("idle_speed", cfg.Physics.IdleSpeed),
	)

	var lastFrame time.Time
	err = engine.Run(ctx, cfg.Physics.TickInterval, inputs, func(state flywheel.State) {
		now := time.Now()
		if now.Sub(lastFrame) < cfg.Render.FrameInterval {
			return
		}
		lastFrame = now

		s.Clear()
		renderer.Draw(s, state)
		s.Show()
	})
	if errors.Is(err, context.Canceled) {
		logger.Info("flywheel stopped")
		return nil
	}

	return err
}

// poll reads terminal events and forwards them to the engine loop
func poll(ctx context.Context, cancel context.CancelFunc, s tcell.Screen, pointer *input.Pointer, inputs chan<- flywheel.Input) {
	defer cancel()

	for {
		ev := s.PollEvent()
		if ev == nil {
			// screen finalized
			return
		}

		var in flywheel.Input
		switch ev := ev.(type) {
		case *tcell.EventKey:
			switch {
			case ev.Key() == tcell.KeyEscape, ev.Key() == tcell.KeyCtrlC:
				return
			case ev.Key() == tcell.KeyRune && (ev.Rune() == 'q' || ev.Rune() == 'Q'):
				return
			case ev.Key() == tcell.KeyRune && ev.Rune() == 'r':
				in = func(e *flywheel.Engine) { e.Reset() }
			}
		case *tcell.EventResize:
			s.Sync()
		case *tcell.EventMouse, *tcell.EventFocus:
			in = func(e *flywheel.Engine) { pointer.Handle(ev, e) }
		}

		if in == nil {
			continue
		}

		select {
		case inputs <- in:
		case <-ctx.Done():
			return
		}
	}
}
