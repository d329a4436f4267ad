package main

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/alnah/go-avtoolbox/internal/bind"
	"github.com/alnah/go-avtoolbox/internal/config"
	"github.com/alnah/go-avtoolbox/internal/countdown"
	"github.com/alnah/go-avtoolbox/internal/formula"
)

// runCountdown counts down in place on one terminal line until the timer
// expires or the user interrupts.
func runCountdown(ctx context.Context, args []string, env *Environment) error {
	var f countdownFlags
	fs := newCountdownFlagSet(&f)
	if err := parseFlagSet(fs, args, env.Stderr, printCountdownUsage); err != nil {
		return err
	}
	if err := env.setup(f.common); err != nil {
		return err
	}

	in, err := bind.Countdown(bind.Params{
		"hours":   strconv.Itoa(f.hours),
		"minutes": strconv.Itoa(f.minutes),
		"seconds": strconv.Itoa(f.seconds),
	})
	if err != nil {
		return err
	}
	total := formula.Countdown(in)

	if f.overlayURL != "" {
		fmt.Fprintln(env.Stdout, formula.OverlayURL(f.overlayURL, total.TotalMs))
		return nil
	}

	step, err := resolveTick(f.tick, env.Config)
	if err != nil {
		return err
	}

	timer := countdown.New(time.Duration(total.TotalMs) * time.Millisecond)
	env.Logger.Debug().Str("duration", total.Clock()).Dur("tick", step).Msg("countdown started")

	err = countdown.Run(ctx, timer, env.NewTicker(step), step, func(s countdown.Snapshot) {
		fmt.Fprintf(env.Stdout, "\r%s", s.Display())
	})
	fmt.Fprintln(env.Stdout)

	if errors.Is(err, context.Canceled) {
		env.Logger.Debug().Str("remaining", timer.Snapshot().Display()).Msg("countdown interrupted")
		return nil
	}
	return err
}

// resolveTick picks --tick, then countdown.tick, then DefaultStep.
func resolveTick(flagTick string, cfg *config.Config) (time.Duration, error) {
	if flagTick != "" {
		d, err := time.ParseDuration(flagTick)
		if err != nil || d < config.MinTick || d > config.MaxTick {
			return 0, fmt.Errorf("%w: --tick %q must be between %s and %s", ErrUsage, flagTick, config.MinTick, config.MaxTick)
		}
		return d, nil
	}
	d, err := cfg.Countdown.TickDuration()
	if err != nil {
		return 0, err
	}
	if d == 0 {
		return countdown.DefaultStep, nil
	}
	return d, nil
}
