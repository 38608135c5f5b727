//go:build !tinygo

package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"efiboy/app"
	"efiboy/hal"
)

func main() {
	var hcfg hal.HeadlessConfig
	var debug, throttle bool
	flag.BoolVar(&hcfg.Enabled, "headless", false, "Run without a window.")
	flag.BoolVar(&hcfg.Stdin, "stdin", true, "Read keys from the terminal in headless mode.")
	flag.DurationVar(&hcfg.Duration, "duration", 0, "Press escape after this long in headless mode (0 = never).")
	flag.BoolVar(&debug, "debug", false, "Log key presses and releases.")
	flag.BoolVar(&throttle, "throttle", false, "Pace the interpreter to real time instead of running at full speed.")
	flag.Parse()

	cfg := app.DefaultConfig()
	cfg.Adapter.Debug = debug
	cfg.NativeSpeed = !throttle
	run := func(h hal.HAL) { app.Run(h, cfg) }

	var (
		status hal.Status
		err    error
	)
	if hcfg.Enabled {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		status, err = hal.RunHeadless(ctx, run, hcfg)
		stop()
	} else {
		status, err = hal.RunWindow(run)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if status != hal.StatusSuccess {
		os.Exit(1)
	}
}
