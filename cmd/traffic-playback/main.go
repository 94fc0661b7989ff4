package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"time"

	lib "github.com/theoremus-urban-solutions/traffic-playback"
	"github.com/theoremus-urban-solutions/traffic-playback/playback"
)

func main() {
	mode := flag.String("mode", "serve", "serve|oneshot")
	source := flag.String("source", "", "source name from config.sources[]")
	identifier := flag.String("identifier", "", "run identifier override (default derived from today's UTC date)")
	step := flag.Int("step", -1, "frame index to print in oneshot mode (default current)")
	stats := flag.Bool("stats", false, "print run statistics instead of a frame (oneshot)")
	flag.Parse()

	lib.InitLogging()
	if err := lib.LoadAppConfig(); err != nil {
		panic(err)
	}

	switch *mode {
	case "serve":
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		if err := lib.InitController(ctx, *source); err != nil {
			// not fatal: the service starts in the failed state and
			// /api/playback/reload can retry
			fmt.Printf("initial load failed: %v\n", err)
		}
		cancel()
		lib.StartServer()
		lib.HandleGracefulShutdown()
	case "oneshot":
		c := lib.NewControllerFromConfig(*source)
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		var err error
		if *identifier != "" {
			err = c.Load(ctx, *identifier)
		} else {
			err = c.Initialize(ctx)
		}
		if err != nil {
			panic(err)
		}
		var buf []byte
		if *stats {
			buf, err = json.MarshalIndent(c.Statistics(), "", "  ")
		} else {
			if *step >= 0 {
				c.SetStep(*step)
			}
			buf, err = json.MarshalIndent(playback.BuildFrameView(c.CurrentFrame()), "", "  ")
		}
		if err != nil {
			panic(err)
		}
		fmt.Println(string(buf))
	default:
		panic("unknown mode")
	}
}
