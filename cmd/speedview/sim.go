package main

import (
	"log"
	"math"
	"time"

	"github.com/roffe/speedview/pkg/ebus"
)

const simInterval = 50 * time.Millisecond

// simSpeed is a slow sweep between zero and maxSpeed with some ripple.
func simSpeed(t time.Duration, maxSpeed float64) float64 {
	s := t.Seconds()
	v := maxSpeed * (0.5 - 0.45*math.Cos(s*2*math.Pi/20) + 0.03*math.Sin(s*2*math.Pi*1.3))
	return math.Max(0, math.Min(maxSpeed, v))
}

// simulate publishes km/h samples until the returned function is called.
func simulate(bus *ebus.Bus, maxSpeed float64) func() {
	quit := make(chan struct{})
	go func() {
		t := time.NewTicker(simInterval)
		defer t.Stop()
		start := time.Now()
		for {
			select {
			case <-quit:
				return
			case now := <-t.C:
				if err := bus.Publish(ebus.TopicSpeedKmh, math.Round(simSpeed(now.Sub(start), maxSpeed))); err != nil {
					log.Println("sim:", err)
				}
			}
		}
	}()
	return func() { close(quit) }
}
