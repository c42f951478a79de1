package ebus

import "log"

// KmhToMph converts kilometres per hour to miles per hour.
const KmhToMph = 0.621371

type AggregatorFunc func(b *Bus, topic string, value float64)

// Aggregator derives new topics from published ones. It runs on the bus
// goroutine.
type Aggregator struct {
	fun AggregatorFunc
}

func NewAggregator(f AggregatorFunc) *Aggregator {
	return &Aggregator{fun: f}
}

func (b *Bus) RegisterAggregator(aggs ...*Aggregator) {
	b.aggMu.Lock()
	defer b.aggMu.Unlock()
outer:
	for _, agg := range aggs {
		for _, existing := range b.aggregators {
			if existing == agg {
				continue outer
			}
		}
		b.aggregators = append(b.aggregators, agg)
	}
}

// ScaleAggregator publishes every value of in multiplied by factor as out.
func ScaleAggregator(in, out string, factor float64) *Aggregator {
	return NewAggregator(func(b *Bus, topic string, value float64) {
		if topic != in {
			return
		}
		if err := b.Publish(out, value*factor); err != nil {
			log.Println("aggregate", out, err)
		}
	})
}
