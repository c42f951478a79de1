// Package ebus is a small topic bus for float samples. The last value of each
// topic is kept for a while and replayed to new subscribers.
package ebus

import (
	"errors"
	"log"
	"sync"
	"time"

	"github.com/jellydator/ttlcache/v3"
)

const (
	TopicSpeedKmh = "speed.kmh"
	TopicSpeedMph = "speed.mph"

	DefaultTTL = time.Minute
)

var ErrFull = errors.New("publish channel full")

type Message struct {
	Topic string
	Value float64
}

type Bus struct {
	in    chan Message
	unsub chan chan float64
	quit  chan struct{}
	done  chan struct{}
	once  sync.Once

	subsMu sync.Mutex
	subs   map[string][]chan float64

	cache *ttlcache.Cache[string, float64]

	aggMu       sync.Mutex
	aggregators []*Aggregator
}

// New starts a bus whose last values expire after ttl.
func New(ttl time.Duration) *Bus {
	b := &Bus{
		in:    make(chan Message, 100),
		unsub: make(chan chan float64, 100),
		quit:  make(chan struct{}),
		done:  make(chan struct{}),
		subs:  make(map[string][]chan float64),
		cache: ttlcache.New[string, float64](
			ttlcache.WithTTL[string, float64](ttl),
		),
	}
	go b.run()
	return b
}

func (b *Bus) run() {
	defer close(b.done)
	for {
		select {
		case <-b.quit:
			b.closeSubs()
			return
		case msg := <-b.in:
			if v := b.cache.Get(msg.Topic); v != nil && v.Value() == msg.Value {
				continue
			}
			b.cache.Set(msg.Topic, msg.Value, ttlcache.DefaultTTL)
			b.subsMu.Lock()
			for _, sub := range b.subs[msg.Topic] {
				select {
				case sub <- msg.Value:
				default:
				}
			}
			b.subsMu.Unlock()
			b.aggMu.Lock()
			for _, agg := range b.aggregators {
				agg.fun(b, msg.Topic, msg.Value)
			}
			b.aggMu.Unlock()
		case unsub := <-b.unsub:
			b.remove(unsub)
		}
	}
}

func (b *Bus) remove(ch chan float64) {
	b.subsMu.Lock()
	defer b.subsMu.Unlock()
	for topic, subz := range b.subs {
		for i, sub := range subz {
			if sub != ch {
				continue
			}
			log.Println("Unsubscribe", topic)
			b.subs[topic] = append(subz[:i], subz[i+1:]...)
			if len(b.subs[topic]) == 0 {
				delete(b.subs, topic)
			}
			close(ch)
			return
		}
	}
}

func (b *Bus) closeSubs() {
	b.subsMu.Lock()
	defer b.subsMu.Unlock()
	for topic, subz := range b.subs {
		for _, sub := range subz {
			close(sub)
		}
		delete(b.subs, topic)
	}
}

// Close stops the bus and closes every subscriber channel still registered.
// It returns once the bus goroutine has exited.
func (b *Bus) Close() {
	b.once.Do(func() { close(b.quit) })
	<-b.done
}

// Publish queues a value. Repeating the last value of a topic is a no-op.
func (b *Bus) Publish(topic string, value float64) error {
	select {
	case b.in <- Message{Topic: topic, Value: value}:
		return nil
	default:
		return ErrFull
	}
}

// Last returns the cached value of topic.
func (b *Bus) Last(topic string) (float64, bool) {
	if itm := b.cache.Get(topic); itm != nil {
		return itm.Value(), true
	}
	return 0, false
}

func (b *Bus) Subscribe(topic string) chan float64 {
	ch := make(chan float64, 100)
	b.subsMu.Lock()
	b.subs[topic] = append(b.subs[topic], ch)
	b.subsMu.Unlock()
	if v, ok := b.Last(topic); ok {
		ch <- v
	}
	return ch
}

// SubscribeFunc calls f for every value of topic until the returned function
// is called.
func (b *Bus) SubscribeFunc(topic string, f func(float64)) func() {
	ch := b.Subscribe(topic)
	go func() {
		for v := range ch {
			f(v)
		}
	}()
	return func() {
		b.Unsubscribe(ch)
	}
}

func (b *Bus) Unsubscribe(ch chan float64) {
	b.unsub <- ch
}
