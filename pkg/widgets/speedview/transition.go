package speedview

import (
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"github.com/roffe/speedview/pkg/gauge"
)

const (
	DefaultTransitionDuration = 1500 * time.Millisecond
	DefaultTransitionDelay    = 200 * time.Millisecond
)

// Transition is a running speed animation. Cancel stops it; no further speed
// updates are made afterwards.
type Transition struct {
	From, To float64

	view *SpeedView
	anim *fyne.Animation

	mu        sync.Mutex
	timer     *time.Timer
	cancelled bool
	done      chan struct{}
	doneOnce  sync.Once
}

func newTransition(view *SpeedView, from, to float64, duration time.Duration) *Transition {
	t := &Transition{
		From: from,
		To:   to,
		view: view,
		done: make(chan struct{}),
	}
	t.anim = fyne.NewAnimation(duration, t.tick)
	t.anim.Curve = fyne.AnimationLinear
	return t
}

func (t *Transition) start(delay time.Duration) {
	if delay <= 0 {
		t.anim.Start()
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.cancelled {
		return
	}
	t.timer = time.AfterFunc(delay, func() {
		if !t.Cancelled() {
			t.anim.Start()
		}
	})
}

func (t *Transition) tick(fraction float32) {
	if t.Cancelled() {
		return
	}
	if err := t.view.SetSpeed(gauge.Lerp(t.From, t.To, fraction)); err != nil {
		fyne.LogError("speed transition", err)
	}
	if fraction >= 1 {
		t.finish()
	}
}

func (t *Transition) finish() {
	t.doneOnce.Do(func() {
		close(t.done)
		t.view.transitionDone(t)
	})
}

// Cancel stops the transition. It is safe to call more than once.
func (t *Transition) Cancel() {
	t.mu.Lock()
	if t.cancelled {
		t.mu.Unlock()
		return
	}
	t.cancelled = true
	if t.timer != nil {
		t.timer.Stop()
	}
	t.mu.Unlock()

	t.anim.Stop()
	t.finish()
}

func (t *Transition) Cancelled() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.cancelled
}

// Done is closed when the transition completes or is cancelled.
func (t *Transition) Done() <-chan struct{} {
	return t.done
}
