package model

import (
	"sync"
	"time"
)

// DefaultInvalidMoveDelay is how long the invalid-move indicator stays up.
const DefaultInvalidMoveDelay = 2 * time.Second

// invalidMoveIndicator is the one piece of board-adjacent state touched off
// the click goroutine: the auto-hide timer flips it back after delay.
type invalidMoveIndicator struct {
	mu      sync.Mutex
	visible bool
	// generation identifies the current Show; a timer from an earlier Show
	// that fires late must not hide a newer one.
	generation uint64
	delay      time.Duration
	timer   *time.Timer
	onShow  func()
	onHide  func()
}

func newInvalidMoveIndicator(delay time.Duration, onShow, onHide func()) *invalidMoveIndicator {
	if delay <= 0 {
		delay = DefaultInvalidMoveDelay
	}
	return &invalidMoveIndicator{
		delay:  delay,
		onShow: onShow,
		onHide: onHide,
	}
}

// Show raises the indicator and (re)starts the auto-hide timer.
func (i *invalidMoveIndicator) Show() {
	i.mu.Lock()
	i.visible = true
	i.generation++
	gen := i.generation
	if i.timer != nil {
		i.timer.Stop()
	}
	i.timer = time.AfterFunc(i.delay, func() { i.expire(gen) })
	i.mu.Unlock()

	i.onShow()
}

// Hide lowers the indicator. Hiding a hidden indicator does nothing.
func (i *invalidMoveIndicator) Hide() {
	i.mu.Lock()
	i.hideLocked()
}

func (i *invalidMoveIndicator) expire(gen uint64) {
	i.mu.Lock()
	if gen != i.generation {
		i.mu.Unlock()
		return
	}
	i.hideLocked()
}

// hideLocked is entered with i.mu held and releases it before notifying.
func (i *invalidMoveIndicator) hideLocked() {
	wasVisible := i.visible
	i.visible = false
	if i.timer != nil {
		i.timer.Stop()
		i.timer = nil
	}
	i.mu.Unlock()

	if wasVisible {
		i.onHide()
	}
}

func (i *invalidMoveIndicator) Visible() bool {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.visible
}
