package carousel

import (
	"math"
	"sync"
	"time"

	"egramseva-backend/internal/models"
)

// Viewport breakpoints, in CSS pixels. Widths below mobileBreakpoint use
// the mobile items-per-view, below tabletBreakpoint the tablet one.
const (
	mobileBreakpoint = 768
	tabletBreakpoint = 1024

	// swipeThresholdPX is the horizontal distance a drag or touch gesture
	// must cover before it triggers a slide change.
	swipeThresholdPX = 50
)

// Engine drives one carousel instance: a current slide index plus a
// transient transition lock. All navigation paths (arrows, keys, swipes,
// indicator clicks, autoplay) funnel through goToSlide.
type Engine struct {
	mu sync.Mutex

	cfg       models.CarouselConfig
	itemCount int

	viewportWidth int
	currentIndex  int
	transitioning bool
	hovered       bool

	onChange func(index int)

	transitionTimer *time.Timer
	autoplayStop    chan struct{}
}

// NewEngine creates an engine for itemCount items. Zero or negative
// items-per-view values in the config are normalised to 1.
func NewEngine(cfg models.CarouselConfig, itemCount int) *Engine {
	if cfg.ItemsPerView < 1 {
		cfg.ItemsPerView = 1
	}
	if cfg.ItemsPerViewTablet < 1 {
		cfg.ItemsPerViewTablet = cfg.ItemsPerView
	}
	if cfg.ItemsPerViewMobile < 1 {
		cfg.ItemsPerViewMobile = 1
	}
	if itemCount < 0 {
		itemCount = 0
	}

	e := &Engine{
		cfg:           cfg,
		itemCount:     itemCount,
		viewportWidth: tabletBreakpoint, // desktop until told otherwise
	}
	e.restartAutoplayLocked()
	return e
}

// OnSlideChange registers the notification fired after every index change.
func (e *Engine) OnSlideChange(fn func(index int)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.onChange = fn
}

// Config returns the engine's configuration.
func (e *Engine) Config() models.CarouselConfig {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.cfg
}

// ItemCount returns the number of items behind the carousel.
func (e *Engine) ItemCount() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.itemCount
}

// SetViewportWidth records the current viewport width and re-clamps the
// index, since the slide count may shrink when more items fit per view.
func (e *Engine) SetViewportWidth(width int) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if width <= 0 {
		return
	}
	e.viewportWidth = width

	if max := e.totalSlidesLocked() - 1; e.currentIndex > max && max >= 0 {
		e.currentIndex = max
	}
	e.restartAutoplayLocked()
}

// EffectiveItemsPerView resolves items-per-view for the current viewport.
func (e *Engine) EffectiveItemsPerView() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.effectiveItemsPerViewLocked()
}

func (e *Engine) effectiveItemsPerViewLocked() int {
	switch {
	case e.viewportWidth < mobileBreakpoint:
		return e.cfg.ItemsPerViewMobile
	case e.viewportWidth < tabletBreakpoint:
		return e.cfg.ItemsPerViewTablet
	default:
		return e.cfg.ItemsPerView
	}
}

// TotalSlides is ceil(itemCount / effectiveItemsPerView), never below 1
// unless there are no items at all.
func (e *Engine) TotalSlides() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.totalSlidesLocked()
}

func (e *Engine) totalSlidesLocked() int {
	if e.itemCount == 0 {
		return 0
	}
	perView := e.effectiveItemsPerViewLocked()
	return int(math.Ceil(float64(e.itemCount) / float64(perView)))
}

// CurrentIndex returns the active slide index.
func (e *Engine) CurrentIndex() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.currentIndex
}

// IsTransitioning reports whether the transition lock is held.
func (e *Engine) IsTransitioning() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.transitioning
}

// GoToSlide navigates to the target slide. Requests arriving while a
// transition is in flight are dropped, not queued. With loop on, the target
// wraps modulo the slide count; otherwise it clamps to the valid range.
func (e *Engine) GoToSlide(target int) {
	e.goToSlide(target, false)
}

// GoToSlideForced navigates even while a transition is in flight. Used for
// programmatic jumps that must not be lost, e.g. restoring editor state.
func (e *Engine) GoToSlideForced(target int) {
	e.goToSlide(target, true)
}

func (e *Engine) goToSlide(target int, skipGuard bool) {
	e.mu.Lock()

	total := e.totalSlidesLocked()
	if total <= 1 {
		e.mu.Unlock()
		return
	}
	if e.transitioning && !skipGuard {
		e.mu.Unlock()
		return
	}

	if e.cfg.Loop {
		target = ((target % total) + total) % total
	} else {
		if target < 0 {
			target = 0
		}
		if target > total-1 {
			target = total - 1
		}
	}

	if target == e.currentIndex {
		e.mu.Unlock()
		return
	}

	e.currentIndex = target
	notify := e.onChange

	// A zero transition duration never takes the lock, so back-to-back
	// navigation stays deterministic for instant-transition carousels.
	duration := time.Duration(e.cfg.TransitionDurationMS) * time.Millisecond
	if duration > 0 {
		e.transitioning = true
		if e.transitionTimer != nil {
			e.transitionTimer.Stop()
		}
		e.transitionTimer = time.AfterFunc(duration, func() {
			e.mu.Lock()
			e.transitioning = false
			e.mu.Unlock()
		})
	}
	e.mu.Unlock()

	if notify != nil {
		notify(target)
	}
}

// GoToNext advances one slide.
func (e *Engine) GoToNext() {
	e.GoToSlide(e.CurrentIndex() + 1)
}

// GoToPrev steps back one slide.
func (e *Engine) GoToPrev() {
	e.GoToSlide(e.CurrentIndex() - 1)
}

// HandleKey processes arrow-key navigation while the carousel has focus.
// Unknown keys are ignored.
func (e *Engine) HandleKey(key string) {
	switch key {
	case "ArrowLeft":
		e.GoToPrev()
	case "ArrowRight":
		e.GoToNext()
	}
}

// EndDrag resolves a completed horizontal drag or touch gesture. Only the
// release delta matters: exceeding the threshold triggers a single discrete
// slide change in the drag direction. There is no mid-gesture following.
func (e *Engine) EndDrag(deltaPX float64) {
	if deltaPX <= -swipeThresholdPX {
		e.GoToNext()
	} else if deltaPX >= swipeThresholdPX {
		e.GoToPrev()
	}
}

// SetHovered records pointer hover, pausing autoplay when configured.
func (e *Engine) SetHovered(hovered bool) {
	e.mu.Lock()
	e.hovered = hovered
	e.restartAutoplayLocked()
	e.mu.Unlock()
}

// restartAutoplayLocked tears down and recreates the autoplay timer from
// the current config and state. The timer is uniquely owned: any state
// change that affects autoplay goes through here, so duplicate tickers
// cannot accumulate.
func (e *Engine) restartAutoplayLocked() {
	if e.autoplayStop != nil {
		close(e.autoplayStop)
		e.autoplayStop = nil
	}

	paused := e.hovered && e.cfg.PauseOnHover
	if !e.cfg.AutoPlay || paused || e.totalSlidesLocked() <= 1 {
		return
	}

	interval := time.Duration(e.cfg.IntervalMS) * time.Millisecond
	if interval <= 0 {
		interval = time.Second
	}

	stop := make(chan struct{})
	e.autoplayStop = stop

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
				if !e.IsTransitioning() {
					e.GoToNext()
				}
			}
		}
	}()
}

// Close stops the autoplay goroutine and any pending transition timer.
func (e *Engine) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.autoplayStop != nil {
		close(e.autoplayStop)
		e.autoplayStop = nil
	}
	if e.transitionTimer != nil {
		e.transitionTimer.Stop()
		e.transitionTimer = nil
	}
}

// TranslatePercent is the horizontal track offset for the current index,
// as a CSS translateX percentage. A degenerate single-slide carousel stays
// fixed at 0%.
func (e *Engine) TranslatePercent() float64 {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.totalSlidesLocked() <= 1 {
		return 0
	}
	perView := e.effectiveItemsPerViewLocked()
	offset := -float64(e.currentIndex) * (100 / float64(perView))

	if e.cfg.LayoutType == models.CarouselCentered && e.cfg.CenteredSlides {
		// Shift half the leftover viewport so the active slide sits centred.
		offset += (100 - 100/float64(perView)) / 2
	}
	return offset
}

// SlideVisibility classifies an item's appearance in centered+partial mode.
type SlideVisibility int

const (
	SlideActive SlideVisibility = iota
	SlideDimmed
	SlideHidden
)

// VisibilityOf reports how an item index should appear. Outside
// centered+partial mode every slide is active; inside it, immediate
// neighbours are dimmed and anything further is hidden and
// non-interactive.
func (e *Engine) VisibilityOf(index int) SlideVisibility {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !(e.cfg.LayoutType == models.CarouselCentered && e.cfg.CenteredSlides && e.cfg.PartialVisible) {
		return SlideActive
	}

	distance := index - e.currentIndex
	if distance < 0 {
		distance = -distance
	}
	switch distance {
	case 0:
		return SlideActive
	case 1:
		return SlideDimmed
	default:
		return SlideHidden
	}
}

// ArrowsEnabled reports whether prev/next arrows should render, and
// whether each end is disabled when looping is off.
func (e *Engine) ArrowsEnabled() (show, prevEnabled, nextEnabled bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	total := e.totalSlidesLocked()
	if !e.cfg.ShowArrows || e.itemCount <= e.effectiveItemsPerViewLocked() {
		return false, false, false
	}
	if e.cfg.Loop {
		return true, true, true
	}
	return true, e.currentIndex > 0, e.currentIndex < total-1
}
