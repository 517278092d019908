package engine

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hammamikhairi/stovetop/internal/catalog"
	"github.com/hammamikhairi/stovetop/internal/domain"
	"github.com/hammamikhairi/stovetop/internal/heat"
	"github.com/hammamikhairi/stovetop/internal/logger"
	"github.com/hammamikhairi/stovetop/internal/speech"
)

// Phase is where the current step's timer stands.
type Phase int

const (
	PhaseIdle          Phase = iota // step entered, timer not started
	PhaseRunning                    // counting down
	PhasePaused                     // stopped with time left
	PhaseExpired                    // reached zero
	PhaseAutoAdvancing              // counting down to the next step
	PhaseReviewing                  // past the last step
)

// String returns a human-readable phase.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseRunning:
		return "running"
	case PhasePaused:
		return "paused"
	case PhaseExpired:
		return "expired"
	case PhaseAutoAdvancing:
		return "auto_advancing"
	case PhaseReviewing:
		return "reviewing"
	default:
		return "unknown"
	}
}

// Scheduler defers work onto the goroutine that owns the Guide.
type Scheduler interface {
	After(d time.Duration, fn func()) uint64
	Cancel(token uint64)
	CancelAll()
}

// Prefetcher is implemented by speakers that can warm a cache.
type Prefetcher interface {
	Prefetch(ctx context.Context, texts ...string)
}

const (
	defaultAutoAdvance   = 10
	defaultAnnounceDelay = 500 * time.Millisecond
	heatAnnounceDelay    = 250 * time.Millisecond
	highlightDuration    = 2 * time.Second
)

// GuideOption configures a Guide.
type GuideOption func(*Guide)

// WithVoice controls whether the step announcement gates the timer. With
// voice off, a timed step starts counting as soon as it is entered.
func WithVoice(enabled bool) GuideOption {
	return func(g *Guide) {
		g.voice = enabled
	}
}

// WithAutoAdvance sets the countdown between an expired timer and the
// next step. Zero disables auto-advance.
func WithAutoAdvance(seconds int) GuideOption {
	return func(g *Guide) {
		g.autoAdvanceSeconds = seconds
	}
}

// WithAnnounceDelay sets the pause before the first step is read.
func WithAnnounceDelay(d time.Duration) GuideOption {
	return func(g *Guide) {
		g.announceDelay = d
	}
}

// WithOptimizedSteps marks step orders to cook on high heat.
func WithOptimizedSteps(orders ...int) GuideOption {
	return func(g *Guide) {
		for _, o := range orders {
			g.optimized[o] = true
		}
	}
}

// Guide walks the cook through a recipe one step at a time. It is not
// safe for concurrent use: every method must run on the goroutine that
// drives the Scheduler, normally the timer supervisor.
type Guide struct {
	recipe  *domain.Recipe
	steps   []domain.Step
	speaker domain.Speaker
	sched   Scheduler
	log     *logger.Logger
	ctx     context.Context

	voice              bool
	autoAdvanceSeconds int
	announceDelay      time.Duration
	optimized          map[int]bool

	index        int
	phase        Phase
	remaining    int
	elapsed      int // seconds run on this step, for the hint window
	segmentTotal int // seconds the current heat level was given
	heat         domain.HeatLevel
	heatElapsed  map[domain.HeatLevel]int
	alerts       speech.AlertState
	autoAdvance  int
	highlight    bool
	quit         bool

	lastUtterance  uint64
	announcementID uint64 // gates the timer; 0 when nothing is pending
	announceToken  uint64
	heatToken      uint64
	highlightToken uint64
}

// NewGuide creates a guide over the recipe's sorted steps.
func NewGuide(recipe *domain.Recipe, speaker domain.Speaker, sched Scheduler, log *logger.Logger, opts ...GuideOption) (*Guide, error) {
	steps := recipe.SortedSteps()
	if len(steps) == 0 {
		return nil, fmt.Errorf("recipe %q: %w", recipe.Name, domain.ErrNoMoreSteps)
	}
	g := &Guide{
		recipe:             recipe,
		steps:              steps,
		speaker:            speaker,
		sched:              sched,
		log:                log,
		ctx:                context.Background(),
		voice:              true,
		autoAdvanceSeconds: defaultAutoAdvance,
		announceDelay:      defaultAnnounceDelay,
		optimized:          make(map[int]bool),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

// Start enters the first step and schedules its announcement.
func (g *Guide) Start(ctx context.Context) {
	g.ctx = ctx
	g.index = 0
	g.resetStep()
	g.announceToken = g.sched.After(g.announceDelay, g.announceStep)
	g.log.Info("guiding %q (%d steps, %d optimized)", g.recipe.Name, len(g.steps), len(g.optimized))
}

// ── Navigation ───────────────────────────────────────────────────

// Next moves to the next step, or to review after the last one.
func (g *Guide) Next() {
	if g.phase == PhaseReviewing {
		return
	}
	g.leaveStep()
	if g.isLast() {
		g.phase = PhaseReviewing
		g.say(speech.LineAllDone(), domain.PaceNormal)
		g.log.Info("all %d steps done", len(g.steps))
		return
	}
	g.index++
	g.enterStep()
}

// Previous moves back one step. On the first step it only cancels the
// auto-advance and the voice; deferred work for the step is kept. From
// review it returns to the last step.
func (g *Guide) Previous() {
	if g.phase != PhaseReviewing && g.index == 0 {
		g.cancelAutoAdvance()
		g.speaker.Stop()
		// a cut-off announcement never finishes, so read it again
		if g.voice && g.announcementID != 0 && g.phase == PhaseIdle {
			g.announceStep()
		}
		return
	}
	g.leaveStep()
	if g.phase != PhaseReviewing {
		g.index--
	}
	g.enterStep()
}

// leaveStep drops everything pending for the current step.
func (g *Guide) leaveStep() {
	g.cancelAutoAdvance()
	g.sched.CancelAll()
	g.speaker.Stop()
	g.highlight = false
}

func (g *Guide) enterStep() {
	g.resetStep()
	g.announceStep()
}

func (g *Guide) resetStep() {
	g.phase = PhaseIdle
	g.remaining = 0
	g.elapsed = 0
	g.segmentTotal = 0
	g.heat = domain.HeatLow
	if g.isOptimized() {
		g.heat = domain.HeatHigh
	}
	g.heatElapsed = make(map[domain.HeatLevel]int)
	g.alerts = speech.AlertState{}
	g.autoAdvance = 0
	g.highlight = false
	g.announcementID = 0
	g.log.Debug("step %d/%d: %s", g.index+1, len(g.steps), g.current().Instruction)
}

// announceStep reads the step out. The timer starts when the reading
// finishes, or right away when voice is off.
func (g *Guide) announceStep() {
	d, timed := g.effectiveDuration()
	g.announcementID = g.say(speech.LineStepAnnouncement(g.index, g.current().Instruction, d), domain.PaceNormal)

	if p, ok := g.speaker.(Prefetcher); ok && !g.isLast() {
		next := g.steps[g.index+1]
		nd, _ := g.durationOf(g.index + 1)
		p.Prefetch(g.ctx, speech.LineStepAnnouncement(g.index+1, next.Instruction, nd))
	}

	if !g.voice && timed {
		g.startTimer(d)
	}
}

// ── Timer ────────────────────────────────────────────────────────

// ToggleTimer pauses a running timer or starts a stopped one. Returns
// domain.ErrNoActiveDuration when the step has nothing to time.
func (g *Guide) ToggleTimer() error {
	g.cancelAutoAdvance()
	switch g.phase {
	case PhaseReviewing:
		return nil
	case PhaseRunning:
		g.phase = PhasePaused
		g.speaker.Stop()
		return nil
	}
	d, ok := g.effectiveDuration()
	if !ok {
		return domain.ErrNoActiveDuration
	}
	g.startTimer(d)
	return nil
}

// AddMinute adds 60 seconds to the timer and to the current heat segment.
func (g *Guide) AddMinute() {
	if g.phase == PhaseReviewing {
		return
	}
	g.cancelAutoAdvance()
	g.remaining += 60
	g.segmentTotal += 60
	if g.phase == PhaseExpired {
		g.phase = PhasePaused
	}
}

func (g *Guide) startTimer(d int) {
	if g.remaining == 0 {
		g.remaining = d
		g.segmentTotal = d
	}
	g.phase = PhaseRunning
}

func (g *Guide) cancelAutoAdvance() {
	if g.phase == PhaseAutoAdvancing {
		g.phase = PhaseExpired
	}
	g.autoAdvance = 0
}

// Tick advances the clock by one second.
func (g *Guide) Tick() {
	switch g.phase {
	case PhaseRunning:
		if g.remaining <= 0 {
			g.expire()
			return
		}
		g.remaining--
		g.elapsed++

		total, _ := g.effectiveDuration()
		lines, st := speech.Alerts(speech.TickInput{
			Elapsed:   g.elapsed,
			Remaining: g.remaining,
			Total:     total,
			Action:    g.action(),
		}, g.alerts)
		g.alerts = st
		for _, u := range lines {
			g.say(u.Text, u.Pace)
		}

		if g.remaining == 0 {
			g.expire()
		}

	case PhaseAutoAdvancing:
		g.autoAdvance--
		if g.autoAdvance <= 0 {
			g.Next()
		}
	}
}

func (g *Guide) expire() {
	g.phase = PhaseExpired
	if !g.isLast() && g.autoAdvanceSeconds > 0 {
		g.phase = PhaseAutoAdvancing
		g.autoAdvance = g.autoAdvanceSeconds
	}
}

// HandleSpeech starts the timer once the current step's announcement
// has been read out in full.
func (g *Guide) HandleSpeech(ev domain.SpeechEvent) {
	if !ev.Finished || ev.ID == 0 || ev.ID != g.announcementID {
		return
	}
	g.announcementID = 0
	if d, ok := g.effectiveDuration(); ok && g.phase == PhaseIdle {
		g.startTimer(d)
	}
}

// ── Heat ─────────────────────────────────────────────────────────

// SwitchHeat moves the step to another flame level and rescales what is
// left of the timer. Each switch works on the time given to the current
// level, so switching back and forth does not drift. Once the timer has
// run out there is nothing left to rescale.
func (g *Guide) SwitchHeat(level domain.HeatLevel) error {
	switch g.phase {
	case PhaseExpired, PhaseAutoAdvancing, PhaseReviewing:
		return domain.ErrNoActiveDuration
	}
	d, ok := g.effectiveDuration()
	if !ok {
		return domain.ErrNoActiveDuration
	}

	g.sched.Cancel(g.announceToken)
	g.sched.Cancel(g.heatToken)
	g.speaker.Stop()

	// d is in the step's starting frame, only valid before any switch
	if g.segmentTotal == 0 {
		if g.remaining == 0 && g.phase == PhaseIdle && len(g.heatElapsed) == 0 {
			g.remaining = d
		}
		g.segmentTotal = g.remaining
	}

	elapsed := max(g.segmentTotal-g.remaining, 0)
	g.heatElapsed[g.heat] += elapsed

	remaining := heat.RemainingTime(elapsed, g.segmentTotal, g.heat, level)
	g.log.Debug("heat %s -> %s: %ds elapsed of %ds, %ds left", g.heat, level, elapsed, g.segmentTotal, remaining)

	g.heat = level
	g.remaining = remaining
	g.segmentTotal = remaining

	g.heatToken = g.sched.After(heatAnnounceDelay, func() {
		g.say(speech.LineHeatChanged(level, remaining), domain.PaceNormal)
	})

	g.sched.Cancel(g.highlightToken)
	g.highlight = true
	g.highlightToken = g.sched.After(highlightDuration, func() {
		g.highlight = false
	})

	if g.remaining == 0 && (g.phase == PhaseRunning || g.phase == PhasePaused) {
		g.expire()
	}
	return nil
}

// HeatElapsed returns the seconds spent on each level during this step,
// up to the last switch.
func (g *Guide) HeatElapsed() map[domain.HeatLevel]int {
	out := make(map[domain.HeatLevel]int, len(g.heatElapsed))
	for k, v := range g.heatElapsed {
		out[k] = v
	}
	return out
}

// ── Intents ──────────────────────────────────────────────────────

// HandleIntent applies a parsed user command.
func (g *Guide) HandleIntent(in domain.Intent) {
	switch in.Type {
	case domain.IntentNext:
		g.Next()
	case domain.IntentPrevious:
		g.Previous()
	case domain.IntentToggleTimer:
		if err := g.ToggleTimer(); errors.Is(err, domain.ErrNoActiveDuration) {
			g.say(speech.LineNoDuration(), domain.PaceNormal)
		}
	case domain.IntentAddMinute:
		g.AddMinute()
	case domain.IntentSwitchHeat:
		level, ok := domain.ParseHeatLevel(in.Payload)
		if !ok {
			g.say(speech.LineUnknown(in.Payload), domain.PaceNormal)
			return
		}
		if err := g.SwitchHeat(level); err != nil {
			g.say(speech.LineNoDuration(), domain.PaceNormal)
		}
	case domain.IntentRepeat:
		d, _ := g.effectiveDuration()
		g.say(speech.LineStepAnnouncement(g.index, g.current().Instruction, d), domain.PaceNormal)
	case domain.IntentStatus:
		g.say(speech.LineStatus(g.index, len(g.steps), g.remaining, g.phase == PhaseRunning), domain.PaceNormal)
	case domain.IntentHelp:
		g.say(speech.LineHelp(), domain.PaceNormal)
	case domain.IntentQuit:
		g.sched.CancelAll()
		g.speaker.Stop()
		g.quit = true
		g.log.Info("guide quit on step %d", g.index+1)
	default:
		g.say(speech.LineUnknown(in.Payload), domain.PaceNormal)
	}
}

// Finished reports whether the run is over, by review or by quitting.
func (g *Guide) Finished() bool {
	return g.quit || g.phase == PhaseReviewing
}

// Completed reports whether every step was walked through.
func (g *Guide) Completed() bool {
	return g.phase == PhaseReviewing
}

// Recipe returns the recipe being cooked.
func (g *Guide) Recipe() *domain.Recipe { return g.recipe }

// ── Helpers ──────────────────────────────────────────────────────

func (g *Guide) say(text string, pace domain.Pace) uint64 {
	g.lastUtterance++
	id := g.lastUtterance
	if err := g.speaker.Speak(g.ctx, domain.Utterance{ID: id, Text: text, Pace: pace}); err != nil {
		g.log.Warn("speak failed: %v", err)
	}
	return id
}

func (g *Guide) current() domain.Step { return g.steps[g.index] }

func (g *Guide) isLast() bool { return g.index == len(g.steps)-1 }

func (g *Guide) isOptimized() bool { return g.optimized[g.current().Order] }

func (g *Guide) action() domain.CookingAction {
	return catalog.DetectAction(g.current().Instruction)
}

func (g *Guide) effectiveDuration() (int, bool) {
	return g.durationOf(g.index)
}

// durationOf is the explicit or suggested duration of step i, cut to its
// high-heat time when the step was optimized up front.
func (g *Guide) durationOf(i int) (int, bool) {
	step := g.steps[i]
	d, _, ok := catalog.EffectiveDuration(step)
	if !ok {
		return 0, false
	}
	if g.optimized[step.Order] {
		d = heat.HighHeatSeconds(d)
	}
	return d, true
}

// rawBase is the low-heat duration, ignoring optimization.
func (g *Guide) rawBase() (int, bool) {
	d, _, ok := catalog.EffectiveDuration(g.current())
	return d, ok
}
