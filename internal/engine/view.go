package engine

import (
	"fmt"

	"github.com/hammamikhairi/stovetop/internal/domain"
	"github.com/hammamikhairi/stovetop/internal/heat"
)

// View is a read-only snapshot of the guide for rendering.
type View struct {
	RecipeName  string
	Index       int
	Count       int
	Instruction string
	Action      domain.CookingAction
	Phase       Phase
	Time        string // "MM:SS"
	Remaining   int
	Heat        domain.HeatLevel
	HeatOptions []heat.Option
	Progress    float64
	AutoAdvance int
	NextPreview string
	Highlight   bool
	CanOptimize bool
	Optimized   bool
}

// View snapshots the current state.
func (g *Guide) View() View {
	step := g.current()
	action := g.action()
	_, timed := g.effectiveDuration()

	v := View{
		RecipeName:  g.recipe.Name,
		Index:       g.index,
		Count:       len(g.steps),
		Instruction: step.Instruction,
		Action:      action,
		Phase:       g.phase,
		Time:        g.timeString(),
		Remaining:   g.remaining,
		Heat:        g.heat,
		HeatOptions: g.heatOptions(action),
		Progress:    float64(g.index+1) / float64(len(g.steps)),
		AutoAdvance: g.autoAdvance,
		Highlight:   g.highlight,
		CanOptimize: timed && heat.CanOptimize(action),
		Optimized:   g.isOptimized(),
	}
	if !g.isLast() {
		v.NextPreview = g.steps[g.index+1].Instruction
	}
	return v
}

// timeString shows the countdown, or the full duration before it starts.
func (g *Guide) timeString() string {
	t := g.remaining
	if g.phase != PhaseRunning && t == 0 {
		t, _ = g.effectiveDuration()
	}
	return fmt.Sprintf("%02d:%02d", t/60, t%60)
}

// heatOptions lists what each flame level would leave on the clock. Once
// time has run on the current level the options are recomputed from it.
func (g *Guide) heatOptions(action domain.CookingAction) []heat.Option {
	base, ok := g.rawBase()
	if !ok {
		return nil
	}
	if elapsed := g.segmentTotal - g.remaining; g.segmentTotal > 0 && elapsed > 0 {
		return heat.RemainingOptions(elapsed, g.segmentTotal, g.heat, action)
	}
	return heat.Options(base, action, domain.HeatLow)
}
