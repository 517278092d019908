// Package heat converts cooking times between flame levels.
//
// Every conversion goes through the low-heat equivalent: seconds on the
// current level are divided by its multiplier, then multiplied by the
// target's. All functions are pure.
package heat

import (
	"fmt"
	"math"

	"github.com/hammamikhairi/stovetop/internal/catalog"
	"github.com/hammamikhairi/stovetop/internal/domain"
)

const (
	// MinOptionSeconds floors every heat option.
	MinOptionSeconds = 30
	// MinRemainingSeconds floors a mid-cook recalculation.
	MinRemainingSeconds = 15

	minOptimizableSeconds = 60
	minSavingsSeconds     = 30
)

// Option is one heat level choice for a step.
type Option struct {
	Level   domain.HeatLevel
	Seconds int
	Safe    bool
	Warning string
}

// Candidate is a step worth cooking on high heat.
type Candidate struct {
	Index     int
	Step      domain.Step
	Action    domain.CookingAction
	Seconds   int
	Optimized int
}

// Savings is the time won by cooking the candidate on high.
func (c Candidate) Savings() int { return c.Seconds - c.Optimized }

var optimizable = map[domain.CookingAction]bool{
	domain.ActionBoil:    true,
	domain.ActionSimmer:  true,
	domain.ActionFry:     true,
	domain.ActionStirFry: true,
	domain.ActionHeat:    true,
	domain.ActionCook:    true,
	domain.ActionSteam:   true,
}

// CanOptimize reports whether the action's time depends on flame level.
func CanOptimize(action domain.CookingAction) bool {
	return optimizable[action]
}

// epsilon absorbs float error so 240*0.2 ceils to 48, not 49.
const epsilon = 1e-9

func convert(seconds int, from, to domain.HeatLevel) int {
	low := float64(seconds) / from.Multiplier()
	return int(math.Ceil(low*to.Multiplier() - epsilon))
}

// Options returns the low, medium and high choices for a duration given
// at baseHeat. Each is at least 30 seconds.
func Options(base int, action domain.CookingAction, baseHeat domain.HeatLevel) []Option {
	opts := make([]Option, 0, len(domain.HeatLevels))
	for _, level := range domain.HeatLevels {
		opt := Option{
			Level:   level,
			Seconds: max(convert(base, baseHeat, level), MinOptionSeconds),
			Safe:    true,
		}
		if level == domain.HeatHigh {
			opt.Safe, opt.Warning = highHeatAdvice(action)
		}
		opts = append(opts, opt)
	}
	return opts
}

func highHeatAdvice(action domain.CookingAction) (bool, string) {
	switch action {
	case domain.ActionSimmer:
		return false, "High heat may affect texture"
	case domain.ActionCook:
		return true, "Watch closely to avoid burning"
	}
	return true, ""
}

// RemainingTime recomputes what is left of a step after switching from
// current to target. elapsed and totalOnCurrent are both measured on the
// level being left. Returns 0 when nothing remains, else at least 15.
func RemainingTime(elapsed, totalOnCurrent int, current, target domain.HeatLevel) int {
	remaining := totalOnCurrent - elapsed
	if remaining <= 0 {
		return 0
	}
	return max(convert(remaining, current, target), MinRemainingSeconds)
}

// RemainingOptions is Options for a step already under way: what is
// left on each level after elapsed seconds of a totalOnCurrent run.
func RemainingOptions(elapsed, totalOnCurrent int, current domain.HeatLevel, action domain.CookingAction) []Option {
	opts := make([]Option, 0, len(domain.HeatLevels))
	for _, level := range domain.HeatLevels {
		opt := Option{
			Level:   level,
			Seconds: RemainingTime(elapsed, totalOnCurrent, current, level),
			Safe:    true,
		}
		if level == domain.HeatHigh {
			opt.Safe, opt.Warning = highHeatAdvice(action)
		}
		opts = append(opts, opt)
	}
	return opts
}

// HighHeatSeconds is the high-flame equivalent of a low-flame duration.
func HighHeatSeconds(seconds int) int {
	return max(convert(seconds, domain.HeatLow, domain.HeatHigh), MinOptionSeconds)
}

// EstimateTotal sums every step's explicit or suggested duration.
func EstimateTotal(steps []domain.Step) int {
	total := 0
	for _, s := range steps {
		if d, _, ok := catalog.EffectiveDuration(s); ok {
			total += d
		}
	}
	return total
}

// EstimateOptimized is EstimateTotal with every optimizable step cooked
// on high heat.
func EstimateOptimized(steps []domain.Step) int {
	total := 0
	for _, s := range steps {
		d, action, ok := catalog.EffectiveDuration(s)
		if !ok {
			continue
		}
		if CanOptimize(action) {
			d = HighHeatSeconds(d)
		}
		total += d
	}
	return total
}

// OptimizableSteps lists steps longer than a minute whose high-heat
// version saves more than 30 seconds.
func OptimizableSteps(steps []domain.Step) []Candidate {
	var out []Candidate
	for i, s := range steps {
		d, action, ok := catalog.EffectiveDuration(s)
		if !ok || !CanOptimize(action) || d <= minOptimizableSeconds {
			continue
		}
		c := Candidate{Index: i, Step: s, Action: action, Seconds: d, Optimized: HighHeatSeconds(d)}
		if c.Savings() <= minSavingsSeconds {
			continue
		}
		out = append(out, c)
	}
	return out
}

// FormatTime renders seconds as "45 sec", "3 min" or "3 min 20 sec".
func FormatTime(seconds int) string {
	if seconds < 60 {
		return fmt.Sprintf("%d sec", seconds)
	}
	m, s := seconds/60, seconds%60
	if s == 0 {
		return fmt.Sprintf("%d min", m)
	}
	return fmt.Sprintf("%d min %d sec", m, s)
}
