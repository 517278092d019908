package domain

import "strings"

// HeatLevel is the flame setting for a step. Low is the baseline every
// conversion passes through.
type HeatLevel int

const (
	HeatLow HeatLevel = iota
	HeatMedium
	HeatHigh
)

// HeatLevels lists all levels from low to high.
var HeatLevels = []HeatLevel{HeatLow, HeatMedium, HeatHigh}

type heatInfo struct {
	name       string
	label      string
	short      string
	multiplier float64
}

var heatTable = [...]heatInfo{
	HeatLow:    {"low", "Low Flame", "🔵 Low", 1.0},
	HeatMedium: {"medium", "Medium Flame", "🟠 Medium", 0.6},
	HeatHigh:   {"high", "High Flame", "🔴 High", 0.2},
}

func (h HeatLevel) info() heatInfo {
	if h < 0 || int(h) >= len(heatTable) {
		return heatTable[HeatLow]
	}
	return heatTable[h]
}

// String returns "low", "medium" or "high".
func (h HeatLevel) String() string { return h.info().name }

// Label returns the spoken/display label, e.g. "High Flame".
func (h HeatLevel) Label() string { return h.info().label }

// ShortLabel returns a compact label with a colour marker.
func (h HeatLevel) ShortLabel() string { return h.info().short }

// Multiplier is the time factor relative to low heat.
func (h HeatLevel) Multiplier() float64 { return h.info().multiplier }

// ParseHeatLevel maps "low", "med", "medium", "high" to a level.
func ParseHeatLevel(s string) (HeatLevel, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "low":
		return HeatLow, true
	case "med", "medium":
		return HeatMedium, true
	case "high":
		return HeatHigh, true
	}
	return HeatLow, false
}
