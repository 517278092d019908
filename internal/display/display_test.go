package display

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/hammamikhairi/stovetop/internal/domain"
	"github.com/hammamikhairi/stovetop/internal/engine"
	"github.com/hammamikhairi/stovetop/internal/heat"
)

func sampleView() engine.View {
	return engine.View{
		RecipeName:  "Pasta",
		Index:       1,
		Count:       4,
		Instruction: "Boil the pasta",
		Action:      domain.ActionBoil,
		Phase:       engine.PhaseRunning,
		Time:        "09:00",
		Remaining:   540,
		Heat:        domain.HeatLow,
		HeatOptions: heat.RemainingOptions(60, 600, domain.HeatLow, domain.ActionBoil),
		Progress:    0.5,
		NextPreview: "Simmer the sauce",
		CanOptimize: true,
	}
}

func TestModelRendersView(t *testing.T) {
	m := newModel(make(chan string, 1), make(chan struct{}), nil)

	updated, cmd := m.Update(viewMsg(sampleView()))
	if cmd == nil {
		t.Error("a new view should set the window title")
	}
	out := updated.(model).View()

	for _, want := range []string{"Pasta", "Step 2/4", "Boil the pasta", "09:00", "running", "Next: Simmer the sauce", "high 1 min 48 sec", "50%"} {
		if !strings.Contains(out, want) {
			t.Errorf("view missing %q:\n%s", want, out)
		}
	}
}

func TestModelReviewing(t *testing.T) {
	v := sampleView()
	v.Phase = engine.PhaseReviewing
	out := renderCard(v, 60)
	if !strings.Contains(out, "All steps done") || strings.Contains(out, "Boil the pasta") {
		t.Errorf("card = %s", out)
	}
}

func TestEnterSendsInput(t *testing.T) {
	inputCh := make(chan string, 1)
	m := newModel(inputCh, make(chan struct{}), nil)
	m.input.SetValue("next")

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	select {
	case got := <-inputCh:
		if got != "next" {
			t.Errorf("input = %q", got)
		}
	default:
		t.Fatal("enter should send the line")
	}
	if updated.(model).input.Value() != "" {
		t.Error("input should be cleared")
	}

	// blank lines are not sent
	m.input.SetValue("   ")
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if len(inputCh) != 0 {
		t.Error("blank input was sent")
	}
}

func TestPhaseLabel(t *testing.T) {
	tests := []struct {
		view engine.View
		want string
	}{
		{engine.View{Phase: engine.PhaseIdle, Time: "00:00"}, "no timer"},
		{engine.View{Phase: engine.PhaseIdle, Time: "05:00"}, "ready"},
		{engine.View{Phase: engine.PhasePaused}, "paused"},
		{engine.View{Phase: engine.PhaseExpired}, "time's up"},
		{engine.View{Phase: engine.PhaseAutoAdvancing, AutoAdvance: 7}, "next step in 7s"},
	}
	for _, tt := range tests {
		if got := phaseLabel(tt.view); got != tt.want {
			t.Errorf("phaseLabel(%s) = %q, want %q", tt.view.Phase, got, tt.want)
		}
	}
}

func TestProgressBar(t *testing.T) {
	bar := progressBar(0.25, 8)
	if strings.Count(bar, "━") != 2 || strings.Count(bar, "─") != 6 || !strings.Contains(bar, "25%") {
		t.Errorf("bar = %q", bar)
	}
	if strings.Count(progressBar(3, 4), "━") != 4 {
		t.Error("progress is clamped to 100%")
	}
}

func TestRenderBanner(t *testing.T) {
	out := renderBanner(200)
	if !strings.HasPrefix(out, " ") || strings.Count(out, "\n") < 3 {
		t.Errorf("banner = %q", out)
	}
}
