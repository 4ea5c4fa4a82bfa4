package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/stockout/internal/dynamo"
	"github.com/san-kum/stockout/internal/report"
)

const (
	frameInterval = time.Second / 30
	maxSpeed      = 64
	chartWidth    = 60
)

var (
	chartStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	statsStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(lipgloss.Color("240")).
			Padding(1, 2).
			Width(40)
)

type TickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg { return TickMsg(t) })
}

// Replay steps through a finished run at a configurable speed.
type Replay struct {
	res      *dynamo.Result
	capacity float64
	head     int
	speed    int
	running  bool
	showHelp bool
}

// NewReplay returns a replay positioned at hour zero and playing.
func NewReplay(res *dynamo.Result) Replay {
	capacity := 0.0
	for _, s := range res.Trajectory {
		capacity = max(capacity, s.Level)
	}
	return Replay{res: res, capacity: capacity, speed: 1, running: true}
}

func (m Replay) Init() tea.Cmd { return tick() }

func (m Replay) Head() int    { return m.head }
func (m Replay) Speed() int   { return m.speed }
func (m Replay) Paused() bool { return !m.running }
func (m Replay) Done() bool   { return m.head >= len(m.res.Trajectory)-1 }

func (m Replay) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "r":
			m.head = 0
			m.running = true
		case "[":
			m.running = false
			m.seek(-1)
		case "]":
			m.running = false
			m.seek(1)
		case "+", "=":
			m.speed = min(m.speed*2, maxSpeed)
		case "-", "_":
			m.speed = max(m.speed/2, 1)
		case "?":
			m.showHelp = !m.showHelp
		}
	case TickMsg:
		if m.running {
			m.seek(m.speed)
			if m.Done() {
				m.running = false
			}
		}
		return m, tick()
	}
	return m, nil
}

func (m *Replay) seek(delta int) {
	m.head = max(0, min(m.head+delta, len(m.res.Trajectory)-1))
}

func (m Replay) View() string {
	if len(m.res.Trajectory) == 0 {
		return "no samples\n"
	}
	sample := m.res.Trajectory[m.head]
	price := m.res.Prices[m.head]

	levels := m.res.Trajectory.Levels()[:m.head+1]
	chart := "waiting for samples"
	if len(levels) > 1 {
		chart = asciigraph.Plot(Downsample(levels, chartWidth),
			asciigraph.Height(10),
			asciigraph.Width(chartWidth),
			asciigraph.Caption("inventory (units)"),
		)
	}

	status := "PLAYING"
	switch {
	case m.Done() && m.res.Depleted():
		status = Depleted.Render("STOCK-OUT")
	case m.Done():
		status = Healthy.Render("COMPLETE")
	case !m.running:
		status = Warning.Render("PAUSED")
	}

	var s strings.Builder
	s.WriteString(Title.Render("INVENTORY REPLAY") + "\n")
	s.WriteString(status + "\n\n")
	s.WriteString(Label.Render("Hour") + Value.Render(fmt.Sprintf("%.1f", sample.Time)) + "\n")
	s.WriteString(Label.Render("Inventory") + Value.Render(fmt.Sprintf("%.1f u", sample.Level)) + "\n")
	s.WriteString(Label.Render("Price") + Value.Render("$"+report.Money(price).StringFixed(2)) + "\n")
	s.WriteString(Label.Render("Speed") + Value.Render(fmt.Sprintf("%dx", m.speed)) + "\n\n")
	s.WriteString(StockBar(sample.Level, m.capacity, 30) + "\n\n")
	s.WriteString(Muted.Render("price "+Sparkline(m.res.Prices[:m.head+1], 30)) + "\n")
	s.WriteString(KeyHint.Render("\nSP:Pause R:Restart Q:Quit\n[ ]:Step +/-:Speed ?:Help"))

	view := lipgloss.JoinHorizontal(lipgloss.Top, chartStyle.Render(chart), statsStyle.Render(s.String()))
	if m.showHelp {
		return Panel.Render(helpText) + "\n" + view
	}
	return view
}

const helpText = `Space  pause or resume
R      restart from hour zero
[ ]    step one sample while paused
+ -    double or halve playback speed
Q      quit`
