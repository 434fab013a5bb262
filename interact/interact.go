// Package interact browses the returns of a scan in the terminal. The
// selected return is highlighted in a PNG that is rewritten on every move.
package interact

import (
	"fmt"
	"math"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jdginn/go-lidar2d/optics"
)

var docStyle = lipgloss.NewStyle().Margin(1, 2)

type item struct {
	index       int
	measurement optics.Measurement
	absolute    float64
}

func (i item) Title() string {
	return fmt.Sprintf("#%d  %.3f m", i.index, i.measurement.Distance)
}

func (i item) Description() string {
	return fmt.Sprintf("%.2f° relative, %.2f° absolute",
		i.measurement.Angle*180/math.Pi, i.absolute*180/math.Pi)
}

func (i item) FilterValue() string {
	return i.Title()
}

type model struct {
	list     list.Model
	view     optics.View
	sensor   optics.Sensor
	scan     []optics.Point
	filename string
	selected int
	err      error
}

func newModel(view optics.View, sensor optics.Sensor, measurements []optics.Measurement, filename string) model {
	items := make([]list.Item, len(measurements))
	for i, m := range measurements {
		items[i] = item{index: i, measurement: m, absolute: m.Absolute(sensor)}
	}

	m := model{
		list:     list.New(items, list.NewDefaultDelegate(), 0, 0),
		view:     view,
		sensor:   sensor,
		scan:     sensor.ToPoints(measurements),
		filename: filename,
		selected: -1,
	}
	m.list.Title = fmt.Sprintf("%d returns", len(measurements))
	return m
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		h, v := docStyle.GetFrameSize()
		m.list.SetSize(msg.Width-h, msg.Height-v)
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	if selected, ok := m.list.SelectedItem().(item); ok && selected.index != m.selected {
		m.selected = selected.index
		m.err = m.render(selected.index)
	}
	return m, cmd
}

// render draws the beam of the i-th return over the full scan.
func (m model) render(i int) error {
	beam := optics.Path{Points: []optics.Point{m.sensor.Position, m.scan[i]}}
	return m.view.SavePNG(m.filename, []optics.Path{beam}, m.scan)
}

func (m model) View() string {
	out := m.list.View()
	if m.err != nil {
		out += "\n" + m.err.Error()
	}
	return docStyle.Render(out)
}

// Interact opens a full-screen list of the measurements. Moving the
// selection redraws filename with the selected beam.
func Interact(view optics.View, sensor optics.Sensor, measurements []optics.Measurement, filename string) error {
	p := tea.NewProgram(newModel(view, sensor, measurements, filename), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running browser: %w", err)
	}
	return nil
}
