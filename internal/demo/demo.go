// Package demo is the interactive showcase: a deployment-settings form
// built from three dropdowns layered over a scrollable release-notes
// page. Edits to the config file feed back into the running program
// through a watcher; selections live only for the session.
package demo

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
	"golang.org/x/sync/errgroup"

	"github.com/marcus/dropdown/internal/config"
	"github.com/marcus/dropdown/pkg/dropdown"
)

// configReloadedMsg carries a config picked up from disk by the watcher.
type configReloadedMsg struct {
	cfg *config.Config
}

type model struct {
	cfg   *config.Config
	zones *zone.Manager

	region   *dropdown.Model[string]
	services *dropdown.Model[string]
	level    *dropdown.Model[string]

	// logLevel is the source of truth for the controlled level widget.
	logLevel string

	focus int
	keys  appKeyMap
	help  help.Model

	doc    string
	docFor string

	status string

	scroll int
	width  int
	height int

	quitting bool
}

func newModel(cfg *config.Config, zones *zone.Manager) *model {
	m := &model{
		cfg:      cfg,
		zones:    zones,
		keys:     newAppKeyMap(),
		help:     help.New(),
		logLevel: "info",
	}

	styles := dropdown.AccentStyles(lipgloss.Color(cfg.AccentColor()))

	m.region = dropdown.New(regionOptions()).
		WithID("region").
		WithPlaceholder("Choose a region").
		WithZones(zones).
		WithFilter(true).
		WithMaxVisible(cfg.VisibleRows()).
		WithPlacement(1, 30).
		WithStyles(styles).
		WithOnChange(func(v []string) {
			if len(v) > 0 {
				m.status = "region set to " + v[0]
			}
		})

	m.services = dropdown.New(serviceOptions()).
		WithID("services").
		WithMulti().
		WithPlaceholder("None").
		WithZones(zones).
		WithMaxVisible(cfg.VisibleRows()).
		WithPlacement(1, 22).
		WithStyles(styles).
		WithOnChange(func(v []string) {
			m.status = fmt.Sprintf("%d of %d services enabled", len(v), len(serviceOptions()))
		})

	// The log level is controlled: the model owns the value and feeds
	// every commit back into the widget.
	m.level = dropdown.New(levelOptions()).
		WithID("level").
		WithZones(zones).
		WithValue(m.logLevel).
		WithMaxVisible(cfg.VisibleRows()).
		WithPlacement(1, 16).
		WithStyles(styles).
		WithOnChange(func(v []string) {
			if len(v) > 0 {
				m.logLevel = v[0]
				m.level.SetValue(v[0])
				m.status = "log level set to " + v[0]
			}
		})

	m.setFocus(0)
	return m
}

func (m *model) widgets() []*dropdown.Model[string] {
	return []*dropdown.Model[string]{m.region, m.services, m.level}
}

func (m *model) focused() *dropdown.Model[string] {
	return m.widgets()[m.focus]
}

// openWidget returns the widget whose menu is open, if any. At most one
// can be open at a time.
func (m *model) openWidget() *dropdown.Model[string] {
	for _, dd := range m.widgets() {
		if dd.IsOpen() {
			return dd
		}
	}
	return nil
}

func (m *model) setFocus(i int) {
	all := m.widgets()
	n := len(all)
	m.focus = ((i % n) + n) % n
	for j, dd := range all {
		if j == m.focus {
			dd.Focus()
		} else {
			dd.Blur()
		}
	}
}

func (m *model) Init() tea.Cmd {
	return nil
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.doc = ""
		for _, dd := range m.widgets() {
			dd.Update(msg)
		}
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		return m.handleMouse(msg)
	case configReloadedMsg:
		m.applyConfig(msg.cfg)
		return m, nil
	}

	var cmds []tea.Cmd
	for _, dd := range m.widgets() {
		if cmd := dd.Update(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return m, tea.Batch(cmds...)
}

func (m *model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.ForceQuit) {
		m.quitting = true
		return m, tea.Quit
	}

	// Page scrolling works even with a menu open; the widgets reanchor
	// to wherever their triggers land.
	switch {
	case key.Matches(msg, m.keys.PageDown):
		m.scrollBy(m.pageStep())
		return m, nil
	case key.Matches(msg, m.keys.PageUp):
		m.scrollBy(-m.pageStep())
		return m, nil
	}

	if m.openWidget() == nil {
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.ToggleDisable):
			m.level.SetDisabled(!m.level.Disabled())
			return m, nil
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		}
	}

	// Tab closes any open menu inside the widget, then moves focus.
	if key.Matches(msg, m.keys.Next) || key.Matches(msg, m.keys.Prev) {
		cmd := m.focused().Update(msg)
		if key.Matches(msg, m.keys.Next) {
			m.setFocus(m.focus + 1)
		} else {
			m.setFocus(m.focus - 1)
		}
		return m, cmd
	}

	return m, m.focused().Update(msg)
}

func (m *model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	for _, dd := range m.widgets() {
		if cmd := dd.Update(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}

	// Focus follows whichever widget a press opened.
	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
		for i, dd := range m.widgets() {
			if dd.IsOpen() && i != m.focus {
				m.setFocus(i)
				break
			}
		}
	}
	return m, tea.Batch(cmds...)
}

// applyConfig applies a reloaded config: accent theme and menu row
// budget. The glamour cache is dropped so the pane re-renders with the
// ambient style.
func (m *model) applyConfig(cfg *config.Config) {
	m.cfg = cfg
	styles := dropdown.AccentStyles(lipgloss.Color(cfg.AccentColor()))
	for _, dd := range m.widgets() {
		dd.WithStyles(styles).WithMaxVisible(cfg.VisibleRows())
	}
	m.doc = ""
	m.status = "config reloaded"
}

func (m *model) scrollBy(delta int) {
	m.scroll += delta
	if m.scroll < 0 {
		m.scroll = 0
	}
	// The upper clamp happens at render time, where the page height is
	// known.
	for _, dd := range m.widgets() {
		dd.Reposition()
	}
}

func (m *model) pageStep() int {
	if m.height > 4 {
		return m.height / 2
	}
	return 5
}

// ensureDoc renders the markdown blurb for the selected region, cached
// per region until the next resize or reload.
func (m *model) ensureDoc() string {
	code, _ := m.region.Value()
	if m.doc != "" && m.docFor == code {
		return m.doc
	}

	md := regionDoc(code)
	width := m.width - 4
	if width < 20 || width > 72 {
		width = 72
	}
	out := md
	if r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(width)); err == nil {
		if rendered, rerr := r.Render(md); rerr == nil {
			out = rendered
		}
	}
	m.doc = out
	m.docFor = code
	return m.doc
}

func (m *model) renderDocument() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Deployment settings"))
	b.WriteString("\n\n")

	b.WriteString(labelStyle.Render("Region") + m.region.View())
	b.WriteString("\n")
	b.WriteString(labelStyle.Render("Services") + m.services.View())
	b.WriteString("\n")
	levelRow := labelStyle.Render("Log level") + m.level.View()
	if m.level.Disabled() {
		levelRow += hintStyle.Render("  managed by the platform, press d to release")
	}
	b.WriteString(levelRow)
	b.WriteString("\n\n")

	b.WriteString(m.ensureDoc())
	b.WriteString("\n")

	for _, line := range releaseNotes {
		b.WriteString(noteStyle.Render(line))
		b.WriteString("\n")
	}

	return strings.TrimRight(b.String(), "\n")
}

func (m *model) renderFooter(helpView string) string {
	if m.status != "" {
		return hintStyle.Render(m.status) + "\n" + helpView
	}
	return helpView
}

func (m *model) View() string {
	if m.quitting {
		return ""
	}

	lines := strings.Split(m.renderDocument(), "\n")
	footer := m.renderFooter(m.help.View(m.keys))

	avail := m.height - lipgloss.Height(footer)
	if m.height == 0 {
		avail = len(lines)
	}
	if avail < 1 {
		avail = 1
	}
	maxScroll := len(lines) - avail
	if maxScroll < 0 {
		maxScroll = 0
	}
	if m.scroll > maxScroll {
		m.scroll = maxScroll
	}
	end := min(m.scroll+avail, len(lines))

	frame := strings.Join(lines[m.scroll:end], "\n") + "\n" + footer

	// Menus draw over the finished frame; the zone scan must see the
	// final text, so it runs last.
	for _, dd := range m.widgets() {
		frame = dd.Overlay(frame)
	}
	return m.zones.Scan(frame)
}

// MouseMode selects mouse support for a run: follow the config, force
// it on, or force it off.
type MouseMode int

const (
	MouseAuto MouseMode = iota
	MouseOn
	MouseOff
)

// Run starts the demo over the config under baseDir and blocks until
// the user quits. A config watcher feeds on-disk edits back into the
// running program.
func Run(baseDir string, mouse MouseMode) error {
	cfg, err := config.Load(baseDir)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	zones := zone.New()
	defer zones.Close()

	m := newModel(cfg, zones)

	useMouse := !cfg.DisableMouse
	switch mouse {
	case MouseOn:
		useMouse = true
	case MouseOff:
		useMouse = false
	}
	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if useMouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}
	p := tea.NewProgram(m, opts...)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	updates, err := config.Watch(ctx, baseDir)
	if err != nil {
		return fmt.Errorf("watch config: %w", err)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		for {
			select {
			case <-gctx.Done():
				return nil
			case cfg, ok := <-updates:
				if !ok {
					return nil
				}
				p.Send(configReloadedMsg{cfg: cfg})
			}
		}
	})
	g.Go(func() error {
		defer cancel()
		_, err := p.Run()
		return err
	})
	return g.Wait()
}
