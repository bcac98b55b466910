package tui

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/aalvaropc/toolbelt/internal/app/report"
	"github.com/aalvaropc/toolbelt/internal/domain"
	"github.com/aalvaropc/toolbelt/internal/infra/historystore"
	"github.com/aalvaropc/toolbelt/internal/usecase"
	"github.com/aalvaropc/toolbelt/internal/usecase/playback"
)

type screen int

const (
	screenHome screen = iota
	screenLCM
	screenPlayback
)

const (
	actionInit = "init"
	actionQuit = "quit"
)

type menuItem struct {
	title  string
	desc   string
	action string // tool command, actionInit or actionQuit
}

func (m menuItem) Title() string       { return m.title }
func (m menuItem) Description() string { return m.desc }
func (m menuItem) FilterValue() string { return m.title }

var methods = []report.Method{
	report.MethodAll,
	report.MethodPrime,
	report.MethodDivision,
	report.MethodMultiples,
}

type model struct {
	theme Theme
	deps  Deps

	scr  screen
	menu list.Model

	workspaceFound bool
	workspaceRoot  string

	busy  bool
	toast string

	lcmInput  textinput.Model
	lcmMethod int
	lcmResult *domain.LCMResult
	lcmErr    string
	lcmSaved  string

	pbTime   textinput.Model
	pbSpeed  textinput.Model
	pbFocus  int
	pbInput  domain.PlaybackInput
	pbResult *domain.PlaybackResult
	pbErr    string
	pbSaved  string
}

func Run(deps Deps) error {
	m := newModel(deps)
	p := tea.NewProgram(wrapSafe(m, deps.Logger), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func newModel(deps Deps) model {
	t := DefaultTheme()

	l := list.New(menuItems(deps), list.NewDefaultDelegate(), 0, 0)
	l.Title = "Toolbelt"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)

	lcmIn := textinput.New()
	lcmIn.Placeholder = "12, 18"
	lcmIn.Prompt = "numbers> "
	lcmIn.CharLimit = 256

	pbTime := textinput.New()
	pbTime.Placeholder = "01:35:00"
	pbTime.Prompt = "time>  "
	pbTime.CharLimit = 9

	pbSpeed := textinput.New()
	pbSpeed.Placeholder = "1.5"
	pbSpeed.Prompt = "speed> "
	pbSpeed.CharLimit = 5

	m := model{
		theme:    t,
		deps:     deps,
		scr:      screenHome,
		menu:     l,
		lcmInput: lcmIn,
		pbTime:   pbTime,
		pbSpeed:  pbSpeed,
	}

	wd, err := os.Getwd()
	if err == nil && deps.WorkspaceLocator != nil {
		root, findErr := deps.WorkspaceLocator.FindRoot(wd)
		if findErr == nil {
			m.workspaceFound = true
			m.workspaceRoot = root
		}
	}

	return m
}

func menuItems(deps Deps) []list.Item {
	var items []list.Item
	if deps.Tools != nil {
		for _, cat := range deps.Tools.Categories() {
			for _, tool := range deps.Tools.ByCategory(cat) {
				items = append(items, menuItem{
					title:  tool.Name,
					desc:   cat + " · " + tool.Description,
					action: tool.Command,
				})
			}
		}
	}
	items = append(items,
		menuItem{"Init Workspace", "Create toolbelt.yaml and history/ here", actionInit},
		menuItem{"Quit", "Exit Toolbelt", actionQuit},
	)
	return items
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		w, h := msg.Width, msg.Height
		m.menu.SetSize(w-4, h-10)
		m.lcmInput.Width = max(w-20, 10)
		return m, nil

	case workspaceRefreshedMsg:
		m.workspaceFound = msg.found
		m.workspaceRoot = msg.root
		if msg.found && msg.err == nil {
			m.deps.Limits = msg.cfg.Limits
			m.deps.History = nil
			if msg.cfg.History.Enabled {
				m.deps.History = historystore.NewJSONStore(msg.root, msg.cfg)
			}
		} else if msg.found {
			m.toast = userMessage(msg.err)
		}
		return m, nil

	case initWorkspaceDoneMsg:
		m.busy = false
		if msg.err != nil {
			m.toast = userMessage(msg.err)
			return m, nil
		}
		m.toast = "Workspace ready: " + msg.root
		return m, cmdRefreshWorkspace(m.deps)

	case lcmDoneMsg:
		m.busy = false
		m.lcmSaved = msg.id
		if msg.err != nil && !usecase.IsSaveError(msg.err) {
			m.lcmErr = userMessage(msg.err)
			m.lcmResult = nil
			return m, nil
		}
		res := msg.res
		m.lcmResult = &res
		m.lcmErr = ""
		if msg.err != nil {
			m.toast = userMessage(msg.err)
		}
		return m, nil

	case playbackDoneMsg:
		m.busy = false
		m.pbSaved = msg.id
		if msg.err != nil && !usecase.IsSaveError(msg.err) {
			m.pbErr = userMessage(msg.err)
			m.pbResult = nil
			return m, nil
		}
		res := msg.res
		m.pbInput = msg.in
		m.pbResult = &res
		m.pbErr = ""
		if msg.err != nil {
			m.toast = userMessage(msg.err)
		}
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		switch m.scr {
		case screenHome:
			return m.updateHome(msg)
		case screenLCM:
			return m.updateLCM(msg)
		case screenPlayback:
			return m.updatePlayback(msg)
		}
	}

	var cmd tea.Cmd
	switch m.scr {
	case screenHome:
		m.menu, cmd = m.menu.Update(msg)
	case screenLCM:
		m.lcmInput, cmd = m.lcmInput.Update(msg)
	case screenPlayback:
		if m.pbFocus == 0 {
			m.pbTime, cmd = m.pbTime.Update(msg)
		} else {
			m.pbSpeed, cmd = m.pbSpeed.Update(msg)
		}
	}
	return m, cmd
}

func (m model) updateHome(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.menu.FilterState() == list.Filtering {
		var cmd tea.Cmd
		m.menu, cmd = m.menu.Update(msg)
		return m, cmd
	}

	switch msg.String() {
	case "q":
		return m, tea.Quit

	case "enter":
		it, ok := m.menu.SelectedItem().(menuItem)
		if !ok {
			return m, nil
		}
		m.toast = ""
		return m.open(it)
	}

	var cmd tea.Cmd
	m.menu, cmd = m.menu.Update(msg)
	return m, cmd
}

func (m model) open(it menuItem) (tea.Model, tea.Cmd) {
	switch it.action {
	case actionQuit:
		return m, tea.Quit

	case actionInit:
		if m.busy {
			return m, nil
		}
		wd, err := os.Getwd()
		if err != nil {
			m.toast = userMessage(err)
			return m, nil
		}
		m.busy = true
		return m, cmdInitWorkspaceHere(m.deps, wd)

	case "lcm":
		m.scr = screenLCM
		m.pbTime.Blur()
		m.pbSpeed.Blur()
		cmd := m.lcmInput.Focus()
		return m, cmd

	case "playback":
		m.scr = screenPlayback
		m.lcmInput.Blur()
		m.pbFocus = 0
		m.pbSpeed.Blur()
		cmd := m.pbTime.Focus()
		return m, cmd

	default:
		m.toast = fmt.Sprintf("%s has no screen yet", it.title)
		return m, nil
	}
}

func (m model) goHome() model {
	m.scr = screenHome
	m.lcmInput.Blur()
	m.pbTime.Blur()
	m.pbSpeed.Blur()
	return m
}

func (m model) updateLCM(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return m.goHome(), nil

	case "tab":
		m.lcmMethod = (m.lcmMethod + 1) % len(methods)
		return m, nil

	case "shift+tab":
		m.lcmMethod = (m.lcmMethod + len(methods) - 1) % len(methods)
		return m, nil

	case "enter":
		if m.busy {
			return m, nil
		}
		m.busy = true
		m.toast = ""
		return m, cmdCalculateLCM(m.deps, m.lcmInput.Value())
	}

	var cmd tea.Cmd
	m.lcmInput, cmd = m.lcmInput.Update(msg)
	return m, cmd
}

func (m model) updatePlayback(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return m.goHome(), nil

	case "tab", "shift+tab", "up", "down":
		m.pbFocus = 1 - m.pbFocus
		var cmd tea.Cmd
		if m.pbFocus == 0 {
			m.pbSpeed.Blur()
			cmd = m.pbTime.Focus()
		} else {
			m.pbTime.Blur()
			cmd = m.pbSpeed.Focus()
		}
		return m, cmd

	case "enter":
		if m.busy {
			return m, nil
		}
		m.busy = true
		m.toast = ""
		return m, cmdCalculatePlayback(m.deps, m.pbTime.Value(), m.pbSpeed.Value())
	}

	var cmd tea.Cmd
	if m.pbFocus == 0 {
		m.pbTime, cmd = m.pbTime.Update(msg)
	} else {
		m.pbSpeed, cmd = m.pbSpeed.Update(msg)
	}
	return m, cmd
}

func (m model) View() string {
	wrap := lipgloss.NewStyle().Padding(1, 2)
	header := m.theme.Title.Render("Toolbelt") + "\n" +
		m.theme.Subtitle.Render("Calculators for the terminal") + "\n"

	var workspaceBanner string
	if m.workspaceFound {
		workspaceBanner = m.theme.Help.Render(fmt.Sprintf("Workspace: %s", m.workspaceRoot))
	} else {
		workspaceBanner = m.theme.Help.Render("No workspace: results are not saved (Init Workspace to enable history)")
	}

	toast := ""
	if m.toast != "" {
		toast = "\n" + m.theme.Highlight.Render(m.toast) + "\n"
	}

	switch m.scr {
	case screenHome:
		help := m.theme.Help.Render("↑/↓ navigate • enter open • / search • q quit")
		return wrap.Render(header + "\n" + workspaceBanner + "\n" + toast + "\n" + m.theme.Card.Render(m.menu.View()) + "\n" + help)

	case screenLCM:
		return wrap.Render(header + "\n" + workspaceBanner + "\n" + toast + "\n" + m.viewLCM())

	case screenPlayback:
		return wrap.Render(header + "\n" + workspaceBanner + "\n" + toast + "\n" + m.viewPlayback())

	default:
		return wrap.Render(header + "\n" + "unknown state")
	}
}

func (m model) viewLCM() string {
	var b strings.Builder
	b.WriteString(m.theme.Title.Render("LCM Calculator"))
	b.WriteString("\n")
	b.WriteString(m.theme.Subtitle.Render("Enter two or more positive integers separated by commas"))
	b.WriteString("\n\n")
	b.WriteString(m.lcmInput.View())
	b.WriteString("\n")
	b.WriteString(m.theme.Help.Render("method: " + string(methods[m.lcmMethod])))
	b.WriteString("\n")

	switch {
	case m.busy:
		b.WriteString("\nCalculating…\n")
	case m.lcmErr != "":
		b.WriteString("\n")
		b.WriteString(m.theme.Error.Render(m.lcmErr))
		b.WriteString("\n")
	case m.lcmResult != nil:
		b.WriteString("\n")
		b.WriteString(renderLCMResult(m.theme, *m.lcmResult, methods[m.lcmMethod]))
		if m.lcmSaved != "" {
			b.WriteString("\n")
			b.WriteString(m.theme.Help.Render("saved: " + clampString(m.lcmSaved, 12)))
			b.WriteString("\n")
		}
	}

	help := m.theme.Help.Render("enter calculate • tab method • esc back • ctrl+c quit")
	return m.theme.Card.Render(b.String()) + "\n" + help
}

func (m model) viewPlayback() string {
	var b strings.Builder
	b.WriteString(m.theme.Title.Render("Playback Speed Calculator"))
	b.WriteString("\n")
	b.WriteString(m.theme.Subtitle.Render(fmt.Sprintf("Duration as hh:mm:ss, speed from %g to %g", playback.MinSpeed, playback.MaxSpeed)))
	b.WriteString("\n\n")
	b.WriteString(m.pbTime.View())
	b.WriteString("\n")
	b.WriteString(m.pbSpeed.View())
	b.WriteString("\n")

	switch {
	case m.busy:
		b.WriteString("\nCalculating…\n")
	case m.pbErr != "":
		b.WriteString("\n")
		b.WriteString(m.theme.Error.Render(m.pbErr))
		b.WriteString("\n")
	case m.pbResult != nil:
		b.WriteString("\n")
		b.WriteString(renderPlaybackResult(m.theme, m.pbInput, *m.pbResult))
	}

	b.WriteString("\n")
	b.WriteString(m.theme.Subtitle.Render("Examples"))
	b.WriteString("\n")
	b.WriteString(renderPlaybackExamples(playback.Examples))

	help := m.theme.Help.Render("enter calculate • tab switch field • esc back • ctrl+c quit")
	return m.theme.Card.Render(b.String()) + "\n" + help
}
