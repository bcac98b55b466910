package tui

import (
	"fmt"
	"log/slog"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
)

const panicToast = "Unexpected error (see logs)"

// safeModel keeps a panic in a screen from tearing down the terminal.
// Update panics send the user home with a toast, View panics render a
// placeholder. Both are logged with the stack.
type safeModel struct {
	m   model
	log *slog.Logger
}

func wrapSafe(m model, log *slog.Logger) safeModel {
	if log == nil {
		log = m.deps.logger()
	}
	return safeModel{m: m, log: log}
}

func (s safeModel) report(where string, r any, attrs ...any) {
	attrs = append([]any{
		"where", where,
		"screen", int(s.m.scr),
		"panic", fmt.Sprint(r),
		"stack", string(debug.Stack()),
	}, attrs...)
	s.log.Error("panic.recovered", attrs...)
}

func (s safeModel) Init() (cmd tea.Cmd) {
	defer func() {
		if r := recover(); r != nil {
			s.report("tui.init", r)
			cmd = nil
		}
	}()
	return s.m.Init()
}

func (s safeModel) Update(msg tea.Msg) (next tea.Model, cmd tea.Cmd) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		s.report("tui.update", r, "msg", fmt.Sprintf("%T", msg))

		recovered := s.m.goHome()
		recovered.busy = false
		recovered.toast = panicToast
		next, cmd = safeModel{m: recovered, log: s.log}, nil
	}()

	inner, c := s.m.Update(msg)
	switch v := inner.(type) {
	case model:
		return safeModel{m: v, log: s.log}, c
	case safeModel:
		return v, c
	default:
		return inner, c
	}
}

func (s safeModel) View() (out string) {
	defer func() {
		if r := recover(); r != nil {
			s.report("tui.view", r)
			out = panicToast
		}
	}()
	return s.m.View()
}

var _ tea.Model = safeModel{}
