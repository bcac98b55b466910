package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/aalvaropc/toolbelt/internal/domain"
	"github.com/aalvaropc/toolbelt/internal/infra/workspacefinder"
	"github.com/aalvaropc/toolbelt/internal/usecase"
	"github.com/aalvaropc/toolbelt/internal/usecase/playback"
)

const calcTimeout = 30 * time.Second

func cmdRefreshWorkspace(deps Deps) tea.Cmd {
	return func() tea.Msg {
		wd, err := os.Getwd()
		if err != nil {
			return workspaceRefreshedMsg{cwd: "", found: false, err: fmt.Errorf("getwd: %w", err)}
		}
		if deps.WorkspaceLocator == nil {
			return workspaceRefreshedMsg{cwd: wd, found: false, err: errors.New("WorkspaceLocator is nil")}
		}

		root, findErr := deps.WorkspaceLocator.FindRoot(wd)
		if findErr != nil {
			return workspaceRefreshedMsg{cwd: wd, found: false, err: findErr}
		}

		cfg, err := workspacefinder.LoadConfig(root)
		return workspaceRefreshedMsg{cwd: wd, found: true, root: root, cfg: cfg, err: err}
	}
}

func cmdInitWorkspaceHere(deps Deps, root string) tea.Cmd {
	return func() tea.Msg {
		if deps.WorkspaceInitializer == nil {
			return initWorkspaceDoneMsg{root: root, err: errors.New("WorkspaceInitializer is nil")}
		}

		initialized, err := usecase.NewInitWorkspace(deps.WorkspaceInitializer).Execute(root, false)
		if err != nil {
			return initWorkspaceDoneMsg{root: root, err: err}
		}
		return initWorkspaceDoneMsg{root: initialized}
	}
}

func cmdCalculateLCM(deps Deps, input string) tea.Cmd {
	log := deps.logger()

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), calcTimeout)
		defer cancel()

		uc := usecase.NewCalculateLCM(deps.Limits, deps.History)
		res, id, err := uc.Execute(ctx, input)

		switch {
		case err != nil && !usecase.IsSaveError(err):
			log.Info("lcm.rejected", "input", input, "err", err)
		case err != nil:
			log.Error("history.save.failed", "err", err)
		default:
			log.Info("lcm.calculated", "input", input, "lcm", res.LCM, "record_id", id)
			if deps.Debug {
				log.Debug("lcm.derivations",
					"prime", res.PrimeFactorization.Combined.Display,
					"division_rows", len(res.DivisionMethod.Table),
					"consistent", res.Consistent(),
				)
			}
		}

		return lcmDoneMsg{input: input, res: res, id: id, err: err}
	}
}

func cmdCalculatePlayback(deps Deps, duration, speed string) tea.Cmd {
	log := deps.logger()

	return func() tea.Msg {
		in, err := playback.ParseDuration(duration)
		if err != nil {
			return playbackDoneMsg{err: err}
		}

		s, err := strconv.ParseFloat(strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(speed), "x")), 64)
		if err != nil {
			return playbackDoneMsg{err: &domain.InputError{Reason: domain.ReasonInvalid, Msg: fmt.Sprintf("invalid speed %q", speed)}}
		}
		in.Speed = s

		ctx, cancel := context.WithTimeout(context.Background(), calcTimeout)
		defer cancel()

		res, id, err := usecase.NewCalculatePlayback(deps.History).Execute(ctx, duration, s)
		if err != nil && !usecase.IsSaveError(err) {
			log.Info("playback.rejected", "time", duration, "speed", s, "err", err)
		} else if err != nil {
			log.Error("history.save.failed", "err", err)
		} else {
			log.Info("playback.calculated", "time", duration, "speed", s, "record_id", id)
		}

		return playbackDoneMsg{in: in, res: res, id: id, err: err}
	}
}
