package tui

import "github.com/aalvaropc/toolbelt/internal/domain"

type workspaceRefreshedMsg struct {
	cwd   string
	found bool
	root  string
	cfg   domain.Config
	err   error
}

type initWorkspaceDoneMsg struct {
	root string
	err  error
}

type lcmDoneMsg struct {
	input string
	res   domain.LCMResult
	id    string
	err   error
}

type playbackDoneMsg struct {
	in  domain.PlaybackInput
	res domain.PlaybackResult
	id  string
	err error
}
