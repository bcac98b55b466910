package tui

import (
	"context"
	"errors"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/aalvaropc/toolbelt/internal/domain"
)

const genericFailure = "Unexpected error (see logs)"

var (
	reYAMLLine = regexp.MustCompile(`(?i)\bline\s+(\d+)\b`)

	yamlMarkers = []string{"yaml:", "did not find expected", "cannot unmarshal"}
)

// userMessage turns an error into the one-line text shown in the TUI.
func userMessage(err error) string {
	if err == nil {
		return ""
	}

	// Validation messages are written for users and shown as-is.
	var ie *domain.InputError
	if errors.As(err, &ie) {
		return ie.Error()
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return "Calculation timed out"
	}

	var oe *domain.OpError
	if errors.As(err, &oe) {
		return opMessage(oe)
	}

	if isYAMLError(err) {
		return yamlMessage("", err)
	}
	return genericFailure
}

func opMessage(oe *domain.OpError) string {
	fromHistory := strings.HasPrefix(oe.Op, "history")

	switch oe.Kind {
	case domain.KindNotFound:
		switch {
		case fromHistory:
			return "Record not found"
		case oe.Op == "workspacefinder.findroot":
			return "Workspace not found"
		}
		return "Not found"

	case domain.KindInvalidConfig:
		file := "config"
		if strings.TrimSpace(oe.Path) != "" {
			file = filepath.Base(oe.Path)
		}
		if yamlLine(oe) == "" && !isYAMLError(oe) {
			return "Invalid config"
		}
		return yamlMessage(file, oe)

	case domain.KindExecution:
		if fromHistory {
			return "Could not save history (see logs)"
		}
	}
	return genericFailure
}

// yamlMessage reads "Invalid YAML[ at file][ line N]".
func yamlMessage(file string, err error) string {
	msg := "Invalid YAML"
	if file != "" {
		msg += " at " + file
	}
	if line := yamlLine(err); line != "" {
		msg += " line " + line
	}
	return msg
}

func isYAMLError(err error) bool {
	s := strings.ToLower(err.Error())
	for _, m := range yamlMarkers {
		if strings.Contains(s, m) {
			return true
		}
	}
	return false
}

func yamlLine(err error) string {
	if m := reYAMLLine.FindStringSubmatch(err.Error()); len(m) == 2 {
		return m[1]
	}
	return ""
}
