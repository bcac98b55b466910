package usecase

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/aalvaropc/toolbelt/internal/domain"
	"github.com/aalvaropc/toolbelt/internal/ports"
	"github.com/aalvaropc/toolbelt/internal/usecase/query"
)

type QueryHistory struct {
	store ports.HistoryStore
}

func NewQueryHistory(store ports.HistoryStore) *QueryHistory {
	return &QueryHistory{store: store}
}

// List returns the most recent records, newest first.
func (uc *QueryHistory) List(limit int) ([]domain.RecordRef, error) {
	return uc.store.List(limit)
}

// Show returns the record as indented JSON, or the value selected by a
// JSONPath expression when expr is set.
func (uc *QueryHistory) Show(id string, expr string) (string, error) {
	_, raw, err := uc.store.Load(id)
	if err != nil {
		return "", err
	}

	if strings.TrimSpace(expr) == "" {
		var buf bytes.Buffer
		if err := json.Indent(&buf, raw, "", "  "); err != nil {
			return "", &domain.OpError{Op: "history.show", Kind: domain.KindInvalidConfig, Err: err}
		}
		return buf.String(), nil
	}

	out, err := query.Lookup(raw, expr)
	if err != nil {
		return "", &domain.OpError{Op: "history.query", Kind: domain.KindInvalidConfig, Err: err}
	}
	return out, nil
}
