package ports

import "github.com/aalvaropc/toolbelt/internal/domain"

// HistoryStore persists calculation records.
type HistoryStore interface {
	Save(rec domain.CalculationRecord) (id string, err error)
	List(limit int) ([]domain.RecordRef, error)
	Load(id string) (domain.CalculationRecord, []byte, error)
}
