package yamlregistry

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/aalvaropc/toolbelt/internal/domain"
	"github.com/aalvaropc/toolbelt/internal/ports"
	"gopkg.in/yaml.v3"
)

//go:embed tools.yaml
var builtinTools []byte

type yamlRegistry struct {
	Tools []yamlTool `yaml:"tools"`
}

type yamlTool struct {
	ID          string `yaml:"id"`
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Category    string `yaml:"category"`
	Command     string `yaml:"command"`
}

// Registry is an in-memory tools catalog. Tool order is registration order.
type Registry struct {
	tools []domain.Tool
	byID  map[string]int
}

var _ ports.ToolCatalog = (*Registry)(nil)

// Builtin returns the registry of tools shipped with the binary.
func Builtin() (*Registry, error) {
	return Parse("builtin:tools.yaml", builtinTools)
}

// MustBuiltin is Builtin for callers that cannot recover from a broken build.
func MustBuiltin() *Registry {
	r, err := Builtin()
	if err != nil {
		panic(err)
	}
	return r
}

// Parse decodes and validates a registry document. path is used in errors only.
func Parse(path string, b []byte) (*Registry, error) {
	var y yamlRegistry
	if err := yaml.Unmarshal(b, &y); err != nil {
		return nil, &domain.OpError{
			Op:   "yamlregistry.parse",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	r := &Registry{
		tools: make([]domain.Tool, 0, len(y.Tools)),
		byID:  make(map[string]int, len(y.Tools)),
	}

	for i, t := range y.Tools {
		field := fmt.Sprintf("tools[%d]", i)
		id := strings.TrimSpace(t.ID)
		if id == "" {
			return nil, invalidField(path, field+".id", "id is required")
		}
		if strings.TrimSpace(t.Name) == "" {
			return nil, invalidField(path, field+".name", "name is required")
		}
		if _, dup := r.byID[id]; dup {
			return nil, invalidField(path, field+".id", fmt.Sprintf("duplicate id %q", id))
		}

		category := strings.TrimSpace(t.Category)
		if category == "" {
			category = "Other"
		}

		r.byID[id] = len(r.tools)
		r.tools = append(r.tools, domain.Tool{
			ID:          id,
			Name:        strings.TrimSpace(t.Name),
			Description: strings.TrimSpace(t.Description),
			Category:    category,
			Command:     strings.TrimSpace(t.Command),
		})
	}

	return r, nil
}

func (r *Registry) All() []domain.Tool {
	out := make([]domain.Tool, len(r.tools))
	copy(out, r.tools)
	return out
}

func (r *Registry) Get(id string) (domain.Tool, bool) {
	i, ok := r.byID[strings.TrimSpace(id)]
	if !ok {
		return domain.Tool{}, false
	}
	return r.tools[i], true
}

// Categories returns the distinct categories in first-seen order.
func (r *Registry) Categories() []string {
	seen := map[string]bool{}
	out := make([]string, 0)
	for _, t := range r.tools {
		if seen[t.Category] {
			continue
		}
		seen[t.Category] = true
		out = append(out, t.Category)
	}
	return out
}

// ByCategory matches category case-insensitively.
func (r *Registry) ByCategory(category string) []domain.Tool {
	out := make([]domain.Tool, 0)
	for _, t := range r.tools {
		if strings.EqualFold(t.Category, strings.TrimSpace(category)) {
			out = append(out, t)
		}
	}
	return out
}

func invalidField(path, field, msg string) error {
	return &domain.OpError{
		Op:   "yamlregistry.parse",
		Kind: domain.KindInvalidConfig,
		Path: path,
		Err:  fmt.Errorf("field %s: %s: %w", field, msg, domain.ErrInvalidConfig),
	}
}
