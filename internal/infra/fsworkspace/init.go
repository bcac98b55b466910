package fsworkspace

import (
	"errors"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/aalvaropc/toolbelt/internal/domain"
	"github.com/aalvaropc/toolbelt/internal/ports"
)

const (
	templatesRoot   = "templates"
	gitignoreHeader = "# toolbelt"
)

// Initializer scaffolds a workspace: the directories history and logs are
// written to, the embedded templates and a .gitignore block for generated files.
type Initializer struct {
	cfg domain.Config
}

func NewInitializer() *Initializer {
	return &Initializer{cfg: domain.DefaultConfig()}
}

var _ ports.WorkspaceInitializer = (*Initializer)(nil)

// Init is idempotent. Existing template files are kept unless force is set.
func (i *Initializer) Init(spec domain.WorkspaceSpec, force bool) error {
	if strings.TrimSpace(spec.Root) == "" {
		return &domain.OpError{Op: "fsworkspace.init", Kind: domain.KindInvalidConfig, Err: errors.New("workspace root is empty")}
	}
	root := filepath.Clean(spec.Root)

	for _, d := range i.dirs() {
		p := filepath.Join(root, d)
		if err := os.MkdirAll(p, 0o755); err != nil {
			return &domain.OpError{Op: "fsworkspace.mkdir", Kind: domain.KindExecution, Path: p, Err: err}
		}
	}

	if err := ensureGitignore(root); err != nil {
		return &domain.OpError{Op: "fsworkspace.gitignore", Kind: domain.KindExecution, Path: root, Err: err}
	}

	if err := writeTemplates(root, force); err != nil {
		return &domain.OpError{Op: "fsworkspace.templates", Kind: domain.KindExecution, Path: root, Err: err}
	}
	return nil
}

func (i *Initializer) dirs() []string {
	return []string{
		i.cfg.History.Dir,
		"batch",
		filepath.Join(".toolbelt", "logs"),
	}
}

func writeTemplates(root string, force bool) error {
	return fs.WalkDir(templatesFS, templatesRoot, func(p string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}

		rel := strings.TrimPrefix(p, templatesRoot+"/")
		dst := filepath.Join(root, filepath.FromSlash(rel))

		if _, statErr := os.Stat(dst); statErr == nil && !force {
			return nil
		}

		b, err := fs.ReadFile(templatesFS, path.Clean(p))
		if err != nil {
			return err
		}
		return writeFileAtomic(dst, b)
	})
}

func writeFileAtomic(dst string, b []byte) error {
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return err
	}
	tmp := dst + ".tmp"
	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return err
	}
	if err := os.Rename(tmp, dst); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	return nil
}

// ensureGitignore appends the generated paths that .gitignore does not list yet.
func ensureGitignore(root string) error {
	want := []string{
		strings.TrimSuffix(domain.DefaultConfig().History.Dir, "/") + "/",
		".toolbelt/",
	}

	p := filepath.Join(root, ".gitignore")
	existing, err := os.ReadFile(p)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	listed := map[string]bool{}
	for _, line := range strings.Split(string(existing), "\n") {
		listed[strings.TrimSpace(line)] = true
	}

	var block []string
	for _, w := range want {
		if !listed[w] {
			block = append(block, w)
		}
	}
	if len(block) == 0 {
		return nil
	}
	if !listed[gitignoreHeader] {
		block = append([]string{gitignoreHeader}, block...)
	}

	out := string(existing)
	if out != "" {
		if !strings.HasSuffix(out, "\n") {
			out += "\n"
		}
		out += "\n"
	}
	out += strings.Join(block, "\n") + "\n"

	return os.WriteFile(p, []byte(out), 0o644)
}
