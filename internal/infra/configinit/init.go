package configinit

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/aalvaropc/unitconv/internal/domain"
	"github.com/aalvaropc/unitconv/internal/infra/configfinder"
	"github.com/aalvaropc/unitconv/internal/infra/logger"
	"github.com/aalvaropc/unitconv/internal/ports"
)

const (
	templateName    = "templates/unitconv.yaml"
	gitignoreHeader = "# unitconv"
	gitignoreEntry  = ".unitconv/"
)

type Initializer struct{}

func NewInitializer() *Initializer {
	return &Initializer{}
}

var _ ports.ConfigInitializer = (*Initializer)(nil)

// Init prepares root for history and file logging: the log directory, a
// .gitignore entry for .unitconv/ and unitconv.yaml. An existing
// unitconv.yaml is kept unless force is set.
func (i *Initializer) Init(root string, force bool) (domain.InitReport, error) {
	root = filepath.Clean(root)
	rep := domain.InitReport{
		Root:       root,
		ConfigPath: filepath.Join(root, configfinder.ConfigFileName),
	}

	if err := os.MkdirAll(logger.Dir(root), 0o755); err != nil {
		return rep, &domain.OpError{Op: "configinit.mkdir", Kind: domain.KindExecution, Path: logger.Dir(root), Err: err}
	}

	updated, err := ensureGitignore(root)
	if err != nil {
		return rep, &domain.OpError{Op: "configinit.gitignore", Kind: domain.KindExecution, Path: filepath.Join(root, ".gitignore"), Err: err}
	}
	rep.GitignoreUpdated = updated

	if !force {
		if _, statErr := os.Stat(rep.ConfigPath); statErr == nil {
			return rep, nil
		}
	}

	b, err := templatesFS.ReadFile(templateName)
	if err != nil {
		return rep, &domain.OpError{Op: "configinit.template", Kind: domain.KindExecution, Path: templateName, Err: err}
	}
	if err := os.WriteFile(rep.ConfigPath, b, 0o644); err != nil {
		return rep, &domain.OpError{Op: "configinit.write", Kind: domain.KindExecution, Path: rep.ConfigPath, Err: err}
	}
	rep.ConfigWritten = true
	return rep, nil
}

// ensureGitignore appends the .unitconv/ entry (under a "# unitconv" header)
// unless some line already ignores that directory. It reports whether the
// file was written.
func ensureGitignore(root string) (bool, error) {
	path := filepath.Join(root, ".gitignore")
	b, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return false, err
	}

	existing := string(b)
	hasHeader := false
	for _, line := range strings.Split(existing, "\n") {
		switch strings.TrimSpace(line) {
		case gitignoreEntry, "/" + gitignoreEntry, ".unitconv", "/.unitconv":
			return false, nil
		case gitignoreHeader:
			hasHeader = true
		}
	}

	var out strings.Builder
	out.WriteString(existing)
	if existing != "" && !strings.HasSuffix(existing, "\n") {
		out.WriteByte('\n')
	}
	if !hasHeader {
		out.WriteString(gitignoreHeader + "\n")
	}
	out.WriteString(gitignoreEntry + "\n")

	return true, os.WriteFile(path, []byte(out.String()), 0o644)
}
