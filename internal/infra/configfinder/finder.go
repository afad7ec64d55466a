package configfinder

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/aalvaropc/unitconv/internal/domain"
	"github.com/aalvaropc/unitconv/internal/ports"
)

// ConfigFileName is the file that marks a unitconv root.
const ConfigFileName = "unitconv.yaml"

// Finder locates the directory holding unitconv.yaml by searching upward.
type Finder struct {
	ConfigFile string // defaults to "unitconv.yaml"
}

func NewFinder() *Finder {
	return &Finder{ConfigFile: ConfigFileName}
}

var _ ports.ConfigLocator = (*Finder)(nil)

func (f *Finder) FindRoot(startDir string) (string, error) {
	if startDir == "" {
		return "", &domain.OpError{
			Op:   "configfinder.findroot",
			Kind: domain.KindInvalidConfig,
			Err:  errors.New("startDir is empty"),
		}
	}

	abs, err := filepath.Abs(startDir)
	if err != nil {
		return "", &domain.OpError{
			Op:   "configfinder.findroot",
			Kind: domain.KindExecution,
			Err:  err,
		}
	}

	// A file path starts the search from its directory.
	info, statErr := os.Stat(abs)
	if statErr == nil && !info.IsDir() {
		abs = filepath.Dir(abs)
	}

	cur := filepath.Clean(abs)
	for {
		if _, err := os.Stat(filepath.Join(cur, f.ConfigFile)); err == nil {
			return cur, nil
		}

		parent := filepath.Dir(cur)
		if parent == cur {
			return "", &domain.OpError{
				Op:   "configfinder.findroot",
				Kind: domain.KindNotFound,
				Err:  domain.ErrNotFound,
			}
		}
		cur = parent
	}
}
