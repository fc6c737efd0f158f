package bundler

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/gobwas/glob"

	"github.com/packforge/packforge/internal/compose"
)

// runCopy executes the asset-copy plugin: every file under the project
// root matching a copy rule's From glob is copied into the output path
// under the rule's To directory. The output path and dependency
// directories are never sources.
func (e *Engine) runCopy() error {
	if len(e.opts.Copy) == 0 {
		return nil
	}

	matchers := make([]glob.Glob, len(e.opts.Copy))
	for i, rule := range e.opts.Copy {
		g, err := glob.Compile(filepath.ToSlash(rule.From))
		if err != nil {
			return fmt.Errorf("%w: copy from %q: %v", compose.ErrBadPattern, rule.From, err)
		}
		matchers[i] = g
	}

	return filepath.WalkDir(e.opts.Context, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path == e.opts.OutputPath || d.Name() == "node_modules" || strings.HasPrefix(d.Name(), ".") && path != e.opts.Context {
				return fs.SkipDir
			}
			return nil
		}

		rel, err := filepath.Rel(e.opts.Context, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)

		for i, m := range matchers {
			if !m.Match(rel) {
				continue
			}
			dest := filepath.Join(e.opts.OutputPath, e.opts.Copy[i].To, filepath.Base(path))
			if err := copyFile(path, dest); err != nil {
				return err
			}
			e.log.Debug().Str("from", rel).Str("to", dest).Msg("copied asset")
			break
		}
		return nil
	})
}

func copyFile(src, dest string) error {
	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return err
	}
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dest)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
