package site

import (
	"bytes"
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/HeyGarrison/cakeelizabethdotcom/location"
)

// notFoundPath is rendered into 404.html by Build.
const notFoundPath = "/404"

// Build renders every static route into outDir as <path>/index.html, the
// not-found page as 404.html, and copies the assets under resources/. It
// returns the files written, relative to outDir.
func (s *Server) Build(ctx context.Context, outDir string) ([]string, error) {
	var written []string

	for _, route := range s.table.Routes() {
		if strings.Contains(route.Path, "{") {
			s.logger.Warn("Skipping parameterized route", "path", route.Path)
			continue
		}
		if err := ctx.Err(); err != nil {
			return written, err
		}

		name := filepath.Join(strings.TrimPrefix(route.Path, "/"), "index.html")
		if err := s.writePage(outDir, name, location.New(route.Path, nil)); err != nil {
			return written, err
		}
		written = append(written, filepath.ToSlash(name))
	}

	if err := s.writePage(outDir, "404.html", location.New(notFoundPath, nil)); err != nil {
		return written, err
	}
	written = append(written, "404.html")

	if s.assets != nil {
		copied, err := copyAssets(ctx, s.assets, filepath.Join(outDir, "resources"))
		if err != nil {
			return written, err
		}
		for _, c := range copied {
			written = append(written, "resources/"+c)
		}
	}

	s.logger.Info("Static build complete", "dir", outDir, "files", len(written))
	return written, nil
}

func (s *Server) writePage(outDir, name string, loc location.Location) error {
	var buf bytes.Buffer
	if _, err := s.renderPage(&buf, loc); err != nil {
		return err
	}
	dst := filepath.Join(outDir, name)
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return fmt.Errorf("create %s: %w", filepath.Dir(dst), err)
	}
	if err := os.WriteFile(dst, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", dst, err)
	}
	return nil
}

func copyAssets(ctx context.Context, assets fs.FS, dstDir string) ([]string, error) {
	var copied []string
	err := fs.WalkDir(assets, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		dst := filepath.Join(dstDir, filepath.FromSlash(path))
		if d.IsDir() {
			return os.MkdirAll(dst, 0o755)
		}
		data, err := fs.ReadFile(assets, path)
		if err != nil {
			return err
		}
		if err := os.WriteFile(dst, data, 0o644); err != nil {
			return err
		}
		copied = append(copied, path)
		return nil
	})
	if err != nil {
		return copied, fmt.Errorf("copy assets: %w", err)
	}
	return copied, nil
}
