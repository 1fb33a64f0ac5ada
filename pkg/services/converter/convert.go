package converter

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/rbxasset/meshconv/pkg/cache"
	"github.com/rbxasset/meshconv/pkg/filemesh"
	"github.com/rbxasset/meshconv/pkg/objconv"
	"github.com/rbxasset/meshconv/pkg/util"
)

// ErrNoInput is returned when the input directory holds no files of the
// source format.
var ErrNoInput = errors.New("no convertible files in input directory")

// Prm groups the parameters of a batch conversion run.
type Prm struct {
	inputDir  string
	outputDir string
	target    Target
}

// SetInputDir sets the directory walked for source files.
func (p *Prm) SetInputDir(dir string) {
	p.inputDir = dir
}

// SetOutputDir sets the directory converted files are written to.
func (p *Prm) SetOutputDir(dir string) {
	p.outputDir = dir
}

// SetTarget sets the output format of the run.
func (p *Prm) SetTarget(t Target) {
	p.target = t
}

// Res groups the results of a batch conversion run.
type Res struct {
	report Report
}

// Report returns the run report.
func (r Res) Report() Report {
	return r.report
}

// Convert walks the input directory and converts every source file to the
// target format.
//
// Per-file failures do not interrupt the run, they are listed in the
// report. Convert stops submitting new files when ctx is cancelled and
// returns the context error alongside the partial result.
func (c *Converter) Convert(ctx context.Context, prm Prm) (Res, error) {
	switch {
	case prm.inputDir == "":
		return Res{}, errors.New("input directory not set")
	case prm.outputDir == "":
		return Res{}, errors.New("output directory not set")
	case !prm.target.obj && prm.target.version == 0:
		return Res{}, errors.New("target format not set")
	}

	files, err := collectSources(prm.inputDir, prm.target.SourceExtension())
	if err != nil {
		return Res{}, err
	}
	if len(files) == 0 {
		return Res{}, fmt.Errorf("%w: %s", ErrNoInput, prm.inputDir)
	}

	start := time.Now()

	rep := Report{
		RunID:     uuid.New().String(),
		Target:    prm.target.String(),
		StartedAt: start.UTC(),
		Total:     len(files),
	}

	lg := c.log.With(zap.String("run_id", rep.RunID))
	lg.Info("starting batch conversion",
		zap.String("target", rep.Target),
		zap.String("input", prm.inputDir),
		zap.String("output", prm.outputDir),
		zap.Int("files", len(files)),
	)

	var (
		wg   sync.WaitGroup
		mtx  sync.Mutex
		done int
	)

	fail := func(rel string, err error) {
		mtx.Lock()
		rep.Failed = append(rep.Failed, FailedFile{Path: rel, Error: err.Error()})
		mtx.Unlock()
	}

	for i := range files {
		if ctx.Err() != nil {
			break
		}

		rel := files[i]

		wg.Add(1)
		err := c.taskPool.Submit(func() {
			defer wg.Done()

			fromCache, err := c.processFile(prm, rel)

			mtx.Lock()
			done++
			n := done
			if err == nil {
				rep.Converted++
				if fromCache {
					rep.FromCache++
				}
			}
			mtx.Unlock()

			if err != nil {
				lg.Warn("file conversion failed",
					zap.String("path", rel),
					zap.Error(err),
				)
				fail(rel, err)
			}

			if c.progress != nil {
				c.progress(n, len(files), rel)
			}
		})
		if err != nil {
			wg.Done()
			fail(rel, fmt.Errorf("submit to worker pool: %w", err))
		}
	}

	wg.Wait()

	rep.Elapsed = time.Since(start).String()

	lg.Info("batch conversion finished",
		zap.Int("converted", rep.Converted),
		zap.Int("from_cache", rep.FromCache),
		zap.Int("failed", len(rep.Failed)),
		zap.String("elapsed", rep.Elapsed),
	)

	if err := ctx.Err(); err != nil {
		return Res{report: rep}, fmt.Errorf("batch interrupted: %w", err)
	}

	return Res{report: rep}, nil
}

// processFile converts one source file and writes the result, consulting
// the cache when one is configured.
func (c *Converter) processFile(prm Prm, rel string) (fromCache bool, err error) {
	data, err := os.ReadFile(filepath.Join(prm.inputDir, rel))
	if err != nil {
		return false, fmt.Errorf("read source: %w", err)
	}

	var (
		out   []byte
		found bool
	)

	key := cache.NewKey(data, prm.target.String())

	if c.cache != nil {
		var gp cache.GetPrm
		gp.SetKey(key)

		if res, err := c.cache.Get(gp); err == nil {
			out = res.Payload()
			found = true
			fromCache = true
		}
	}

	if !found {
		out, err = ConvertPayload(data, prm.target)
		if err != nil {
			return false, err
		}

		if c.cache != nil {
			var pp cache.PutPrm
			pp.SetKey(key)
			pp.SetPayload(out)

			if err := c.cache.Put(pp); err != nil {
				c.log.Warn("could not cache conversion result",
					zap.String("path", rel),
					zap.Error(err),
				)
			}
		}
	}

	dst := filepath.Join(prm.outputDir, swapExt(rel, prm.target.OutputExtension()))

	if err := util.MkdirAllX(filepath.Dir(dst), 0o755); err != nil {
		return false, fmt.Errorf("create output directory: %w", err)
	}
	if err := os.WriteFile(dst, out, 0o644); err != nil {
		return false, fmt.Errorf("write converted file: %w", err)
	}

	return fromCache, nil
}

// ConvertPayload converts one source document to the target format through
// the intermediate mesh form.
func ConvertPayload(data []byte, t Target) ([]byte, error) {
	if t.obj {
		m, err := filemesh.Decode(data)
		if err != nil {
			return nil, err
		}
		return objconv.ExportBytes(m), nil
	}

	m, err := objconv.ImportBytes(data)
	if err != nil {
		return nil, err
	}

	return filemesh.Encode(m, t.version)
}

// collectSources returns the relative paths of regular files under dir
// carrying the wanted extension, in walk order.
func collectSources(dir, ext string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.EqualFold(filepath.Ext(path), ext) {
			return nil
		}

		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}

		files = append(files, rel)

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk input directory: %w", err)
	}

	return files, nil
}

func swapExt(rel, newExt string) string {
	return strings.TrimSuffix(rel, filepath.Ext(rel)) + newExt
}
