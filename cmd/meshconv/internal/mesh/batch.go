package mesh

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/cheggaaa/pb"
	"github.com/mitchellh/go-homedir"
	"github.com/panjf2000/ants/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rbxasset/meshconv/cmd/meshconv/config"
	batchconfig "github.com/rbxasset/meshconv/cmd/meshconv/config/batch"
	cacheconfig "github.com/rbxasset/meshconv/cmd/meshconv/config/cache"
	common "github.com/rbxasset/meshconv/cmd/meshconv/internal"
	"github.com/rbxasset/meshconv/pkg/cache"
	"github.com/rbxasset/meshconv/pkg/services/converter"
	"github.com/rbxasset/meshconv/pkg/util/grace"
)

const (
	inputDirFlag   = "in"
	outputDirFlag  = "out"
	toObjFlag      = "to-obj"
	workersFlag    = "workers"
	noProgressFlag = "no-progress"
	reportFlag     = "report"
)

var batchCMD = &cobra.Command{
	Use:   "batch",
	Short: "Convert every mesh or OBJ file under a directory",
	Long: `Convert every source file under the input directory and write results
under the output directory, preserving relative paths. Finished conversions
are reused from the cache between runs unless it is disabled.`,
	Args: cobra.NoArgs,
	Run:  batchFunc,
}

func init() {
	ff := batchCMD.Flags()

	ff.StringVar(&vInputDir, inputDirFlag, "", "Directory walked for source files")
	ff.StringVar(&vOutputDir, outputDirFlag, "", "Directory converted files are written to")
	ff.BoolVar(&vToOBJ, toObjFlag, false, "Produce OBJ documents from mesh containers")
	common.AddMeshVersionFlag(batchCMD, &vMeshVersion)
	ff.IntVar(&vWorkers, workersFlag, 0, "Number of concurrent conversions, defaults to the configuration")
	ff.BoolVar(&vNoProgress, noProgressFlag, false, "Do not display the progress bar")
	ff.StringVar(&vReport, reportFlag, "", "Write a YAML run report to the given file")

	_ = batchCMD.MarkFlagRequired(inputDirFlag)
	_ = batchCMD.MarkFlagRequired(outputDirFlag)
}

func batchFunc(cmd *cobra.Command, _ []string) {
	appCfg := common.Config(cmd)

	var tgt converter.Target
	if vToOBJ {
		tgt = converter.TargetOBJ()
	} else {
		ver, err := targetVersion(cmd)
		common.ExitOnErr(cmd, "", err)

		tgt = converter.TargetFileMesh(ver)
	}

	workers := vWorkers
	if workers <= 0 {
		workers = batchconfig.Workers(appCfg)
	}

	pool, err := ants.NewPool(workers)
	common.ExitOnErr(cmd, "create worker pool: %w", err)
	defer pool.Release()

	opts := []converter.Option{
		converter.WithWorkerPool(pool),
	}

	if cacheconfig.Enabled(appCfg) {
		cc, err := openCache(appCfg)
		common.ExitOnErr(cmd, "open conversion cache: %w", err)

		defer func() { _ = cc.Close() }()

		opts = append(opts, converter.WithCache(cc))
	}

	var (
		bar     *pb.ProgressBar
		barOnce sync.Once
	)

	if !vNoProgress {
		bar = pb.New(0)
		bar.Output = cmd.OutOrStdout()

		opts = append(opts, converter.WithProgressCallback(func(_, total int, _ string) {
			barOnce.Do(func() {
				bar.Total = int64(total)
				bar.Start()
			})
			bar.Increment()
		}))
	}

	var prm converter.Prm
	prm.SetInputDir(vInputDir)
	prm.SetOutputDir(vOutputDir)
	prm.SetTarget(tgt)

	ctx := grace.NewGracefulContext(zap.L())

	res, err := converter.New(opts...).Convert(ctx, prm)
	if bar != nil {
		bar.Finish()
	}

	rep := res.Report()

	if vReport != "" && rep.Total > 0 {
		common.ExitOnErr(cmd, "write run report: %w", writeReport(rep, vReport))
	}

	common.ExitOnErr(cmd, "batch conversion: %w", err)

	cmd.Printf("Converted %d of %d files (%d from cache, %d failed) in %s\n",
		rep.Converted, rep.Total, rep.FromCache, len(rep.Failed), rep.Elapsed)

	for i := range rep.Failed {
		cmd.PrintErrf("failed %s: %s\n", rep.Failed[i].Path, rep.Failed[i].Error)
	}
}

// openCache builds the conversion cache from the configuration and brings
// it up. An unset path lands in the user cache directory.
func openCache(appCfg *config.Config) (*cache.Cache, error) {
	path := cacheconfig.Path(appCfg)
	if path == "" {
		home, err := homedir.Dir()
		if err != nil {
			return nil, common.Errf("resolve home directory: %w", err)
		}

		path = filepath.Join(home, ".cache", "meshconv", "cache.db")
	}

	opts := []cache.Option{
		cache.WithPath(path),
		cache.WithCompression(cacheconfig.Compression(appCfg)),
	}
	if capacity := cacheconfig.Capacity(appCfg); capacity > 0 {
		opts = append(opts, cache.WithMemoryCapacity(capacity))
	}

	cc := cache.New(opts...)

	if err := cc.Open(); err != nil {
		return nil, err
	}
	if err := cc.Init(); err != nil {
		_ = cc.Close()
		return nil, err
	}

	return cc, nil
}

func writeReport(rep converter.Report, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	err = rep.WriteYAML(f)
	if cerr := f.Close(); err == nil {
		err = cerr
	}

	return err
}
