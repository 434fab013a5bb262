package main

import (
	"context"
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"go.uber.org/zap"
	"gonum.org/v1/plot/vg"

	"github.com/jdginn/go-lidar2d/interact"
	"github.com/jdginn/go-lidar2d/optics"
	"github.com/jdginn/go-lidar2d/optics/config"
	"github.com/jdginn/go-lidar2d/optics/experiment"
)

type Globals struct {
	Verbose bool   `short:"v" help:"Enable debug logging"`
	Root    string `name:"root" default:"." type:"path" help:"Directory under which run directories are created"`
}

var CLI struct {
	Globals

	Scan     ScanCmd     `cmd:"" help:"Sweep a range sensor over a scene"`
	Trace    TraceCmd    `cmd:"" help:"Trace rays through a scene"`
	Validate ValidateCmd `cmd:"" help:"Check a scenario file without running it"`
}

var loadOptions = config.LoadOptions{
	ValidateImmediately: false,
	ResolvePaths:        true,
	MergeFiles:          true,
}

// load reads, merges and validates a scenario file.
func load(path string) (*config.ScenarioConfig, error) {
	cfg, err := config.LoadFromFile(path, loadOptions)
	if err != nil {
		return nil, err
	}
	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, fmt.Errorf("invalid scenario %s\n%s", path, config.FormatValidationErrors(errs))
	}
	return cfg, nil
}

// run holds what every command writes into its run directory.
type run struct {
	dir   *experiment.RunDir
	cfg   *config.ScenarioConfig
	scene *optics.Scene
}

// startRun builds the scene of a loaded scenario, then creates the run directory.
func startRun(path string, cfg *config.ScenarioConfig, globals *Globals, logger *zap.Logger) (*run, error) {
	scene, err := cfg.Scene.Build()
	if err != nil {
		return nil, fmt.Errorf("building scene: %w", err)
	}

	dir, err := experiment.CreateRunDirectory(globals.Root, logger)
	if err != nil {
		return nil, err
	}
	if err := dir.CopyConfigFile(path); err != nil {
		return nil, err
	}
	logger.Info("created run directory",
		zap.String("id", dir.ID),
		zap.String("path", dir.Path),
		zap.Int("shapes", scene.Len()),
		zap.Float64("total_area", scene.TotalArea()))
	return &run{dir: dir, cfg: cfg, scene: scene}, nil
}

func (r *run) view(sensor *optics.Sensor) optics.View {
	w, h := r.cfg.Render.Size()
	return optics.View{
		Scene:   r.scene,
		Sensor:  sensor,
		XSize:   w,
		YSize:   h,
		Padding: r.cfg.Render.Padding,
	}
}

// tracePaths traces every configured ray. It returns nil without a trace section.
func (r *run) tracePaths(logger *zap.Logger) ([]optics.Path, error) {
	if r.cfg.Trace == nil {
		return nil, nil
	}
	rays, err := r.cfg.Trace.Build()
	if err != nil {
		return nil, err
	}
	paths := make([]optics.Path, 0, len(rays))
	for i, ray := range rays {
		path, err := r.scene.TracePath(ray, r.cfg.Trace.MaxBounces)
		if err != nil {
			return nil, fmt.Errorf("tracing ray %d: %w", i, err)
		}
		logger.Info("traced ray",
			zap.Int("ray", i),
			zap.Int("bounces", path.Bounces()),
			zap.Bool("escaped", path.Escaped),
			zap.Float64("length", path.Length()))
		paths = append(paths, path)
	}
	return paths, nil
}

type ScanCmd struct {
	Config      string `arg:"" name:"config" type:"existingfile" help:"Scenario file"`
	Interactive bool   `short:"i" help:"Browse the returns after the scan"`
}

func (c *ScanCmd) Run(globals *Globals, logger *zap.Logger) error {
	cfg, err := load(c.Config)
	if err != nil {
		return err
	}
	if cfg.Sensor == nil {
		return fmt.Errorf("scenario %s has no sensor section", c.Config)
	}
	sensor, err := cfg.Sensor.Build()
	if err != nil {
		return fmt.Errorf("building sensor: %w", err)
	}
	r, err := startRun(c.Config, cfg, globals, logger)
	if err != nil {
		return err
	}

	var measurements []optics.Measurement
	if workers := r.cfg.Sensor.Workers; workers > 1 {
		measurements, err = sensor.ScanParallel(context.Background(), r.scene, workers)
		if err != nil {
			return err
		}
	} else {
		measurements = sensor.Scan(r.scene)
	}

	summary := optics.Summarize(sensor, measurements)
	logger.Info("scan complete",
		zap.Int("rays", summary.Rays),
		zap.Int("returns", summary.Returns),
		zap.Float64("coverage", summary.Coverage),
		zap.Float64("min_range", summary.MinRange),
		zap.Float64("max_range", summary.MaxRange),
		zap.Float64("mean_range", summary.Mean),
		zap.Float64("stddev_range", summary.StdDev))

	paths, err := r.tracePaths(logger)
	if err != nil {
		return err
	}

	view := r.view(&sensor)
	if err := view.SavePNG(r.dir.GetFilePath(experiment.RENDER_FILE), paths, sensor.ToPoints(measurements)); err != nil {
		return fmt.Errorf("saving render: %w", err)
	}
	if err := optics.SaveAnnotationsToJSON(r.dir.GetFilePath(experiment.ANNOTATIONS_FILE), r.scene, paths, &sensor, measurements); err != nil {
		return err
	}
	if len(measurements) > 0 {
		if err := optics.PlotScan(r.dir.GetFilePath(experiment.RANGE_PLOT_FILE), measurements, 8*vg.Inch, 4*vg.Inch); err != nil {
			return err
		}
	}

	if c.Interactive && len(measurements) > 0 {
		return interact.Interact(view, sensor, measurements, r.dir.GetFilePath("selected.png"))
	}
	return nil
}

type TraceCmd struct {
	Config string `arg:"" name:"config" type:"existingfile" help:"Scenario file"`
}

func (c *TraceCmd) Run(globals *Globals, logger *zap.Logger) error {
	cfg, err := load(c.Config)
	if err != nil {
		return err
	}
	if cfg.Trace == nil {
		return fmt.Errorf("scenario %s has no trace section", c.Config)
	}
	r, err := startRun(c.Config, cfg, globals, logger)
	if err != nil {
		return err
	}
	paths, err := r.tracePaths(logger)
	if err != nil {
		return err
	}

	view := r.view(nil)
	if err := view.SavePNG(r.dir.GetFilePath(experiment.RENDER_FILE), paths, nil); err != nil {
		return fmt.Errorf("saving render: %w", err)
	}
	return optics.SaveAnnotationsToJSON(r.dir.GetFilePath(experiment.ANNOTATIONS_FILE), r.scene, paths, nil, nil)
}

type ValidateCmd struct {
	Config string `arg:"" name:"config" type:"existingfile" help:"Scenario file"`
}

func (c *ValidateCmd) Run(logger *zap.Logger) error {
	cfg, err := load(c.Config)
	if err != nil {
		return err
	}
	scene, err := cfg.Scene.Build()
	if err != nil {
		return fmt.Errorf("building scene: %w", err)
	}
	if cfg.Sensor != nil {
		if _, err := cfg.Sensor.Build(); err != nil {
			return fmt.Errorf("building sensor: %w", err)
		}
	}
	if cfg.Trace != nil {
		if _, err := cfg.Trace.Build(); err != nil {
			return fmt.Errorf("building rays: %w", err)
		}
	}
	box := scene.BoundingBox()
	logger.Info("scenario is valid",
		zap.String("config", c.Config),
		zap.Int("shapes", scene.Len()),
		zap.Float64("width", box.Width()),
		zap.Float64("height", box.Height()))
	return nil
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("lidar2d"),
		kong.Description("2D ray tracing and range-sensor simulation"),
		kong.UsageOnError())

	logger, err := newLogger(CLI.Verbose)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer logger.Sync()
	optics.SetLogger(logger)

	if err := ctx.Run(&CLI.Globals, logger); err != nil {
		logger.Error("command failed", zap.Error(err))
		_ = logger.Sync()
		os.Exit(1)
	}
}
