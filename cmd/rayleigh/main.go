package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"text/tabwriter"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/san-kum/rayleigh/internal/config"
	"github.com/san-kum/rayleigh/internal/logging"
	"github.com/san-kum/rayleigh/internal/pipeline"
	"github.com/san-kum/rayleigh/internal/storage"
	"github.com/san-kum/rayleigh/internal/units"
	"github.com/san-kum/rayleigh/internal/viz"
	"github.com/spf13/cobra"
)

var (
	configFile string
	dataDir    string
	logMode    string
	precision  int

	// eval / explore
	overrides []string
	noSave    bool

	// sweep
	sweepOperand string
	sweepFrom    float64
	sweepTo      float64
	sweepPoints  int

	cfg *config.Config
	log *logging.Logger
)

func main() {
	rootCmd := &cobra.Command{
		Use:               "rayleigh",
		Short:             "dimensional analysis for physical quantities",
		SilenceUsage:      true,
		PersistentPreRunE: setup,
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data", config.DefaultDataDir, "data directory")
	rootCmd.PersistentFlags().StringVar(&logMode, "log", config.DefaultLogMode, "log mode (dev, prod, quiet)")
	rootCmd.PersistentFlags().IntVar(&precision, "precision", config.DefaultPrecision, "significant digits")

	unitsCmd := &cobra.Command{
		Use:   "units",
		Short: "list known units",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Print(viz.RenderUnits(units.NewRegistry().List()))
			return nil
		},
	}

	dimCmd := &cobra.Command{
		Use:   "dim [unit]",
		Short: "show the dimension of a unit",
		Args:  cobra.ExactArgs(1),
		RunE:  showDimension,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available pipelines",
		Args:  cobra.NoArgs,
		RunE:  listPipelines,
	}

	evalCmd := &cobra.Command{
		Use:   "eval [file|pipeline]",
		Short: "evaluate a pipeline and cast the result",
		Args:  cobra.ExactArgs(1),
		RunE:  evalPipeline,
	}
	evalCmd.Flags().StringArrayVar(&overrides, "set", nil, "override an operand value (name=value)")
	evalCmd.Flags().BoolVar(&noSave, "no-save", false, "do not store the run")

	sweepCmd := &cobra.Command{
		Use:   "sweep [file|pipeline]",
		Short: "evaluate a pipeline over a range of operand values",
		Args:  cobra.ExactArgs(1),
		RunE:  sweepPipeline,
	}
	sweepCmd.Flags().StringVar(&sweepOperand, "operand", "", "operand to vary")
	sweepCmd.Flags().Float64Var(&sweepFrom, "from", 1, "first value")
	sweepCmd.Flags().Float64Var(&sweepTo, "to", 10, "last value")
	sweepCmd.Flags().IntVar(&sweepPoints, "points", config.DefaultSweepPoints, "number of points")
	sweepCmd.Flags().StringArrayVar(&overrides, "set", nil, "override an operand value (name=value)")
	sweepCmd.Flags().BoolVar(&noSave, "no-save", false, "do not store the run")
	_ = sweepCmd.MarkFlagRequired("operand")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list runs",
		Args:  cobra.NoArgs,
		RunE:  listRuns,
	}

	showCmd := &cobra.Command{
		Use:   "show [run_id]",
		Short: "show a stored run",
		Args:  cobra.ExactArgs(1),
		RunE:  showRun,
	}

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export run data to JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return storage.New(cfg.DataDir).ExportJSON(os.Stdout, args[0])
		},
	}

	exploreCmd := &cobra.Command{
		Use:   "explore [file|pipeline]",
		Short: "step through a pipeline interactively",
		Args:  cobra.ExactArgs(1),
		RunE:  explorePipeline,
	}
	exploreCmd.Flags().StringArrayVar(&overrides, "set", nil, "override an operand value (name=value)")

	initCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "write a default config file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "rayleigh.yaml"
			if len(args) > 0 {
				path = args[0]
			}
			if _, err := os.Stat(path); err == nil {
				return fmt.Errorf("%s already exists", path)
			}
			if err := config.Save(path, cfg); err != nil {
				return err
			}
			fmt.Printf("wrote %s\n", path)
			return nil
		},
	}

	rootCmd.AddCommand(unitsCmd, dimCmd, presetsCmd, evalCmd, sweepCmd, listCmd, showCmd, exportCmd, exploreCmd, initCmd)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if log != nil {
		log.Sync()
	}
	if err != nil {
		os.Exit(1)
	}
}

// setup loads the config file and lets explicitly set flags override it.
func setup(cmd *cobra.Command, args []string) error {
	cfg = config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("data") {
		cfg.DataDir = dataDir
	}
	if flags.Changed("log") {
		cfg.LogMode = logMode
	}
	if flags.Changed("precision") {
		cfg.Precision = precision
	}
	if flags.Lookup("points") != nil && !flags.Changed("points") {
		sweepPoints = cfg.Sweep.Points
	}

	var err error
	log, err = logging.New(cfg.LogMode)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	return nil
}

// resolvePipeline treats arg as a file path if one exists, otherwise as a
// pipeline name from the config or the presets.
func resolvePipeline(arg string) (*pipeline.Pipeline, error) {
	var p *pipeline.Pipeline
	if info, err := os.Stat(arg); err == nil && !info.IsDir() {
		p, err = pipeline.Load(arg)
		if err != nil {
			return nil, err
		}
	} else {
		var ok bool
		p, ok = cfg.Pipeline(arg)
		if !ok {
			return nil, fmt.Errorf("unknown pipeline: %s (available: %v)", arg, cfg.PipelineNames())
		}
	}

	for _, o := range overrides {
		name, raw, ok := strings.Cut(o, "=")
		if !ok {
			return nil, fmt.Errorf("invalid --set %q: expected name=value", o)
		}
		value, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid --set %q: %w", o, err)
		}
		if p, err = p.WithValue(strings.TrimSpace(name), value); err != nil {
			return nil, err
		}
	}
	return p, nil
}

func showDimension(cmd *cobra.Command, args []string) error {
	reg := units.NewRegistry()
	def, err := reg.Lookup(args[0])
	if err != nil {
		return err
	}

	fmt.Print(viz.RenderDefinition(def))

	var same []string
	for _, other := range reg.Matching(def.Dimension) {
		if other.Name != def.Name {
			same = append(same, other.Name)
		}
	}
	if len(same) > 0 {
		fmt.Printf("\nsame dimension: %s\n", strings.Join(same, ", "))
	}
	return nil
}

func listPipelines(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tTARGET\tSTEPS\tDESCRIPTION")
	for _, name := range cfg.PipelineNames() {
		p, _ := cfg.Pipeline(name)
		target := p.Target
		if target == "" {
			target = "-"
		}
		fmt.Fprintf(w, "%s\t%s\t%d\t%s\n", name, target, len(p.Steps), p.Description)
	}
	return w.Flush()
}

func evalPipeline(cmd *cobra.Command, args []string) error {
	p, err := resolvePipeline(args[0])
	if err != nil {
		return err
	}

	res, evalErr := pipeline.NewEvaluator(nil, log).Evaluate(p)
	if res == nil {
		return evalErr
	}
	fmt.Println(viz.RenderResult(res, cfg.Precision))

	if !noSave {
		st := storage.New(cfg.DataDir)
		if err := st.Init(); err != nil {
			return err
		}
		runID, err := st.SaveResult(res)
		if err != nil {
			return fmt.Errorf("failed to save run: %w", err)
		}
		log.Info("run saved", "id", runID, "pipeline", res.Pipeline)
		fmt.Printf("\nrun: %s\n", runID)
	}
	return evalErr
}

func sweepPipeline(cmd *cobra.Command, args []string) error {
	p, err := resolvePipeline(args[0])
	if err != nil {
		return err
	}

	spec := pipeline.SweepSpec{Operand: sweepOperand, From: sweepFrom, To: sweepTo, Points: sweepPoints}
	sw, err := pipeline.NewEvaluator(nil, log).Sweep(cmd.Context(), p, spec)
	if err != nil {
		return err
	}

	fmt.Println(viz.PlotSweep(sw, cfg.Sweep.Height, cfg.Sweep.Width))

	if !noSave {
		st := storage.New(cfg.DataDir)
		if err := st.Init(); err != nil {
			return err
		}
		runID, err := st.SaveSweep(sw)
		if err != nil {
			return fmt.Errorf("failed to save run: %w", err)
		}
		fmt.Printf("\nrun: %s\n", runID)
	}
	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(cfg.DataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tKIND\tPIPELINE\tTIME\tTARGET\tRESULT")

	for _, run := range runs {
		result := run.Value
		switch {
		case run.Kind == storage.KindSweep && run.Sweep != nil:
			result = fmt.Sprintf("%s %g..%g (%d)", run.Sweep.Operand, run.Sweep.From, run.Sweep.To, run.Sweep.Points)
		case !run.OK:
			result = "mismatch"
		}
		target := run.Target
		if target == "" {
			target = "-"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			run.ID,
			run.Kind,
			run.Pipeline,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			target,
			result,
		)
	}

	return w.Flush()
}

func showRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(cfg.DataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("pipeline: %s\n", meta.Pipeline)
	fmt.Printf("time: %s\n\n", meta.Timestamp.Format("2006-01-02 15:04:05"))

	if meta.Kind != storage.KindSweep {
		for _, step := range meta.Trace {
			fmt.Printf("  %-16s %s  %s\n", step.Label, step.Value, viz.Subtle.Render(step.Dimension.String()))
		}
		fmt.Println()
		if meta.OK {
			fmt.Println(viz.OKStyle.Render("✓ ") + meta.Value + " " + meta.Target)
		} else {
			fmt.Println(viz.ErrorStyle.Render("✗ " + meta.Error))
		}
		return nil
	}

	sw, err := st.LoadSweepResult(runID)
	if err != nil {
		return err
	}
	if len(sw.Outputs) == 0 {
		return errors.New("no data to plot")
	}
	fmt.Println(viz.PlotSweep(sw, cfg.Sweep.Height, cfg.Sweep.Width))
	return nil
}

func explorePipeline(cmd *cobra.Command, args []string) error {
	p, err := resolvePipeline(args[0])
	if err != nil {
		return err
	}

	res, err := pipeline.NewEvaluator(nil, logging.Nop()).Evaluate(p)
	if res == nil {
		return err
	}

	prog := tea.NewProgram(viz.NewExplorer(res, cfg.Precision))
	if _, err := prog.Run(); err != nil {
		return err
	}
	return nil
}
