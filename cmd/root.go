// Package cmd implements the lastupdate command line interface.
package cmd

import (
	"context"
	stderrors "errors"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/ajxudir/lastupdate/pkg/checker"
	"github.com/ajxudir/lastupdate/pkg/config"
	"github.com/ajxudir/lastupdate/pkg/errors"
	"github.com/ajxudir/lastupdate/pkg/output"
	"github.com/ajxudir/lastupdate/pkg/preflight"
	"github.com/ajxudir/lastupdate/pkg/verbose"
)

// packageChecker produces the report of one package.
type packageChecker interface {
	Check(ctx context.Context, pkg string) (*output.Report, error)
}

var (
	exitFunc      = os.Exit
	getwdFunc     = os.Getwd
	validateTools = preflight.ValidateTools
	newChecker    = func(cfg *config.Config) packageChecker { return checker.New(cfg) }
)

var (
	machineFlag     bool
	projectFlag     string
	apiURLFlag      string
	repologyURLFlag string
	timeoutFlag     time.Duration
	formatFlag      = output.FormatText
	configFlag      string
	verboseFlag     bool
	progressFlag    bool
	printConfigFlag bool
	versionFlag     bool
)

var rootCmd = &cobra.Command{
	Use:   "lastupdate [flags] PACKAGE...",
	Short: "Tell when a package was last updated in the openSUSE Build Service",
	Long: `Report when each package last changed in a build service project, the version
declared in its spec file, and how many other distributions may ship a newer
version according to repology.org.

Requires osc and rpmspec in $PATH.`,
	Example: `  lastupdate bash
  lastupdate -m -p openSUSE:Leap:15.6:Update vim
  lastupdate --format table bash zsh fish`,
	Args:          validateArgs,
	RunE:          runRoot,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command and exits with the appropriate code:
//   - 0: Every package was reported
//   - 1: Some packages failed
//   - 2: All packages failed
//   - 3: Required tools missing or invalid configuration
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		code := errors.GetExitCode(err)

		var partialErr *errors.PartialSuccessError
		if stderrors.As(err, &partialErr) {
			verbose.Infof("Exit code %d: partial success - %d succeeded, %d failed", code, partialErr.Succeeded, partialErr.Failed)
		} else {
			verbose.Infof("Exit code %d: %v", code, err)
		}

		if !reported(err) {
			_, _ = fmt.Fprintf(rootCmd.ErrOrStderr(), "Error: %v\n", err)
		}
		exitFunc(code)
	}
}

// ExecuteTest runs the root command for testing (returns error instead of exiting).
func ExecuteTest() error {
	return rootCmd.Execute()
}

// reported tells whether err was already shown to the user by runRoot.
func reported(err error) bool {
	if _, ok := errors.IsPartialSuccess(err); ok {
		return true
	}
	_, ok := errors.IsExitError(err)
	return ok
}

func init() {
	flags := rootCmd.Flags()
	flags.BoolVarP(&machineFlag, "machine", "m", false, "Use machine processable output instead of human readable")
	flags.StringVarP(&projectFlag, "project", "p", config.DefaultProject, "The root/base project where to find the package")
	flags.StringVar(&apiURLFlag, "apiurl", config.DefaultAPIURL, "Build service API URL")
	flags.StringVar(&repologyURLFlag, "repology-url", config.DefaultRepologyURL, "Repology project API endpoint")
	flags.DurationVar(&timeoutFlag, "timeout", config.DefaultTimeout, "Timeout for each osc, rpmspec and repology call")
	flags.VarP(&formatFlag, "format", "f", "Output format: text, json or table")
	flags.StringVarP(&configFlag, "config", "c", "", "Config file (default .lastupdate.yml or ~/.config/lastupdate/config.yml)")
	flags.BoolVar(&verboseFlag, "verbose", false, "Enable verbose debug output on stderr")
	flags.BoolVar(&progressFlag, "progress", false, "Show a progress bar on stderr when checking several packages")
	flags.BoolVar(&printConfigFlag, "print-config", false, "Print the effective configuration and exit")
	flags.BoolVarP(&versionFlag, "version", "v", false, "Show version information")
}

// validateArgs requires at least one package unless an informational flag is set.
func validateArgs(cmd *cobra.Command, args []string) error {
	if versionFlag || printConfigFlag {
		return nil
	}
	return cobra.MinimumNArgs(1)(cmd, args)
}

func runRoot(cmd *cobra.Command, args []string) error {
	if verboseFlag {
		verbose.Enable()
	}
	if versionFlag {
		printVersionOutput(cmd.OutOrStdout())
		return nil
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
		return errors.NewExitError(errors.ExitConfigError, err)
	}
	if printConfigFlag {
		return printConfig(cmd, cfg)
	}

	if res := validateTools(cfg.Tools()); res.HasErrors() {
		_, _ = fmt.Fprint(cmd.OutOrStdout(), res.ErrorMessage())
		verbose.Infof("Exit code %d (config error): missing tools %v", errors.ExitConfigError, res.Missing())
		return errors.NewExitError(errors.ExitConfigError, res)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	reports, errs := checkAll(ctx, cmd, newChecker(cfg), args)

	if err := output.Write(cmd.OutOrStdout(), formatFlag, machineFlag, reports); err != nil {
		return errors.NewExitError(errors.ExitFailure, err)
	}
	if verbose.IsEnabled() {
		errors.PrintErrorWithHints(cmd.ErrOrStderr(), errs)
	}

	return summarize(ctx, len(reports), errs)
}

// checkAll checks packages in order, stopping early when ctx is cancelled.
func checkAll(ctx context.Context, cmd *cobra.Command, c packageChecker, pkgs []string) ([]*output.Report, []error) {
	progress := output.NewProgress(cmd.ErrOrStderr(), len(pkgs), progressFlag && len(pkgs) > 1)
	defer progress.Done()

	reports := make([]*output.Report, 0, len(pkgs))
	var errs []error
	for _, pkg := range pkgs {
		if ctx.Err() != nil {
			break
		}
		progress.On(pkg)
		r, err := c.Check(ctx, pkg)
		if err != nil {
			verbose.Printf("%v", err)
			errs = append(errs, err)
		}
		reports = append(reports, r)
		progress.Increment()
	}
	return reports, errs
}

// summarize maps check results to the command error, and so to the exit code.
func summarize(ctx context.Context, checked int, errs []error) error {
	if ctx.Err() != nil {
		return errors.NewExitError(errors.ExitFailure, ctx.Err())
	}
	switch {
	case len(errs) == 0:
		return nil
	case len(errs) == checked:
		return errors.NewExitErrorf(errors.ExitFailure, "all %d packages failed", checked)
	default:
		return errors.NewPartialSuccessError(checked-len(errs), len(errs), errs)
	}
}

// loadConfig loads the configuration and applies flags the user set.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	wd, err := getwdFunc()
	if err != nil {
		return nil, fmt.Errorf("cannot determine working directory: %w", err)
	}

	cfg, err := config.Load(configFlag, wd)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("project") {
		cfg.Project = projectFlag
	}
	if flags.Changed("apiurl") {
		cfg.APIURL = apiURLFlag
	}
	if flags.Changed("repology-url") {
		cfg.RepologyURL = repologyURLFlag
	}
	if flags.Changed("timeout") {
		cfg.Timeout = timeoutFlag
	}

	if verbose.IsEnabled() && cfg.LogLevel != "" {
		verbose.SetLevel(cfg.LogLevel)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func printConfig(cmd *cobra.Command, cfg *config.Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return errors.NewExitError(errors.ExitFailure, err)
	}
	if cfg.Source != "" {
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "# source: %s\n", cfg.Source)
	}
	_, _ = cmd.OutOrStdout().Write(data)
	return nil
}
