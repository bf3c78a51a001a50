// Package cli implements the powerful command-line interface using Cobra.
// The root command runs the evaluation; the exit-code mapping happens
// here and nowhere else.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"powerful/internal/check"
	"powerful/internal/config"
	"powerful/internal/journal"
	"powerful/internal/netlist"
	"powerful/internal/probe"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "powerful",
	Short: "Exit 0 when this machine has a powerful connection",
	Long: `powerful checks that the machine is on AC power, fully charged, has
spare processing headroom, and is associated with an approved wireless
network. The verdict is the exit code:

  0   powerful connection confirmed
  20  not on AC power
  21  battery not fully charged
  22  processor load too high
  30  no SSID (wireless not associated)
  31  accept list present and SSID not in it
  32  reject list present and SSID is in it

Put one SSID per line in accept-list.txt / reject-list.txt under the
config directory to restrict which networks count.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runCheck,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"print each check's outcome to stderr")
}

// Execute runs the root command. Called from main.go.
func Execute(version string) {
	rootCmd.Version = version

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	ev := newEvaluator(cfg)
	if verbose {
		ev.Trace = func(name string, ok bool, detail string) {
			status := "pass"
			if !ok {
				status = "FAIL"
			}
			fmt.Fprintf(os.Stderr, "%-12s %s  %s\n", name, status, detail)
		}
	}

	res := ev.Evaluate()

	if cfg.Journal.Enabled {
		record(cfg.Journal.Path, res)
	}

	if !res.Ok() {
		fmt.Fprintln(os.Stderr, res.Reason)
		os.Exit(res.Code)
	}
	return nil
}

// newEvaluator wires the production probes and list files from config.
func newEvaluator(cfg config.Config) *check.Evaluator {
	ev := &check.Evaluator{
		Power:      probe.Power{},
		Load:       probe.Load{},
		Wifi:       probe.Wifi{Interface: cfg.Wifi.Interface},
		MinBattery: cfg.Check.MinBatteryPercent,
	}
	// A nil *netlist.List must stay a nil interface so the evaluator
	// skips the check entirely.
	if l := netlist.Load(cfg.Lists.Accept); l != nil {
		ev.Accept = l
	}
	if l := netlist.Load(cfg.Lists.Reject); l != nil {
		ev.Reject = l
	}
	return ev
}

// record appends the result to the journal. A broken journal is a
// warning, never a verdict change.
func record(path string, res check.Result) {
	j, err := journal.Open(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, "warning: journal:", err)
		return
	}
	defer j.Close()
	if err := j.Record(res); err != nil {
		fmt.Fprintln(os.Stderr, "warning: journal:", err)
	}
}
