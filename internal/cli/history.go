package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"powerful/internal/config"
	"powerful/internal/journal"
)

var historyLimit int

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20,
		"maximum number of runs to show")
	rootCmd.AddCommand(historyCmd)
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent evaluation runs from the journal",
	Args:  cobra.NoArgs,
	RunE:  runHistory,
}

func runHistory(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if !cfg.Journal.Enabled {
		return fmt.Errorf("journal is disabled; set enabled = true under [journal] in %s",
			filepath.Join(config.Home(), "config.toml"))
	}

	j, err := journal.Open(cfg.Journal.Path)
	if err != nil {
		return err
	}
	defer j.Close()

	entries, err := j.Recent(historyLimit)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Println("No runs recorded yet.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "WHEN\tCODE\tSSID\tREASON")
	for _, e := range entries {
		reason := e.Reason
		if reason == "" {
			reason = "ok"
		}
		fmt.Fprintf(w, "%s\t%d\t%s\t%s\n",
			e.At.Format("2006-01-02 15:04:05"),
			e.Code,
			e.SSID,
			reason,
		)
	}
	return w.Flush()
}
