package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"powerful/internal/config"
	"powerful/internal/netlist"
)

func init() {
	rootCmd.AddCommand(listsCmd)
}

var listsCmd = &cobra.Command{
	Use:   "lists",
	Short: "Show the resolved accept/reject lists",
	Long:  `Print which list files the gate reads and their entries, for debugging.`,
	Args:  cobra.NoArgs,
	RunE:  runLists,
}

func runLists(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	printList("accept", cfg.Lists.Accept)
	printList("reject", cfg.Lists.Reject)
	return nil
}

func printList(kind, path string) {
	l := netlist.Load(path)
	if l == nil {
		fmt.Printf("%s list: %s (absent — check skipped)\n", kind, path)
		return
	}
	fmt.Printf("%s list: %s (%d entries)\n", kind, path, l.Len())
	for _, name := range l.Names() {
		fmt.Printf("  %s\n", name)
	}
}
