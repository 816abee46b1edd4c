package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-eco/internal/config"
	"github.com/vovakirdan/tui-eco/internal/eco"
)

var checkCmd = &cobra.Command{
	Use:   "check <file.yaml|scenario>",
	Short: "Validate a topology",
	Long: `Parse, validate and build a topology without running it, then print a
summary of its stockpiles and links.

Examples:
  eco check ./topologies/mine.yaml
  eco check foundry`,
	Args: cobra.ExactArgs(1),
	Run:  runCheck,
}

func runCheck(_ *cobra.Command, args []string) {
	topo, err := config.Load(args[0])
	if err != nil {
		fail("%v", err)
	}

	n, _, err := config.Build(topo)
	if err != nil {
		fail("%v", err)
	}

	fmt.Printf("%s: OK\n", topo.Name)
	if topo.Description != "" {
		fmt.Printf("  %s\n", topo.Description)
	}
	fmt.Println()

	fmt.Printf("Stockpiles (%d):\n", n.Len())
	for i := range n.Len() {
		id := eco.StockpileID(i)
		s := n.Stockpile(id)
		limit := "unbounded"
		if l, ok := s.Limit(); ok {
			limit = fmt.Sprintf("limit %g", l)
		}
		fmt.Printf("  %-16s amount %-10g %s\n", n.Label(id), s.Amount, limit)
	}

	fmt.Printf("\nLinks (%d producers, %d converters):\n", len(n.Producers()), len(n.Converters()))
	for i := range n.Links() {
		l := n.Link(eco.LinkID(i))
		name := l.Label
		if name == "" {
			name = eco.LinkID(i).String()
		}
		fmt.Printf("  %-16s %-9s x%g\n", name, l.Kind(), l.StackFactor())
	}
}
