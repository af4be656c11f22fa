package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"cellsim/internal/core"
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "List all registered rules",
	Long:  `Shows every rule in the registry with its default parameters.`,
	RunE:  runRules,
}

func runRules(cmd *cobra.Command, args []string) error {
	names := core.RuleNames()
	if len(names) == 0 {
		fmt.Println("No rules registered.")
		return nil
	}

	maxLen := 4 // "Rule" header
	for _, n := range names {
		if len(n) > maxLen {
			maxLen = len(n)
		}
	}

	fmt.Printf("  %-*s  %s\n", maxLen, "Rule", "Parameters")
	fmt.Printf("  %-*s  %s\n", maxLen, "----", "----------")
	for _, name := range names {
		r, err := core.NewRule(name, nil)
		if err != nil {
			return err
		}
		fmt.Printf("  %-*s  %s\n", maxLen, name, describeParams(r))
	}

	fmt.Println()
	fmt.Println("Run 'ca run --rule <name>' or 'ca view --rule <name>'.")
	return nil
}

func describeParams(r core.Rule) string {
	provider, ok := r.(core.ParameterProvider)
	if !ok {
		return "-"
	}
	var parts []string
	for _, p := range provider.Parameters() {
		parts = append(parts, fmt.Sprintf("%s=%s", p.Key, p.Value))
	}
	if len(parts) == 0 {
		return "-"
	}
	return strings.Join(parts, " ")
}
