package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"shipscout/pkg/detector"
)

var frameworksCmd = &cobra.Command{
	Use:   "frameworks",
	Short: "List the built-in framework rule forest",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		for _, runtime := range []string{detector.RuntimeNode, detector.RuntimePython} {
			fmt.Print(renderRuleTree(runtime, detector.DefaultRules(runtime)))
			fmt.Println()
		}
	},
}

// renderRuleTree prints one runtime's rule forest as an indented tree, with
// each framework's dependency markers and embed declarations.
func renderRuleTree(runtime string, rules []detector.Framework) string {
	children := make(map[string][]detector.Framework)
	for _, fw := range rules {
		children[fw.Parent] = append(children[fw.Parent], fw)
	}
	for parent := range children {
		sort.Slice(children[parent], func(i, j int) bool {
			return children[parent][i].Name < children[parent][j].Name
		})
	}

	var b strings.Builder
	b.WriteString(runtime)
	b.WriteString("\n")
	var walk func(parent string, depth int)
	walk = func(parent string, depth int) {
		for _, fw := range children[parent] {
			b.WriteString(strings.Repeat("  ", depth))
			b.WriteString(fw.Name)
			if len(fw.Dependencies) > 0 {
				names := make([]string, len(fw.Dependencies))
				for i, dep := range fw.Dependencies {
					names[i] = dep.Name
				}
				fmt.Fprintf(&b, " (requires: %s)", strings.Join(names, ", "))
			}
			if len(fw.CanEmbed) > 0 {
				fmt.Fprintf(&b, " [embeds: %s]", strings.Join(fw.CanEmbed, ", "))
			}
			b.WriteString("\n")
			walk(fw.Name, depth+1)
		}
	}
	walk(runtime, 1)
	return b.String()
}
