package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/sukalov/songform/internal/songform"
)

var parseCmd = &cobra.Command{
	Use:   "parse [structure]",
	Short: "Parse a structure and list the sections that need lyrics",
	Example: `  songform parse "1-verse-chorus-2-verse-chorus-3"`,
	Args:  cobra.MinimumNArgs(1),
	RunE:  runParse,
}

func runParse(cmd *cobra.Command, args []string) error {
	structure := songform.Parse(strings.Join(args, " "))
	out := cmd.OutOrStdout()

	if len(structure) == 0 {
		fmt.Fprintln(out, "structure is empty")
		return nil
	}

	fmt.Fprintf(out, "structure: %s\n", structure)
	sections := songform.UniqueLyricSections(structure)
	if len(sections) == 0 {
		fmt.Fprintln(out, "no sections need lyrics")
		return nil
	}
	fmt.Fprintf(out, "sections:  %s\n", strings.Join(sections, ", "))
	return nil
}
