package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"shape-selector/internal/stage"
)

type solveRecord struct {
	File string `json:"file"`
	stage.Outcome
}

func newSolveCmd(opts *rootOptions) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "solve <stage-file...>",
		Short: "Resolve stage files (YAML or JSON) to the selected index",
		Long: "A stage file holds an instruction and an ordered list of shapes:\n\n" +
			"  instruction: click the smallest blue square\n" +
			"  shapes:\n" +
			"    - img: a.png                  # image file, data URI or base64\n" +
			"    - img: data:image/png;base64,...\n" +
			"    - {width: 20, height: 30}     # no image: ordered by size only\n\n" +
			"Prints \"<file>\\t<index>\" per stage, or one JSON object per stage with --json.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r := opts.runner()
			w := cmd.OutOrStdout()
			enc := json.NewEncoder(w)
			for _, path := range args {
				st, err := stage.Load(path)
				if err != nil {
					return err
				}
				out, err := r.Solve(cmd.Context(), *st)
				if err != nil {
					return fmt.Errorf("solve %s: %w", path, err)
				}
				if asJSON {
					if err := enc.Encode(solveRecord{File: path, Outcome: out}); err != nil {
						return fmt.Errorf("write result: %w", err)
					}
					continue
				}
				fmt.Fprintf(w, "%s\t%s\n", path, out.Answer)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the full outcome as JSON")
	return cmd
}
