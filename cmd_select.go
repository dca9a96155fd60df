package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"shape-selector/internal/stage"
)

func newSelectCmd(opts *rootOptions) *cobra.Command {
	var instruction string

	cmd := &cobra.Command{
		Use:   "select --instruction <text> <image...>",
		Short: "Print the 0-based index of the image the instruction asks for",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st := stage.Stage{Instruction: instruction}
			for _, path := range args {
				data, err := readImageArg(cmd.InOrStdin(), path)
				if err != nil {
					return err
				}
				st.Shapes = append(st.Shapes, stage.ShapeInput{Payload: data})
			}

			out, err := opts.runner().Solve(cmd.Context(), st)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out.Answer)
			return nil
		},
	}

	cmd.Flags().StringVarP(&instruction, "instruction", "i", "", "Instruction text, e.g. \"the largest red circle\" (required)")
	_ = cmd.MarkFlagRequired("instruction")
	return cmd
}
