package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"shape-selector/internal/shape"
)

// classifyRecord is one JSON line of classify output.
type classifyRecord struct {
	File string `json:"file"`
	shape.Result
}

func newClassifyCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "classify <image...>",
		Short: "Print the shape, color and size of each image as JSON lines",
		Long: "Each argument is an image file, or \"-\" for standard input. The input may\n" +
			"be encoded image bytes, base64 text or a data URI.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := opts.classifier()
			enc := json.NewEncoder(cmd.OutOrStdout())
			for _, path := range args {
				data, err := readImageArg(cmd.InOrStdin(), path)
				if err != nil {
					return err
				}
				if err := enc.Encode(classifyRecord{File: path, Result: c.Classify(data)}); err != nil {
					return fmt.Errorf("write result: %w", err)
				}
			}
			return nil
		},
	}
}

// readImageArg reads an image argument: a file path, or "-" for stdin.
func readImageArg(stdin io.Reader, path string) ([]byte, error) {
	if path == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read image: %w", err)
	}
	return data, nil
}
