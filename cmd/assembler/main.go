// Command assembler compiles a luinux source file into a binary image.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/inkwell-systems/luinux/assembler"
)

var dumpLabels bool

func main() {
	root := &cobra.Command{
		Use:   "assembler <input_source_file> <output_binary_file> [x]",
		Short: "Assemble luinux source into a binary image",
		Args:  cobra.RangeArgs(2, 3),
		RunE:  run,
	}
	root.Flags().BoolVar(&dumpLabels, "dump-labels", false, "print the declared label table to stderr")
	root.SilenceUsage = true
	root.SilenceErrors = true

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(-1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	inputPath, outputPath := args[0], args[1]
	echoHex := len(args) == 3 && args[2] == "x"

	source, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("reading %s: %w", inputPath, err)
	}

	if dumpLabels {
		labels, err := assembler.DumpLabels(string(source))
		if err != nil {
			return err
		}
		for name, addr := range labels {
			fmt.Fprintf(os.Stderr, "%s = 0x%04X\n", name, addr)
		}
	}

	payload, err := assembler.Assemble(string(source))
	if err != nil {
		return err
	}

	if err := os.WriteFile(outputPath, payload, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", outputPath, err)
	}

	if echoHex {
		for _, b := range payload {
			fmt.Printf("\\x%02X", b)
		}
		fmt.Println()
	}

	return nil
}
