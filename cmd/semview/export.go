package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/c360studio/semview/export"
	"github.com/c360studio/semview/rdf"
)

func exportCmd() *cobra.Command {
	var (
		formatName string
		toName     string
		outputPath string
	)

	cmd := &cobra.Command{
		Use:   "export <file>",
		Short: "Re-serialize an RDF document into another format",
		Long: `Export parses an RDF document and writes it back out in a different
serialization. All four input formats are accepted; output formats are
turtle, ntriples, and jsonld.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			content, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read input: %w", err)
			}

			doc, err := rdf.Parse(string(content), resolveFormat(args[0], formatName))
			if err != nil {
				return fmt.Errorf("parse input: %w", err)
			}

			out, err := export.Serialize(doc, rdf.ParseFormat(toName))
			if err != nil {
				return err
			}

			if outputPath == "" {
				fmt.Print(out)
				return nil
			}
			return os.WriteFile(outputPath, []byte(out), 0644)
		},
	}

	cmd.Flags().StringVarP(&formatName, "format", "f", "", "Input RDF format; inferred from extension when unset")
	cmd.Flags().StringVarP(&toName, "to", "t", "turtle", fmt.Sprintf("Output format (%s)", export.FormatList()))
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file (default stdout)")

	return cmd
}
