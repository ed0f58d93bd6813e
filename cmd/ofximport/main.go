package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rockstardevs/ofximport"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCommand creates the root CLI command with all subcommands registered.
func newRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "ofximport",
		Short: "Parse OFX/QFX bank statements into import-ready transactions",
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newParseCommand())
	rootCmd.AddCommand(newCheckCommand())

	return rootCmd
}

func newParseCommand() *cobra.Command {
	var raw bool

	cmd := &cobra.Command{
		Use:   "parse FILE",
		Short: "Parse a statement file and print normalized transactions as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			statement, err := readStatement(args[0])
			if err != nil {
				return err
			}
			if raw {
				return writeJSON(cmd, statement)
			}
			return writeJSON(cmd, ofximport.Normalize(statement))
		},
	}
	cmd.Flags().BoolVar(&raw, "raw", false, "print the raw parsed statement instead of normalized transactions")

	return cmd
}

func newCheckCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check FILE",
		Short: "Validate a statement file and print the verdict as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			statement, err := readStatement(args[0])
			if err != nil {
				return err
			}
			result := ofximport.Validate(statement)
			if err := writeJSON(cmd, result); err != nil {
				return err
			}
			if !result.Valid {
				return fmt.Errorf("statement failed validation")
			}
			return nil
		},
	}
}

// readStatement reads and parses the statement file at path, gating on the
// file extension and OFX content markers.
func readStatement(path string) (*ofximport.Statement, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".ofx" && ext != ".qfx" {
		return nil, fmt.Errorf("unsupported file type %q, expected .ofx or .qfx", ext)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	content := string(data)
	if !ofximport.IsOFXContent(content) {
		return nil, fmt.Errorf("%s does not look like an OFX/QFX file", path)
	}
	return ofximport.ParseString(content, ofximport.GetExtractor()), nil
}

func writeJSON(cmd *cobra.Command, v interface{}) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return nil
}
