// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pdiddy/graphgen/internal/extract"
	"github.com/pdiddy/graphgen/internal/output"
	"github.com/pdiddy/graphgen/pkg/types"
)

var extractCmd = &cobra.Command{
	Use:   "extract [text...]",
	Short: "Extract labeled values from free text",
	Long: `Extract reads text such as "50% residence, 10% commercial" and prints the
ordered series of labeled values it contains. Input comes from the arguments,
--file, or stdin. Fragments that cannot be read are skipped; an empty result
is not an error.`,
	Example: `  graphgen extract "50% residence, 10% commercial"
  graphgen extract --format json --file land-use.txt
  echo "50 residence 10 commercial" | graphgen extract --explain`,
	RunE: runExtract,
}

func runExtract(cmd *cobra.Command, args []string) error {
	text, err := inputFromCommand(cmd, args)
	if err != nil {
		return err
	}

	format := cfg.Output.Format
	if cmd.Flags().Changed("format") {
		v, _ := cmd.Flags().GetString("format")
		if format, err = types.ParseOutputFormat(v); err != nil {
			return err
		}
	}

	series, strategy := extract.Explain(text)
	logger.Debug("extracted series", zap.Int("points", len(series)), zap.String("strategy", strategy))

	if explain, _ := cmd.Flags().GetBool("explain"); explain {
		fmt.Fprintf(cmd.ErrOrStderr(), "strategy: %s\n", strategy)
	}
	return output.Write(cmd.OutOrStdout(), series, format)
}

func init() {
	extractCmd.Flags().String("file", "", "read input text from a file (\"-\" for stdin)")
	extractCmd.Flags().String("format", "table", "output format: table, json, or yaml")
	extractCmd.Flags().Bool("explain", false, "report which extraction strategy matched")

	rootCmd.AddCommand(extractCmd)
}
