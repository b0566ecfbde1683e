package main

import (
	"encoding/json"
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/harper-global/coi-cli/internal/merge"
)

var mergeOut string

var mergeCmd = &cobra.Command{
	Use:   "merge <coverage.json> <coverage.json> [more.json...]",
	Short: "Reconcile coverage documents without generating forms",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		sources := make([]merge.Source, 0, len(args))
		for _, path := range args {
			doc, err := loadDocument(path)
			if err != nil {
				return err
			}
			sources = append(sources, merge.Source{File: path, Doc: doc})
		}

		merged := merge.Reconcile(sources)
		raw, err := json.MarshalIndent(merged, "", "  ")
		if err != nil {
			return eris.Wrap(err, "encode merged document")
		}
		raw = append(raw, '\n')

		if mergeOut == "" {
			_, err = cmd.OutOrStdout().Write(raw)
			return err
		}
		if err := os.WriteFile(mergeOut, raw, 0o644); err != nil {
			return eris.Wrapf(err, "write merged document %s", mergeOut)
		}
		return nil
	},
}

func init() {
	mergeCmd.Flags().StringVar(&mergeOut, "out", "", "write merged document to file instead of stdout")
	rootCmd.AddCommand(mergeCmd)
}
