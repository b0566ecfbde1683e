package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/harper-global/coi-cli/internal/merge"
	"github.com/harper-global/coi-cli/internal/model"
	"github.com/harper-global/coi-cli/internal/pipeline"
)

var (
	generateForms  []string
	generateOutDir string
)

var generateCmd = &cobra.Command{
	Use:   "generate <coverage.json> [more.json...]",
	Short: "Fill ACORD certificates from coverage documents",
	Long:  "Reads one or more extracted coverage documents, reconciles them if several are given, and fills every applicable certificate form.",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sources := make([]merge.Source, 0, len(args))
		for _, path := range args {
			doc, err := loadDocument(path)
			if err != nil {
				return err
			}
			sources = append(sources, merge.Source{File: path, Doc: doc})
		}

		doc := merge.Reconcile(sources)

		catalog, err := formCatalog()
		if err != nil {
			return err
		}
		outDir := generateOutDir
		if outDir == "" {
			outDir = cfg.Output.Dir
		}

		gen := &pipeline.Generator{Catalog: catalog, OutDir: outDir}
		outputs, err := gen.Generate(doc, generateForms)
		if err != nil {
			return err
		}
		if len(outputs) == 0 {
			zap.L().Warn("generate: no certificates produced")
		}
		for _, out := range outputs {
			fmt.Fprintf(cmd.OutOrStdout(), "ACORD %s -> %s (%d fields)\n", out.Form, out.Path, out.Filled)
		}
		return nil
	},
}

func loadDocument(path string) (*model.Document, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrapf(err, "read coverage document %s", path)
	}
	var doc model.Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, eris.Wrapf(err, "parse coverage document %s", path)
	}
	return &doc, nil
}

func formCatalog() ([]pipeline.FormSpec, error) {
	if cfg.Forms.Catalog != "" {
		return pipeline.LoadCatalog(cfg.Forms.Catalog)
	}
	return pipeline.DefaultCatalog(cfg.Forms.Dir), nil
}

func init() {
	generateCmd.Flags().StringSliceVar(&generateForms, "forms", nil, "restrict to specific form numbers (e.g. 25,27)")
	generateCmd.Flags().StringVar(&generateOutDir, "outdir", "", "output directory (default from config)")
	rootCmd.AddCommand(generateCmd)
}
