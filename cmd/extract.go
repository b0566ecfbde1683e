package main

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/harper-global/coi-cli/internal/extract"
	"github.com/harper-global/coi-cli/internal/merge"
	"github.com/harper-global/coi-cli/internal/pipeline"
	"github.com/harper-global/coi-cli/pkg/anthropic"
)

var (
	extractOut      string
	extractGenerate bool
	extractOutDir   string
)

var extractCmd = &cobra.Command{
	Use:   "extract <binder.pdf> [more.pdf...]",
	Short: "Extract coverage data from binder PDFs",
	Long:  "Classifies and extracts each PDF via Claude, reconciles the results into one coverage document, and optionally generates certificates from it.",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg.Anthropic.Key == "" {
			return eris.New("anthropic API key not configured (COI_ANTHROPIC_KEY)")
		}

		ex := extract.New(
			anthropic.NewClient(cfg.Anthropic.Key),
			cfg.Anthropic.Model,
			cfg.Anthropic.RequestsPerSecond,
		)

		ctx := cmd.Context()
		var sources []merge.Source
		for _, path := range args {
			raw, err := os.ReadFile(path)
			if err != nil {
				return eris.Wrapf(err, "read %s", path)
			}
			name := filepath.Base(path)

			cls := ex.Classify(ctx, raw)
			zap.L().Info("document classified",
				zap.String("file", name),
				zap.String("type", cls.DocType),
				zap.Float64("confidence", cls.Confidence),
			)

			doc, err := ex.Extract(ctx, raw, cls.DocType)
			if err != nil {
				zap.L().Warn("extraction failed, skipping document",
					zap.String("file", name),
					zap.Error(err),
				)
				continue
			}
			sources = append(sources, merge.Source{File: name, Doc: doc})
		}
		if len(sources) == 0 {
			return eris.New("no documents extracted")
		}

		doc := merge.Reconcile(sources)

		raw, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return eris.Wrap(err, "encode coverage document")
		}
		raw = append(raw, '\n')
		if extractOut == "" {
			if _, err := cmd.OutOrStdout().Write(raw); err != nil {
				return err
			}
		} else if err := os.WriteFile(extractOut, raw, 0o644); err != nil {
			return eris.Wrapf(err, "write coverage document %s", extractOut)
		}

		if !extractGenerate {
			return nil
		}
		catalog, err := formCatalog()
		if err != nil {
			return err
		}
		outDir := extractOutDir
		if outDir == "" {
			outDir = cfg.Output.Dir
		}
		gen := &pipeline.Generator{Catalog: catalog, OutDir: outDir}
		_, err = gen.Generate(doc, nil)
		return err
	},
}

func init() {
	extractCmd.Flags().StringVar(&extractOut, "out", "", "write the coverage document to file instead of stdout")
	extractCmd.Flags().BoolVar(&extractGenerate, "generate", false, "generate certificates after extraction")
	extractCmd.Flags().StringVar(&extractOutDir, "outdir", "", "output directory for generated certificates")
	rootCmd.AddCommand(extractCmd)
}
