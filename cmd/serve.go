package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/harper-global/coi-cli/internal/merge"
	"github.com/harper-global/coi-cli/internal/model"
	"github.com/harper-global/coi-cli/internal/pipeline"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start HTTP server for certificate generation requests",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		catalog, err := formCatalog()
		if err != nil {
			return err
		}
		gen := &pipeline.Generator{Catalog: catalog, OutDir: cfg.Output.Dir}

		mux := buildMux(gen)

		port := servePort
		if port == 0 {
			port = cfg.Server.Port
		}

		srv := &http.Server{
			Addr:    fmt.Sprintf(":%d", port),
			Handler: mux,
		}

		// Graceful shutdown
		go func() {
			<-ctx.Done()
			zap.L().Info("shutting down server")
			srv.Shutdown(ctx)
		}()

		zap.L().Info("starting server", zap.Int("port", port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return eris.Wrap(err, "server listen")
		}

		return nil
	},
}

func buildMux(gen *pipeline.Generator) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	})

	mux.HandleFunc("POST /generate", func(w http.ResponseWriter, r *http.Request) {
		requestID := uuid.NewString()

		var req struct {
			Documents []*model.Document `json:"documents"`
			Forms     []string          `json:"forms"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, `{"error":"invalid request body"}`, http.StatusBadRequest)
			return
		}
		if len(req.Documents) == 0 {
			http.Error(w, `{"error":"documents is required"}`, http.StatusBadRequest)
			return
		}

		sources := make([]merge.Source, len(req.Documents))
		for i, d := range req.Documents {
			sources[i] = merge.Source{File: fmt.Sprintf("request[%d]", i), Doc: d}
		}
		doc := merge.Reconcile(sources)

		outputs, err := gen.Generate(doc, req.Forms)
		if err != nil {
			zap.L().Error("generation request failed",
				zap.String("request_id", requestID),
				zap.Error(err),
			)
			http.Error(w, `{"error":"generation failed"}`, http.StatusInternalServerError)
			return
		}

		zap.L().Info("generation request complete",
			zap.String("request_id", requestID),
			zap.String("insured", doc.Insured.Name),
			zap.Int("certificates", len(outputs)),
		)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(map[string]any{
			"request_id":   requestID,
			"certificates": outputs,
		})
	})

	return mux
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "server port (default from config)")
	rootCmd.AddCommand(serveCmd)
}
