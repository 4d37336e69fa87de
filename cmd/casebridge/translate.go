package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/c360studio/casebridge/ingest"
	"github.com/c360studio/casebridge/translate"
	"github.com/c360studio/casebridge/watch"
)

func translateCmd() *cobra.Command {
	var (
		target    string
		baseIRI   string
		outputDir string
		watchMode bool
	)

	cmd := &cobra.Command{
		Use:   "translate [files or globs...]",
		Short: "Translate CASE documents to JSON-LD",
		Long: `Translates one or more CASE input files (JSON, CSV, or Excel) into
JSON-LD for the chosen target vocabulary.

A single input without --output writes the result to stdout. With
--output, each input produces <name>.<target>.jsonld in the output
directory. With --watch, inputs are retranslated when they change.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTranslate(args, target, baseIRI, outputDir, watchMode)
		},
	}

	cmd.Flags().StringVarP(&target, "target", "t", string(translate.VocabIEEESCD),
		fmt.Sprintf("Target vocabulary (%s, %s)", translate.VocabIEEESCD, translate.VocabASNCTDL))
	cmd.Flags().StringVar(&baseIRI, "base-iri", "", "Base IRI for entities without absolute URIs")
	cmd.Flags().StringVarP(&outputDir, "output", "o", "", "Output directory (default: stdout for a single input)")
	cmd.Flags().BoolVarP(&watchMode, "watch", "w", false, "Retranslate inputs when they change")

	return cmd
}

func runTranslate(patterns []string, target, baseIRI, outputDir string, watchMode bool) error {
	logger := slog.Default()

	vocab := translate.Vocabulary(target)
	if !vocab.Valid() {
		return fmt.Errorf("invalid target %q (expected %q or %q)",
			target, translate.VocabIEEESCD, translate.VocabASNCTDL)
	}

	files, err := watch.ResolvePaths(patterns)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no input files matched %v", patterns)
	}
	if len(files) > 1 && outputDir == "" {
		return fmt.Errorf("multiple inputs require --output")
	}
	if watchMode && outputDir == "" {
		return fmt.Errorf("--watch requires --output")
	}

	for _, file := range files {
		if err := translateFile(file, vocab, baseIRI, outputDir, logger); err != nil {
			return err
		}
	}

	if !watchMode {
		return nil
	}
	return watchAndTranslate(files, vocab, baseIRI, outputDir, logger)
}

// translateFile translates one input and writes the result to the
// output directory, or to stdout when no directory is set.
func translateFile(path string, vocab translate.Vocabulary, baseIRI, outputDir string, logger *slog.Logger) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	doc, err := ingest.Parse(content, path, "")
	if err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}

	var opts []translate.Option
	if baseIRI != "" {
		opts = append(opts, translate.WithBaseIRI(baseIRI))
	}

	out, err := translate.Translate(doc, vocab, opts...)
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("encode JSON-LD: %w", err)
	}
	data = append(data, '\n')

	if outputDir == "" {
		_, err = os.Stdout.Write(data)
		return err
	}

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	base := filepath.Base(path)
	name := strings.TrimSuffix(base, filepath.Ext(base))
	outPath := filepath.Join(outputDir, fmt.Sprintf("%s.%s.jsonld", name, vocab))
	if err := os.WriteFile(outPath, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", outPath, err)
	}

	logger.Info("Translated", "input", path, "output", outPath, "nodes", len(out.Graph))
	return nil
}

// watchAndTranslate retranslates inputs as they change until interrupted.
func watchAndTranslate(files []string, vocab translate.Vocabulary, baseIRI, outputDir string, logger *slog.Logger) error {
	watched := make(map[string]bool, len(files))
	roots := make(map[string]bool)
	for _, file := range files {
		watched[file] = true
		roots[filepath.Dir(file)] = true
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var watchers []*watch.Watcher
	for root := range roots {
		w, err := watch.NewWatcher(watch.Config{Root: root, Logger: logger})
		if err != nil {
			return fmt.Errorf("create watcher: %w", err)
		}
		if err := w.Start(ctx); err != nil {
			return fmt.Errorf("start watcher: %w", err)
		}
		watchers = append(watchers, w)
		defer w.Stop()

		go func(w *watch.Watcher) {
			for event := range w.Events() {
				if event.Operation == watch.OpDelete || !watched[event.Path] {
					continue
				}
				if err := translateFile(event.Path, vocab, baseIRI, outputDir, logger); err != nil {
					logger.Error("Retranslation failed", "input", event.Path, "error", err)
				}
			}
		}(w)
	}

	logger.Info("Watching for changes", "files", len(watched))

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh
	return nil
}
