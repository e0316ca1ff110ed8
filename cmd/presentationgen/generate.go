package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/07AMIT10/PresentationGen/internal/config"
	"github.com/07AMIT10/PresentationGen/internal/extract"
	"github.com/07AMIT10/PresentationGen/internal/logging"
	"github.com/07AMIT10/PresentationGen/internal/pipeline"
)

func generateCmd() *cobra.Command {
	var configPath string
	var topic string
	var slides int
	var templatePath string
	var out string

	cmd := &cobra.Command{
		Use:   "generate <pdf>...",
		Short: "Generate a deck from PDF files in one shot",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if topic == "" {
				return fmt.Errorf("--topic is required")
			}
			if slides < 1 || slides > 50 {
				return fmt.Errorf("--slides must be between 1 and 50")
			}
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			logger := logging.New(cfg.Logging.Level, cfg.Logging.Format)
			defer func() { _ = logger.Sync() }()

			var docs []pipeline.Upload
			for _, path := range args {
				data, err := os.ReadFile(path)
				if err != nil {
					return err
				}
				pages := extract.PageCount(data)
				if pages == 0 {
					fmt.Fprintf(cmd.ErrOrStderr(), "warning: skipping %s: not a readable PDF\n", path)
					continue
				}
				logger.Info("loaded document",
					zap.String("file", path),
					zap.Int("pages", pages))
				docs = append(docs, pipeline.Upload{Name: filepath.Base(path), Data: data})
			}
			if len(docs) == 0 {
				return fmt.Errorf("no readable PDF inputs")
			}

			var tmpl []byte
			if templatePath == "" {
				templatePath = cfg.Deck.TemplatePath
			}
			if data, err := os.ReadFile(templatePath); err == nil {
				tmpl = data
			}

			runner, err := buildRunner(cmd.Context(), cfg, logger)
			if err != nil {
				return err
			}
			res, err := runner.Run(cmd.Context(), pipeline.Request{
				Documents:  docs,
				Template:   tmpl,
				Topic:      topic,
				SlideCount: slides,
			})
			if err != nil {
				return err
			}
			for _, warning := range res.Warnings {
				fmt.Fprintln(cmd.ErrOrStderr(), "warning:", warning)
			}
			if err := os.WriteFile(out, res.Deck, 0o644); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%d slides)\n", out, res.SlideCount)
			return nil
		},
	}
	cmd.Flags().StringVar(&configPath, "config", "", "path to config file")
	cmd.Flags().StringVar(&topic, "topic", "", "presentation topic")
	cmd.Flags().IntVar(&slides, "slides", 10, "number of slides to request (1-50)")
	cmd.Flags().StringVar(&templatePath, "template", "", "pptx template path (default: bundled template)")
	cmd.Flags().StringVarP(&out, "out", "o", "generated_presentation.pptx", "output file")
	return cmd
}
