package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lvillar/reportfig"
)

type renderOpts struct {
	output string
	config string
	blank  bool
}

func newRenderCmd() *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render <document.json>",
		Short: "Render a template document to PDF",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: document name with .pdf)")
	cmd.Flags().StringVarP(&opts.config, "config", "c", "", "TOML config file with site defaults")
	return cmd
}

func newBlankCmd() *cobra.Command {
	opts := renderOpts{blank: true}

	cmd := &cobra.Command{
		Use:   "blank <document.json>",
		Short: "Render the empty labelled layout of a document",
		Long:  "Blank draws the frame and the title block cells of a document with each cell labelled by name, skipping all content and the watermark. Use it to preview a layout before filling it in.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: document name with .pdf)")
	cmd.Flags().StringVarP(&opts.config, "config", "c", "", "TOML config file with site defaults")
	return cmd
}

func runRender(cmd *cobra.Command, path string, opts *renderOpts) error {
	logger := loggerFromContext(cmd.Context())

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("cli: reading document: %w", err)
	}
	var doc reportfig.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("cli: parsing document %s: %w", path, err)
	}

	if opts.config != "" {
		cfg, err := loadConfig(opts.config)
		if err != nil {
			return err
		}
		cfg.apply(&doc)
		logger.Debug("applied config defaults", "config", opts.config)
	}

	tpl, err := doc.Template()
	if err != nil {
		return err
	}

	out := opts.output
	if out == "" {
		out = outputName(path, opts.blank)
	}
	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("cli: creating output: %w", err)
	}
	defer f.Close()

	if opts.blank {
		err = tpl.Blank(f)
	} else {
		err = tpl.Render(f)
	}
	if err != nil {
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("cli: writing output: %w", err)
	}

	logger.Info("rendered", "document", path, "output", out)
	return nil
}

// outputName derives the output path from the document path: the same name
// with a .pdf extension, plus a _blank suffix for layout previews.
func outputName(path string, blank bool) string {
	base := strings.TrimSuffix(path, filepath.Ext(path))
	if blank {
		base += "_blank"
	}
	return base + ".pdf"
}
