package main

import (
	"fmt"
	"os"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/Zuo-Peng/logdye/internal/config"
	"github.com/Zuo-Peng/logdye/internal/group"
	"github.com/Zuo-Peng/logdye/internal/logger"
	"github.com/Zuo-Peng/logdye/internal/palette"
	"github.com/Zuo-Peng/logdye/internal/postprocess"
	"github.com/Zuo-Peng/logdye/internal/render"
)

type renderOptions struct {
	scheme   string
	palette  string
	grammar  string
	preview  bool
	copy     bool
	showTime bool
	filters  postprocess.Options
}

func (o *renderOptions) bindFilters(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&o.filters.RemoveParenthesis, "remove-parenthesis", false, "Drop lines starting with ( or （")
	cmd.Flags().BoolVar(&o.filters.RemoveDot, "remove-dot", false, "Drop lines starting with . or 。")
	cmd.Flags().BoolVar(&o.filters.RemoveLenticular, "remove-lenticular", false, "Drop lines starting with 【")
	cmd.Flags().BoolVar(&o.filters.RegularizeQuotes, "regularize-quotes", false, "Rewrite quotes as alternating “ and ”")
}

// merge turns on the filters enabled in the config; flags only add filters.
func (o *renderOptions) merge(cfg *config.Config) postprocess.Options {
	c := cfg.Postprocess()
	return postprocess.Options{
		RemoveParenthesis: o.filters.RemoveParenthesis || c.RemoveParenthesis,
		RemoveDot:         o.filters.RemoveDot || c.RemoveDot,
		RemoveLenticular:  o.filters.RemoveLenticular || c.RemoveLenticular,
		RegularizeQuotes:  o.filters.RegularizeQuotes || c.RegularizeQuotes,
	}
}

func renderCmd() *cobra.Command {
	var opts renderOptions

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render a chat log with per-speaker names and colors",
		Long: `Renders the log in one of the output schemes, using the stored speaker settings.
Speakers without settings get palette colors for this run only; use
"logdye speakers --save" or "logdye configure" to keep them.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, args, opts)
		},
	}

	cmd.Flags().StringVar(&opts.scheme, "scheme", "", "Output scheme (default from config)")
	cmd.Flags().StringVar(&opts.palette, "palette", "", "Palette for new speakers (default from config)")
	cmd.Flags().StringVar(&opts.grammar, "grammar", "", "Force a grammar instead of detecting it")
	cmd.Flags().BoolVar(&opts.preview, "preview", false, "Show a colored terminal preview instead")
	cmd.Flags().BoolVar(&opts.copy, "copy", false, "Copy the output to the clipboard")
	cmd.Flags().BoolVar(&opts.showTime, "time", false, "Show message times in the preview")
	opts.bindFilters(cmd)

	return cmd
}

func runRender(cmd *cobra.Command, args []string, opts renderOptions) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if opts.scheme == "" {
		opts.scheme = cfg.Scheme
	}
	if opts.palette == "" {
		opts.palette = cfg.Palette
	}
	p, err := lookupPalette(opts.palette)
	if err != nil {
		return err
	}
	scheme, err := render.LookupScheme(opts.scheme)
	if err != nil {
		return err
	}
	if scheme.NamedColorsOnly && p.ID != palette.BBS {
		logger.Warnf("[Render] scheme %s expects named colors; palette %s may use hex values", scheme.ID, p.ID)
	}

	path, err := inputPath(args)
	if err != nil {
		return err
	}
	res, err := readLog(cmd.InOrStdin(), path, opts.grammar)
	if err != nil {
		return err
	}
	g := group.Group(res)

	db, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	rec, err := reconcileStored(cmd.Context(), db, g, p)
	if err != nil {
		return err
	}
	lines := postprocess.Apply(g.Lines, opts.merge(cfg))

	out := cmd.OutOrStdout()
	if opts.preview {
		width := 0
		if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
			width = w
		}
		fmt.Fprint(out, render.Preview(render.Messages(lines, rec.Settings), render.PreviewOptions{
			Width:    width,
			ShowTime: opts.showTime,
		}))
		return nil
	}

	text, err := render.Render(scheme.ID, lines, rec.Settings)
	if err != nil {
		return err
	}
	if opts.copy {
		if err := clipboard.WriteAll(text); err != nil {
			return fmt.Errorf("copy to clipboard: %w", err)
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "Copied %d lines (%s) to clipboard\n", len(lines), scheme.ID)
		return nil
	}
	fmt.Fprint(out, text)
	return nil
}
