package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"github.com/Zuo-Peng/logdye/internal/config"
	"github.com/Zuo-Peng/logdye/internal/group"
	"github.com/Zuo-Peng/logdye/internal/logger"
	"github.com/Zuo-Peng/logdye/internal/palette"
	"github.com/Zuo-Peng/logdye/internal/parse"
	"github.com/Zuo-Peng/logdye/internal/reconcile"
	"github.com/Zuo-Peng/logdye/internal/source"
	"github.com/Zuo-Peng/logdye/internal/store"
)

var errNoLog = errors.New("no recognizable chat log found")

// stdinIsTerminal is swapped in tests.
var stdinIsTerminal = func() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if err := logger.Setup(cfg.LogLevel, cfg.LogFile); err != nil {
		return nil, err
	}
	return cfg, nil
}

// inputPath picks the transcript argument; without one the log is read
// from stdin, which must then be a pipe.
func inputPath(args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	if stdinIsTerminal() {
		return "", fmt.Errorf("no input: pass a file, %q for stdin or %q", source.Stdin, source.Clipboard)
	}
	return source.Stdin, nil
}

// readLog reads and parses the transcript. An unrecognized log is an error
// here since every command needs at least one entry.
func readLog(stdin io.Reader, path, grammar string) (parse.Result, error) {
	r := source.NewReader()
	r.Stdin = stdin
	text, err := r.Read(path)
	if err != nil {
		return parse.Result{}, err
	}

	var res parse.Result
	if grammar != "" {
		res, err = parse.ParseAs(text, grammar)
		if err != nil {
			return parse.Result{}, err
		}
	} else {
		res = parse.Parse(text)
	}
	if res.Empty() {
		logger.Debugf("[Parse] %s: grammar %q produced no entries", path, res.Grammar)
		return res, errNoLog
	}
	logger.Infof("[Parse] %s: %s, %d entries", path, res.Grammar, len(res.Entries))
	return res, nil
}

func openStore(cfg *config.Config) (*store.DB, error) {
	db, err := store.OpenDB(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("open settings db: %w", err)
	}
	return db, nil
}

func lookupPalette(id string) (palette.Palette, error) {
	p, ok := palette.Lookup(id)
	if !ok {
		return palette.Palette{}, fmt.Errorf("unknown palette %q (want one of %v)", id, palette.IDs())
	}
	return p, nil
}

// reconcileStored matches the log's speakers against the stored settings.
func reconcileStored(ctx context.Context, st store.Store, g group.Result, p palette.Palette) (reconcile.Result, error) {
	stored, err := st.Load(ctx)
	if err != nil {
		return reconcile.Result{}, err
	}
	res := reconcile.Reconcile(g, stored, p)
	if len(res.Created) > 0 {
		logger.Infof("[Reconcile] %d new speakers: %v", len(res.Created), res.Created)
	}
	return res, nil
}

func writeFormatted(w io.Writer, format string, v any) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		return enc.Encode(v)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown format %q (want text, json or yaml)", format)
	}
}
