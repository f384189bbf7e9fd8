package commands

import (
	"context"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"

	"git.home.luguber.info/inful/docpages/internal/jekyll"
	"git.home.luguber.info/inful/docpages/internal/logfields"
)

// WatchCmd converts once, then re-converts whenever Markdown files under
// the input tree change. Events are debounced so editor save bursts
// trigger a single rebuild.
type WatchCmd struct {
	Input    string        `arg:"" help:"Source document directory." type:"existingdir"`
	Output   string        `arg:"" help:"Output site directory." type:"path"`
	Debounce time.Duration `help:"Quiet period before a rebuild." default:"500ms"`
}

func (c *WatchCmd) Run(_ *Global, root *CLI) error {
	cfg, err := root.loadConfig()
	if err != nil {
		return err
	}
	gen := jekyll.New(cfg, c.Input, c.Output)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if _, err := gen.Run(ctx); err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	if err := watchTree(watcher, c.Input); err != nil {
		return err
	}
	slog.Info("Watching for changes", logfields.Path(c.Input))

	// The timer stays stopped until a relevant event arrives, then each
	// further event pushes the rebuild out by the debounce window.
	timer := time.NewTimer(c.Debounce)
	if !timer.Stop() {
		<-timer.C
	}

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op.Has(fsnotify.Create) {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					_ = watchTree(watcher, event.Name)
				}
			}
			if !isMarkdownEvent(event) {
				continue
			}
			slog.Debug("Source change detected", logfields.Path(event.Name))
			timer.Reset(c.Debounce)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			slog.Warn("Watcher error", logfields.Error(err))

		case <-timer.C:
			if _, err := gen.Run(ctx); err != nil {
				slog.Error("Rebuild failed", logfields.Error(err))
			}
		}
	}
}

// watchTree registers root and all its subdirectories with the watcher.
func watchTree(watcher *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if entry.IsDir() {
			return watcher.Add(path)
		}
		return nil
	})
}

func isMarkdownEvent(event fsnotify.Event) bool {
	if event.Op == fsnotify.Chmod {
		return false
	}
	return strings.EqualFold(filepath.Ext(event.Name), ".md")
}
