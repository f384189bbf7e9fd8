package jekyll

import (
	"log/slog"
	"os"
	"path/filepath"

	"git.home.luguber.info/inful/docpages/internal/logfields"
)

// bannerTarget is where the first found banner candidate is copied.
const bannerTarget = "assets/images/banner.png"

// copyBanner tries each configured banner candidate (relative to the input
// directory) in order and copies the first one that exists. A missing
// banner is logged, never an error.
func (g *Generator) copyBanner() {
	for _, candidate := range g.cfg.Assets.Banner {
		src := candidate
		if !filepath.IsAbs(src) {
			src = filepath.Join(g.inputDir, candidate)
		}

		data, err := os.ReadFile(src)
		if err != nil {
			continue
		}

		dst := filepath.Join(g.outputDir, bannerTarget)
		if err := os.MkdirAll(filepath.Dir(dst), 0o750); err != nil {
			slog.Warn("Failed to create banner directory", logfields.Path(dst), logfields.Error(err))
			return
		}
		if err := os.WriteFile(dst, data, 0o644); err != nil {
			slog.Warn("Failed to copy banner", logfields.Path(dst), logfields.Error(err))
			return
		}

		slog.Debug("Banner copied", logfields.Path(src))
		return
	}

	slog.Warn("No banner asset found, site will use default styling")
}
