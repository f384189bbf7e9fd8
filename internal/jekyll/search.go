package jekyll

import (
	"fmt"
	"os"
	"path/filepath"

	jerrors "git.home.luguber.info/inful/docpages/internal/jekyll/errors"
)

const searchPage = `---
layout: search
title: Search
permalink: /search/
---

# Search

<div id="search-container">
  <input type="text" id="search-input" placeholder="Search documents...">
  <ul id="search-results"></ul>
</div>
`

// searchIndexPlugin regenerates search-index.json from the converted
// documents during the Jekyll build. The committed JSON file is only a
// scaffold so the site works before the first build.
const searchIndexPlugin = `require 'json'

Jekyll::Hooks.register :site, :post_write do |site|
  index = site.pages
    .select { |page| page.path.start_with?('docs/') && page.data['doc_number'] }
    .map do |page|
      {
        'id' => page.data['doc_number'],
        'title' => page.data['title'],
        'category' => page.data['category'],
        'url' => page.url,
        'content' => page.content.to_s.gsub(/<[^>]+>/, ' ').squeeze(' ')[0, 5000]
      }
    end

  File.write(File.join(site.dest, 'assets', 'js', 'search-index.json'), JSON.generate(index))
end
`

// writeSearchScaffold emits the search page, an empty search index and the
// plugin that fills it in at site build time.
func (g *Generator) writeSearchScaffold() error {
	outputs := map[string]string{
		filepath.Join("search", "index.md"):                    searchPage,
		filepath.Join("assets", "js", "search-index.json"):     "[]\n",
		filepath.Join("_plugins", "search_index_generator.rb"): searchIndexPlugin,
	}

	for rel, content := range outputs {
		path := filepath.Join(g.outputDir, rel)
		if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
			return fmt.Errorf("%w: %s: %w", jerrors.ErrScaffoldFailed, path, err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			return fmt.Errorf("%w: %s: %w", jerrors.ErrScaffoldFailed, path, err)
		}
	}
	return nil
}
