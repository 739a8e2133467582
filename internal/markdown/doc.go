// Package markdown imports Markdown documents with YAML front matter as
// blog articles and pages.
package markdown
