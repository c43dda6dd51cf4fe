package demo

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/x/ansi"
	"github.com/rs/zerolog"
)

// markdown renders category bodies with glamour. Renderers are kept per
// wrap width and output per category key, since the widget re-measures
// every section on each resize.
type markdown struct {
	style     string
	renderers map[int]*glamour.TermRenderer
	cache     map[string]string
	log       zerolog.Logger
}

func newMarkdown(style string, log zerolog.Logger) *markdown {
	if strings.TrimSpace(style) == "" {
		style = "dark"
	}
	return &markdown{
		style:     style,
		renderers: map[int]*glamour.TermRenderer{},
		cache:     map[string]string{},
		log:       log,
	}
}

func (md *markdown) reset() {
	clear(md.cache)
}

func (md *markdown) render(c Category, width int) string {
	width = max(10, width)
	cacheKey := fmt.Sprintf("%s@%d", c.Key, width)
	if out, ok := md.cache[cacheKey]; ok {
		return out
	}
	src := categoryMarkdown(c)
	out, err := md.renderWith(width, src)
	if err != nil {
		md.log.Warn().Err(err).Str("category", c.Name).Msg("markdown render failed")
		out = src
	}
	md.cache[cacheKey] = out
	return out
}

func (md *markdown) renderWith(width int, src string) (string, error) {
	r, ok := md.renderers[width]
	if !ok {
		var err error
		r, err = glamour.NewTermRenderer(
			glamour.WithStandardStyle(md.style),
			glamour.WithWordWrap(width),
		)
		if err != nil {
			return "", fmt.Errorf("creating markdown renderer: %w", err)
		}
		md.renderers[width] = r
	}
	out, err := r.Render(src)
	if err != nil {
		return "", fmt.Errorf("rendering markdown: %w", err)
	}
	return trimBlankLines(out), nil
}

func categoryMarkdown(c Category) string {
	var b strings.Builder
	for _, p := range c.Products {
		fmt.Fprintf(&b, "- %s · $%d\n", p.Name, p.Price)
	}
	return b.String()
}

func trimBlankLines(s string) string {
	lines := strings.Split(s, "\n")
	start, end := 0, len(lines)
	for start < end && strings.TrimSpace(ansi.Strip(lines[start])) == "" {
		start++
	}
	for end > start && strings.TrimSpace(ansi.Strip(lines[end-1])) == "" {
		end--
	}
	return strings.Join(lines[start:end], "\n")
}
