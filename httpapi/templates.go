package httpapi

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"github.com/duskforge/dungeonturn/component"
)

// LogView renders a plain HTML table of the given messages, newest
// last — the debug viewer's one page. Hand-authored against the templ
// runtime's templ.Component/templ.ComponentFunc surface (the same
// interface `templ generate` targets), since this module has no
// .templ build step of its own. Grounded on Ko-stant's
// internal/web/views package, which wires a-h/templ for exactly this
// kind of server-rendered debug page.
func LogView(turnCount int, messages []component.Msg) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, "<html><head><title>dungeonturn — turn %d</title></head><body>\n", turnCount); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "<h1>Turn %d</h1>\n<table border=\"1\"><tr><th>kind</th><th>entity</th><th>target</th><th>pos</th></tr>\n", turnCount); err != nil {
			return err
		}
		for _, msg := range messages {
			if _, err := fmt.Fprintf(w, "<tr><td>%d</td><td>%d</td><td>%d</td><td>(%d,%d)</td></tr>\n",
				msg.Kind, msg.Entity, msg.Target, msg.Pos.X, msg.Pos.Y); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, "</table></body></html>\n")
		return err
	})
}
