package cli

import (
	"fmt"
	"strings"
)

// getStatus renders the prompt prefix, e.g. "(online loaded 3/10 'acme')".
func (a *App) getStatus() string {
	parts := []string{}
	if m := a.Mode(); m != ModeUnknown {
		parts = append(parts, string(m))
	}
	parts = append(parts, a.loader.State().String())

	master, displayed := a.store.Len()
	parts = append(parts, fmt.Sprintf("%d/%d", displayed, master))

	if term := a.store.Term(); term != "" {
		parts = append(parts, fmt.Sprintf("%q", term))
	}
	return "(" + strings.Join(parts, " ") + ")"
}
