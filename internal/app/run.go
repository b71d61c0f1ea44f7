package app

import (
	"context"
	"fmt"
)

// Run writes the protocol handshake: engine identity and the full option
// block in whichever grammar the "Protocol" option selects. Parsing the
// interactive command stream is the launcher's job, not this core's.
func (a *App) Run(ctx context.Context) error {
	a.logger.DebugContext(ctx, "Writing protocol handshake.", "xboard", a.xboard())

	if a.xboard() {
		if _, err := fmt.Fprint(a.outW, a.options.String()); err != nil {
			return fmt.Errorf("writing feature block: %w", err)
		}
		_, err := fmt.Fprint(a.outW, "\nfeature done=1\n")
		return err
	}

	if _, err := fmt.Fprintf(a.outW, "id name %s\nid author %s", Name, Author); err != nil {
		return fmt.Errorf("writing engine identity: %w", err)
	}
	if _, err := fmt.Fprint(a.outW, a.options.String()); err != nil {
		return fmt.Errorf("writing option block: %w", err)
	}
	_, err := fmt.Fprint(a.outW, "\nuciok\n")
	return err
}
