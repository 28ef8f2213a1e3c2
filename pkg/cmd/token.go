package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"
)

func runToken(ctx context.Context, arg *args, out io.Writer) error {
	c, cleanup, err := newClient(arg)
	if err != nil {
		return err
	}
	defer cleanup()

	ctx = withRequestID(ctx)

	cred, err := c.Token(ctx)
	if err != nil {
		return err
	}

	slog.InfoContext(ctx, "Token ready", slog.String("expires_at", cred.ExpiresAt.Format(time.RFC3339)))

	if _, err := fmt.Fprintln(out, cred.Token); err != nil {
		return fmt.Errorf("failed to write token: %w", err)
	}

	return nil
}
