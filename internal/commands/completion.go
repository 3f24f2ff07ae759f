package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/todo/internal/core/todo"
)

// FilterCompleter suggests visibility filter names after --filter and falls
// back to the default flag completion otherwise.
func FilterCompleter() cli.ShellCompleteFunc {
	return func(ctx context.Context, cmd *cli.Command) {
		args := cmd.Args()
		if !args.Present() || args.Get(args.Len()-1) != "--filter" {
			cli.DefaultCompleteWithFlags(ctx, cmd)
			return
		}

		w := cmd.Root().Writer
		for _, f := range todo.Filters {
			_, _ = fmt.Fprintln(w, f)
		}
	}
}
