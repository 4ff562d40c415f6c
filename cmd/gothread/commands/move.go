package commands

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/panyam/gothread"
)

func newMoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "move",
		Short: "Transfer ownership of a running thread between handles",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			src := gothread.NewThread(func() {
				for range 5 {
					gothread.Stdout.WriteLine("worker: working ...")
					time.Sleep(100 * time.Millisecond)
				}
			})
			gothread.Stdout.Printf("src owns %s", src.ID())

			// Only the handle changes owner; the goroutine is untouched and
			// keeps its identity.
			dst := src.Move()
			gothread.Stdout.Printf("dst owns %s", dst.ID())
			gothread.Stdout.Printf("joinable? src=%t dst=%t", src.Joinable(), dst.Joinable())

			return dst.Join()
		},
	}
}
