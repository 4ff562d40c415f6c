package commands

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/panyam/gothread"
)

func newDaemonCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "daemon",
		Short: "Detach a background thread and await its completion signal",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			gothread.Stdout.WriteLine("main thread starting ...")

			th := gothread.NewThread(func() {
				gothread.Stdout.WriteLine("daemon thread starting ...")
				for range 3 {
					gothread.Stdout.WriteLine("daemon thread running ...")
					time.Sleep(200 * time.Millisecond)
				}
				gothread.Stdout.WriteLine("daemon thread exiting ...")
			}, gothread.WithName("daemon"))

			// Capture the completion signal before giving up ownership.
			done := th.DoneChan()
			if err := th.Detach(); err != nil {
				return err
			}
			logger.Debug("detached", "joinable", th.Joinable())

			// Waiting on the signal, rather than sleeping, guarantees the
			// detached thread's output is flushed before the process exits.
			<-done
			gothread.Stdout.WriteLine("main thread exiting ...")
			return nil
		},
	}
}
