package commands

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/panyam/gothread"
)

func newScopedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "scoped",
		Short: "Scoped handles join automatically, last created first",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			spawn := func(name string) *gothread.ScopedThread {
				st := gothread.NewScopedThread(func() {
					gothread.Stdout.Printf("thread %s starting...", name)
					time.Sleep(300 * time.Millisecond)
					gothread.Stdout.Printf("thread %s finishing...", name)
				}, gothread.WithName(name))
				gothread.Stdout.Printf("thread %s created", name)
				return st
			}

			join := func(st *gothread.ScopedThread) {
				name := st.Thread().Name()
				if err := st.Close(); err != nil {
					logger.Error("close failed", "thread", name, "err", err)
					return
				}
				gothread.Stdout.Printf("thread %s joined", name)
			}

			t1 := spawn("t1")
			defer join(t1)
			t2 := spawn("t2")
			defer join(t2)
			t3 := spawn("t3")
			defer join(t3)

			gothread.Stdout.WriteLine("main thread exiting scope...")
			return nil
		},
	}
}
