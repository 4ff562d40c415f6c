package commands

import (
	"math/rand/v2"
	"sync"
	"time"

	"github.com/spf13/cobra"

	"github.com/panyam/gothread"
)

func newYieldCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "yield",
		Short: "Cooperative contention: hold the lock and work, or yield",
		Long: `Two workers loop forever, each randomly choosing between grabbing a shared
lock for a slice of busy-work and yielding its scheduling quantum. The loop
has no exit condition: it is a liveness and starvation scenario, observed for
a fixed window and then abandoned.`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			var mu sync.Mutex

			work := func(name string) func() {
				return func() {
					for {
						if rand.IntN(2) == 1 {
							gothread.Stdout.Printf("%s: working", name)
							mu.Lock()
							gothread.Busy(300 * time.Millisecond)
							mu.Unlock()
						} else {
							gothread.Stdout.Printf("%s: yielding", name)
							gothread.Yield()
						}
					}
				}
			}

			t1 := gothread.NewThread(work("t1"), gothread.WithName("t1"))
			t2 := gothread.NewThread(work("t2"), gothread.WithName("t2"))

			// The workers never terminate; detach them and bound the
			// observation window instead.
			if err := t1.Detach(); err != nil {
				return err
			}
			if err := t2.Detach(); err != nil {
				return err
			}

			logger.Debug("observing", "window", "2s")
			time.Sleep(2 * time.Second)
			return nil
		},
	}
}
