package commands

import (
	"math/rand/v2"
	"time"

	"github.com/spf13/cobra"

	"github.com/panyam/gothread"
)

func newReturnsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "returns",
		Short: "Deliver a thread's result through an alias-bound out-parameter",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			var result int
			th := gothread.NewThread1(func(out gothread.Ref[int]) {
				time.Sleep(100 * time.Millisecond)
				out.Set(1 + rand.IntN(10))
			}, gothread.ByRef(&result))

			if err := th.Join(); err != nil {
				return err
			}
			gothread.Stdout.Printf("result: %d", result)
			return nil
		},
	}
}
