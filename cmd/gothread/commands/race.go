package commands

import (
	"github.com/spf13/cobra"

	"github.com/panyam/gothread"
)

func newRaceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "race",
		Short: "Concurrent writers stay line-atomic through the sink",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			t1 := gothread.NewThread(func() {
				for range 100 {
					gothread.Stdout.WriteLine("1 2 3 4")
				}
			})
			t2 := gothread.NewThread(func() {
				for range 100 {
					gothread.Stdout.WriteLine("5 6 7 8")
				}
			})

			if err := t1.Join(); err != nil {
				return err
			}
			return t2.Join()
		},
	}
}
