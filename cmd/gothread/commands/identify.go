package commands

import (
	"github.com/spf13/cobra"

	"github.com/panyam/gothread"
)

func newIdentifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "identify",
		Short: "Print a thread's identity from outside and inside",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			ready := make(chan struct{})
			var id gothread.ID
			th := gothread.NewThread(func() {
				<-ready
				gothread.Stdout.Printf("inside:  running as %s", id)
			})
			id = th.ID()
			gothread.Stdout.Printf("outside: handle owns %s", id)
			close(ready)

			return th.Join()
		},
	}
}
