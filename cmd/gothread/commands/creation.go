package commands

import (
	"runtime"

	"github.com/spf13/cobra"

	"github.com/panyam/gothread"
)

// greet is the named-function callable form.
func greet() {
	gothread.Stdout.WriteLine("t1: named function")
}

// banner demonstrates the bound-method callable forms.
type banner struct {
	label string
}

func (b banner) announce() {
	gothread.Stdout.Printf("%s: method value", b.label)
}

func newCreationCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "creation",
		Short: "Spawn threads from several callable forms",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			gothread.Stdout.Printf("logical CPUs: %d", runtime.NumCPU())

			closure := func() {
				gothread.Stdout.WriteLine("t2: closure bound to a variable")
			}
			b := banner{label: "t4"}

			threads := []*gothread.Thread{
				gothread.NewThread(greet),
				gothread.NewThread(closure),
				gothread.NewThread(func() {
					gothread.Stdout.WriteLine("t3: inline closure")
				}),
				gothread.NewThread(b.announce),
				// Method expression: the receiver becomes an explicit
				// argument, bound by value at spawn time.
				gothread.NewThread1(banner.announce, banner{label: "t5"}),
			}

			for _, th := range threads {
				logger.Debug("joining", "thread", th.ID())
				if err := th.Join(); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
