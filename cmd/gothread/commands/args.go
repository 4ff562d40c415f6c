package commands

import (
	"github.com/spf13/cobra"

	"github.com/panyam/gothread"
)

func newArgsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "args",
		Short: "Argument passing: by-value copies vs explicit aliasing",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			// By value: the callable observes the copy made at spawn time.
			msg := "passing by value"
			th := gothread.NewThread2(func(s string, n int) {
				s += " (thread)"
				gothread.Stdout.Printf("copy sees: %q, n=%d", s, n)
			}, msg, 1)
			if err := th.Join(); err != nil {
				return err
			}
			gothread.Stdout.Printf("caller still has: %q", msg)

			// ByRef: the callable mutates the caller's storage directly.
			str := "passing by reference"
			val := 1
			th = gothread.NewThread2(func(s gothread.Ref[string], n gothread.Ref[int]) {
				s.Set(s.Get() + " (thread)")
				*n.Ptr()++
			}, gothread.ByRef(&str), gothread.ByRef(&val))
			if err := th.Join(); err != nil {
				return err
			}
			gothread.Stdout.Printf("caller now has: %q, val=%d", str, val)

			// ByRef over a slice: elements doubled in place.
			vec := []int{1, 2, 3, 4, 5}
			th = gothread.NewThread1(func(v gothread.Ref[[]int]) {
				for i, elem := range *v.Ptr() {
					(*v.Ptr())[i] = elem + elem
				}
			}, gothread.ByRef(&vec))
			if err := th.Join(); err != nil {
				return err
			}
			gothread.Stdout.Printf("vector after thread: %v", vec)

			return nil
		},
	}
}
