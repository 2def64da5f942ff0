//go:build tinygo || baremetal

package pac

import "runtime/volatile"

type (
	Register8  = volatile.Register8
	Register16 = volatile.Register16
)
