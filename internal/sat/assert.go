package sat

import "fmt"

// assertf checks an internal invariant (§3) when the binary is built with
// the debugasserts tag; it is a no-op otherwise, keeping the hot BCP loop
// free of bookkeeping in production builds. A violation indicates a bug in
// the solver and is fatal: "halt with a diagnostic; do not attempt
// recovery" (§7).
func assertf(cond bool, format string, args ...any) {
	if debugAsserts && !cond {
		panic(fmt.Sprintf("cdcl: invariant violated: "+format, args...))
	}
}
