package cli

import "runtime/debug"

// withStackSize runs fn after setting the runtime's maximum goroutine
// stack size to bytes, giving --stack-size the same purpose the original
// interpreter's dedicated OS thread serves: headroom for the deeply
// nested application spines a long-running reduction can build. Go's
// goroutine stacks already grow on demand, so a value above the
// runtime's default ceiling only matters for programs that would
// otherwise hit that ceiling; a value below it lowers the ceiling. 0
// leaves that default untouched.
func withStackSize(bytes int, fn func()) {
	if bytes > 0 {
		debug.SetMaxStack(bytes)
	}
	fn()
}
