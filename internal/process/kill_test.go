package process

// Notes:
// - Only pids that cannot belong to a live process are used: killing a
//   real group from a unit test is not safe.

import "testing"

func TestKillProcessGroup_NonPositivePID(t *testing.T) {
	t.Parallel()
	// Must be a no-op: -0 is our own process group.
	for _, pid := range []int{0, -1, -4242} {
		KillProcessGroup(pid)
	}
}

func TestKillProcessGroup_UnknownPID(t *testing.T) {
	t.Parallel()
	KillProcessGroup(999999999)
}
