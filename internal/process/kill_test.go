package process

import "testing"

// ---------------------------------------------------------------------------
// TestKillProcessGroup - pids that must be left alone
// ---------------------------------------------------------------------------

func TestKillProcessGroup_Ignored(t *testing.T) {
	t.Parallel()

	// 0 and negative pids would address the caller's own group.
	for _, pid := range []int{0, -1, 999999999} {
		KillProcessGroup(pid)
	}
}
