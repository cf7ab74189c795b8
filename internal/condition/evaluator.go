package condition

import (
	"context"

	"github.com/hostcond-org/hostcond/internal/logger"
)

// TestList evaluates every condition in order and folds the outcomes
// into a single verdict: all mandatory (non-trigger) entries must hold,
// and if any trigger entries are present at least one of them must hold.
// An empty list is vacuously true.
//
// Probe errors are logged and count as failed for the AND fold, but they
// never surface as an error to the caller: the verdict is always a plain
// boolean.
func TestList(ctx context.Context, conditions List, env []string) bool {
	if len(conditions) == 0 {
		return true
	}

	// Tri-state: -1 no trigger entry seen, 0 all triggers so far false,
	// 1 some trigger true.
	triggered := -1

	for _, c := range conditions {
		met, err := c.Test(ctx, env)
		if err != nil {
			logger.Warn(ctx, "couldn't determine condition result, assuming failed",
				"condition", c.String(), "err", err)
		} else {
			logger.Debug(ctx, "condition evaluated",
				"condition", c.String(), "result", c.Result.String())
		}

		if !c.Trigger && !met {
			return false
		}
		if c.Trigger && triggered <= 0 {
			if met {
				triggered = 1
			} else {
				triggered = 0
			}
		}
	}

	return triggered != 0
}
