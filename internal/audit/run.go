package audit

import (
	"context"
	"time"

	"github.com/arisgo/ariscore/pkg/expr"
	"github.com/arisgo/ariscore/pkg/normalize"
)

// RunAudited runs passes over e exactly like normalize.Run, but additionally
// opens a session and records every pass's before/after/changed state to l.
// It returns the normalized result and the session ID the trace was written
// under.
func (l *Log) RunAudited(ctx context.Context, e expr.Expression, passes []normalize.Pass, now time.Time) (expr.Expression, string, error) {
	sessionID, err := l.Session(ctx, e.String(), now)
	if err != nil {
		return nil, "", err
	}

	result := e
	for i, p := range passes {
		before := result.String()
		next := p.Run(result)
		after := next.String()
		changed := !expr.Equal(next, result)
		result = next

		if err := l.Record(ctx, sessionID, Step{
			Seq:      i,
			PassName: p.Name,
			Before:   before,
			After:    after,
			Changed:  changed,
		}); err != nil {
			return nil, sessionID, err
		}
	}

	return result, sessionID, nil
}
