package audit_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/arisgo/ariscore/internal/audit"
	. "github.com/arisgo/ariscore/pkg/expr"
	"github.com/arisgo/ariscore/pkg/normalize"
)

func openTestLog(t *testing.T) *audit.Log {
	t.Helper()
	path := filepath.Join(t.TempDir(), "audit.db")
	l, err := audit.Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { require.NoError(t, l.Close()) })
	return l
}

func TestSessionAndRecordRoundTrip(t *testing.T) {
	l := openTestLog(t)
	ctx := context.Background()
	ts := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	sid, err := l.Session(ctx, "a & b", ts)
	require.NoError(t, err)
	require.NotEmpty(t, sid)

	require.NoError(t, l.Record(ctx, sid, audit.Step{
		Seq: 0, PassName: "sort_commutative", Before: "a & b", After: "a & b", Changed: false,
	}))
	require.NoError(t, l.Record(ctx, sid, audit.Step{
		Seq: 1, PassName: "demorgans", Before: "a & b", After: "a & b", Changed: false,
	}))

	trace, err := l.Trace(ctx, sid)
	require.NoError(t, err)
	require.Len(t, trace, 2)
	require.Equal(t, "sort_commutative", trace[0].PassName)
	require.Equal(t, "demorgans", trace[1].PassName)
}

func TestRunAuditedRecordsOnlyPassedPasses(t *testing.T) {
	l := openTestLog(t)
	ctx := context.Background()

	// ~~a normalizes away via doublenegation.
	e := Not(Not(Var("a")))
	result, sid, err := l.RunAudited(ctx, e, normalize.DefaultPipeline(), time.Unix(0, 0))
	require.NoError(t, err)
	require.True(t, Equal(result, Var("a")))

	trace, err := l.Trace(ctx, sid)
	require.NoError(t, err)
	require.Len(t, trace, len(normalize.DefaultPipeline()))

	var sawChange bool
	for _, step := range trace {
		if step.PassName == "doublenegation" {
			require.True(t, step.Changed)
			sawChange = true
		}
	}
	require.True(t, sawChange, "expected doublenegation pass to report a change")
}

func TestTraceUnknownSessionIsEmpty(t *testing.T) {
	l := openTestLog(t)
	trace, err := l.Trace(context.Background(), "does-not-exist")
	require.NoError(t, err)
	require.Empty(t, trace)
}
