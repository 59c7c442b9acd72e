package service

import (
	"context"
	"testing"

	"github.com/alexanderramin/tracker/internal/domain"
	"github.com/alexanderramin/tracker/internal/logfile"
	"github.com/alexanderramin/tracker/internal/timelog"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeLogService_RecordSplitReport(t *testing.T) {
	store, _ := newMemLogStore(t)
	svc := NewTimeLogService(store)
	ctx := context.Background()

	require.NoError(t, svc.RecordInterval(ctx, 0, 1000))
	require.NoError(t, svc.SplitDay(ctx))
	require.NoError(t, svc.RecordInterval(ctx, 2000, 5000))
	require.NoError(t, svc.SplitWeek(ctx))

	raw, err := store.ReadAll()
	require.NoError(t, err)
	assert.Equal(t, "0|1000,?2000|5000,\n", raw)

	agg, err := svc.Report(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint64(4000), agg.Total)
	assert.Equal(t, []domain.Week{{1000, 3000}}, agg.Weeks)
}

func TestTimeLogService_ReportWithoutLog(t *testing.T) {
	store, _ := newMemLogStore(t)
	svc := NewTimeLogService(store)

	agg, err := svc.Report(context.Background())
	require.NoError(t, err)
	assert.True(t, agg.NoTimeLogged())
}

func TestTimeLogService_ReportMalformedLog(t *testing.T) {
	store, _ := newMemLogStore(t)
	require.NoError(t, store.Append([]byte("0|1000,?2000|50")))
	obs := &recordingObserver{}
	svc := NewTimeLogService(store, obs)

	agg, err := svc.Report(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, timelog.ErrMalformedRecord)
	assert.Contains(t, err.Error(), "parsing time log")
	assert.True(t, agg.NoTimeLogged(), "no partial result")

	ev := obs.last()
	assert.Equal(t, "report", ev.Name)
	assert.False(t, ev.Success)
	assert.ErrorIs(t, ev.Err, timelog.ErrMalformedRecord)
}

func TestTimeLogService_RecordRejectsBackwards(t *testing.T) {
	store, _ := newMemLogStore(t)
	svc := NewTimeLogService(store)

	err := svc.RecordInterval(context.Background(), 10, 5)
	assert.ErrorIs(t, err, timelog.ErrInvalidInterval)

	_, err = store.ReadAll()
	assert.ErrorIs(t, err, logfile.ErrNoLog, "log not created")
}

func TestTimeLogService_SurfacesIOErrors(t *testing.T) {
	fsys := afero.NewReadOnlyFs(afero.NewMemMapFs())
	svc := NewTimeLogService(logfile.NewStore(fsys, "/log"))
	ctx := context.Background()

	assert.Error(t, svc.RecordInterval(ctx, 0, 1))
	assert.Error(t, svc.SplitDay(ctx))
	assert.Error(t, svc.SplitWeek(ctx))
}

func TestTimeLogService_ClearAndExport(t *testing.T) {
	store, fsys := newMemLogStore(t)
	svc := NewTimeLogService(store)
	ctx := context.Background()

	assert.ErrorIs(t, svc.Export(ctx, "/tmp/out"), logfile.ErrNoLog)

	require.NoError(t, svc.RecordInterval(ctx, 0, 60000))
	require.NoError(t, svc.Export(ctx, "/tmp/out"))
	b, err := afero.ReadFile(fsys, "/tmp/out")
	require.NoError(t, err)
	assert.Equal(t, "0|60000,", string(b))

	assert.ErrorIs(t, svc.Export(ctx, "/tmp/out"), logfile.ErrExportTargetExists)

	require.NoError(t, svc.Clear(ctx))
	agg, err := svc.Report(ctx)
	require.NoError(t, err)
	assert.True(t, agg.NoTimeLogged())
}

func TestTimeLogService_ObservesUseCases(t *testing.T) {
	store, _ := newMemLogStore(t)
	obs := &recordingObserver{}
	svc := NewTimeLogService(store, obs)
	ctx := context.Background()

	require.NoError(t, svc.RecordInterval(ctx, 100, 200))
	ev := obs.last()
	assert.Equal(t, "record-interval", ev.Name)
	assert.True(t, ev.Success)
	assert.Equal(t, uint64(100), ev.Fields["start_ms"])

	_, err := svc.Report(ctx)
	require.NoError(t, err)
	ev = obs.last()
	assert.Equal(t, "report", ev.Name)
	assert.Equal(t, 1, ev.Fields["days"])
	assert.Equal(t, uint64(100), ev.Fields["total_ms"])
}
