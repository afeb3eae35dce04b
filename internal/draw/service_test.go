package draw

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/ytget/lotto-picker/internal/model"
	"github.com/ytget/lotto-picker/internal/selection"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	return NewService(NewDrawer(NewSeededSource(3)), zaptest.NewLogger(t))
}

func TestNewService(t *testing.T) {
	service := NewService(nil, nil)

	snap := service.Snapshot()
	assert.Equal(t, model.ModeAccumulating, snap.Mode)
	assert.Empty(t, snap.Picked)
	assert.Nil(t, snap.Result)
	assert.Equal(t, model.MaxPicks, snap.Remaining())
	assert.Empty(t, service.History())
	assert.Equal(t, DefaultHistoryLimit, service.historyLimit)
}

func TestService_AddScenario(t *testing.T) {
	service := newTestService(t)

	require.NoError(t, service.Add(5))
	assert.ErrorIs(t, service.Add(5), selection.ErrDuplicate)
	for _, n := range []int{12, 8, 30, 1} {
		require.NoError(t, service.Add(n))
	}
	assert.ErrorIs(t, service.Add(40), selection.ErrLimitReached)

	snap := service.Snapshot()
	assert.Equal(t, []int{5, 12, 8, 30, 1}, snap.Picked)
	assert.Equal(t, 0, snap.Remaining())
}

func TestService_DrawLocksUntilClear(t *testing.T) {
	service := newTestService(t)

	record, err := service.Draw()
	require.NoError(t, err)
	require.NotNil(t, record)

	assert.ErrorIs(t, service.Add(1), selection.ErrAlreadyDrawn)

	snap := service.Snapshot()
	assert.Equal(t, model.ModeDrawn, snap.Mode)
	require.NotNil(t, snap.Result)
	assert.Equal(t, record.Result, *snap.Result)

	service.Clear()
	require.NoError(t, service.Add(1))

	snap = service.Snapshot()
	assert.Equal(t, model.ModeAccumulating, snap.Mode)
	assert.Nil(t, snap.Result)
	assert.Equal(t, []int{1}, snap.Picked)
}

func TestService_DrawKeepsPicks(t *testing.T) {
	service := newTestService(t)
	for _, n := range []int{3, 17, 44} {
		require.NoError(t, service.Add(n))
	}

	first, err := service.Draw()
	require.NoError(t, err)
	assert.True(t, first.Result.ContainsAll([]int{3, 17, 44}))
	assert.Equal(t, []int{3, 17, 44}, first.Picked)

	// a second draw before clearing reuses the same picks
	second, err := service.Draw()
	require.NoError(t, err)
	assert.True(t, second.Result.ContainsAll([]int{3, 17, 44}))
	assert.NotEqual(t, first.ID, second.ID)
}

func TestService_History(t *testing.T) {
	service := newTestService(t)

	var ids []string
	for i := 0; i < 3; i++ {
		record, err := service.Draw()
		require.NoError(t, err)
		ids = append(ids, record.ID)
	}

	history := service.History()
	require.Len(t, history, 3)
	assert.Equal(t, ids[2], history[0].ID, "newest first")
	assert.Equal(t, ids[0], history[2].ID)

	// Clear keeps history
	service.Clear()
	assert.Len(t, service.History(), 3)
}

func TestService_SetHistoryLimit(t *testing.T) {
	service := newTestService(t)
	for i := 0; i < 5; i++ {
		_, err := service.Draw()
		require.NoError(t, err)
	}
	newest := service.History()[0].ID

	service.SetHistoryLimit(2)
	history := service.History()
	require.Len(t, history, 2)
	assert.Equal(t, newest, history[0].ID)

	service.SetHistoryLimit(0)
	assert.Equal(t, MinHistoryLimit, service.historyLimit)
	assert.Len(t, service.History(), 1)

	service.SetHistoryLimit(1000)
	assert.Equal(t, MaxHistoryLimit, service.historyLimit)
}

func TestService_UpdateCallback(t *testing.T) {
	service := newTestService(t)

	var updates []Snapshot
	service.SetUpdateCallback(func(snap Snapshot) {
		// callbacks may read back from the service
		_ = service.Snapshot()
		updates = append(updates, snap)
	})

	require.NoError(t, service.Add(9))
	assert.Error(t, service.Add(9))
	_, err := service.Draw()
	require.NoError(t, err)
	service.Clear()

	require.Len(t, updates, 3, "rejected adds do not notify")
	assert.Equal(t, []int{9}, updates[0].Picked)
	assert.Equal(t, model.ModeDrawn, updates[1].Mode)
	require.NotNil(t, updates[1].Result)
	assert.True(t, updates[1].Result.Contains(9))
	assert.Equal(t, model.ModeAccumulating, updates[2].Mode)
	assert.Nil(t, updates[2].Result)
}

func TestService_SnapshotIsCopy(t *testing.T) {
	service := newTestService(t)
	require.NoError(t, service.Add(4))
	_, err := service.Draw()
	require.NoError(t, err)

	snap := service.Snapshot()
	snap.Picked[0] = 40
	original := snap.Result[0]
	snap.Result[0] = 99

	again := service.Snapshot()
	assert.Equal(t, []int{4}, again.Picked)
	assert.Equal(t, original, again.Result[0])
}

func TestService_ImplementsPicker(t *testing.T) {
	var _ Picker = NewService(nil, nil)
}

func TestService_SetSource(t *testing.T) {
	service := newTestService(t)
	service.SetSource(noopSource{})

	record, err := service.Draw()
	require.NoError(t, err)
	assert.Equal(t, model.DrawResult{1, 2, 3, 4, 5, 6}, record.Result)

	service.Clear()
	service.SetSource(reverseSource{})
	record, err = service.Draw()
	require.NoError(t, err)
	assert.Equal(t, model.DrawResult{40, 41, 42, 43, 44, 45}, record.Result)
}
