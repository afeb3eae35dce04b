package draw

import (
	"slices"
	"sync"

	"go.uber.org/zap"

	"github.com/ytget/lotto-picker/internal/model"
	"github.com/ytget/lotto-picker/internal/selection"
)

// History bounds
const (
	DefaultHistoryLimit = 20
	MinHistoryLimit     = 1
	MaxHistoryLimit     = 100
)

// Snapshot is a read-only view of a session handed to front ends
type Snapshot struct {
	Mode   model.Mode
	Picked []int
	Result *model.DrawResult // nil until the first draw after a clear
}

// Remaining returns how many more numbers can be picked by hand
func (s Snapshot) Remaining() int {
	if s.Mode.IsDrawn() {
		return 0
	}
	return model.MaxPicks - len(s.Picked)
}

// Service handles pick and draw operations for one session
type Service struct {
	mu           sync.Mutex
	state        *selection.State
	drawer       *Drawer
	result       *model.DrawResult
	history      []*model.DrawRecord // newest first
	historyLimit int
	onUpdate     func(Snapshot) // callback for UI updates
	logger       *zap.Logger
}

// NewService creates a new draw service. A nil drawer uses the default source
// and a nil logger discards output.
func NewService(drawer *Drawer, logger *zap.Logger) *Service {
	if drawer == nil {
		drawer = NewDrawer(nil)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		state:        selection.NewState(),
		drawer:       drawer,
		historyLimit: DefaultHistoryLimit,
		logger:       logger,
	}
}

// SetUpdateCallback sets the callback function for session updates
func (s *Service) SetUpdateCallback(callback func(Snapshot)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onUpdate = callback
}

// Add records a manual pick
func (s *Service) Add(n int) error {
	s.mu.Lock()
	if err := s.state.Add(n); err != nil {
		s.mu.Unlock()
		s.logger.Warn("pick rejected", zap.Int("number", n), zap.Error(err))
		return err
	}
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.logger.Debug("number picked", zap.Int("number", n), zap.Ints("picked", snap.Picked))
	s.notifyUpdate(snap)
	return nil
}

// Clear drops picks and the current result. History is kept.
func (s *Service) Clear() {
	s.mu.Lock()
	s.state.Clear()
	s.result = nil
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.logger.Debug("selection cleared")
	s.notifyUpdate(snap)
}

// Draw completes the current picks, locks further picks and records the draw.
// Drawing again before a clear keeps the same picks.
func (s *Service) Draw() (*model.DrawRecord, error) {
	s.mu.Lock()
	picked := s.state.Picked()
	result, err := s.drawer.Draw(picked)
	if err != nil {
		s.mu.Unlock()
		s.logger.Error("draw failed", zap.Ints("picked", picked), zap.Error(err))
		return nil, err
	}

	s.state.MarkDrawn()
	s.result = &result
	record := model.NewDrawRecord(result, picked)
	s.history = slices.Insert(s.history, 0, record)
	s.trimHistoryLocked()
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.logger.Info("numbers drawn",
		zap.String("id", record.ID),
		zap.Ints("result", result.Numbers()),
		zap.Ints("picked", picked))
	s.notifyUpdate(snap)
	return record, nil
}

// Snapshot returns the current session view
func (s *Service) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// History returns past draws, newest first
func (s *Service) History() []*model.DrawRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.history)
}

// SetHistoryLimit sets how many draws are kept, clamped to MinHistoryLimit..MaxHistoryLimit
func (s *Service) SetHistoryLimit(limit int) {
	if limit < MinHistoryLimit {
		limit = MinHistoryLimit
	}
	if limit > MaxHistoryLimit {
		limit = MaxHistoryLimit
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.historyLimit = limit
	s.trimHistoryLocked()
}

// SetSource replaces the random source used by later draws
func (s *Service) SetSource(src Source) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.drawer = NewDrawer(src)
	s.logger.Debug("random source replaced")
}

func (s *Service) snapshotLocked() Snapshot {
	snap := Snapshot{
		Mode:   s.state.Mode(),
		Picked: s.state.Picked(),
	}
	if s.result != nil {
		r := *s.result
		snap.Result = &r
	}
	return snap
}

func (s *Service) trimHistoryLocked() {
	if len(s.history) > s.historyLimit {
		clear(s.history[s.historyLimit:])
		s.history = s.history[:s.historyLimit]
	}
}

// notifyUpdate calls the update callback if set
func (s *Service) notifyUpdate(snap Snapshot) {
	s.mu.Lock()
	callback := s.onUpdate
	s.mu.Unlock()

	if callback != nil {
		callback(snap)
	}
}
