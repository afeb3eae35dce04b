package config

import (
	"fyne.io/fyne/v2"

	"github.com/ytget/lotto-picker/internal/draw"
	"github.com/ytget/lotto-picker/internal/model"
)

// Settings keys for Fyne preferences
const (
	KeyLanguage     = "app_language"
	KeyRandomSource = "random_source"
	KeyHistoryLimit = "history_limit"
	KeyLastDraw     = "last_draw"
)

// Default values
const (
	DefaultLanguage     = "system"
	DefaultRandomSource = draw.SourceFast
	DefaultHistoryLimit = draw.DefaultHistoryLimit
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetRandomSource returns the configured random source, falling back to the default for unknown values
func (s *Settings) GetRandomSource() draw.SourceKind {
	kind := draw.SourceKind(s.app.Preferences().String(KeyRandomSource))
	for _, known := range draw.SourceKinds() {
		if kind == known {
			return kind
		}
	}
	s.SetRandomSource(DefaultRandomSource)
	return DefaultRandomSource
}

// SetRandomSource sets the random source used for draws
func (s *Settings) SetRandomSource(kind draw.SourceKind) {
	s.app.Preferences().SetString(KeyRandomSource, string(kind))
}

// GetRandomSourceOptions returns available random source options
func (s *Settings) GetRandomSourceOptions() []draw.SourceKind {
	return draw.SourceKinds()
}

// GetHistoryLimit returns how many past draws are kept
func (s *Settings) GetHistoryLimit() int {
	value := s.app.Preferences().Int(KeyHistoryLimit)
	if value <= 0 {
		s.SetHistoryLimit(DefaultHistoryLimit)
		return DefaultHistoryLimit
	}
	return value
}

// SetHistoryLimit sets how many past draws are kept
func (s *Settings) SetHistoryLimit(limit int) {
	if limit < draw.MinHistoryLimit {
		limit = draw.MinHistoryLimit
	}
	if limit > draw.MaxHistoryLimit {
		limit = draw.MaxHistoryLimit
	}
	s.app.Preferences().SetInt(KeyHistoryLimit, limit)
}

// GetLastDraw returns the most recently saved result, if a valid one is stored
func (s *Settings) GetLastDraw() (model.DrawResult, bool) {
	numbers := s.app.Preferences().IntList(KeyLastDraw)
	result, err := model.NewDrawResult(numbers)
	if err != nil {
		return model.DrawResult{}, false
	}
	return result, true
}

// SetLastDraw saves a result so it can be shown again on the next start
func (s *Settings) SetLastDraw(result model.DrawResult) {
	s.app.Preferences().SetIntList(KeyLastDraw, result.Numbers())
}

// ClearLastDraw forgets the saved result
func (s *Settings) ClearLastDraw() {
	s.app.Preferences().RemoveValue(KeyLastDraw)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ko":     "한국어",
		"ru":     "Русский",
		"pt":     "Português",
	}
}
