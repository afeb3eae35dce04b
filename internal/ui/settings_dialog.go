package ui

import (
	"slices"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/lotto-picker/internal/config"
	"github.com/ytget/lotto-picker/internal/draw"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	window       fyne.Window
	localization *Localization
	dialog       *dialog.ConfirmDialog
	onSaved      func()

	// language display name -> code
	languageCodes map[string]string

	languageSelect *widget.Select
	sourceSelect   *widget.Select
	historyEntry   *widget.Entry
}

// ShowSettingsDialog opens the settings dialog; onSaved runs after the user saves
func ShowSettingsDialog(window fyne.Window, settings *config.Settings, localization *Localization, onSaved func()) *SettingsDialog {
	sd := NewSettingsDialog(settings, window, localization, onSaved)
	sd.Show()
	return sd
}

// NewSettingsDialog creates a new settings dialog
func NewSettingsDialog(settings *config.Settings, window fyne.Window, localization *Localization, onSaved func()) *SettingsDialog {
	sd := &SettingsDialog{
		settings:      settings,
		window:        window,
		localization:  localization,
		onSaved:       onSaved,
		languageCodes: make(map[string]string),
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

func (sd *SettingsDialog) createUI() {
	languages := sd.settings.GetLanguageOptions()
	languageOptions := make([]string, 0, len(languages))
	for _, code := range sortedCodes(languages) {
		name := languages[code]
		sd.languageCodes[name] = code
		languageOptions = append(languageOptions, name)
	}
	sd.languageSelect = widget.NewSelect(languageOptions, nil)

	sourceOptions := make([]string, 0, len(draw.SourceKinds()))
	for _, kind := range sd.settings.GetRandomSourceOptions() {
		sourceOptions = append(sourceOptions, string(kind))
	}
	sd.sourceSelect = widget.NewSelect(sourceOptions, nil)

	sd.historyEntry = widget.NewEntry()
	sd.historyEntry.SetPlaceHolder(strconv.Itoa(draw.MinHistoryLimit) + "-" + strconv.Itoa(draw.MaxHistoryLimit))

	form := container.NewVBox(
		widget.NewLabel(sd.localization.GetText(KeyLanguage)+":"),
		sd.languageSelect,

		widget.NewLabel(sd.localization.GetText(KeyRandomSource)+":"),
		sd.sourceSelect,

		widget.NewLabel(sd.localization.GetText(KeyHistoryLimit)+":"),
		sd.historyEntry,
	)

	sd.dialog = dialog.NewCustomConfirm(
		sd.localization.GetText(KeySettings),
		sd.localization.GetText(KeySave),
		sd.localization.GetText(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(SettingsDialogWidth, SettingsDialogHeight))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.languageSelect.SetSelected(sd.settings.GetLanguageOptions()[sd.settings.GetLanguage()])
	sd.sourceSelect.SetSelected(string(sd.settings.GetRandomSource()))
	sd.historyEntry.SetText(strconv.Itoa(sd.settings.GetHistoryLimit()))
}

func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	sd.apply()

	if sd.onSaved != nil {
		sd.onSaved()
	}
}

// apply stores the values currently shown in the form. Empty or invalid fields
// leave the stored value unchanged.
func (sd *SettingsDialog) apply() {
	if code, ok := sd.languageCodes[sd.languageSelect.Selected]; ok {
		sd.settings.SetLanguage(code)
	}

	if sd.sourceSelect.Selected != "" {
		sd.settings.SetRandomSource(draw.SourceKind(sd.sourceSelect.Selected))
	}

	if limit, err := strconv.Atoi(sd.historyEntry.Text); err == nil {
		sd.settings.SetHistoryLimit(limit)
	}
}

// sortedCodes returns the keys of a code -> name map in a stable order
func sortedCodes(names map[string]string) []string {
	codes := make([]string, 0, len(names))
	for code := range names {
		codes = append(codes, code)
	}
	slices.Sort(codes)
	return codes
}
