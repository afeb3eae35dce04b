package ui

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"go.uber.org/zap"

	"github.com/ytget/lotto-picker/internal/config"
	"github.com/ytget/lotto-picker/internal/draw"
	"github.com/ytget/lotto-picker/internal/model"
	"github.com/ytget/lotto-picker/internal/selection"
)

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	picker       draw.Picker
	settings     *config.Settings
	localization *Localization
	logger       *zap.Logger

	numberSelect *widget.Select
	addBtn       *widget.Button
	drawBtn      *widget.Button
	clearBtn     *widget.Button
	statusLabel  *widget.Label
	historyLabel *widget.Label
	historyList  *widget.List
	balls        []*BallSlot

	history []*model.DrawRecord

	// Toast notification
	toast      *widget.PopUp
	toastLabel *widget.Label
	toastTimer *time.Timer
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, settings *config.Settings, picker draw.Picker, logger *zap.Logger) *RootUI {
	if logger == nil {
		logger = zap.NewNop()
	}

	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		picker:       picker,
		settings:     settings,
		localization: localization,
		logger:       logger,
	}

	window.SetTitle(localization.GetText(KeyAppTitle))

	ui.picker.SetUpdateCallback(ui.onUpdate)

	ui.setupUI()
	ui.render(picker.Snapshot())

	// The previous result is only shown; picking starts from scratch
	if last, ok := settings.GetLastDraw(); ok {
		ui.showNumbers(last.Numbers())
		ui.statusLabel.SetText(fmt.Sprintf("%s: %s", localization.GetText(KeyLastDraw), last))
		logger.Debug("restored last draw", zap.Ints("numbers", last.Numbers()))
	}

	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	options := make([]string, 0, model.MaxNumber)
	for _, n := range model.AllNumbers() {
		options = append(options, strconv.Itoa(n))
	}
	ui.numberSelect = widget.NewSelect(options, nil)
	ui.numberSelect.PlaceHolder = ui.localization.GetText(KeySelectNumber)

	ui.addBtn = newActionButton(ui.localization.GetText(KeyAdd), ui.onAddClick)
	ui.drawBtn = newActionButton(ui.localization.GetText(KeyDraw), ui.onDrawClick)
	ui.drawBtn.Importance = widget.HighImportance
	ui.clearBtn = newActionButton(ui.localization.GetText(KeyClear), ui.onClearClick)

	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance

	pickRow := container.NewBorder(nil, nil, settingsBtn, ui.addBtn, ui.numberSelect)
	actionRow := container.NewGridWithColumns(2, ui.drawBtn, ui.clearBtn)

	size := ballSize()
	ui.balls = make([]*BallSlot, model.DrawSize)
	for i := range ui.balls {
		ui.balls[i] = NewBallSlot(size)
	}

	ui.statusLabel = widget.NewLabel("")
	ui.statusLabel.Alignment = fyne.TextAlignCenter
	ui.statusLabel.Wrapping = fyne.TextWrapWord

	ui.historyLabel = widget.NewLabel(ui.localization.GetText(KeyHistory))
	ui.historyLabel.TextStyle = fyne.TextStyle{Bold: true}

	ui.historyList = widget.NewList(
		func() int {
			return len(ui.history)
		},
		func() fyne.CanvasObject {
			return widget.NewLabel("")
		},
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			ui.updateHistoryItem(id, obj)
		},
	)

	top := container.NewVBox(
		pickRow,
		newBallRow(ui.balls),
		ui.statusLabel,
		actionRow,
		widget.NewSeparator(),
		ui.historyLabel,
	)

	content := container.NewBorder(top, nil, nil, nil, ui.historyList)
	ui.window.SetContent(content)

	ui.logger.Debug("UI setup completed")
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)

	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))
	for _, code := range sortedCodes(ui.localization.GetAvailableLanguages()) {
		langCode := code
		langItem := fyne.NewMenuItem(ui.localization.GetAvailableLanguages()[code], func() {
			ui.onLanguageChange(langCode)
		})
		langItem.Checked = ui.localization.GetCurrentLanguage() == code
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	mainMenu := fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), settingsItem),
		languageMenu,
	)

	ui.window.SetMainMenu(mainMenu)
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)
	ui.refreshUITexts()
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))

	ui.numberSelect.PlaceHolder = ui.localization.GetText(KeySelectNumber)
	ui.numberSelect.Refresh()
	ui.addBtn.SetText(ui.localization.GetText(KeyAdd))
	ui.drawBtn.SetText(ui.localization.GetText(KeyDraw))
	ui.clearBtn.SetText(ui.localization.GetText(KeyClear))
	ui.historyLabel.SetText(ui.localization.GetText(KeyHistory))

	ui.render(ui.picker.Snapshot())
}

func (ui *RootUI) onAddClick() {
	selected := ui.numberSelect.Selected
	if selected == "" {
		ui.showToast(ui.localization.GetText(KeySelectNumber))
		return
	}

	n, err := strconv.Atoi(selected)
	if err != nil {
		ui.logger.Error("invalid picker value", zap.String("value", selected), zap.Error(err))
		return
	}

	if err := ui.picker.Add(n); err != nil {
		ui.showToast(ui.errorText(err))
	}
}

func (ui *RootUI) onDrawClick() {
	record, err := ui.picker.Draw()
	if err != nil {
		ui.logger.Error("draw failed", zap.Error(err))
		ui.showToast(fmt.Sprintf("%s: %v", ui.localization.GetText(KeyDrawFailed), err))
		return
	}

	ui.settings.SetLastDraw(record.Result)
	ui.refreshHistory()
}

func (ui *RootUI) onClearClick() {
	ui.picker.Clear()
	ui.numberSelect.ClearSelected()
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	ShowSettingsDialog(ui.window, ui.settings, ui.localization, ui.applySettings)
}

// applySettings pushes saved settings into the picker and the UI
func (ui *RootUI) applySettings() {
	src, err := draw.NewSourceOfKind(ui.settings.GetRandomSource())
	if err != nil {
		ui.logger.Error("failed to create random source", zap.Error(err))
	} else {
		ui.picker.SetSource(src)
	}
	ui.picker.SetHistoryLimit(ui.settings.GetHistoryLimit())

	ui.localization.SetLanguage(ui.settings.GetLanguage())
	ui.refreshUITexts()
	ui.createMenu()
	ui.refreshHistory()

	ui.showToast(ui.localization.GetText(KeySettingsSaved))
}

// onUpdate is called by the picker after every accepted change
func (ui *RootUI) onUpdate(snap draw.Snapshot) {
	ui.render(snap)
}

// render shows a snapshot: the drawn result when there is one, otherwise the
// manual picks in the order they were added
func (ui *RootUI) render(snap draw.Snapshot) {
	if snap.Result != nil {
		ui.showNumbers(snap.Result.Numbers())
		ui.statusLabel.SetText(ui.localization.GetText(KeyDrawn))
		return
	}

	ui.showNumbers(snap.Picked)
	ui.statusLabel.SetText(fmt.Sprintf(ui.localization.GetText(KeyRemaining), snap.Remaining()))
}

func (ui *RootUI) showNumbers(numbers []int) {
	for i, slot := range ui.balls {
		if i < len(numbers) {
			slot.Set(numbers[i])
		} else {
			slot.Reset()
		}
	}
}

func (ui *RootUI) refreshHistory() {
	ui.history = ui.picker.History()
	ui.historyList.Refresh()
}

func (ui *RootUI) updateHistoryItem(id widget.ListItemID, obj fyne.CanvasObject) {
	label, ok := obj.(*widget.Label)
	if !ok || id < 0 || id >= len(ui.history) {
		return
	}
	record := ui.history[id]
	label.SetText(fmt.Sprintf(HistoryEntryPattern, record.GetTimeString(), record.Result))
}

// errorText maps a rejected pick to its localized notice
func (ui *RootUI) errorText(err error) string {
	switch {
	case errors.Is(err, selection.ErrAlreadyDrawn):
		return ui.localization.GetText(KeyAlreadyDrawn)
	case errors.Is(err, selection.ErrLimitReached):
		return ui.localization.GetText(KeyLimitReached)
	case errors.Is(err, selection.ErrOutOfRange):
		return ui.localization.GetText(KeyOutOfRange)
	case errors.Is(err, selection.ErrDuplicate):
		return ui.localization.GetText(KeyDuplicate)
	default:
		return err.Error()
	}
}

// showToast shows a short notice at the top of the window that hides itself
func (ui *RootUI) showToast(message string) {
	if ui.toast == nil {
		ui.toastLabel = widget.NewLabel("")
		ui.toastLabel.Wrapping = fyne.TextWrapWord
		ui.toastLabel.Alignment = fyne.TextAlignCenter
		ui.toast = widget.NewPopUp(container.NewPadded(ui.toastLabel), ui.window.Canvas())
	}

	ui.toastLabel.SetText(message)

	canvasSize := ui.window.Canvas().Size()
	width := min(ToastWidth, canvasSize.Width-2*ToastMargin)
	toastSize := fyne.NewSize(width, ui.toast.MinSize().Height)
	ui.toast.Resize(toastSize)
	ui.toast.Move(fyne.NewPos((canvasSize.Width-width)/2, ToastMargin))
	ui.toast.Show()

	if ui.toastTimer != nil {
		ui.toastTimer.Stop()
	}
	toast := ui.toast
	ui.toastTimer = time.AfterFunc(ToastAutoHide, func() {
		fyne.Do(toast.Hide)
	})
}
