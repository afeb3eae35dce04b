package ui

import (
	"strings"

	"fyne.io/fyne/v2/lang"
)

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle      = "app_title"
	KeyAdd           = "add"
	KeyDraw          = "draw"
	KeyClear         = "clear"
	KeySettings      = "settings"
	KeyFile          = "file"
	KeyLanguage      = "language"
	KeyRandomSource  = "random_source"
	KeyHistoryLimit  = "history_limit"
	KeyHistory       = "history"
	KeySave          = "save"
	KeyCancel        = "cancel"
	KeySelectNumber  = "select_number"
	KeyRemaining     = "remaining"
	KeyDrawn         = "drawn"
	KeySettingsSaved = "settings_saved"
	KeyAlreadyDrawn  = "already_drawn"
	KeyLimitReached  = "limit_reached"
	KeyDuplicate     = "duplicate"
	KeyOutOfRange    = "out_of_range"
	KeyDrawFailed    = "draw_failed"
	KeyLastDraw      = "last_draw"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language. "system" follows the OS locale and
// falls back to English when it is not translated.
func (l *Localization) SetLanguage(code string) {
	if code == "system" {
		code = systemLanguage()
		if _, exists := l.texts[code]; !exists {
			code = "en"
		}
	}

	if _, exists := l.texts[code]; exists {
		l.currentLanguage = code
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"ko": "한국어",
		"ru": "Русский",
		"pt": "Português",
	}
}

// systemLanguage returns the base language of the OS locale, e.g. "ko" for "ko-KR"
func systemLanguage() string {
	locale := string(lang.SystemLocale())
	base, _, _ := strings.Cut(locale, "-")
	return strings.ToLower(base)
}

func (l *Localization) initializeTexts() {
	l.texts["en"] = map[string]string{
		KeyAppTitle:      "Lotto Picker",
		KeyAdd:           "Add",
		KeyDraw:          "Draw",
		KeyClear:         "Clear",
		KeySettings:      "Settings",
		KeyFile:          "File",
		KeyLanguage:      "Language",
		KeyRandomSource:  "Random Source",
		KeyHistoryLimit:  "History Size",
		KeyHistory:       "History",
		KeySave:          "Save",
		KeyCancel:        "Cancel",
		KeySelectNumber:  "Select a number",
		KeyRemaining:     "%d more can be picked",
		KeyDrawn:         "Drawn. Clear to pick again",
		KeySettingsSaved: "Settings saved",
		KeyAlreadyDrawn:  "Numbers are already drawn. Press Clear first.",
		KeyLimitReached:  "You can pick up to 5 numbers.",
		KeyDuplicate:     "This number is already picked.",
		KeyOutOfRange:    "Pick a number from 1 to 45.",
		KeyDrawFailed:    "Draw failed",
		KeyLastDraw:      "Last draw",
	}

	l.texts["ko"] = map[string]string{
		KeyAppTitle:      "로또 번호 생성기",
		KeyAdd:           "추가",
		KeyDraw:          "생성",
		KeyClear:         "초기화",
		KeySettings:      "설정",
		KeyFile:          "파일",
		KeyLanguage:      "언어",
		KeyRandomSource:  "난수 생성 방식",
		KeyHistoryLimit:  "기록 개수",
		KeyHistory:       "기록",
		KeySave:          "저장",
		KeyCancel:        "취소",
		KeySelectNumber:  "번호 선택",
		KeyRemaining:     "%d개 더 선택할 수 있습니다",
		KeyDrawn:         "생성 완료. 다시 선택하려면 초기화하세요",
		KeySettingsSaved: "설정이 저장되었습니다",
		KeyAlreadyDrawn:  "이미 번호를 뽑았습니다. 초기화 후 다시 시도하세요.",
		KeyLimitReached:  "번호는 최대 5개까지 선택할 수 있습니다.",
		KeyDuplicate:     "이미 선택된 번호입니다.",
		KeyOutOfRange:    "1부터 45 사이의 번호를 선택하세요.",
		KeyDrawFailed:    "번호 생성 실패",
		KeyLastDraw:      "지난 번호",
	}

	l.texts["ru"] = map[string]string{
		KeyAppTitle:      "Лото Пикер",
		KeyAdd:           "Добавить",
		KeyDraw:          "Тянуть",
		KeyClear:         "Сбросить",
		KeySettings:      "Настройки",
		KeyFile:          "Файл",
		KeyLanguage:      "Язык",
		KeyRandomSource:  "Источник случайности",
		KeyHistoryLimit:  "Размер истории",
		KeyHistory:       "История",
		KeySave:          "Сохранить",
		KeyCancel:        "Отмена",
		KeySelectNumber:  "Выберите число",
		KeyRemaining:     "Можно выбрать ещё %d",
		KeyDrawn:         "Числа вытянуты. Сбросьте, чтобы выбрать снова",
		KeySettingsSaved: "Настройки сохранены",
		KeyAlreadyDrawn:  "Числа уже вытянуты. Сначала нажмите «Сбросить».",
		KeyLimitReached:  "Можно выбрать не более 5 чисел.",
		KeyDuplicate:     "Это число уже выбрано.",
		KeyOutOfRange:    "Выберите число от 1 до 45.",
		KeyDrawFailed:    "Ошибка розыгрыша",
		KeyLastDraw:      "Последний розыгрыш",
	}

	l.texts["pt"] = map[string]string{
		KeyAppTitle:      "Lotto Picker",
		KeyAdd:           "Adicionar",
		KeyDraw:          "Sortear",
		KeyClear:         "Limpar",
		KeySettings:      "Configurações",
		KeyFile:          "Arquivo",
		KeyLanguage:      "Idioma",
		KeyRandomSource:  "Fonte aleatória",
		KeyHistoryLimit:  "Tamanho do histórico",
		KeyHistory:       "Histórico",
		KeySave:          "Salvar",
		KeyCancel:        "Cancelar",
		KeySelectNumber:  "Escolha um número",
		KeyRemaining:     "Ainda pode escolher %d",
		KeyDrawn:         "Sorteado. Limpe para escolher de novo",
		KeySettingsSaved: "Configurações salvas",
		KeyAlreadyDrawn:  "Os números já foram sorteados. Limpe primeiro.",
		KeyLimitReached:  "Você pode escolher até 5 números.",
		KeyDuplicate:     "Este número já foi escolhido.",
		KeyOutOfRange:    "Escolha um número de 1 a 45.",
		KeyDrawFailed:    "Falha no sorteio",
		KeyLastDraw:      "Último sorteio",
	}
}
