// Package i18n provides localized messages for the meantree compiler.
package i18n

import (
	"fmt"
	"os"
	"strings"
	"sync"
)

// Language represents a supported language
type Language string

const (
	LangEnglish Language = "en"
	LangChinese Language = "zh"
)

var (
	mu          sync.Mutex
	currentLang Language
	explicit    bool // set by SetLanguage, disables detection
)

// Init initializes the i18n system by detecting the system language.
// This is called automatically on first use, but can be called explicitly.
// A language chosen with SetLanguage is never replaced by detection.
func Init() {
	mu.Lock()
	defer mu.Unlock()
	if !explicit && currentLang == "" {
		currentLang = detectLanguage()
	}
}

// SetLanguage sets the current language manually.
func SetLanguage(lang Language) {
	mu.Lock()
	defer mu.Unlock()
	currentLang = lang
	explicit = true
}

// GetLanguage returns the current language.
func GetLanguage() Language {
	Init()
	mu.Lock()
	defer mu.Unlock()
	return currentLang
}

// T translates a message key to the current language.
// Unknown keys fall back to English, then to the key itself.
func T(key string, args ...any) string {
	messages := enMessages
	if GetLanguage() == LangChinese {
		messages = zhMessages
	}

	template, ok := messages[key]
	if !ok {
		template, ok = enMessages[key]
		if !ok {
			return key
		}
	}

	if len(args) > 0 {
		return fmt.Sprintf(template, args...)
	}
	return template
}

// detectLanguage detects the language from the environment.
func detectLanguage() Language {
	for _, envVar := range []string{"MEANTREE_LANG", "LC_ALL", "LC_MESSAGES", "LANG", "LANGUAGE"} {
		if lang := os.Getenv(envVar); lang != "" {
			if detected := ParseLanguageCode(lang); detected != "" {
				return detected
			}
		}
	}
	return LangEnglish
}

// ParseLanguageCode parses codes like "zh_CN.UTF-8", "zh-CN" or "en_US".
// It returns "" for languages without a catalog.
func ParseLanguageCode(code string) Language {
	code = strings.ToLower(code)
	switch {
	case strings.HasPrefix(code, "zh"):
		return LangChinese
	case strings.HasPrefix(code, "en"):
		return LangEnglish
	}
	return ""
}
