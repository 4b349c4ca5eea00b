package i18n

import (
	"maps"
	"slices"
	"strings"
)

// Bundle is a translation table for one locale.
type Bundle interface {
	Locale() Locale
	// Translate returns the translation for key and whether one exists.
	Translate(key string) (string, bool)
}

// MapBundle is an in-memory Bundle.
type MapBundle struct {
	locale   Locale
	messages map[string]string
}

// NewBundle creates a bundle from a key -> translation map. The map is copied.
func NewBundle(locale Locale, messages map[string]string) *MapBundle {
	return &MapBundle{locale: locale, messages: maps.Clone(messages)}
}

// Locale returns the bundle locale.
func (b *MapBundle) Locale() Locale {
	return b.locale
}

// Translate looks key up. Blank translations count as missing.
func (b *MapBundle) Translate(key string) (string, bool) {
	v, ok := b.messages[key]
	if !ok || strings.TrimSpace(v) == "" {
		return "", false
	}
	return v, true
}

// Keys returns the translation keys in sorted order.
func (b *MapBundle) Keys() []string {
	return slices.Sorted(maps.Keys(b.messages))
}

func (b *MapBundle) merge(messages map[string]string) {
	if b.messages == nil {
		b.messages = make(map[string]string, len(messages))
	}
	maps.Copy(b.messages, messages)
}
