// Package utils содержит утилитарные функции, используемые в разных частях приложения
package utils

// TruncateString обрезает строку до maxLen символов, добавляя "..." если строка длиннее.
// Считает руны, а не байты, чтобы не резать кириллицу посередине символа.
func TruncateString(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-3]) + "..."
}
