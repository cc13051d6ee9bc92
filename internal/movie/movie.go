// Package movie описывает запись каталога фильмов
package movie

import (
	"fmt"
	"strconv"
	"strings"
)

// Movie одна запись каталога
type Movie struct {
	Name   string
	Genre  string
	Rating float64
}

// FormatRating возвращает кратчайшее десятичное представление рейтинга,
// которое читается обратно без потерь
func FormatRating(rating float64) string {
	return strconv.FormatFloat(rating, 'g', -1, 64)
}

// ParseRating разбирает рейтинг из текста, игнорируя пробелы по краям
func ParseRating(s string) (float64, error) {
	rating, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("неверный рейтинг %q: %w", s, err)
	}
	return rating, nil
}

// String форматирует фильм для вывода пользователю
func (m Movie) String() string {
	return fmt.Sprintf("%s (%s) с рейтингом %s", m.Name, m.Genre, FormatRating(m.Rating))
}
