// Package codec сериализует список фильмов в построчный текстовый формат и обратно
package codec

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/hazadus/go-movielist/internal/movie"
)

// Delimiter разделитель полей в файле
const Delimiter = ","

// Format формат файла данных
type Format string

const (
	// FormatLegacy поля через запятую без экранирования
	FormatLegacy Format = "legacy"
	// FormatQuoted CSV с кавычками, запятые внутри полей сохраняются
	FormatQuoted Format = "quoted"
)

var (
	// ErrUnknownFormat неизвестное имя формата
	ErrUnknownFormat = errors.New("неизвестный формат файла данных")
	// ErrMalformedRating рейтинг в строке не является числом
	ErrMalformedRating = errors.New("рейтинг не является числом")
)

// ParseFormat возвращает формат по имени из конфигурации; пустое имя означает legacy
func ParseFormat(name string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(name))) {
	case "", FormatLegacy:
		return FormatLegacy, nil
	case FormatQuoted:
		return FormatQuoted, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
}

// LineError ошибка разбора конкретной строки файла
type LineError struct {
	Line int
	Text string
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("строка %d: %v", e.Line, e.Err)
}

func (e *LineError) Unwrap() error {
	return e.Err
}

// Result результат разбора файла
type Result struct {
	Movies  []movie.Movie
	Errors  []*LineError
	Skipped int
}

// SkipHook вызывается для каждой строки, которая не похожа на запись
type SkipHook func(lineNo int, line string)

type decodeOptions struct {
	onSkip SkipHook
}

// DecodeOption настраивает Decode
type DecodeOption func(*decodeOptions)

// WithSkipHook подключает диагностику пропущенных строк
func WithSkipHook(hook SkipHook) DecodeOption {
	return func(o *decodeOptions) {
		o.onSkip = hook
	}
}

// Encode записывает фильмы по одному на строку в порядке name, genre, rating
func Encode(w io.Writer, movies []movie.Movie, format Format) error {
	switch format {
	case FormatLegacy, "":
		bw := bufio.NewWriter(w)
		for _, m := range movies {
			line := m.Name + Delimiter + m.Genre + Delimiter + movie.FormatRating(m.Rating) + "\n"
			if _, err := bw.WriteString(line); err != nil {
				return fmt.Errorf("ошибка записи: %w", err)
			}
		}
		return bw.Flush()
	case FormatQuoted:
		cw := csv.NewWriter(w)
		for _, m := range movies {
			if err := cw.Write([]string{m.Name, m.Genre, movie.FormatRating(m.Rating)}); err != nil {
				return fmt.Errorf("ошибка записи: %w", err)
			}
		}
		cw.Flush()
		return cw.Error()
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// Decode читает фильмы из r. Строки, не похожие на запись, пропускаются молча,
// строки с нечисловым рейтингом пропускаются и попадают в Result.Errors.
// Ошибка возвращается только если не удалось прочитать сам r.
//
// В формате FormatQuoted перевод строки \r\n внутри поля читается как \n.
func Decode(r io.Reader, format Format, opts ...DecodeOption) (Result, error) {
	o := decodeOptions{}
	for _, opt := range opts {
		opt(&o)
	}

	switch format {
	case FormatLegacy, "":
		return decodeLegacy(r, o)
	case FormatQuoted:
		return decodeQuoted(r, o)
	default:
		return Result{}, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// ParseLine разбирает одну строку legacy формата. ok == false если в строке
// меньше двух разделителей.
func ParseLine(line string) (m movie.Movie, ok bool, err error) {
	first := strings.Index(line, Delimiter)
	last := strings.LastIndex(line, Delimiter)
	if first < 0 || last < 0 || first == last {
		return movie.Movie{}, false, nil
	}

	// Запятые внутри name или genre попадают в genre: формат их не экранирует
	m.Name = line[:first]
	m.Genre = line[first+len(Delimiter) : last]
	m.Rating, err = movie.ParseRating(line[last+len(Delimiter):])
	if err != nil {
		return movie.Movie{}, true, fmt.Errorf("%w: %v", ErrMalformedRating, err)
	}
	return m, true, nil
}

func decodeLegacy(r io.Reader, o decodeOptions) (Result, error) {
	res := Result{Movies: make([]movie.Movie, 0)}
	br := bufio.NewReader(r)

	for lineNo := 1; ; lineNo++ {
		line, readErr := br.ReadString('\n')
		if readErr != nil && readErr != io.EOF {
			return res, fmt.Errorf("ошибка чтения строки %d: %w", lineNo, readErr)
		}
		if readErr == io.EOF && line == "" {
			break
		}
		line = strings.TrimSuffix(line, "\n")

		m, ok, err := ParseLine(line)
		switch {
		case !ok:
			res.Skipped++
			if o.onSkip != nil {
				o.onSkip(lineNo, line)
			}
		case err != nil:
			res.Errors = append(res.Errors, &LineError{Line: lineNo, Text: line, Err: err})
		default:
			res.Movies = append(res.Movies, m)
		}

		if readErr == io.EOF {
			break
		}
	}
	return res, nil
}

func decodeQuoted(r io.Reader, o decodeOptions) (Result, error) {
	res := Result{Movies: make([]movie.Movie, 0)}
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	for {
		fields, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				res.Skipped++
				if o.onSkip != nil {
					o.onSkip(parseErr.StartLine, err.Error())
				}
				continue
			}
			return res, fmt.Errorf("ошибка чтения CSV: %w", err)
		}

		lineNo, _ := cr.FieldPos(0)
		if len(fields) != 3 {
			res.Skipped++
			if o.onSkip != nil {
				o.onSkip(lineNo, strings.Join(fields, Delimiter))
			}
			continue
		}

		rating, err := movie.ParseRating(fields[2])
		if err != nil {
			res.Errors = append(res.Errors, &LineError{
				Line: lineNo,
				Text: strings.Join(fields, Delimiter),
				Err:  fmt.Errorf("%w: %v", ErrMalformedRating, err),
			})
			continue
		}
		res.Movies = append(res.Movies, movie.Movie{Name: fields[0], Genre: fields[1], Rating: rating})
	}
	return res, nil
}
