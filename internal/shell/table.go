package shell

import (
	"fmt"
	"io"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/hazadus/go-movielist/internal/movie"
)

// RenderTable рисует фильмы таблицей в порядке каталога
func RenderTable(movies []movie.Movie) string {
	if len(movies) == 0 {
		return ""
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"#", "Название", "Жанр", "Рейтинг"})

	for i, m := range movies {
		tw.AppendRow(table.Row{strconv.Itoa(i + 1), m.Name, m.Genre, movie.FormatRating(m.Rating)})
	}

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight, AlignHeader: text.AlignLeft},
		{Number: 4, Align: text.AlignRight, AlignHeader: text.AlignLeft},
	})

	return tw.Render()
}

// Print выводит результат команды
func Print(w io.Writer, out Output) {
	fmt.Fprintln(w, out.Message)
	if len(out.Movies) > 0 {
		fmt.Fprintln(w, RenderTable(out.Movies))
	}
}
