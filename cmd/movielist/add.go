package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hazadus/go-movielist/internal/movie"
	"github.com/hazadus/go-movielist/internal/shell"
)

// createAddCommand создает команду add с привязкой к экземпляру приложения
func (app *Application) createAddCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "add [name] [genre] [rating]",
		Short: "Add a movie to the catalog",
		Long:  `Append a movie to the end of the catalog and save the catalog file.`,
		Args:  cobra.ExactArgs(3),
		Run: func(cmd *cobra.Command, args []string) {
			rating, ok := parseRatingArg(cmd, args[2])
			if !ok {
				return
			}
			app.execute(cmd, shell.Add{Name: args[0], Genre: args[1], Rating: rating})
		},
	}
}

// parseRatingArg разбирает рейтинг из аргумента и сообщает об ошибке пользователю
func parseRatingArg(cmd *cobra.Command, arg string) (float64, bool) {
	rating, err := movie.ParseRating(arg)
	if err != nil {
		fmt.Fprintf(cmd.OutOrStdout(), "❌ Ошибка: неверный рейтинг '%s'. Рейтинг должен быть числом.\n", arg)
		return 0, false
	}
	return rating, true
}
