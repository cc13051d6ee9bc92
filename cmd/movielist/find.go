package main

import (
	"github.com/spf13/cobra"

	"github.com/hazadus/go-movielist/internal/shell"
)

// createFindCommand создает команду find с привязкой к экземпляру приложения
func (app *Application) createFindCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "find [name]",
		Short: "Find a movie by its exact name",
		Long:  `Find the first movie whose name matches exactly (case-sensitive).`,
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			app.execute(cmd, shell.Find{Name: args[0]})
		},
	}
}

// createRatingCommand создает команду rating с привязкой к экземпляру приложения
func (app *Application) createRatingCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "rating [value]",
		Short: "List movies with exactly the given rating",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			rating, ok := parseRatingArg(cmd, args[0])
			if !ok {
				return
			}
			app.execute(cmd, shell.FilterRating{Rating: rating})
		},
	}
}
