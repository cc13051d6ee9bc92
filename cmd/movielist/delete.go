package main

import (
	"github.com/spf13/cobra"

	"github.com/hazadus/go-movielist/internal/shell"
)

// createDeleteCommand создает команду delete с привязкой к экземпляру приложения
func (app *Application) createDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete [name]",
		Short: "Delete a movie by name",
		Long:  `Delete the first movie with the given name. Other movies keep their order.`,
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			app.execute(cmd, shell.Delete{Name: args[0]})
		},
	}
}

// createEditCommand создает команду edit с привязкой к экземпляру приложения
func (app *Application) createEditCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "edit [old name] [new name] [new genre] [new rating]",
		Short: "Edit a movie by name",
		Long:  `Replace all fields of the first movie with the given name. The movie keeps its position.`,
		Args:  cobra.ExactArgs(4),
		Run: func(cmd *cobra.Command, args []string) {
			rating, ok := parseRatingArg(cmd, args[3])
			if !ok {
				return
			}
			app.execute(cmd, shell.Edit{OldName: args[0], Name: args[1], Genre: args[2], Rating: rating})
		},
	}
}

// createClearCommand создает команду clear с привязкой к экземпляру приложения
func (app *Application) createClearCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove all movies from the catalog",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			app.execute(cmd, shell.Clear{})
		},
	}
}
