package main

import (
	"github.com/spf13/cobra"

	"github.com/hazadus/go-movielist/internal/shell"
)

// createListCommand создает команду list с привязкой к экземпляру приложения
func (app *Application) createListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all movies from the catalog",
		Long:  `Display all movies in the order they were added.`,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			app.execute(cmd, shell.List{})
		},
	}
}

// createMenuCommand создает команду menu с привязкой к экземпляру приложения
func (app *Application) createMenuCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "menu",
		Short: "Run the interactive numbered menu",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return shell.NewMenu(app.Store, cmd.InOrStdin(), cmd.OutOrStdout()).Run()
		},
	}
}
