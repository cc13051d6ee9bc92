package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/hazadus/go-movielist/internal/shell"
)

// createRootCommand создает корневую команду с настроенными подкомандами
func (app *Application) createRootCommand(ctx context.Context) *cobra.Command {
	var (
		configPath string
		verbose    bool
	)

	rootCmd := &cobra.Command{
		Use:   "movielist",
		Short: "A simple command line catalog of movies",
		Long:  `A simple command line catalog of movies with name, genre and rating, stored in a flat text file.`,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return app.Init(configPath, verbose, cmd.ErrOrStderr())
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", defaultConfigPath, "path to the YAML config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	// Добавляем команды, передавая в них экземпляр приложения и контекст
	rootCmd.AddCommand(app.createAddCommand())
	rootCmd.AddCommand(app.createFindCommand())
	rootCmd.AddCommand(app.createRatingCommand())
	rootCmd.AddCommand(app.createDeleteCommand())
	rootCmd.AddCommand(app.createEditCommand())
	rootCmd.AddCommand(app.createClearCommand())
	rootCmd.AddCommand(app.createListCommand())
	rootCmd.AddCommand(app.createMenuCommand())
	rootCmd.AddCommand(app.createTUICommand())
	rootCmd.AddCommand(app.createBackupCommand(ctx))
	rootCmd.AddCommand(app.createRestoreCommand(ctx))
	rootCmd.AddCommand(app.createForgetCommand(ctx))

	return rootCmd
}

// execute выполняет команду над каталогом и печатает результат.
// "Не найдено" и ошибки сохранения не прерывают программу.
func (app *Application) execute(cmd *cobra.Command, c shell.Command) {
	shell.Print(cmd.OutOrStdout(), shell.Execute(app.Store, c))
}
