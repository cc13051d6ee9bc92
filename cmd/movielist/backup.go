package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/hazadus/go-movielist/internal/backup"
)

// createBackupCommand создает команду backup с привязкой к экземпляру приложения
func (app *Application) createBackupCommand(ctx context.Context) *cobra.Command {
	return &cobra.Command{
		Use:   "backup [key]",
		Short: "Upload the catalog to S3 storage",
		Long:  `Upload the current catalog to the S3 bucket from the config. The key defaults to backup_key.`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			// Каталог маленький, но сеть может зависнуть
			backupCtx, cancel := context.WithTimeout(ctx, time.Minute)
			defer cancel()
			return app.backup(backupCtx, cmd, app.backupKey(args))
		},
	}
}

// createRestoreCommand создает команду restore с привязкой к экземпляру приложения
func (app *Application) createRestoreCommand(ctx context.Context) *cobra.Command {
	return &cobra.Command{
		Use:   "restore [key]",
		Short: "Replace the catalog with a copy from S3 storage",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			restoreCtx, cancel := context.WithTimeout(ctx, time.Minute)
			defer cancel()
			return app.restore(restoreCtx, cmd, app.backupKey(args))
		},
	}
}

// createForgetCommand создает команду forget с привязкой к экземпляру приложения
func (app *Application) createForgetCommand(ctx context.Context) *cobra.Command {
	return &cobra.Command{
		Use:   "forget <key>",
		Short: "Delete a catalog copy from S3 storage",
		Long:  `Delete the backup stored under key. The local catalog is not changed.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			forgetCtx, cancel := context.WithTimeout(ctx, time.Minute)
			defer cancel()

			service, err := app.backupService()
			if err != nil {
				return err
			}
			if err := service.Forget(forgetCtx, args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "🗑️  Резервная копия удалена: %s/%s\n", app.Config.AwsBucketName, args[0])
			return nil
		},
	}
}

func (app *Application) backupKey(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return app.Config.BackupKey
}

func (app *Application) backupService() (*backup.Service, error) {
	if !app.Config.HasBackup() {
		return nil, fmt.Errorf("не указан aws_bucket_name в конфигурации")
	}
	storage, err := app.newStorage(app.Config)
	if err != nil {
		return nil, fmt.Errorf("ошибка создания S3 клиента: %w", err)
	}
	return backup.NewService(storage, app.Store, app.Config.FileFormat(), app.Logger), nil
}

func (app *Application) backup(ctx context.Context, cmd *cobra.Command, key string) error {
	service, err := app.backupService()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "📤 Загружаем каталог в S3:\n")
	fmt.Fprintf(out, "   Фильмов: %d\n", app.Store.Len())
	fmt.Fprintf(out, "   Бакет: %s\n", app.Config.AwsBucketName)
	fmt.Fprintf(out, "   Ключ: %s\n", key)

	result, err := service.Backup(ctx, key, func(bytesRead int64) {
		fmt.Fprintf(out, "\r📊 Отправлено: %s", backup.FormatFileSize(bytesRead))
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "\n✅ Каталог успешно загружен в S3 (%s)\n", backup.FormatFileSize(result.Size))
	fmt.Fprintf(out, "   URL: %s\n", result.URL)
	return nil
}

func (app *Application) restore(ctx context.Context, cmd *cobra.Command, key string) error {
	service, err := app.backupService()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "📥 Восстанавливаем каталог из S3: %s/%s\n", app.Config.AwsBucketName, key)

	result, err := service.Restore(ctx, key)
	if result != nil {
		for _, lineErr := range result.Errors {
			fmt.Fprintf(out, "⚠️  Пропущена %v: %q\n", lineErr, lineErr.Text)
		}
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "✅ Восстановлено фильмов: %d\n", result.Movies)
	return nil
}
