package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/hazadus/go-movielist/internal/backup"
	"github.com/hazadus/go-movielist/internal/codec"
	"github.com/hazadus/go-movielist/internal/config"
	"github.com/hazadus/go-movielist/internal/data"
	"github.com/hazadus/go-movielist/internal/s3"
	"github.com/hazadus/go-movielist/internal/store"
)

const (
	defaultConfigPath = "~/.movielist"
)

// Application хранит состояние приложения на время выполнения команды
type Application struct {
	Config *config.Config
	File   *data.File
	Store  *store.Store
	Logger *zap.Logger

	// newStorage создает удалённое хранилище для резервных копий
	newStorage func(cfg *config.Config) (backup.Storage, error)
	unlock     func() error
}

// NewApplication создает приложение без загруженного каталога
func NewApplication() *Application {
	return &Application{
		Logger:     zap.NewNop(),
		newStorage: newS3Storage,
	}
}

// Init загружает конфигурацию, блокирует файл данных и читает каталог
func (app *Application) Init(configPath string, verbose bool, stderr io.Writer) error {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return fmt.Errorf("ошибка загрузки конфигурации: %w", err)
	}
	app.Config = cfg

	level := cfg.Level()
	if verbose {
		level = zapcore.DebugLevel
	}
	if app.Logger, err = newLogger(level); err != nil {
		return err
	}

	skipHook := codec.WithSkipHook(func(lineNo int, line string) {
		app.Logger.Debug("Строка пропущена", zap.Int("line", lineNo), zap.String("text", line))
	})
	if app.File, err = data.NewFile(cfg.DataFile, cfg.FileFormat(), skipHook); err != nil {
		return fmt.Errorf("ошибка пути к файлу данных: %w", err)
	}

	if app.unlock, err = app.File.Lock(); err != nil {
		return err
	}

	app.Store = store.New(app.File, store.WithLogger(app.Logger))
	return app.LoadData(stderr)
}

// LoadData читает каталог из файла. Отсутствие файла не считается ошибкой.
func (app *Application) LoadData(stderr io.Writer) error {
	res, err := app.File.Load()
	if err != nil {
		if errors.Is(err, data.ErrNoFile) {
			fmt.Fprintln(stderr, "📂 Файл каталога не найден, начинаем с пустого списка.")
			return nil
		}
		return err
	}

	for _, lineErr := range res.Errors {
		fmt.Fprintf(stderr, "⚠️  Пропущена %v: %q\n", lineErr, lineErr.Text)
	}
	app.Store.Load(res.Movies)
	app.Logger.Debug("Файл данных прочитан",
		zap.String("path", app.File.Path()),
		zap.Int("movies", len(res.Movies)),
		zap.Int("skipped", res.Skipped),
		zap.Int("errors", len(res.Errors)))
	return nil
}

// Close снимает блокировку и сбрасывает логи
func (app *Application) Close() error {
	if app.Logger != nil {
		_ = app.Logger.Sync()
	}
	if app.unlock != nil {
		err := app.unlock()
		app.unlock = nil
		return err
	}
	return nil
}

func newLogger(level zapcore.Level) (*zap.Logger, error) {
	zapConfig := zap.NewProductionConfig()
	zapConfig.Level = zap.NewAtomicLevelAt(level)
	logger, err := zapConfig.Build()
	if err != nil {
		return nil, fmt.Errorf("ошибка инициализации логгера: %w", err)
	}
	return logger, nil
}

func newS3Storage(cfg *config.Config) (backup.Storage, error) {
	client, err := s3.NewClient(&s3.Config{
		Region:     cfg.AwsRegion,
		AccessKey:  cfg.AwsAccessKey,
		SecretKey:  cfg.AwsSecretKey,
		Endpoint:   cfg.AwsEndpoint,
		BucketName: cfg.AwsBucketName,
	})
	if err != nil {
		return nil, err
	}
	return client, nil
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	app := NewApplication()
	rootCmd := app.createRootCommand(ctx)

	err := rootCmd.Execute()
	if closeErr := app.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		os.Exit(1)
	}
}
