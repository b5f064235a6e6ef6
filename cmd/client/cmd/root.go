// cmd/client/cmd/root.go
package cmd

import (
	"fmt"
	"os"

	"devdash/internal/app/client"
	"devdash/internal/app/client/config"
	"devdash/internal/app/client/output"
	"devdash/internal/utils/logger"

	"github.com/spf13/cobra"
)

var (
	cfgFile    string
	debug      bool
	jsonOutput bool
	outputFlag string
	serverURL  string
)

var rootCmd = &cobra.Command{
	Use:   "devdash",
	Short: "DevDash - клиент панели проектов разработчика",
	Long: `DevDash - консольный клиент панели проектов: проекты, сниппеты,
переменные окружения, файлы, команда, документация и архивы.

Списки поддерживают поиск, фильтры по измерениям и раскрытие скрытых значений.`,
	PersistentPreRunE: setupApp,
	SilenceUsage:      true,
	SilenceErrors:     true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Ошибка: %v\n", err)
		os.Exit(1)
	}
}

func setupApp(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("ошибка загрузки конфигурации: %w", err)
	}

	// Переопределяем настройки из флагов командной строки
	if serverURL != "" {
		cfg.ServerAddress = serverURL
	}

	format, err := output.ParseFormat(outputFlag)
	if err != nil {
		return err
	}
	if jsonOutput {
		format = output.FormatJSON
	}

	// Логи клиента нужны только при отладке, иначе они смешиваются с выводом
	log := logger.Discard()
	if debug {
		log = logger.New(cfg.Env)
	}

	app := client.New(cfg, format, log)
	cmd.SetContext(client.WithApp(cmd.Context(), app))

	return nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "конфигурационный файл (по умолчанию ~/.devdash/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "включить отладочный режим")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "вывод в формате JSON")
	rootCmd.PersistentFlags().StringVarP(&outputFlag, "output", "o", "table", "формат вывода (table, json, yaml)")
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "", "адрес сервера DevDash")

	// Команды будут добавлены в init() соответствующих файлов
}
