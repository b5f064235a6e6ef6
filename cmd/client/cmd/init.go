// cmd/client/cmd/init.go
package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"devdash/cmd/client/cmd/resource"
	"devdash/cmd/client/cmd/view"
	"devdash/internal/app/client"
	"devdash/internal/app/client/config"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var initPath string

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Настроить клиент DevDash",
	Long: `Команда init выполняет первоначальную настройку клиента:
	1. Запрашивает адрес сервера (если не передан флагом --server)
	2. Проверяет соединение с сервером
	3. Сохраняет конфигурацию в ~/.devdash/config.yaml`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := client.FromContext(cmd.Context())
		if err != nil {
			return err
		}
		cfg := app.Config()

		// Спрашиваем адрес только в интерактивном режиме
		if serverURL == "" && term.IsTerminal(int(os.Stdin.Fd())) {
			fmt.Fprintf(cmd.OutOrStdout(), "Адрес сервера [%s]: ", cfg.ServerAddress)
			line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
			if err != nil && line == "" {
				return fmt.Errorf("ошибка чтения адреса: %w", err)
			}
			if addr := strings.TrimSpace(line); addr != "" {
				app.SetServer(addr)
			}
		}

		fmt.Fprintln(cmd.OutOrStdout(), "Проверка соединения с сервером...")
		health, err := app.Health(cmd.Context())
		if err != nil {
			fmt.Fprintf(cmd.OutOrStdout(), "Предупреждение: не удалось подключиться к серверу: %v\n", err)
		} else {
			fmt.Fprintf(cmd.OutOrStdout(), "Соединение установлено: хранилище %s, режим %s\n", health.Storage, health.MutationMode)
		}

		path := initPath
		if path == "" {
			path = config.DefaultPath()
		}
		if err := config.Save(cfg, path); err != nil {
			return fmt.Errorf("ошибка сохранения конфигурации: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Конфигурация сохранена в %s\n", path)
		return nil
	},
}

func init() {
	initCmd.Flags().StringVar(&initPath, "path", "", "куда сохранить конфигурацию")
	rootCmd.AddCommand(initCmd)

	// Команды работы с записями
	rootCmd.AddCommand(resource.ListCmd)
	rootCmd.AddCommand(resource.GetCmd)
	rootCmd.AddCommand(resource.CreateCmd)
	rootCmd.AddCommand(resource.UpdateCmd)
	rootCmd.AddCommand(resource.DeleteCmd)

	// Представления списков на сервере
	rootCmd.AddCommand(view.ViewCmd)
	view.ViewCmd.AddCommand(view.OpenCmd)
	view.ViewCmd.AddCommand(view.ShowCmd)
	view.ViewCmd.AddCommand(view.FilterCmd)
	view.ViewCmd.AddCommand(view.ToggleCmd)
	view.ViewCmd.AddCommand(view.CloseCmd)

	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(healthCmd)
	rootCmd.AddCommand(readmeCmd)
	rootCmd.AddCommand(docCmd)
}
