// cmd/client/cmd/stats.go
package cmd

import (
	"fmt"
	"strconv"

	"devdash/internal/app/client"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Сводка по проектам",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := client.FromContext(cmd.Context())
		if err != nil {
			return err
		}

		s, err := app.Stats(cmd.Context())
		if err != nil {
			return fmt.Errorf("ошибка получения сводки: %w", err)
		}

		return app.Printer(cmd.OutOrStdout()).Table(s, [][2]string{
			{"Всего проектов", strconv.Itoa(s.TotalProjects)},
			{"Завершено", strconv.Itoa(s.Completed)},
			{"В работе", strconv.Itoa(s.InProgress)},
			{"Отменено", strconv.Itoa(s.Cancelled)},
			{"В архиве", strconv.Itoa(s.Archived)},
		})
	},
}

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Проверить состояние сервера",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := client.FromContext(cmd.Context())
		if err != nil {
			return err
		}

		h, err := app.Health(cmd.Context())
		if err != nil {
			return err
		}

		return app.Printer(cmd.OutOrStdout()).Table(h, [][2]string{
			{"Статус", h.Status},
			{"Хранилище", h.Storage},
			{"Режим изменений", h.MutationMode},
		})
	},
}
