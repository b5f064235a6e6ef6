// cmd/client/cmd/view/view.go
package view

import (
	"fmt"
	"strconv"

	"devdash/internal/app/client"
	"devdash/internal/domain/listing"

	"github.com/spf13/cobra"
)

var (
	filterQuery string
	filterDims  []string
)

// ViewCmd - родительская команда для представлений списков на сервере
var ViewCmd = &cobra.Command{
	Use:   "view",
	Short: "Представления списков",
	Long: `Представление хранит на сервере фильтр и раскрытые значения одного списка,
пока его не закроют или не истечет срок жизни.`,
}

var OpenCmd = &cobra.Command{
	Use:   "open <kind>",
	Short: "Открыть представление",
	Args: func(cmd *cobra.Command, args []string) error {
		if err := cobra.ExactArgs(1)(cmd, args); err != nil {
			return err
		}
		return client.CheckKind(args[0])
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := client.FromContext(cmd.Context())
		if err != nil {
			return err
		}

		v, err := app.OpenView(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("ошибка открытия представления: %w", err)
		}

		return app.Printer(cmd.OutOrStdout()).Table(v, [][2]string{
			{"ID", v.ID},
			{"Вид", v.Kind},
		})
	},
}

var ShowCmd = &cobra.Command{
	Use:   "show <view-id>",
	Short: "Показать представление",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := client.FromContext(cmd.Context())
		if err != nil {
			return err
		}

		page, err := app.ShowView(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("ошибка получения представления: %w", err)
		}

		return app.Printer(cmd.OutOrStdout()).Page(page)
	},
}

var FilterCmd = &cobra.Command{
	Use:   "filter <view-id>",
	Short: "Задать поиск и фильтры представления",
	Long:  `Заменяет фильтр представления целиком. Без флагов фильтр сбрасывается.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := client.FromContext(cmd.Context())
		if err != nil {
			return err
		}

		categories, err := listing.ParseFilters(filterDims)
		if err != nil {
			return err
		}

		page, err := app.FilterView(cmd.Context(), args[0], listing.FilterState{Text: filterQuery, Categories: categories})
		if err != nil {
			return fmt.Errorf("ошибка изменения фильтра: %w", err)
		}

		return app.Printer(cmd.OutOrStdout()).Page(page)
	},
}

var ToggleCmd = &cobra.Command{
	Use:   "toggle <view-id> <record-id>",
	Short: "Показать или скрыть значение записи",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := client.FromContext(cmd.Context())
		if err != nil {
			return err
		}

		t, err := app.ToggleView(cmd.Context(), args[0], args[1])
		if err != nil {
			return fmt.Errorf("ошибка переключения видимости: %w", err)
		}

		return app.Printer(cmd.OutOrStdout()).Table(t, [][2]string{
			{"Запись", t.RecordID},
			{"Видно", strconv.FormatBool(t.Visible)},
		})
	},
}

var CloseCmd = &cobra.Command{
	Use:   "close <view-id>",
	Short: "Закрыть представление",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := client.FromContext(cmd.Context())
		if err != nil {
			return err
		}

		if err := app.CloseView(cmd.Context(), args[0]); err != nil {
			return fmt.Errorf("ошибка закрытия представления: %w", err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), "Представление закрыто")
		return nil
	},
}

func init() {
	FilterCmd.Flags().StringVarP(&filterQuery, "query", "q", "", "подстрока для поиска")
	FilterCmd.Flags().StringArrayVarP(&filterDims, "filter", "f", nil, "фильтр измерение=значение")
}
