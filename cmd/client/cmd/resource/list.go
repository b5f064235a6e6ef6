// cmd/client/cmd/resource/list.go
package resource

import (
	"fmt"

	"devdash/internal/app/client"
	"devdash/internal/domain/listing"

	"github.com/spf13/cobra"
)

var (
	listQuery  string
	listFilter []string
	listReveal []string
)

var ListCmd = &cobra.Command{
	Use:   "list <kind>",
	Short: "Список записей",
	Long: `Просмотр карточек одного вида записей с поиском и фильтрами.

Поиск -q не учитывает регистр. Фильтр -f принимает измерение=значение и
повторяется, значение all отключает измерение. --reveal показывает скрытые
значения перечисленных записей.

` + kindsHelp,
	Example: `  devdash list projects -f status=ongoing
  devdash list secrets -q stripe --reveal 2
  devdash list team -f role=admin -o yaml`,
	Args: kindArg(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := client.FromContext(cmd.Context())
		if err != nil {
			return err
		}

		categories, err := listing.ParseFilters(listFilter)
		if err != nil {
			return err
		}

		page, err := app.List(cmd.Context(), args[0], client.ListOptions{
			Query:  listQuery,
			Filter: listing.FilterState{Categories: categories},
			Reveal: listReveal,
		})
		if err != nil {
			return fmt.Errorf("ошибка получения списка: %w", err)
		}

		return app.Printer(cmd.OutOrStdout()).Page(page)
	},
}

func init() {
	ListCmd.Flags().StringVarP(&listQuery, "query", "q", "", "подстрока для поиска")
	ListCmd.Flags().StringArrayVarP(&listFilter, "filter", "f", nil, "фильтр измерение=значение")
	ListCmd.Flags().StringSliceVar(&listReveal, "reveal", nil, "ID записей, чьи значения показать")
}
