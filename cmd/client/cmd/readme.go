// cmd/client/cmd/readme.go
package cmd

import (
	"fmt"
	"os"
	"strconv"

	"devdash/internal/app/client"

	"github.com/spf13/cobra"
)

var (
	readmeHTML bool
	readmeSet  string
	docHTML    bool
)

var readmeCmd = &cobra.Command{
	Use:   "readme <project-id>",
	Short: "Показать или заменить README проекта",
	Long: `Без флагов печатает README в markdown, с --html - отрендеренный HTML.
С --set заменяет README содержимым файла (учитывается режим изменений сервера).`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := client.FromContext(cmd.Context())
		if err != nil {
			return err
		}
		p := app.Printer(cmd.OutOrStdout())

		if readmeSet != "" {
			data, err := os.ReadFile(readmeSet)
			if err != nil {
				return fmt.Errorf("ошибка чтения файла: %w", err)
			}

			m, err := app.UpdateReadme(cmd.Context(), args[0], string(data))
			if err != nil {
				return fmt.Errorf("ошибка обновления README: %w", err)
			}
			return p.Table(m, [][2]string{
				{"ID", m.ID},
				{"Статус", m.Status},
				{"Сохранено", strconv.FormatBool(m.Persisted)},
			})
		}

		c, err := app.Readme(cmd.Context(), args[0], readmeHTML)
		if err != nil {
			return fmt.Errorf("ошибка получения README: %w", err)
		}
		return p.Text(c, c.Content)
	},
}

var docCmd = &cobra.Command{
	Use:   "doc <doc-id>",
	Short: "Показать содержимое документа",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := client.FromContext(cmd.Context())
		if err != nil {
			return err
		}

		c, err := app.Document(cmd.Context(), args[0], docHTML)
		if err != nil {
			return fmt.Errorf("ошибка получения документа: %w", err)
		}
		return app.Printer(cmd.OutOrStdout()).Text(c, "# "+c.Title+"\n\n"+c.Content)
	},
}

func init() {
	readmeCmd.Flags().BoolVar(&readmeHTML, "html", false, "отрендерить в HTML")
	readmeCmd.Flags().StringVar(&readmeSet, "set", "", "файл с новым README")
	docCmd.Flags().BoolVar(&docHTML, "html", false, "отрендерить в HTML")
}
