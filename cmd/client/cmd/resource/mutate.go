// cmd/client/cmd/resource/mutate.go
package resource

import (
	"fmt"

	"devdash/internal/app/client"

	"github.com/spf13/cobra"
)

var (
	createFile string
	updateFile string
)

var CreateCmd = &cobra.Command{
	Use:   "create <kind> -f record.yaml",
	Short: "Создать запись",
	Long: `Создание записи из YAML или JSON файла. ID генерируется сервером, если
не указан. В режиме stub сервер подтверждает запрос, но не сохраняет запись.

` + kindsHelp,
	Args: kindArg(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := client.FromContext(cmd.Context())
		if err != nil {
			return err
		}

		rec, err := readRecordFile(createFile)
		if err != nil {
			return err
		}

		m, err := app.Create(cmd.Context(), args[0], rec)
		if err != nil {
			return fmt.Errorf("ошибка создания записи: %w", err)
		}

		return printMutation(app.Printer(cmd.OutOrStdout()), m)
	},
}

var UpdateCmd = &cobra.Command{
	Use:   "update <kind> <id> -f record.yaml",
	Short: "Обновить запись",
	Args:  kindArg(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := client.FromContext(cmd.Context())
		if err != nil {
			return err
		}

		rec, err := readRecordFile(updateFile)
		if err != nil {
			return err
		}

		m, err := app.Update(cmd.Context(), args[0], args[1], rec)
		if err != nil {
			return fmt.Errorf("ошибка обновления записи: %w", err)
		}

		return printMutation(app.Printer(cmd.OutOrStdout()), m)
	},
}

var DeleteCmd = &cobra.Command{
	Use:   "delete <kind> <id>",
	Short: "Удалить запись",
	Long: `Удаление записи. Владельца проекта удалить нельзя.

` + kindsHelp,
	Args: kindArg(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := client.FromContext(cmd.Context())
		if err != nil {
			return err
		}

		m, err := app.Delete(cmd.Context(), args[0], args[1])
		if err != nil {
			return fmt.Errorf("ошибка удаления записи: %w", err)
		}

		return printMutation(app.Printer(cmd.OutOrStdout()), m)
	},
}

func init() {
	CreateCmd.Flags().StringVarP(&createFile, "file", "f", "", "YAML файл с записью")
	UpdateCmd.Flags().StringVarP(&updateFile, "file", "f", "", "YAML файл с записью")
}
