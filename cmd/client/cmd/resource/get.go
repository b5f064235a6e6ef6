// cmd/client/cmd/resource/get.go
package resource

import (
	"fmt"

	"devdash/internal/app/client"

	"github.com/spf13/cobra"
)

var getReveal bool

var GetCmd = &cobra.Command{
	Use:   "get <kind> <id>",
	Short: "Просмотреть запись",
	Long: `Просмотр записи по ID. Скрытые значения (например, переменные окружения)
показываются только с флагом --reveal.

` + kindsHelp,
	Args: kindArg(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := client.FromContext(cmd.Context())
		if err != nil {
			return err
		}

		rec, err := app.Get(cmd.Context(), args[0], args[1], getReveal)
		if err != nil {
			return fmt.Errorf("ошибка получения записи: %w", err)
		}

		return app.Printer(cmd.OutOrStdout()).Record(rec)
	},
}

func init() {
	GetCmd.Flags().BoolVar(&getReveal, "reveal", false, "показать скрытые значения")
}
