// cmd/client/cmd/resource/resource.go
package resource

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"devdash/internal/app/client"
	"devdash/internal/app/client/output"

	"github.com/spf13/cobra"
)

var kindsHelp = "виды: " + strings.Join(client.Kinds, ", ")

// kindArg проверяет первый аргумент до обращения к серверу
func kindArg(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := cobra.ExactArgs(n)(cmd, args); err != nil {
			return err
		}
		return client.CheckKind(args[0])
	}
}

func readRecordFile(path string) (map[string]any, error) {
	if path == "" {
		return nil, fmt.Errorf("укажите файл записи флагом -f")
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("ошибка открытия файла: %w", err)
	}
	defer f.Close()

	return client.ReadRecord(f)
}

func printMutation(p *output.Printer, m client.Mutation) error {
	return p.Table(m, [][2]string{
		{"ID", m.ID},
		{"Статус", m.Status},
		{"Сохранено", strconv.FormatBool(m.Persisted)},
	})
}
