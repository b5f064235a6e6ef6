package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"devdash/internal/domain/listing"

	"github.com/fatih/color"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"
)

type Format string

const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
)

func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case "", FormatTable:
		return FormatTable, nil
	case FormatJSON, FormatYAML:
		return f, nil
	default:
		return "", fmt.Errorf("неизвестный формат вывода %q (table, json, yaml)", s)
	}
}

type Printer struct {
	w      io.Writer
	format Format
	color  bool
}

// New включает цвет, только если w - терминал
func New(w io.Writer, format Format) *Printer {
	p := &Printer{w: w, format: format}
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) && !color.NoColor {
		p.color = true
	}
	return p
}

// Structured печатает v как JSON или YAML. Для табличного формата возвращает false.
func (p *Printer) Structured(v any) (bool, error) {
	switch p.format {
	case FormatJSON:
		enc := json.NewEncoder(p.w)
		enc.SetIndent("", "  ")
		return true, enc.Encode(v)
	case FormatYAML:
		enc := yaml.NewEncoder(p.w)
		enc.SetIndent(2)
		if err := enc.Encode(toPlain(v)); err != nil {
			return true, err
		}
		return true, enc.Close()
	default:
		return false, nil
	}
}

// toPlain пропускает v через JSON, чтобы YAML получил те же имена полей
func toPlain(v any) any {
	data, err := json.Marshal(v)
	if err != nil {
		return v
	}
	var out any
	if err := json.Unmarshal(data, &out); err != nil {
		return v
	}
	return out
}

func (p *Printer) paint(attr color.Attribute, s string) string {
	if !p.color {
		return s
	}
	return color.New(attr).Sprint(s)
}

func (p *Printer) tone(t listing.Tone, s string) string {
	switch t {
	case listing.ToneSuccess:
		return p.paint(color.FgGreen, s)
	case listing.ToneInfo:
		return p.paint(color.FgCyan, s)
	case listing.ToneDanger:
		return p.paint(color.FgRed, s)
	case listing.ToneAccent:
		return p.paint(color.FgMagenta, s)
	default:
		return s
	}
}

// Page печатает карточки списка таблицей либо сообщение пустого состояния
func (p *Printer) Page(page listing.Page) error {
	if ok, err := p.Structured(page); ok {
		return err
	}

	if page.Empty != nil {
		fmt.Fprintln(p.w, p.paint(color.FgYellow, page.Empty.Message))
		fmt.Fprintln(p.w, page.Empty.Action)
		return nil
	}

	w := tabwriter.NewWriter(p.w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tНАЗВАНИЕ\tМЕТКИ\tПОЛЯ\tДЕЙСТВИЯ")

	for _, card := range page.Items {
		badges := make([]string, len(card.Badges))
		for i, b := range card.Badges {
			badges[i] = p.tone(b.Tone, b.Value)
		}

		fields := make([]string, 0, len(card.Fields))
		for _, f := range card.Fields {
			if strings.Contains(f.Value, "\n") {
				continue
			}
			fields = append(fields, f.Name+"="+truncate(f.Value, 40))
		}

		actions := make([]string, len(card.Actions))
		for i, a := range card.Actions {
			actions[i] = string(a)
		}

		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			card.ID,
			p.paint(color.Bold, truncate(card.Label, 40)),
			strings.Join(badges, " "),
			strings.Join(fields, " "),
			strings.Join(actions, ","),
		)
	}

	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(p.w, "\nПоказано %d из %d\n", page.Matched, page.Total)
	return nil
}

// Record печатает запись как пары ключ-значение в порядке ключей YAML
func (p *Printer) Record(rec map[string]any) error {
	if p.format == FormatJSON {
		_, err := p.Structured(rec)
		return err
	}

	enc := yaml.NewEncoder(p.w)
	enc.SetIndent(2)
	if err := enc.Encode(rec); err != nil {
		return err
	}
	return enc.Close()
}

// Table печатает пары заголовок-значение, например сводку или результат мутации
func (p *Printer) Table(v any, rows [][2]string) error {
	if ok, err := p.Structured(v); ok {
		return err
	}

	w := tabwriter.NewWriter(p.w, 0, 0, 2, ' ', 0)
	for _, r := range rows {
		fmt.Fprintf(w, "%s\t%s\n", p.paint(color.Bold, r[0]), r[1])
	}
	return w.Flush()
}

// Text печатает длинный текст как есть
func (p *Printer) Text(v any, text string) error {
	if ok, err := p.Structured(v); ok {
		return err
	}
	_, err := fmt.Fprintln(p.w, text)
	return err
}

func truncate(s string, length int) string {
	r := []rune(s)
	if len(r) <= length {
		return s
	}
	return string(r[:length-3]) + "..."
}
