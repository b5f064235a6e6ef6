package markdown

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

type Format string

const (
	FormatMarkdown Format = "markdown"
	FormatHTML     Format = "html"
)

// md потокобезопасен после создания
var md = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
)

// ToHTML конвертирует markdown (GFM) в HTML. Сырой HTML из исходника не пропускается.
func ToHTML(src string) (string, error) {
	var buf bytes.Buffer
	if err := md.Convert([]byte(src), &buf); err != nil {
		return "", fmt.Errorf("convert markdown: %w", err)
	}
	return buf.String(), nil
}

// Render возвращает исходник как есть или HTML
func Render(src string, format Format) (string, error) {
	switch format {
	case "", FormatMarkdown:
		return src, nil
	case FormatHTML:
		return ToHTML(src)
	default:
		return "", fmt.Errorf("unsupported format %q", format)
	}
}
