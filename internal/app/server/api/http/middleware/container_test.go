package middleware

import (
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/stretchr/testify/assert"
)

func TestContainer_GetAllAndClear(t *testing.T) {
	var calls []string
	mw := func(name string) func(huma.Context, func(huma.Context)) {
		return func(ctx huma.Context, next func(huma.Context)) {
			calls = append(calls, name)
			next(ctx)
		}
	}

	c := NewContainer(mw("logger"), mw("metrics"))
	c.Add(mw("extra"))

	first := c.GetAllAndClear()
	assert.Len(t, first, 3)

	second := c.GetAllAndClear()
	assert.Len(t, second, 2, "общие мидлвари остаются, добавленные очищаются")

	for _, m := range first {
		m(nil, func(huma.Context) {})
	}
	assert.Equal(t, []string{"logger", "metrics", "extra"}, calls)
}
