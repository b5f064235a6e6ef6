package middleware

import (
	"github.com/danielgtaylor/huma/v2"
)

// Container набирает цепочку мидлварей для очередного обработчика
type Container struct {
	huma.Middlewares
	common huma.Middlewares
}

// NewContainer принимает мидлвари, которые получает каждый обработчик
func NewContainer(common ...func(ctx huma.Context, next func(huma.Context))) *Container {
	return &Container{
		Middlewares: make(huma.Middlewares, 0),
		common:      common,
	}
}

// Add добавляет одну мидлварь в контейнер
func (mc *Container) Add(middleware func(ctx huma.Context, next func(huma.Context))) {
	mc.Middlewares = append(mc.Middlewares, middleware)
}

// GetAllAndClear возвращает общие и добавленные мидлвари и очищает список добавленных
func (mc *Container) GetAllAndClear() huma.Middlewares {
	result := make(huma.Middlewares, 0, len(mc.common)+len(mc.Middlewares))
	result = append(result, mc.common...)
	result = append(result, mc.Middlewares...)
	mc.Middlewares = nil
	return result
}
