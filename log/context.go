package log

import (
	"context"
)

type (
	ctxLevelKey  struct{}
	ctxNamesKey  struct{}
	ctxFieldsKey struct{}
)

func WithLevel(ctx context.Context, lvl Level) context.Context {
	return context.WithValue(ctx, ctxLevelKey{}, lvl)
}

func LevelFromContext(ctx context.Context) Level {
	v, _ := ctx.Value(ctxLevelKey{}).(Level)

	return v
}

func WithNames(ctx context.Context, names ...string) context.Context {
	// trim capacity for force allocate new memory while append and prevent data race
	oldNames := NamesFromContext(ctx)
	oldNames = oldNames[:len(oldNames):len(oldNames)]

	return context.WithValue(ctx, ctxNamesKey{}, append(oldNames, names...))
}

func NamesFromContext(ctx context.Context) []string {
	v, _ := ctx.Value(ctxNamesKey{}).([]string)
	if v == nil {
		return []string{}
	}

	return v[:len(v):len(v)]
}

// WithFields attaches fields which are appended to every message logged with ctx
func WithFields(ctx context.Context, fields ...Field) context.Context {
	oldFields := FieldsFromContext(ctx)
	oldFields = oldFields[:len(oldFields):len(oldFields)]

	return context.WithValue(ctx, ctxFieldsKey{}, append(oldFields, fields...))
}

func FieldsFromContext(ctx context.Context) []Field {
	v, _ := ctx.Value(ctxFieldsKey{}).([]Field)

	return v[:len(v):len(v)]
}

func with(ctx context.Context, lvl Level, names ...string) context.Context {
	return WithLevel(WithNames(ctx, names...), lvl)
}
