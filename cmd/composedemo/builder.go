package main

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/compose/pkg/builder"
	"github.com/dmitrymomot/compose/pkg/factory"
)

type plainBuilder struct{ builder.Assembly }

func (b *plainBuilder) PartA() { b.Add("part a1") }
func (b *plainBuilder) PartB() { b.Add("part b1") }
func (b *plainBuilder) PartC() { b.Add("part c1") }

type fancyBuilder struct{ builder.Assembly }

func (b *fancyBuilder) PartA() { b.Add("part a ~~~~ 2") }
func (b *fancyBuilder) PartB() { b.Add("part b ~~~~ 2") }
func (b *fancyBuilder) PartC() { b.Add("part c ~~~~ 2") }

func runBuilder(ctx context.Context, log *slog.Logger) error {
	builders := factory.New[builder.Builder]()
	builders.Register("plain", func() builder.Builder { return &plainBuilder{} })
	builders.Register("fancy", func() builder.Builder { return &fancyBuilder{} })

	director := builder.NewDirector(builders.MustCreate("plain"), builder.WithLogger(log))
	for _, name := range builders.Families() {
		b, err := builders.Create(name)
		if err != nil {
			return err
		}
		director.SetBuilder(b)

		log.InfoContext(ctx, "full product", slog.String("builder", name), slog.Any("parts", director.Construct().Parts))
		log.InfoContext(ctx, "minimal product", slog.String("builder", name), slog.Any("parts", director.ConstructMinimal().Parts))
	}
	return nil
}
