package builder

import (
	"log/slog"
	"slices"
	"strings"

	"github.com/dmitrymomot/compose/core/logger"
)

// Product is the result of a build: its parts in the order they were added.
type Product struct {
	Parts []string
}

// String lists the parts between banner lines.
func (p Product) String() string {
	const title = " parts "
	var b strings.Builder
	b.WriteString(strings.Repeat("*", 10) + title + strings.Repeat("*", 10) + "\n")
	for _, part := range p.Parts {
		b.WriteString(part + "\n")
	}
	b.WriteString(strings.Repeat("*", 20+len(title)))
	return b.String()
}

// Builder produces the parts of a Product step by step.
// Product returns what was built so far and starts a new, empty product,
// so one builder can serve many builds.
type Builder interface {
	PartA()
	PartB()
	PartC()
	Product() Product
}

// Assembly collects parts for a concrete builder. Embed it and call Add from
// the building steps; its Product method satisfies Builder.
//
// Example:
//
//	type steelBuilder struct{ builder.Assembly }
//
//	func (b *steelBuilder) PartA() { b.Add("steel frame") }
//	func (b *steelBuilder) PartB() { b.Add("steel doors") }
//	func (b *steelBuilder) PartC() { b.Add("steel roof") }
type Assembly struct {
	parts []string
}

// Add appends a part to the product being built.
func (a *Assembly) Add(part string) {
	a.parts = append(a.parts, part)
}

// Product returns the parts added since the last call and resets.
func (a *Assembly) Product() Product {
	p := Product{Parts: slices.Clone(a.parts)}
	a.parts = nil
	return p
}

// Director runs building steps in a fixed order.
// A Director is not safe for concurrent use.
type Director struct {
	builder Builder
	logger  *slog.Logger
}

// Option configures a Director.
type Option func(*Director)

// WithLogger sets the director logger. Nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(d *Director) {
		if l != nil {
			d.logger = l
		}
	}
}

// NewDirector returns a director driving b. A nil builder panics.
func NewDirector(b Builder, opts ...Option) *Director {
	if b == nil {
		panic(ErrNilBuilder)
	}
	d := &Director{builder: b, logger: logger.Discard()}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// SetBuilder switches the builder used by later constructions. A nil builder panics.
func (d *Director) SetBuilder(b Builder) {
	if b == nil {
		panic(ErrNilBuilder)
	}
	d.builder = b
}

// Construct runs every step, A then B then C, and returns the product.
func (d *Director) Construct() Product {
	d.builder.PartA()
	d.builder.PartB()
	d.builder.PartC()
	return d.take("full")
}

// ConstructMinimal runs only step A and returns the product.
func (d *Director) ConstructMinimal() Product {
	d.builder.PartA()
	return d.take("minimal")
}

func (d *Director) take(kind string) Product {
	p := d.builder.Product()
	d.logger.Debug("product constructed",
		logger.Component("builder"),
		logger.Type(kind),
		logger.Count("parts", len(p.Parts)))
	return p
}
