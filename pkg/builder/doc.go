// Package builder constructs a Product step by step through interchangeable
// builders, with a Director fixing the order of the steps.
//
// Concrete builders embed Assembly and decide what each step adds:
//
//	type plainBuilder struct{ builder.Assembly }
//
//	func (b *plainBuilder) PartA() { b.Add("part a1") }
//	func (b *plainBuilder) PartB() { b.Add("part b1") }
//	func (b *plainBuilder) PartC() { b.Add("part c1") }
//
//	d := builder.NewDirector(&plainBuilder{})
//	fmt.Println(d.Construct())
//	// ********** parts **********
//	// part a1
//	// part b1
//	// part c1
//	// ***************************
//
// Taking the product resets the builder, so the next Construct starts empty and
// never shares parts with an earlier product.
package builder
