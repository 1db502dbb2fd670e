package depgraph_test

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/depgraph"
)

// ExampleGraph_OverallOrder resolves a processing order for a small build
// graph.
// Graph structure:
//
//	app ──► lib ──► std
//	 │               ▲
//	 └──► codegen ───┘
//
// Every dependency must be processed before the target needing it.
func ExampleGraph_OverallOrder() {
	g := depgraph.New()
	for _, id := range []string{"app", "lib", "std", "codegen"} {
		g.AddNode(id)
	}
	_ = g.AddDependency("app", "lib")
	_ = g.AddDependency("app", "codegen")
	_ = g.AddDependency("lib", "std")
	_ = g.AddDependency("codegen", "std")

	order, err := g.OverallOrder()
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(strings.Join(order, " "))

	// Output:
	// std lib codegen app
}

// ExampleGraph_DependantsOf answers the invalidation question: when a
// node changes, everything that depends on it must be rebuilt, nearest
// rebuilds last.
func ExampleGraph_DependantsOf() {
	g := depgraph.New()
	for _, id := range []string{"app", "lib", "std"} {
		g.AddNode(id)
	}
	_ = g.AddDependency("app", "lib")
	_ = g.AddDependency("lib", "std")

	dirty, err := g.DependantsOf("std")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(strings.Join(dirty, " "))

	// Output:
	// app lib
}

// ExampleGraph_OverallOrder_cycle shows how a circular dependency is
// reported: the error carries the exact walk that closed the cycle.
func ExampleGraph_OverallOrder_cycle() {
	g := depgraph.New()
	g.AddNode("a")
	g.AddNode("b")
	_ = g.AddDependency("a", "b")
	_ = g.AddDependency("b", "a")

	_, err := g.OverallOrder()

	var cycleErr *depgraph.CycleError
	if errors.As(err, &cycleErr) {
		fmt.Println(strings.Join(cycleErr.Path, " -> "))
	}

	// Output:
	// a -> b -> a
}

// ExampleWithCircular demonstrates cycle-tolerant traversal: the cycle is
// walked once instead of failing.
func ExampleWithCircular() {
	g := depgraph.New(depgraph.WithCircular())
	for _, id := range []string{"a", "b", "c"} {
		g.AddNode(id)
	}
	_ = g.AddDependency("a", "b")
	_ = g.AddDependency("b", "c")
	_ = g.AddDependency("c", "a")

	deps, err := g.DependenciesOf("a")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(strings.Join(deps, " "))

	// Output:
	// c b
}
