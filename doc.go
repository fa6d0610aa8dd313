// Package mathkit is a small toolkit of five independent math objects, each
// with a closed set of operations, a batch reader and an N-way reduction.
//
// 🧮 What is inside?
//
//	mathset/      finite int32 sets in insertion order: union, intersection, difference
//	matrix/       int32 matrices: add, subtract, multiply, scale, pairwise reduction
//	vector/       3D float64 vectors: add, subtract, dot, cross, magnitude, running folds
//	logic/        boolean gates over a fixed input vector: AND, OR, NOT, NAND, NOR, XOR, XNOR
//	complexnum/   float32 complex numbers: add, subtract, multiply, guarded divide
//	cmd/mathkit/  command line front end reading the conventional input files
//
// Every reader takes an io.Reader and returns either the whole batch or the
// first parse error with its line and field; nothing is returned partially.
// The leaf packages never import each other and never log.
//
// Quick example:
//
//	sets, _ := mathset.ReadSets(strings.NewReader("1,2,3\n3,4,5\n"))
//	red, _ := mathset.Reduce(sets)
//	fmt.Println(red.Union) // [1, 2, 3, 4, 5]
//
// Command line:
//
//	go install github.com/katalvlaran/mathkit/cmd/mathkit@latest
//	mathkit matrices --file matrix.csv --count 3 --scalar 2
package mathkit
