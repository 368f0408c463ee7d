package sequence

// Info describes the package for help output.
const Info = "sequence speeds up the everyday operations on collections of data. " +
	"It follows the pipes-and-filters pattern: a collection flows through a chain " +
	"of stages, each producing a new sequence, with names that follow the " +
	"familiar stream vocabulary (filter, map, flatMap, sorted, distinct, reduce)."
