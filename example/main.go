package main

import (
	"fmt"
	"log"

	"github.com/Jumpaku/go-syntacticpath"
)

func main() {
	// parse an absolute folder path
	base, err := syntacticpath.Parse("/var/data/")
	if err != nil {
		log.Panic(err)
	}
	fmt.Println("base:", base)
	fmt.Println("base segments:", base.Segments())

	// resolve a relative path against it
	report, err := base.ResolveString("reports/../reports/2026/summary.txt")
	if err != nil {
		log.Panic(err)
	}
	fmt.Println("resolved:", report)
	fmt.Println("normalized:", report.Normalize())

	// navigate
	fmt.Println("file name:", report.FileName())
	fmt.Println("parent:", report.Parent())
	fmt.Println("root:", report.Root())

	// relativize back against the base
	rel, err := base.Relativize(report)
	if err != nil {
		log.Panic(err)
	}
	fmt.Println("relative to base:", rel)

	// prefix and suffix checks
	prefix, err := syntacticpath.Parse("/var")
	if err != nil {
		log.Panic(err)
	}
	fmt.Println("starts with /var:", report.StartsWith(prefix))
	name, err := syntacticpath.Parse("summary.txt")
	if err != nil {
		log.Panic(err)
	}
	fmt.Println("ends with summary.txt:", report.EndsWith(name))

	// invalid input surfaces a validation error
	if _, err := syntacticpath.Parse("a/./b"); err != nil {
		fmt.Println("parse error:", err)
	}
}
