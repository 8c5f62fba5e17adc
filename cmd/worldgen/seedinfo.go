package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/lebowski36/Voxel-Castle-sub002/internal/worldgen/seed"
)

func seedCmd(args []string) {
	fs := flag.NewFlagSet("seed", flag.ExitOnError)
	seedStr := fs.String("seed", "", "world seed (number or string; required)")
	x := fs.Int64("x", 0, "block x for the derivation trace")
	y := fs.Int64("y", 0, "block y for the derivation trace")
	z := fs.Int64("z", 0, "block z for the derivation trace")
	scaleName := fs.String("scale", "block", "tier: block, chunk, region, continental")
	_ = fs.Parse(args)

	if *seedStr == "" {
		fmt.Fprintln(os.Stderr, "missing -seed")
		os.Exit(2)
	}
	scale, err := parseScale(*scaleName)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	ws := seed.FromString(*seedStr)
	fmt.Printf("seed string: %q\n", ws.SeedString())
	fmt.Printf("master:      %016x\n", ws.MasterSeed())
	for _, d := range seed.Domains() {
		fmt.Printf("%-12s %016x\n", d.String(), ws.DomainSeed(d))
	}
	fmt.Println()
	for _, d := range seed.Domains() {
		fmt.Println(ws.Debug(*x, *y, *z, scale, d))
	}
}

func parseScale(name string) (seed.Scale, error) {
	switch strings.ToLower(name) {
	case "block":
		return seed.ScaleBlock, nil
	case "chunk":
		return seed.ScaleChunk, nil
	case "region":
		return seed.ScaleRegion, nil
	case "continental":
		return seed.ScaleContinental, nil
	}
	return 0, fmt.Errorf("unknown scale %q", name)
}
