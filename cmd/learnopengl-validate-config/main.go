package main

import (
	"fmt"
	"os"

	"github.com/learnopengl-go/learnopengl/lib/config"
	"github.com/learnopengl-go/learnopengl/lib/rendering"
)

// shaderFiles are the sources read from disk by the later chapters.
var shaderFiles = []string{"hello.vs", "hello.fs", "texture.vs", "texture.fs"}

func check(cfg *config.Config) []error {
	var errs []error
	for _, name := range shaderFiles {
		path := cfg.ShaderPath(name)
		if _, err := os.Stat(path); err != nil {
			errs = append(errs, fmt.Errorf("shader %s: %w", name, err))
		}
	}
	if _, err := rendering.LoadImage(string(cfg.Textures.Path), cfg.Textures.FlipVertical); err != nil {
		errs = append(errs, err)
	}
	return errs
}

func main() {
	if len(os.Args) < 2 {
		fmt.Printf("Usage: %s <config file>\n", os.Args[0])
		os.Exit(1)
	}
	cfg, err := config.Parse(os.Args[1])
	if err != nil {
		fmt.Printf("Config invalid: %s\n", err)
		os.Exit(1)
	}

	if errs := check(cfg); len(errs) > 0 {
		fmt.Print("Config parses, but the assets it points at are not usable:\n")
		for _, err := range errs {
			fmt.Printf("  %s\n", err)
		}
		os.Exit(1)
	}

	fmt.Print("Config valid!\n\n")

	fmt.Print(cfg)
}
