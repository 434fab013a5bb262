package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// shapesFile is the layout of a scene from_file document
type shapesFile struct {
	Shapes []ShapeConfig `yaml:"shapes"`
}

// MergeShapes appends the shapes listed in FromFile after the inline shapes
func (s *SceneConfig) MergeShapes() error {
	if s.FromFile == "" {
		return nil
	}

	data, err := os.ReadFile(s.FromFile)
	if err != nil {
		return fmt.Errorf("reading shapes file: %w", err)
	}

	var file shapesFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("parsing shapes file: %w", err)
	}

	s.Shapes = append(s.Shapes, file.Shapes...)
	// merged once; a second merge must not duplicate the shapes
	s.FromFile = ""
	return nil
}

// LoadAndMerge loads all external files and merges their contents
func (c *ScenarioConfig) LoadAndMerge() error {
	if err := c.Scene.MergeShapes(); err != nil {
		return fmt.Errorf("merging scene shapes: %w", err)
	}
	return nil
}
