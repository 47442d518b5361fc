package catalog

import (
	"fmt"
	"os"

	"github.com/xvierd/neck-cli/internal/domain"
	"gopkg.in/yaml.v3"
)

// routineFile is the on-disk shape of a custom routine.
type routineFile struct {
	Exercises []domain.Exercise `yaml:"exercises"`
}

// LoadFile reads a YAML routine from path.
func LoadFile(path string) (*domain.Routine, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read routine file: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates a YAML routine.
func Parse(data []byte) (*domain.Routine, error) {
	var f routineFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse routine: %w", err)
	}
	r, err := domain.NewRoutine(f.Exercises)
	if err != nil {
		return nil, fmt.Errorf("invalid routine: %w", err)
	}
	return r, nil
}

// Load returns the routine at path, or the built-in one when path is empty.
func Load(path string) (*domain.Routine, error) {
	if path == "" {
		return Default(), nil
	}
	return LoadFile(path)
}

// Marshal encodes a routine in the format LoadFile reads.
func Marshal(r *domain.Routine) ([]byte, error) {
	return yaml.Marshal(routineFile{Exercises: r.Exercises()})
}
