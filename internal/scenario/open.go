package scenario

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/specialistvlad/insectgrid/internal/simulation"
)

// Open reads the scenario at path and picks the decoder from its extension.
// The path "-" reads the text format from stdin.
func Open(path string) (simulation.Source, error) {
	if path == "-" {
		return Read(os.Stdin, "stdin")
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open scenario %s: %w", path, err)
	}
	defer f.Close()
	return Read(f, path)
}

// Read decodes a scenario from r. name selects the format the same way as a
// file path does.
func Read(r io.Reader, name string) (simulation.Source, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario %s: %w", name, err)
	}
	if IsHCL(name) {
		return NewHCLSource(data, name)
	}
	return NewTextSource(bytes.NewReader(data)), nil
}

// IsHCL reports whether name selects the HCL format.
func IsHCL(name string) bool {
	return strings.EqualFold(filepath.Ext(name), ".hcl")
}

// IsScenario reports whether name looks like a scenario file of either format.
func IsScenario(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	return ext == ".txt" || ext == ".hcl"
}
