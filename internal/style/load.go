// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package style

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/md2office/pkg/types"
)

// LoadConfig reads a style configuration file, YAML or JSON by extension.
// Any failure (missing file, unreadable file, malformed syntax) is
// recoverable: a warning goes to warn and the returned config is nil, so the
// conversion proceeds on defaults alone. An empty path means no config was
// requested and produces no warning.
func LoadConfig(path string, warn io.Writer) *types.StyleConfig {
	if path == "" {
		return nil
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}

	data, err := os.ReadFile(abs)
	if err != nil {
		fmt.Fprintf(warn, "warning: style config unavailable: %v\n", err)
		return nil
	}

	var cfg types.StyleConfig
	switch strings.ToLower(filepath.Ext(abs)) {
	case ".yml", ".yaml":
		err = yaml.Unmarshal(data, &cfg)
	default:
		err = json.Unmarshal(data, &cfg)
	}
	if err != nil {
		fmt.Fprintf(warn, "warning: parsing style config %s: %v\n", abs, err)
		return nil
	}
	return &cfg
}
