package hcl

import (
	"context"
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/vk/traitcast/internal/config"
	"github.com/vk/traitcast/internal/ctxlog"
	"github.com/vk/traitcast/internal/fsutil"
)

// Loader reads cast manifests written in HCL.
type Loader struct {
	parser *hclparse.Parser
}

// NewLoader creates a manifest loader.
func NewLoader() *Loader {
	return &Loader{parser: hclparse.NewParser()}
}

// manifestSchema matches the top level of a manifest file: any number of
// `cast "<type>" { ... }` blocks.
var manifestSchema = &hcl.BodySchema{
	Blocks: []hcl.BlockHeaderSchema{
		{Type: "cast", LabelNames: []string{"concrete"}},
	},
}

// Load implements config.Loader. Paths may be single .hcl files or
// directories, which are searched recursively.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	model := config.NewModel()

	var files []string
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("cannot read manifest path %s: %w", path, err)
		}
		if info.IsDir() {
			found, err := fsutil.FindFilesByExtension(path, ".hcl")
			if err != nil {
				logger.Error("Failed to walk manifest directory", "path", path, "error", err)
				return nil, err
			}
			files = append(files, found...)
		} else {
			files = append(files, path)
		}
	}

	if len(files) == 0 {
		logger.Warn("No .hcl manifest files found", "paths", paths)
		return model, nil
	}
	logger.Debug("Found manifest files to load", "files", files)

	for _, filePath := range files {
		hclFile, diags := l.parser.ParseHCLFile(filePath)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse manifest %s: %w", filePath, diags)
		}
		if err := l.translateFile(ctx, model, hclFile, filePath); err != nil {
			return nil, err
		}
		logger.Debug("Loaded manifest file", "file", filePath)
	}

	logger.Info("Manifests loaded successfully.", "cast_definitions", len(model.Casts))
	return model, nil
}
