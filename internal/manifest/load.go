// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
package manifest

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/vk/skirmish/internal/ctxlog"
)

// Load reads option declarations from every given path. A path may be a
// single .hcl file or a directory, which is searched recursively. The
// returned declarations keep file order within a file and path order across
// paths.
func Load(ctx context.Context, paths ...string) ([]Declaration, error) {
	logger := ctxlog.FromContext(ctx)

	var files []string
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("manifest path %s: %w", path, err)
		}
		if !info.IsDir() {
			files = append(files, path)
			continue
		}
		found, err := findHCLFiles(path)
		if err != nil {
			return nil, fmt.Errorf("walking manifest directory %s: %w", path, err)
		}
		files = append(files, found...)
	}
	if len(files) == 0 {
		logger.Warn("No manifest files found.", "paths", paths)
		return nil, nil
	}
	logger.Debug("Found manifest files to load.", "files", files)

	parser := hclparse.NewParser()
	seen := make(map[string]string)
	var decls []Declaration
	for _, file := range files {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse manifest %s: %w", file, diags)
		}
		fileDecls, diags := ParseFile(hclFile, seen)
		if diags.HasErrors() {
			return nil, fmt.Errorf("invalid option manifest %s: %w", file, diags)
		}
		decls = append(decls, fileDecls...)
	}

	logger.Info("Option manifest loaded.", "files", len(files), "options", len(decls))
	return decls, nil
}

// ParseBytes decodes declarations from in-memory manifest source, e.g. the
// default table embedded in the binary.
func ParseBytes(ctx context.Context, src []byte, filename string) ([]Declaration, error) {
	logger := ctxlog.FromContext(ctx)

	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse manifest %s: %w", filename, diags)
	}
	decls, diags := ParseFile(hclFile, make(map[string]string))
	if diags.HasErrors() {
		return nil, fmt.Errorf("invalid option manifest %s: %w", filename, diags)
	}

	logger.Debug("Embedded option manifest parsed.", "file", filename, "options", len(decls))
	return decls, nil
}

func findHCLFiles(root string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(d.Name(), ".hcl") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}
