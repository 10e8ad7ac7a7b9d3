// Package catalog - HCL catalog loader
// Vendor profiles are authored as vendor "<id>" { ... } blocks in .hcl files.
package catalog

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	"vendor-tco/internal/errors"
)

type catalogFile struct {
	Vendors []*RawVendor `hcl:"vendor,block"`
}

// evalContext exposes the catalog enumerations to HCL authors, so a profile
// can say complexity = complexity.high instead of a bare string.
func evalContext() *hcl.EvalContext {
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"complexity": cty.ObjectVal(map[string]cty.Value{
				"low":    cty.StringVal("low"),
				"medium": cty.StringVal("medium"),
				"high":   cty.StringVal("high"),
			}),
			"deployment": cty.ObjectVal(map[string]cty.Value{
				"cloud":  cty.StringVal("cloud"),
				"hybrid": cty.StringVal("hybrid"),
				"onprem": cty.StringVal("on-prem"),
			}),
			"category": cty.ObjectVal(map[string]cty.Value{
				"leader":     cty.StringVal("leader"),
				"visionary":  cty.StringVal("visionary"),
				"challenger": cty.StringVal("challenger"),
				"niche":      cty.StringVal("niche"),
			}),
		},
	}
}

// ParseHCL parses vendor blocks from HCL source
func ParseHCL(filename string, src []byte) ([]*RawVendor, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, errors.Catalog("failed to parse catalog file "+filename, diags)
	}

	var cf catalogFile
	if diags := gohcl.DecodeBody(file.Body, evalContext(), &cf); diags.HasErrors() {
		return nil, errors.Catalog("failed to decode catalog file "+filename, diags)
	}
	return cf.Vendors, nil
}

// LoadHCLFile loads vendor blocks from one .hcl file
func LoadHCLFile(path string) ([]*RawVendor, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Catalog("failed to read catalog file "+path, err)
	}
	return ParseHCL(path, src)
}

// LoadHCL loads vendor blocks from a file or from every .hcl file in a
// directory, and returns a catalog built from them.
func LoadHCL(path string) (*InMemoryCatalog, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, errors.Catalog("catalog path not accessible: "+path, err)
	}

	var raw []*RawVendor
	if info.IsDir() {
		entries, err := os.ReadDir(path)
		if err != nil {
			return nil, errors.Catalog("failed to read catalog directory "+path, err)
		}
		for _, entry := range entries {
			if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".hcl") {
				continue
			}
			vendors, err := LoadHCLFile(filepath.Join(path, entry.Name()))
			if err != nil {
				return nil, err
			}
			raw = append(raw, vendors...)
		}
	} else {
		raw, err = LoadHCLFile(path)
		if err != nil {
			return nil, err
		}
	}

	return NewInMemoryCatalog(raw)
}
