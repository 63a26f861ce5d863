package types

import (
	"github.com/arthur-debert/meshdeps/pkg/catalog"
	"github.com/arthur-debert/meshdeps/pkg/mesh"
)

// ResolveResult is a resolved test-case family
type ResolveResult struct {
	Family           string         `json:"family" yaml:"family"`
	Canonical        string         `json:"canonical" yaml:"canonical"`
	VarName          string         `json:"var_name" yaml:"var_name"`
	ControlFilesPath string         `json:"control_files_path" yaml:"control_files_path"`
	MeshNames        []string       `json:"mesh_names" yaml:"mesh_names"`
	Variants         []mesh.Variant `json:"variants" yaml:"variants"`
	Deps             string         `json:"deps" yaml:"deps"`
	Outputs          string         `json:"outputs" yaml:"outputs"`
	OutputsAbs       string         `json:"outputs_abs" yaml:"outputs_abs"`
}

// ListKind names what a ListResult holds
type ListKind string

const (
	ListDeps    ListKind = "deps"
	ListOutputs ListKind = "outputs"
)

// ListResult is one of the space-separated lists of a family, as the build
// system consumes it
type ListResult struct {
	Kind    ListKind `json:"kind" yaml:"kind"`
	VarName string   `json:"var_name" yaml:"var_name"`
	Value   string   `json:"value" yaml:"value"`
}

// FamilyCatalog is the catalog of one family
type FamilyCatalog struct {
	VarName   string          `json:"var_name" yaml:"var_name"`
	Canonical string          `json:"canonical" yaml:"canonical"`
	Dir       string          `json:"dir" yaml:"dir"`
	Entries   []catalog.Entry `json:"entries" yaml:"entries"`
}

// CatalogResult lists family catalogs
type CatalogResult struct {
	Families []FamilyCatalog `json:"families" yaml:"families"`
}

// PathsResult is a resolved path set
type PathsResult struct {
	User          string `json:"user" yaml:"user"`
	OS            string `json:"os" yaml:"os"`
	MeshGenerator string `json:"mesh_generator" yaml:"mesh_generator"`
	SolverRoot    string `json:"solver_root" yaml:"solver_root"`
	Meshes        string `json:"meshes" yaml:"meshes"`
	Cases         string `json:"cases" yaml:"cases"`
	ControlFiles  string `json:"control_files" yaml:"control_files"`
}

// GenConfigResult is the output of gen-config
type GenConfigResult struct {
	ConfigContent string   `json:"config_content" yaml:"config_content"`
	FilesWritten  []string `json:"files_written" yaml:"files_written"`
}
