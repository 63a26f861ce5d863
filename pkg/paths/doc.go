// Package paths resolves the root directories meshdeps builds names from.
//
// A PathSet is resolved once per run from the configuration, a user name and
// an OS family, and is immutable afterwards:
//
//   - MeshGenerator: the gmsh executable
//   - SolverRoot:    the DPG solver checkout
//   - Meshes:        SolverRoot + layout.meshes
//   - Cases:         SolverRoot + layout.cases
//   - ControlFiles:  Cases + layout.control_files
//
// Every directory ends in "/". Mesh and control-file names are assembled by
// plain concatenation onto these roots, so the separator is part of the root.
//
// # Usage
//
//	cfg, _ := config.Load(config.LoadOptions{})
//	p, err := paths.New(cfg, paths.Options{User: "PZwan", OS: paths.DetectOS()})
//	if err != nil {
//	    return err
//	}
//	p.Meshes()       // /home/philip/Desktop/research/codes/DPGSolver/meshes/
//	p.ControlFiles() // /home/philip/Desktop/research/codes/DPGSolver/cases/control_files/
package paths
