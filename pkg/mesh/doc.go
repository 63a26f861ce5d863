// Package mesh derives the names of the mesh files a control file produces.
//
// A mesh variant is a catalog entry resolved against its control file. The
// output name is built from the control-file settings alone:
//
//	<geometry>/<pde>/[<pdeSpec>/][<geomSpec>/]<geometry><dim>D_[<curving>]<type><level>x.msh
//
// Specifiers equal to NONE are left out, and so is a curving starting with
// "Straight". Names are relative to the meshes root; the absolute forms are
// the root with the relative name appended.
package mesh
