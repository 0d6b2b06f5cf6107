// Package tube extrudes a closed polygonal curve into the vertex data of
// a tube mesh, for display consumers.
//
// Frames are built by parallel transport: at each vertex the tangent is
// estimated from the directions to both neighbors, and the ring basis is
// carried along from the previous vertex to avoid twisting. One ring of
// vertices is emitted per curve vertex plus a closing ring, and each
// quad between consecutive rings becomes two triangles.
//
// The package emits raw triangle vertices (no indexing, normals, or
// UVs); turning them into a GPU buffer is the caller's concern.
package tube
