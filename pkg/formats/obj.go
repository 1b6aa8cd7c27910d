// OBJ (polygon mesh) parser.
package formats

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/Faultbox/sceneview/pkg/math"
)

// Face is an ordered polygon of three or more vertices.
// Normals has one entry per vertex. When DerivedNormal is set every entry holds the
// same geometric normal computed from the first three vertices.
type Face struct {
	VertexIndices []int       // 0-based indices into OBJ.Vertices
	Vertices      []math.Vec3 // resolved positions, source order
	Normals       []math.Vec3
	DerivedNormal bool
}

// Mesh is a run of faces sharing one material.
type Mesh struct {
	Material *Material
	Faces    []Face
}

// OBJ is a parsed mesh description.
type OBJ struct {
	Vertices     []math.Vec3
	Normals      []math.Vec3
	Meshes       []*Mesh
	MaterialLibs []string // names from `mtllib` records, in order
}

// objState is the parser state threaded through the records.
type objState struct {
	obj         *OBJ
	materials   map[string]*Material
	fallback    *Material // shared by every mesh without a known material
	currentMesh *Mesh
	currentName string
}

// ParseOBJ parses a mesh description. Faces are bound to entries of materials by
// `usemtl` name; unknown names and faces before any `usemtl` use a default material.
// Face indices resolve against the vertices and normals declared so far.
func ParseOBJ(data []byte, materials map[string]*Material) (*OBJ, error) {
	recs, err := readRecords(data)
	if err != nil {
		return nil, err
	}

	st := &objState{
		obj:       &OBJ{},
		materials: materials,
		fallback:  NewMaterial(""),
	}
	for _, rec := range recs {
		if err := st.apply(rec); err != nil {
			return nil, err
		}
	}
	return st.obj, nil
}

// ParseOBJFile reads and parses a mesh description from disk.
func ParseOBJFile(path string, materials map[string]*Material) (*OBJ, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading OBJ file: %w", err)
	}
	return ParseOBJ(data, materials)
}

// apply folds one record into the state.
func (st *objState) apply(rec record) error {
	switch rec.tag {
	case "v":
		v, err := rec.vec3()
		if err != nil {
			return err
		}
		st.obj.Vertices = append(st.obj.Vertices, v)

	case "vn":
		n, err := rec.vec3()
		if err != nil {
			return err
		}
		st.obj.Normals = append(st.obj.Normals, n)

	case "usemtl":
		if len(rec.fields) < 1 {
			return rec.malformed("missing material name")
		}
		st.currentName = rec.fields[0]
		st.openMesh(st.lookup(st.currentName))

	case "mtllib":
		st.obj.MaterialLibs = append(st.obj.MaterialLibs, rec.fields...)

	case "f":
		face, err := st.parseFace(rec)
		if err != nil {
			return err
		}
		if st.currentMesh == nil {
			st.openMesh(st.fallback)
		}
		st.currentMesh.Faces = append(st.currentMesh.Faces, face)
	}
	return nil
}

func (st *objState) lookup(name string) *Material {
	if m, ok := st.materials[name]; ok {
		return m
	}
	return st.fallback
}

func (st *objState) openMesh(mat *Material) {
	st.currentMesh = &Mesh{Material: mat}
	st.obj.Meshes = append(st.obj.Meshes, st.currentMesh)
}

// parseFace resolves `f` tokens of the form v, v/vt, v//vn or v/vt/vn.
func (st *objState) parseFace(rec record) (Face, error) {
	if len(rec.fields) < 3 {
		return Face{}, rec.malformed("face needs at least 3 vertices, got %d", len(rec.fields))
	}

	n := len(rec.fields)
	face := Face{
		VertexIndices: make([]int, 0, n),
		Vertices:      make([]math.Vec3, 0, n),
		Normals:       make([]math.Vec3, 0, n),
	}

	supplied := true
	for _, tok := range rec.fields {
		parts := strings.Split(tok, "/")

		vi, err := st.resolve(rec, parts[0], len(st.obj.Vertices), "vertex")
		if err != nil {
			return Face{}, err
		}
		face.VertexIndices = append(face.VertexIndices, vi)
		face.Vertices = append(face.Vertices, st.obj.Vertices[vi])

		if len(parts) > 2 && parts[2] != "" && len(st.obj.Normals) > 0 {
			ni, err := st.resolve(rec, parts[2], len(st.obj.Normals), "normal")
			if err != nil {
				return Face{}, err
			}
			face.Normals = append(face.Normals, st.obj.Normals[ni])
		} else {
			supplied = false
		}
	}

	if !supplied {
		derived := FaceNormal(face.Vertices[0], face.Vertices[1], face.Vertices[2])
		face.Normals = face.Normals[:0]
		for range face.Vertices {
			face.Normals = append(face.Normals, derived)
		}
		face.DerivedNormal = true
	}
	return face, nil
}

// resolve converts a 1-based index token into a 0-based index below count.
func (st *objState) resolve(rec record, tok string, count int, kind string) (int, error) {
	idx, err := strconv.Atoi(tok)
	if err != nil {
		return 0, rec.malformed("%s index %q is not an integer", kind, tok)
	}
	if idx < 1 || idx > count {
		return 0, fmt.Errorf("line %d: %w: %s index %d, have %d", rec.line, ErrIndexOutOfRange, kind, idx, count)
	}
	return idx - 1, nil
}

// DegenerateNormal is the normal given to faces whose first three vertices
// are collinear or coincident.
var DegenerateNormal = math.Vec3{Z: 1}

// FaceNormal returns normalize((b-a) x (c-a)). Collinear points have no plane
// and get DegenerateNormal, so derived normals are always unit length.
func FaceNormal(a, b, c math.Vec3) math.Vec3 {
	n := b.Sub(a).Cross(c.Sub(a))
	if n.Length() < 1e-12 {
		return DegenerateNormal
	}
	return n.Normalize()
}
