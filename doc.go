// Package nxcube models NxNxN twisty cube puzzles of any size from 2 up.
//
// A cube is a collection of visible cubies ("pieces"), each carrying up
// to six directional colours, positioned in a coordinate system derived
// from the cube size: odd cubes have integer coordinates with a centre
// layer at zero, even cubes have half-integer coordinates with no centre
// layer. Layer moves, inner-slice moves, wide moves and whole-cube
// rotations all reduce to the same per-piece quarter-turn transform.
//
// # Quick start
//
//	cube, err := nxcube.New(3)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Single moves or whole sequences
//	cube.Rotate("R")
//	cube.Apply("T' f2 rw x")
//
//	fmt.Println(cube.Render())
//	fmt.Println("Solved:", cube.IsSolved())
//
// # Notation
//
// Tokens follow <face><depth><angle>. Uppercase F, B, L, R, T, D turn
// the outer layer of a face. A lowercase letter repeated n times turns
// the single layer n deep behind that face ("ff" is the second inner
// front slice); a lowercase run followed by "w" is the wide variant
// covering every layer down to that depth. The letters x, y and z rotate
// the whole cube. A trailing "'" turns counter-clockwise and "2" turns
// 180 degrees; no suffix is clockwise as seen from the face. The legal
// depth range depends on the cube size, and LegalMoves enumerates the
// complete token set for a size.
//
// # Algorithms
//
// A small catalogue of named sequences (sexy move, T-perm, checkerboard,
// ...) ships with the package:
//
//	cube.ApplyAlgorithm("checkerboard")
package nxcube
