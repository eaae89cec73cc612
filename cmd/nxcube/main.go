// nxcube is a toolbox for NxNxN twisty cube puzzles.
//
// Usage:
//
//	nxcube show [moves...]       - Apply a sequence to a solved cube and print it
//	nxcube scramble              - Scramble a cube and print the sequence
//	nxcube algs [name]           - List or apply catalogue algorithms
//	nxcube record                - Record a move session from stdin
//	nxcube replay <session-id>   - Replay a recorded session
//	nxcube sessions              - List recorded sessions
//	nxcube play                  - Interactive terminal cube
//
// Global flags:
//
//	--size <n>     - Cube size (default 3)
//	--db <path>    - Session database path (default: ~/.nxcube/nxcube.db)
//	--config <p>   - Config file path
//	--verbose      - Enable verbose output
package main

import "github.com/nxcube/nxcube/internal/cli"

func main() {
	cli.Execute()
}
