// Package terminal provides direct ANSI terminal control for the weather scene.
//
// Features:
//   - Raw mode, alternate screen and cursor management via golang.org/x/term
//   - Color capability detection (none, basic, 256, true color) and adaptation
//   - An ANSI emitter that writes cursor moves, SGR colors and runes through one buffered writer
//   - Raw stdin input parsing reduced to the keys the scene reacts to
//   - SIGWINCH resize detection with a single pending event slot
//   - Clean terminal restoration on exit/panic
//
// Colors are tcell.Color values: the 16 named palette colors, 256-color indices
// and RGB values. No terminfo lookup is performed; sequences are xterm-compatible.
package terminal
