// Package render turns a maze.Grid into text and pictures: the ASCII wall
// drawing (optionally with start, end and a solution path), a PNG image, and
// an animated GIF of the solver's wavefront.
//
// Rendering only reads the grid through Width, Height and HasPassage, so it
// works on any grid, perfect or not.
package render
