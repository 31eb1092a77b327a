// Package scatter renders a reduced two-column table as a 2-D scatter
// plot, one glyph color per class label, and saves it as an image file.
//
// It is the presentation tail of the pipeline: correctness of the numeric
// stages never depends on it. Rendering delegates to gonum.org/v1/plot;
// the output format follows the file extension (.png, .svg, .pdf, ...).
package scatter
