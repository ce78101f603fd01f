// Package render produces visualizations of edge magnitude grids.
package render
