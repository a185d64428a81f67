// Package render draws frequency axes and topographic maps.
//
// It only reads what the plot data types expose: domain, traces, extent,
// bands, labels and sampled grids. PNG output goes through gonum/plot,
// interactive HTML through go-echarts.
//
// Map coordinates are flipped vertically on output so the nose (negative Y
// on the scalp plane) points up.
package render
