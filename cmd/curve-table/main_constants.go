package main

// Default command-line flag values
const (
	defaultEase    = "sin-in-out"
	defaultSamples = 11  // 0.0, 0.1, ... 1.0
	defaultFrom    = 0.0 // Curve start value
	defaultTo      = 1.0 // Curve end value
)

// Table rendering
const (
	barWidth     = 40 // Characters for a full-scale bar
	minSamples   = 2
	demoSamples  = 5
	demoExponent = 3.0
)
