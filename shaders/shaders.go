// Package shaders holds the WGSL programs for the instanced 2D
// primitive pipelines.
package shaders

import (
	_ "embed"
)

//go:embed rectangle.wgsl
var RectangleWGSL string

//go:embed circle.wgsl
var CircleWGSL string
