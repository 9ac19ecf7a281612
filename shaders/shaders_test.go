package shaders

import (
	"strings"
	"testing"
)

func TestShadersEmbedded(t *testing.T) {
	for name, code := range map[string]string{
		"rectangle": RectangleWGSL,
		"circle":    CircleWGSL,
	} {
		if strings.TrimSpace(code) == "" {
			t.Fatalf("%s shader is empty", name)
		}
		// entry points the pipelines are created against
		if !strings.Contains(code, "fn vertex(") {
			t.Errorf("%s shader is missing the vertex entry point", name)
		}
		if !strings.Contains(code, "fn pixel(") {
			t.Errorf("%s shader is missing the pixel entry point", name)
		}
		// binding contract: camera uniform at group 0, instances at group 1
		if !strings.Contains(code, "@group(0) @binding(0)") {
			t.Errorf("%s shader is missing the camera binding", name)
		}
		if !strings.Contains(code, "@group(1) @binding(0)") {
			t.Errorf("%s shader is missing the instance binding", name)
		}
	}
}

func TestCircleShaderDiscards(t *testing.T) {
	if !strings.Contains(CircleWGSL, "discard") {
		t.Error("circle shader must discard fragments outside the unit disk")
	}
	if strings.Contains(RectangleWGSL, "discard") {
		t.Error("rectangle shader must not discard")
	}
}
