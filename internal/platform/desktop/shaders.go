package desktop

import (
	"github.com/vovakirdan/robotrun/internal/gfx"
)

const vertexShader = `
#version 410 core
layout(location = 0) in vec3 position;

uniform mat4 u_model_matrix;

void main() {
	gl_Position = u_model_matrix * vec4(position, 1.0);
}
` + "\x00"

const baseFragmentShader = `
#version 410 core
uniform vec4 u_color;

out vec4 fragColor;

void main() {
	fragColor = u_color;
}
` + "\x00"

const magmaFragmentShader = `
#version 410 core
uniform vec4 u_color;
uniform float u_time;
uniform vec2 u_resolution;

out vec4 fragColor;

float hash(vec2 p) {
	return fract(sin(dot(p, vec2(127.1, 311.7))) * 43758.5453);
}

float noise(vec2 p) {
	vec2 i = floor(p);
	vec2 f = fract(p);
	vec2 u = f * f * (3.0 - 2.0 * f);
	return mix(mix(hash(i), hash(i + vec2(1.0, 0.0)), u.x),
	           mix(hash(i + vec2(0.0, 1.0)), hash(i + vec2(1.0, 1.0)), u.x), u.y);
}

void main() {
	vec2 st = gl_FragCoord.xy / u_resolution.xy;
	float t = u_time * 200.0;
	float n = noise(st * 12.0 + vec2(0.0, -t)) * 0.6 + noise(st * 24.0 + vec2(t, -2.0 * t)) * 0.4;
	vec3 flame = mix(vec3(0.8, 0.1, 0.0), vec3(1.0, 0.8, 0.1), n);
	fragColor = vec4(mix(flame, u_color.rgb, 0.2), u_color.a);
}
` + "\x00"

// fragmentShaders maps program names to fragment sources. All programs
// share the vertex shader.
var fragmentShaders = map[string]string{
	gfx.ShaderBase:  baseFragmentShader,
	gfx.ShaderMagma: magmaFragmentShader,
}
