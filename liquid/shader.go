package liquid

// VertexShader positions the full-screen quad.
const VertexShader = `
attribute vec2 a_position;

void main() {
    gl_Position = vec4(a_position, 0.0, 1.0);
}
`

// FragmentShader is the GPU twin of Shade. Output is premultiplied and
// expects blendFunc(ONE, ONE_MINUS_SRC_ALPHA).
const FragmentShader = `
precision mediump float;

uniform vec2 u_resolution;
uniform float u_time;
uniform vec3 u_baseColor;
uniform vec3 u_secondaryColor;
uniform float u_viscosity;
uniform float u_flowSpeed;
uniform float u_fillLevel;
uniform float u_foamHeight;
uniform float u_hasSwirl;

const float WAVE = 0.035;
const float STROKE = 0.008;

float hash(vec2 p) {
    return fract(sin(dot(p, vec2(127.1, 311.7))) * 43758.5453);
}

float noise(vec2 p) {
    vec2 i = floor(p);
    vec2 f = fract(p);
    f = f * f * (3.0 - 2.0 * f);
    return mix(mix(hash(i), hash(i + vec2(1.0, 0.0)), f.x),
               mix(hash(i + vec2(0.0, 1.0)), hash(i + vec2(1.0, 1.0)), f.x), f.y);
}

float fbm(vec2 p) {
    float sum = 0.0;
    float amp = 0.5;
    for (int i = 0; i < 4; i++) {
        sum += amp * noise(p);
        p *= 2.02;
        amp *= 0.5;
    }
    return sum / 0.9375;
}

float tri(float v) {
    return abs(mod(v, 2.0) - 1.0);
}

void main() {
    if (u_fillLevel < 0.01) {
        gl_FragColor = vec4(0.0);
        return;
    }

    vec2 uv = gl_FragCoord.xy / u_resolution;
    float t = u_time * u_flowSpeed * 0.3;

    float surface = u_fillLevel
        + tri(uv.x * 8.0 + t * 0.5) * WAVE
        + tri(uv.x * 12.0 - t * 0.3) * WAVE * 0.5
        - WAVE * 0.75;

    float inLiquid = smoothstep(0.0, 0.005, uv.y) * smoothstep(surface + 0.003, surface - 0.003, uv.y);
    float inStroke = smoothstep(surface - STROKE - 0.002, surface - STROKE, uv.y)
                   * smoothstep(surface + 0.002, surface - 0.002, uv.y);

    vec3 color = u_baseColor;

    if (u_hasSwirl > 0.5) {
        vec2 d = uv - vec2(0.5, u_fillLevel * 0.5);
        float dist = length(d);
        float angle = atan(d.y, d.x);
        float spiral = sin(angle * 4.0 + dist * 15.0 - t * 1.2) * 0.5 + 0.5;
        float mask = smoothstep(0.05, 0.15, dist) * smoothstep(0.5, 0.2, dist) * spiral;
        float cream = fbm(vec2(angle * 2.0 + t * 0.5, dist * 5.0 - t * 0.3)) * mask;
        color = mix(color, u_secondaryColor, cream * 0.5);
    }

    color *= 0.85 + smoothstep(0.0, surface, uv.y) * 0.15;
    color += noise(vec2(uv.x * 20.0 + t, uv.y * 10.0)) * 0.15 * smoothstep(surface - 0.15, surface, uv.y);
    color = mix(color, color * 1.1, fbm(uv * 3.0 + t * 0.2) * 0.2);

    vec3 outColor = vec3(0.0);
    float alpha = 0.0;
    if (inLiquid > 0.01) {
        outColor = color;
        alpha = inLiquid * 0.4;
    }
    if (inStroke > 0.01) {
        outColor = mix(outColor, u_secondaryColor * 0.7, inStroke * 0.9);
        alpha = max(alpha, inStroke * 0.6);
    }

    gl_FragColor = vec4(outColor * alpha, alpha);
}
`

// uniformNames lists every uniform the fragment shader declares.
var uniformNames = []string{
	"u_resolution",
	"u_time",
	"u_baseColor",
	"u_secondaryColor",
	"u_viscosity",
	"u_flowSpeed",
	"u_fillLevel",
	"u_foamHeight",
	"u_hasSwirl",
}

// quad is a full-screen triangle strip in clip space.
var quad = []float32{
	-1, -1,
	1, -1,
	-1, 1,
	1, 1,
}
