//go:build js
// +build js

package liquid

import (
	"fmt"

	"github.com/gopherjs/gopherjs/js"
)

type webGLBackend struct {
	el       *js.Object
	gl       *js.Object
	program  *js.Object
	uniforms map[string]*js.Object
	width    int
	height   int
}

func missing(o *js.Object) bool {
	return o == nil || o == js.Undefined
}

// NewWebGLBackend compiles the liquid shaders on el's WebGL context.
func NewWebGLBackend(el *js.Object) (Backend, error) {
	if missing(el) {
		return nil, ErrNoContext
	}
	gl := el.Call("getContext", "webgl", map[string]interface{}{"premultipliedAlpha": true})
	if missing(gl) {
		gl = el.Call("getContext", "experimental-webgl")
	}
	if missing(gl) {
		return nil, ErrNoContext
	}

	vs, err := compileShader(gl, gl.Get("VERTEX_SHADER"), VertexShader)
	if err != nil {
		return nil, err
	}
	fs, err := compileShader(gl, gl.Get("FRAGMENT_SHADER"), FragmentShader)
	if err != nil {
		return nil, err
	}

	program := gl.Call("createProgram")
	gl.Call("attachShader", program, vs)
	gl.Call("attachShader", program, fs)
	gl.Call("linkProgram", program)
	if !gl.Call("getProgramParameter", program, gl.Get("LINK_STATUS")).Bool() {
		return nil, fmt.Errorf("%w: %s", ErrLink, gl.Call("getProgramInfoLog", program).String())
	}
	gl.Call("useProgram", program)

	gl.Call("enable", gl.Get("BLEND"))
	gl.Call("blendFunc", gl.Get("ONE"), gl.Get("ONE_MINUS_SRC_ALPHA"))

	buffer := gl.Call("createBuffer")
	gl.Call("bindBuffer", gl.Get("ARRAY_BUFFER"), buffer)
	gl.Call("bufferData", gl.Get("ARRAY_BUFFER"), js.Global.Get("Float32Array").New(quad), gl.Get("STATIC_DRAW"))

	pos := gl.Call("getAttribLocation", program, "a_position")
	gl.Call("enableVertexAttribArray", pos)
	gl.Call("vertexAttribPointer", pos, 2, gl.Get("FLOAT"), false, 0, 0)

	b := &webGLBackend{
		el:       el,
		gl:       gl,
		program:  program,
		uniforms: make(map[string]*js.Object, len(uniformNames)),
	}
	for _, name := range uniformNames {
		b.uniforms[name] = gl.Call("getUniformLocation", program, name)
	}
	return b, nil
}

func compileShader(gl, kind *js.Object, source string) (*js.Object, error) {
	shader := gl.Call("createShader", kind)
	gl.Call("shaderSource", shader, source)
	gl.Call("compileShader", shader)
	if !gl.Call("getShaderParameter", shader, gl.Get("COMPILE_STATUS")).Bool() {
		return nil, fmt.Errorf("%w: %s", ErrCompile, gl.Call("getShaderInfoLog", shader).String())
	}
	return shader, nil
}

func (b *webGLBackend) Resize(width, height int) {
	b.width, b.height = width, height
	b.el.Set("width", width)
	b.el.Set("height", height)
	b.gl.Call("viewport", 0, 0, width, height)
}

func (b *webGLBackend) Draw(u Uniforms, seconds float64) {
	gl := b.gl
	gl.Call("clearColor", 0, 0, 0, 0)
	gl.Call("clear", gl.Get("COLOR_BUFFER_BIT"))

	gl.Call("uniform2f", b.uniforms["u_resolution"], b.width, b.height)
	gl.Call("uniform1f", b.uniforms["u_time"], seconds)
	gl.Call("uniform3f", b.uniforms["u_baseColor"], u.BaseColor.R, u.BaseColor.G, u.BaseColor.B)
	gl.Call("uniform3f", b.uniforms["u_secondaryColor"], u.SecondaryColor.R, u.SecondaryColor.G, u.SecondaryColor.B)
	gl.Call("uniform1f", b.uniforms["u_viscosity"], u.Viscosity)
	gl.Call("uniform1f", b.uniforms["u_flowSpeed"], u.FlowSpeed)
	gl.Call("uniform1f", b.uniforms["u_fillLevel"], u.FillLevel)
	gl.Call("uniform1f", b.uniforms["u_foamHeight"], u.FoamHeight)
	gl.Call("uniform1f", b.uniforms["u_hasSwirl"], u.HasSwirl)

	gl.Call("drawArrays", gl.Get("TRIANGLE_STRIP"), 0, 4)
}
