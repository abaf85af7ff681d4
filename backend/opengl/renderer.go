// Package opengl draws calendarview layouts with OpenGL 4.1 and feeds GLFW
// input back to the engine.
package opengl

import (
	"errors"
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/go-theft-auto/calendarview"
)

// Renderer draws calendarview draw lists. Every textured command samples the
// glyph atlas; everything else is a flat colored quad.
type Renderer struct {
	program  uint32
	vao, vbo uint32
	ebo      uint32

	projLoc     int32
	atlasLoc    int32
	texturedLoc int32

	width, height int
	atlas         *calendarview.FontAtlas
}

const vertexShaderSource = `
#version 410 core
layout (location = 0) in vec2 aPos;
layout (location = 1) in vec2 aTexCoord;
layout (location = 2) in vec4 aColor;

out vec2 uv;
out vec4 tint;

uniform mat4 projection;

void main() {
    gl_Position = projection * vec4(aPos, 0.0, 1.0);
    uv = aTexCoord;
    tint = aColor;
}
` + "\x00"

// The atlas stores glyph coverage in the red channel.
const fragmentShaderSource = `
#version 410 core
in vec2 uv;
in vec4 tint;

out vec4 fragColor;

uniform sampler2D atlas;
uniform bool textured;

void main() {
    float coverage = textured ? texture(atlas, uv).r : 1.0;
    fragColor = vec4(tint.rgb, tint.a * coverage);
}
` + "\x00"

// NewRenderer creates a renderer for a framebuffer of the given size and
// uploads the glyph atlas. A GL context must be current.
func NewRenderer(width, height int) (*Renderer, error) {
	program, err := linkProgram(vertexShaderSource, fragmentShaderSource)
	if err != nil {
		return nil, fmt.Errorf("create shader: %w", err)
	}
	r := &Renderer{
		program: program,
		width:   width,
		height:  height,
		atlas:   calendarview.NewFontAtlas(),
	}
	r.projLoc = gl.GetUniformLocation(program, gl.Str("projection\x00"))
	r.atlasLoc = gl.GetUniformLocation(program, gl.Str("atlas\x00"))
	r.texturedLoc = gl.GetUniformLocation(program, gl.Str("textured\x00"))

	r.createBuffers()

	r.atlas.TextureID = uploadAtlas(r.atlas)
	if r.atlas.TextureID == 0 {
		r.Delete()
		return nil, errors.New("create font texture: no texture name")
	}
	return r, nil
}

// createBuffers sets up the vertex array for calendarview.Vertex.
func (r *Renderer) createBuffers() {
	gl.GenVertexArrays(1, &r.vao)
	gl.BindVertexArray(r.vao)
	gl.GenBuffers(1, &r.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.GenBuffers(1, &r.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.ebo)

	var v calendarview.Vertex
	stride := int32(unsafe.Sizeof(v))
	gl.VertexAttribPointerWithOffset(0, 2, gl.FLOAT, false, stride, unsafe.Offsetof(v.Pos))
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(1, 2, gl.FLOAT, false, stride, unsafe.Offsetof(v.TexCoord))
	gl.EnableVertexAttribArray(1)
	// Packed RGBA bytes, normalized to [0, 1].
	gl.VertexAttribPointerWithOffset(2, 4, gl.UNSIGNED_BYTE, true, stride, unsafe.Offsetof(v.Color))
	gl.EnableVertexAttribArray(2)

	gl.BindVertexArray(0)
}

// Resize updates the framebuffer size used for projection and clipping.
func (r *Renderer) Resize(width, height int) {
	r.width = width
	r.height = height
}

// DrawLayout clears the viewport to the style background, paints result into
// a pooled draw list, and renders it.
func (r *Renderer) DrawLayout(result calendarview.LayoutResult, viewport calendarview.Vec2, style *calendarview.Style) error {
	dl := calendarview.AcquireDrawList()
	defer calendarview.ReleaseDrawList(dl)

	dl.AddRect(calendarview.Rect{W: viewport.X, H: viewport.Y}, style.BackgroundColor)
	calendarview.Paint(dl, result, viewport, style, r.atlas)
	if err := r.Render(dl); err != nil {
		return fmt.Errorf("render calendar: %w", err)
	}
	return nil
}

// Render draws dl and restores the GL state it touched.
func (r *Renderer) Render(dl *calendarview.DrawList) error {
	if dl == nil || len(dl.VtxBuffer) == 0 {
		return nil
	}
	dl.Finalize()

	saved := saveState()
	defer saved.restore()

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.Disable(gl.CULL_FACE)
	gl.Disable(gl.DEPTH_TEST)
	gl.Enable(gl.SCISSOR_TEST)

	gl.UseProgram(r.program)
	proj := screenProjection(float32(r.width), float32(r.height))
	gl.UniformMatrix4fv(r.projLoc, 1, false, &proj[0])
	gl.ActiveTexture(gl.TEXTURE0)
	gl.Uniform1i(r.atlasLoc, 0)

	gl.BindVertexArray(r.vao)
	defer gl.BindVertexArray(0)

	var v calendarview.Vertex
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(dl.VtxBuffer)*int(unsafe.Sizeof(v)), gl.Ptr(dl.VtxBuffer), gl.STREAM_DRAW)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(dl.IdxBuffer)*2, gl.Ptr(dl.IdxBuffer), gl.STREAM_DRAW)

	for _, cmd := range dl.CmdBuffer {
		if cmd.ElemCount == 0 {
			continue
		}
		x, y, w, h, ok := scissorBox(cmd.ClipRect, r.height)
		if !ok {
			continue
		}
		gl.Scissor(x, y, w, h)

		if cmd.TextureID != 0 {
			gl.BindTexture(gl.TEXTURE_2D, cmd.TextureID)
			gl.Uniform1i(r.texturedLoc, 1)
		} else {
			gl.Uniform1i(r.texturedLoc, 0)
		}
		gl.DrawElementsBaseVertexWithOffset(gl.TRIANGLES, int32(cmd.ElemCount), gl.UNSIGNED_SHORT,
			uintptr(cmd.IndexOffset)*2, int32(cmd.VertexOffset))
	}
	return nil
}

// Delete releases OpenGL resources.
func (r *Renderer) Delete() {
	if r.atlas != nil && r.atlas.TextureID != 0 {
		gl.DeleteTextures(1, &r.atlas.TextureID)
		r.atlas.TextureID = 0
	}
	if r.ebo != 0 {
		gl.DeleteBuffers(1, &r.ebo)
	}
	if r.vbo != 0 {
		gl.DeleteBuffers(1, &r.vbo)
	}
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
	}
	if r.program != 0 {
		gl.DeleteProgram(r.program)
	}
}

// glState is the subset of GL state Render changes.
type glState struct {
	program          int32
	blendSrc         int32
	blendDst         int32
	scissorBox       [4]int32
	blend, depth     bool
	cull, scissoring bool
}

func saveState() glState {
	var s glState
	gl.GetIntegerv(gl.CURRENT_PROGRAM, &s.program)
	gl.GetIntegerv(gl.BLEND_SRC_ALPHA, &s.blendSrc)
	gl.GetIntegerv(gl.BLEND_DST_ALPHA, &s.blendDst)
	gl.GetIntegerv(gl.SCISSOR_BOX, &s.scissorBox[0])
	s.blend = gl.IsEnabled(gl.BLEND)
	s.depth = gl.IsEnabled(gl.DEPTH_TEST)
	s.cull = gl.IsEnabled(gl.CULL_FACE)
	s.scissoring = gl.IsEnabled(gl.SCISSOR_TEST)
	return s
}

func (s glState) restore() {
	gl.UseProgram(uint32(s.program))
	gl.BlendFunc(uint32(s.blendSrc), uint32(s.blendDst))
	setCapability(gl.BLEND, s.blend)
	setCapability(gl.DEPTH_TEST, s.depth)
	setCapability(gl.CULL_FACE, s.cull)
	setCapability(gl.SCISSOR_TEST, s.scissoring)
	gl.Scissor(s.scissorBox[0], s.scissorBox[1], s.scissorBox[2], s.scissorBox[3])
}

func setCapability(capability uint32, enabled bool) {
	if enabled {
		gl.Enable(capability)
	} else {
		gl.Disable(capability)
	}
}

// scissorBox converts a top-left origin clip rect {minX, minY, maxX, maxY}
// into GL's bottom-left scissor box, clamped to the framebuffer origin.
func scissorBox(clip [4]float32, framebufferHeight int) (x, y, w, h int32, ok bool) {
	x = int32(clip[0])
	y = int32(float32(framebufferHeight) - clip[3])
	w = int32(clip[2] - clip[0])
	h = int32(clip[3] - clip[1])
	if x < 0 {
		w += x
		x = 0
	}
	if y < 0 {
		h += y
		y = 0
	}
	return x, y, w, h, w > 0 && h > 0
}

// screenProjection maps pixel coordinates with a top-left origin to clip space.
func screenProjection(width, height float32) [16]float32 {
	return [16]float32{
		2 / width, 0, 0, 0,
		0, -2 / height, 0, 0,
		0, 0, -1, 0,
		-1, 1, 0, 1,
	}
}

// uploadAtlas uploads the atlas as a single-channel texture.
func uploadAtlas(atlas *calendarview.FontAtlas) uint32 {
	b := atlas.Image.Bounds()

	var tex uint32
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RED, int32(b.Dx()), int32(b.Dy()), 0, gl.RED, gl.UNSIGNED_BYTE, gl.Ptr(atlas.Image.Pix))
	gl.BindTexture(gl.TEXTURE_2D, 0)
	return tex
}

func compileShader(kind uint32, source string) (uint32, error) {
	shader := gl.CreateShader(kind)
	csource, free := gl.Strs(source)
	gl.ShaderSource(shader, 1, csource, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var n int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &n)
		log := make([]byte, n+1)
		gl.GetShaderInfoLog(shader, n, nil, &log[0])
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("compile shader: %s", log)
	}
	return shader, nil
}

func linkProgram(vertexSource, fragmentSource string) (uint32, error) {
	vs, err := compileShader(gl.VERTEX_SHADER, vertexSource)
	if err != nil {
		return 0, fmt.Errorf("vertex: %w", err)
	}
	defer gl.DeleteShader(vs)
	fs, err := compileShader(gl.FRAGMENT_SHADER, fragmentSource)
	if err != nil {
		return 0, fmt.Errorf("fragment: %w", err)
	}
	defer gl.DeleteShader(fs)

	program := gl.CreateProgram()
	gl.AttachShader(program, vs)
	gl.AttachShader(program, fs)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var n int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &n)
		log := make([]byte, n+1)
		gl.GetProgramInfoLog(program, n, nil, &log[0])
		gl.DeleteProgram(program)
		return 0, fmt.Errorf("link shader program: %s", log)
	}
	return program, nil
}
