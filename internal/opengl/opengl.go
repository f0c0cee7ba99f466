package opengl

import (
	"fmt"
	"path/filepath"

	"github.com/ThatOtherAndrew/Handcloud/internal/models"
	"github.com/ThatOtherAndrew/Handcloud/internal/palette"
	"github.com/ThatOtherAndrew/Handcloud/internal/shaders"
	"github.com/go-gl/gl/v4.1-core/gl"
)

type App struct {
	app *models.App
}

func New(app *models.App) *App {
	return &App{app: app}
}

// InitGL compiles the point shader and creates the particle buffers. With a
// non-empty shaderDir the GLSL is read from there instead of the built-in
// sources.
func (a *App) InitGL(shaderDir string) error {
	if err := gl.Init(); err != nil {
		return err
	}

	vertShader, fragShader, err := compile(shaderDir)
	if err != nil {
		return err
	}
	program, err := shaders.LinkProgram(vertShader, fragShader)
	if err != nil {
		return fmt.Errorf("point program: %w", err)
	}
	a.app.PointProgram = program

	gl.GenVertexArrays(1, &a.app.PointVAO)
	gl.GenBuffers(1, &a.app.PositionVBO)
	gl.GenBuffers(1, &a.app.ColorVBO)

	gl.BindVertexArray(a.app.PointVAO)

	gl.BindBuffer(gl.ARRAY_BUFFER, a.app.PositionVBO)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, 3*4, nil)
	gl.EnableVertexAttribArray(0)

	gl.BindBuffer(gl.ARRAY_BUFFER, a.app.ColorVBO)
	gl.VertexAttribPointer(1, 3, gl.FLOAT, false, 3*4, nil)
	gl.EnableVertexAttribArray(1)

	gl.BindVertexArray(0)

	bg := palette.Background
	gl.ClearColor(float32(bg.R), float32(bg.G), float32(bg.B), 1)
	gl.Enable(gl.BLEND)
	gl.Enable(gl.PROGRAM_POINT_SIZE)
	gl.Disable(gl.DEPTH_TEST)

	return nil
}

func compile(shaderDir string) (vert, frag uint32, err error) {
	if shaderDir != "" {
		vert, err = shaders.CompileShaderFromFile(filepath.Join(shaderDir, shaders.PointVertexFile), gl.VERTEX_SHADER)
		if err != nil {
			return 0, 0, err
		}
		frag, err = shaders.CompileShaderFromFile(filepath.Join(shaderDir, shaders.PointFragmentFile), gl.FRAGMENT_SHADER)
		if err != nil {
			gl.DeleteShader(vert)
			return 0, 0, err
		}
		return vert, frag, nil
	}

	vert, err = shaders.CompileShaderFromSource(shaders.PointVertex, gl.VERTEX_SHADER)
	if err != nil {
		return 0, 0, err
	}
	frag, err = shaders.CompileShaderFromSource(shaders.PointFragment, gl.FRAGMENT_SHADER)
	if err != nil {
		gl.DeleteShader(vert)
		return 0, 0, err
	}
	return vert, frag, nil
}

// Destroy releases the GL objects created by InitGL.
func (a *App) Destroy() {
	gl.DeleteBuffers(1, &a.app.PositionVBO)
	gl.DeleteBuffers(1, &a.app.ColorVBO)
	gl.DeleteVertexArrays(1, &a.app.PointVAO)
	gl.DeleteProgram(a.app.PointProgram)
}
