package draw

import (
	"github.com/ThatOtherAndrew/Handcloud/internal/camera"
	"github.com/ThatOtherAndrew/Handcloud/internal/models"
	"github.com/go-gl/gl/v4.1-core/gl"
)

// Opacity is the alpha every point is blended with.
const Opacity = 0.8

type App struct {
	app *models.App

	// generation of the color buffer last uploaded
	uploaded int
}

func New(app *models.App) *App {
	return &App{app: app, uploaded: -1}
}

// Draw clears the frame and draws the particle field as additive points.
func (a *App) Draw(width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
	gl.Clear(gl.COLOR_BUFFER_BIT)

	a.drawPoints(width, height)
}

func (a *App) drawPoints(width, height int) {
	f := a.app.Field
	if f.Count() == 0 {
		return
	}

	positions := f.Positions()
	gl.BindBuffer(gl.ARRAY_BUFFER, a.app.PositionVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(positions)*4, gl.Ptr(positions), gl.DYNAMIC_DRAW)

	// colors only change on regeneration
	if gen := f.Generation(); gen != a.uploaded {
		colors := f.Colors()
		gl.BindBuffer(gl.ARRAY_BUFFER, a.app.ColorVBO)
		gl.BufferData(gl.ARRAY_BUFFER, len(colors)*4, gl.Ptr(colors), gl.STATIC_DRAW)
		a.uploaded = gen
	}

	cam := camera.New(width, height)
	modelView := cam.ModelView(a.app.State.Rotation)
	projection := cam.Projection()

	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE)

	program := a.app.PointProgram
	gl.UseProgram(program)

	modelViewLoc := gl.GetUniformLocation(program, gl.Str("modelView\x00"))
	gl.UniformMatrix4fv(modelViewLoc, 1, false, &modelView[0])
	projectionLoc := gl.GetUniformLocation(program, gl.Str("projection\x00"))
	gl.UniformMatrix4fv(projectionLoc, 1, false, &projection[0])
	pointSizeLoc := gl.GetUniformLocation(program, gl.Str("pointSize\x00"))
	gl.Uniform1f(pointSizeLoc, a.app.Settings.PointSize)
	viewportLoc := gl.GetUniformLocation(program, gl.Str("viewportHeight\x00"))
	gl.Uniform1f(viewportLoc, float32(height))
	opacityLoc := gl.GetUniformLocation(program, gl.Str("opacity\x00"))
	gl.Uniform1f(opacityLoc, Opacity)

	gl.BindVertexArray(a.app.PointVAO)
	gl.DrawArrays(gl.POINTS, 0, int32(f.Count()))
	gl.BindVertexArray(0)
}
