package cmd

import (
	"log"
	"runtime"
	"time"

	"github.com/ThatOtherAndrew/Handcloud/internal/clock"
	"github.com/ThatOtherAndrew/Handcloud/internal/draw"
	"github.com/ThatOtherAndrew/Handcloud/internal/models"
	"github.com/ThatOtherAndrew/Handcloud/internal/opengl"
	"github.com/ThatOtherAndrew/Handcloud/internal/update"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/spf13/cobra"
)

var (
	windowWidth  int
	windowHeight int
	shaderDir    string
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Open a window and render the cloud",
	Run:   Run,
}

func init() {
	rootCmd.AddCommand(runCmd)
	runtime.LockOSThread()

	runCmd.Flags().IntVar(&windowWidth, "width", 1280, "window width")
	runCmd.Flags().IntVar(&windowHeight, "height", 720, "window height")
	runCmd.Flags().StringVar(&shaderDir, "shaders", "", "load point shaders from this directory instead of the built-in ones")
}

func Run(cmd *cobra.Command, args []string) {
	settings, err := loadSettings(cmd)
	if err != nil {
		log.Fatal("Failed to load settings:", err)
	}

	if err := glfw.Init(); err != nil {
		log.Fatal("Failed to initialize GLFW:", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(windowWidth, windowHeight, "Handcloud", nil, nil)
	if err != nil {
		log.Fatal("Failed to create window:", err)
	}
	defer window.Destroy()
	window.MakeContextCurrent()
	glfw.SwapInterval(1)

	app := models.NewApp(settings, time.Now())
	log.Printf("Loaded %d particle(s), template %s", settings.ParticleCount, app.State.Template)

	gl := opengl.New(app)
	if err := gl.InitGL(shaderDir); err != nil {
		log.Fatal("Failed to initialize OpenGL:", err)
	}
	defer gl.Destroy()

	src, err := startSource(cmd.Context(), app)
	if err != nil {
		log.Fatal("Failed to start skeleton source:", err)
	}
	defer src.stop()

	player := startCues(app)
	defer player.Close()

	window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		if key == glfw.KeyEscape && action == glfw.Press {
			app.IsExiting = true
			w.SetShouldClose(true)
		}
	})

	ticker := clock.NewTicker(clock.NewReal())
	updater := update.New(app)
	drawer := draw.New(app)
	title := ""

	for !window.ShouldClose() {
		glfw.PollEvents()

		updater.Tick(ticker.Tick())

		width, height := window.GetFramebufferSize()
		app.Width, app.Height = width, height
		drawer.Draw(width, height)
		window.SwapBuffers()

		if status := updater.Status(); status != title {
			window.SetTitle("Handcloud | " + status)
			title = status
		}
	}
}
