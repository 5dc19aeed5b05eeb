package main

import (
	"flag"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/tabletop3d/tabletop/config"
	"github.com/tabletop3d/tabletop/geometry"
	"github.com/tabletop3d/tabletop/logger"
	"github.com/tabletop3d/tabletop/platform"
	"github.com/tabletop3d/tabletop/render"
	"github.com/tabletop3d/tabletop/render/shaders"
	"github.com/tabletop3d/tabletop/view"
)

func main() {
	configPath := flag.String("config", "tabletop.yml", "optional YAML overlay for the scene/camera tuning")
	debug := flag.Bool("debug", false, "verbose logging")
	flag.Parse()

	if err := logger.Init(*debug); err != nil {
		panic(err)
	}
	defer logger.Sync()

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Log.Fatal("config", zap.Error(err))
	}

	win, err := platform.NewWindow(cfg.Window.Width, cfg.Window.Height, cfg.Window.Title)
	if err != nil {
		logger.Log.Fatal("window", zap.Error(err))
	}
	defer win.Destroy()

	if err := gl.Init(); err != nil {
		logger.Log.Fatal("opengl init", zap.Error(err))
	}

	gl.Enable(gl.DEPTH_TEST)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	program, err := render.CompileProgram(shaders.SceneVertex, shaders.SceneFragment)
	if err != nil {
		logger.Log.Fatal("shader", zap.Error(err))
	}
	defer program.Delete()

	meshes := geometry.NewMeshLibrary()
	defer meshes.Release()

	textureFiles := make([]render.TextureRef, 0, len(cfg.Scene.Textures))
	for _, t := range cfg.Scene.Textures {
		textureFiles = append(textureFiles, render.TextureRef{Path: t.Path, Tag: t.Tag})
	}

	scene := render.NewSceneManager(
		program,
		render.NewTextureRegistry(render.NewGLTextureDevice()),
		render.NewMaterialRegistry(),
		meshes,
		textureFiles,
	)
	defer scene.Release()

	scene.PrepareScene()

	vm := view.NewViewManager(cfg)
	win.OnCursorMoved(vm.OnCursorMoved)
	win.OnScroll(vm.OnScroll)

	input := &platform.Input{}
	last := time.Now()

	logger.Log.Info("entering frame loop",
		zap.Int("width", cfg.Window.Width),
		zap.Int("height", cfg.Window.Height))

	for !win.ShouldClose() {
		now := time.Now()
		dt := float32(now.Sub(last).Seconds())
		last = now

		input.Poll(win)
		if vm.ProcessFrameInput(dt, input) {
			win.RequestClose()
		}

		gl.ClearColor(0.10, 0.10, 0.12, 1)
		gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

		program.Use()
		vm.UploadView(program, win.Aspect())
		scene.RenderScene(vm.Camera.Position)

		win.SwapBuffers()
	}

	logger.Log.Info("shutting down")
}
