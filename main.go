package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/stewi1014/brot/programs"
	"github.com/stewi1014/brot/viewer"
)

const (
	debug = false

	windowWidth  = 800
	windowHeight = 600
	windowTitle  = "Brot"
)

func init() {
	// GLFW and GL calls must stay on the main thread.
	runtime.LockOSThread()
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := run(ctx)
	stop()
	if err != nil {
		log.Println(err)
		NewErrorDialog(err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	if err := glfw.Init(); err != nil {
		return err
	}
	defer glfw.Terminate()

	window, err := NewRenderWindow(windowWidth, windowHeight, windowTitle)
	if err != nil {
		return err
	}
	defer window.Destroy()

	program, err := programs.Load(programs.MandelbrotName)
	if err != nil {
		return err
	}

	shader, err := NewShader(program)
	if err != nil {
		return err
	}
	defer shader.Delete()
	window.Bind(shader)

	width, height := window.Size()
	v := viewer.New(shader, width, height)
	pacer := viewer.NewPacer(viewer.FrameBudget)

	for v.Running() && ctx.Err() == nil {
		for _, e := range window.PollEvents() {
			v.Dispatch(e)
		}

		window.Draw(shader)
		pacer.Wait()
	}

	return nil
}
