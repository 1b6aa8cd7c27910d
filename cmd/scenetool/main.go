// scenetool inspects OBJ/MTL scenes without opening a window.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/Faultbox/sceneview/internal/config"
	"github.com/Faultbox/sceneview/internal/engine/camera"
	"github.com/Faultbox/sceneview/internal/logger"
	"github.com/Faultbox/sceneview/internal/scene"
)

var errUsage = errors.New("usage")

func main() {
	if len(os.Args) < 2 {
		printUsage(os.Stdout)
		os.Exit(1)
	}

	if os.Getenv("SCENETOOL_DEBUG") != "" {
		_ = logger.Init("debug", "")
	} else {
		logger.InitNop()
	}
	defer logger.Sync()

	if err := run(os.Stdout, os.Args[1], os.Args[2:]); err != nil {
		if !errors.Is(err, errUsage) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

func run(w io.Writer, command string, args []string) error {
	switch command {
	case "info":
		return cmdInfo(w, args)
	case "bounds":
		return cmdBounds(w, args)
	case "materials", "mtl":
		return cmdMaterials(w, args)
	case "frame":
		return cmdFrame(w, args)
	case "validate", "check":
		return cmdValidate(w, args)
	case "config":
		return cmdConfig(w, args)
	case "help", "-h", "--help":
		printUsage(w)
		return nil
	default:
		fmt.Fprintf(w, "Unknown command: %s\n", command)
		printUsage(w)
		return errUsage
	}
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, `scenetool - OBJ/MTL scene inspection utility

Usage:
  scenetool <command> [options] <file.obj>

Commands:
  info <file.obj>          Show mesh, face and material counts
  bounds <file.obj>        Print the axis-aligned bounding box
  materials <file.obj>     List materials and their properties
  frame <file.obj>         Print an auto-framed camera in .cam format
  validate <file.obj>...   Parse files and report the first error in each
  config [-check] [path]   Write the default viewer config, or validate one
                           (default path: user config dir)

Options (all commands):
  -mtl <file.mtl>          Material library override
  -cam <file.cam>          Camera file override

Examples:
  scenetool info models/teapot.obj
  scenetool frame -width 1280 -height 720 models/teapot.obj > models/teapot.cam`)
}

// loadArgs parses the shared flags and loads the scene named by the first
// positional argument.
func loadArgs(fs *flag.FlagSet, args []string) (*scene.Result, error) {
	mtl := fs.String("mtl", "", "Material library override")
	cam := fs.String("cam", "", "Camera file override")
	if err := fs.Parse(args); err != nil {
		return nil, errUsage
	}
	if fs.NArg() < 1 {
		fmt.Fprintf(fs.Output(), "Usage: scenetool %s [options] <file.obj>\n", fs.Name())
		return nil, errUsage
	}
	return scene.Load(fs.Arg(0), scene.LoadOptions{MaterialPath: *mtl, CameraPath: *cam})
}

func newFlagSet(name string, w io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(w)
	return fs
}

func cmdInfo(w io.Writer, args []string) error {
	res, err := loadArgs(newFlagSet("info", w), args)
	if err != nil {
		return err
	}

	st := res.Scene.Stats()
	fmt.Fprintf(w, "Scene:     %s\n", res.Scene.Source)
	fmt.Fprintf(w, "Meshes:    %d\n", st.Meshes)
	fmt.Fprintf(w, "Faces:     %d\n", st.Faces)
	fmt.Fprintf(w, "Vertices:  %d\n", st.Vertices)
	fmt.Fprintf(w, "Materials: %d\n", st.Materials)
	if res.Camera != nil {
		fmt.Fprintf(w, "Camera:    eye %v target %v (%dx%d)\n",
			res.Camera.Eye, res.Camera.Target, res.Camera.Width, res.Camera.Height)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Files:")
	for _, f := range res.Files {
		fmt.Fprintf(w, "  %s\n", f)
	}
	return nil
}

func cmdBounds(w io.Writer, args []string) error {
	res, err := loadArgs(newFlagSet("bounds", w), args)
	if err != nil {
		return err
	}

	b, ok := res.Scene.ComputeBounds()
	if !ok {
		fmt.Fprintln(w, "empty scene: no bounds")
		return nil
	}
	fmt.Fprintf(w, "Min:    %v\n", b.Min)
	fmt.Fprintf(w, "Max:    %v\n", b.Max)
	fmt.Fprintf(w, "Center: %v\n", b.Center)
	fmt.Fprintf(w, "Size:   %v\n", b.Size)
	return nil
}

func cmdMaterials(w io.Writer, args []string) error {
	res, err := loadArgs(newFlagSet("materials", w), args)
	if err != nil {
		return err
	}

	names := make([]string, 0, len(res.Scene.Materials))
	for name := range res.Scene.Materials {
		names = append(names, name)
	}
	sort.Strings(names)

	used := make(map[string]int)
	for _, m := range res.Scene.Meshes {
		used[m.Material.Name] += len(m.Faces)
	}

	fmt.Fprintf(w, "%-20s %-22s %-22s %6s %5s %6s\n", "NAME", "DIFFUSE", "SPECULAR", "NS", "D", "FACES")
	for _, name := range names {
		m := res.Scene.Materials[name]
		fmt.Fprintf(w, "%-20s %-22v %-22v %6.1f %5.2f %6d\n",
			name, m.Diffuse, m.Specular, m.Shininess, m.Opacity, used[name])
	}
	return nil
}

func cmdFrame(w io.Writer, args []string) error {
	fs := newFlagSet("frame", w)
	width := fs.Int("width", 800, "Resolution width")
	height := fs.Int("height", 600, "Resolution height")
	res, err := loadArgs(fs, args)
	if err != nil {
		return err
	}

	b, ok := res.Scene.ComputeBounds()
	if !ok {
		return fmt.Errorf("%s: empty scene, nothing to frame", res.Scene.Source)
	}
	f := camera.NewFrame()
	f.AutoFrame(b, ok)

	fmt.Fprintf(w, "%g %g %g\n", f.Eye.X, f.Eye.Y, f.Eye.Z)
	fmt.Fprintf(w, "%g %g %g\n", f.Target.X, f.Target.Y, f.Target.Z)
	fmt.Fprintf(w, "%d %d\n", *width, *height)
	return nil
}

func cmdValidate(w io.Writer, args []string) error {
	fs := newFlagSet("validate", w)
	mtl := fs.String("mtl", "", "Material library override")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}
	if fs.NArg() < 1 {
		fmt.Fprintln(w, "Usage: scenetool validate [options] <file.obj>...")
		return errUsage
	}

	failed := 0
	for _, path := range fs.Args() {
		res, err := scene.Load(path, scene.LoadOptions{MaterialPath: *mtl})
		if err != nil {
			failed++
			fmt.Fprintf(w, "FAIL %s: %v\n", path, err)
			continue
		}
		st := res.Scene.Stats()
		fmt.Fprintf(w, "ok   %s (%d meshes, %d faces)\n", path, st.Meshes, st.Faces)
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d files failed", failed, fs.NArg())
	}
	return nil
}

func cmdConfig(w io.Writer, args []string) error {
	fs := newFlagSet("config", w)
	check := fs.Bool("check", false, "Validate an existing config instead of writing one")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}
	path := config.DefaultPath()
	if fs.NArg() > 0 {
		path = fs.Arg(0)
	}

	if *check {
		cfg, err := config.LoadFile(path)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "ok   %s (%dx%d, fov %g)\n", path, cfg.Window.Width, cfg.Window.Height, cfg.Camera.FOV)
		return nil
	}

	if err := config.Default().SaveTo(path); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	fmt.Fprintf(w, "wrote %s\n", path)
	return nil
}
