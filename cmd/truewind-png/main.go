// truewind-png solves one reading and writes the compass as a PNG image.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/akamensky/argparse"
	"github.com/hhkbp2/go-logging"
	"github.com/ngmaloney/truewind/internal/compass"
	"github.com/ngmaloney/truewind/internal/compass/raster"
	"github.com/ngmaloney/truewind/internal/config"
	"github.com/ngmaloney/truewind/internal/models"
	"github.com/ngmaloney/truewind/internal/solver"
)

func main() {
	if err := run(os.Args, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	parser := argparse.NewParser("truewind-png", "Solves the true wind for one reading and draws the compass as a PNG image")

	boatSpeed := parser.String("", "boat-speed", &argparse.Options{
		Required: true,
		Help:     "Boat speed in knots"})

	heading := parser.String("", "heading", &argparse.Options{
		Required: true,
		Help:     "Boat heading in degrees"})

	windSpeed := parser.String("", "wind-speed", &argparse.Options{
		Required: true,
		Help:     "Apparent wind speed in knots"})

	windBearing := parser.String("", "wind-bearing", &argparse.Options{
		Required: true,
		Help:     "Apparent wind bearing in degrees (direction it comes from)"})

	frame := parser.Selector("", "frame", []string{string(models.NorthReferenced), string(models.HeadingReferenced)}, &argparse.Options{
		Help: "Reference of the wind bearing (default from config)"})

	orientation := parser.Selector("", "orientation", []string{string(models.NorthUp), string(models.HeadingUp)}, &argparse.Options{
		Help: "Compass display (default from config)"})

	size := parser.Int("s", "size", &argparse.Options{
		Help: "Image size in pixels (default from config)"})

	output := parser.String("o", "output", &argparse.Options{
		Default: "truewind.png",
		Help:    "PNG file to write"})

	configPath := parser.String("c", "config", &argparse.Options{
		Default: config.DefaultPath(),
		Help:    "Path to the YAML settings file"})

	logLevel := parser.Selector("", "log", []string{"DEBUG", "INFO", "WARN", "ERROR", "CRITICAL"}, &argparse.Options{
		Help: "Log level (default from config)"})

	if err := parser.Parse(args); err != nil {
		return errors.New(parser.Usage(err))
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	if *frame != "" {
		cfg.ReferenceFrame = models.ReferenceFrame(*frame)
	}
	if *orientation != "" {
		cfg.Orientation = models.OrientationMode(*orientation)
	}
	if *size > 0 {
		cfg.PNGSize = *size
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}
	if err := config.SetupLogging(cfg.LogLevel, config.NewWriterHandler(stderr)); err != nil {
		return err
	}
	logger := logging.GetLogger(config.LoggerName)

	result, err := solver.SolveInput(*boatSpeed, *heading, *windSpeed, *windBearing, cfg.ReferenceFrame)
	if err != nil {
		logger.Warnf("rejecting reading: %v", err)
		fmt.Fprintln(stdout, "Invalid input")
		return err
	}
	fmt.Fprintln(stdout, result.String())

	surface, err := raster.New(cfg.PNGSize, cfg.PNGSize)
	if err != nil {
		return err
	}
	defer surface.Close()

	px := float64(cfg.PNGSize)
	compass.Render(surface, px, px, result, cfg.Orientation)
	if err := surface.Err(); err != nil {
		return fmt.Errorf("drawing compass: %w", err)
	}
	if err := surface.SavePNG(*output); err != nil {
		return err
	}
	logger.Infof("wrote %s (%dx%d, %s)", *output, cfg.PNGSize, cfg.PNGSize, cfg.Orientation)
	return nil
}
