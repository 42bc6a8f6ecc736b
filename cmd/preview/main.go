// Command preview shows rendered floor plans in a window, one tab per
// floor. It re-renders from the configuration file on demand, which makes
// it a quick feedback loop while editing a plan.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"image"
	"image/png"
	"log/slog"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	fynecanvas "fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"floorplan/internal/config"
	"floorplan/internal/export"
	"floorplan/internal/plan"
)

func main() {
	configPath := flag.String("config", "house_plan.yaml", "plan configuration file")
	flag.Parse()

	previewApp := app.New()
	win := previewApp.NewWindow("Floor Plan Preview")
	win.Resize(fyne.NewSize(900, 1100))

	status := widget.NewLabel("")
	tabs := container.NewAppTabs()

	reload := func() {
		if err := loadTabs(tabs, status, *configPath); err != nil {
			status.SetText(fmt.Sprintf("render failed: %v", err))
		}
	}
	reloadBtn := widget.NewButton("Reload", reload)

	win.SetContent(container.NewBorder(reloadBtn, status, nil, nil, tabs))
	reload()
	win.ShowAndRun()
}

func loadTabs(tabs *container.AppTabs, status *widget.Label, configPath string) error {
	doc, err := config.Load(configPath)
	if err != nil {
		return err
	}
	exporter := export.New(doc)

	floors := []struct {
		name  string
		title string
	}{
		{export.MainFloor, "Main Floor"},
		{export.Basement, "Basement"},
	}

	selected := tabs.SelectedIndex()
	for len(tabs.Items) > 0 {
		tabs.Remove(tabs.Items[0])
	}

	for _, floor := range floors {
		img, err := renderFloor(exporter, floor.name)
		if err != nil {
			slog.Error("rendering floor", "floor", floor.name, "err", err)
			tabs.Append(container.NewTabItem(floor.title, widget.NewLabel(err.Error())))
			continue
		}
		view := fynecanvas.NewImageFromImage(img)
		view.FillMode = fynecanvas.ImageFillContain
		tabs.Append(container.NewTabItem(floor.title, view))
	}
	if selected >= 0 && selected < len(tabs.Items) {
		tabs.SelectIndex(selected)
	}

	house, warnings := plan.NewHouse(doc)
	warnings = append(warnings, house.Validate()...)
	if len(warnings) > 0 {
		status.SetText(fmt.Sprintf("%s: %d validation warnings (see log)", configPath, len(warnings)))
		for _, w := range warnings {
			slog.Warn(w)
		}
	} else {
		status.SetText(configPath)
	}
	return nil
}

func renderFloor(exporter *export.Exporter, floor string) (image.Image, error) {
	data, err := exporter.FloorPNG(floor)
	if err != nil {
		return nil, err
	}
	return png.Decode(bytes.NewReader(data))
}

func init() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))
}
