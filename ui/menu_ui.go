package ui

import (
	"bytes"
	"fmt"
	"image/color"
	"log"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// volumeStep is how much one click of a volume button changes the level.
const volumeStep = 0.1

// MenuSettings is the state the main menu edits.
type MenuSettings struct {
	MusicVolume float64
	SFXVolume   float64
	Fullscreen  bool
}

// MainMenuUI is the title screen: start, volume, fullscreen and quit.
type MainMenuUI struct {
	UI *ebitenui.UI

	OnStart    func()
	OnQuit     func()
	OnSettings func(MenuSettings)

	settings MenuSettings

	musicLabel      *widget.Label
	sfxLabel        *widget.Label
	fullscreenLabel *widget.Label
	recordLabel     *widget.Label

	titleFace  text.Face
	normalFace text.Face
	smallFace  text.Face
}

func NewMainMenuUI(settings MenuSettings, record string, onStart, onQuit func(), onSettings func(MenuSettings)) *MainMenuUI {
	ui := &MainMenuUI{
		OnStart:    onStart,
		OnQuit:     onQuit,
		OnSettings: onSettings,
		settings:   settings,
	}
	ui.loadFonts()
	ui.buildUI(record)
	ui.refreshLabels()
	return ui
}

func (ui *MainMenuUI) loadFonts() {
	regular, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		log.Fatalf("failed to load UI font: %v", err)
	}
	bold, err := text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
	if err != nil {
		log.Fatalf("failed to load UI title font: %v", err)
	}

	ui.titleFace = &text.GoTextFace{Source: bold, Size: 40}
	ui.normalFace = &text.GoTextFace{Source: regular, Size: 16}
	ui.smallFace = &text.GoTextFace{Source: regular, Size: 12}
}

func (ui *MainMenuUI) buildUI(record string) {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{8, 6, 8, 255})),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	contentContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(16)),
			widget.RowLayoutOpts.Spacing(10),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	contentContainer.AddChild(widget.NewLabel(
		widget.LabelOpts.Text("DREAD HALL", &ui.titleFace, &widget.LabelColor{
			Idle: color.RGBA{160, 10, 10, 255},
		}),
	))

	contentContainer.AddChild(ui.menuButton("Start", func() {
		if ui.OnStart != nil {
			ui.OnStart()
		}
	}))

	var musicRow, sfxRow *widget.Container
	musicRow, ui.musicLabel = ui.volumeRow(func(d float64) {
		ui.settings.MusicVolume = clampVolume(ui.settings.MusicVolume + d)
	})
	sfxRow, ui.sfxLabel = ui.volumeRow(func(d float64) {
		ui.settings.SFXVolume = clampVolume(ui.settings.SFXVolume + d)
	})
	contentContainer.AddChild(musicRow)
	contentContainer.AddChild(sfxRow)

	fullscreenRow := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(6),
		)),
	)
	ui.fullscreenLabel = ui.label("", ui.normalFace)
	fullscreenRow.AddChild(ui.fullscreenLabel)
	fullscreenRow.AddChild(ui.smallButton("Toggle", func() {
		ui.settings.Fullscreen = !ui.settings.Fullscreen
		ui.changed()
	}))
	contentContainer.AddChild(fullscreenRow)

	contentContainer.AddChild(ui.menuButton("Quit", func() {
		if ui.OnQuit != nil {
			ui.OnQuit()
		}
	}))

	ui.recordLabel = widget.NewLabel(
		widget.LabelOpts.Text(record, &ui.smallFace, &widget.LabelColor{
			Idle: color.RGBA{150, 140, 130, 255},
		}),
	)
	contentContainer.AddChild(ui.recordLabel)

	rootContainer.AddChild(contentContainer)

	ui.UI = &ebitenui.UI{Container: rootContainer}
}

// volumeRow builds "label [-] [+]". adjust receives the signed step.
func (ui *MainMenuUI) volumeRow(adjust func(float64)) (*widget.Container, *widget.Label) {
	row := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(6),
		)),
	)
	label := ui.label("", ui.normalFace)
	row.AddChild(label)
	row.AddChild(ui.smallButton("-", func() {
		adjust(-volumeStep)
		ui.changed()
	}))
	row.AddChild(ui.smallButton("+", func() {
		adjust(volumeStep)
		ui.changed()
	}))
	return row, label
}

func (ui *MainMenuUI) label(s string, face text.Face) *widget.Label {
	return widget.NewLabel(
		widget.LabelOpts.Text(s, &face, &widget.LabelColor{
			Idle: color.RGBA{200, 200, 200, 255},
		}),
	)
}

func (ui *MainMenuUI) menuButton(label string, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(200, 32)),
		widget.ButtonOpts.Image(&widget.ButtonImage{
			Idle:    image.NewNineSliceColor(color.RGBA{40, 20, 20, 255}),
			Hover:   image.NewNineSliceColor(color.RGBA{90, 20, 20, 255}),
			Pressed: image.NewNineSliceColor(color.RGBA{30, 10, 10, 255}),
		}),
		widget.ButtonOpts.Text(label, &ui.normalFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{220, 210, 180, 255},
			Hover:   color.RGBA{255, 255, 255, 255},
			Pressed: color.RGBA{180, 170, 150, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
		}),
	)
}

func (ui *MainMenuUI) smallButton(label string, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(32, 22)),
		widget.ButtonOpts.Image(&widget.ButtonImage{
			Idle:    image.NewNineSliceColor(color.RGBA{50, 40, 40, 255}),
			Hover:   image.NewNineSliceColor(color.RGBA{80, 50, 50, 255}),
			Pressed: image.NewNineSliceColor(color.RGBA{35, 25, 25, 255}),
		}),
		widget.ButtonOpts.Text(label, &ui.smallFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{255, 200, 200, 255},
			Pressed: color.RGBA{200, 150, 150, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
		}),
	)
}

func (ui *MainMenuUI) changed() {
	ui.refreshLabels()
	if ui.OnSettings != nil {
		ui.OnSettings(ui.settings)
	}
}

func (ui *MainMenuUI) refreshLabels() {
	ui.musicLabel.Label = fmt.Sprintf("Music  %3.0f%%", ui.settings.MusicVolume*100)
	ui.sfxLabel.Label = fmt.Sprintf("Sound  %3.0f%%", ui.settings.SFXVolume*100)
	mode := "Windowed"
	if ui.settings.Fullscreen {
		mode = "Fullscreen"
	}
	ui.fullscreenLabel.Label = mode
}

// Settings returns the values currently shown.
func (ui *MainMenuUI) Settings() MenuSettings {
	return ui.settings
}

func (ui *MainMenuUI) Update() {
	ui.UI.Update()
}

func clampVolume(v float64) float64 {
	// Round to the step so repeated clicks do not drift
	v = float64(int(v/volumeStep+0.5)) * volumeStep
	return max(0, min(1, v))
}
