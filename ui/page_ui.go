package ui

import (
	"bytes"
	"image/color"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// PageUI is a titled column of text lines with a single Back button.
// It backs the About and Error screens.
type PageUI struct {
	UI *ebitenui.UI

	OnBack func()

	titleLabel *widget.Label
	lineLabels []*widget.Label
	body       *widget.Container

	titleFace  text.Face
	normalFace text.Face
	smallFace  text.Face
	lineColor  color.RGBA
}

// NewPageUI builds a page. lineColor tints the body text.
func NewPageUI(title string, lines []string, lineColor color.RGBA, onBack func()) (*PageUI, error) {
	p := &PageUI{
		OnBack:    onBack,
		lineColor: lineColor,
	}
	if err := p.loadFonts(); err != nil {
		return nil, err
	}
	p.buildUI(title)
	p.SetLines(lines)
	return p, nil
}

func (p *PageUI) loadFonts() error {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return err
	}

	p.titleFace = &text.GoTextFace{
		Source: fontSource,
		Size:   18,
	}
	p.normalFace = &text.GoTextFace{
		Source: fontSource,
		Size:   12,
	}
	p.smallFace = &text.GoTextFace{
		Source: fontSource,
		Size:   10,
	}
	return nil
}

func (p *PageUI) buildUI(title string) {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{20, 20, 30, 255})),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	contentContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(8)),
			widget.RowLayoutOpts.Spacing(6),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	p.titleLabel = widget.NewLabel(
		widget.LabelOpts.Text(title, &p.titleFace, &widget.LabelColor{
			Idle: color.RGBA{255, 255, 255, 255},
		}),
	)
	contentContainer.AddChild(p.titleLabel)

	p.body = widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(2),
		)),
	)
	contentContainer.AddChild(p.body)

	backButton := widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(90, 22),
		),
		widget.ButtonOpts.Image(p.buttonImage()),
		widget.ButtonOpts.Text("Back", &p.normalFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{255, 255, 200, 255},
			Pressed: color.RGBA{200, 200, 200, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if p.OnBack != nil {
				p.OnBack()
			}
		}),
	)
	contentContainer.AddChild(backButton)

	rootContainer.AddChild(contentContainer)

	p.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

// SetLines replaces the body text.
func (p *PageUI) SetLines(lines []string) {
	p.body.RemoveChildren()
	p.lineLabels = p.lineLabels[:0]
	for _, line := range lines {
		l := widget.NewLabel(
			widget.LabelOpts.Text(line, &p.smallFace, &widget.LabelColor{
				Idle: p.lineColor,
			}),
		)
		p.lineLabels = append(p.lineLabels, l)
		p.body.AddChild(l)
	}
}

// Lines returns the body text currently shown.
func (p *PageUI) Lines() []string {
	lines := make([]string, len(p.lineLabels))
	for i, l := range p.lineLabels {
		lines[i] = l.Label
	}
	return lines
}

func (p *PageUI) Update() {
	p.UI.Update()
}

func (p *PageUI) buttonImage() *widget.ButtonImage {
	idle := image.NewNineSliceColor(color.RGBA{60, 60, 80, 255})
	hover := image.NewNineSliceColor(color.RGBA{80, 80, 100, 255})
	pressed := image.NewNineSliceColor(color.RGBA{40, 40, 60, 255})
	disabled := image.NewNineSliceColor(color.RGBA{40, 40, 40, 255})

	return &widget.ButtonImage{
		Idle:     idle,
		Hover:    hover,
		Pressed:  pressed,
		Disabled: disabled,
	}
}
