package main

import (
	"errors"
	"fmt"
	"image/color"
	"log"

	"golang.org/x/image/font/basicfont"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/skyclimb/profile"
)

// NewShopUI builds the game-over panel: the run's result, a restart button
// and one button per character that selects it when owned or buys it.
func NewShopUI(g *Game) *ebitenui.UI {
	panelImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x00, G: 0x00, B: 0x00, A: 200})
	btnImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 255})
	selectedImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x2e, G: 0x7d, B: 0x32, A: 255})
	lockedImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x5d, G: 0x40, B: 0x37, A: 255})

	goFace := ebtext.NewGoXFace(basicfont.Face7x13)
	var face ebtext.Face = goFace

	white := color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	btnTextColor := &widget.ButtonTextColor{Idle: white}
	center := widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})

	prof := g.session.Profile()
	score := g.session.Score()

	label := func(s string) *widget.Text {
		return widget.NewText(widget.TextOpts.Text(s, &face, white), widget.TextOpts.WidgetOpts(center))
	}

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(panelImg),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(10),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 20, Bottom: 20, Left: 30, Right: 30}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(baseWidth/2, baseHeight/2),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{HorizontalPosition: widget.AnchorLayoutPositionCenter, VerticalPosition: widget.AnchorLayoutPositionCenter}),
		),
	)
	panel.AddChild(label("You fell!"))
	panel.AddChild(label(fmt.Sprintf("Score %d   High score %d", score.Total, prof.HighScore)))
	panel.AddChild(label(fmt.Sprintf("Bananas %d", prof.Bananas)))

	panel.AddChild(widget.NewButton(
		widget.ButtonOpts.Image(&widget.ButtonImage{Idle: btnImg, Pressed: btnImg}),
		widget.ButtonOpts.Text("Climb again (R)", &face, btnTextColor),
		widget.ButtonOpts.WidgetOpts(center),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			g.restart()
		}),
	))

	for _, ch := range prof.Characters() {
		img := btnImg
		text := fmt.Sprintf("%s - %s", ch.Name, ch.Description)
		switch {
		case ch.ID == prof.Selected:
			img = selectedImg
			text += " (selected)"
		case !prof.IsUnlocked(ch.ID):
			img = lockedImg
			text += fmt.Sprintf(" (%d bananas)", ch.Cost)
		}

		id := ch.ID
		panel.AddChild(widget.NewButton(
			widget.ButtonOpts.Image(&widget.ButtonImage{Idle: img, Pressed: img}),
			widget.ButtonOpts.Text(text, &face, btnTextColor),
			widget.ButtonOpts.WidgetOpts(center),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				g.choose(id)
			}),
		))
	}

	if g.shopStatus != "" {
		panel.AddChild(label(g.shopStatus))
	}

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	root.AddChild(panel)

	return &ebitenui.UI{Container: root}
}

// choose runs a shop button and rebuilds the panel to show the outcome.
func (g *Game) choose(id string) {
	purchased, err := g.session.Profile().Choose(id)
	switch {
	case errors.Is(err, profile.ErrInsufficientFunds):
		g.shopStatus = "Not enough bananas"
	case err != nil:
		log.Printf("shop: %v", err)
		g.shopStatus = "Could not select that character"
	case purchased:
		g.shopStatus = "Unlocked!"
	default:
		g.shopStatus = ""
	}
	g.shop = NewShopUI(g)
}
