package debugpanel

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/inkyblackness/imgui-go/v4"
)

// View draws a Panel with imgui. It must be called between imgui.NewFrame and
// imgui.Render.
type View struct {
	Panel *Panel
	X, Y  float32
	Width float32
}

func NewView(panel *Panel) *View {
	return &View{Panel: panel, X: 10, Y: 10, Width: 300}
}

func (v *View) Draw() {
	panel := v.Panel
	if panel == nil || !panel.Visible {
		return
	}

	imgui.SetNextWindowPosV(imgui.Vec2{X: v.X, Y: v.Y}, imgui.ConditionFirstUseEver, imgui.Vec2{})
	imgui.SetNextWindowSizeV(imgui.Vec2{X: v.Width, Y: 0}, imgui.ConditionFirstUseEver)
	if imgui.BeginV(panel.Title, nil, imgui.WindowFlagsAlwaysAutoResize) {
		drawControls(panel.Root().Controls())
		for _, folder := range panel.Folders() {
			flags := imgui.TreeNodeFlagsNone
			if folder.Open {
				flags = imgui.TreeNodeFlagsDefaultOpen
			}
			if imgui.CollapsingHeaderV(folder.Name, flags) {
				imgui.PushID(folder.Name)
				drawControls(folder.Controls())
				imgui.PopID()
			}
		}
	}
	imgui.End()
}

func drawControls(controls []Control) {
	for _, control := range controls {
		switch c := control.(type) {
		case *NumberControl:
			value := c.Value()
			if imgui.SliderFloatV(c.Label(), &value, c.Spec.Min, c.Spec.Max, sliderFormat(c.Spec.Step), imgui.SliderFlagsAlwaysClamp) {
				c.Apply(value)
			}
		case *ColorControl:
			live := c.Value()
			col := [3]float32{live[0], live[1], live[2]}
			if imgui.ColorEdit3V(c.Label(), &col, 0) {
				c.Apply(mgl32.Vec3{col[0], col[1], col[2]})
			}
		case *BoolControl:
			value := c.Value()
			if imgui.Checkbox(c.Label(), &value) {
				c.Apply(value)
			}
		}
	}
}

func sliderFormat(step float32) string {
	switch {
	case step == 0:
		return "%.3f"
	case step >= 1:
		return "%.0f"
	case step >= 0.1:
		return "%.1f"
	case step >= 0.01:
		return "%.2f"
	}
	return "%.3f"
}
