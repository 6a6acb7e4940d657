//go:build windows

package engine

import (
	"syscall"
	"unsafe"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
)

var (
	dwmapi                    = syscall.NewLazyDLL("dwmapi.dll")
	procDwmSetWindowAttribute = dwmapi.NewProc("DwmSetWindowAttribute")
)

const (
	DWMWA_USE_IMMERSIVE_DARK_MODE = 20
	DWMWA_BORDER_COLOR            = 34
	DWMWA_CAPTION_COLOR           = 35
)

// setTitleBarColor darkens the title bar and tints caption and border with
// the scene background so the window frame blends with the scene.
func setTitleBarColor(window *glfw.Window, background mgl32.Vec3) {
	hwnd := window.GetWin32Window()
	if hwnd == nil {
		return
	}

	var useDarkMode int32 = 1
	setWindowAttribute(uintptr(unsafe.Pointer(hwnd)), DWMWA_USE_IMMERSIVE_DARK_MODE, unsafe.Pointer(&useDarkMode), unsafe.Sizeof(useDarkMode))

	// COLORREF is 0x00BBGGRR
	r, g, b := channel(background[0]), channel(background[1]), channel(background[2])
	colorBGR := uint32(b)<<16 | uint32(g)<<8 | uint32(r)
	setWindowAttribute(uintptr(unsafe.Pointer(hwnd)), DWMWA_BORDER_COLOR, unsafe.Pointer(&colorBGR), unsafe.Sizeof(colorBGR))
	setWindowAttribute(uintptr(unsafe.Pointer(hwnd)), DWMWA_CAPTION_COLOR, unsafe.Pointer(&colorBGR), unsafe.Sizeof(colorBGR))
}

func setWindowAttribute(hwnd uintptr, attribute uintptr, value unsafe.Pointer, size uintptr) {
	procDwmSetWindowAttribute.Call(hwnd, attribute, uintptr(value), size)
}

func channel(v float32) uint8 {
	return uint8(mgl32.Clamp(v, 0, 1) * 255)
}
