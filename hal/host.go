package hal

// hostHAL is the desktop implementation backed by ebiten (windowed) or a
// plain ticker loop (headless).
type hostHAL struct {
	fb  *hostFramebuffer
	kbd *hostKeyboard
	ptr *hostPointer
}

// New returns a host HAL with a framebuffer of the given size.
func New(width, height int) HAL {
	return &hostHAL{
		fb:  newHostFramebuffer(width, height),
		kbd: newHostKeyboard(),
		ptr: &hostPointer{},
	}
}

func (h *hostHAL) Display() Display { return hostDisplay{fb: h.fb} }
func (h *hostHAL) Input() Input     { return hostInput{kbd: h.kbd, ptr: h.ptr} }

type hostDisplay struct {
	fb *hostFramebuffer
}

func (d hostDisplay) Framebuffer() Framebuffer { return d.fb }

type hostInput struct {
	kbd *hostKeyboard
	ptr *hostPointer
}

func (in hostInput) Keyboard() Keyboard { return in.kbd }
func (in hostInput) Pointer() Pointer   { return in.ptr }
