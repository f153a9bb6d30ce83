package platform

// Insets is the size of the OS-drawn decoration around the client area.
type Insets struct {
	Left, Top, Right, Bottom int
}

// OuterSize grows a client-area size by the window decoration.
func OuterSize(clientW, clientH int, in Insets) (int, int) {
	return clientW + in.Left + in.Right, clientH + in.Top + in.Bottom
}

// ClientSize is the inverse of OuterSize.
func ClientSize(outerW, outerH int, in Insets) (int, int) {
	return outerW - in.Left - in.Right, outerH - in.Top - in.Bottom
}
